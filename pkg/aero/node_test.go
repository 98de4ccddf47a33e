package aero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// constNode is a stub Node returning fixed coefficients, used to verify the
// composite roll-up's normalization arithmetic in isolation from any real
// correlation.
type constNode struct {
	area, length float64
	co           Coefficients
}

func (n constNode) Evaluate(f Flow) Coefficients { return n.co }
func (n constNode) ReferenceArea() float64       { return n.area }
func (n constNode) ReferenceLength() float64     { return n.length }
func (n constNode) Invalidate()                  {}

func TestCompositeCNAlphaIsAreaWeightedSum(t *testing.T) {
	a := constNode{area: 1.0, length: 1.0, co: Coefficients{CNAlpha: 2.0}}
	b := constNode{area: 2.0, length: 1.0, co: Coefficients{CNAlpha: 3.0}}
	c := NewComposite(3.0, 1.0, a, b)
	co := c.Evaluate(Flow{})
	assert.InDelta(t, (2.0*1.0+3.0*2.0)/3.0, co.CNAlpha, 1e-9)
}

func TestCompositeCPIsCNWeightedAverage(t *testing.T) {
	a := constNode{area: 1.0, length: 1.0, co: Coefficients{CNAlpha: 1.0, CP: 0.1}}
	b := constNode{area: 1.0, length: 1.0, co: Coefficients{CNAlpha: 3.0, CP: 0.5}}
	c := NewComposite(2.0, 1.0, a, b)
	co := c.Evaluate(Flow{})
	expected := (0.1*1.0 + 0.5*3.0) / (1.0 + 3.0)
	assert.InDelta(t, expected, co.CP, 1e-9)
}

func TestCompositeCMAlphaWeightedByAreaTimesLength(t *testing.T) {
	a := constNode{area: 1.0, length: 2.0, co: Coefficients{CMAlpha: 1.0}}
	c := NewComposite(1.0, 2.0, a)
	co := c.Evaluate(Flow{})
	assert.InDelta(t, 1.0, co.CMAlpha, 1e-9)
}

func TestCompositeDragSumsAcrossChildren(t *testing.T) {
	a := constNode{area: 1.0, length: 1.0, co: Coefficients{CdfAxial: 0.01, CdpAxial: 0.02, CdbAxial: 0.1}}
	b := constNode{area: 1.0, length: 1.0, co: Coefficients{CdfAxial: 0.02, CdpAxial: 0.0, CdbAxial: 0.0}}
	c := NewComposite(2.0, 1.0, a, b)
	co := c.Evaluate(Flow{})
	assert.InDelta(t, 0.015, co.CdfAxial, 1e-9)
	assert.InDelta(t, 0.1, co.CdbAxial, 1e-9)
}

func TestCompositeInvalidatePropagatesToChildren(t *testing.T) {
	calls := 0
	a := &countingNode{}
	c := NewComposite(1.0, 1.0, a)
	c.Invalidate()
	calls = a.invalidated
	assert.Equal(t, 1, calls)
}

type countingNode struct {
	invalidated int
}

func (n *countingNode) Evaluate(f Flow) Coefficients { return Coefficients{} }
func (n *countingNode) ReferenceArea() float64       { return 1 }
func (n *countingNode) ReferenceLength() float64     { return 1 }
func (n *countingNode) Invalidate()                  { n.invalidated++ }
