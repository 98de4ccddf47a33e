package shapes_test

import (
	"testing"

	"github.com/loftwing/launchcore/pkg/shapes"
	"github.com/stretchr/testify/assert"
)

func TestTrapezoidalPrismRectangularPlanform(t *testing.T) {
	// Zero sweep, equal chords -> a plain rectangle, easy to check by hand.
	p := shapes.NewTrapezoidalPrism(0.1, 0.1, 0.08, 0, 0.003)
	assert.InDelta(t, 0.008, p.PlanformArea(), 1e-9)
	assert.InDelta(t, 0.008*0.003, p.Volume(), 1e-12)

	com := p.CenterOfMass()
	assert.InDelta(t, 0.05, com.X, 1e-9)
	assert.InDelta(t, 0.04, com.Y, 1e-9)
}

func TestTrapezoidalPrismTaperedPlanform(t *testing.T) {
	p := shapes.NewTrapezoidalPrism(0.12, 0.04, 0.06, 0.05, 0.003)
	assert.InDelta(t, (0.12+0.04)*0.06/2.0, p.PlanformArea(), 1e-9)
	assert.Greater(t, p.MeanAerodynamicChord(), 0.0)
	assert.Greater(t, p.AspectRatio(), 0.0)
}

func TestTrapezoidalPrismInertiaIsThinPlate(t *testing.T) {
	p := shapes.NewTrapezoidalPrism(0.1, 0.05, 0.07, 0.02, 0.004)
	i := p.InertiaAboutCOM()
	assert.InDelta(t, i.M11+i.M22, i.M33, 1e-9, "thin plate: Izz = Ixx + Iyy")
	assert.InDelta(t, i.M12, i.M21, 1e-12, "inertia tensor must be symmetric")
}

func TestTrapezoidalPrismDegenerateZeroArea(t *testing.T) {
	p := shapes.NewTrapezoidalPrism(0, 0, 0, 0, 0.002)
	assert.Equal(t, 0.0, p.Volume())
	i := p.InertiaAboutCOM()
	assert.Equal(t, 0.0, i.M11)
	assert.Equal(t, 0.0, i.M22)
}

func TestTrapezoidalPrismNegativeInputsClamp(t *testing.T) {
	p := shapes.NewTrapezoidalPrism(-0.1, -0.2, -0.3, -0.4, -0.5)
	assert.Equal(t, 0.0, p.RootChord)
	assert.Equal(t, 0.0, p.TipChord)
	assert.Equal(t, 0.0, p.Span)
	assert.Equal(t, 0.0, p.SweepDistance)
	assert.Equal(t, 0.0, p.Thickness)
}

func TestTrapezoidalPrismSetThicknessRescalesVolume(t *testing.T) {
	p := shapes.NewTrapezoidalPrism(0.1, 0.05, 0.06, 0.01, 0.002)
	before := p.Volume()
	p.SetThickness(0.004)
	after := p.Volume()
	assert.InDelta(t, before*2, after, 1e-12)
}

func TestTrapezoidalPrismWettedAreaIsTwicePlanform(t *testing.T) {
	p := shapes.NewTrapezoidalPrism(0.1, 0.05, 0.06, 0.01, 0.002)
	assert.InDelta(t, 2*p.PlanformArea(), p.WettedArea(), 1e-12)
}
