package aero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinSetAeroScalesByFinCountAndFactors(t *testing.T) {
	g := rectFinGeom{root: 0.1, tip: 0.05, span: 0.08, sweep: 0.03}
	single := NewFin(g, 0.01, 0.3, 0.5, 1e-5)
	fs := NewFinSetAero(single, 4, 1.0, 1.1, 0.02)

	f := Flow{Mach: 0.3, Alpha: 0.02}
	singleCo := single.Evaluate(f)
	setCo := fs.Evaluate(f)

	expected := singleCo.CNAlpha * (4.0 / 2.0) * 1.0 * 1.1
	assert.InDelta(t, expected, setCo.CNAlpha, 1e-9)
}

func TestFinSetAeroFrictionDragSumsOverFins(t *testing.T) {
	g := rectFinGeom{root: 0.1, tip: 0.05, span: 0.08, sweep: 0.03}
	single := NewFin(g, 0.01, 0.3, 0.5, 1e-5)
	fs := NewFinSetAero(single, 3, 1.0, 1.0, 0.02)
	f := Flow{Mach: 0.3, ReOverL: 1e6}
	singleCo := single.Evaluate(f)
	setCo := fs.Evaluate(f)
	assert.InDelta(t, singleCo.CdfAxial*3, setCo.CdfAxial, 1e-9)
}

func TestFinSetAeroInvalidatePropagatesToFin(t *testing.T) {
	g := rectFinGeom{root: 0.1, tip: 0.05, span: 0.08, sweep: 0.03}
	single := NewFin(g, 0.01, 0.3, 0.5, 1e-5)
	fs := NewFinSetAero(single, 2, 1.0, 1.0, 0.02)
	f := Flow{Mach: 0.3, Alpha: 0.02}
	a := fs.Evaluate(f)
	fs.Invalidate()
	b := fs.Evaluate(f)
	assert.InDelta(t, a.CNAlpha, b.CNAlpha, 1e-9)
}

func TestFinSetAeroCMDampIsPrecomputedConstant(t *testing.T) {
	g := rectFinGeom{root: 0.1, tip: 0.05, span: 0.08, sweep: 0.03}
	single := NewFin(g, 0.01, 0.3, 0.5, 1e-5)
	fs := NewFinSetAero(single, 4, 1.0, 1.1, 0.037)
	co := fs.Evaluate(Flow{Mach: 0.3, Alpha: 0.02, V: 50, Omega: 0.1})
	assert.Equal(t, 0.037, co.CMDamp)
}
