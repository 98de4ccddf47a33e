package rocket_test

import (
	"testing"

	"github.com/loftwing/launchcore/pkg/materials"
	"github.com/loftwing/launchcore/pkg/rocket"
	"github.com/stretchr/testify/assert"
)

func TestMultiFinCoefficientBoundaries(t *testing.T) {
	assert.Equal(t, 1.0, rocket.MultiFinCoefficient(3))
	assert.Equal(t, 1.0, rocket.MultiFinCoefficient(4))
	assert.Equal(t, 0.75, rocket.MultiFinCoefficient(9))
	assert.Greater(t, rocket.MultiFinCoefficient(6), 1.0)
}

func TestFinSetMassIsNTimesFin(t *testing.T) {
	fin := rocket.NewFin(0.1, 0.05, 0.06, 0.02, 0.003, materials.Plywood)
	fs := rocket.NewFinSet("fins", fin, 4, 0.05)
	single := fin.Shape().Volume() * materials.Plywood.Density
	assert.InDelta(t, 4*single, fs.Mass(0), 1e-9)
}

func TestFinSetInertiaSymmetricAcrossFins(t *testing.T) {
	fin := rocket.NewFin(0.1, 0.05, 0.06, 0.02, 0.003, materials.Plywood)
	fs := rocket.NewFinSet("fins", fin, 4, 0.05)
	i := fs.InertiaAboutOrigin(0)
	// 4 fins at 90 degrees apart should leave no net product-of-inertia term.
	assert.InDelta(t, 0, i.M12, 1e-6)
	assert.InDelta(t, 0, i.M13, 1e-6)
}

func TestFinSetInterferenceFactor(t *testing.T) {
	fin := rocket.NewFin(0.1, 0.05, 0.06, 0.02, 0.003, materials.Plywood)
	fs := rocket.NewFinSet("fins", fin, 3, 0.05)
	f := fs.InterferenceFactor()
	assert.Greater(t, f, 1.0)
	assert.Less(t, f, 2.0)
}

func TestFinSetPitchDampingFactorPositive(t *testing.T) {
	fin := rocket.NewFin(0.1, 0.05, 0.06, 0.02, 0.003, materials.Plywood)
	fs := rocket.NewFinSet("fins", fin, 3, 0.05)
	assert.Greater(t, fs.PitchDampingFactor(0.01, 0.5), 0.0)
}
