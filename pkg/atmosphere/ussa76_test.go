package atmosphere_test

import (
	"testing"

	"github.com/loftwing/launchcore/pkg/atmosphere"
	"github.com/stretchr/testify/assert"
)

func TestTemperatureSeaLevel(t *testing.T) {
	assert.InDelta(t, 288.15, atmosphere.Temperature(0), 0.01)
}

func TestPressureSeaLevel(t *testing.T) {
	assert.InDelta(t, 101325.0, atmosphere.Pressure(0), 1.0)
}

func TestDensityDecreasesWithAltitude(t *testing.T) {
	d0 := atmosphere.Density(0)
	d10k := atmosphere.Density(10000)
	d50k := atmosphere.Density(50000)
	assert.Greater(t, d0, d10k)
	assert.Greater(t, d10k, d50k)
}

func TestGravityDecreasesWithAltitude(t *testing.T) {
	assert.InDelta(t, atmosphere.G0, atmosphere.Gravity(0), 1e-9)
	assert.Less(t, atmosphere.Gravity(100000), atmosphere.Gravity(0))
}

func TestSpeedOfSoundPositive(t *testing.T) {
	assert.Greater(t, atmosphere.SpeedOfSound(0), 300.0)
	assert.Greater(t, atmosphere.SpeedOfSound(11000), 250.0)
}

func TestHighAltitudeContinuity(t *testing.T) {
	// Temperature should stay finite and positive across every regime boundary.
	for _, z := range []float64{85999, 86001, 90999, 91001, 109999, 110001, 119999, 120001, 500000, 1000000} {
		tp := atmosphere.Temperature(z)
		assert.Greater(t, tp, 0.0, "z=%v", z)
	}
}

func TestAltitudeClampedBeyondRange(t *testing.T) {
	withinRange := atmosphere.Temperature(1000000)
	beyondRange := atmosphere.Temperature(5000000)
	assert.Equal(t, withinRange, beyondRange)
}

func TestDynamicViscosityPositive(t *testing.T) {
	assert.Greater(t, atmosphere.DynamicViscosity(0), 0.0)
}

func TestKinematicViscosityIncreasesWithAltitude(t *testing.T) {
	nu0 := atmosphere.KinematicViscosity(0)
	nu20k := atmosphere.KinematicViscosity(20000)
	assert.Greater(t, nu20k, nu0)
}

func TestMeanMolarMassDropsAboveMesopause(t *testing.T) {
	m0 := atmosphere.MeanMolarMass(0)
	m500k := atmosphere.MeanMolarMass(500000)
	assert.Greater(t, m0, m500k)
}
