package motor_test

import (
	"strings"
	"testing"

	"github.com/loftwing/launchcore/pkg/motor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEng = `; sample motor data file
F15 29 124 5-10-15 0.060 0.1015 TestCo
0.000 0.000
0.100 15.000
0.500 15.000
0.900 8.000
1.200 0.000
`

func parseSample(t *testing.T) *motor.Definition {
	t.Helper()
	def, err := motor.ParseEng(strings.NewReader(sampleEng))
	require.NoError(t, err)
	return def
}

func TestParseEngHeader(t *testing.T) {
	def := parseSample(t)
	assert.Equal(t, "F15", def.Designation)
	assert.InDelta(t, 0.029, def.DiameterM, 1e-9)
	assert.InDelta(t, 0.124, def.LengthM, 1e-9)
	assert.Equal(t, "5-10-15", def.Delays)
	assert.InDelta(t, 0.060, def.PropellantMassKg, 1e-9)
	assert.InDelta(t, 0.1015, def.TotalMassKg, 1e-9)
	assert.Equal(t, "TestCo", def.Manufacturer)
	assert.Len(t, def.Thrust, 5)
	assert.InDelta(t, 1.2, def.BurnTime(), 1e-9)
}

func TestParseEngRejectsMissingHeader(t *testing.T) {
	_, err := motor.ParseEng(strings.NewReader("; just a comment\n"))
	assert.Error(t, err)
}

func TestMotorMassBeforeIgnitionIsTotalMass(t *testing.T) {
	m := motor.New(parseSample(t))
	assert.InDelta(t, m.Def.TotalMassKg, m.Mass(-1), 1e-9)
	assert.Equal(t, 0.0, m.Thrust(-1))
}

func TestMotorMassAfterBurnoutIsDryMass(t *testing.T) {
	m := motor.New(parseSample(t))
	m.Ignite(0)
	dry := m.Def.TotalMassKg - m.Def.PropellantMassKg
	assert.InDelta(t, dry, m.Mass(100), 1e-9)
	assert.Equal(t, 0.0, m.Thrust(100))
}

func TestMotorMassMonotonicDuringBurn(t *testing.T) {
	m := motor.New(parseSample(t))
	m.Ignite(10) // ignite at an arbitrary global time
	prev := m.Mass(10)
	for _, dt := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 1.1, 1.2} {
		cur := m.Mass(10 + dt)
		assert.LessOrEqual(t, cur, prev+1e-12)
		prev = cur
	}
}

func TestMotorThrustInterpolatesLinearly(t *testing.T) {
	m := motor.New(parseSample(t))
	m.Ignite(0)
	assert.InDelta(t, 7.5, m.Thrust(0.05), 1e-9) // halfway between 0 and 15
}

func TestMotorFSMTransitions(t *testing.T) {
	m := motor.New(parseSample(t))
	assert.Equal(t, motor.StateIdle, m.State())
	m.Ignite(0)
	assert.Equal(t, motor.StateIgnited, m.State())
	m.UpdateFSMState(0.01)
	assert.Equal(t, motor.StateBurning, m.State())
	m.UpdateFSMState(1.3)
	assert.Equal(t, motor.StateBurnedOut, m.State())
}

func TestMotorAverageThrust(t *testing.T) {
	m := motor.New(parseSample(t))
	assert.Greater(t, m.AverageThrust(), 0.0)
}
