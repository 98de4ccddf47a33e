package rocket_test

import (
	"strings"
	"testing"

	"github.com/loftwing/launchcore/pkg/motor"
	"github.com/loftwing/launchcore/pkg/rocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const engData = `F15 29 124 5-10-15 0.060 0.1015 TestCo
0.000 0.000
0.100 15.000
0.900 8.000
1.200 0.000
`

func TestMotorComponentMassDropsAfterIgnition(t *testing.T) {
	def, err := motor.ParseEng(strings.NewReader(engData))
	require.NoError(t, err)
	mc := rocket.NewMotorComponent("M1", motor.New(def))

	before := mc.Mass(-1)
	mc.Ignite(0)
	after := mc.Mass(5)
	assert.Equal(t, def.TotalMassKg, before)
	assert.InDelta(t, def.TotalMassKg-def.PropellantMassKg, after, 1e-9)
}

func TestMotorComponentThrustZeroBeforeIgnition(t *testing.T) {
	def, err := motor.ParseEng(strings.NewReader(engData))
	require.NoError(t, err)
	mc := rocket.NewMotorComponent("M1", motor.New(def))
	th := mc.Thrust(0)
	assert.Equal(t, 0.0, th.X)
}

func TestMotorComponentThrustApplicationPointIsMotorLength(t *testing.T) {
	def, err := motor.ParseEng(strings.NewReader(engData))
	require.NoError(t, err)
	m := motor.New(def)
	mc := rocket.NewMotorComponent("M1", m)
	p := mc.ThrustApplicationPoint(0)
	assert.InDelta(t, m.Length(), p.X, 1e-9)
}
