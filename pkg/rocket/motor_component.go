package rocket

import (
	"github.com/loftwing/launchcore/pkg/motor"
	"github.com/loftwing/launchcore/pkg/types"
)

// MotorComponent wraps a pkg/motor.Motor as a tree leaf, translating its
// time-varying mass/thrust into the component mass-model contract.
type MotorComponent struct {
	Node
	motor *motor.Motor
}

// NewMotorComponent wraps m as a tree component.
func NewMotorComponent(name string, m *motor.Motor) *MotorComponent {
	mc := &MotorComponent{Node: newNode(KindMotor, name), motor: m}
	mc.bind(mc)
	return mc
}

func (m *MotorComponent) Motor() *motor.Motor { return m.motor }

// Ignite lights the motor at global time t.
func (m *MotorComponent) Ignite(t float64) {
	m.motor.Ignite(t)
	m.InvalidateCache()
}

func (m *MotorComponent) Mass(t float64) float64 {
	m.motor.UpdateFSMState(t)
	return m.motor.Mass(t)
}

// CenterOfMass approximates the motor as a uniform cylinder: its CoM sits at
// the geometric midpoint of its length.
func (m *MotorComponent) CenterOfMass(float64) types.Vector3 {
	return types.Vector3{X: m.motor.Length() / 2}
}

// InertiaAboutOrigin is a thin-rod approximation about the motor's own CoM;
// motors are short relative to a stage and contribute little off-axis
// inertia beyond their mass distribution along X.
func (m *MotorComponent) InertiaAboutOrigin(t float64) types.Matrix3x3 {
	mass := m.Mass(t)
	l := m.motor.Length()
	iyy := mass * l * l / 12.0
	return types.Matrix3x3{M22: iyy, M33: iyy}
}

func (m *MotorComponent) Thrust(t float64) types.Vector3 {
	m.motor.UpdateFSMState(t)
	return types.Vector3{X: m.motor.Thrust(t)}
}

// ThrustApplicationPoint is (length, 0, 0) relative to the motor's own
// local position.
func (m *MotorComponent) ThrustApplicationPoint(float64) types.Vector3 {
	return types.Vector3{X: m.motor.Length()}
}
