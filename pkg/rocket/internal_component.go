package rocket

import "github.com/loftwing/launchcore/pkg/types"

// InternalComponent is a non-structural lumped mass mounted inside a body
// tube or nosecone: avionics bays, ballast, recovery hardware.
type InternalComponent struct {
	Node
	mass    float64
	com     types.Vector3
	inertia types.Matrix3x3
}

// NewInternalComponent builds a lumped-mass leaf. inertia is about its own
// center of mass.
func NewInternalComponent(name string, mass float64, com types.Vector3, inertia types.Matrix3x3) *InternalComponent {
	ic := &InternalComponent{Node: newNode(KindInternalComponent, name), mass: mass, com: com, inertia: inertia}
	ic.bind(ic)
	return ic
}

func (ic *InternalComponent) Mass(float64) float64 { return ic.mass }

func (ic *InternalComponent) CenterOfMass(float64) types.Vector3 { return ic.com }

func (ic *InternalComponent) InertiaAboutOrigin(float64) types.Matrix3x3 { return ic.inertia }

func (ic *InternalComponent) Thrust(float64) types.Vector3 { return types.Vector3{} }

func (ic *InternalComponent) ThrustApplicationPoint(float64) types.Vector3 { return types.Vector3{} }

// SetMass updates the lumped mass and invalidates the cache.
func (ic *InternalComponent) SetMass(m float64) {
	ic.mass = m
	ic.InvalidateCache()
}
