package rocket

import (
	"math"

	"github.com/loftwing/launchcore/pkg/types"
)

// Rocket is the tree root. Its own mass/CoM/inertia are the sum of its
// Stage children; InertiaAboutCOM additionally re-expresses the composed
// tip-origin inertia about the rocket's own center of mass.
type Rocket struct {
	Node
}

// New builds an empty Rocket; attach Stages via AddChild.
func New(name string) *Rocket {
	r := &Rocket{Node: newNode(KindRocket, name)}
	r.bind(r)
	return r
}

func (r *Rocket) selfMass(float64) float64           { return 0 }
func (r *Rocket) selfCOM(float64) types.Vector3       { return types.Vector3{} }
func (r *Rocket) selfInertia(float64) types.Matrix3x3 { return types.Matrix3x3{} }

func (r *Rocket) Mass(t float64) float64 {
	return r.Node.composeMass(t, r.selfMass, r.selfCOM, r.selfInertia).mass
}
func (r *Rocket) CenterOfMass(t float64) types.Vector3 {
	return r.Node.composeMass(t, r.selfMass, r.selfCOM, r.selfInertia).com
}

// InertiaAboutOrigin is the tree's composed inertia about the tip (the
// rocket's own local origin).
func (r *Rocket) InertiaAboutOrigin(t float64) types.Matrix3x3 {
	return r.Node.composeMass(t, r.selfMass, r.selfCOM, r.selfInertia).inertia
}

// InertiaAboutCOM re-expresses InertiaAboutOrigin about the rocket's own
// center of mass by inverse-shifting the parallel-axis term.
func (r *Rocket) InertiaAboutCOM(t float64) types.Matrix3x3 {
	i := r.InertiaAboutOrigin(t)
	com := r.CenterOfMass(t)
	mass := r.Mass(t)
	return types.ParallelAxisShift(i, com, mass, true)
}

func (r *Rocket) Thrust(t float64) types.Vector3 {
	var total types.Vector3
	for _, c := range r.Children() {
		total = total.Add(c.Thrust(t))
	}
	return total
}

func (r *Rocket) ThrustApplicationPoint(t float64) types.Vector3 {
	for _, c := range r.Children() {
		p := c.ThrustApplicationPoint(t)
		if p != (types.Vector3{}) {
			return p.Add(c.LocalPosition())
		}
	}
	return types.Vector3{}
}

// ReferenceArea returns the maximum reference area over every BodyTube and
// Nosecone in the tree, per the aerodynamic contract's rule that the rocket
// root reports the largest cross-section in its subtree.
func (r *Rocket) ReferenceArea() float64 {
	var max float64
	var walk func(Component)
	walk = func(c Component) {
		switch v := c.(type) {
		case *BodyTube:
			if a := v.shape.ReferenceArea(); a > max {
				max = a
			}
		case *Nosecone:
			if a := v.shape.ReferenceArea(); a > max {
				max = a
			}
		}
		for _, child := range c.Children() {
			walk(child)
		}
	}
	walk(r)
	return max
}

// ReferenceLength returns sqrt(4*ReferenceArea/pi), the diameter implied by
// the rocket's maximum cross-section.
func (r *Rocket) ReferenceLength() float64 {
	a := r.ReferenceArea()
	if a <= 0 {
		return 0
	}
	return 2 * math.Sqrt(a/math.Pi)
}
