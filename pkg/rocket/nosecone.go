package rocket

import (
	"github.com/loftwing/launchcore/pkg/materials"
	"github.com/loftwing/launchcore/pkg/shapes"
	"github.com/loftwing/launchcore/pkg/types"
)

// Nosecone is a Haack-family body of revolution capping a stage's forward
// end; its only permitted children are InternalComponents (e.g. an avionics
// bay mass mounted inside the cone).
type Nosecone struct {
	Node
	shape    *shapes.Nosecone
	material materials.Material
	finish   materials.Finish
}

// NewNosecone builds a Nosecone component from a Haack shape and material.
func NewNosecone(name string, baseRadius, length, kappa, thickness float64, mat materials.Material, finish materials.Finish) *Nosecone {
	n := &Nosecone{
		Node:     newNode(KindNosecone, name),
		material: mat,
		finish:   finish,
	}
	if thickness > 0 {
		n.shape = shapes.NewHollowNosecone(baseRadius, length, kappa, thickness)
	} else {
		n.shape = shapes.NewNosecone(baseRadius, length, kappa)
	}
	n.bind(n)
	return n
}

func (n *Nosecone) Shape() *shapes.Nosecone      { return n.shape }
func (n *Nosecone) Finish() materials.Finish     { return n.finish }
func (n *Nosecone) Material() materials.Material { return n.material }

func (n *Nosecone) selfMass(float64) float64 { return n.shape.Volume() * n.material.Density }

func (n *Nosecone) selfCOM(float64) types.Vector3 { return n.shape.CenterOfMass() }

func (n *Nosecone) selfInertia(float64) types.Matrix3x3 {
	return n.shape.InertiaAboutCOM().MultiplyScalar(n.material.Density)
}

func (n *Nosecone) Mass(t float64) float64 {
	return n.Node.composeMass(t, n.selfMass, n.selfCOM, n.selfInertia).mass
}
func (n *Nosecone) CenterOfMass(t float64) types.Vector3 {
	return n.Node.composeMass(t, n.selfMass, n.selfCOM, n.selfInertia).com
}
func (n *Nosecone) InertiaAboutOrigin(t float64) types.Matrix3x3 {
	return n.Node.composeMass(t, n.selfMass, n.selfCOM, n.selfInertia).inertia
}

func (n *Nosecone) Thrust(float64) types.Vector3 { return types.Vector3{} }

func (n *Nosecone) ThrustApplicationPoint(float64) types.Vector3 { return types.Vector3{} }
