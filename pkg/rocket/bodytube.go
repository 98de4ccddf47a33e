package rocket

import (
	"github.com/loftwing/launchcore/pkg/materials"
	"github.com/loftwing/launchcore/pkg/shapes"
	"github.com/loftwing/launchcore/pkg/types"
)

// BodyTube is a hollow or filled cylindrical shell, the load-bearing spine a
// stage's fins and motor attach to.
type BodyTube struct {
	Node
	shape    *shapes.Cylinder
	material materials.Material
	finish   materials.Finish
}

// NewBodyTube builds a BodyTube from a cylinder shape and a material.
func NewBodyTube(name string, radius, length, thickness float64, mat materials.Material, finish materials.Finish) *BodyTube {
	bt := &BodyTube{
		Node:     newNode(KindBodyTube, name),
		shape:    shapes.NewHollowCylinder(radius, length, thickness),
		material: mat,
		finish:   finish,
	}
	bt.bind(bt)
	return bt
}

// SetThickness updates wall thickness and invalidates the cache.
func (b *BodyTube) SetThickness(t float64) {
	b.shape = shapes.NewHollowCylinder(b.shape.Radius, b.shape.LengthM, t)
	b.InvalidateCache()
}

func (b *BodyTube) Shape() *shapes.Cylinder   { return b.shape }
func (b *BodyTube) Finish() materials.Finish  { return b.finish }
func (b *BodyTube) Material() materials.Material { return b.material }

func (b *BodyTube) selfMass(float64) float64 { return b.shape.Volume() * b.material.Density }

func (b *BodyTube) selfCOM(float64) types.Vector3 { return b.shape.CenterOfMass() }

func (b *BodyTube) selfInertia(float64) types.Matrix3x3 {
	return b.shape.InertiaAboutCOM().MultiplyScalar(b.material.Density)
}

func (b *BodyTube) Mass(t float64) float64 {
	return b.Node.composeMass(t, b.selfMass, b.selfCOM, b.selfInertia).mass
}
func (b *BodyTube) CenterOfMass(t float64) types.Vector3 {
	return b.Node.composeMass(t, b.selfMass, b.selfCOM, b.selfInertia).com
}
func (b *BodyTube) InertiaAboutOrigin(t float64) types.Matrix3x3 {
	return b.Node.composeMass(t, b.selfMass, b.selfCOM, b.selfInertia).inertia
}

// Thrust sums the body-axis thrust of any child Motor; a BodyTube itself
// produces none.
func (b *BodyTube) Thrust(t float64) types.Vector3 {
	var total types.Vector3
	for _, c := range b.Children() {
		total = total.Add(c.Thrust(t))
	}
	return total
}

// ThrustApplicationPoint returns the first child motor's application point,
// offset by that motor's local position, whether or not it is burning; the
// zero vector if no motor is present.
func (b *BodyTube) ThrustApplicationPoint(t float64) types.Vector3 {
	for _, c := range b.Children() {
		if c.Kind() == KindMotor {
			return c.ThrustApplicationPoint(t).Add(c.LocalPosition())
		}
	}
	return types.Vector3{}
}

func (b *BodyTube) Radius() float64 { return b.shape.Radius }
