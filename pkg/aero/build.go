package aero

import (
	"github.com/loftwing/launchcore/pkg/rocket"
	"github.com/loftwing/launchcore/pkg/shapes"
)

// cylinderBody adapts a pkg/shapes.Cylinder to BodyProfile; the cylinder's
// own PlanformCenter/CenterOfMass return Vector3, so only the axial
// component is surfaced here.
type cylinderBody struct{ c *shapes.Cylinder }

func (a cylinderBody) Length() float64          { return a.c.Length() }
func (a cylinderBody) AreaAt(x float64) float64 { return a.c.AreaAt(x) }
func (a cylinderBody) Volume() float64          { return a.c.Volume() }
func (a cylinderBody) PlanformArea() float64    { return a.c.PlanformArea() }
func (a cylinderBody) PlanformCenter() float64  { return a.c.PlanformCenter().X }
func (a cylinderBody) WettedArea() float64      { return a.c.WettedArea() }
func (a cylinderBody) AverageRadius() float64   { return a.c.AverageRadius() }
func (a cylinderBody) BisectedAverageRadius(x float64) (top, bottom float64) {
	return a.c.BisectedAverageRadius(x)
}

type noseconeProfile struct{ n *shapes.Nosecone }

func (a noseconeProfile) Length() float64                { return a.n.Length() }
func (a noseconeProfile) Volume() float64                { return a.n.Volume() }
func (a noseconeProfile) WettedArea() float64            { return a.n.WettedArea() }
func (a noseconeProfile) PlanformArea() float64          { return a.n.PlanformArea() }
func (a noseconeProfile) PlanformCenter() float64        { return a.n.PlanformCenter().X }
func (a noseconeProfile) AreaAt(x float64) float64       { return a.n.AreaAt(x) }
func (a noseconeProfile) BaseRadiusAt(x float64) float64 { return a.n.RadiusAt(x) }
func (a noseconeProfile) AverageRadius() float64         { return a.n.AverageRadius() }
func (a noseconeProfile) BisectedAverageRadius(x float64) (top, bottom float64) {
	return a.n.BisectedAverageRadius(x)
}

type finGeom struct{ p *shapes.TrapezoidalPrism }

func (g finGeom) RootChord() float64            { return g.p.RootChord }
func (g finGeom) TipChord() float64             { return g.p.TipChord }
func (g finGeom) Span() float64                 { return g.p.Span }
func (g finGeom) SweepDistance() float64        { return g.p.SweepDistance }
func (g finGeom) MeanAerodynamicChord() float64 { return g.p.MeanAerodynamicChord() }
func (g finGeom) PlanformArea() float64         { return g.p.PlanformArea() }
func (g finGeom) MidChordSweepAngle() float64   { return g.p.MidChordSweepAngle() }

// buildFinSet adapts a rocket FinSet into a FinSetAero node at absolute
// axial station x.
func buildFinSet(fs *rocket.FinSet, x, refArea, refLen float64) *FinSetAero {
	fin := fs.Fin()
	finNode := NewFin(finGeom{fin.Shape()}, refArea, refLen, x, 2e-6)
	cmDamp := fs.PitchDampingFactor(refArea, refLen)
	return NewFinSetAero(finNode, fs.NumFins(), rocket.MultiFinCoefficient(fs.NumFins()), fs.InterferenceFactor(), cmDamp)
}

// BuildTree walks a pkg/rocket component tree and returns the matching aero
// node tree: one Body per BodyTube, one Nosecone aero node per Nosecone, one
// FinSetAero per FinSet mounted on a body tube, all composed under per-stage and
// per-rocket Composite nodes and referenced to the rocket's own maximum
// reference area/length per the normalization rule of section 4.4.1. The
// last body tube encountered in tree order is flagged for base drag; callers
// with multiple stages that need a different aftmost body should rebuild
// the tree after staging separation.
func BuildTree(r *rocket.Rocket) Node {
	refArea := r.ReferenceArea()
	refLen := r.ReferenceLength()

	var lastBody *Body
	var stageNodes []Node

	for _, stage := range r.Children() {
		stageX := stage.LocalPosition().X
		var children []Node
		for _, c := range stage.Children() {
			x := stageX + c.LocalPosition().X
			switch v := c.(type) {
			case *rocket.BodyTube:
				body := NewBody(cylinderBody{v.Shape()}, refArea, refLen, v.Finish().Roughness, x)
				lastBody = body
				var sub []Node = []Node{body}
				for _, gc := range v.Children() {
					if gc.Kind() == rocket.KindFinSet {
						sub = append(sub, buildFinSet(gc.(*rocket.FinSet), x+gc.LocalPosition().X, refArea, refLen))
					}
				}
				children = append(children, NewComposite(refArea, refLen, sub...))
			case *rocket.Nosecone:
				nc := NewNosecone(noseconeProfile{v.Shape()}, v.Shape().Kappa, refArea, refLen, v.Finish().Roughness)
				var sub []Node = []Node{nc}
				children = append(children, NewComposite(refArea, refLen, sub...))
			}
		}
		if len(children) > 0 {
			stageNodes = append(stageNodes, NewComposite(refArea, refLen, children...))
		}
	}

	if lastBody != nil {
		lastBody.MarkBaseDrag(nil)
	}

	return NewComposite(refArea, refLen, stageNodes...)
}
