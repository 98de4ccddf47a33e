package rocket

import "github.com/loftwing/launchcore/pkg/types"

// Stage is a pure composite node: its own mass/CoM/inertia are exactly the
// sum of its BodyTube and Nosecone children.
type Stage struct {
	Node
}

// NewStage builds an empty stage; attach a BodyTube and Nosecone via AddChild.
func NewStage(name string) *Stage {
	s := &Stage{Node: newNode(KindStage, name)}
	s.bind(s)
	return s
}

func (s *Stage) selfMass(float64) float64               { return 0 }
func (s *Stage) selfCOM(float64) types.Vector3           { return types.Vector3{} }
func (s *Stage) selfInertia(float64) types.Matrix3x3     { return types.Matrix3x3{} }

func (s *Stage) Mass(t float64) float64 {
	return s.Node.composeMass(t, s.selfMass, s.selfCOM, s.selfInertia).mass
}
func (s *Stage) CenterOfMass(t float64) types.Vector3 {
	return s.Node.composeMass(t, s.selfMass, s.selfCOM, s.selfInertia).com
}
func (s *Stage) InertiaAboutOrigin(t float64) types.Matrix3x3 {
	return s.Node.composeMass(t, s.selfMass, s.selfCOM, s.selfInertia).inertia
}

func (s *Stage) Thrust(t float64) types.Vector3 {
	var total types.Vector3
	for _, c := range s.Children() {
		total = total.Add(c.Thrust(t))
	}
	return total
}

func (s *Stage) ThrustApplicationPoint(t float64) types.Vector3 {
	for _, c := range s.Children() {
		if c.Kind() == KindBodyTube {
			p := c.ThrustApplicationPoint(t)
			if p != (types.Vector3{}) {
				return p.Add(c.LocalPosition())
			}
		}
	}
	return types.Vector3{}
}
