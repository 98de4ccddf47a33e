package rocket

import (
	"math"

	"github.com/google/uuid"
	"github.com/loftwing/launchcore/pkg/materials"
	"github.com/loftwing/launchcore/pkg/shapes"
	"github.com/loftwing/launchcore/pkg/types"
)

// multiFinCoefficient table for fin-count correction, spec-mandated values
// for 5/6/7 fins; 1.0 below 5, 0.75 above 8.
var multiFinCoefficient = map[int]float64{5: 1.1, 6: 1.15, 7: 1.2}

// MultiFinCoefficient returns the multi-fin interference coefficient for n
// identical fins.
func MultiFinCoefficient(n int) float64 {
	switch {
	case n < 5:
		return 1.0
	case n > 8:
		return 0.75
	default:
		if v, ok := multiFinCoefficient[n]; ok {
			return v
		}
		return 1.0
	}
}

// Fin is a single trapezoidal fin owned by exactly one FinSet. It never
// appears as an independent tree node; FinSet replicates it N times.
type Fin struct {
	id       uuid.UUID
	shape    *shapes.TrapezoidalPrism
	material materials.Material
}

// NewFin builds a Fin from a trapezoidal-prism shape and material.
func NewFin(rootChord, tipChord, span, sweep, thickness float64, mat materials.Material) *Fin {
	return &Fin{
		id:       uuid.New(),
		shape:    shapes.NewTrapezoidalPrism(rootChord, tipChord, span, sweep, thickness),
		material: mat,
	}
}

func (f *Fin) ID() uuid.UUID              { return f.id }
func (f *Fin) Shape() *shapes.TrapezoidalPrism { return f.shape }

// FinSet aggregates N identical fins mounted at equal roll angles around the
// body axis. A FinSet is a tree node (owned by a BodyTube); its constituent
// Fin is a plain field, never an addressable tree child.
type FinSet struct {
	Node
	fin        *Fin
	numFins    int
	bodyRadius float64 // radius of the body tube at this finset's axial station
}

// NewFinSet builds a FinSet of numFins identical copies of fin, mounted
// around a body of the given radius.
func NewFinSet(name string, fin *Fin, numFins int, bodyRadius float64) *FinSet {
	fs := &FinSet{
		Node:       newNode(KindFinSet, name),
		fin:        fin,
		numFins:    numFins,
		bodyRadius: bodyRadius,
	}
	fs.bind(fs)
	return fs
}

func (fs *FinSet) NumFins() int      { return fs.numFins }
func (fs *FinSet) Fin() *Fin         { return fs.fin }
func (fs *FinSet) BodyRadius() float64 { return fs.bodyRadius }

func (fs *FinSet) selfMass(float64) float64 {
	return float64(fs.numFins) * fs.fin.shape.Volume() * fs.fin.material.Density
}

// selfCOM returns the finset's axial center of mass; by symmetry the
// spanwise/radial components of N equally-spaced fins cancel.
func (fs *FinSet) selfCOM(float64) types.Vector3 {
	com := fs.fin.shape.CenterOfMass()
	return types.Vector3{X: com.X}
}

// rotationAboutX builds the rotation matrix for angle radians about the
// body's long (X) axis, reusing the same per-axis block RotationFromEuler
// composes from.
func rotationAboutX(angle float64) types.Matrix3x3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return types.Matrix3x3{
		M11: 1, M12: 0, M13: 0,
		M21: 0, M22: c, M23: -s,
		M31: 0, M32: s, M33: c,
	}
}

// selfInertia rotates the fin's own inertia tensor around the body axis by
// i*2*pi/N for each of the N fins, parallel-axis shifts each copy out to the
// body radius, and sums the N contributions.
func (fs *FinSet) selfInertia(float64) types.Matrix3x3 {
	finI := fs.fin.shape.InertiaAboutCOM().MultiplyScalar(fs.fin.material.Density)
	finMass := fs.fin.shape.Volume() * fs.fin.material.Density
	finCOM := fs.fin.shape.CenterOfMass()

	var total types.Matrix3x3
	for i := 0; i < fs.numFins; i++ {
		angle := float64(i) * 2 * math.Pi / float64(fs.numFins)
		r := rotationAboutX(angle)
		rotated := types.TransformInertiaBodyToWorld(&finI, &r)

		// Displacement of this fin's CoM from the body axis: spanwise offset
		// plus the body radius, rotated into this fin's roll position.
		localD := types.Vector3{X: finCOM.X, Y: fs.bodyRadius + finCOM.Y, Z: 0}
		d := *r.MultiplyVector(&localD)

		shifted := types.ParallelAxisShift(*rotated, d, finMass, false)
		total = total.Add(shifted)
	}
	return total
}

func (fs *FinSet) Mass(t float64) float64 {
	return fs.Node.composeMass(t, fs.selfMass, fs.selfCOM, fs.selfInertia).mass
}
func (fs *FinSet) CenterOfMass(t float64) types.Vector3 {
	return fs.Node.composeMass(t, fs.selfMass, fs.selfCOM, fs.selfInertia).com
}
func (fs *FinSet) InertiaAboutOrigin(t float64) types.Matrix3x3 {
	return fs.Node.composeMass(t, fs.selfMass, fs.selfCOM, fs.selfInertia).inertia
}
func (fs *FinSet) Thrust(float64) types.Vector3                 { return types.Vector3{} }
func (fs *FinSet) ThrustApplicationPoint(float64) types.Vector3 { return types.Vector3{} }

// InterferenceFactor returns 1 + r_body/(r_body + span), the fin-body
// interference correction used by the aerodynamic engine.
func (fs *FinSet) InterferenceFactor() float64 {
	span := fs.fin.shape.Span
	if fs.bodyRadius+span == 0 {
		return 1
	}
	return 1 + fs.bodyRadius/(fs.bodyRadius+span)
}

// PitchDampingFactor returns 0.6*(min(N,4)*A_fin*d_mac)/(A_ref*L_ref), where
// d_mac is the radial distance from the body axis to the fin's spanwise mean
// aerodynamic chord (body radius plus y_mac), not the chord-length MAC.
func (fs *FinSet) PitchDampingFactor(refArea, refLength float64) float64 {
	if refArea <= 0 || refLength <= 0 {
		return 0
	}
	n := fs.numFins
	if n > 4 {
		n = 4
	}
	aFin := fs.fin.shape.PlanformArea()
	dMac := fs.bodyRadius + fs.fin.shape.MeanAerodynamicChordSpan()
	return 0.6 * (float64(n) * aFin * dMac) / (refArea * refLength)
}
