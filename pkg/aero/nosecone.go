package aero

import "math"

// NoseShape identifies which tabulated pressure-drag family a nosecone
// belongs to, per section 4.4.2's stagnation/fineness-corrected correlation.
type NoseShape int

const (
	ShapeVonKarman NoseShape = iota
	ShapeLVHaack
	ShapeEllipsoid
	ShapePower34
	ShapePower12
	ShapePower14
	ShapeParabolic1
	ShapeParabolicHalf
	ShapeParabolic34
)

// noseC3 is the tabulated c3 coefficient (the fully-developed, large
// fineness-ratio asymptote) for each family; c0 is the common stagnation
// baseline and is computed directly from the half-angle, not tabulated.
var noseC3 = map[NoseShape]float64{
	ShapeVonKarman:     0.876,
	ShapeLVHaack:       0.813,
	ShapeEllipsoid:     0.868,
	ShapePower34:       1.0,
	ShapePower12:       1.0,
	ShapePower14:       1.0,
	ShapeParabolic1:    0.900,
	ShapeParabolicHalf: 0.950,
	ShapeParabolic34:   0.930,
}

// NoseProfile is the shape contract a nosecone aero node needs.
type NoseProfile interface {
	Length() float64
	BaseRadiusAt(x float64) float64 // radius at axial station x; BaseRadiusAt(0) is the tip
	Volume() float64
	WettedArea() float64
	PlanformArea() float64
	PlanformCenter() float64
	AreaAt(x float64) float64
	AverageRadius() float64
	BisectedAverageRadius(x float64) (top, bottom float64)
}

// Nosecone is the aero node wrapping a pkg/shapes.Nosecone. It reuses Body's
// potential-flow normal force/pitching-moment correlations (a nosecone is
// still a body of revolution) and adds the pressure-drag correlation that
// only applies to the foremost body component.
type Nosecone struct {
	body    *Body
	profile NoseProfile
	kappa   float64
}

// NewNosecone builds a nosecone aero node. roughness is the equivalent
// sand-grain roughness height used by the shared friction-drag correlation.
// kappa is the rocket's Haack shape parameter (0 = Von Karman, 1/3 =
// LV-Haack); pressureDrag blends the tabulated c3 asymptote between those two
// endpoints rather than picking one shape unconditionally.
func NewNosecone(profile NoseProfile, kappa float64, refArea, refLen, roughness float64) *Nosecone {
	adapter := noseBodyAdapter{profile}
	return &Nosecone{
		body:    NewBody(adapter, refArea, refLen, roughness, 0),
		profile: profile,
		kappa:   kappa,
	}
}

type noseBodyAdapter struct{ p NoseProfile }

func (a noseBodyAdapter) Length() float64          { return a.p.Length() }
func (a noseBodyAdapter) AreaAt(x float64) float64 { return a.p.AreaAt(x) }
func (a noseBodyAdapter) Volume() float64          { return a.p.Volume() }
func (a noseBodyAdapter) PlanformArea() float64    { return a.p.PlanformArea() }
func (a noseBodyAdapter) PlanformCenter() float64  { return a.p.PlanformCenter() }
func (a noseBodyAdapter) WettedArea() float64      { return a.p.WettedArea() }
func (a noseBodyAdapter) AverageRadius() float64   { return a.p.AverageRadius() }
func (a noseBodyAdapter) BisectedAverageRadius(x float64) (top, bottom float64) {
	return a.p.BisectedAverageRadius(x)
}

func (n *Nosecone) ReferenceArea() float64   { return n.body.ReferenceArea() }
func (n *Nosecone) ReferenceLength() float64 { return n.body.ReferenceLength() }
func (n *Nosecone) Invalidate() {
	n.body.Invalidate()
}

func (n *Nosecone) Evaluate(f Flow) Coefficients {
	out := n.body.Evaluate(f)
	out.CdpAxial = n.pressureDrag(f.Mach)
	return out
}

// pressureDrag implements the stagnation-baseline, fineness-corrected
// nosecone pressure-drag correlation: cdm0 = 0.8*sin(half-angle)^2 at the
// stagnation baseline, blended toward the shape family's asymptote c3 by
// the fineness ratio via a log-interpolation exponent.
func (n *Nosecone) pressureDrag(mach float64) float64 {
	if mach >= 1 {
		return 0 // supersonic wave drag is outside the potential-flow pressure term; handled as zero floor here
	}
	L := n.profile.Length()
	r := n.profile.BaseRadiusAt(L)
	if L == 0 || r == 0 {
		return 0
	}
	halfAngle := math.Atan(r / L)
	c0 := 0.8 * math.Sin(halfAngle) * math.Sin(halfAngle)
	c3 := haackC3(n.kappa)
	fn := L / (2 * r)
	if fn <= 0 {
		return c0
	}
	exp := math.Log(fn+1) / math.Log(4)
	return c0 * math.Pow(c3/c0, exp)
}

// haackC3 linearly blends the tabulated pressure-drag asymptote c3 between
// the two ends of the Haack shape family this module's nosecones are drawn
// from: kappa=0 (Von Karman) and kappa=1/3 (LV-Haack). Shape interpolation
// parameter kappa therefore selects between adjacent tabulated sets by
// linear blending rather than snapping to one shape.
func haackC3(kappa float64) float64 {
	const kappaMax = 1.0 / 3.0
	t := kappa / kappaMax
	t = clamp(t, 0, 1)
	lo, hi := noseC3[ShapeVonKarman], noseC3[ShapeLVHaack]
	return lo + (hi-lo)*t
}
