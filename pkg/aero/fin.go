package aero

import "math"

// Regime is the fin CNalpha state machine's current flow regime, switched
// purely on Mach number at the 0.9/1.5 boundaries of section 4.4.4.
type Regime int

const (
	RegimeSubsonic Regime = iota
	RegimeTransonic
	RegimeSupersonic
)

func regimeFor(mach float64) Regime {
	switch {
	case mach < 0.9:
		return RegimeSubsonic
	case mach <= 1.5:
		return RegimeTransonic
	default:
		return RegimeSupersonic
	}
}

// FinGeometry is the shape contract a fin aero node needs: planform
// dimensions only, independent of material (the aero layer never needs
// mass) and of the body the fin is mounted on.
type FinGeometry interface {
	RootChord() float64
	TipChord() float64
	Span() float64
	SweepDistance() float64
	MeanAerodynamicChord() float64
	PlanformArea() float64
	MidChordSweepAngle() float64
}

// Fin evaluates a single fin panel's CNalpha/CP using the exact subsonic
// (Diederich) and supersonic (linearized thin-body) closed forms, bridged
// by a Hermite blend across the transonic regime where no closed form
// applies; see DESIGN.md for why the blend substitutes for the missing
// coefficient tables. N (the number of fins in the parent set) and the
// multi-fin interference coefficient are applied by FinSet, not here.
type Fin struct {
	cache     *nodeCache
	geom      FinGeometry
	refArea   float64
	refLen    float64
	xOffset   float64
	roughness float64
}

// NewFin builds a single-panel fin aero node. xOffset locates the fin
// root's leading edge in vehicle-axial coordinates; roughness is the
// equivalent sand-grain roughness height used by the friction-drag
// correlation shared with body components.
func NewFin(geom FinGeometry, refArea, refLen, xOffset, roughness float64) *Fin {
	return &Fin{cache: newNodeCache(), geom: geom, refArea: refArea, refLen: refLen, xOffset: xOffset, roughness: roughness}
}

func (fn *Fin) ReferenceArea() float64   { return fn.refArea }
func (fn *Fin) ReferenceLength() float64 { return fn.refLen }
func (fn *Fin) Invalidate()              { fn.cache.Invalidate() }

func (fn *Fin) Evaluate(f Flow) Coefficients {
	var out Coefficients
	cn := fn.cache.CNAlpha(f, func() float64 { return fn.cnAlpha(f.Mach, f.Alpha, f.Gamma) })
	cp := fn.cache.CP(f, func() float64 { return fn.cp(f.Mach) })

	out.CNAlpha = cn * fn.geom.PlanformArea() / fn.refArea
	out.CP = fn.xOffset + cp*fn.rootChordLength()
	out.CMAlpha = out.CNAlpha * (out.CP - fn.xOffset) / fn.refLen
	out.CdfAxial = frictionDragCoefficient(2*fn.geom.PlanformArea(), fn.refArea, f, fn.roughness, fn.geom.MeanAerodynamicChord())
	return out
}

func (fn *Fin) rootChordLength() float64 { return fn.geom.RootChord() }

// cnAlpha returns the per-radian normal-force-slope for a single fin panel
// referenced to its own planform area, dispatched by flow regime. alpha is
// the vehicle angle of attack and gamma the ratio of specific heats, both
// needed by the supersonic K1/K2/K3 polynomial.
func (fn *Fin) cnAlpha(mach, alpha, gamma float64) float64 {
	ar := fn.aspectRatio()
	if gamma == 0 {
		gamma = 1.4
	}
	cosMidSweep := math.Cos(fn.geom.MidChordSweepAngle())
	switch regimeFor(mach) {
	case RegimeSubsonic:
		return subsonicCNAlpha(ar, mach, cosMidSweep)
	case RegimeSupersonic:
		return supersonicCNAlpha(mach, alpha, gamma)
	default:
		lo := subsonicCNAlpha(ar, 0.9, cosMidSweep)
		hi := supersonicCNAlpha(1.5, alpha, gamma)
		t := (mach - 0.9) / (1.5 - 0.9)
		return hermite(lo, hi, t)
	}
}

// subsonicCNAlpha is Diederich's semi-empirical planar-wing correlation,
// corrected for mid-chord sweep: 2*pi*AR / (2 + sqrt(4 + (AR*beta/cosSweep)^2)).
// cosMidSweep=1 (unswept fin) reduces this to the classic unswept form.
func subsonicCNAlpha(ar, mach, cosMidSweep float64) float64 {
	b := beta(mach)
	if b == 0 {
		b = 1e-6
	}
	if cosMidSweep == 0 {
		cosMidSweep = 1e-6
	}
	x := ar * b / cosMidSweep
	return (2 * math.Pi * ar) / (2 + math.Sqrt(4+x*x))
}

// supersonicCNAlpha is the Busemann second-order linearized-theory slope,
// K1+K2*alpha+K3*alpha^2, matched against original_source's Fin::supersonicCNa.
// Unlike the subsonic correlation this has no aspect-ratio dependence.
func supersonicCNAlpha(mach, alpha, gamma float64) float64 {
	b := beta(mach)
	if b == 0 {
		b = 1e-6
	}
	m4, m6, m8 := math.Pow(mach, 4), math.Pow(mach, 6), math.Pow(mach, 8)
	b2, b4, b7 := b*b, math.Pow(b, 4), math.Pow(b, 7)

	k1 := 2 / b
	k2 := ((gamma+1)*m4 - 4*b2) / (4 * b4)
	k3 := ((gamma+1)*m8 + (2*gamma*gamma-7*gamma-5)*m6 + 10*(gamma+1)*m4 + 8) / (6 * b7)
	return k1 + k2*alpha + k3*alpha*alpha
}

// cp returns the per-fin center of pressure as a fraction of root chord
// measured from the fin's leading edge, dispatched by flow regime.
func (fn *Fin) cp(mach float64) float64 {
	switch {
	case mach <= 0.5:
		return 0.25
	case mach >= 2.0:
		ar := fn.aspectRatio()
		b := beta(mach)
		return (ar*b - 0.67) / (2*ar*b - 1)
	default:
		ar := fn.aspectRatio()
		hi := (ar*beta(2.0) - 0.67) / (2*ar*beta(2.0) - 1)
		t := (mach - 0.5) / (2.0 - 0.5)
		return hermite(0.25, hi, t)
	}
}

func (fn *Fin) aspectRatio() float64 {
	span := fn.geom.Span()
	area := fn.geom.PlanformArea()
	if area == 0 {
		return 0
	}
	return 2 * span * span / area
}

// hermite performs a smoothstep (cubic Hermite) blend from lo to hi as t
// runs 0..1, used to bridge regimes where no closed-form correlation
// applies (the transonic CNalpha gap, and the CP blend below Mach 2).
func hermite(lo, hi, t float64) float64 {
	t = clamp(t, 0, 1)
	s := t * t * (3 - 2*t)
	return lo + (hi-lo)*s
}
