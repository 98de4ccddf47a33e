package shapes

import (
	"math"

	"github.com/loftwing/launchcore/pkg/types"
)

// TrapezoidalPrism is the planform of a single trapezoidal fin: root chord at
// local x=0..RootChord, spanwise axis y=0..Span, leading edge swept back by
// SweepDistance, thickness Thickness along local z (normal to the fin
// surface). All properties are computed at unit density; see Shape.
type TrapezoidalPrism struct {
	RootChord     float64
	TipChord      float64
	Span          float64
	SweepDistance float64
	Thickness     float64

	xCm, yCm                float64
	ixxArea, iyyArea, ixyArea float64
}

// NewTrapezoidalPrism builds the prism and caches its planform integrals.
func NewTrapezoidalPrism(rootChord, tipChord, span, sweep, thickness float64) *TrapezoidalPrism {
	p := &TrapezoidalPrism{
		RootChord:     clampNonNeg(rootChord),
		TipChord:      clampNonNeg(tipChord),
		Span:          clampNonNeg(span),
		SweepDistance: clampNonNeg(sweep),
		Thickness:     clampNonNeg(thickness),
	}
	p.recompute()
	return p
}

func rectangleAreaInertia(base, height float64) (ixx, iyy, ixy float64) {
	ixx = base * math.Pow(height, 3) / 12.0
	iyy = height * math.Pow(base, 3) / 12.0
	return ixx, iyy, 0
}

func rightTriangleAreaInertia(base, height float64) (ixx, iyy, ixy float64) {
	ixx = base * math.Pow(height, 3) / 36.0
	iyy = height * math.Pow(base, 3) / 36.0
	ixy = (math.Pow(base, 2) * math.Pow(height, 2)) / 72.0
	return
}

// recompute derives the planform centroid and the area moments of inertia
// about that centroid, decomposing the trapezoid into a leading-edge
// triangle, a middle rectangle, and a trailing-edge triangle -- the same
// three-piece split used for the whole fin set, here applied to one fin.
func (p *TrapezoidalPrism) recompute() {
	denom := 3 * (p.RootChord + p.TipChord)
	if denom <= 1e-12 {
		p.xCm, p.yCm, p.ixxArea, p.iyyArea, p.ixyArea = 0, 0, 0, 0, 0
		return
	}
	p.xCm = (p.RootChord*p.RootChord + p.RootChord*p.TipChord + p.TipChord*p.TipChord +
		p.SweepDistance*(p.RootChord+2*p.TipChord)) / denom
	p.yCm = (p.Span / 3.0) * (p.RootChord + 2.0*p.TipChord) / (p.RootChord + p.TipChord)

	var ixx, iyy, ixy float64

	if p.SweepDistance > 1e-9 {
		base, height := p.SweepDistance, p.Span
		area := 0.5 * base * height
		cx, cy := base*2.0/3.0, height/3.0
		tixx, tiyy, tixy := rightTriangleAreaInertia(base, height)
		dx, dy := cx-p.xCm, cy-p.yCm
		ixx += tixx + area*dy*dy
		iyy += tiyy + area*dx*dx
		ixy += tixy + area*dx*dy
	}

	if p.TipChord > 1e-9 {
		base, height := p.TipChord, p.Span
		area := base * height
		cx, cy := p.SweepDistance+base/2.0, height/2.0
		rixx, riyy, _ := rectangleAreaInertia(base, height)
		dx, dy := cx-p.xCm, cy-p.yCm
		ixx += rixx + area*dy*dy
		iyy += riyy + area*dx*dx
		ixy += area * dx * dy
	}

	teBase := p.RootChord - (p.SweepDistance + p.TipChord)
	if teBase > 1e-9 {
		height := p.Span
		area := 0.5 * teBase * height
		cx := (2.0*(p.SweepDistance+p.TipChord) + p.RootChord) / 3.0
		cy := height / 3.0
		tixx, tiyy, tixy := rightTriangleAreaInertia(teBase, height)
		dx, dy := cx-p.xCm, cy-p.yCm
		ixx += tixx + area*dy*dy
		iyy += tiyy + area*dx*dx
		ixy += tixy + area*dx*dy
	}

	p.ixxArea, p.iyyArea, p.ixyArea = ixx, iyy, ixy
}

// SetThickness updates the fin thickness and invalidates nothing else, since
// thickness only scales the unit-density volume/mass, not the planform
// integrals.
func (p *TrapezoidalPrism) SetThickness(t float64) {
	p.Thickness = clampNonNeg(t)
}

func (p *TrapezoidalPrism) PlanformArea() float64 {
	return (p.RootChord + p.TipChord) * p.Span / 2.0
}

func (p *TrapezoidalPrism) Volume() float64 {
	return p.PlanformArea() * p.Thickness
}

func (p *TrapezoidalPrism) CenterOfMass() types.Vector3 {
	return types.Vector3{X: p.xCm, Y: p.yCm}
}

// InertiaAboutCOM returns the thin-plate mass inertia tensor (unit density)
// about the prism's own centroid, in local (chordwise X, spanwise Y,
// surface-normal Z) axes.
func (p *TrapezoidalPrism) InertiaAboutCOM() types.Matrix3x3 {
	t := p.Thickness
	ixx := t * p.ixxArea
	iyy := t * p.iyyArea
	izz := ixx + iyy
	ixy := t * p.ixyArea
	return types.Matrix3x3{
		M11: ixx, M12: -ixy, M13: 0,
		M21: -ixy, M22: iyy, M23: 0,
		M31: 0, M32: 0, M33: izz,
	}
}

func (p *TrapezoidalPrism) RadiusAt(x float64) float64 { return 0 }

func (p *TrapezoidalPrism) AreaAt(x float64) float64 { return 0 }

func (p *TrapezoidalPrism) PlanformCenter() types.Vector3 {
	return types.Vector3{X: p.xCm, Y: p.yCm}
}

func (p *TrapezoidalPrism) WettedArea() float64 {
	return 2 * p.PlanformArea()
}

func (p *TrapezoidalPrism) Length() float64 { return p.RootChord }

func (p *TrapezoidalPrism) ReferenceArea() float64 { return p.PlanformArea() }

func (p *TrapezoidalPrism) ReferenceLength() float64 { return p.Span }

// MidChordSweepAngle returns the sweep angle of the line connecting the
// chord midpoints, used by the fin normal-force correlations.
func (p *TrapezoidalPrism) MidChordSweepAngle() float64 {
	if p.Span == 0 {
		return 0
	}
	dx := p.SweepDistance + 0.5*p.TipChord - 0.5*p.RootChord
	return math.Atan2(dx, p.Span)
}

// AspectRatio returns 2*Span^2 / PlanformArea, the fin's aspect ratio.
func (p *TrapezoidalPrism) AspectRatio() float64 {
	area := p.PlanformArea()
	if area <= 0 {
		return 0
	}
	return 2 * p.Span * p.Span / area
}

// MeanAerodynamicChordSpan returns y_MAC, the spanwise location of the fin's
// mean aerodynamic chord.
func (p *TrapezoidalPrism) MeanAerodynamicChordSpan() float64 {
	if p.RootChord+p.TipChord == 0 {
		return 0
	}
	return (p.Span / 3.0) * (p.RootChord + 2*p.TipChord) / (p.RootChord + p.TipChord)
}

// MeanAerodynamicChord returns the fin's MAC length.
func (p *TrapezoidalPrism) MeanAerodynamicChord() float64 {
	cr, ct := p.RootChord, p.TipChord
	if cr+ct == 0 {
		return 0
	}
	return (2.0 / 3.0) * (cr*cr + cr*ct + ct*ct) / (cr + ct)
}
