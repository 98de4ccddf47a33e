package shapes

import (
	"math"

	"github.com/loftwing/launchcore/pkg/types"
)

// noseconeGridPoints is the number of axial divisions used to tabulate a
// Nosecone's summary integrals. N=100 balances the quadrature error against
// the cost of recomputing the table on every setter call.
const noseconeGridPoints = 100

// Nosecone is a body of revolution from the Haack shape family, parameterized
// by kappa in [0, 1/3]: kappa=0 is the Von Karman (LD-Haack) shape,
// kappa=1/3 the LV-Haack shape. Radius(x) has no closed form in x for general kappa, so
// every summary quantity is tabulated once on a uniform N-point axial grid
// and cached until the next setter call.
type Nosecone struct {
	BaseRadius float64
	LengthM    float64
	Kappa      float64
	Thickness  float64 // 0 means filled (solid)

	radii       []float64
	xs          []float64
	volume      float64
	wetted      float64
	planform    float64
	planformCX  float64
	com         types.Vector3
	inertia     types.Matrix3x3
}

// NewNosecone builds a filled Haack-family nosecone and tabulates its
// integrals immediately.
func NewNosecone(baseRadius, length, kappa float64) *Nosecone {
	n := &Nosecone{BaseRadius: clampNonNeg(baseRadius), LengthM: clampNonNeg(length), Kappa: clampKappa(kappa)}
	n.recompute()
	return n
}

// NewHollowNosecone builds a nosecone shell of the given wall thickness.
func NewHollowNosecone(baseRadius, length, kappa, thickness float64) *Nosecone {
	n := &Nosecone{
		BaseRadius: clampNonNeg(baseRadius),
		LengthM:    clampNonNeg(length),
		Kappa:      clampKappa(kappa),
		Thickness:  clampNonNeg(thickness),
	}
	n.recompute()
	return n
}

func clampKappa(k float64) float64 {
	if k < 0 {
		return 0
	}
	if k > 1.0/3.0 {
		return 1.0 / 3.0
	}
	return k
}

// SetKappa updates the Haack shape parameter and retabulates.
func (n *Nosecone) SetKappa(k float64) {
	n.Kappa = clampKappa(k)
	n.recompute()
}

// SetThickness updates the wall thickness (0 = filled) and retabulates.
func (n *Nosecone) SetThickness(t float64) {
	n.Thickness = clampNonNeg(t)
	n.recompute()
}

// radiusProfile evaluates the Haack radius at axial position x in [0, L].
// theta(x) = arccos(1 - 2x/L); y(x) = r/sqrt(pi) * sqrt(theta - sin(2 theta)/2 + kappa*sin^3(theta)).
func (n *Nosecone) radiusProfile(x float64) float64 {
	if n.LengthM <= 0 {
		return 0
	}
	arg := 1 - 2*x/n.LengthM
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	theta := math.Acos(arg)
	s := math.Sin(theta)
	inner := theta - math.Sin(2*theta)/2 + n.Kappa*s*s*s
	if inner < 0 {
		inner = 0
	}
	return n.BaseRadius / math.Sqrt(math.Pi) * math.Sqrt(inner)
}

// recompute tabulates radii on a uniform N-point grid and derives every
// summary quantity by trapezoidal quadrature across grid cells.
func (n *Nosecone) recompute() {
	const N = noseconeGridPoints
	n.xs = make([]float64, N+1)
	n.radii = make([]float64, N+1)
	if n.LengthM <= 0 {
		n.volume, n.wetted, n.planform, n.planformCX = 0, 0, 0, 0
		n.com = types.Vector3{}
		n.inertia = types.Matrix3x3{}
		return
	}
	dx := n.LengthM / float64(N)
	for i := 0; i <= N; i++ {
		x := float64(i) * dx
		n.xs[i] = x
		n.radii[i] = n.radiusProfile(x)
	}

	var wetted, planform, planformMoment, volume float64
	type cellMass struct {
		dm   float64
		xbar float64
		ro2  float64
		ri2  float64
		dx   float64
	}
	var cells []cellMass

	for i := 0; i < N; i++ {
		ri, ro := n.radii[i], n.radii[i+1]
		xi := n.xs[i]
		dr := ro - ri
		wetted += math.Sqrt(dr*dr+dx*dx) * (ri + ro)

		avgR := (ri + ro) / 2.0
		planform += avgR * dx * 2.0
		xbar := xi + dx/2.0
		planformMoment += (ri + ro) * dx * xbar

		var dV, innerRo2, innerRi2 float64
		frustumV := math.Pi * avgR * avgR * dx
		if n.Thickness <= 0 || ri < n.Thickness || ro < n.Thickness {
			dV = frustumV
			innerRo2, innerRi2 = 0, 0
		} else {
			innerRo := ro - n.Thickness
			innerRi := ri - n.Thickness
			innerAvg := (innerRi + innerRo) / 2.0
			innerV := math.Pi * innerAvg * innerAvg * dx
			dV = frustumV - innerV
			if dV < 0 {
				dV = 0
			}
			innerRo2, innerRi2 = innerRo*innerRo, innerRi*innerRi
		}
		volume += dV
		cells = append(cells, cellMass{dm: dV, xbar: xbar, ro2: ro*ro - innerRo2, ri2: ri*ri - innerRi2, dx: dx})
	}

	n.wetted = math.Pi * wetted
	n.planform = planform
	if planform > 0 {
		n.planformCX = planformMoment / planform
	}
	n.volume = volume

	if volume <= 0 {
		n.com = types.Vector3{}
		n.inertia = types.Matrix3x3{}
		return
	}

	var comX float64
	for _, c := range cells {
		comX += c.dm * c.xbar
	}
	comX /= volume
	n.com = types.Vector3{X: comX}

	var ixx, iLong float64
	for _, c := range cells {
		d := c.xbar - comX
		iLong += c.dm * (3*(c.ro2+c.ri2) + c.dx*c.dx) / 12.0
		ixx += c.dm * d * d
	}
	// iLong accumulates the lateral (pitch/yaw) inertia contributions about
	// each cell's own centroid; shift to the nosecone's overall CoM.
	iyy := iLong + ixx
	izz := iyy
	// axial is the roll (X-axis) second moment via thin-disk approximation.
	axial := 0.0
	for _, c := range cells {
		axial += c.dm * (c.ro2 + c.ri2) / 2.0
	}
	n.inertia = types.Matrix3x3{M11: axial, M22: iyy, M33: izz}
}

func (n *Nosecone) Volume() float64 { return n.volume }

func (n *Nosecone) CenterOfMass() types.Vector3 { return n.com }

func (n *Nosecone) InertiaAboutCOM() types.Matrix3x3 { return n.inertia }

// RadiusAt linearly interpolates the tabulated radius profile at axial
// coordinate x.
func (n *Nosecone) RadiusAt(x float64) float64 {
	if len(n.xs) < 2 {
		return 0
	}
	if x <= n.xs[0] {
		return n.radii[0]
	}
	last := len(n.xs) - 1
	if x >= n.xs[last] {
		return n.radii[last]
	}
	dx := n.xs[1] - n.xs[0]
	idx := int(x / dx)
	if idx >= last {
		idx = last - 1
	}
	frac := (x - n.xs[idx]) / dx
	return n.radii[idx] + frac*(n.radii[idx+1]-n.radii[idx])
}

func (n *Nosecone) AreaAt(x float64) float64 {
	r := n.RadiusAt(x)
	return math.Pi * r * r
}

func (n *Nosecone) PlanformCenter() types.Vector3 {
	return types.Vector3{X: n.planformCX}
}

func (n *Nosecone) WettedArea() float64 { return n.wetted }

func (n *Nosecone) PlanformArea() float64 { return n.planform }

func (n *Nosecone) Length() float64 { return n.LengthM }

func (n *Nosecone) ReferenceArea() float64 { return math.Pi * n.BaseRadius * n.BaseRadius }

func (n *Nosecone) ReferenceLength() float64 { return 2 * n.BaseRadius }

// FinenessRatio returns L / (2r), used by the pressure-drag correlations.
func (n *Nosecone) FinenessRatio() float64 {
	if n.BaseRadius <= 0 {
		return 0
	}
	return n.LengthM / (2 * n.BaseRadius)
}

// AverageRadius returns the mean of the tabulated radius profile, used by
// the body pitch-damping correlation.
func (n *Nosecone) AverageRadius() float64 {
	if len(n.radii) == 0 {
		return 0
	}
	var sum float64
	for _, r := range n.radii {
		sum += r
	}
	return sum / float64(len(n.radii))
}

// BisectedAverageRadius splits the tabulated profile at axial coordinate x
// and returns the mean radius of [0,x] and [x,L], matching
// NumericalNoseconeShape::bisectedAverageRadius.
func (n *Nosecone) BisectedAverageRadius(x float64) (top, bottom float64) {
	if x <= 0 {
		return 0, n.AverageRadius()
	}
	if x >= n.LengthM {
		return n.AverageRadius(), 0
	}
	const samples = noseconeGridPoints
	dxTop := x / float64(samples)
	var sumTop float64
	for i := 0; i <= samples; i++ {
		sumTop += n.RadiusAt(float64(i) * dxTop)
	}
	top = sumTop / float64(samples+1)

	dxBottom := (n.LengthM - x) / float64(samples)
	var sumBottom float64
	for i := 0; i <= samples; i++ {
		sumBottom += n.RadiusAt(x + float64(i)*dxBottom)
	}
	bottom = sumBottom / float64(samples+1)
	return top, bottom
}
