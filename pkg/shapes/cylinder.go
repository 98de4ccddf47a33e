package shapes

import (
	"math"

	"github.com/loftwing/launchcore/pkg/types"
)

// Cylinder is a right circular cylinder, filled when Thickness <= 0 or
// Thickness >= Radius, hollow (a tube wall) otherwise. Volume and
// InertiaAboutCOM are computed at unit density; callers scale by material
// density for actual mass properties. The axis runs along local +X, base at
// x=0.
type Cylinder struct {
	Radius    float64
	LengthM   float64
	Thickness float64 // 0 (or >= Radius) means filled
}

// NewCylinder builds a filled cylinder.
func NewCylinder(radius, length float64) *Cylinder {
	return &Cylinder{Radius: clampNonNeg(radius), LengthM: clampNonNeg(length)}
}

// NewHollowCylinder builds a tube of the given wall thickness.
func NewHollowCylinder(radius, length, thickness float64) *Cylinder {
	return &Cylinder{Radius: clampNonNeg(radius), LengthM: clampNonNeg(length), Thickness: clampNonNeg(thickness)}
}

func clampNonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func (c *Cylinder) innerRadius() float64 {
	if c.Thickness <= 0 || c.Thickness >= c.Radius {
		return 0
	}
	return c.Radius - c.Thickness
}

func (c *Cylinder) isHollow() bool {
	return c.Thickness > 0 && c.Thickness < c.Radius
}

// Volume returns pi*r^2*L for the filled variant or pi*L*(2*r*t - t^2) for the
// hollow variant.
func (c *Cylinder) Volume() float64 {
	if c.isHollow() {
		return math.Pi * c.LengthM * (2*c.Radius*c.Thickness - c.Thickness*c.Thickness)
	}
	return math.Pi * c.Radius * c.Radius * c.LengthM
}

func (c *Cylinder) CenterOfMass() types.Vector3 {
	return types.Vector3{X: c.LengthM / 2}
}

// InertiaAboutCOM returns the unit-density inertia tensor about the cylinder's
// own center of mass, aligned with the cylinder axis (X).
func (c *Cylinder) InertiaAboutCOM() types.Matrix3x3 {
	v := c.Volume()
	r := c.Radius
	var ixx, iyy float64
	if c.isHollow() {
		ri := c.innerRadius()
		ixx = v * (r*r + ri*ri) / 2
		iyy = v * (c.LengthM*c.LengthM + 3*(r*r+ri*ri)) / 12
	} else {
		ixx = v * r * r / 2
		iyy = v * (c.LengthM*c.LengthM + 3*r*r) / 12
	}
	return types.Matrix3x3{M11: ixx, M22: iyy, M33: iyy}
}

func (c *Cylinder) RadiusAt(x float64) float64 { return c.Radius }

func (c *Cylinder) AreaAt(x float64) float64 { return math.Pi * c.Radius * c.Radius }

func (c *Cylinder) PlanformCenter() types.Vector3 {
	return types.Vector3{X: c.LengthM / 2}
}

func (c *Cylinder) WettedArea() float64 { return 2 * math.Pi * c.Radius * c.LengthM }

func (c *Cylinder) PlanformArea() float64 { return 2 * c.Radius * c.LengthM }

func (c *Cylinder) Length() float64 { return c.LengthM }

func (c *Cylinder) ReferenceArea() float64 { return math.Pi * c.Radius * c.Radius }

func (c *Cylinder) ReferenceLength() float64 { return 2 * c.Radius }

// AverageRadius returns the mean radius over the cylinder's length, used by
// the body pitch-damping correlation. Constant along a cylinder's axis.
func (c *Cylinder) AverageRadius() float64 { return c.Radius }

// BisectedAverageRadius splits the cylinder at axial coordinate x and
// returns the average radius of [0,x] and [x,L]; both halves are the same
// constant radius, following BodyTubeComponentShape::bisectedAverageRadius.
func (c *Cylinder) BisectedAverageRadius(x float64) (top, bottom float64) {
	if x <= 0 {
		return 0, c.Radius
	}
	if x >= c.LengthM {
		return c.Radius, 0
	}
	return c.Radius, c.Radius
}
