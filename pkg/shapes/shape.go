// Package shapes implements the closed-form and numerically-tabulated
// geometric primitives rocket components are built from: filled/hollow
// cylinders, trapezoidal prisms (fins), and Haack-family nosecones.
// Every primitive exposes the same summary-integral contract so the mass
// model in pkg/rocket can treat them uniformly.
package shapes

import "github.com/loftwing/launchcore/pkg/types"

// Shape is the geometric contract every primitive in this package satisfies.
// Volume, CenterOfMass and InertiaAboutCOM describe the primitive assuming a
// uniform unit-density fill; callers multiply by material density for mass.
type Shape interface {
	Volume() float64
	CenterOfMass() types.Vector3
	InertiaAboutCOM() types.Matrix3x3

	RadiusAt(x float64) float64
	AreaAt(x float64) float64
	PlanformCenter() types.Vector3
	WettedArea() float64
	PlanformArea() float64
	Length() float64
	ReferenceArea() float64
	ReferenceLength() float64
}
