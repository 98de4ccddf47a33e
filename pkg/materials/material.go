// Package materials holds the small, immutable records a component refers to
// for bulk density and surface finish -- bookkeeping kept deliberately outside
// the aero/mass model proper, matching the teacher's split between component
// geometry and the material catalog it draws from.
package materials

import "fmt"

// Material is an immutable named density record.
type Material struct {
	Name    string
	Density float64 // kg/m^3
}

// NewMaterial constructs a Material, clamping a negative density to zero.
func NewMaterial(name string, density float64) Material {
	if density < 0 {
		density = 0
	}
	return Material{Name: name, Density: density}
}

func (m Material) String() string {
	return fmt.Sprintf("%s (%.1f kg/m^3)", m.Name, m.Density)
}

// Finish is an immutable named surface-roughness record.
type Finish struct {
	Name      string
	Roughness float64 // meters
}

// NewFinish constructs a Finish, clamping a negative roughness to zero.
func NewFinish(name string, roughness float64) Finish {
	if roughness < 0 {
		roughness = 0
	}
	return Finish{Name: name, Roughness: roughness}
}

func (f Finish) String() string {
	return fmt.Sprintf("%s (%.2e m)", f.Name, f.Roughness)
}

// Common catalog entries used by the bundled example rockets.
var (
	Cardboard  = NewMaterial("cardboard", 680)
	PLA        = NewMaterial("PLA", 1250)
	Plywood    = NewMaterial("plywood", 630)
	Fiberglass = NewMaterial("fiberglass", 1850)

	Polished = NewFinish("polished", 0.5e-6)
	Smooth   = NewFinish("smooth", 2e-6)
	Rough    = NewFinish("rough", 20e-6)
)
