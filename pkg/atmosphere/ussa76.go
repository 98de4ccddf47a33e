// Package atmosphere implements the U.S. Standard Atmosphere 1976: a
// process-wide singleton exposing temperature, pressure, density, gravity,
// speed of sound, and viscosity as pure functions of geometric altitude.
package atmosphere

import (
	"math"
	"sync"
)

// Fundamental constants, U.S. Standard Atmosphere 1976.
const (
	EarthRadius   = 6356766.0  // R0, m
	G0            = 9.80665    // m/s^2
	RStar         = 8314.32    // J/(kmol*K)
	M0            = 28.9644    // kg/kmol, sea-level mean molar mass
	Gamma         = 1.4        // ratio of specific heats
	SutherlandB   = 1.458e-6   // kg/(s*m*K^0.5)
	SutherlandS   = 110.4      // K
	Avogadro      = 6.022169e26 // per kmol

	minAltitude = -5000.0
	maxAltitude = 1000000.0
)

// layer is one row of the 0-86km geopotential-height lapse-rate table.
type layer struct {
	Hb float64 // base geopotential height, m
	Tb float64 // base temperature, K
	Lb float64 // lapse rate, K/m
	Pb float64 // base pressure, Pa
}

var layers = []layer{
	{0, 288.15, -0.0065, 101325.0},
	{11000, 216.65, 0.0, 22632.0},
	{20000, 216.65, 0.001, 5474.9},
	{32000, 228.65, 0.0028, 868.02},
	{47000, 270.65, 0.0, 110.91},
	{51000, 270.65, -0.0028, 66.939},
	{71000, 214.65, -0.002, 3.9564},
}

const layer7TopH = 84852.0 // geopotential height, m, top of tabulated layers
const layer7TopT = 186.946 // K at layer7TopH

// molecularWeightRatio gives M(z)/M0 in the 80-86km band where dissociation
// begins to lower the mean molar mass below its sea-level value.
var molecularWeightTable = []struct{ Z, Ratio float64 }{
	{80000, 1.000000},
	{81000, 0.999996},
	{82000, 0.999989},
	{83000, 0.999971},
	{84000, 0.999941},
	{85000, 0.999909},
	{86000, 0.999602},
}

func molecularWeightRatio(z float64) float64 {
	tbl := molecularWeightTable
	if z <= tbl[0].Z {
		return tbl[0].Ratio
	}
	if z >= tbl[len(tbl)-1].Z {
		return tbl[len(tbl)-1].Ratio
	}
	for i := 0; i < len(tbl)-1; i++ {
		if z >= tbl[i].Z && z <= tbl[i+1].Z {
			frac := (z - tbl[i].Z) / (tbl[i+1].Z - tbl[i].Z)
			return tbl[i].Ratio + frac*(tbl[i+1].Ratio-tbl[i].Ratio)
		}
	}
	return 1.0
}

// species is a single high-atmosphere constituent tracked for the 86-1000km
// number-density table.
type species struct {
	Name       string
	MolarMass  float64 // kg/kmol
	N86        float64 // number density at 86 km, particles/m^3
	ScaleBoost float64 // empirical correction to the diffusive scale height
}

var speciesTable = []species{
	{"N2", 28.0134, 1.129794e20, 1.0},
	{"O", 15.9994, 8.6e16, 1.7},
	{"O2", 31.9988, 3.030898e19, 1.0},
	{"Ar", 39.948, 1.351400e18, 1.0},
	{"He", 4.0026, 7.5817e14, 3.2},
	{"H", 1.00797, 8.0e10, 6.0},
}

// geopotentialHeight converts geometric altitude z to geopotential height H.
func geopotentialHeight(z float64) float64 {
	return EarthRadius * z / (EarthRadius + z)
}

func clampAltitude(z float64) float64 {
	if z < minAltitude {
		return minAltitude
	}
	if z > maxAltitude {
		return maxAltitude
	}
	return z
}

func findLayer(h float64) layer {
	idx := 0
	for i, l := range layers {
		if h >= l.Hb {
			idx = i
		}
	}
	return layers[idx]
}

// Temperature returns kinetic temperature in Kelvin at geometric altitude z.
func Temperature(z float64) float64 {
	z = clampAltitude(z)
	switch {
	case z <= 86000:
		h := geopotentialHeight(z)
		l := findLayer(h)
		t := l.Tb + l.Lb*(h-l.Hb)
		return t * molecularWeightRatio(z)
	case z <= 91000:
		return 186.8673
	case z <= 110000:
		const Tc, A, a = 263.1905, -76.3232, 19.9429
		arg := 1 - math.Pow((z-91000)/1000/a, 2)
		if arg < 0 {
			arg = 0
		}
		return Tc + A*math.Sqrt(arg)
	case z <= 120000:
		return 240.0 + 0.012*(z-110000)
	default:
		const lambda = 0.01875 // per km
		const tInf = 1000.0
		const t120 = 360.0
		zKm := z / 1000.0
		r0Km := EarthRadius / 1000.0
		xi := (zKm - 120) * (r0Km + 120) / (r0Km + zKm)
		return tInf - (tInf-t120)*math.Exp(-lambda*xi)
	}
}

// Pressure returns static pressure in Pa at geometric altitude z.
func Pressure(z float64) float64 {
	z = clampAltitude(z)
	if z <= 86000 {
		h := geopotentialHeight(z)
		l := findLayer(h)
		if l.Lb == 0 {
			return l.Pb * math.Exp(-G0*M0*(h-l.Hb)/(RStar*l.Tb))
		}
		return l.Pb * math.Pow(l.Tb/(l.Tb+l.Lb*(h-l.Hb)), G0*M0/(RStar*l.Lb))
	}
	n := totalNumberDensity(z)
	return n * RStar * Temperature(z) / Avogadro
}

// Density returns mass density in kg/m^3 at geometric altitude z.
func Density(z float64) float64 {
	p := Pressure(z)
	t := Temperature(z)
	if t <= 0 {
		return 0
	}
	m := MeanMolarMass(z)
	return p * m / (RStar * t)
}

// Gravity returns local gravitational acceleration in m/s^2.
func Gravity(z float64) float64 {
	z = clampAltitude(z)
	r := EarthRadius / (EarthRadius + z)
	return G0 * r * r
}

// SpeedOfSound returns the local speed of sound in m/s, valid below ~86km
// where the continuum (Gamma, M0) approximation holds.
func SpeedOfSound(z float64) float64 {
	t := Temperature(z)
	return math.Sqrt(Gamma * RStar * t / M0)
}

// DynamicViscosity returns Sutherland's-law dynamic viscosity in Pa*s.
func DynamicViscosity(z float64) float64 {
	t := Temperature(z)
	return SutherlandB * math.Pow(t, 1.5) / (t + SutherlandS)
}

// KinematicViscosity returns mu/rho in m^2/s.
func KinematicViscosity(z float64) float64 {
	rho := Density(z)
	if rho <= 0 {
		return 0
	}
	return DynamicViscosity(z) / rho
}

// MeanMolarMass returns the altitude-dependent mean molar mass in kg/kmol.
func MeanMolarMass(z float64) float64 {
	if z <= 86000 {
		return M0 * molecularWeightRatio(z)
	}
	return meanMolarMassTable(z)
}

const highAtmoGridStep = 100.0 // meters
const highAtmoBase = 86000.0
const highAtmoTop = 1000000.0

type highAtmoTable struct {
	z       []float64
	n       [][]float64 // per-species cumulative number density, m^-3
	total   []float64
	meanM   []float64
}

var (
	tableOnce sync.Once
	table     *highAtmoTable
)

// buildHighAtmoTable integrates each species' number density outward from
// its 86km reference value using a diffusive-equilibrium scale height,
// accumulated once via trapezoidal quadrature on a 100m grid, exactly as
// downstream pressure/density lookups above 86km expect to interpolate into.
func buildHighAtmoTable() *highAtmoTable {
	n := int((highAtmoTop-highAtmoBase)/highAtmoGridStep) + 1
	t := &highAtmoTable{
		z:     make([]float64, n),
		n:     make([][]float64, len(speciesTable)),
		total: make([]float64, n),
		meanM: make([]float64, n),
	}
	for s := range speciesTable {
		t.n[s] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		z := highAtmoBase + float64(i)*highAtmoGridStep
		t.z[i] = z
	}

	for s, sp := range speciesTable {
		prev := sp.N86
		t.n[s][0] = prev
		for i := 1; i < n; i++ {
			z0, z1 := t.z[i-1], t.z[i]
			g0, g1 := Gravity(z0), Gravity(z1)
			t0, t1 := Temperature(z0), Temperature(z1)
			// Diffusive-equilibrium scale height H = R*T/(Mi*g*ScaleBoost);
			// flux term integrated trapezoidally over the cell.
			h0 := RStar * t0 / (sp.MolarMass * g0 * sp.ScaleBoost)
			h1 := RStar * t1 / (sp.MolarMass * g1 * sp.ScaleBoost)
			f0 := 1.0 / h0
			f1 := 1.0 / h1
			dz := z1 - z0
			prev = prev * math.Exp(-0.5*(f0+f1)*dz)
			t.n[s][i] = prev
		}
	}

	for i := 0; i < n; i++ {
		var total, massSum float64
		for s, sp := range speciesTable {
			total += t.n[s][i]
			massSum += t.n[s][i] * sp.MolarMass
		}
		t.total[i] = total
		if total > 0 {
			t.meanM[i] = massSum / total
		}
	}
	return t
}

func getTable() *highAtmoTable {
	tableOnce.Do(func() {
		table = buildHighAtmoTable()
	})
	return table
}

func interpolateColumn(z float64, col []float64) float64 {
	tbl := getTable()
	if z <= tbl.z[0] {
		return col[0]
	}
	last := len(tbl.z) - 1
	if z >= tbl.z[last] {
		return col[last]
	}
	idx := int((z - tbl.z[0]) / highAtmoGridStep)
	if idx >= last {
		idx = last - 1
	}
	frac := (z - tbl.z[idx]) / highAtmoGridStep
	return col[idx] + frac*(col[idx+1]-col[idx])
}

func totalNumberDensity(z float64) float64 {
	return interpolateColumn(z, getTable().total)
}

func meanMolarMassTable(z float64) float64 {
	return interpolateColumn(z, getTable().meanM)
}
