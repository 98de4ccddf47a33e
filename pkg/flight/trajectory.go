package flight

import "math"

// Apogee scans a completed Result for the maximum altitude reached and the
// time at which it occurred; apogee is never a termination condition, only
// a property derived from the trajectory after the fact.
func Apogee(r Result) (t, z float64) {
	for i, s := range r.States {
		if s.Zp > z {
			z = s.Zp
			t = r.Times[i]
		}
	}
	return t, z
}

// MaxMach scans a completed Result for the highest Mach number reached,
// given the same atmosphere speed-of-sound query the integrator itself uses.
func MaxMach(r Result, speedOfSound func(z float64) float64) float64 {
	var maxM float64
	for _, s := range r.States {
		v := (s.Xv*s.Xv + s.Yv*s.Yv + s.Zv*s.Zv)
		a := speedOfSound(s.Zp)
		if a <= 0 {
			continue
		}
		m := math.Sqrt(v) / a
		if m > maxM {
			maxM = m
		}
	}
	return maxM
}
