// Package flight implements the 6-DoF equations of motion and the RKF45
// adaptive-step integrator that advances a rocket's trajectory from liftoff
// through landing.
package flight

import "math"

// State is the 12-component flight-state vector: position and velocity
// along each world axis, then each Euler angle and its rate. X is downrange,
// Y is crossrange, Z is altitude.
type State struct {
	Xp, Xv float64
	Yp, Yv float64
	Zp, Zv float64
	Phi, DPhi     float64 // yaw about X
	Theta, DTheta float64 // pitch about Y
	Psi, DPsi     float64 // roll about Z
}

// AsSlice flattens the state into the 12-vector order used by the
// integrator's error norm and the CSV exporter.
func (s State) AsSlice() [12]float64 {
	return [12]float64{s.Xp, s.Xv, s.Yp, s.Yv, s.Zp, s.Zv, s.Phi, s.DPhi, s.Theta, s.DTheta, s.Psi, s.DPsi}
}

// FromSlice rebuilds a State from the flattened 12-vector order.
func FromSlice(v [12]float64) State {
	return State{
		Xp: v[0], Xv: v[1],
		Yp: v[2], Yv: v[3],
		Zp: v[4], Zv: v[5],
		Phi: v[6], DPhi: v[7],
		Theta: v[8], DTheta: v[9],
		Psi: v[10], DPsi: v[11],
	}
}

func (s State) scale(k float64) State {
	v := s.AsSlice()
	var out [12]float64
	for i := range v {
		out[i] = v[i] * k
	}
	return FromSlice(out)
}

func (s State) add(o State) State {
	a, b := s.AsSlice(), o.AsSlice()
	var out [12]float64
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return FromSlice(out)
}

// HasNaN reports whether any component of the state is NaN, the simulator's
// fatal-stop condition.
func (s State) HasNaN() bool {
	for _, v := range s.AsSlice() {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
