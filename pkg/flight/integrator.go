package flight

import (
	"math"

	"github.com/loftwing/launchcore/pkg/aero"
)

// RKF45 Butcher tableau, stored as constants rather than re-derived per
// step. A holds the six stage abscissae; B the lower-triangular stage
// coefficients; CH the 5th-order solution weights; CT the embedded
// error-estimate weights.
var (
	rkfA = [6]float64{0, 1.0 / 4, 3.0 / 8, 12.0 / 13, 1, 1.0 / 2}

	rkfB = [6][5]float64{
		{},
		{1.0 / 4},
		{3.0 / 32, 9.0 / 32},
		{1932.0 / 2197, -7200.0 / 2197, 7296.0 / 2197},
		{439.0 / 216, -8, 3680.0 / 513, -845.0 / 4104},
		{-8.0 / 27, 2, -3544.0 / 2565, 1859.0 / 4104, -11.0 / 40},
	}

	rkfCH = [6]float64{16.0 / 135, 0, 6656.0 / 12825, 28561.0 / 56430, -9.0 / 50, 2.0 / 55}

	rkfCT = [6]float64{1.0 / 360, 0, -128.0 / 4275, -2197.0 / 75240, 1.0 / 50, 2.0 / 55}
)

// Tolerances controls the adaptive step-size control; defaults match
// section 4.5.
type Tolerances struct {
	Rtol float64
	Atol float64
}

// DefaultTolerances returns the spec's default relative/absolute tolerances.
func DefaultTolerances() Tolerances {
	return Tolerances{Rtol: 1e-3, Atol: 1e-6}
}

// Deriv is any function computing the state derivative at (t, s); used to
// let tests exercise the integrator against toy ODEs alongside the real
// flight Derivative.
type Deriv func(t float64, s State) State

// rkf45Step attempts one embedded RK step of size h from (t, s) and returns
// the accepted/5th-order state plus the infinity-norm error estimate.
func rkf45Step(f Deriv, t float64, s State, h float64) (State, float64) {
	var k [6]State
	k[0] = f(t, s).scale(h)
	for i := 1; i < 6; i++ {
		acc := s
		for j := 0; j < i; j++ {
			acc = acc.add(k[j].scale(rkfB[i][j]))
		}
		k[i] = f(t+rkfA[i]*h, acc).scale(h)
	}

	var newState, errState State
	newState = s
	for i := 0; i < 6; i++ {
		newState = newState.add(k[i].scale(rkfCH[i]))
		errState = errState.add(k[i].scale(rkfCT[i]))
	}
	return newState, errState.infNorm()
}

func (s State) infNorm() float64 {
	var max float64
	for _, v := range s.AsSlice() {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// errorTolerance computes eps = min(|state|*rtol + atol) across every
// component of the reference state, per section 4.5's adaptive criterion.
func errorTolerance(s State, tol Tolerances) float64 {
	min := math.Inf(1)
	for _, v := range s.AsSlice() {
		eps := math.Abs(v)*tol.Rtol + tol.Atol
		if eps < min {
			min = eps
		}
	}
	return min
}

// Result is the outcome of a full integration run.
type Result struct {
	Times  []float64
	States []State
	Landed bool
}

const maxSteps = 1_000_000

// clampStepGrowth bounds the step-size update to a 0.1x-5x band per step,
// the conventional RKF45 safeguard against the pathological blow-up an
// unbounded (eps/err)^0.2 update produces when err is exactly zero.
func clampStepGrowth(h, hNext float64) float64 {
	if hNext > 5*h {
		return 5 * h
	}
	if hNext < 0.1*h {
		return 0.1 * h
	}
	return hNext
}

// Integrate runs RKF45 from t0 with initial state s0 and initial step h0
// until landing or the step-count safety cap, applying the launch-rod
// takeoff clamp (Zv held at zero until it would naturally go positive) at
// every accepted step.
func Integrate(f Deriv, t0 float64, s0 State, h0 float64, tol Tolerances) Result {
	t := t0
	s := s0
	h := h0
	takeoff := false
	var res Result
	res.Times = append(res.Times, t)
	res.States = append(res.States, s)

	for step := 0; step < maxSteps; step++ {
		newState, errNorm := rkf45Step(f, t, s, h)
		eps := errorTolerance(s, tol)

		if errNorm == 0 {
			errNorm = 1e-300
		}
		hNext := 0.9 * h * math.Pow(eps/errNorm, 0.2)
		hNext = clampStepGrowth(h, hNext)

		if errNorm >= eps {
			h = hNext
			continue
		}

		if !takeoff {
			if newState.Zv > 0 {
				takeoff = true
			} else {
				newState.Zv = 0
				newState.Zp = s.Zp
			}
		}

		if newState.HasNaN() {
			res.Landed = false
			return res
		}

		if takeoff && s.Zp >= 0 && newState.Zp < 0 {
			newState.Zp = 0
			t += h
			res.Times = append(res.Times, t)
			res.States = append(res.States, newState)
			res.Landed = true
			return res
		}

		t += h
		s = newState
		h = hNext
		res.Times = append(res.Times, t)
		res.States = append(res.States, s)
	}
	res.Landed = false
	return res
}

// DerivativeFor adapts a flight Vehicle/aero.Node pair into a Deriv closure
// for use with Integrate.
func DerivativeFor(veh Vehicle, root aero.Node) Deriv {
	return func(t float64, s State) State {
		return Derivative(t, s, veh, root)
	}
}
