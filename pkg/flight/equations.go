package flight

import (
	"math"

	"github.com/loftwing/launchcore/pkg/aero"
	"github.com/loftwing/launchcore/pkg/atmosphere"
	"github.com/loftwing/launchcore/pkg/types"
)

// Vehicle is the subset of pkg/rocket.Rocket's operation set the integrator
// needs: mass properties and thrust, all parameterized by time so the
// caller's motor/mass schedule is consulted fresh on every step.
type Vehicle interface {
	Mass(t float64) float64
	CenterOfMass(t float64) types.Vector3
	InertiaAboutCOM(t float64) types.Matrix3x3
	Thrust(t float64) types.Vector3
	ThrustApplicationPoint(t float64) types.Vector3
	ReferenceArea() float64
	ReferenceLength() float64
}

// bodyAxis is the rocket's long axis in its own body frame; thrust, CP and
// center-of-mass axial offsets are all measured along it from the nose.
var bodyAxis = types.Vector3{X: 1}

// Derivative computes the 12-vector time derivative of state s at time t for
// the given vehicle and its root aerodynamic node, per the step function of
// section 4.5: query the atmosphere, resolve angle of attack, pull
// coefficients from the aero tree, assemble forces/moments, and return
// accelerations alongside the velocities/rates already in s.
func Derivative(t float64, s State, veh Vehicle, root aero.Node) State {
	mass := veh.Mass(t)
	if mass <= 0 {
		return State{}
	}
	com := veh.CenterOfMass(t)
	inertiaBody := veh.InertiaAboutCOM(t)

	z := s.Zp
	rho := atmosphere.Density(z)
	a := atmosphere.SpeedOfSound(z)
	mu := atmosphere.DynamicViscosity(z)
	g := atmosphere.Gravity(z)

	vWorld := types.Vector3{X: s.Xv, Y: s.Yv, Z: s.Zv}
	speed := vWorld.Magnitude()
	mach := 0.0
	if a > 0 {
		mach = speed / a
	}
	reOverL := 0.0
	if mu > 0 {
		reOverL = rho * speed / mu
	}
	q := 0.5 * rho * speed * speed

	R := types.RotationFromEuler(s.Phi, s.Theta, s.Psi)
	bodyAxisWorld := *R.MultiplyVector(&bodyAxis)

	alpha := 0.0
	if speed > 0 {
		alpha = vWorld.AngleBetween(bodyAxisWorld)
	}

	flow := aero.Flow{
		Mach:    mach,
		Alpha:   alpha,
		Gamma:   1.4,
		ReOverL: reOverL,
		XCm:     com.X,
		Omega:   math.Sqrt(s.DPhi*s.DPhi + s.DTheta*s.DTheta + s.DPsi*s.DPsi),
		V:       speed,
	}
	coef := root.Evaluate(flow)
	refArea := veh.ReferenceArea()
	refLen := veh.ReferenceLength()

	vHat := vWorld.Normalize()
	var nHat types.Vector3
	if speed > 0 {
		proj := bodyAxisWorld.Subtract(vHat.MultiplyScalar(bodyAxisWorld.Dot(vHat)))
		nHat = proj.Normalize()
	}

	fNormalMag := q * refArea * coef.CNAlpha * alpha
	fDragMag := q * refArea * (coef.CdfAxial + coef.CdpAxial + coef.CdbAxial)

	fAero := nHat.MultiplyScalar(fNormalMag).Subtract(vHat.MultiplyScalar(fDragMag))

	thrustMag := veh.Thrust(t).X
	fThrust := bodyAxisWorld.MultiplyScalar(thrustMag)

	fGravity := types.Vector3{Z: -mass * g}

	fTotal := fThrust.Add(fGravity).Add(fAero)
	accel := fTotal.DivideScalar(mass)

	cpLocal := coef.CP
	rCP := bodyAxisWorld.MultiplyScalar(cpLocal - com.X)
	torqueNormal := rCP.Cross(nHat.MultiplyScalar(fNormalMag))

	thrustApp := veh.ThrustApplicationPoint(t)
	rThrust := bodyAxisWorld.MultiplyScalar(thrustApp.X - com.X)
	torqueThrust := rThrust.Cross(fThrust)

	var torqueDamp types.Vector3
	if flow.Omega > 0 {
		omegaMag := q * refArea * refLen * coef.CMDamp
		omegaHat := types.Vector3{X: s.DPhi, Y: s.DTheta, Z: s.DPsi}.Normalize()
		torqueDamp = omegaHat.MultiplyScalar(-omegaMag * flow.Omega)
	}

	torqueWorld := torqueNormal.Add(torqueThrust).Add(torqueDamp)
	RT := R.Transpose()
	torqueBody := *RT.MultiplyVector(&torqueWorld)

	ddPhi, ddTheta, ddPsi := 0.0, 0.0, 0.0
	if inertiaBody.M11 > 0 {
		ddPhi = torqueBody.X / inertiaBody.M11
	}
	if inertiaBody.M22 > 0 {
		ddTheta = torqueBody.Y / inertiaBody.M22
	}
	if inertiaBody.M33 > 0 {
		ddPsi = torqueBody.Z / inertiaBody.M33
	}

	return State{
		Xp: s.Xv, Xv: accel.X,
		Yp: s.Yv, Yv: accel.Y,
		Zp: s.Zv, Zv: accel.Z,
		Phi: s.DPhi, DPhi: ddPhi,
		Theta: s.DTheta, DTheta: ddTheta,
		Psi: s.DPsi, DPsi: ddPsi,
	}
}
