package aero

import "math"

// BodyProfile is the minimal shape contract a body-of-revolution component
// (body tube, nosecone shoulder, transition) exposes to the aero layer.
// Everything here is already available on pkg/shapes types.
type BodyProfile interface {
	Length() float64
	AreaAt(x float64) float64 // cross-sectional area at axial station x
	Volume() float64          // enclosed (filled) volume, for the potential-flow term
	PlanformArea() float64
	PlanformCenter() float64
	WettedArea() float64
	AverageRadius() float64                            // mean radius over the whole profile
	BisectedAverageRadius(x float64) (top, bottom float64) // mean radius of [0,x] and [x,L]
}

// Body wraps a body-of-revolution profile (a cylindrical body tube, or a
// nosecone's own body-like contribution) with its reference area/length and
// surface finish, and evaluates the potential-flow normal force, body-lift,
// pitching moment, damping moment and friction drag correlations of
// section 4.4.2.
type Body struct {
	cache       *nodeCache
	profile     BodyProfile
	roughness   float64 // equivalent sand-grain roughness height, meters
	refArea     float64
	refLen      float64
	xOffset     float64 // axial offset of this body's local origin from the vehicle nose
	isLowestOfLowestStage bool
	motorExitArea         func() float64 // active motor nozzle exit area, for base-drag relief; nil if none
}

// NewBody constructs a body-of-revolution aero node. xOffset locates the
// profile's local x=0 station in the vehicle's nose-relative axial frame, so
// CP values returned by Evaluate are already in vehicle coordinates.
func NewBody(profile BodyProfile, refArea, refLen, roughness, xOffset float64) *Body {
	return &Body{cache: newNodeCache(), profile: profile, roughness: roughness, refArea: refArea, refLen: refLen, xOffset: xOffset}
}

// MarkBaseDrag flags this body as the lowest body component of the lowest
// stage, the only component whose base drag is ever non-zero, and supplies
// the active motor's nozzle exit area (nil if no motor present) so the
// exposed base area can be relieved per the drag-composition rule.
func (b *Body) MarkBaseDrag(motorExitArea func() float64) {
	b.isLowestOfLowestStage = true
	b.motorExitArea = motorExitArea
}

func (b *Body) ReferenceArea() float64   { return b.refArea }
func (b *Body) ReferenceLength() float64 { return b.refLen }
func (b *Body) Invalidate()              { b.cache.Invalidate() }

func (b *Body) Evaluate(f Flow) Coefficients {
	var out Coefficients
	L := b.profile.Length()
	a0 := b.profile.AreaAt(0)
	aL := b.profile.AreaAt(L)

	cnPotential := b.cache.CNAlpha(f, func() float64 {
		if b.refArea == 0 {
			return 0
		}
		return (2.0 / b.refArea) * (aL - a0) * sincAlpha(f.Alpha)
	})
	cnBodyLift := 0.0
	if b.refArea > 0 && f.Alpha != 0 {
		cnBodyLift = 1.1 * (b.profile.PlanformArea() / b.refArea) * math.Sin(f.Alpha) * math.Sin(f.Alpha) / f.Alpha
	}
	out.CNAlpha = cnPotential + cnBodyLift

	cpPotential := b.cache.CP(f, func() float64 {
		denom := aL - a0
		if denom == 0 {
			return L / 2
		}
		return (L*aL - b.profile.Volume()) / denom
	})
	cpBodyLift := b.profile.PlanformCenter()

	if cnPotential+cnBodyLift != 0 {
		out.CP = (cpPotential*cnPotential + cpBodyLift*cnBodyLift) / (cnPotential + cnBodyLift)
	} else {
		out.CP = cpPotential
	}

	out.CMAlpha = b.cache.CMAlpha(f, func() float64 {
		if b.refArea == 0 || b.refLen == 0 {
			return 0
		}
		return (2.0 / (b.refArea * b.refLen)) * (L*aL - b.profile.Volume()) * sincAlpha(f.Alpha)
	})

	out.CMDamp = b.cache.CMDamp(f, func() float64 {
		return bodyDampingMoment(b.profile, f, b.xOffset, b.refArea, b.refLen)
	})

	out.CdfAxial = frictionDragCoefficient(b.profile.WettedArea(), b.refArea, f, b.roughness, L)

	if b.isLowestOfLowestStage {
		base := a0
		if b.motorExitArea != nil {
			base -= b.motorExitArea()
		}
		if base < 0 {
			base = 0
		}
		if b.refArea > 0 {
			out.CdbAxial = baseDragCoefficient(f.Mach) * base / b.refArea
		}
	}

	out.CP += b.xOffset
	return out
}

// bodyDampingMoment implements the closed-form slender-body pitch-damping
// correlation: C_m_damp = 0.55*L^4*r/(A_ref*L_ref) for a profile that falls
// entirely above or below the vehicle's center of mass. When the center of
// mass falls inside the profile's own length, the profile is bisected there
// and each half contributes its own term using that half's average radius.
func bodyDampingMoment(p BodyProfile, f Flow, xOffset, refArea, refLen float64) float64 {
	if refArea == 0 || refLen == 0 {
		return 0
	}
	L := p.Length()
	cDampFunc := func(length, avgRadius float64) float64 {
		return 0.55 * length * length * length * length * avgRadius / (refArea * refLen)
	}

	cmLocal := f.XCm - xOffset
	if L <= cmLocal || cmLocal <= 0 {
		return cDampFunc(L, p.AverageRadius())
	}

	topRadius, bottomRadius := p.BisectedAverageRadius(cmLocal)
	return cDampFunc(cmLocal, topRadius) + cDampFunc(L-cmLocal, bottomRadius)
}

// frictionDragCoefficient applies the Mandell/Barrowman piecewise
// skin-friction correlation: a fully-laminar floor below Re=1e4, otherwise
// the larger of the Schlichting turbulent-flat-plate correlation and a
// roughness-limited asymptote, each compressibility-corrected for the local
// Mach number and rolled up by wetted/reference area.
func frictionDragCoefficient(wettedArea, refArea float64, f Flow, roughness, length float64) float64 {
	if refArea == 0 || length <= 0 {
		return 0
	}
	re := f.ReOverL * length
	var cf float64
	switch {
	case re < 1e4:
		cf = 0.0148
	default:
		turbulent := 1.0 / math.Pow(1.50*math.Log(re)-5.6, 2)
		roughnessLimited := 0.032 * math.Pow(roughness/length, 0.2)
		cf = math.Max(turbulent, roughnessLimited)
	}
	if f.Mach < 1 {
		cf *= 1 - 0.1*f.Mach*f.Mach
	} else {
		cf /= math.Pow(1+0.15*f.Mach*f.Mach, 0.58)
	}
	return cf * wettedArea / refArea
}

// baseDragCoefficient is the classic base-drag correlation referenced to
// exposed base area: Cd_base = 0.12 + 0.13*M^2 for M<=1, decaying for M>1.
func baseDragCoefficient(mach float64) float64 {
	if mach <= 1 {
		return 0.12 + 0.13*mach*mach
	}
	return 0.25 / mach
}
