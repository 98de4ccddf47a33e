package aero

// FinSetAero aggregates N identical fin panels into a single aero node,
// applying the multi-fin interference coefficient and the body-interference
// factor before rolling the result up like any other node.
type FinSetAero struct {
	cache       *nodeCache
	fin         *Fin
	numFins     int
	multiFinK   float64 // MultiFinCoefficient(numFins), supplied by the caller (pkg/rocket owns the table)
	interferenceFactor float64
	cmDamp      float64 // 0.6*(min(N,4)*A_fin*d_mac)/(A_ref*L_ref), precomputed by the caller (flow-independent)
}

// NewFinSetAero builds a fin-set aero node from a single representative fin
// panel plus the fin count, the two dimensionless correction factors, and
// the pitch-damping factor the caller (pkg/rocket, which already owns the
// body-radius geometry) computed; see pkg/rocket.FinSet.PitchDampingFactor.
func NewFinSetAero(fin *Fin, numFins int, multiFinK, interferenceFactor, cmDamp float64) *FinSetAero {
	return &FinSetAero{cache: newNodeCache(), fin: fin, numFins: numFins, multiFinK: multiFinK, interferenceFactor: interferenceFactor, cmDamp: cmDamp}
}

func (fs *FinSetAero) ReferenceArea() float64   { return fs.fin.ReferenceArea() }
func (fs *FinSetAero) ReferenceLength() float64 { return fs.fin.ReferenceLength() }
func (fs *FinSetAero) Invalidate() {
	fs.cache.Invalidate()
	fs.fin.Invalidate()
}

func (fs *FinSetAero) Evaluate(f Flow) Coefficients {
	single := fs.fin.Evaluate(f)
	factor := float64(fs.numFins) / 2.0 * fs.multiFinK * fs.interferenceFactor

	var out Coefficients
	out.CNAlpha = fs.cache.CNAlpha(f, func() float64 { return single.CNAlpha * factor })
	out.CMAlpha = fs.cache.CMAlpha(f, func() float64 { return single.CMAlpha * factor })
	out.CP = fs.cache.CP(f, func() float64 { return single.CP })
	out.CMDamp = fs.cmDamp
	out.CdfAxial = single.CdfAxial * float64(fs.numFins)
	out.CdpAxial = single.CdpAxial * float64(fs.numFins)
	return out
}
