package aero

// Node is one aerodynamic tree node: a body component, a fin set, or a
// composite (stage/rocket) rolling up its children. Every Node owns the
// four caches described in the package doc and reports its own reference
// area/length for the normalization rule.
type Node interface {
	Evaluate(f Flow) Coefficients
	ReferenceArea() float64
	ReferenceLength() float64
	Invalidate()
}

// Composite rolls up child nodes per the normalization rule: a child's force
// coefficient is weighted by its reference area, a moment coefficient by
// reference area times reference length, each divided by the composite's
// own reference area/length.
type Composite struct {
	cache    *nodeCache
	refArea  float64
	refLen   float64
	children []Node
}

// NewComposite builds a composite node with an explicit reference area and
// length (typically the maximum over the whole rocket) and child nodes.
func NewComposite(refArea, refLen float64, children ...Node) *Composite {
	return &Composite{cache: newNodeCache(), refArea: refArea, refLen: refLen, children: children}
}

func (c *Composite) ReferenceArea() float64   { return c.refArea }
func (c *Composite) ReferenceLength() float64 { return c.refLen }
func (c *Composite) Invalidate() {
	c.cache.Invalidate()
	for _, ch := range c.children {
		ch.Invalidate()
	}
}

func (c *Composite) Evaluate(f Flow) Coefficients {
	var out Coefficients
	cnAlpha := c.cache.CNAlpha(f, func() float64 {
		var sum float64
		for _, ch := range c.children {
			co := ch.Evaluate(f)
			if c.refArea > 0 {
				sum += co.CNAlpha * ch.ReferenceArea() / c.refArea
			}
		}
		return sum
	})
	cmAlpha := c.cache.CMAlpha(f, func() float64 {
		var sum float64
		for _, ch := range c.children {
			co := ch.Evaluate(f)
			if c.refArea > 0 && c.refLen > 0 {
				sum += co.CMAlpha * ch.ReferenceArea() * ch.ReferenceLength() / (c.refArea * c.refLen)
			}
		}
		return sum
	})
	cp := c.cache.CP(f, func() float64 {
		var weighted, totalCN float64
		for _, ch := range c.children {
			co := ch.Evaluate(f)
			cnWeight := co.CNAlpha * ch.ReferenceArea()
			weighted += co.CP * cnWeight
			totalCN += cnWeight
		}
		if totalCN == 0 {
			return 0
		}
		return weighted / totalCN
	})
	cmDamp := c.cache.CMDamp(f, func() float64 {
		var sum float64
		for _, ch := range c.children {
			sum += ch.Evaluate(f).CMDamp
		}
		return sum
	})

	var cdf, cdp, cdb float64
	for _, ch := range c.children {
		co := ch.Evaluate(f)
		if c.refArea > 0 {
			cdf += co.CdfAxial * ch.ReferenceArea() / c.refArea
			cdp += co.CdpAxial * ch.ReferenceArea() / c.refArea
		}
		cdb += co.CdbAxial
	}

	out.CNAlpha, out.CMAlpha, out.CP, out.CMDamp = cnAlpha, cmAlpha, cp, cmDamp
	out.CdfAxial, out.CdpAxial, out.CdbAxial = cdf, cdp, cdb
	return out
}
