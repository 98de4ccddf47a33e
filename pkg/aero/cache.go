package aero

import (
	"math"
	"sync"
)

// cacheKey is a rounded fingerprint of a Flow: Mach to 0.01, alpha to 0.1deg
// (as radians), gamma to the nearest integer, and the damping-relevant
// (x_cm, omega, v) trio, matching the four-cache-per-node contract.
type cacheKey struct {
	mach, alpha, gamma float64
	x, omega, v        float64
}

func round(x, step float64) float64 {
	return math.Round(x/step) * step
}

func keyFor(f Flow) cacheKey {
	const degToRad = math.Pi / 180.0
	return cacheKey{
		mach:  round(f.Mach, 0.01),
		alpha: round(f.Alpha, 0.1*degToRad),
		gamma: round(f.Gamma, 1),
		x:     round(f.XCm, 1e-3),
		omega: round(f.Omega, 1e-3),
		v:     round(f.V, 1e-3),
	}
}

// nodeCache holds the four independently-invalidated caches a node owns:
// C_Nalpha, C_malpha, CP, and C_m_damp.
type nodeCache struct {
	mu      sync.Mutex
	cNAlpha map[cacheKey]float64
	cMAlpha map[cacheKey]float64
	cp      map[cacheKey]float64
	cMDamp  map[cacheKey]float64
}

func newNodeCache() *nodeCache {
	return &nodeCache{
		cNAlpha: make(map[cacheKey]float64),
		cMAlpha: make(map[cacheKey]float64),
		cp:      make(map[cacheKey]float64),
		cMDamp:  make(map[cacheKey]float64),
	}
}

// Invalidate clears every cache owned by this node.
func (c *nodeCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cNAlpha = make(map[cacheKey]float64)
	c.cMAlpha = make(map[cacheKey]float64)
	c.cp = make(map[cacheKey]float64)
	c.cMDamp = make(map[cacheKey]float64)
}

func (c *nodeCache) lookup(m map[cacheKey]float64, k cacheKey, compute func() float64) float64 {
	c.mu.Lock()
	if v, ok := m[k]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	m[k] = v
	c.mu.Unlock()
	return v
}

func (c *nodeCache) CNAlpha(f Flow, compute func() float64) float64 {
	return c.lookup(c.cNAlpha, keyFor(f), compute)
}
func (c *nodeCache) CMAlpha(f Flow, compute func() float64) float64 {
	return c.lookup(c.cMAlpha, keyFor(f), compute)
}
func (c *nodeCache) CP(f Flow, compute func() float64) float64 {
	return c.lookup(c.cp, keyFor(f), compute)
}
func (c *nodeCache) CMDamp(f Flow, compute func() float64) float64 {
	return c.lookup(c.cMDamp, keyFor(f), compute)
}
