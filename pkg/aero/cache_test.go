package aero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundSnapsToStep(t *testing.T) {
	assert.InDelta(t, 0.30, round(0.301, 0.01), 1e-9)
	assert.InDelta(t, 1.0, round(0.96, 1), 1e-9)
}

func TestKeyForNearbyFlowsCollide(t *testing.T) {
	a := keyFor(Flow{Mach: 0.301, Alpha: 0.01})
	b := keyFor(Flow{Mach: 0.3041, Alpha: 0.01})
	assert.Equal(t, a, b)
}

func TestNodeCacheComputesOnceForSameKey(t *testing.T) {
	c := newNodeCache()
	calls := 0
	compute := func() float64 {
		calls++
		return 42.0
	}
	f := Flow{Mach: 0.3}
	assert.Equal(t, 42.0, c.CNAlpha(f, compute))
	assert.Equal(t, 42.0, c.CNAlpha(f, compute))
	assert.Equal(t, 1, calls)
}

func TestNodeCacheInvalidateForcesRecompute(t *testing.T) {
	c := newNodeCache()
	calls := 0
	compute := func() float64 {
		calls++
		return float64(calls)
	}
	f := Flow{Mach: 0.3}
	first := c.CNAlpha(f, compute)
	c.Invalidate()
	second := c.CNAlpha(f, compute)
	assert.NotEqual(t, first, second)
}

func TestNodeCacheMapsAreIndependent(t *testing.T) {
	c := newNodeCache()
	f := Flow{Mach: 0.3}
	c.CNAlpha(f, func() float64 { return 1 })
	c.CP(f, func() float64 { return 2 })
	assert.Equal(t, 1.0, c.CNAlpha(f, func() float64 { return 99 }))
	assert.Equal(t, 2.0, c.CP(f, func() float64 { return 99 }))
}
