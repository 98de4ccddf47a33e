package aero

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetaSubsonicAndSupersonic(t *testing.T) {
	assert.InDelta(t, 0.8, beta(0.6), 1e-2)
	assert.Greater(t, beta(2.0), 1.0)
}

func TestBetaAtMachOneIsZero(t *testing.T) {
	assert.Equal(t, 0.0, beta(1.0))
}

func TestSincAlphaLimitAtZero(t *testing.T) {
	assert.Equal(t, 1.0, sincAlpha(0))
}

func TestSincAlphaMatchesDefinition(t *testing.T) {
	assert.InDelta(t, 0.4546, sincAlpha(2.0), 1e-3)
}

func TestClampBounds(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-1, 0, 1))
	assert.Equal(t, 1.0, clamp(2, 0, 1))
	assert.Equal(t, 0.5, clamp(0.5, 0, 1))
}

func TestHermiteEndpoints(t *testing.T) {
	assert.InDelta(t, 1.0, hermite(1, 2, 0), 1e-9)
	assert.InDelta(t, 2.0, hermite(1, 2, 1), 1e-9)
}
