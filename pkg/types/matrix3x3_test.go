package types_test

import (
	"math"
	"testing"

	"github.com/loftwing/launchcore/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9 // Tolerance for float comparisons

func assertMatrixEqual(t *testing.T, expected, actual *types.Matrix3x3, msgAndArgs ...interface{}) {
	require.NotNil(t, actual, msgAndArgs...)
	assert.InDelta(t, expected.M11, actual.M11, delta, msgAndArgs...)
	assert.InDelta(t, expected.M12, actual.M12, delta, msgAndArgs...)
	assert.InDelta(t, expected.M13, actual.M13, delta, msgAndArgs...)
	assert.InDelta(t, expected.M21, actual.M21, delta, msgAndArgs...)
	assert.InDelta(t, expected.M22, actual.M22, delta, msgAndArgs...)
	assert.InDelta(t, expected.M23, actual.M23, delta, msgAndArgs...)
	assert.InDelta(t, expected.M31, actual.M31, delta, msgAndArgs...)
	assert.InDelta(t, expected.M32, actual.M32, delta, msgAndArgs...)
	assert.InDelta(t, expected.M33, actual.M33, delta, msgAndArgs...)
}

func assertVectorEqual(t *testing.T, expected, actual *types.Vector3, msgAndArgs ...interface{}) {
	require.NotNil(t, actual, msgAndArgs...)
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}

func TestNewMatrix3x3(t *testing.T) {
	m := types.NewMatrix3x3([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	expected := &types.Matrix3x3{M11: 1, M12: 2, M13: 3, M21: 4, M22: 5, M23: 6, M31: 7, M32: 8, M33: 9}
	assertMatrixEqual(t, expected, m, "NewMatrix3x3 creation")
}

func TestNewMatrix3x3WrongLength(t *testing.T) {
	assert.Nil(t, types.NewMatrix3x3([]float64{1, 2, 3}))
}

func TestIdentityMatrix(t *testing.T) {
	m := types.IdentityMatrix()
	expected := &types.Matrix3x3{M11: 1, M22: 1, M33: 1}
	assertMatrixEqual(t, expected, m, "Identity matrix")
}

func TestMultiplyVector(t *testing.T) {
	m := types.NewMatrix3x3([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	v := &types.Vector3{X: 1, Y: 2, Z: 3}
	expected := &types.Vector3{X: 14, Y: 32, Z: 50}
	assertVectorEqual(t, expected, m.MultiplyVector(v), "Matrix-Vector multiplication")
}

func TestTranspose(t *testing.T) {
	m := types.NewMatrix3x3([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	expected := types.NewMatrix3x3([]float64{1, 4, 7, 2, 5, 8, 3, 6, 9})
	assertMatrixEqual(t, expected, m.Transpose(), "Matrix transpose")
}

func TestMultiplyMatrix(t *testing.T) {
	m1 := types.NewMatrix3x3([]float64{1, 2, 0, 3, 4, 0, 0, 0, 1})
	m2 := types.NewMatrix3x3([]float64{5, 6, 0, 7, 8, 0, 1, 0, 1})
	expected := types.NewMatrix3x3([]float64{19, 22, 0, 43, 50, 0, 1, 0, 1})
	assertMatrixEqual(t, expected, m1.MultiplyMatrix(m2), "Matrix-Matrix multiplication")
}

func TestInverse(t *testing.T) {
	t.Run("Invertible Matrix", func(t *testing.T) {
		m := types.NewMatrix3x3([]float64{1, 2, 3, 0, 1, 4, 5, 6, 0})
		inv := m.Inverse()
		require.NotNil(t, inv, "Inverse should exist")
		identity := m.MultiplyMatrix(inv)
		assertMatrixEqual(t, types.IdentityMatrix(), identity, "M * M_inv should be Identity")
	})

	t.Run("Singular Matrix", func(t *testing.T) {
		m := types.NewMatrix3x3([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
		assert.Nil(t, m.Inverse(), "Inverse of singular matrix should be nil")
	})
}

func TestRotationFromEulerIdentity(t *testing.T) {
	r := types.RotationFromEuler(0, 0, 0)
	assertMatrixEqual(t, types.IdentityMatrix(), &r, "zero Euler angles give identity rotation")
}

func TestRotationFromEulerRoll90(t *testing.T) {
	// 90 deg roll about Z (psi) rotates (1,0,0) -> (0,1,0).
	r := types.RotationFromEuler(0, 0, math.Pi/2)
	v := &types.Vector3{X: 1, Y: 0, Z: 0}
	rotated := r.MultiplyVector(v)
	assertVectorEqual(t, &types.Vector3{X: 0, Y: 1, Z: 0}, rotated, "90 deg roll of X axis")
}

func TestParallelAxisShiftRoundTrip(t *testing.T) {
	i := types.Matrix3x3{M11: 1, M22: 2, M33: 3}
	d := types.Vector3{X: 0.5, Y: 0.1, Z: -0.2}
	shifted := types.ParallelAxisShift(i, d, 4.0, false)
	restored := types.ParallelAxisShift(shifted, d, 4.0, true)
	assertMatrixEqual(t, &i, &restored, "shift then inverse-shift must round-trip")
}

func TestTransformInertiaBodyToWorld(t *testing.T) {
	iBody := types.NewMatrix3x3([]float64{1, 0, 0, 0, 2, 0, 0, 0, 3})
	r := types.RotationFromEuler(0, 0, math.Pi/2)
	expected := types.NewMatrix3x3([]float64{2, 0, 0, 0, 1, 0, 0, 0, 3})
	actual := types.TransformInertiaBodyToWorld(iBody, &r)
	assertMatrixEqual(t, expected, actual, "Inertia tensor transformation")
}
