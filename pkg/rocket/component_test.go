package rocket_test

import (
	"testing"

	"github.com/loftwing/launchcore/pkg/materials"
	"github.com/loftwing/launchcore/pkg/rocket"
	"github.com/loftwing/launchcore/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSimpleStage() (*rocket.Stage, *rocket.BodyTube, *rocket.Nosecone) {
	bt := rocket.NewBodyTube("body", 0.05, 0.5, 0.002, materials.Cardboard, materials.Smooth)
	nc := rocket.NewNosecone("nose", 0.05, 0.15, 1.0/3.0, 0.002, materials.PLA, materials.Polished)
	st := rocket.NewStage("sustainer")
	_ = st.AddChild(bt)
	_ = st.AddChild(nc)
	return st, bt, nc
}

func TestAddChildRejectsWrongKind(t *testing.T) {
	st, _, _ := buildSimpleStage()
	fin := rocket.NewFin(0.1, 0.05, 0.06, 0.02, 0.003, materials.Plywood)
	fs := rocket.NewFinSet("fins", fin, 3, 0.05)
	err := st.AddChild(fs)
	require.Error(t, err)
	var mismatch *rocket.ComponentTypeMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestAddChildReparentsFromExistingParent(t *testing.T) {
	st1, bt, _ := buildSimpleStage()
	st2 := rocket.NewStage("booster")

	require.NoError(t, st2.AddChild(bt))
	assert.Equal(t, st2, bt.Parent())
	assert.NotContains(t, st1.Children(), bt)
}

func TestRemoveChildByIdentity(t *testing.T) {
	st, bt, nc := buildSimpleStage()
	st.RemoveChild(bt)
	assert.Len(t, st.Children(), 1)
	assert.Equal(t, nc.ID(), st.Children()[0].ID())
	assert.Nil(t, bt.Parent())
}

func TestMassComposesAcrossTree(t *testing.T) {
	st, bt, nc := buildSimpleStage()
	total := st.Mass(0)
	assert.InDelta(t, bt.Mass(0)+nc.Mass(0), total, 1e-9)
}

func TestCacheInvalidatesOnChildAdd(t *testing.T) {
	st, bt, _ := buildSimpleStage()
	m1 := st.Mass(0)
	fin := rocket.NewFin(0.1, 0.05, 0.06, 0.02, 0.003, materials.Plywood)
	fs := rocket.NewFinSet("fins", fin, 3, bt.Radius())
	require.NoError(t, bt.AddChild(fs))
	m2 := st.Mass(0)
	assert.Greater(t, m2, m1, "adding a fin set should increase the composed stage mass")
}

func TestInertiaSymmetric(t *testing.T) {
	st, _, _ := buildSimpleStage()
	i := st.InertiaAboutOrigin(0)
	assert.InDelta(t, i.M12, i.M21, 1e-9)
	assert.InDelta(t, i.M13, i.M31, 1e-9)
	assert.InDelta(t, i.M23, i.M32, 1e-9)
}

func TestRocketInertiaAboutCOMRoundTrips(t *testing.T) {
	r := rocket.New("test-rocket")
	st, _, _ := buildSimpleStage()
	require.NoError(t, r.AddChild(st))

	iOrigin := r.InertiaAboutOrigin(0)
	com := r.CenterOfMass(0)
	mass := r.Mass(0)
	iCOM := r.InertiaAboutCOM(0)
	restored := types.ParallelAxisShift(iCOM, com, mass, false)

	assert.InDelta(t, iOrigin.M11, restored.M11, 1e-6)
	assert.InDelta(t, iOrigin.M22, restored.M22, 1e-6)
}

func TestReferenceAreaIsMaxOverSubtree(t *testing.T) {
	r := rocket.New("test-rocket")
	st, bt, nc := buildSimpleStage()
	require.NoError(t, r.AddChild(st))
	expected := bt.Shape().ReferenceArea()
	if nc.Shape().ReferenceArea() > expected {
		expected = nc.Shape().ReferenceArea()
	}
	assert.InDelta(t, expected, r.ReferenceArea(), 1e-9)
}

func TestInternalComponentAddsLumpedMass(t *testing.T) {
	st, bt, _ := buildSimpleStage()
	before := bt.Mass(0)
	ic := rocket.NewInternalComponent("avionics", 0.2, types.Vector3{X: 0.1}, types.Matrix3x3{})
	require.NoError(t, bt.AddChild(ic))
	assert.InDelta(t, before+0.2, bt.Mass(0), 1e-9)
}
