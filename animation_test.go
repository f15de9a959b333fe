package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestTweenTransformReachesTarget(t *testing.T) {
	tr := &Transform{RotationX: 1, RotationY: -2, Scale: Vec3{0.5, 0.5, 0.5}}
	to := Transform{Scale: Vec3{1, 2, 3}}

	g := TweenTransform(tr, to, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	assert.False(t, g.Done)
	assert.InDelta(t, 0.5, tr.RotationX, 0.01)
	g.Update(0.5)

	assert.True(t, g.Done)
	assert.InDelta(t, 0, tr.RotationX, 0.01)
	assert.InDelta(t, 0, tr.RotationY, 0.01)
	assert.InDelta(t, 1, tr.Scale.X, 0.01)
	assert.InDelta(t, 2, tr.Scale.Y, 0.01)
	assert.InDelta(t, 3, tr.Scale.Z, 0.01)
}

func TestTweenScaleMarksChanged(t *testing.T) {
	tr := NewTransform(1)
	v := tr.Version()

	g := TweenScale(tr, Vec3{2, 2, 2}, 0.5, ease.Linear)
	g.Update(0.25)
	assert.Greater(t, tr.Version(), v)

	g.Update(0.25)
	assert.True(t, g.Done)

	// Updates after completion are ignored.
	v = tr.Version()
	g.Update(1)
	assert.Equal(t, v, tr.Version())
	assert.InDelta(t, 2, tr.Scale.Y, 0.01)
}
