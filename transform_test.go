package gesture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformSetters(t *testing.T) {
	tr := NewTransform(0.5)
	assert.Equal(t, Vec3{0.5, 0.5, 0.5}, tr.Scale)
	assert.Zero(t, tr.Version())

	tr.Rotate(0.1, 0.2)
	tr.Rotate(0.1, 0.2)
	assert.InDelta(t, 0.2, tr.RotationX, 1e-12)
	assert.InDelta(t, 0.4, tr.RotationY, 1e-12)

	tr.SetRotation(1, 2)
	tr.SetScale(Vec3{1, 2, 3})
	assert.Equal(t, uint64(4), tr.Version())

	snap := tr.Snapshot()
	tr.SetScale(Vec3{})
	assert.Equal(t, Vec3{1, 2, 3}, snap.Scale)
}

func TestTransformMatrix(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		want [9]float64
	}{
		{"identity", Transform{Scale: Vec3{1, 1, 1}}, [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}},
		{"scale", Transform{Scale: Vec3{2, 3, 4}}, [9]float64{2, 0, 0, 0, 3, 0, 0, 0, 4}},
		{"yaw 90", Transform{RotationY: math.Pi / 2, Scale: Vec3{1, 1, 1}}, [9]float64{0, 0, -1, 0, 1, 0, 1, 0, 0}},
		{"pitch 90", Transform{RotationX: math.Pi / 2, Scale: Vec3{1, 1, 1}}, [9]float64{1, 0, 0, 0, 0, 1, 0, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tr.Matrix()
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-12, "m[%d]", i)
			}
		})
	}
}
