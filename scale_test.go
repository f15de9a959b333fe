package gesture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var defaultBounds = Range{Min: DefaultMinScale, Max: DefaultMaxScale}

func TestRatioScale_Apply(t *testing.T) {
	initial := Vec3{0.02, 0.02, 0.02}
	tests := []struct {
		name    string
		ev      MoveEvent
		want    Vec3
		changed bool
	}{
		{"grow 20%", MoveEvent{SpreadChange: 10, StartSpread: 50}, Vec3{0.024, 0.024, 0.024}, true},
		{"shrink 20%", MoveEvent{SpreadChange: -10, StartSpread: 50}, Vec3{0.016, 0.016, 0.016}, true},
		{"zero change", MoveEvent{SpreadChange: 0, StartSpread: 50}, initial, false},
		{"zero start spread", MoveEvent{SpreadChange: 10, StartSpread: 0}, initial, false},
		{"clamped high", MoveEvent{SpreadChange: 1000, StartSpread: 1}, Vec3{0.08, 0.08, 0.08}, true},
		{"clamped low", MoveEvent{SpreadChange: -1000, StartSpread: 1}, Vec3{0.005, 0.005, 0.005}, true},
		{"nan change", MoveEvent{SpreadChange: math.NaN(), StartSpread: 1}, initial, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRatioScale(initial)
			got, changed := r.Apply(initial, tt.ev, defaultBounds)
			assert.Equal(t, tt.changed, changed)
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-12)
		})
	}
}

func TestRatioScale_PreservesProportions(t *testing.T) {
	initial := Vec3{0.01, 0.02, 0.04}
	r := NewRatioScale(initial)

	got, _ := r.Apply(initial, MoveEvent{SpreadChange: 50, StartSpread: 50}, defaultBounds)
	assert.InDelta(t, 0.02, got.X, 1e-12)
	assert.InDelta(t, 0.04, got.Y, 1e-12)
	assert.InDelta(t, 0.08, got.Z, 1e-12)

	// Z already sits on maxScale, so the factor cannot grow further.
	got, _ = r.Apply(got, MoveEvent{SpreadChange: 50, StartSpread: 50}, defaultBounds)
	assert.InDelta(t, 0.08, got.Z, 1e-12)
	assert.InDelta(t, 0.02, got.X, 1e-12)
	assert.InDelta(t, 2.0, r.Factor(), 1e-12)
}

func TestRatioScale_UnfittableProportionsStayClamped(t *testing.T) {
	// X needs a factor of at least 5 to reach minScale, Z at most 0.08 to
	// stay under maxScale.
	initial := Vec3{0.001, 0.001, 1}
	r := NewRatioScale(initial)

	cur := initial
	for i := 0; i < 5; i++ {
		cur, _ = r.Apply(cur, MoveEvent{SpreadChange: 1000, StartSpread: 1}, defaultBounds)
	}
	assert.InDelta(t, 5.0, r.Factor(), 1e-12)
	assert.InDelta(t, 0.005, cur.X, 1e-12)
	assert.InDelta(t, 0.005, cur.Y, 1e-12)
	assert.Equal(t, 0.08, cur.Z)

	cur, _ = r.Apply(cur, MoveEvent{SpreadChange: -25, StartSpread: 50}, defaultBounds)
	assert.InDelta(t, 2.5, r.Factor(), 1e-12)

	cur, _ = r.Apply(cur, MoveEvent{SpreadChange: -1000, StartSpread: 1}, defaultBounds)
	assert.InDelta(t, 0.08, r.Factor(), 1e-12)
	assert.Equal(t, Vec3{0.005, 0.005, 0.08}, cur)
}

func TestRatioScale_RecoversFromZeroMinScale(t *testing.T) {
	bounds := Range{Min: 0, Max: DefaultMaxScale}
	initial := Vec3{0.02, 0.02, 0.02}
	r := NewRatioScale(initial)

	cur, changed := r.Apply(initial, MoveEvent{SpreadChange: -50, StartSpread: 50}, bounds)
	assert.True(t, changed)
	assert.InDelta(t, minRatioFactor, r.Factor(), 1e-15)
	assert.Positive(t, cur.X)

	next, changed := r.Apply(cur, MoveEvent{SpreadChange: 50, StartSpread: 50}, bounds)
	assert.True(t, changed)
	assert.InDelta(t, 2*cur.X, next.X, 1e-15)
}

func TestRatioScale_Accumulates(t *testing.T) {
	initial := Vec3{0.02, 0.02, 0.02}
	r := NewRatioScale(initial)
	cur := initial
	cur, _ = r.Apply(cur, MoveEvent{SpreadChange: 10, StartSpread: 50}, defaultBounds)
	cur, _ = r.Apply(cur, MoveEvent{SpreadChange: 10, StartSpread: 50}, defaultBounds)
	assert.InDelta(t, 1.44, r.Factor(), 1e-12)
	assert.InDelta(t, 0.0288, cur.X, 1e-12)

	r.Reset()
	assert.Equal(t, 1.0, r.Factor())
}

func TestStepScale_Apply(t *testing.T) {
	s := NewStepScale()
	start := Vec3{0.02, 0.03, 0.079}

	got, changed := s.Apply(start, MoveEvent{SpreadChange: 3}, defaultBounds)
	assert.True(t, changed)
	assert.InDelta(t, 0.021, got.X, 1e-12)
	assert.InDelta(t, 0.0315, got.Y, 1e-12)
	assert.Equal(t, 0.08, got.Z, "clamped per axis")

	got, changed = s.Apply(start, MoveEvent{SpreadChange: -0.1}, defaultBounds)
	assert.True(t, changed)
	assert.InDelta(t, 0.019, got.X, 1e-12)

	got, changed = s.Apply(start, MoveEvent{SpreadChange: 0}, defaultBounds)
	assert.False(t, changed)
	assert.Equal(t, start, got)
}

func TestStepScale_FloorAtMin(t *testing.T) {
	s := NewStepScale()
	cur := Vec3{0.006, 0.006, 0.006}
	for i := 0; i < 50; i++ {
		cur, _ = s.Apply(cur, MoveEvent{SpreadChange: -1}, defaultBounds)
	}
	assert.Equal(t, Vec3{0.005, 0.005, 0.005}, cur)
}

func TestParseScaleMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ScaleMode
		wantErr bool
	}{
		{"ratio", ScaleRatio, false},
		{"Continuous", ScaleRatio, false},
		{"", ScaleRatio, false},
		{"step", ScaleStep, false},
		{" DISCRETE ", ScaleStep, false},
		{"zoom", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScaleMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
