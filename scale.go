package gesture

import (
	"fmt"
	"math"
	"strings"
)

// ScaleMode names a built-in scale strategy.
type ScaleMode uint8

const (
	ScaleRatio ScaleMode = iota // continuous ratio, proportional
	ScaleStep                   // fixed multiplier per move, per-axis clamp
)

// String returns the configuration name of the mode.
func (m ScaleMode) String() string {
	switch m {
	case ScaleRatio:
		return "ratio"
	case ScaleStep:
		return "step"
	default:
		return fmt.Sprintf("ScaleMode(%d)", m)
	}
}

// ParseScaleMode parses "ratio" or "step" (case-insensitive).
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ratio", "continuous", "":
		return ScaleRatio, nil
	case "step", "discrete":
		return ScaleStep, nil
	default:
		return 0, fmt.Errorf("gesture: unknown scale strategy %q", s)
	}
}

// ScaleStrategy maps a two-finger move onto a new object scale. Apply
// returns the new scale and whether it differs from current. Implementations
// must keep every axis within bounds and leave the scale untouched when
// SpreadChange is zero.
type ScaleStrategy interface {
	Apply(current Vec3, ev MoveEvent, bounds Range) (Vec3, bool)
	// Reset forgets accumulated state after the object scale was restored.
	Reset()
}

// newScaleStrategy builds the strategy for mode. initial is the object
// scale at attach time.
func newScaleStrategy(mode ScaleMode, initial Vec3) ScaleStrategy {
	if mode == ScaleStep {
		return NewStepScale()
	}
	return NewRatioScale(initial)
}

// --- Continuous ratio ---

// RatioScale keeps a running factor relative to the initial scale and
// multiplies it by 1 + SpreadChange/StartSpread on every move. All axes share
// the factor so the object keeps its proportions.
type RatioScale struct {
	initial Vec3
	factor  float64
}

// NewRatioScale creates a ratio strategy for an object whose unscaled size
// is initial.
func NewRatioScale(initial Vec3) *RatioScale {
	return &RatioScale{initial: initial, factor: 1}
}

// Factor returns the current running factor.
func (r *RatioScale) Factor() float64 {
	return r.factor
}

// Reset sets the running factor back to 1.
func (r *RatioScale) Reset() {
	r.factor = 1
}

// minRatioFactor is the smallest running factor. A zero factor could never
// grow again.
const minRatioFactor = 1e-3

// factorBounds returns the factor range that keeps every positive initial
// axis inside bounds. When the initial proportions cannot all fit, the range
// runs between the factors that pin the largest and the smallest axis, so
// at least one axis stays inside bounds. The range never drops below
// minRatioFactor.
func (r *RatioScale) factorBounds(bounds Range) Range {
	fr := Range{Min: 0, Max: math.Inf(1)}
	for _, v := range [3]float64{r.initial.X, r.initial.Y, r.initial.Z} {
		if v <= 0 {
			continue
		}
		fr.Min = math.Max(fr.Min, bounds.Min/v)
		fr.Max = math.Min(fr.Max, bounds.Max/v)
	}
	if fr.Min > fr.Max {
		fr.Min, fr.Max = fr.Max, fr.Min
	}
	fr.Min = math.Max(fr.Min, minRatioFactor)
	fr.Max = math.Max(fr.Max, fr.Min)
	return fr
}

func (r *RatioScale) Apply(current Vec3, ev MoveEvent, bounds Range) (Vec3, bool) {
	if ev.SpreadChange == 0 || ev.StartSpread == 0 {
		return current, false
	}
	next := r.factor * (1 + ev.SpreadChange/ev.StartSpread)
	if math.IsNaN(next) || math.IsInf(next, 0) {
		return current, false
	}
	r.factor = r.factorBounds(bounds).Clamp(next)

	// The per-axis clamp only bites when the initial proportions cannot all
	// fit inside bounds at once.
	out := Vec3{
		X: bounds.Clamp(r.factor * r.initial.X),
		Y: bounds.Clamp(r.factor * r.initial.Y),
		Z: bounds.Clamp(r.factor * r.initial.Z),
	}
	return out, out != current
}

// --- Discrete step ---

// Default multipliers for StepScale.
const (
	DefaultStepUp   = 1.05
	DefaultStepDown = 0.95
)

// StepScale multiplies the current scale by Up when the spread grew and by
// Down when it shrank, clamping each axis independently.
type StepScale struct {
	Up, Down float64
}

// NewStepScale returns a StepScale with the default ×1.05 / ×0.95 steps.
func NewStepScale() *StepScale {
	return &StepScale{Up: DefaultStepUp, Down: DefaultStepDown}
}

// Reset is a no-op; StepScale is stateless.
func (s *StepScale) Reset() {}

func (s *StepScale) Apply(current Vec3, ev MoveEvent, bounds Range) (Vec3, bool) {
	var m float64
	switch {
	case ev.SpreadChange > 0:
		m = s.Up
	case ev.SpreadChange < 0:
		m = s.Down
	default:
		return current, false
	}
	out := Vec3{
		X: bounds.Clamp(current.X * m),
		Y: bounds.Clamp(current.Y * m),
		Z: bounds.Clamp(current.Z * m),
	}
	return out, out != current
}
