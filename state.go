package gesture

import (
	"encoding/json"
	"math"
	"time"
)

// TouchSample is one physical contact point on a surface.
type TouchSample struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// TouchInput is a raw notification delivered to a Surface. Touches lists
// every contact still active after the change, in input order.
type TouchInput struct {
	Kind    TouchKind
	Touches []TouchSample
}

// TouchState summarises all simultaneous contacts at one instant.
// Spread is only meaningful when HasSpread is true (two or more contacts);
// the JSON form carries "spread" exactly when HasSpread is set.
type TouchState struct {
	TouchCount int     `json:"touchCount"`
	Position   Vec2    `json:"position"`
	Spread     float64 `json:"spread"`
	HasSpread  bool    `json:"-"`
}

// DeriveTouchState computes a TouchState from scratch. It returns false when
// there are no contacts.
func DeriveTouchState(touches []TouchSample) (TouchState, bool) {
	n := len(touches)
	if n == 0 {
		return TouchState{}, false
	}

	var sx, sy float64
	for _, t := range touches {
		sx += t.X
		sy += t.Y
	}
	st := TouchState{
		TouchCount: n,
		Position:   Vec2{X: sx / float64(n), Y: sy / float64(n)},
	}
	if n >= 2 {
		st.Spread = math.Hypot(touches[0].X-touches[1].X, touches[0].Y-touches[1].Y)
		st.HasSpread = true
	}
	return st, true
}

// Gesture is the detector's record of an in-progress gesture. The Start*
// fields are captured once when the gesture begins and never change.
type Gesture struct {
	TouchState
	StartTime     time.Time `json:"startTime"`
	StartPosition Vec2      `json:"startPosition"`
	StartSpread   float64   `json:"startSpread"`
}

// Cohort returns the naming category of the gesture.
func (g Gesture) Cohort() Cohort {
	return CohortFor(g.TouchCount)
}

// Event is a gesture notification. The concrete type is one of StartEvent,
// MoveEvent or EndEvent.
type Event interface {
	Cohort() Cohort
	Phase() Phase
	Name() string
	isEvent()
}

// StartEvent is emitted when a new touch count is first observed.
type StartEvent struct {
	Gesture
}

func (StartEvent) Phase() Phase   { return PhaseStart }
func (e StartEvent) Name() string { return EventName(e.Cohort(), PhaseStart) }
func (StartEvent) isEvent()       {}

// EndEvent is emitted with the last known state of a gesture whose touch
// count changed or dropped to zero.
type EndEvent struct {
	Gesture
}

func (EndEvent) Phase() Phase   { return PhaseEnd }
func (e EndEvent) Name() string { return EventName(e.Cohort(), PhaseEnd) }
func (EndEvent) isEvent()       {}

// MoveEvent is emitted for every input that keeps the touch count unchanged.
// PositionChange and SpreadChange are relative to the previous input, not to
// the gesture start.
type MoveEvent struct {
	TouchCount     int     `json:"touchCount"`
	Position       Vec2    `json:"position"`
	Spread         float64 `json:"spread"`
	HasSpread      bool    `json:"-"`
	PositionChange Vec2    `json:"positionChange"`
	SpreadChange   float64 `json:"spreadChange"`
	StartSpread    float64 `json:"startSpread"`
}

func (e MoveEvent) Cohort() Cohort { return CohortFor(e.TouchCount) }
func (MoveEvent) Phase() Phase     { return PhaseMove }
func (e MoveEvent) Name() string   { return EventName(e.Cohort(), PhaseMove) }
func (MoveEvent) isEvent()         {}

// spreadPtr returns &v when present, so the field is omitted otherwise.
func spreadPtr(v float64, present bool) *float64 {
	if !present {
		return nil
	}
	return &v
}

type touchStateJSON struct {
	TouchCount int      `json:"touchCount"`
	Position   Vec2     `json:"position"`
	Spread     *float64 `json:"spread,omitempty"`
}

// MarshalJSON writes "spread" exactly when HasSpread is true, including a
// zero spread from coincident contacts.
func (s TouchState) MarshalJSON() ([]byte, error) {
	return json.Marshal(touchStateJSON{
		TouchCount: s.TouchCount,
		Position:   s.Position,
		Spread:     spreadPtr(s.Spread, s.HasSpread),
	})
}

type gestureJSON struct {
	touchStateJSON
	StartTime     time.Time `json:"startTime"`
	StartPosition Vec2      `json:"startPosition"`
	StartSpread   *float64  `json:"startSpread,omitempty"`
}

// MarshalJSON writes "spread" and "startSpread" exactly when the gesture has
// two or more contacts.
func (g Gesture) MarshalJSON() ([]byte, error) {
	return json.Marshal(gestureJSON{
		touchStateJSON: touchStateJSON{
			TouchCount: g.TouchCount,
			Position:   g.Position,
			Spread:     spreadPtr(g.Spread, g.HasSpread),
		},
		StartTime:     g.StartTime,
		StartPosition: g.StartPosition,
		StartSpread:   spreadPtr(g.StartSpread, g.HasSpread),
	})
}

type moveEventJSON struct {
	touchStateJSON
	PositionChange Vec2     `json:"positionChange"`
	SpreadChange   float64  `json:"spreadChange"`
	StartSpread    *float64 `json:"startSpread,omitempty"`
}

// MarshalJSON writes "spread" and "startSpread" exactly when HasSpread is
// true.
func (e MoveEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(moveEventJSON{
		touchStateJSON: touchStateJSON{
			TouchCount: e.TouchCount,
			Position:   e.Position,
			Spread:     spreadPtr(e.Spread, e.HasSpread),
		},
		PositionChange: e.PositionChange,
		SpreadChange:   e.SpreadChange,
		StartSpread:    spreadPtr(e.StartSpread, e.HasSpread),
	})
}
