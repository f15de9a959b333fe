package gesture

import (
	"errors"
	"fmt"
	"strings"
)

// Vec2 is a 2D vector used for surface positions and deltas.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns v - o component-wise.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Vec3 is a 3D vector used for object scale.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Clamp returns v limited to [r.Min, r.Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies inside the range. Bounds are inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// TouchKind identifies the raw input notification a surface received.
type TouchKind uint8

const (
	TouchStart TouchKind = iota // a contact was added
	TouchMove                   // one or more contacts moved
	TouchEnd                    // a contact was lifted or cancelled
)

var touchKindNames = [...]string{"touchstart", "touchmove", "touchend"}

// String returns the DOM-style name of the notification.
func (k TouchKind) String() string {
	if int(k) < len(touchKindNames) {
		return touchKindNames[k]
	}
	return fmt.Sprintf("TouchKind(%d)", k)
}

// Phase is the lifecycle stage of a gesture event.
type Phase uint8

const (
	PhaseStart Phase = iota // gesture began
	PhaseMove               // gesture continued with the same touch count
	PhaseEnd                // gesture ended because the touch count changed
)

var phaseSuffixes = [...]string{"fingerstart", "fingermove", "fingerend"}

// String returns the event-name suffix for the phase.
func (p Phase) String() string {
	if int(p) < len(phaseSuffixes) {
		return phaseSuffixes[p]
	}
	return fmt.Sprintf("Phase(%d)", p)
}

// Cohort groups gestures by their simultaneous touch count.
type Cohort uint8

const (
	CohortOne   Cohort = iota // one finger
	CohortTwo                 // two fingers
	CohortThree               // three fingers
	CohortMany                // four or more fingers
)

var cohortPrefixes = [...]string{"one", "two", "three", "many"}

// String returns the event-name prefix for the cohort.
func (c Cohort) String() string {
	if int(c) < len(cohortPrefixes) {
		return cohortPrefixes[c]
	}
	return fmt.Sprintf("Cohort(%d)", c)
}

// CohortFor maps a touch count to its cohort. Counts of four and above share
// CohortMany; counts below one are treated as one.
func CohortFor(touchCount int) Cohort {
	switch {
	case touchCount <= 1:
		return CohortOne
	case touchCount >= 4:
		return CohortMany
	default:
		return Cohort(touchCount - 1)
	}
}

// ErrUnknownEvent is returned when an event name does not follow the
// "<prefix>finger<start|move|end>" convention.
var ErrUnknownEvent = errors.New("gesture: unknown event name")

// EventName returns the string name used by listeners outside this package,
// e.g. "twofingermove".
func EventName(c Cohort, p Phase) string {
	return c.String() + p.String()
}

// ParseEventName is the inverse of EventName.
func ParseEventName(name string) (Cohort, Phase, error) {
	for ci, prefix := range cohortPrefixes {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		for pi, suffix := range phaseSuffixes {
			if rest == suffix {
				return Cohort(ci), Phase(pi), nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

var touchKindByName = map[string]TouchKind{
	"start": TouchStart, "touchstart": TouchStart,
	"move": TouchMove, "touchmove": TouchMove,
	"end": TouchEnd, "touchend": TouchEnd,
}

// ParseTouchKind accepts "touchstart", "touchmove" and "touchend", with or
// without the "touch" prefix.
func ParseTouchKind(name string) (TouchKind, error) {
	k, ok := touchKindByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown touch kind %q", name)
	}
	return k, nil
}
