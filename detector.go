package gesture

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DetectorConfig configures a Detector.
type DetectorConfig struct {
	// Element selects the surface to listen on. Empty or unresolvable
	// selectors fall back to the detector's owner surface.
	Element string
	// Clock returns the gesture start time. Defaults to time.Now.
	Clock func() time.Time
	// Logger receives debug output. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// Detector turns raw touch notifications into start/move/end gesture events,
// one gesture per contiguous run of the same touch count.
type Detector struct {
	bus     *Bus
	owner   *Surface
	target  *Surface
	clock   func() time.Time
	log     logrus.FieldLogger
	handles [3]TouchHandle

	active   Gesture
	hasState bool
	attached bool
}

// NewDetector attaches a detector to the surface selected by cfg.Element
// (resolved through surfaces) or to owner, and emits on bus. It never fails.
func NewDetector(bus *Bus, owner *Surface, surfaces SurfaceResolver, cfg DetectorConfig) *Detector {
	d := &Detector{
		bus:   bus,
		owner: owner,
		clock: cfg.Clock,
		log:   cfg.Logger,
	}
	if d.clock == nil {
		d.clock = time.Now
	}
	if d.log == nil {
		d.log = logrus.StandardLogger()
	}

	d.target = owner
	if sel := normalizeSelector(cfg.Element); sel != "" && surfaces != nil {
		if found := surfaces.Surface(sel); found != nil {
			d.target = found
		} else {
			d.log.WithField("element", cfg.Element).Warn("gesture: surface not found, using owner")
		}
	}

	d.attach()
	return d
}

func (d *Detector) attach() {
	if d.attached || d.target == nil {
		return
	}
	d.handles[0] = d.target.OnTouch(TouchStart, d.HandleTouch)
	d.handles[1] = d.target.OnTouch(TouchEnd, d.HandleTouch)
	d.handles[2] = d.target.OnTouch(TouchMove, d.HandleTouch)
	d.attached = true
}

// Detach removes the detector's raw listeners. Safe to call repeatedly.
func (d *Detector) Detach() {
	if !d.attached {
		return
	}
	for i := range d.handles {
		d.handles[i].Remove()
		d.handles[i] = TouchHandle{}
	}
	d.attached = false
}

// Attached reports whether the raw listeners are registered.
func (d *Detector) Attached() bool {
	return d.attached
}

// Target returns the surface the detector listens on.
func (d *Detector) Target() *Surface {
	return d.target
}

// Active returns the in-progress gesture, if any.
func (d *Detector) Active() (Gesture, bool) {
	return d.active, d.hasState
}

// HandleTouch processes one raw notification. The kind is irrelevant: the
// contact list alone decides whether a gesture ends, starts or continues.
func (d *Detector) HandleTouch(in TouchInput) {
	current, hasCurrent := DeriveTouchState(in.Touches)
	previous, hasPrevious := d.active, d.hasState

	continues := hasPrevious && hasCurrent && current.TouchCount == previous.TouchCount
	ended := hasPrevious && !continues
	started := hasCurrent && !continues

	if ended {
		d.hasState = false
		d.active = Gesture{}
		d.bus.Emit(EndEvent{Gesture: previous})
	}

	if started {
		g := Gesture{
			TouchState:    current,
			StartTime:     d.clock(),
			StartPosition: current.Position,
			StartSpread:   current.Spread,
		}
		d.active = g
		d.hasState = true
		d.bus.Emit(StartEvent{Gesture: g})
	}

	if continues {
		ev := MoveEvent{
			TouchCount:     current.TouchCount,
			Position:       current.Position,
			Spread:         current.Spread,
			HasSpread:      current.HasSpread,
			PositionChange: current.Position.Sub(previous.Position),
			StartSpread:    previous.StartSpread,
		}
		if current.HasSpread && previous.HasSpread {
			ev.SpreadChange = current.Spread - previous.Spread
		}
		d.active.TouchState = current
		d.bus.Emit(ev)
	}
}
