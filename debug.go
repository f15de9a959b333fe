package gesture

import (
	"github.com/sirupsen/logrus"
)

// eventFields returns structured log fields describing e.
func eventFields(e Event) logrus.Fields {
	f := logrus.Fields{"event": e.Name()}
	switch ev := e.(type) {
	case StartEvent:
		f["touches"] = ev.TouchCount
		f["x"], f["y"] = ev.Position.X, ev.Position.Y
		if ev.HasSpread {
			f["spread"] = ev.Spread
		}
	case EndEvent:
		f["touches"] = ev.TouchCount
		f["x"], f["y"] = ev.Position.X, ev.Position.Y
	case MoveEvent:
		f["dx"], f["dy"] = ev.PositionChange.X, ev.PositionChange.Y
		if ev.HasSpread {
			f["spread"] = ev.Spread
			f["dspread"] = ev.SpreadChange
		}
	}
	return f
}

// debugTap logs every bus event while the scene is in debug mode.
type debugTap struct {
	handles []CallbackHandle
}

func (t *debugTap) start(bus *Bus, log logrus.FieldLogger) {
	if t.handles != nil {
		return
	}
	t.handles = bus.OnAll(func(e Event) {
		log.WithFields(eventFields(e)).Debug("gesture: event")
	})
}

func (t *debugTap) stop() {
	for _, h := range t.handles {
		h.Remove()
	}
	t.handles = nil
}
