package gesture

import (
	"github.com/sirupsen/logrus"
)

// Scene is the composition root: it owns the event bus, the named touch
// surfaces, the tracking signal and the logger shared by detectors and
// handlers created through it.
type Scene struct {
	bus      *Bus
	surfaces map[string]*Surface
	order    []*Surface
	tracking Tracking
	logger   *logrus.Logger
	debug    bool
	tap      debugTap

	detectors []*Detector
	handlers  []*Handler
}

// NewScene creates a scene with an empty bus and no surfaces. The scene logs
// through a dedicated logrus logger at Info level.
func NewScene() *Scene {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	return &Scene{
		bus:      NewBus(),
		surfaces: make(map[string]*Surface),
		logger:   logger,
	}
}

// Bus returns the scene's event bus.
func (s *Scene) Bus() *Bus {
	return s.bus
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *logrus.Logger {
	return s.logger
}

// SetLogger replaces the scene's logger. Components created afterwards use it.
func (s *Scene) SetLogger(l *logrus.Logger) {
	s.logger = l
	if s.debug {
		l.SetLevel(logrus.DebugLevel)
	}
}

// SetDebugMode enables or disables debug logging of gesture transitions,
// subscription changes and gated moves.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled {
		s.logger.SetLevel(logrus.DebugLevel)
		s.tap.start(s.bus, s.logger)
	} else {
		s.logger.SetLevel(logrus.InfoLevel)
		s.tap.stop()
	}
}

// SetEntityStore sets the optional ECS bridge on the bus.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.bus.SetEntityStore(store)
}

// NewSurface creates a named surface and registers it for selector lookup.
// An existing surface with the same name is returned unchanged.
func (s *Scene) NewSurface(name string) *Surface {
	key := normalizeSelector(name)
	if sf, ok := s.surfaces[key]; ok {
		return sf
	}
	sf := NewSurface(key)
	s.surfaces[key] = sf
	s.order = append(s.order, sf)
	return sf
}

// Surface resolves a selector ("canvas" or "#canvas"). Returns nil if no
// surface matches.
func (s *Scene) Surface(selector string) *Surface {
	return s.surfaces[normalizeSelector(selector)]
}

// Surfaces returns the surfaces in creation order. The returned slice MUST
// NOT be mutated.
func (s *Scene) Surfaces() []*Surface {
	return s.order
}

// NewDetector attaches a detector owned by owner that emits on the scene bus.
func (s *Scene) NewDetector(owner *Surface, cfg DetectorConfig) *Detector {
	if cfg.Logger == nil {
		cfg.Logger = s.logger.WithField("surface", owner.Name())
	}
	d := NewDetector(s.bus, owner, s, cfg)
	s.detectors = append(s.detectors, d)
	return d
}

// NewHandler attaches a handler for target gated by the scene's tracking
// signal. It fails when cfg does not validate.
func (s *Scene) NewHandler(target *Transform, cfg HandlerConfig) (*Handler, error) {
	if cfg.Logger == nil {
		cfg.Logger = s.logger.WithField("component", "handler")
	}
	h, err := NewHandler(s.bus, target, &s.tracking, cfg)
	if err != nil {
		return nil, err
	}
	s.handlers = append(s.handlers, h)
	return h, nil
}

// Tracking returns the scene's visibility signal.
func (s *Scene) Tracking() *Tracking {
	return &s.tracking
}

// TargetAcquired signals that the tracked target became visible.
func (s *Scene) TargetAcquired() {
	s.tracking.TargetAcquired()
	s.logger.Debug("gesture: target acquired")
}

// TargetLost signals that the tracked target is no longer visible.
func (s *Scene) TargetLost() {
	s.tracking.TargetLost()
	s.logger.Debug("gesture: target lost")
}

// Update advances handler animations by dt seconds. Call once per frame.
func (s *Scene) Update(dt float32) {
	for _, h := range s.handlers {
		h.Update(dt)
	}
}

// Close detaches every detector and handler created through the scene.
func (s *Scene) Close() {
	for _, d := range s.detectors {
		d.Detach()
	}
	for _, h := range s.handlers {
		h.Detach()
	}
	s.tap.stop()
	s.detectors = nil
	s.handlers = nil
}
