package server

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phanxgames/gesture"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween/ease"
)

// DefaultInitialScale matches the handler's default scale bounds.
const DefaultInitialScale = 0.02

// SessionConfig configures one gesture pipeline.
type SessionConfig struct {
	Gesture      gesture.Config
	InitialScale float64
	Logger       *logrus.Logger
	Debug        bool
}

// Session is one gesture pipeline: a scene with a single surface, a detector
// on it and a handler driving one transform. Sessions are not safe for
// concurrent use.
type Session struct {
	ID string

	scene   *gesture.Scene
	surface *gesture.Surface
	target  *gesture.Transform
	handler *gesture.Handler
	log     *logrus.Entry
	version uint64
}

// NewSession builds a session and calls emit for every gesture event, after
// the handler applied it. It fails when the handler configuration is invalid.
func NewSession(cfg SessionConfig, emit func(gesture.Event)) (*Session, error) {
	if cfg.InitialScale <= 0 {
		cfg.InitialScale = DefaultInitialScale
	}
	id := uuid.New().String()

	scene := gesture.NewScene()
	if cfg.Logger != nil {
		scene.SetLogger(cfg.Logger)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	log := scene.Logger().WithField("session", id)

	surface := scene.NewSurface("canvas")
	dcfg := cfg.Gesture.Detector
	dcfg.Logger = log.WithField("surface", surface.Name())
	scene.NewDetector(surface, dcfg)

	target := gesture.NewTransform(cfg.InitialScale)
	hcfg := cfg.Gesture.Handler
	hcfg.Logger = log.WithField("component", "handler")
	handler, err := scene.NewHandler(target, hcfg)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	if emit != nil {
		scene.Bus().OnAll(emit)
	}

	log.WithFields(logrus.Fields{
		"strategy": hcfg.Strategy.String(),
		"enabled":  hcfg.Enabled,
	}).Debug("session: created")

	return &Session{
		ID:      id,
		scene:   scene,
		surface: surface,
		target:  target,
		handler: handler,
		log:     log,
	}, nil
}

// Scene returns the session's scene.
func (s *Session) Scene() *gesture.Scene {
	return s.scene
}

// Surface returns the surface touch input is dispatched to.
func (s *Session) Surface() *gesture.Surface {
	return s.surface
}

// Transform returns the current transform values.
func (s *Session) Transform() gesture.Transform {
	return s.target.Snapshot()
}

// TakeChanged reports whether the transform changed since the last call.
func (s *Session) TakeChanged() bool {
	v := s.target.Version()
	if v == s.version {
		return false
	}
	s.version = v
	return true
}

// Dispatch feeds a raw touch notification to the surface.
func (s *Session) Dispatch(in gesture.TouchInput) {
	s.surface.Dispatch(in)
}

// RunTrace replays a trace against the session.
func (s *Session) RunTrace(t *gesture.Trace) {
	t.Run(s.scene, s.surface)
}

// Reset animates the transform back to its initial values over seconds.
// A non-positive duration resets immediately.
func (s *Session) Reset(seconds float32) {
	if seconds <= 0 {
		s.handler.Reset()
		return
	}
	s.handler.AnimateReset(seconds, ease.OutQuad)
}

// Update advances animations by dt seconds.
func (s *Session) Update(dt float32) {
	s.scene.Update(dt)
}

// Close detaches everything.
func (s *Session) Close() {
	s.scene.Close()
	s.log.Debug("session: closed")
}
