package gesture

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tanema/gween/ease"
)

// Handler defaults.
const (
	DefaultRotationFactor = 5.0
	DefaultSensitivity    = 0.005
	DefaultMinScale       = 0.005
	DefaultMaxScale       = 0.08
)

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	// Enabled controls whether the handler listens for move events.
	Enabled bool
	// RotationFactor multiplies one-finger deltas.
	RotationFactor float64
	// Sensitivity converts surface pixels into radians.
	Sensitivity float64
	// MinScale and MaxScale bound every scale axis.
	MinScale float64
	MaxScale float64
	// VerticalRotation also maps vertical drags onto RotationX.
	VerticalRotation bool
	// Strategy selects how two-finger moves change the scale.
	Strategy ScaleMode
	// Logger receives debug output. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// DefaultHandlerConfig returns the default handler configuration.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		Enabled:        true,
		RotationFactor: DefaultRotationFactor,
		Sensitivity:    DefaultSensitivity,
		MinScale:       DefaultMinScale,
		MaxScale:       DefaultMaxScale,
		Strategy:       ScaleRatio,
	}
}

// Validate reports configuration values the handler cannot honour.
func (c HandlerConfig) Validate() error {
	if c.MinScale > c.MaxScale {
		return fmt.Errorf("gesture: minScale %v exceeds maxScale %v", c.MinScale, c.MaxScale)
	}
	if c.MinScale < 0 {
		return fmt.Errorf("gesture: minScale %v is negative", c.MinScale)
	}
	if c.Strategy != ScaleRatio && c.Strategy != ScaleStep {
		return fmt.Errorf("gesture: unknown scale strategy %v", c.Strategy)
	}
	return nil
}

// subscription is the handler's listening state on the bus.
type subscription uint8

const (
	unsubscribed subscription = iota
	subscribed
)

// Handler applies one-finger moves as rotation and two-finger moves as
// scale to a target transform, while the injected Visibility reports the
// target as visible.
type Handler struct {
	bus        *Bus
	target     *Transform
	visibility Visibility
	cfg        HandlerConfig
	strategy   ScaleStrategy
	log        logrus.FieldLogger

	initial Transform
	state   subscription
	rotate  CallbackHandle
	scale   CallbackHandle
	reset   *TweenGroup

	dropped uint64
}

// NewHandler creates a handler for target. A nil visibility never gates.
// The target's current values become its initial transform. An invalid cfg
// is rejected before anything subscribes.
func NewHandler(bus *Bus, target *Transform, visibility Visibility, cfg HandlerConfig) (*Handler, error) {
	if visibility == nil {
		visibility = AlwaysVisible
	}
	h := &Handler{
		bus:        bus,
		target:     target,
		visibility: visibility,
		initial:    target.Snapshot(),
	}
	if err := h.Configure(cfg); err != nil {
		return nil, err
	}
	return h, nil
}

// Configure replaces the configuration and brings the subscription state in
// line with cfg.Enabled. Changing the strategy discards accumulated scale
// state. An invalid cfg is rejected and the current configuration is kept.
func (h *Handler) Configure(cfg HandlerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if h.strategy == nil || cfg.Strategy != h.cfg.Strategy {
		h.strategy = newScaleStrategy(cfg.Strategy, h.initial.Scale)
	}
	h.cfg = cfg
	h.log = cfg.Logger
	h.sync()
	return nil
}

// Config returns the current configuration.
func (h *Handler) Config() HandlerConfig {
	return h.cfg
}

// SetEnabled toggles the move subscriptions without detaching the handler.
func (h *Handler) SetEnabled(enabled bool) {
	h.cfg.Enabled = enabled
	h.sync()
}

// SetStrategy installs a custom scale strategy. Nil restores the built-in
// strategy named by the configuration.
func (h *Handler) SetStrategy(s ScaleStrategy) {
	if s == nil {
		s = newScaleStrategy(h.cfg.Strategy, h.initial.Scale)
	}
	h.strategy = s
}

// Subscribed reports whether the handler currently listens for moves.
func (h *Handler) Subscribed() bool {
	return h.state == subscribed
}

// Dropped returns how many move events were ignored because the target was
// not visible.
func (h *Handler) Dropped() uint64 {
	return h.dropped
}

// sync applies the subscribed/unsubscribed transition implied by the config.
func (h *Handler) sync() {
	want := unsubscribed
	if h.cfg.Enabled {
		want = subscribed
	}
	if want == h.state {
		return
	}
	if want == subscribed {
		h.rotate = h.bus.OnMove(CohortOne, h.HandleRotation)
		h.scale = h.bus.OnMove(CohortTwo, h.HandleScale)
	} else {
		h.unsubscribe()
	}
	h.state = want
	h.log.WithField("subscribed", want == subscribed).Debug("gesture: handler subscription changed")
}

func (h *Handler) unsubscribe() {
	h.rotate.Remove()
	h.scale.Remove()
	h.rotate = CallbackHandle{}
	h.scale = CallbackHandle{}
}

// Detach removes both move subscriptions regardless of Enabled.
func (h *Handler) Detach() {
	h.unsubscribe()
	h.state = unsubscribed
}

func (h *Handler) gate(ev MoveEvent) bool {
	if h.visibility.Visible() {
		return true
	}
	h.dropped++
	h.log.WithField("event", ev.Name()).Debug("gesture: target not visible, move ignored")
	return false
}

// HandleRotation applies a one-finger move.
func (h *Handler) HandleRotation(ev MoveEvent) {
	if !h.gate(ev) {
		return
	}
	k := h.cfg.RotationFactor * h.cfg.Sensitivity
	dy := ev.PositionChange.X * k
	var dx float64
	if h.cfg.VerticalRotation {
		dx = ev.PositionChange.Y * k
	}
	if dx == 0 && dy == 0 {
		return
	}
	h.target.Rotate(dx, dy)
}

// HandleScale applies a two-finger move through the scale strategy.
func (h *Handler) HandleScale(ev MoveEvent) {
	if !h.gate(ev) {
		return
	}
	bounds := Range{Min: h.cfg.MinScale, Max: h.cfg.MaxScale}
	next, changed := h.strategy.Apply(h.target.Scale, ev, bounds)
	if changed {
		h.target.SetScale(next)
	}
}

// Initial returns the transform captured when the handler was created.
func (h *Handler) Initial() Transform {
	return h.initial
}

// Reset restores the initial transform immediately.
func (h *Handler) Reset() {
	h.reset = nil
	h.target.SetRotation(h.initial.RotationX, h.initial.RotationY)
	h.target.SetScale(h.initial.Scale)
	h.strategy.Reset()
}

// AnimateReset tweens the target back to its initial transform over
// duration seconds. A nil easing function means linear. Drive the animation
// with Update.
func (h *Handler) AnimateReset(duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	h.reset = TweenTransform(h.target, h.initial, duration, fn)
	h.strategy.Reset()
}

// Animating reports whether a reset animation is running.
func (h *Handler) Animating() bool {
	return h.reset != nil
}

// Update advances a running reset animation by dt seconds.
func (h *Handler) Update(dt float32) {
	if h.reset == nil {
		return
	}
	h.reset.Update(dt)
	if h.reset.Done {
		h.reset = nil
	}
}
