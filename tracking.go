package gesture

// Visibility reports whether the tracked target is currently visible.
// Handlers poll it before every transform change.
type Visibility interface {
	Visible() bool
}

// VisibilityFunc adapts a plain function to Visibility.
type VisibilityFunc func() bool

// Visible calls f.
func (f VisibilityFunc) Visible() bool { return f() }

// AlwaysVisible is a Visibility that never gates.
var AlwaysVisible Visibility = VisibilityFunc(func() bool { return true })

// Tracking is a Visibility driven by the host's "target acquired" and
// "target lost" signals. The zero value starts as not visible.
type Tracking struct {
	visible  bool
	acquired uint64
	onChange []func(visible bool)
}

// TargetAcquired marks the target visible.
func (t *Tracking) TargetAcquired() {
	t.set(true)
}

// TargetLost marks the target not visible.
func (t *Tracking) TargetLost() {
	t.set(false)
}

// Visible reports the last signalled state.
func (t *Tracking) Visible() bool {
	return t.visible
}

// Acquisitions returns how many times the target went from lost to acquired.
func (t *Tracking) Acquisitions() uint64 {
	return t.acquired
}

// OnChange registers fn to be called whenever visibility flips.
func (t *Tracking) OnChange(fn func(visible bool)) {
	t.onChange = append(t.onChange, fn)
}

func (t *Tracking) set(v bool) {
	if t.visible == v {
		return
	}
	t.visible = v
	if v {
		t.acquired++
	}
	for _, fn := range t.onChange {
		fn(v)
	}
}
