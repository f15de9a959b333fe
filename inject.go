package gesture

// snapshotContacts returns a copy of the synthetic contact list so listeners
// never observe later mutations.
func (s *Surface) snapshotContacts() []TouchSample {
	out := make([]TouchSample, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// InjectPress adds a synthetic contact and dispatches a touchstart carrying
// every active synthetic contact. Pressing an id that is already down moves
// it instead.
func (s *Surface) InjectPress(id int, x, y float64) {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.InjectMove(id, x, y)
			return
		}
	}
	s.contacts = append(s.contacts, TouchSample{ID: id, X: x, Y: y})
	s.Dispatch(TouchInput{Kind: TouchStart, Touches: s.snapshotContacts()})
}

// InjectMove moves a synthetic contact and dispatches a touchmove.
// Unknown ids are ignored.
func (s *Surface) InjectMove(id int, x, y float64) {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts[i].X = x
			s.contacts[i].Y = y
			s.Dispatch(TouchInput{Kind: TouchMove, Touches: s.snapshotContacts()})
			return
		}
	}
}

// InjectRelease lifts a synthetic contact and dispatches a touchend with the
// remaining contacts. Unknown ids are ignored.
func (s *Surface) InjectRelease(id int) {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			copy(s.contacts[i:], s.contacts[i+1:])
			s.contacts = s.contacts[:len(s.contacts)-1]
			s.Dispatch(TouchInput{Kind: TouchEnd, Touches: s.snapshotContacts()})
			return
		}
	}
}

// InjectReleaseAll lifts every synthetic contact, one touchend per contact,
// last pressed first.
func (s *Surface) InjectReleaseAll() {
	for len(s.contacts) > 0 {
		s.InjectRelease(s.contacts[len(s.contacts)-1].ID)
	}
}

// InjectDrag dispatches a one-finger drag: press at (fromX, fromY), steps
// linearly interpolated moves ending at (toX, toY), then release.
// Minimum steps is 1.
func (s *Surface) InjectDrag(id int, fromX, fromY, toX, toY float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	s.InjectPress(id, fromX, fromY)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.InjectMove(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(id)
}

// InjectPinch dispatches a two-finger pinch centred on (cx, cy): both
// contacts are pressed fromSpread apart on a horizontal line, the spread is
// interpolated to toSpread over steps moves (the second contact moves), and
// both are released. Contact ids are id and id+1.
func (s *Surface) InjectPinch(id int, cx, cy, fromSpread, toSpread float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	left := cx - fromSpread/2
	s.InjectPress(id, left, cy)
	s.InjectPress(id+1, left+fromSpread, cy)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		spread := fromSpread + (toSpread-fromSpread)*t
		s.InjectMove(id+1, left+spread, cy)
	}
	s.InjectRelease(id + 1)
	s.InjectRelease(id)
}

// Contacts returns a copy of the active synthetic contacts.
func (s *Surface) Contacts() []TouchSample {
	return s.snapshotContacts()
}
