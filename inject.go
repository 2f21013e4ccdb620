package gridview

// injectedFrame is one tick of synthetic input: a contact snapshot and an
// optional wheel delta, consumed instead of device input on the next Update.
type injectedFrame struct {
	contacts []Contact
	wheelY   float64
	wheelAtX float64
	wheelAtY float64
}

// InjectContacts queues a synthetic contact snapshot in screen coordinates.
// The snapshot is consumed by the next Update call, taking precedence over
// real mouse and touch input for that tick.
func (b *Board) InjectContacts(contacts ...Contact) {
	b.injectQueue = append(b.injectQueue, injectedFrame{contacts: contacts})
}

// InjectPress queues a single-contact press at the given screen coordinates.
func (b *Board) InjectPress(x, y float64) {
	b.InjectContacts(Contact{ID: 0, X: x, Y: y})
}

// InjectMove queues a move of the held contact to the given coordinates.
func (b *Board) InjectMove(x, y float64) {
	b.InjectContacts(Contact{ID: 0, X: x, Y: y})
}

// InjectRelease queues the release of all contacts. The release point is the
// last injected position.
func (b *Board) InjectRelease() {
	b.injectQueue = append(b.injectQueue, injectedFrame{})
}

// InjectTap queues a press followed by a release at the same screen
// coordinates. Consumes two ticks.
func (b *Board) InjectTap(x, y float64) {
	b.InjectPress(x, y)
	b.InjectRelease()
}

// InjectDrag queues a full drag: press at (fromX, fromY), interpolated moves,
// release at (toX, toY). The sequence consumes `frames` ticks; minimum is 3
// (press, move, release).
func (b *Board) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	b.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		b.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	b.InjectRelease()
}

// InjectWheel queues a wheel delta at the given cursor position.
func (b *Board) InjectWheel(deltaY, cursorX, cursorY float64) {
	b.injectQueue = append(b.injectQueue, injectedFrame{wheelY: deltaY, wheelAtX: cursorX, wheelAtY: cursorY})
}

// processInjected consumes one queued frame, if any, and reports whether
// device input should be skipped this tick.
func (b *Board) processInjected() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	f := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	changed := b.gesture.ContactsChanged(f.contacts)
	if f.wheelY != 0 && b.gesture.Wheel(f.wheelY, f.wheelAtX, f.wheelAtY) {
		changed = true
	}
	if changed {
		b.dirty = true
	}
	return true
}
