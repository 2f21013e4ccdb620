package gridview

import "math"

// Contact is one active pointer on the surface: the mouse while a button is
// held, or a touch. Mouse, single-touch, and multi-touch all collapse into
// this shape so the gesture state machine is written once.
type Contact struct {
	ID   int
	X, Y float64
}

type gesturePhase uint8

const (
	phaseIdle gesturePhase = iota
	phasePanning
	phasePinching
)

// GestureController turns a stream of contact snapshots into view transform
// updates (pan and pinch zoom) and classifies releases as taps or drag ends.
//
// Malformed sequences — a release with no matching press, contact counts
// jumping arbitrarily — resolve silently back to the idle state. The
// controller never panics on any input.
type GestureController struct {
	tf    *ViewTransform
	onTap func(x, y float64)

	phase gesturePhase

	// Pan state. anchor is (press point − offset at press); dragging keeps
	// offset = point − anchor for a direct 1:1 drag, no inertia.
	anchorX, anchorY float64
	downX, downY     float64
	lastX, lastY     float64

	// Pinch state.
	lastDist float64

	// tapSuppressed blocks tap emission after a pinch collapses to a single
	// remaining contact. A pinch release never counts as a tap, even when
	// the last contact lifts near where it went down.
	tapSuppressed bool
}

// NewGestureController creates a controller mutating tf and reporting taps
// to onTap (which may be nil).
func NewGestureController(tf *ViewTransform, onTap func(x, y float64)) *GestureController {
	return &GestureController{tf: tf, onTap: onTap}
}

// ContactsChanged advances the state machine with the current set of active
// contacts and reports whether the view transform changed.
//
// Transitions:
//
//	Idle     --1 contact-->  Panning   (records anchor and down point)
//	Panning  --move------->  Panning   (offset follows the contact)
//	Panning  --0 contacts->  Idle      (tap if down→up distance < DragThreshold)
//	any      --2+ contacts-> Pinching  (cancels pan, no tap)
//	Pinching --move------->  Pinching  (focal zoom at the contact midpoint)
//	Pinching --1 contact-->  Panning   (tap suppressed until all lift)
//	Pinching --0 contacts->  Idle      (no tap)
func (g *GestureController) ContactsChanged(contacts []Contact) bool {
	switch len(contacts) {
	case 0:
		return g.allReleased()
	case 1:
		return g.oneContact(contacts[0])
	default:
		return g.pinchContacts(contacts[0], contacts[1])
	}
}

// Wheel applies a discrete scroll delta as a focal zoom at the cursor
// position. Independent of the contact state machine: wheel input never
// interacts with drag or tap classification. Reports whether the transform
// changed.
func (g *GestureController) Wheel(deltaY, cursorX, cursorY float64) bool {
	if deltaY == 0 {
		return false
	}
	before := *g.tf
	g.tf.ZoomAt(cursorX, cursorY, deltaY*WheelSensitivity)
	if *g.tf == before {
		return false
	}
	// A zoom mid-pan moves the offset; re-anchor so the next pan move keeps
	// the zoom's focal compensation instead of snapping the offset back to
	// its press-time value.
	if g.phase == phasePanning {
		g.anchorX = g.lastX - g.tf.OffsetX
		g.anchorY = g.lastY - g.tf.OffsetY
	}
	return true
}

func (g *GestureController) allReleased() bool {
	if g.phase == phasePanning && !g.tapSuppressed {
		dx := g.lastX - g.downX
		dy := g.lastY - g.downY
		if math.Hypot(dx, dy) < DragThreshold && g.onTap != nil {
			g.onTap(g.lastX, g.lastY)
		}
	}
	g.phase = phaseIdle
	g.tapSuppressed = false
	return false
}

func (g *GestureController) oneContact(c Contact) bool {
	switch g.phase {
	case phaseIdle:
		g.phase = phasePanning
		g.anchorX = c.X - g.tf.OffsetX
		g.anchorY = c.Y - g.tf.OffsetY
		g.downX, g.downY = c.X, c.Y
		g.lastX, g.lastY = c.X, c.Y
		return false
	case phasePinching:
		// Pinch collapsed to one finger: resume panning from here, but the
		// eventual release must not activate anything.
		g.phase = phasePanning
		g.tapSuppressed = true
		g.anchorX = c.X - g.tf.OffsetX
		g.anchorY = c.Y - g.tf.OffsetY
		g.downX, g.downY = c.X, c.Y
		g.lastX, g.lastY = c.X, c.Y
		return false
	default: // phasePanning
		changed := c.X != g.lastX || c.Y != g.lastY
		g.tf.OffsetX = c.X - g.anchorX
		g.tf.OffsetY = c.Y - g.anchorY
		g.lastX, g.lastY = c.X, c.Y
		return changed
	}
}

func (g *GestureController) pinchContacts(c0, c1 Contact) bool {
	dist := math.Hypot(c1.X-c0.X, c1.Y-c0.Y)
	if g.phase != phasePinching {
		// Entering a pinch cancels any in-progress pan without a tap.
		g.phase = phasePinching
		g.lastDist = dist
		return false
	}
	delta := (dist - g.lastDist) * PinchSensitivity
	g.lastDist = dist
	if delta == 0 {
		return false
	}
	midX := (c0.X + c1.X) / 2
	midY := (c0.Y + c1.Y) / 2
	before := *g.tf
	g.tf.ZoomAt(midX, midY, delta)
	return *g.tf != before
}
