package gridview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// resetDuration is how long the animated view reset takes, in seconds.
const resetDuration = 0.25

// resetAnim holds active reset tweens for scale and offset.
type resetAnim struct {
	scale   *gween.Tween
	offsetX *gween.Tween
	offsetY *gween.Tween
	done    bool
}

// Board is one engine instance: it owns the view transform and gesture
// session, adapts Ebitengine mouse/touch/wheel input into the contact
// stream, and redraws its cached frame only when the transform or the entity
// snapshot changed.
//
// Board implements ebiten.Game and can be passed to ebiten.RunGame directly
// or composed into a larger game. All methods must be called from the game
// loop goroutine; nothing here is safe for concurrent use.
type Board struct {
	width, height int

	entities   []Entity
	onActivate func(entityID string)

	tf       ViewTransform
	gesture  *GestureController
	renderer *Renderer
	controls *controlBar
	sink     ExportSink

	frame *ebiten.Image
	dirty bool

	exportQueued bool
	reset        *resetAnim

	contactsBuf []Contact
	touchIDs    []ebiten.TouchID
	injectQueue []injectedFrame
}

// NewBoard creates a board of the given surface size. onActivate receives
// the id of the entity under a resolved tap; it may be nil. The board never
// mutates entity data — the caller reacts to activations and feeds back an
// updated snapshot via SetEntities.
func NewBoard(width, height int, onActivate func(entityID string)) *Board {
	b := &Board{
		width:      width,
		height:     height,
		onActivate: onActivate,
		tf:         DefaultTransform(),
		renderer:   NewRenderer(),
		controls:   newControlBar(),
		sink:       DirSink{Dir: "exports"},
		dirty:      true,
	}
	b.gesture = NewGestureController(&b.tf, b.handleTap)
	return b
}

// SetEntities replaces the entity snapshot and schedules a redraw. The board
// keeps the slice reference; the caller must treat the passed snapshot as
// frozen until the next SetEntities.
func (b *Board) SetEntities(entities []Entity) {
	b.entities = entities
	b.dirty = true
}

// SetExportSink replaces the destination for export images.
func (b *Board) SetExportSink(sink ExportSink) {
	if sink != nil {
		b.sink = sink
	}
}

// Update processes one tick of input and animation.
func (b *Board) Update() error {
	b.advanceReset()
	if !b.processInjected() {
		b.processDevice()
	}
	return nil
}

// Draw blits the cached frame, re-rendering it first if anything changed,
// then paints the control strip and flushes a pending export.
func (b *Board) Draw(screen *ebiten.Image) {
	if b.width > 0 && b.height > 0 {
		if b.frame == nil {
			b.frame = ebiten.NewImage(b.width, b.height)
			b.dirty = true
		}
		if b.dirty {
			b.renderer.Render(b.frame, b.entities, b.tf, ModeInteractive)
			b.dirty = false
		}
		screen.DrawImage(b.frame, nil)
	}
	b.controls.draw(screen, b.renderer.face)

	if b.exportQueued {
		b.flushExport()
	}
}

// Layout reports the board's fixed surface size to Ebitengine.
func (b *Board) Layout(outsideWidth, outsideHeight int) (int, int) {
	return b.width, b.height
}

// handleTap resolves a classified tap: control buttons first, then entity
// hit testing. onActivate fires at most once per tap.
func (b *Board) handleTap(x, y float64) {
	if action, ok := b.controls.hit(x, y); ok {
		b.applyControl(action)
		return
	}
	if id, ok := HitTest(x, y, b.tf, b.entities); ok && b.onActivate != nil {
		b.onActivate(id)
	}
}

// applyControl executes a control-button action.
func (b *Board) applyControl(action controlAction) {
	cx := float64(b.width) / 2
	cy := float64(b.height) / 2

	switch action {
	case actionZoomIn:
		b.tf.ZoomAt(cx, cy, ZoomStep)
		b.dirty = true
	case actionZoomOut:
		b.tf.ZoomAt(cx, cy, -ZoomStep)
		b.dirty = true
	case actionReset:
		def := DefaultTransform()
		b.reset = &resetAnim{
			scale:   gween.New(float32(b.tf.Scale), float32(def.Scale), resetDuration, ease.OutQuad),
			offsetX: gween.New(float32(b.tf.OffsetX), float32(def.OffsetX), resetDuration, ease.OutQuad),
			offsetY: gween.New(float32(b.tf.OffsetY), float32(def.OffsetY), resetDuration, ease.OutQuad),
		}
	case actionExport:
		b.QueueExport()
	}
}

// advanceReset steps the reset animation, if one is running.
func (b *Board) advanceReset() {
	if b.reset == nil {
		return
	}
	dt := float32(1.0 / float64(ebiten.TPS()))

	s, doneS := b.reset.scale.Update(dt)
	x, doneX := b.reset.offsetX.Update(dt)
	y, doneY := b.reset.offsetY.Update(dt)
	b.tf.Scale = clampScale(float64(s))
	b.tf.OffsetX = float64(x)
	b.tf.OffsetY = float64(y)
	b.dirty = true

	if doneS && doneX && doneY {
		b.tf.Reset()
		b.reset = nil
	}
}

// processDevice reads real mouse and touch state and feeds the gesture
// controller. Touches take precedence over the mouse; pointer 0 is the
// mouse, touch ids map to contact ids 1+.
func (b *Board) processDevice() {
	contacts := b.contactsBuf[:0]

	b.touchIDs = ebiten.AppendTouchIDs(b.touchIDs[:0])
	if len(b.touchIDs) > 0 {
		for _, tid := range b.touchIDs {
			tx, ty := ebiten.TouchPosition(tid)
			contacts = append(contacts, Contact{ID: int(tid) + 1, X: float64(tx), Y: float64(ty)})
		}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		contacts = append(contacts, Contact{ID: 0, X: float64(mx), Y: float64(my)})
	}
	b.contactsBuf = contacts

	changed := b.gesture.ContactsChanged(contacts)

	if _, wy := ebiten.Wheel(); wy != 0 {
		mx, my := ebiten.CursorPosition()
		if b.gesture.Wheel(wy, float64(mx), float64(my)) {
			changed = true
		}
	}

	if changed {
		b.dirty = true
	}
}
