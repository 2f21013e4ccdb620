package gridview

import "testing"

// activations collects onActivate calls.
type activations struct {
	ids []string
}

func (a *activations) record(id string) {
	a.ids = append(a.ids, id)
}

func newTestBoard() (*Board, *activations) {
	acts := &activations{}
	b := NewBoard(800, 600, acts.record)
	b.SetEntities([]Entity{
		{ID: "t1", LogicalX: 0, LogicalY: 0, Category: CategoryA, Status: StatusPending},
		{ID: "t2", LogicalX: 1, LogicalY: 1, Category: CategoryB, Status: StatusCompleted},
	})
	return b, acts
}

// drain runs Update until the injection queue is empty, plus one settling tick.
func drain(t *testing.T, b *Board) {
	t.Helper()
	for i := 0; i < 64 && len(b.injectQueue) > 0; i++ {
		if err := b.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if len(b.injectQueue) > 0 {
		t.Fatal("injection queue did not drain")
	}
	if err := b.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestBoardTapActivatesEntity(t *testing.T) {
	b, acts := newTestBoard()

	b.InjectTap(70, 60)
	drain(t, b)

	if len(acts.ids) != 1 || acts.ids[0] != "t1" {
		t.Fatalf("activations = %v, want [t1]", acts.ids)
	}
}

func TestBoardTapOnEmptySpaceNoActivation(t *testing.T) {
	b, acts := newTestBoard()

	b.InjectTap(400, 400)
	drain(t, b)

	if len(acts.ids) != 0 {
		t.Errorf("activations = %v, want none", acts.ids)
	}
}

func TestBoardDragSuppressesActivation(t *testing.T) {
	b, acts := newTestBoard()

	b.InjectDrag(70, 60, 70, 60+DragThreshold+1, 4)
	drain(t, b)

	if len(acts.ids) != 0 {
		t.Errorf("activations = %v, want none after drag", acts.ids)
	}
}

func TestBoardDragPansView(t *testing.T) {
	b, _ := newTestBoard()

	b.InjectDrag(400, 300, 460, 280, 5)
	drain(t, b)

	if !approxEqual(b.tf.OffsetX, DefaultOffsetX+60, epsilon) ||
		!approxEqual(b.tf.OffsetY, DefaultOffsetY-20, epsilon) {
		t.Errorf("offset = (%v,%v), want (%v,%v)",
			b.tf.OffsetX, b.tf.OffsetY, DefaultOffsetX+60, DefaultOffsetY-20)
	}
}

func TestBoardActivatesAtMostOncePerTap(t *testing.T) {
	b, acts := newTestBoard()

	b.InjectTap(70, 60)
	drain(t, b)
	for i := 0; i < 5; i++ {
		if err := b.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	if len(acts.ids) != 1 {
		t.Errorf("activations = %v, want exactly one", acts.ids)
	}
}

func TestBoardPanThenTapTracksTransform(t *testing.T) {
	// After panning +100 in x, the cell that was at screen x 50 sits at 150.
	b, acts := newTestBoard()

	b.InjectDrag(400, 300, 500, 300, 5)
	b.InjectTap(170, 60)
	drain(t, b)

	if len(acts.ids) != 1 || acts.ids[0] != "t1" {
		t.Fatalf("activations = %v, want [t1] after pan", acts.ids)
	}
}

func TestBoardInjectedWheelZooms(t *testing.T) {
	b, _ := newTestBoard()
	b.dirty = false

	b.InjectWheel(1, 400, 300)
	drain(t, b)

	if !approxEqual(b.tf.Scale, 1+WheelSensitivity, epsilon) {
		t.Errorf("Scale = %v, want %v", b.tf.Scale, 1+WheelSensitivity)
	}
	if !b.dirty {
		t.Error("wheel zoom did not mark the frame dirty")
	}
}

func TestBoardInjectedPinchZooms(t *testing.T) {
	b, _ := newTestBoard()

	b.InjectContacts(Contact{ID: 1, X: 100, Y: 100}, Contact{ID: 2, X: 200, Y: 100})
	b.InjectContacts(Contact{ID: 1, X: 75, Y: 100}, Contact{ID: 2, X: 225, Y: 100})
	b.InjectRelease()
	drain(t, b)

	if !approxEqual(b.tf.Scale, 1.25, epsilon) {
		t.Errorf("Scale = %v, want 1.25", b.tf.Scale)
	}
}

func TestBoardControlZoomButtons(t *testing.T) {
	b, acts := newTestBoard()

	// Center of the "+" button.
	btn := b.controls.buttons[0].rect
	b.InjectTap(btn.X+btn.Width/2, btn.Y+btn.Height/2)
	drain(t, b)

	if !approxEqual(b.tf.Scale, 1+ZoomStep, epsilon) {
		t.Errorf("Scale after zoom-in = %v, want %v", b.tf.Scale, 1+ZoomStep)
	}
	if len(acts.ids) != 0 {
		t.Errorf("control tap reached entities: %v", acts.ids)
	}

	btn = b.controls.buttons[1].rect
	b.InjectTap(btn.X+btn.Width/2, btn.Y+btn.Height/2)
	drain(t, b)

	if !approxEqual(b.tf.Scale, 1.0, epsilon) {
		t.Errorf("Scale after zoom-out = %v, want 1.0", b.tf.Scale)
	}
}

func TestBoardResetAnimatesToDefault(t *testing.T) {
	b, _ := newTestBoard()

	b.InjectWheel(5, 200, 200)
	b.InjectDrag(400, 300, 250, 420, 4)
	drain(t, b)
	if b.tf == DefaultTransform() {
		t.Fatal("setup did not move the transform")
	}

	btn := b.controls.buttons[2].rect
	b.InjectTap(btn.X+btn.Width/2, btn.Y+btn.Height/2)
	drain(t, b)

	// Run enough ticks for the reset tween to finish.
	for i := 0; i < 120 && b.reset != nil; i++ {
		if err := b.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	if b.reset != nil {
		t.Fatal("reset animation never completed")
	}
	if b.tf != DefaultTransform() {
		t.Errorf("transform after reset = %+v, want %+v", b.tf, DefaultTransform())
	}
}

func TestBoardExportButtonQueuesExport(t *testing.T) {
	b, _ := newTestBoard()

	btn := b.controls.buttons[3].rect
	b.InjectTap(btn.X+btn.Width/2, btn.Y+btn.Height/2)
	drain(t, b)

	if !b.exportQueued {
		t.Error("export button did not queue an export")
	}
}

func TestBoardSetEntitiesMarksDirty(t *testing.T) {
	b, _ := newTestBoard()
	b.dirty = false

	b.SetEntities([]Entity{{ID: "x"}})
	if !b.dirty {
		t.Error("SetEntities did not mark the frame dirty")
	}
}

func TestBoardNilActivateCallback(t *testing.T) {
	b := NewBoard(800, 600, nil)
	b.SetEntities([]Entity{{ID: "t1"}})

	b.InjectTap(70, 60)
	drain(t, b) // must not panic
}

func TestBoardZeroSizeGesturesStillWork(t *testing.T) {
	b := NewBoard(0, 0, nil)

	b.InjectDrag(10, 10, 90, 90, 4)
	drain(t, b)

	if !approxEqual(b.tf.OffsetX, DefaultOffsetX+80, epsilon) {
		t.Errorf("offset = %v, want %v", b.tf.OffsetX, DefaultOffsetX+80)
	}
}
