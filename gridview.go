package gridview

// Layout constants shared with the host application. The placement formula in
// CellRect depends on these; callers that auto-place new entities must use
// the same values, so they are exported as part of the contract.
const (
	CellWidth  = 45.0
	CellHeight = 25.0
	CellGap    = 15.0
)

// View and gesture policy constants. These are documented defaults; changing
// them changes interaction behavior for every caller.
const (
	MinScale = 0.2
	MaxScale = 5.0

	// DragThreshold is the down→up distance in pixels below which a
	// press/release pair counts as a tap. Real pointers jitter a few pixels
	// even on an intended tap; without this, taps would classify as drags.
	DragThreshold = 4.0

	PinchSensitivity = 0.005
	WheelSensitivity = 0.1
	ZoomStep         = 0.25

	DefaultOffsetX = 50.0
	DefaultOffsetY = 50.0
)

// Status is the work state of an entity, driving its fill color and glyph.
type Status uint8

const (
	StatusPending   Status = iota // not yet installed; neutral ring glyph
	StatusCompleted               // installed; checkmark glyph
	StatusFlagged                 // needs attention; exclamation glyph
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	case StatusFlagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Category is the installation type of an entity, shown as the cell label.
type Category uint8

const (
	CategoryA Category = iota
	CategoryB
	CategoryC
)

// String returns the single-letter label drawn on the cell.
func (c Category) String() string {
	switch c {
	case CategoryA:
		return "A"
	case CategoryB:
		return "B"
	case CategoryC:
		return "C"
	default:
		return "?"
	}
}

// Entity is one positioned cell on the grid. Entities are owned by the
// caller; the engine reads them as an immutable snapshot per render and
// never mutates them.
type Entity struct {
	ID       string
	LogicalX int
	LogicalY int
	Category Category
	Status   Status
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
