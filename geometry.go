package gridview

// CellRect returns the logical-space rectangle for a cell at the given grid
// coordinate:
//
//	x = gx * (CellWidth + CellGap)
//	y = gy * (CellHeight + CellGap)
//
// This formula is the shared placement contract: the host application uses
// the same arithmetic when it auto-places new entities, so it must not be
// reimplemented elsewhere. Negative coordinates clamp to zero.
func CellRect(gx, gy int) Rect {
	if gx < 0 {
		gx = 0
	}
	if gy < 0 {
		gy = 0
	}
	return Rect{
		X:      float64(gx) * (CellWidth + CellGap),
		Y:      float64(gy) * (CellHeight + CellGap),
		Width:  CellWidth,
		Height: CellHeight,
	}
}

// RectFor returns the logical-space rectangle for an entity's grid position.
func RectFor(e Entity) Rect {
	return CellRect(e.LogicalX, e.LogicalY)
}
