package gridview

// HitTest resolves a screen point to the entity whose cell contains it under
// the given transform. The point is inverse-transformed once and compared
// against each entity's logical rectangle.
//
// Cells at distinct grid coordinates never overlap by construction. If the
// caller supplies duplicate coordinates, the last entity in iteration order
// wins — the scan runs back to front, mirroring topmost-first hit testing.
func HitTest(screenX, screenY float64, tf ViewTransform, entities []Entity) (string, bool) {
	lx, ly := tf.Invert(screenX, screenY)
	for i := len(entities) - 1; i >= 0; i-- {
		if RectFor(entities[i]).Contains(lx, ly) {
			return entities[i].ID, true
		}
	}
	return "", false
}
