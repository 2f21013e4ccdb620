package gridview

import "math"

// ViewTransform maps logical surface coordinates to screen pixels: a uniform
// scale followed by a translation. Scale always stays within
// [MinScale, MaxScale]; there is no rotation.
//
// The transform is owned by a single Board instance and mutated only by its
// gesture controller and controls; it is never persisted.
type ViewTransform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// DefaultTransform returns the transform a freshly mounted board starts with.
func DefaultTransform() ViewTransform {
	return ViewTransform{Scale: 1.0, OffsetX: DefaultOffsetX, OffsetY: DefaultOffsetY}
}

// clampScale restricts s to [MinScale, MaxScale]. NaN clamps to MinScale so a
// bad input can never poison the transform.
func clampScale(s float64) float64 {
	if math.IsNaN(s) {
		return MinScale
	}
	return math.Max(MinScale, math.Min(s, MaxScale))
}

// Apply converts a logical point to screen coordinates.
func (t ViewTransform) Apply(lx, ly float64) (sx, sy float64) {
	return lx*t.Scale + t.OffsetX, ly*t.Scale + t.OffsetY
}

// Invert converts a screen point to logical coordinates. Scale is clamped
// away from zero, so the division is always defined.
func (t ViewTransform) Invert(sx, sy float64) (lx, ly float64) {
	return (sx - t.OffsetX) / t.Scale, (sy - t.OffsetY) / t.Scale
}

// ZoomAt adds delta to the scale, clamped to policy bounds, while keeping the
// logical point under the focal screen point visually fixed. A scale-only
// change would make content jump toward or away from the origin; recomputing
// the offset pins (fx, fy) to the same logical point before and after.
//
// Non-finite deltas are ignored.
func (t *ViewTransform) ZoomAt(fx, fy, delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	next := clampScale(t.Scale + delta)
	if next == t.Scale {
		return
	}
	lx, ly := t.Invert(fx, fy)
	t.Scale = next
	t.OffsetX = fx - lx*next
	t.OffsetY = fy - ly*next
}

// Reset restores the default scale and offset.
func (t *ViewTransform) Reset() {
	*t = DefaultTransform()
}
