package gridview

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// RenderMode selects between the interactive pass and the export pass.
type RenderMode uint8

const (
	// ModeInteractive clears to transparent and draws the grid and cells.
	ModeInteractive RenderMode = iota
	// ModeExport paints an opaque background before the same cell pass, so
	// the output stands alone as an image.
	ModeExport
)

// statusPalette is the fill/stroke pair for one entity status.
type statusPalette struct {
	fill   color.NRGBA
	stroke color.NRGBA
}

var statusPalettes = [...]statusPalette{
	StatusPending:   {fill: color.NRGBA{226, 232, 240, 255}, stroke: color.NRGBA{100, 116, 139, 255}},
	StatusCompleted: {fill: color.NRGBA{187, 247, 208, 255}, stroke: color.NRGBA{22, 163, 74, 255}},
	StatusFlagged:   {fill: color.NRGBA{254, 202, 202, 255}, stroke: color.NRGBA{220, 38, 38, 255}},
}

var (
	gridLineColor    = color.NRGBA{0, 0, 0, 28}
	labelColor       = color.NRGBA{51, 65, 85, 255}
	exportBackground = color.NRGBA{250, 250, 250, 255}
)

// paletteFor returns the palette for a status, falling back to the pending
// palette for out-of-range values so a bad snapshot cannot panic the draw.
func paletteFor(s Status) statusPalette {
	if int(s) >= len(statusPalettes) {
		return statusPalettes[StatusPending]
	}
	return statusPalettes[s]
}

// Renderer draws the grid surface. It holds only the label face; all draw
// state lives on the target image, so rendering the same inputs twice
// produces identical output.
type Renderer struct {
	face text.Face
}

// NewRenderer creates a renderer with the fixed label face.
func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Render draws every entity under the given transform into dst. A nil or
// zero-sized destination is a no-op. Render never mutates entities or tf.
func (r *Renderer) Render(dst *ebiten.Image, entities []Entity, tf ViewTransform, mode RenderMode) {
	if dst == nil {
		return
	}
	bounds := dst.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w <= 0 || h <= 0 {
		return
	}

	if mode == ModeExport {
		dst.Fill(exportBackground)
	} else {
		dst.Clear()
	}

	r.drawGridLines(dst, tf, w, h)

	for i := range entities {
		r.drawCell(dst, &entities[i], tf, w, h)
	}
}

// drawGridLines draws faint vertical and horizontal rules at the cell pitch,
// scaled with the transform and phase-shifted by the pan offset.
func (r *Renderer) drawGridLines(dst *ebiten.Image, tf ViewTransform, w, h float64) {
	stepX := (CellWidth + CellGap) * tf.Scale
	stepY := (CellHeight + CellGap) * tf.Scale

	for x := gridPhase(tf.OffsetX, stepX); x < w; x += stepX {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(h), 1, gridLineColor, false)
	}
	for y := gridPhase(tf.OffsetY, stepY); y < h; y += stepY {
		vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1, gridLineColor, false)
	}
}

// gridPhase returns the first on-screen line position for a pan offset and
// line spacing, always in [0, step).
func gridPhase(offset, step float64) float64 {
	p := math.Mod(offset, step)
	if p < 0 {
		p += step
	}
	return p
}

// drawCell draws one entity: status-colored rect, category label top-left,
// status glyph bottom-right. Cells entirely off the surface are skipped.
func (r *Renderer) drawCell(dst *ebiten.Image, e *Entity, tf ViewTransform, surfW, surfH float64) {
	lr := RectFor(*e)
	sx, sy := tf.Apply(lr.X, lr.Y)
	cw := lr.Width * tf.Scale
	ch := lr.Height * tf.Scale

	if sx+cw < 0 || sy+ch < 0 || sx > surfW || sy > surfH {
		return
	}

	pal := paletteFor(e.Status)
	vector.DrawFilledRect(dst, float32(sx), float32(sy), float32(cw), float32(ch), pal.fill, false)
	vector.StrokeRect(dst, float32(sx), float32(sy), float32(cw), float32(ch), 1, pal.stroke, false)

	r.drawLabel(dst, e.Category.String(), sx, sy, tf.Scale)
	r.drawGlyph(dst, e.Status, sx+cw, sy+ch, tf.Scale, pal.stroke)
}

// drawLabel draws the category letter anchored at the cell's top-left.
func (r *Renderer) drawLabel(dst *ebiten.Image, label string, sx, sy, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx+3*scale, sy+2*scale)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(dst, label, r.face, op)
}

// drawGlyph draws the status mark anchored at the cell's bottom-right corner
// (bx, by): a checkmark for completed, an exclamation mark for flagged, and
// a neutral ring for pending.
func (r *Renderer) drawGlyph(dst *ebiten.Image, s Status, bx, by, scale float64, clr color.NRGBA) {
	gx := float32(bx - 8*scale)
	gy := float32(by - 8*scale)
	rad := float32(4 * scale)
	lw := float32(math.Max(1, 1.2*scale))

	switch s {
	case StatusCompleted:
		vector.StrokeLine(dst, gx-rad, gy, gx-rad/3, gy+rad*0.8, lw, clr, true)
		vector.StrokeLine(dst, gx-rad/3, gy+rad*0.8, gx+rad, gy-rad*0.7, lw, clr, true)
	case StatusFlagged:
		vector.StrokeLine(dst, gx, gy-rad, gx, gy+rad*0.3, lw, clr, true)
		vector.DrawFilledCircle(dst, gx, gy+rad*0.85, lw*0.7, clr, true)
	default:
		vector.StrokeCircle(dst, gx, gy, rad, lw, clr, true)
	}
}
