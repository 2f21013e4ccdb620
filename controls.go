package gridview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type controlAction uint8

const (
	actionZoomIn controlAction = iota
	actionZoomOut
	actionReset
	actionExport
)

// controlButton is one fixed screen-space button. Button rects live outside
// the view transform and consume taps before the grid sees them.
type controlButton struct {
	action controlAction
	label  string
	rect   Rect
}

type controlBar struct {
	buttons []controlButton
}

var (
	buttonFill   = color.NRGBA{255, 255, 255, 235}
	buttonStroke = color.NRGBA{100, 116, 139, 255}
	buttonLabel  = color.NRGBA{30, 41, 59, 255}
)

// newControlBar lays out the four buttons along the top-left edge.
func newControlBar() *controlBar {
	const (
		x0     = 10.0
		y0     = 10.0
		height = 24.0
		gap    = 6.0
	)
	specs := []struct {
		action controlAction
		label  string
		width  float64
	}{
		{actionZoomIn, "+", 24},
		{actionZoomOut, "-", 24},
		{actionReset, "reset", 48},
		{actionExport, "export", 56},
	}

	bar := &controlBar{}
	x := x0
	for _, sp := range specs {
		bar.buttons = append(bar.buttons, controlButton{
			action: sp.action,
			label:  sp.label,
			rect:   Rect{X: x, Y: y0, Width: sp.width, Height: height},
		})
		x += sp.width + gap
	}
	return bar
}

// hit returns the action for a button containing (x, y), if any.
func (c *controlBar) hit(x, y float64) (controlAction, bool) {
	for _, btn := range c.buttons {
		if btn.rect.Contains(x, y) {
			return btn.action, true
		}
	}
	return 0, false
}

// draw paints the button strip directly onto the screen, unaffected by the
// view transform.
func (c *controlBar) draw(dst *ebiten.Image, face text.Face) {
	for _, btn := range c.buttons {
		r := btn.rect
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), buttonFill, false)
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, buttonStroke, false)

		op := &text.DrawOptions{}
		lw, lh := text.Measure(btn.label, face, 0)
		op.GeoM.Translate(r.X+(r.Width-lw)/2, r.Y+(r.Height-lh)/2)
		op.ColorScale.ScaleWithColor(buttonLabel)
		text.Draw(dst, btn.label, face, op)
	}
}
