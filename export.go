package gridview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ExportSink receives a finished export image. The default sink writes PNG
// files to a directory; hosts with their own save/download flow supply a
// sink of their own.
type ExportSink interface {
	Save(name string, img image.Image) error
}

// DirSink writes export images as PNG files into Dir, creating it on demand.
type DirSink struct {
	Dir string
}

// Save encodes img as PNG at Dir/name.
func (s DirSink) Save(name string, img image.Image) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.Dir, err)
	}
	path := filepath.Join(s.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// exportFilename builds the fixed-template export name for a timestamp.
func exportFilename(now time.Time) string {
	return "grid_" + now.Format("20060102_150405") + ".png"
}

// QueueExport requests an export render at the end of the current frame's
// Draw. Safe to call from Update or a callback.
func (b *Board) QueueExport() {
	b.exportQueued = true
}

// flushExport renders the export pass to an offscreen image and hands the
// result to the sink. Interactive state — transform, gesture session, cached
// frame — is untouched. Failures are reported to stderr; the engine has no
// user-visible error surface.
func (b *Board) flushExport() {
	b.exportQueued = false
	if b.width <= 0 || b.height <= 0 {
		return
	}
	off := ebiten.NewImage(b.width, b.height)
	b.renderer.Render(off, b.entities, b.tf, ModeExport)
	img := frameToImage(off)
	off.Deallocate()

	if err := b.sink.Save(exportFilename(time.Now()), img); err != nil {
		fmt.Fprintf(os.Stderr, "[gridview] export: %v\n", err)
	}
}

// frameToImage reads back a rendered frame and converts premultiplied RGBA
// to straight-alpha NRGBA for encoding.
func frameToImage(src *ebiten.Image) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	src.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, bl, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			bl = uint8(min(int(bl)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = bl
		img.Pix[i+3] = a
	}
	return img
}
