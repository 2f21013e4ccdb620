package gridview

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExportFilename(t *testing.T) {
	stamp := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	if got := exportFilename(stamp); got != "grid_20240309_140506.png" {
		t.Errorf("exportFilename = %q", got)
	}
}

func TestDirSinkSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := DirSink{Dir: dir}

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if err := sink.Save("grid_test.png", img); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "grid_test.png"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("decode: %v", err)
	}
}

// captureSink records the export handed to it.
type captureSink struct {
	name string
	img  image.Image
}

func (s *captureSink) Save(name string, img image.Image) error {
	s.name = name
	s.img = img
	return nil
}

func TestBoardExportFlush(t *testing.T) {
	b, _ := newTestBoard()
	sink := &captureSink{}
	b.SetExportSink(sink)
	before := b.tf

	b.QueueExport()
	b.flushExport()

	if sink.img == nil {
		t.Fatal("export did not reach the sink")
	}
	bounds := sink.img.Bounds()
	if bounds.Dx() != 800 || bounds.Dy() != 600 {
		t.Errorf("export size = %dx%d, want 800x600", bounds.Dx(), bounds.Dy())
	}
	if sink.name == "" || filepath.Ext(sink.name) != ".png" {
		t.Errorf("export name = %q, want timestamped .png", sink.name)
	}
	if b.exportQueued {
		t.Error("exportQueued still set after flush")
	}
	if b.tf != before {
		t.Errorf("export corrupted interactive transform: %+v", b.tf)
	}
}

func TestBoardExportZeroSizeNoop(t *testing.T) {
	b := NewBoard(0, 0, nil)
	sink := &captureSink{}
	b.SetExportSink(sink)

	b.QueueExport()
	b.flushExport() // must not panic

	if sink.img != nil {
		t.Error("zero-size board produced an export image")
	}
}
