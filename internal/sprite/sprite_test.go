package sprite

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func writeGIF(t *testing.T, path string, frames, w, h int) {
	t.Helper()

	g := &gif.GIF{Config: image.Config{Width: w, Height: h}}
	pal := color.Palette{color.Transparent, color.White}
	for i := 0; i < frames; i++ {
		img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
		img.SetColorIndex(i%w, i%h, 1)
		g.Image = append(g.Image, img)
		g.Delay = append(g.Delay, 10)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, g); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestDecodeGIF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "idle.gif")
	writeGIF(t, path, 5, 100, 100)

	frames, w, h, err := decodeGIF(path)
	if err != nil {
		t.Fatalf("decodeGIF failed: %v", err)
	}
	if len(frames) != 5 {
		t.Errorf("expected 5 frames, got %d", len(frames))
	}
	if w != 100 || h != 100 {
		t.Errorf("expected 100x100, got %dx%d", w, h)
	}
	for i, frame := range frames {
		b := frame.Bounds()
		if b.Dx() != 100 || b.Dy() != 100 {
			t.Errorf("frame %d not composed to full canvas: %v", i, b)
		}
	}
}

func TestDecodeGIFMissingFile(t *testing.T) {
	_, _, _, err := decodeGIF(filepath.Join(t.TempDir(), "nope.gif"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDecodeGIFNotAGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gif")
	if err := os.WriteFile(path, []byte("this is not a gif"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := decodeGIF(path); err == nil {
		t.Fatal("expected a decode error")
	}
}
