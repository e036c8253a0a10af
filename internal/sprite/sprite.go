// Package sprite loads the pet's animation frames from multi-frame GIFs.
package sprite

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ProPhuMy/Desktop-cat/internal/anim"
)

// Files maps each animation mode to its GIF under the asset dir.
var Files = map[anim.Mode]string{
	anim.ModeIdle:        "idle.gif",
	anim.ModeIdleToSleep: "idle_to_sleep.gif",
	anim.ModeSleep:       "sleep.gif",
	anim.ModeSleepToIdle: "sleep_to_idle.gif",
	anim.ModeWalkLeft:    "walking_positive.gif",
	anim.ModeWalkRight:   "walking_negative.gif",
}

// Set holds the decoded frames for every mode. Width/Height come from the
// idle strip and define the pet window size.
type Set struct {
	Frames map[anim.Mode][]*ebiten.Image
	Width  int
	Height int
}

// Load decodes all six strips from dir. Every file must exist and decode.
func Load(dir string) (*Set, error) {
	s := &Set{Frames: make(map[anim.Mode][]*ebiten.Image, len(Files))}
	for _, mode := range anim.Modes {
		path := filepath.Join(dir, Files[mode])
		frames, w, h, err := decodeGIF(path)
		if err != nil {
			return nil, fmt.Errorf("load %s animation: %w", mode, err)
		}
		images := make([]*ebiten.Image, len(frames))
		for i, frame := range frames {
			images[i] = ebiten.NewImageFromImage(frame)
		}
		s.Frames[mode] = images
		if mode == anim.ModeIdle {
			s.Width, s.Height = w, h
		}
	}
	return s, nil
}

// Counts reports the frame count per mode, the shape the animator wants.
func (s *Set) Counts() map[anim.Mode]int {
	counts := make(map[anim.Mode]int, len(s.Frames))
	for mode, frames := range s.Frames {
		counts[mode] = len(frames)
	}
	return counts
}

// Frame returns the image for the given mode and frame index.
func (s *Set) Frame(mode anim.Mode, i int) *ebiten.Image {
	frames := s.Frames[mode]
	if len(frames) == 0 {
		return nil
	}
	if i < 0 || i >= len(frames) {
		i = 0
	}
	return frames[i]
}

// decodeGIF decodes every frame, compositing each onto the logical canvas so
// partial frames still render whole.
func decodeGIF(path string) ([]*image.RGBA, int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer file.Close()

	g, err := gif.DecodeAll(file)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if len(g.Image) == 0 {
		return nil, 0, 0, fmt.Errorf("%s has no frames", filepath.Base(path))
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Dx(), b.Dy()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	frames := make([]*image.RGBA, 0, len(g.Image))
	for _, src := range g.Image {
		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)
		snapshot := image.NewRGBA(canvas.Bounds())
		draw.Draw(snapshot, canvas.Bounds(), canvas, image.Point{}, draw.Src)
		frames = append(frames, snapshot)
	}
	return frames, w, h, nil
}
