// Package screen knows how big the desktop is and keeps the pet inside it.
package screen

import "github.com/hajimehoshi/ebiten/v2"

// TaskbarMargin approximates the taskbar height; ebiten only reports the full
// desktop size, not the OS work area.
const TaskbarMargin = 50

// WorkArea is the region the pet may occupy.
type WorkArea struct {
	Width  int
	Height int
}

// Desktop returns the work area of the primary display.
func Desktop() WorkArea {
	w, h := ebiten.ScreenSizeInFullscreen()
	return WorkArea{Width: w, Height: h - TaskbarMargin}
}

// Clamp pins a window of size w x h at (x, y) inside the work area.
func (a WorkArea) Clamp(x, y, w, h int) (int, int) {
	maxX := a.Width - w
	if maxX < 0 {
		maxX = 0
	}
	maxY := a.Height - h
	if maxY < 0 {
		maxY = 0
	}
	if x < 0 {
		x = 0
	} else if x > maxX {
		x = maxX
	}
	if y < 0 {
		y = 0
	} else if y > maxY {
		y = maxY
	}
	return x, y
}
