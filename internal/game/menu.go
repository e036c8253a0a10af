package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/ProPhuMy/Desktop-cat/internal/anim"
)

const (
	menuWidth  = 160
	menuItemH  = 18
	menuMargin = 4
)

type menuItem struct {
	label  string
	action func()
	sep    bool // draw a separator line above this item
}

// Menu is the right-click context menu, rendered below the pet since ebiten
// has no native menu widget.
type Menu struct {
	items []menuItem
	hover int
}

func newMenu(g *Manager) *Menu {
	statsLabel := "Show Stats"
	if g.showStats {
		statsLabel = "Hide Stats"
	}
	return &Menu{
		hover: -1,
		items: []menuItem{
			{label: "Chat with Neko", action: g.openChat},
			{label: "Make Neko Sleep", action: func() { g.forceMode(anim.ModeIdleToSleep) }},
			{label: "Make Neko Walk Left", action: func() { g.forceMode(anim.ModeWalkLeft) }},
			{label: "Make Neko Walk Right", action: func() { g.forceMode(anim.ModeWalkRight) }},
			{label: statsLabel, action: func() { g.showStats = !g.showStats }},
			{label: "Quit Neko", action: func() { g.quit = true }, sep: true},
		},
	}
}

func (m *Menu) size() (int, int) {
	return menuWidth, len(m.items)*menuItemH + 2*menuMargin
}

// hit maps a point in menu-local coordinates to an item index, -1 for none.
func (m *Menu) hit(x, y int) int {
	w, h := m.size()
	if x < 0 || x >= w || y < menuMargin || y >= h-menuMargin {
		return -1
	}
	idx := (y - menuMargin) / menuItemH
	if idx < 0 || idx >= len(m.items) {
		return -1
	}
	return idx
}

func (m *Menu) draw(dst *ebiten.Image, top, width int) {
	_, h := m.size()
	vector.DrawFilledRect(dst, 0, float32(top), float32(width), float32(h),
		color.RGBA{32, 32, 40, 240}, false)

	for i, item := range m.items {
		y := top + menuMargin + i*menuItemH
		if item.sep {
			vector.StrokeLine(dst, 4, float32(y), float32(width-4), float32(y),
				1, color.RGBA{90, 90, 100, 255}, false)
		}
		if i == m.hover {
			vector.DrawFilledRect(dst, 0, float32(y), float32(width), menuItemH,
				color.RGBA{60, 80, 140, 255}, false)
		}
		text.Draw(dst, item.label, basicfont.Face7x13, 8, y+13, color.White)
	}
}
