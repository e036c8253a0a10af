// Package game implements the ebiten.Game that is the pet: the animation
// tick, drag handling, the right-click menu and the chat popup.
package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/ProPhuMy/Desktop-cat/internal/anim"
	"github.com/ProPhuMy/Desktop-cat/internal/chat"
	"github.com/ProPhuMy/Desktop-cat/internal/entity"
	"github.com/ProPhuMy/Desktop-cat/internal/monitor"
	"github.com/ProPhuMy/Desktop-cat/internal/screen"
	"github.com/ProPhuMy/Desktop-cat/internal/sprite"
)

type Manager struct {
	Pet     *entity.Pet
	cycler  *anim.Cycler
	sprites *sprite.Set
	area    screen.WorkArea
	mon     *monitor.Monitor
	session *chat.Session
	logger  *zap.Logger

	lastStep time.Time

	menu      *Menu
	panel     *ChatPanel
	showStats bool
	quit      bool

	// current canvas size; equals the pet except while an overlay is open
	surfaceW int
	surfaceH int
}

func New(sprites *sprite.Set, cycler *anim.Cycler, area screen.WorkArea,
	mon *monitor.Monitor, session *chat.Session, showStats bool, logger *zap.Logger) *Manager {
	return &Manager{
		cycler:    cycler,
		sprites:   sprites,
		area:      area,
		mon:       mon,
		session:   session,
		showStats: showStats,
		logger:    logger,
	}
}

// Init sizes the window to the sprite and drops the pet near the bottom
// center of the work area.
func (g *Manager) Init() {
	g.Pet = &entity.Pet{
		Width:  g.sprites.Width,
		Height: g.sprites.Height,
	}
	g.Pet.X = g.area.Width/2 - g.Pet.Width/2
	g.Pet.Y = g.area.Height - g.Pet.Height
	g.Pet.X, g.Pet.Y = g.area.Clamp(g.Pet.X, g.Pet.Y, g.Pet.Width, g.Pet.Height)

	g.setSurface(g.Pet.Width, g.Pet.Height)
	ebiten.SetWindowPosition(g.Pet.X, g.Pet.Y)
	g.lastStep = time.Now()

	g.logger.Info("pet placed",
		zap.Int("x", g.Pet.X), zap.Int("y", g.Pet.Y),
		zap.Int("w", g.Pet.Width), zap.Int("h", g.Pet.Height))
}

func (g *Manager) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	hover := mx >= 0 && mx < g.surfaceW && my >= 0 && my < g.surfaceH

	// Full speed while anyone is paying attention, power saving otherwise.
	if hover || g.Pet.Dragging || g.menu != nil || g.panel != nil {
		ebiten.SetTPS(60)
	} else {
		ebiten.SetTPS(10)
	}

	// Replies may land while the popup is closed; drain them regardless.
	g.session.Poll()

	switch {
	case g.panel != nil:
		g.updatePanel()
	case g.menu != nil:
		g.updateMenu(mx, my)
	default:
		g.updatePet(mx, my)
	}

	g.stepAnimation()
	return nil
}

func (g *Manager) updatePet(mx, my int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.openMenu()
		return
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.Pet.Dragging {
			g.Pet.Dragging = true
			g.Pet.DragStartX = mx
			g.Pet.DragStartY = my
			return
		}
		// The window follows the cursor: the cursor's offset inside the
		// window must stay what it was at press time.
		wx, wy := ebiten.WindowPosition()
		g.moveTo(wx+mx-g.Pet.DragStartX, wy+my-g.Pet.DragStartY, false)
		return
	}

	if g.Pet.Dragging {
		g.Pet.Dragging = false
		g.moveTo(g.Pet.X, g.Pet.Y, true)
		g.logger.Debug("drag released", zap.Int("x", g.Pet.X), zap.Int("y", g.Pet.Y))
	}
}

// moveTo updates the pet position and the OS window. Clamping is skipped
// mid-drag and applied on release, like the original.
func (g *Manager) moveTo(x, y int, clamp bool) {
	if clamp {
		x, y = g.area.Clamp(x, y, g.Pet.Width, g.Pet.Height)
	}
	g.Pet.X, g.Pet.Y = x, y
	ebiten.SetWindowPosition(x, y)
}

func (g *Manager) stepAnimation() {
	if g.Pet.Dragging {
		return
	}
	if time.Since(g.lastStep) < g.cycler.Interval() {
		return
	}
	g.lastStep = time.Now()

	before := g.cycler.Mode()
	dx := g.cycler.Step()
	if after := g.cycler.Mode(); after != before {
		g.logger.Debug("mode change",
			zap.String("from", before.String()), zap.String("to", after.String()))
	}

	// Walking only moves the window when no overlay holds it in place.
	if dx != 0 && g.menu == nil && g.panel == nil {
		g.moveTo(g.Pet.X+dx, g.Pet.Y, true)
	}
}

func (g *Manager) setSurface(w, h int) {
	g.surfaceW, g.surfaceH = w, h
	ebiten.SetWindowSize(w, h)
}

func (g *Manager) openMenu() {
	g.menu = newMenu(g)
	mw, mh := g.menu.size()
	w := g.Pet.Width
	if mw > w {
		w = mw
	}
	g.setSurface(w, g.Pet.Height+mh)
	// Keep the grown window on screen.
	x, y := g.area.Clamp(g.Pet.X, g.Pet.Y, w, g.Pet.Height+mh)
	ebiten.SetWindowPosition(x, y)
}

func (g *Manager) closeMenu() {
	g.menu = nil
	g.setSurface(g.Pet.Width, g.Pet.Height)
	g.moveTo(g.Pet.X, g.Pet.Y, true)
}

func (g *Manager) updateMenu(mx, my int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.closeMenu()
		return
	}

	g.menu.hover = g.menu.hit(mx, my-g.Pet.Height)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		idx := g.menu.hit(mx, my-g.Pet.Height)
		action := func() {}
		if idx >= 0 {
			action = g.menu.items[idx].action
		}
		g.closeMenu()
		action()
	}
}

func (g *Manager) openChat() {
	g.panel = newChatPanel()
	g.setSurface(panelWidth, panelHeight)
	x, y := g.area.Clamp(g.Pet.X, g.Pet.Y, panelWidth, panelHeight)
	ebiten.SetWindowPosition(x, y)
	g.logger.Info("chat opened", zap.Bool("enabled", g.session.Enabled()))
}

func (g *Manager) closePanel() {
	g.panel = nil
	g.setSurface(g.Pet.Width, g.Pet.Height)
	g.moveTo(g.Pet.X, g.Pet.Y, true)
}

func (g *Manager) updatePanel() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.closePanel()
		return
	}
	g.panel.handleInput(g.session)
}

func (g *Manager) forceMode(m anim.Mode) {
	g.cycler.Force(m)
	g.lastStep = time.Now()
	g.logger.Debug("mode forced", zap.String("mode", m.String()))
}

func (g *Manager) Draw(dst *ebiten.Image) {
	frame := g.sprites.Frame(g.cycler.Mode(), g.cycler.Frame())

	if g.panel != nil {
		g.panel.draw(dst, frame, g.session)
		return
	}

	if frame != nil {
		dst.DrawImage(frame, nil)
	}
	if g.showStats {
		g.drawStats(dst)
	}
	if g.menu != nil {
		g.menu.draw(dst, g.Pet.Height, g.surfaceW)
	}
}

func (g *Manager) drawStats(dst *ebiten.Image) {
	s := g.mon.Snapshot()
	clr := color.RGBA{0, 255, 0, 255}
	if g.mon.Stressed() {
		clr = color.RGBA{255, 80, 80, 255}
	}
	text.Draw(dst, fmt.Sprintf("CPU %.1f%%", s.CPU), basicfont.Face7x13, 2, 11, clr)
	text.Draw(dst, fmt.Sprintf("MEM %.1f%%", s.Mem), basicfont.Face7x13, 2, 24, clr)
}

func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surfaceW, g.surfaceH
}
