package game

import (
	"image/color"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/ProPhuMy/Desktop-cat/internal/chat"
)

const (
	panelWidth  = 360
	panelHeight = 420

	panelHeaderH = 64
	panelInputH  = 28
	panelPad     = 8

	// basicfont.Face7x13 metrics
	glyphW = 7
	lineH  = 15
)

// ChatPanel is the chat popup. The original opened a separate toplevel
// window; here the pet window grows to panel size while chat is open.
type ChatPanel struct {
	input []rune
	ticks int
}

func newChatPanel() *ChatPanel {
	return &ChatPanel{}
}

func (p *ChatPanel) handleInput(s *chat.Session) {
	p.ticks++
	if !s.Enabled() || s.Pending() {
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if unicode.IsPrint(r) {
			p.input = append(p.input, r)
		}
	}
	if keyRepeats(ebiten.KeyBackspace) && len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		msg := strings.TrimSpace(string(p.input))
		p.input = p.input[:0]
		s.Send(msg)
	}
}

// keyRepeats fires on the initial press and then at typematic rate.
func keyRepeats(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= 20 && d%3 == 0)
}

func (p *ChatPanel) draw(dst *ebiten.Image, frame *ebiten.Image, s *chat.Session) {
	w, h := panelWidth, panelHeight

	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), color.RGBA{24, 24, 32, 255}, false)
	vector.DrawFilledRect(dst, 0, 0, float32(w), panelHeaderH, color.RGBA{32, 32, 44, 255}, false)

	// The pet keeps animating, half size, in the header.
	if frame != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(0.5, 0.5)
		op.GeoM.Translate(panelPad, panelPad)
		dst.DrawImage(frame, op)
	}
	text.Draw(dst, "Chat with Neko", basicfont.Face7x13, 64, 36, color.White)

	p.drawTranscript(dst, s)
	p.drawInput(dst, s)
}

func (p *ChatPanel) drawTranscript(dst *ebiten.Image, s *chat.Session) {
	cols := (panelWidth - 2*panelPad) / glyphW

	var lines []string
	if !s.Enabled() {
		lines = wrap("Meow? I can't talk: set GEMINI_API_KEY (or GOOGLE_API_KEY) and restart me.", cols)
	}
	for _, m := range s.Messages() {
		prefix := "You: "
		if m.Role == chat.RoleNeko {
			prefix = "Neko: "
		}
		lines = append(lines, wrap(prefix+m.Text, cols)...)
		lines = append(lines, "")
	}
	if s.Pending() {
		lines = append(lines, "Neko is typing...")
	}

	// Show the tail that fits between header and input box.
	areaH := panelHeight - panelHeaderH - panelInputH - 2*panelPad
	maxLines := areaH / lineH
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	y := panelHeaderH + panelPad + 11
	for _, line := range lines {
		text.Draw(dst, line, basicfont.Face7x13, panelPad, y, color.RGBA{220, 220, 220, 255})
		y += lineH
	}
}

func (p *ChatPanel) drawInput(dst *ebiten.Image, s *chat.Session) {
	top := panelHeight - panelInputH
	vector.DrawFilledRect(dst, 0, float32(top), panelWidth, panelInputH, color.RGBA{40, 40, 56, 255}, false)

	line := []rune("> " + string(p.input))
	if s.Enabled() && !s.Pending() && (p.ticks/30)%2 == 0 {
		line = append(line, '_')
	}
	// Keep the tail visible when the input outgrows the box.
	cols := (panelWidth - 2*panelPad) / glyphW
	if len(line) > cols {
		line = line[len(line)-cols:]
	}
	text.Draw(dst, string(line), basicfont.Face7x13, panelPad, top+18, color.White)
}

// wrap word-wraps s to width columns, hard-splitting words that are too
// long. Widths count runes, not bytes.
func wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := ""
		for _, w := range words {
			word := []rune(w)
			for len(word) > width {
				if cur != "" {
					lines = append(lines, cur)
					cur = ""
				}
				lines = append(lines, string(word[:width]))
				word = word[width:]
			}
			switch {
			case cur == "":
				cur = string(word)
			case len([]rune(cur))+1+len(word) <= width:
				cur += " " + string(word)
			default:
				lines = append(lines, cur)
				cur = string(word)
			}
		}
		if cur != "" {
			lines = append(lines, cur)
		}
	}
	return lines
}
