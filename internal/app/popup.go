package app

import (
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/tank-siege/internal/game"
)

var (
	popupShade  = color.RGBA{A: 160}
	popupFill   = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	popupBorder = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	popupText   = color.Black
	popupHint   = color.RGBA{R: 110, G: 110, B: 110, A: 255}
)

// Popup is the end-of-game message box. It is the World's ResultDisplay.
type Popup struct {
	visible bool
	message string
	time    string
	copied  bool

	writeClipboard func(string) error
	log            logrus.FieldLogger
}

func newPopup(log logrus.FieldLogger) *Popup {
	return &Popup{writeClipboard: clipboard.WriteAll, log: log}
}

// ShowResult opens the popup.
func (p *Popup) ShowResult(result game.Result, elapsedSeconds float64) {
	p.visible = true
	p.message = result.String()
	p.time = fmt.Sprintf("Time: %.2fs", elapsedSeconds)
	p.copied = false
}

// Visible reports whether the popup is open.
func (p *Popup) Visible() bool { return p.visible }

// Line is the popup text on one line, as copied to the clipboard.
func (p *Popup) Line() string {
	return p.message + " " + p.time
}

// Copy puts Line on the system clipboard.
func (p *Popup) Copy() {
	if !p.visible {
		return
	}
	if err := p.writeClipboard(p.Line()); err != nil {
		p.log.WithError(err).Warn("clipboard write failed")
		return
	}
	p.copied = true
}

func (p *Popup) Draw(dst *ebiten.Image) {
	if !p.visible {
		return
	}
	sw, sh := float32(dst.Bounds().Dx()), float32(dst.Bounds().Dy())
	vector.FillRect(dst, 0, 0, sw, sh, popupShade, false)

	const w, h = 260, 110
	x, y := (sw-w)/2, (sh-h)/2
	vector.FillRect(dst, x, y, w, h, popupFill, false)
	vector.StrokeRect(dst, x, y, w, h, 2, popupBorder, false)

	cx := float64(x) + w/2
	drawCentred(dst, p.message, cx, float64(y)+34, popupText)
	drawCentred(dst, p.time, cx, float64(y)+60, popupText)
	hint := "[C] copy  [Esc] quit"
	if p.copied {
		hint = "copied to clipboard"
	}
	drawCentred(dst, hint, cx, float64(y)+92, popupHint)
}

func drawCentred(dst *ebiten.Image, str string, cx, baseline float64, c color.Color) {
	drawText(dst, str, cx-textWidth(str)/2, baseline, c)
}
