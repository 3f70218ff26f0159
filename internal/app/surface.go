package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/tank-siege/internal/game"
)

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 16, A: 255}
	hudFace         = text.NewGoXFace(basicfont.Face7x13)
)

// screenSurface renders World draw commands onto an ebiten image.
type screenSurface struct {
	dst    *ebiten.Image
	assets *Assets
}

func (s *screenSurface) Clear() {
	s.dst.Fill(backgroundColor)
}

func (s *screenSurface) DrawTile(sprite game.Sprite, col, row int) {
	img := s.assets.Image(sprite)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(col*game.TileSize), float64(row*game.TileSize))
	s.dst.DrawImage(img, op)
}

// DrawSprite rotates the sprite about its centre, then centres it on (cx, cy).
func (s *screenSurface) DrawSprite(sprite game.Sprite, cx, cy, angle float64) {
	img := s.assets.Image(sprite)
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

func (s *screenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawText places text with its baseline at y.
func (s *screenSurface) DrawText(str string, x, y float64, c color.Color) {
	drawText(s.dst, str, x, y, c)
}

func drawText(dst *ebiten.Image, str string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-hudFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, str, hudFace, op)
}

func textWidth(str string) float64 {
	w, _ := text.Measure(str, hudFace, 0)
	return w
}
