// Package terminal plays a game.World in a text terminal with tcell. Each
// tile is two cells wide and one cell tall.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/tank-siege/internal/game"
)

const (
	cellsPerTile = 2
	cellWidth    = game.TileSize / cellsPerTile // pixels per column
	cellHeight   = game.TileSize                // pixels per row

	// Columns and rows the battlefield occupies; the status line sits below.
	FieldCols = game.MapSize * cellsPerTile
	FieldRows = game.MapSize
)

type glyph struct {
	runes [cellsPerTile]rune
	style tcell.Style
}

var tileGlyphs = map[game.Sprite]glyph{
	game.SpriteBrick:      {[2]rune{'▓', '▓'}, tcell.StyleDefault.Foreground(tcell.ColorIndianRed)},
	game.SpriteSteel:      {[2]rune{'█', '█'}, tcell.StyleDefault.Foreground(tcell.ColorSilver)},
	game.SpritePlayerBase: {[2]rune{'[', ']'}, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)},
	game.SpriteEnemyBase:  {[2]rune{'[', ']'}, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)},
}

var tankStyles = map[game.Sprite]tcell.Style{
	game.SpritePlayer: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	game.SpriteEnemy:  tcell.StyleDefault.Foreground(tcell.ColorLightGray),
}

// Surface draws World commands into a tcell screen.
type Surface struct {
	screen tcell.Screen
}

func NewSurface(s tcell.Screen) *Surface {
	return &Surface{screen: s}
}

// cell maps a canvas pixel to a screen cell.
func cell(x, y float64) (cx, cy int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y / cellHeight))
}

func (s *Surface) set(cx, cy int, r rune, st tcell.Style) {
	if cx < 0 || cy < 0 || cx >= FieldCols || cy >= FieldRows {
		return
	}
	s.screen.SetContent(cx, cy, r, nil, st)
}

func (s *Surface) Clear() {
	s.screen.Clear()
}

func (s *Surface) DrawTile(sprite game.Sprite, col, row int) {
	g, ok := tileGlyphs[sprite]
	if !ok {
		return
	}
	for i, r := range g.runes {
		s.set(col*cellsPerTile+i, row, r, g.style)
	}
}

// DrawSprite draws a tank as an arrow over both cells of the tile under its centre.
func (s *Surface) DrawSprite(sprite game.Sprite, cx, cy, angle float64) {
	st, ok := tankStyles[sprite]
	if !ok {
		return
	}
	col, row := int(math.Floor(cx/game.TileSize)), int(math.Floor(cy/game.TileSize))
	r := arrow(angle)
	s.set(col*cellsPerTile, row, r, st)
	s.set(col*cellsPerTile+1, row, r, st)
}

// arrow picks the glyph nearest to angle, with 0 pointing up.
func arrow(angle float64) rune {
	q := int(math.Round(angle/(math.Pi/2))) % 4
	if q < 0 {
		q += 4
	}
	return [4]rune{'▲', '▶', '▼', '◀'}[q]
}

// FillRect marks the cell under the rectangle's centre.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	cx, cy := cell(x+w/2, y+h/2)
	s.set(cx, cy, '•', tcell.StyleDefault.Foreground(tcellColor(c)).Bold(true))
}

// DrawText writes str starting at the cell containing (x, y-1), so a
// baseline just inside a tile lands on that tile's row.
func (s *Surface) DrawText(str string, x, y float64, c color.Color) {
	cx, cy := cell(x, y-1)
	st := tcell.StyleDefault.Foreground(tcellColor(c))
	i := 0
	for _, r := range str {
		s.set(cx+i, cy, r, st)
		i++
	}
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return tcell.ColorDefault
	}
	// Un-premultiply, then drop to 8 bits.
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
