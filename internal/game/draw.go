package game

import (
	"image/color"
	"strconv"
)

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// Sprite names one of the six images the renderer must have loaded before
// the first tick.
type Sprite int

const (
	SpritePlayer Sprite = iota
	SpriteBrick
	SpriteSteel
	SpriteEnemy
	SpritePlayerBase
	SpriteEnemyBase
	SpriteCount // sentinel
)

var spriteNames = [SpriteCount]string{
	SpritePlayer:     "player",
	SpriteBrick:      "brick",
	SpriteSteel:      "steel",
	SpriteEnemy:      "enemy",
	SpritePlayerBase: "playerBase",
	SpriteEnemyBase:  "enemyBase",
}

func (s Sprite) String() string {
	if s < 0 || s >= SpriteCount {
		return "unknown"
	}
	return spriteNames[s]
}

// Surface accepts the draw commands issued each frame. Coordinates are canvas
// pixels on a CanvasSize×CanvasSize square.
type Surface interface {
	Clear()
	DrawTile(sprite Sprite, col, row int)
	DrawSprite(sprite Sprite, cx, cy, angle float64)
	FillRect(x, y, w, h float64, c color.Color)
	DrawText(text string, x, y float64, c color.Color)
}

var (
	playerBulletColor = color.RGBA{R: 255, G: 255, A: 255}
	enemyBulletColor  = color.RGBA{R: 255, A: 255}
	durabilityColor   = color.NRGBA{R: 255, A: 128}
	baseLabelColor    = color.Black
)

// tileSprites maps drawable tiles to their sprite.
var tileSprites = map[Tile]Sprite{
	TileBrick:      SpriteBrick,
	TileSteel:      SpriteSteel,
	TilePlayerBase: SpritePlayerBase,
	TileEnemyBase:  SpriteEnemyBase,
}

// Draw renders the current state: map, player, enemies, then both bullet
// lists.
func (w *World) Draw(s Surface) {
	s.Clear()
	w.drawMap(s)

	cx, cy := w.player.Center()
	s.DrawSprite(SpritePlayer, cx, cy, w.player.Facing.Angle())
	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}
		cx, cy := e.Center()
		s.DrawSprite(SpriteEnemy, cx, cy, e.Facing.Angle())
	}

	for _, b := range w.playerBullets.bullets {
		s.FillRect(b.X, b.Y, BulletSize, BulletSize, playerBulletColor)
	}
	for _, b := range w.enemyBullets.bullets {
		s.FillRect(b.X, b.Y, BulletSize, BulletSize, enemyBulletColor)
	}
}

func (w *World) drawMap(s Surface) {
	for row := 0; row < w.tiles.Rows; row++ {
		for col := 0; col < w.tiles.Cols; col++ {
			t := w.tiles.TileAt(col, row)
			sprite, ok := tileSprites[t]
			if !ok {
				continue
			}
			s.DrawTile(sprite, col, row)
			x := float64(col * TileSize)
			y := float64(row * TileSize)
			switch t {
			case TileBrick:
				if d := w.tiles.DurabilityAt(col, row); d > 0 && d < BrickDurability {
					s.DrawText(strconv.Itoa(d), x+10, y+22, durabilityColor)
				}
			case TilePlayerBase:
				s.DrawText(baseLabel(w.session.PlayerBaseHealth), x+2, labelY(y), baseLabelColor)
			case TileEnemyBase:
				s.DrawText(baseLabel(w.session.EnemyBaseHealth), x+2, labelY(y), baseLabelColor)
			}
		}
	}
}

func baseLabel(health int) string {
	return "HP: " + strconv.Itoa(health)
}

// labelY puts a base's label just above the tile, or just below it on the
// top row where there is no room.
func labelY(tileY float64) float64 {
	if tileY < TileSize {
		return tileY + TileSize + 12
	}
	return tileY - 4
}
