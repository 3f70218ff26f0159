package app

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // sprite files are PNG
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/tank-siege/internal/game"
)

// spriteFiles names the file each sprite is read from.
var spriteFiles = [game.SpriteCount]string{
	game.SpritePlayer:     "tank.png",
	game.SpriteBrick:      "wall-1.png",
	game.SpriteSteel:      "wall-2.png",
	game.SpriteEnemy:      "enemy-1.png",
	game.SpritePlayerBase: "player-base.png",
	game.SpriteEnemyBase:  "enemy-base.png",
}

// Assets decodes the sprite set in the background. Ready is closed once
// every sprite is decoded or one has failed; Err reports which.
type Assets struct {
	ready  chan struct{}
	raw    [game.SpriteCount]image.Image
	err    error
	images [game.SpriteCount]*ebiten.Image
}

// LoadAssets starts decoding sprites from fsys. A nil fsys selects the
// built-in placeholder set.
func LoadAssets(fsys fs.FS, log logrus.FieldLogger) *Assets {
	a := &Assets{ready: make(chan struct{})}
	go func() {
		defer close(a.ready)
		if fsys == nil {
			a.raw = placeholderSprites()
			log.Debug("using placeholder sprites")
			return
		}
		a.raw, a.err = decodeSprites(fsys)
		if a.err != nil {
			log.WithError(a.err).Error("sprite load failed")
			return
		}
		log.WithField("count", len(a.raw)).Info("sprites loaded")
	}()
	return a
}

// Ready is the asset-ready signal.
func (a *Assets) Ready() <-chan struct{} { return a.ready }

// Err returns the load error. Only meaningful after Ready is closed.
func (a *Assets) Err() error { return a.err }

// Image returns the GPU image for s, uploading it on first use. Call it
// only from the game goroutine after Ready.
func (a *Assets) Image(s game.Sprite) *ebiten.Image {
	if a.images[s] == nil && a.raw[s] != nil {
		a.images[s] = ebiten.NewImageFromImage(a.raw[s])
	}
	return a.images[s]
}

// decodeSprites reads and scales all sprite files concurrently.
func decodeSprites(fsys fs.FS) ([game.SpriteCount]image.Image, error) {
	var out [game.SpriteCount]image.Image
	var g errgroup.Group
	for i, name := range spriteFiles {
		g.Go(func() error {
			img, err := decodeSprite(fsys, name)
			if err != nil {
				return fmt.Errorf("sprite %s: %w", game.Sprite(i), err)
			}
			out[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}

func decodeSprite(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return fitTile(src), nil
}

// fitTile scales src to one tile.
func fitTile(src image.Image) image.Image {
	if src.Bounds().Dx() == game.TileSize && src.Bounds().Dy() == game.TileSize {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, game.TileSize, game.TileSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// placeholderSprites draws a flat-colour stand-in for every sprite, so the
// game runs without an asset directory. Tanks point up.
func placeholderSprites() [game.SpriteCount]image.Image {
	var out [game.SpriteCount]image.Image
	out[game.SpritePlayer] = tankSprite(color.RGBA{R: 214, G: 180, B: 40, A: 255})
	out[game.SpriteEnemy] = tankSprite(color.RGBA{R: 150, G: 156, B: 160, A: 255})
	out[game.SpriteBrick] = brickSprite()
	out[game.SpriteSteel] = blockSprite(color.RGBA{R: 120, G: 124, B: 130, A: 255}, color.RGBA{R: 200, G: 204, B: 210, A: 255})
	out[game.SpritePlayerBase] = blockSprite(color.RGBA{R: 40, G: 90, B: 200, A: 255}, color.RGBA{R: 230, G: 230, B: 255, A: 255})
	out[game.SpriteEnemyBase] = blockSprite(color.RGBA{R: 170, G: 30, B: 30, A: 255}, color.RGBA{R: 255, G: 220, B: 220, A: 255})
	return out
}

func newTile() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, game.TileSize, game.TileSize))
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func tankSprite(body color.Color) image.Image {
	img := newTile()
	tread := color.RGBA{R: 40, G: 40, B: 40, A: 255}
	fill(img, image.Rect(3, 6, 9, 30), tread)
	fill(img, image.Rect(23, 6, 29, 30), tread)
	fill(img, image.Rect(9, 9, 23, 27), body)
	fill(img, image.Rect(14, 1, 18, 16), tread) // barrel
	return img
}

func brickSprite() image.Image {
	img := newTile()
	mortar := color.RGBA{R: 90, G: 60, B: 40, A: 255}
	brick := color.RGBA{R: 178, G: 84, B: 36, A: 255}
	fill(img, img.Bounds(), mortar)
	for row := 0; row < 4; row++ {
		y := row * 8
		off := (row % 2) * 8
		for x := -off; x < game.TileSize; x += 16 {
			fill(img, image.Rect(x+1, y+1, x+15, y+7).Intersect(img.Bounds()), brick)
		}
	}
	return img
}

func blockSprite(body, edge color.Color) image.Image {
	img := newTile()
	fill(img, img.Bounds(), edge)
	fill(img, image.Rect(3, 3, game.TileSize-3, game.TileSize-3), body)
	return img
}
