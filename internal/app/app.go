// Package app is the windowed frontend: it feeds keyboard input into a
// game.World, ticks it at the fixed rate and renders it with ebiten.
package app

import (
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/tank-siege/internal/game"
)

// HUDHeight is the strip under the battlefield that holds the timer.
const HUDHeight = 24

var (
	hudBackground = color.RGBA{R: 32, G: 32, B: 36, A: 255}
	hudTextColor  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// App implements ebiten.Game. The session starts on the first Update after
// the sprites are ready.
type App struct {
	assets *Assets
	world  *game.World
	popup  *Popup
	log    logrus.FieldLogger
	seed   int64
}

// New starts loading sprites from fsys (nil for placeholders) and returns
// an App ready for ebiten.RunGame.
func New(fsys fs.FS, seed int64, log logrus.FieldLogger) *App {
	return &App{
		assets: LoadAssets(fsys, log),
		popup:  newPopup(log),
		log:    log,
		seed:   seed,
	}
}

// Update runs one tick. Returning an error stops the loop.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if a.world == nil {
		select {
		case <-a.assets.Ready():
		default:
			return nil
		}
		if err := a.assets.Err(); err != nil {
			return err
		}
		a.world = game.NewWorld(
			game.WithSeed(a.seed),
			game.WithDisplay(a.popup),
			game.WithLogger(a.log),
		)
	}

	if a.world.Running() {
		for _, cmd := range pollCommands() {
			a.world.Apply(cmd)
		}
	}
	a.world.Update()

	if a.popup.Visible() && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.popup.Copy()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.world == nil {
		screen.Fill(backgroundColor)
		ebitenutil.DebugPrintAt(screen, "loading sprites...", 8, 8)
		return
	}

	field := screen.SubImage(screenRect(0, 0, game.CanvasSize, game.CanvasSize)).(*ebiten.Image)
	a.world.Draw(&screenSurface{dst: field, assets: a.assets})

	hud := screen.SubImage(screenRect(0, game.CanvasSize, game.CanvasSize, HUDHeight)).(*ebiten.Image)
	hud.Fill(hudBackground)
	clock := game.FormatClock(a.world.Elapsed())
	drawText(screen, clock, 8, game.CanvasSize+17, hudTextColor)
	st := a.world.Stats()
	status := statusLine(st)
	drawText(screen, status, game.CanvasSize-8-textWidth(status), game.CanvasSize+17, hudTextColor)

	a.popup.Draw(field)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.CanvasSize, game.CanvasSize + HUDHeight
}
