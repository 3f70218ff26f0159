package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/tank-siege/internal/game"
)

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite).Bold(true)
)

// banner is the terminal's ResultDisplay: a highlighted line under the field.
type banner struct {
	text string
}

func (b *banner) ShowResult(result game.Result, elapsedSeconds float64) {
	b.text = fmt.Sprintf(" %s Time: %.2fs  (q to quit) ", result, elapsedSeconds)
}

// Runner owns one terminal session.
type Runner struct {
	screen  tcell.Screen
	world   *game.World
	surface *Surface
	banner  *banner
	log     logrus.FieldLogger
}

// NewRunner builds a session on screen. The screen must already be Init'ed.
func NewRunner(screen tcell.Screen, seed int64, log logrus.FieldLogger) *Runner {
	b := &banner{}
	return &Runner{
		screen:  screen,
		surface: NewSurface(screen),
		banner:  b,
		log:     log,
		world: game.NewWorld(
			game.WithSeed(seed),
			game.WithDisplay(b),
			game.WithLogger(log),
		),
	}
}

// World returns the session being played.
func (r *Runner) World() *game.World { return r.world }

// commandForKey maps a key press to a game command.
func commandForKey(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.CmdUp, true
	case tcell.KeyDown:
		return game.CmdDown, true
	case tcell.KeyLeft:
		return game.CmdLeft, true
	case tcell.KeyRight:
		return game.CmdRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.CmdUp, true
		case 's', 'S':
			return game.CmdDown, true
		case 'a', 'A':
			return game.CmdLeft, true
		case 'd', 'D':
			return game.CmdRight, true
		case ' ':
			return game.CmdFire, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// handle applies one event. It returns false when the player quits.
func (r *Runner) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if cmd, ok := commandForKey(ev); ok {
			r.world.Apply(cmd)
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

// Step advances one tick and redraws.
func (r *Runner) Step() {
	r.world.Update()
	r.draw()
}

func (r *Runner) draw() {
	r.world.Draw(r.surface)
	status := fmt.Sprintf("%s  kills %d  base %d  enemy base %d",
		game.FormatClock(r.world.Elapsed()),
		r.world.Stats().Kills,
		r.world.Session().PlayerBaseHealth,
		r.world.Session().EnemyBaseHealth)
	putString(r.screen, 0, FieldRows, status, statusStyle)
	if r.banner.text != "" {
		putString(r.screen, 0, FieldRows+1, r.banner.text, bannerStyle)
	}
	r.screen.Show()
}

func putString(s tcell.Screen, x, y int, str string, st tcell.Style) {
	for _, c := range str {
		s.SetContent(x, y, c, nil, st)
		x++
	}
}

// Run plays until ctx is cancelled or the player quits. Input is read on a
// separate goroutine; every World call happens on this one.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(game.TickDuration)
	defer ticker.Stop()

	r.log.Info("terminal session started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !r.handle(ev) {
				return nil
			}
		case <-ticker.C:
			r.Step()
		}
	}
}
