package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/tank-siege/internal/game"
)

// Key repeat, in ticks, mimicking OS keyboard auto-repeat.
const (
	repeatDelay    = 24
	repeatInterval = 4
)

type binding struct {
	cmd  game.Command
	keys []ebiten.Key
}

var bindings = []binding{
	{game.CmdUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{game.CmdDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{game.CmdLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{game.CmdRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{game.CmdFire, []ebiten.Key{ebiten.KeySpace}},
}

// repeats reports whether a key held for d ticks fires this tick: on the
// first tick, then every repeatInterval once repeatDelay has passed.
func repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// pollCommands returns the commands triggered this tick, in binding order.
// A command fires once per tick however many of its keys are down.
func pollCommands() []game.Command {
	var cmds []game.Command
	for _, b := range bindings {
		for _, k := range b.keys {
			if repeats(inpututil.KeyPressDuration(k)) {
				cmds = append(cmds, b.cmd)
				break
			}
		}
	}
	return cmds
}
