package game

import "math"

// Actor is a tank that moves tile to tile. It is either at rest on a
// tile-aligned position (target == position) or sliding linearly toward a
// tile-aligned target one tile away.
type Actor struct {
	X, Y             float64 // top-left, pixels
	TargetX, TargetY float64 // destination, pixels
	Moving           bool
	Facing           Direction
	Speed            float64 // pixels per tick
}

// newActorAt places a resting actor on (col, row).
func newActorAt(col, row int, facing Direction) Actor {
	x := float64(col * TileSize)
	y := float64(row * TileSize)
	return Actor{
		X:       x,
		Y:       y,
		TargetX: x,
		TargetY: y,
		Facing:  facing,
		Speed:   ActorSpeed,
	}
}

// Tile returns the grid cell the actor is resting on or heading to.
func (a *Actor) Tile() (col, row int) {
	return int(a.TargetX) / TileSize, int(a.TargetY) / TileSize
}

// Center returns the pixel centre of the actor's body.
func (a *Actor) Center() (cx, cy float64) {
	return a.X + TileSize/2, a.Y + TileSize/2
}

func (a *Actor) bounds() box {
	return box{x: a.X, y: a.Y, w: TileSize, h: TileSize}
}

// TryMove starts a one-tile move along dir. It is ignored while the actor is
// already moving, for DirNone, and when the destination is not passable.
func (a *Actor) TryMove(dir Direction, m *TileMap) bool {
	if a.Moving || dir == DirNone {
		return false
	}
	dx, dy := dir.Vector()
	col, row := a.Tile()
	col += dx
	row += dy
	if !m.IsPassable(col, row) {
		return false
	}
	a.TargetX = float64(col * TileSize)
	a.TargetY = float64(row * TileSize)
	a.Moving = true
	return true
}

// Advance moves a transiting actor one step toward its target, snapping onto
// it once the remaining distance is shorter than one step.
func (a *Actor) Advance() {
	if !a.Moving {
		return
	}
	dx := a.TargetX - a.X
	dy := a.TargetY - a.Y
	if math.Hypot(dx, dy) < a.Speed {
		a.X = a.TargetX
		a.Y = a.TargetY
		a.Moving = false
		return
	}
	a.X += a.Speed * sign(dx)
	a.Y += a.Speed * sign(dy)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
