package game

import "math"

// Direction is a cardinal facing. DirNone is the stalled facing of an enemy
// with nowhere to go.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
	directionCount // sentinel
)

// cardinals is the order in which the enemy AI samples alternatives.
var cardinals = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// directionTable is the single source of truth for a facing's motion vector
// and sprite rotation. Sprites are authored pointing up.
var directionTable = [directionCount]struct {
	dx, dy int
	angle  float64
	name   string
}{
	DirNone:  {0, 0, 0, "none"},
	DirUp:    {0, -1, 0, "up"},
	DirRight: {1, 0, math.Pi / 2, "right"},
	DirDown:  {0, 1, math.Pi, "down"},
	DirLeft:  {-1, 0, -math.Pi / 2, "left"},
}

// Vector returns the unit grid step for d.
func (d Direction) Vector() (dx, dy int) {
	if d >= directionCount {
		return 0, 0
	}
	e := directionTable[d]
	return e.dx, e.dy
}

// Angle returns the sprite rotation in radians for d.
func (d Direction) Angle() float64 {
	if d >= directionCount {
		return 0
	}
	return directionTable[d].angle
}

func (d Direction) String() string {
	if d >= directionCount {
		return "unknown"
	}
	return directionTable[d].name
}
