package game

import "time"

// Grid geometry. The canvas is square: MapSize tiles of TileSize pixels.
const (
	TileSize   = 32
	MapSize    = 20
	CanvasSize = TileSize * MapSize
)

// TicksPerSecond is the fixed simulation rate. Sim time is derived from the
// tick count, so a session replays identically for the same seed.
const TicksPerSecond = 60

// TickDuration is the sim time covered by one Update.
const TickDuration = time.Second / TicksPerSecond

// Actors.
const (
	ActorSpeed      = 0.5 // pixels per tick, player and enemies alike
	BrickDurability = 3
	BaseHealth      = 10
)

// Projectiles.
const (
	BulletSpeed      = 1.2 // pixels per tick
	BulletSize       = 8
	MaxPlayerBullets = 3
)

// Enemy population and fire control.
const (
	EnemyTotal    = 20 // spawns over a whole session
	EnemyOnScreen = 5  // living enemies at once

	EnemyFireDelayMin  = 1200 * time.Millisecond
	EnemyFireDelaySpan = 1000 * time.Millisecond
)

// ResultDelay is how long the end-of-game message waits after the terminal tick.
const ResultDelay = 10 * time.Millisecond

// resultDelayTicks is ResultDelay rounded up to whole ticks (at least one).
var resultDelayTicks = int((ResultDelay + TickDuration - 1) / TickDuration)
