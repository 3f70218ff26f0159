package game

import (
	"fmt"
	"time"
)

// Enemy is an AI-driven tank.
type Enemy struct {
	Actor
	ID        int
	Alive     bool
	LastShot  time.Duration // sim time of the last shot
	FireDelay time.Duration // minimum gap before the next shot
	MayFire   bool          // closed while a bullet this enemy fired is in flight
	hasFired  bool
}

func (e *Enemy) label() string {
	return fmt.Sprintf("E%d", e.ID)
}

// defaultSpawnPoints are tried in order on every spawn attempt.
var defaultSpawnPoints = [][2]int{
	{1, 1},
	{MapSize - 2, 1},
	{MapSize / 2, 1},
	{3, 1},
	{MapSize - 4, 1},
}

// updateEnemies runs patrol AI, motion and fire control for every living enemy.
func (w *World) updateEnemies() {
	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}
		if e.Moving {
			e.Advance()
		} else {
			w.patrol(e)
		}
		w.fireControl(e)
	}
}

// patrol keeps an idle enemy rolling along its facing. When blocked it picks
// a random open direction and waits a tick before moving; with no open
// direction it stalls and re-checks on every following idle tick.
func (w *World) patrol(e *Enemy) {
	if e.TryMove(e.Facing, w.tiles) {
		return
	}
	col, row := e.Tile()
	open := make([]Direction, 0, len(cardinals))
	for _, d := range cardinals {
		dx, dy := d.Vector()
		if w.tiles.IsPassable(col+dx, row+dy) {
			open = append(open, d)
		}
	}
	prev := e.Facing
	if len(open) == 0 {
		e.Facing = DirNone
	} else {
		e.Facing = open[w.rng.Intn(len(open))]
	}
	if e.Facing != prev {
		w.logVerbose(e.label(), "ai", "turn", prev.String()+" → "+e.Facing.String(), 0)
	}
}

// fireControl shoots along the enemy's facing when it has no bullet in
// flight and its fire delay has passed. The gate reopens on the tick after
// its last bullet is observed gone.
func (w *World) fireControl(e *Enemy) {
	if w.enemyBullets.HasOwner(e.ID) {
		return
	}
	if !e.MayFire {
		e.MayFire = true
		return
	}
	now := w.now()
	if e.hasFired && now-e.LastShot < e.FireDelay {
		return
	}
	if e.Facing == DirNone {
		return
	}
	cx, cy := e.Center()
	w.enemyBullets.Fire(cx, cy, e.Facing, e.ID)
	e.LastShot = now
	e.hasFired = true
	e.FireDelay = w.nextFireDelay()
	e.MayFire = false
	w.logVerbose(e.label(), "combat", "fire", e.Facing.String(), 0)
}

// nextFireDelay draws uniformly from [EnemyFireDelayMin, EnemyFireDelayMin+EnemyFireDelaySpan).
func (w *World) nextFireDelay() time.Duration {
	return EnemyFireDelayMin + time.Duration(w.rng.Int63n(int64(EnemyFireDelaySpan)))
}

// livingEnemies counts enemies still on the field.
func (w *World) livingEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// occupied reports whether a living enemy rests on or is moving into (col, row).
func (w *World) occupied(col, row int) bool {
	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}
		ec, er := e.Tile()
		if ec == col && er == row {
			return true
		}
		if e.X == float64(col*TileSize) && e.Y == float64(row*TileSize) {
			return true
		}
	}
	return false
}

// spawnEnemy places one enemy on the first free spawn point. It reports
// false when the session quota is spent or every point is blocked.
func (w *World) spawnEnemy() bool {
	if w.spawned >= w.enemyTotal {
		return false
	}
	for _, sp := range w.spawnPoints {
		col, row := sp[0], sp[1]
		if !w.tiles.IsPassable(col, row) || w.occupied(col, row) {
			continue
		}
		e := w.addEnemy(col, row, DirDown)
		w.logEvent(e.label(), "spawn", "enemy", formatTile(col, row), float64(w.spawned))
		w.log.WithField("enemy", e.ID).Debug("enemy spawned")
		return true
	}
	return false
}

// addEnemy puts a fresh enemy on (col, row). It is eligible to fire at once.
func (w *World) addEnemy(col, row int, facing Direction) *Enemy {
	w.nextID++
	e := &Enemy{
		Actor:   newActorAt(col, row, facing),
		ID:      w.nextID,
		Alive:   true,
		MayFire: true,
	}
	w.enemies = append(w.enemies, e)
	w.spawned++
	return e
}

// initialSpawn pre-fills the field with one attempt per spawn point.
func (w *World) initialSpawn() {
	for range w.spawnPoints {
		if w.spawned >= w.enemyTotal || w.livingEnemies() >= w.enemyOnScreen {
			return
		}
		w.spawnEnemy()
	}
}

// maintainSpawns tops up the field by at most one enemy per tick.
func (w *World) maintainSpawns() {
	if w.livingEnemies() < w.enemyOnScreen && w.spawned < w.enemyTotal {
		w.spawnEnemy()
	}
}
