package game

import (
	"testing"
	"time"
)

// quietWorld is an open field with the player parked out of the way and no
// automatic spawns.
func quietWorld(opts ...Option) *World {
	base := []Option{
		WithSeed(7),
		WithLayout(EmptyLayout()),
		WithPlayerTile(15, 15),
		WithoutInitialSpawn(),
		WithSpawnPoints(),
	}
	return NewWorld(append(base, opts...)...)
}

func TestEnemy_BlockedPatrolPicksOpenDirection(t *testing.T) {
	ts := NewTestSim(
		WithQuietField(),
		WithWorld(WithLayout(EmptyLayout()), WithPlayerTile(15, 15)),
		WithTile(1, 2, TileBrick),
		WithEnemy(1, 1, DirDown),
	)
	e := ts.World.Enemies()[0]

	ts.RunTicks(1)
	switch e.Facing {
	case DirUp, DirRight, DirLeft:
	default:
		t.Fatalf("blocked enemy turned %s, want one of up/right/left", e.Facing)
	}
	if e.Moving {
		t.Fatal("enemy should wait a tick after turning")
	}
	if col, row := e.Tile(); col != 1 || row != 1 {
		t.Fatalf("enemy left its tile on the turn tick: (%d,%d)", col, row)
	}

	ts.RunTicks(1)
	if !e.Moving {
		t.Fatal("enemy should roll along its new facing on the next tick")
	}
}

func TestEnemy_BoxedInStallsAndHoldsFire(t *testing.T) {
	w := quietWorld()
	for _, c := range [][2]int{{5, 4}, {6, 5}, {5, 6}, {4, 5}} {
		w.tiles.Set(c[0], c[1], TileSteel)
	}
	e := w.addEnemy(5, 5, DirDown)

	for i := 0; i < 5; i++ {
		w.Update()
	}
	if e.Facing != DirNone {
		t.Fatalf("boxed-in enemy facing %s, want none", e.Facing)
	}
	if w.enemyBullets.Len() != 0 {
		t.Fatalf("stalled enemy fired %d bullets", w.enemyBullets.Len())
	}

	// Opening a side lets it recover on the next idle tick.
	w.tiles.Clear(6, 5)
	w.Update()
	if e.Facing != DirRight {
		t.Fatalf("enemy facing %s after opening the right side, want right", e.Facing)
	}
}

func TestEnemy_FireGate(t *testing.T) {
	w := quietWorld()
	e := w.addEnemy(5, 5, DirRight)

	w.fireControl(e)
	if w.enemyBullets.Len() != 1 {
		t.Fatalf("fresh enemy should fire immediately, bullets=%d", w.enemyBullets.Len())
	}
	if e.MayFire {
		t.Fatal("gate should close after firing")
	}
	if e.FireDelay < EnemyFireDelayMin || e.FireDelay >= EnemyFireDelayMin+EnemyFireDelaySpan {
		t.Fatalf("fire delay %v out of range", e.FireDelay)
	}

	w.tick = 1000
	w.fireControl(e)
	if w.enemyBullets.Len() != 1 {
		t.Fatal("enemy must not fire while its bullet is in flight")
	}

	// Bullet gone: first observation only reopens the gate.
	w.enemyBullets.bullets = nil
	w.tick = 0
	w.fireControl(e)
	if !e.MayFire || w.enemyBullets.Len() != 0 {
		t.Fatal("gate should reopen without firing on the tick the bullet is seen gone")
	}

	w.fireControl(e)
	if w.enemyBullets.Len() != 0 {
		t.Fatal("enemy fired before its delay elapsed")
	}

	w.tick = int(e.FireDelay/TickDuration) + 1
	w.fireControl(e)
	if w.enemyBullets.Len() != 1 {
		t.Fatal("enemy should fire once the delay has elapsed")
	}
	if b := w.enemyBullets.bullets[0]; b.Owner != e.ID || b.DX != 1 || b.DY != 0 {
		t.Fatalf("bullet owner=%d dir=(%v,%v), want owner=%d dir=(1,0)", b.Owner, b.DX, b.DY, e.ID)
	}
}

func TestEnemy_FireDelayRange(t *testing.T) {
	w := quietWorld()
	lo, hi := time.Hour, time.Duration(0)
	for i := 0; i < 2000; i++ {
		d := w.nextFireDelay()
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	if lo < 1200*time.Millisecond || hi >= 2200*time.Millisecond {
		t.Fatalf("delays spanned [%v, %v], want within [1.2s, 2.2s)", lo, hi)
	}
}

func TestEnemy_SpawnSkipsOccupiedPoint(t *testing.T) {
	w := quietWorld(WithSpawnPoints([2]int{1, 1}, [2]int{3, 1}))
	w.addEnemy(1, 1, DirDown)

	if !w.spawnEnemy() {
		t.Fatal("spawn should succeed at the second point")
	}
	e := w.enemies[len(w.enemies)-1]
	if col, row := e.Tile(); col != 3 || row != 1 {
		t.Fatalf("spawned at (%d,%d), want (3,1)", col, row)
	}
	if e.Facing != DirDown {
		t.Fatalf("new enemy faces %s, want down", e.Facing)
	}
	if w.spawnEnemy() {
		t.Fatal("every point is occupied; spawn should fail")
	}
}

func TestEnemy_SpawnSkipsPointBeingEntered(t *testing.T) {
	w := quietWorld(WithSpawnPoints([2]int{1, 1}, [2]int{3, 1}))
	mover := w.addEnemy(1, 2, DirUp)
	if !mover.TryMove(DirUp, w.tiles) {
		t.Fatal("setup: move should start")
	}
	w.spawnEnemy()
	e := w.enemies[len(w.enemies)-1]
	if col, row := e.Tile(); col != 3 || row != 1 {
		t.Fatalf("spawned at (%d,%d), want (3,1) while (1,1) is being entered", col, row)
	}
}

func TestEnemy_PointFreesOnceEnemyLeaves(t *testing.T) {
	w := quietWorld()
	mover := w.addEnemy(1, 1, DirRight)
	if !mover.TryMove(DirRight, w.tiles) {
		t.Fatal("setup: move should start")
	}
	mover.Advance()
	if w.occupied(1, 1) {
		t.Fatalf("enemy at x=%v has left (1,1); point should be free", mover.X)
	}
	if !w.occupied(2, 1) {
		t.Fatal("tile being entered should count as occupied")
	}
}

func TestEnemy_SpawnSkipsWalls(t *testing.T) {
	w := quietWorld(WithSpawnPoints([2]int{1, 1}, [2]int{3, 1}))
	w.tiles.Set(1, 1, TileBrick)
	w.spawnEnemy()
	if len(w.enemies) != 1 {
		t.Fatalf("expected one enemy, got %d", len(w.enemies))
	}
	if col, _ := w.enemies[0].Tile(); col != 3 {
		t.Fatalf("spawned at col %d, want 3", col)
	}
}

func TestEnemy_InitialSpawnFillsPoints(t *testing.T) {
	w := NewWorld(WithSeed(1), WithLayout(EmptyLayout()), WithPlayerTile(15, 15))
	if n := w.livingEnemies(); n != EnemyOnScreen {
		t.Fatalf("initial spawn placed %d enemies, want %d", n, EnemyOnScreen)
	}
	for i, sp := range defaultSpawnPoints {
		col, row := w.enemies[i].Tile()
		if col != sp[0] || row != sp[1] {
			t.Fatalf("enemy %d at (%d,%d), want (%d,%d)", i, col, row, sp[0], sp[1])
		}
	}
}

func TestEnemy_DefaultMapSpawnsOnlyOnOpenPoints(t *testing.T) {
	w := NewWorld(WithSeed(1))
	for _, e := range w.enemies {
		col, row := e.Tile()
		if !w.tiles.IsPassable(col, row) {
			t.Fatalf("enemy spawned inside a wall at (%d,%d)", col, row)
		}
	}
	if w.Spawned() == 0 {
		t.Fatal("default map should spawn at least one enemy")
	}
}

func TestEnemy_PopulationCaps(t *testing.T) {
	w := NewWorld(
		WithSeed(3),
		WithLayout(EmptyLayout()),
		WithPlayerTile(15, 15),
		WithEnemyLimits(7, 5),
	)
	if w.livingEnemies() != 5 || w.Spawned() != 5 {
		t.Fatalf("start: living=%d spawned=%d, want 5/5", w.livingEnemies(), w.Spawned())
	}

	for _, e := range w.enemies {
		e.Alive = false
	}
	w.removeDeadEnemies()

	for i := 0; i < 5; i++ {
		w.Update()
		if w.livingEnemies() > 5 {
			t.Fatalf("tick %d: %d enemies on screen", w.Tick(), w.livingEnemies())
		}
	}
	if w.Spawned() != 7 {
		t.Fatalf("spawned=%d, want session quota of 7", w.Spawned())
	}
	if w.livingEnemies() != 2 {
		t.Fatalf("living=%d, want 2 after quota ran out", w.livingEnemies())
	}
}

func TestEnemy_MaintainSpawnsOnePerTick(t *testing.T) {
	w := NewWorld(WithSeed(3), WithLayout(EmptyLayout()), WithPlayerTile(15, 15), WithoutInitialSpawn())
	w.maintainSpawns()
	w.maintainSpawns()
	if w.Spawned() != 2 {
		t.Fatalf("two maintenance passes spawned %d, want 2", w.Spawned())
	}
}
