package game

import "github.com/sirupsen/logrus"

// Projectile is a bullet in flight. Owner is the firing enemy's ID, or 0 for
// player bullets; it is only ever used as a lookup key.
type Projectile struct {
	X, Y   float64 // top-left, pixels
	DX, DY float64 // unit direction
	Active bool
	Owner  int
}

func (p *Projectile) center() (cx, cy float64) {
	return p.X + BulletSize/2, p.Y + BulletSize/2
}

func (p *Projectile) bounds() box {
	return box{x: p.X, y: p.Y, w: BulletSize, h: BulletSize}
}

// baseTarget is a base tile a projectile system damages, and the outcome if
// that base falls.
type baseTarget struct {
	tile   Tile
	side   Side
	result Result
}

// ProjectileSystem owns one side's bullets. Player and enemy bullets run the
// same pipeline with different base targets, caps and player collision.
type ProjectileSystem struct {
	name       string
	bullets    []Projectile
	targets    []baseTarget
	limit      int // 0 = no cap
	hitsPlayer bool
}

// newPlayerProjectiles builds the player's system: capped, hits the enemy
// base and, as friendly fire, the player's own base.
func newPlayerProjectiles() *ProjectileSystem {
	return &ProjectileSystem{
		name:  "player",
		limit: MaxPlayerBullets,
		targets: []baseTarget{
			{tile: TileEnemyBase, side: SideEnemy, result: ResultWin},
			{tile: TilePlayerBase, side: SidePlayer, result: ResultLose},
		},
	}
}

// newEnemyProjectiles builds the enemies' system: uncapped, hits the player's
// base and the player tank. Enemy bullets pass over their own base.
func newEnemyProjectiles() *ProjectileSystem {
	return &ProjectileSystem{
		name: "enemy",
		targets: []baseTarget{
			{tile: TilePlayerBase, side: SidePlayer, result: ResultLose},
		},
		hitsPlayer: true,
	}
}

// Fire launches a bullet centred on (cx, cy) along dir. It is dropped when
// the system is at its cap.
func (ps *ProjectileSystem) Fire(cx, cy float64, dir Direction, owner int) bool {
	if ps.limit > 0 && len(ps.bullets) >= ps.limit {
		return false
	}
	dx, dy := dir.Vector()
	ps.bullets = append(ps.bullets, Projectile{
		X:      cx - BulletSize/2,
		Y:      cy - BulletSize/2,
		DX:     float64(dx),
		DY:     float64(dy),
		Active: true,
		Owner:  owner,
	})
	return true
}

// HasOwner reports whether enemy id has a bullet in flight.
func (ps *ProjectileSystem) HasOwner(id int) bool {
	for i := range ps.bullets {
		if ps.bullets[i].Active && ps.bullets[i].Owner == id {
			return true
		}
	}
	return false
}

// Bullets returns the live bullets. The slice is only valid until the next tick.
func (ps *ProjectileSystem) Bullets() []Projectile { return ps.bullets }

// Len returns the number of live bullets.
func (ps *ProjectileSystem) Len() int { return len(ps.bullets) }

func (ps *ProjectileSystem) target(t Tile) (baseTarget, bool) {
	for _, bt := range ps.targets {
		if bt.tile == t {
			return bt, true
		}
	}
	return baseTarget{}, false
}

// compact drops spent bullets, keeping the survivors in order.
func (ps *ProjectileSystem) compact() {
	kept := ps.bullets[:0]
	for _, b := range ps.bullets {
		if b.Active {
			kept = append(kept, b)
		}
	}
	ps.bullets = kept
}

// advanceProjectiles moves every bullet in ps one step and resolves what it
// hit. Each bullet is resolved at most once per tick.
func (w *World) advanceProjectiles(ps *ProjectileSystem) {
	for i := range ps.bullets {
		b := &ps.bullets[i]
		if !b.Active {
			continue
		}
		b.X += b.DX * BulletSpeed
		b.Y += b.DY * BulletSpeed
		b.Active = w.resolveProjectile(ps, b)
	}
	ps.compact()
}

// resolveProjectile applies the first collision rule that matches and
// reports whether the bullet survives. Rule order: leaving the field,
// brick, steel, a targeted base, then (enemy bullets) the player tank.
func (w *World) resolveProjectile(ps *ProjectileSystem, b *Projectile) bool {
	if b.X < 0 || b.X > CanvasSize-BulletSize || b.Y < 0 || b.Y > CanvasSize-BulletSize {
		return false
	}
	col, row := tileAtPixel(b.center())
	switch t := w.tiles.TileAt(col, row); t {
	case TileBrick:
		if w.tiles.DamageBrick(col, row) {
			w.bricksDestroyed++
			w.logEvent(ps.name, "map", "brick_destroyed", formatTile(col, row), 0)
		}
		return false
	case TileSteel:
		return false
	case TilePlayerBase, TileEnemyBase:
		if bt, ok := ps.target(t); ok {
			w.hitBase(bt, col, row, ps.name)
			return false
		}
	}
	if ps.hitsPlayer && b.bounds().overlaps(w.player.bounds()) {
		w.logEvent(ps.name, "combat", "player_hit", formatTile(w.player.Tile()), float64(b.Owner))
		w.endSession(ResultLose, "player_hit")
		return false
	}
	return true
}

// hitBase knocks a point off the targeted base. When it falls, the tile is
// cleared and the session ends in the attacker's favour.
func (w *World) hitBase(bt baseTarget, col, row int, shooter string) {
	left := w.session.HitBase(bt.side)
	w.logEvent(shooter, "base", bt.side.String()+"_hit", formatTile(col, row), float64(left))
	w.log.WithFields(logrus.Fields{
		"base":   bt.side.String(),
		"health": left,
	}).Debug("base hit")
	if left > 0 || w.session.Terminal() {
		return
	}
	w.tiles.Clear(col, row)
	w.endSession(bt.result, bt.side.String()+"_base_destroyed")
}
