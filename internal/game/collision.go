package game

// box is an axis-aligned rectangle in pixels.
type box struct {
	x, y, w, h float64
}

// overlaps is a strict AABB test; touching edges do not count.
func (a box) overlaps(b box) bool {
	return a.x < b.x+b.w &&
		a.x+a.w > b.x &&
		a.y < b.y+b.h &&
		a.y+a.h > b.y
}

// resolveBulletHits kills each living enemy struck by a player bullet. An
// enemy takes at most one bullet per tick, scanning the newest bullet first.
// Dead enemies are dropped from the list.
func (w *World) resolveBulletHits() {
	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}
		eb := e.bounds()
		for i := len(w.playerBullets.bullets) - 1; i >= 0; i-- {
			b := &w.playerBullets.bullets[i]
			if !b.Active || !b.bounds().overlaps(eb) {
				continue
			}
			e.Alive = false
			b.Active = false
			w.kills++
			col, row := e.Tile()
			w.logEvent(e.label(), "combat", "enemy_destroyed", formatTile(col, row), float64(e.ID))
			w.log.WithField("enemy", e.ID).Debug("enemy destroyed")
			break
		}
	}
	w.playerBullets.compact()
	w.removeDeadEnemies()
}

// detectContacts reports player/enemy body overlap. Contact has no gameplay
// consequence; it is only recorded.
func (w *World) detectContacts() {
	pb := w.player.bounds()
	for _, e := range w.enemies {
		if !e.Alive || !e.bounds().overlaps(pb) {
			continue
		}
		w.contacts++
		w.logEvent(e.label(), "combat", "contact", "player", float64(e.ID))
		w.log.WithField("enemy", e.ID).Debug("player/enemy contact")
	}
}

func (w *World) removeDeadEnemies() {
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if e.Alive {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.enemies); i++ {
		w.enemies[i] = nil
	}
	w.enemies = kept
}
