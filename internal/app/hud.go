package app

import (
	"fmt"
	"image"

	"github.com/Garsondee/tank-siege/internal/game"
)

func screenRect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// statusLine summarises the session for the HUD strip.
func statusLine(st game.Stats) string {
	return fmt.Sprintf("kills %d/%d  base %d  enemy base %d",
		st.Kills, game.EnemyTotal, st.PlayerBaseHealth, st.EnemyBaseHealth)
}
