package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded simulation event.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "P", "E3", a projectile system name, or "--" for session events
	Category string  // session, spawn, combat, base, map, ai
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0412] E3   combat    enemy_destroyed  (3,7)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-6s %-9s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects machine-readable events for tests and headless reports.
// Verbose entries (turns, individual shots) are only kept when asked for.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching category and key; empty matches anything.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many entries match category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// FirstTick returns the tick of the earliest matching entry, or -1.
func (sl *SimLog) FirstTick(category, key string) int {
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// HasEntry returns true if an entry matches category, key and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log, one entry per line, for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable digest of a world's state.
func (sl *SimLog) Summary(w *World) string {
	var sb strings.Builder
	st := w.Stats()
	fmt.Fprintf(&sb, "--- Summary at T=%04d (%s) ---\n", st.Ticks, FormatClock(st.Elapsed))
	fmt.Fprintf(&sb, "Bases: player=%d  enemy=%d\n", st.PlayerBaseHealth, st.EnemyBaseHealth)
	fmt.Fprintf(&sb, "Enemies: alive=%d  spawned=%d  destroyed=%d\n", w.livingEnemies(), st.Spawned, st.Kills)
	fmt.Fprintf(&sb, "Bullets: player=%d  enemy=%d\n", w.playerBullets.Len(), w.enemyBullets.Len())
	fmt.Fprintf(&sb, "Bricks destroyed: %d  contacts: %d\n", st.BricksDestroyed, st.Contacts)
	if st.Result != ResultNone {
		fmt.Fprintf(&sb, "Result: %s\n", st.Result)
	}
	return sb.String()
}
