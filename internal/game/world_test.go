package game

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestWorld_PlayerStartsAboveBase(t *testing.T) {
	w := NewWorld(WithSeed(1))
	col, row := w.Player().Tile()
	if col != 9 || row != 18 {
		t.Fatalf("player on (%d,%d), want (9,18)", col, row)
	}
	if got := w.Map().TileAt(9, 18); got != TileSteel {
		t.Fatalf("start tile is %s, want the layout's steel kept", got)
	}
	if w.Player().Facing != DirUp {
		t.Fatalf("player faces %s, want up", w.Player().Facing)
	}
	if !w.Running() {
		t.Fatal("new world should be running")
	}
}

func TestWorld_PlayerDrivesOffSteelStart(t *testing.T) {
	w := NewWorld(WithSeed(1), WithoutInitialSpawn(), WithSpawnPoints())
	w.Apply(CmdUp)
	if !w.player.Moving {
		t.Fatal("player should be able to leave the steel start tile")
	}
	for i := 0; i < 200 && w.player.Moving; i++ {
		w.Update()
	}
	if col, row := w.Player().Tile(); col != 9 || row != 17 {
		t.Fatalf("player on (%d,%d), want (9,17)", col, row)
	}
	if w.Map().TileAt(9, 18) != TileSteel {
		t.Fatal("steel in front of the base should still be there")
	}
}

func TestWorld_SteelAboveBaseStopsFire(t *testing.T) {
	w := NewWorld(WithSeed(1), WithPlayerTile(3, 18), WithoutInitialSpawn(), WithSpawnPoints())
	w.EnemyBullets().Fire(9*TileSize+TileSize/2, 16*TileSize+TileSize/2, DirDown, 1)
	for i := 0; i < 200; i++ {
		w.Update()
	}
	if w.EnemyBullets().Len() != 0 {
		t.Fatal("bullet should have been absorbed")
	}
	if w.Session().PlayerBaseHealth != BaseHealth {
		t.Fatalf("player base health=%d, want %d behind the steel", w.Session().PlayerBaseHealth, BaseHealth)
	}
}

func TestWorld_DefaultLoggerShared(t *testing.T) {
	a, b := NewWorld(WithSeed(1)), NewWorld(WithSeed(2))
	ea, ok := a.log.(*logrus.Entry)
	if !ok {
		t.Fatalf("log is %T, want *logrus.Entry", a.log)
	}
	eb := b.log.(*logrus.Entry)
	if ea.Logger != discardLog || eb.Logger != discardLog {
		t.Fatal("worlds without WithLogger should share the discard logger")
	}
}

func TestWorld_ApplyTurnsEvenWhenBlocked(t *testing.T) {
	w := quietWorld()
	w.tiles.Set(16, 15, TileSteel)
	w.Apply(CmdRight)
	if w.player.Moving {
		t.Fatal("move into steel should be rejected")
	}
	if w.player.Facing != DirRight {
		t.Fatalf("player should still turn right, faces %s", w.player.Facing)
	}
}

func TestWorld_ApplyMovesPlayer(t *testing.T) {
	w := quietWorld()
	w.Apply(CmdUp)
	if !w.player.Moving {
		t.Fatal("player should start moving")
	}
	for i := 0; i < 80; i++ {
		w.Update()
	}
	if col, row := w.player.Tile(); col != 15 || row != 14 || w.player.Moving {
		t.Fatalf("player at (%d,%d) moving=%v, want rest on (15,14)", col, row, w.player.Moving)
	}
}

func TestWorld_InputIgnoredAfterEnd(t *testing.T) {
	w := quietWorld()
	w.endSession(ResultLose, "test")
	w.Apply(CmdFire)
	w.Apply(CmdLeft)
	if w.playerBullets.Len() != 0 {
		t.Fatal("fire after termination should be ignored")
	}
	if w.player.Facing != DirUp || w.player.Moving {
		t.Fatal("movement after termination should be ignored")
	}
}

func TestWorld_TerminationIsOneWay(t *testing.T) {
	ts := NewTestSim(WithQuietField(), WithWorld(WithLayout(EmptyLayout()), WithPlayerTile(15, 15)))
	w := ts.World
	ts.RunTicks(30)

	w.endSession(ResultWin, "first")
	w.endSession(ResultLose, "second")
	if w.Session().Result() != ResultWin || w.EndReason() != "first" {
		t.Fatalf("result=%v reason=%q, want first call to win", w.Session().Result(), w.EndReason())
	}
	if n := ts.SimLog.CountCategory("session", "end"); n != 1 {
		t.Fatalf("session end logged %d times", n)
	}

	tick, elapsed := w.Tick(), w.Elapsed()
	ts.RunTicks(120)
	if w.Tick() != tick {
		t.Fatalf("ticks advanced after end: %d -> %d", tick, w.Tick())
	}
	if w.Elapsed() != elapsed {
		t.Fatal("timer moved after end")
	}
	if len(ts.Display.Calls) != 1 {
		t.Fatalf("ShowResult calls=%d, want 1", len(ts.Display.Calls))
	}
}

func TestWorld_ElapsedFollowsTicks(t *testing.T) {
	w := quietWorld()
	for i := 0; i < TicksPerSecond*2; i++ {
		w.Update()
	}
	if w.Elapsed() != 2 {
		t.Fatalf("elapsed=%v after %d ticks, want 2", w.Elapsed(), TicksPerSecond*2)
	}
}

func TestWorld_SameSeedSameSession(t *testing.T) {
	run := func() Stats {
		ts := NewTestSim(WithSimSeed(99), WithAutopilot(5))
		ts.RunUntilEnd(20000)
		return ts.World.Stats()
	}
	a, b := run(), run()
	if a != b {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		secs float64
		want string
	}{
		{0, "00:00.00"},
		{1.5, "00:01.50"},
		{59.99, "00:59.99"},
		{61.25, "01:01.25"},
		{754.07, "12:34.07"},
		{-3, "00:00.00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.secs); got != c.want {
			t.Fatalf("FormatClock(%v)=%q, want %q", c.secs, got, c.want)
		}
	}
}

func TestDetermineRunOutcome(t *testing.T) {
	w := quietWorld()
	if o := DetermineRunOutcome(w); o.Outcome != OutcomeInconclusive || o.Description != "inconclusive_stalemate" {
		t.Fatalf("fresh world outcome=%v %q", o.Outcome, o.Description)
	}
	w.session.HitBase(SideEnemy)
	if o := DetermineRunOutcome(w); o.Description != "inconclusive_leaning_win" {
		t.Fatalf("description=%q", o.Description)
	}
	w.endSession(ResultLose, "player_hit")
	if o := DetermineRunOutcome(w); o.Outcome != OutcomeLoss || o.Description != "loss_player_hit" {
		t.Fatalf("outcome=%v %q", o.Outcome, o.Description)
	}
}

func TestSimLog_Summary(t *testing.T) {
	ts := NewTestSim(WithSimSeed(4))
	ts.RunTicks(60)
	s := ts.SimLog.Summary(ts.World)
	if s == "" {
		t.Fatal("empty summary")
	}
	if !ts.SimLog.HasEntry("session", "start", "") {
		t.Fatalf("missing session start entry:\n%s", ts.SimLog.Format())
	}
}
