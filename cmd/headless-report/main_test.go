package main

import (
	"context"
	"testing"

	"github.com/Garsondee/tank-siege/internal/game"
)

func TestFirstOf(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{-1, -1, -1},
		{-1, 7, 7},
		{5, -1, 5},
		{5, 7, 5},
		{9, 3, 3},
	}
	for _, c := range cases {
		if got := firstOf(c.a, c.b); got != c.want {
			t.Fatalf("firstOf(%d,%d)=%d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSummarize_CountsOutcomes(t *testing.T) {
	all := []runStats{
		{outcome: game.RunOutcomeReason{Outcome: game.OutcomeWin, Ticks: 100, Description: "decisive_win_enemy_base_destroyed"}, kills: 2, firstKillTick: 40},
		{outcome: game.RunOutcomeReason{Outcome: game.OutcomeLoss, Ticks: 300, Description: "loss_player_hit"}, firstKillTick: -1},
		{outcome: game.RunOutcomeReason{Outcome: game.OutcomeLoss, Ticks: 200, Description: "loss_player_hit"}, kills: 1, firstKillTick: 80},
	}
	agg := summarize(all)
	if agg.wins != 1 || agg.losses != 2 || agg.inconclusive != 0 {
		t.Fatalf("win=%d loss=%d inconclusive=%d", agg.wins, agg.losses, agg.inconclusive)
	}
	if agg.reasons["loss_player_hit"] != 2 {
		t.Fatalf("reasons=%v", agg.reasons)
	}
	if avg(agg.totalTicks, agg.runs) != 200 {
		t.Fatalf("avg ticks=%.1f, want 200", avg(agg.totalTicks, agg.runs))
	}
	if got := avgTickString(agg.killTicks); got != "60.0" {
		t.Fatalf("first kill avg=%s, want 60.0", got)
	}
}

func TestFormatCounts_Sorted(t *testing.T) {
	if got := formatCounts(nil); got != "none" {
		t.Fatalf("empty=%q", got)
	}
	got := formatCounts(map[string]int{"b": 1, "a": 2})
	if got != "a=2 b=1" {
		t.Fatalf("got %q", got)
	}
}

func TestRunAll_KeepsRunOrder(t *testing.T) {
	all, err := runAll(context.Background(), 8, 3, func(i int) runStats {
		return runStats{runIndex: i + 1}
	})
	if err != nil {
		t.Fatalf("runAll: %v", err)
	}
	for i, rs := range all {
		if rs.runIndex != i+1 {
			t.Fatalf("slot %d holds run %d", i, rs.runIndex)
		}
	}
}

func TestRunAutopilot_Deterministic(t *testing.T) {
	a := runAutopilot(1, 42, 1042, 600)
	b := runAutopilot(1, 42, 1042, 600)
	if a != b {
		t.Fatalf("same seeds diverged:\n%+v\n%+v", a, b)
	}
	if a.spawns < 1 {
		t.Fatal("the default map should spawn at least one enemy")
	}
}
