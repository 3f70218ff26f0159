package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/tank-siege/internal/game"
	"github.com/Garsondee/tank-siege/internal/logger"
)

type runStats struct {
	runIndex int
	seed     int64
	outcome  game.RunOutcomeReason

	firstSpawnTick   int
	firstKillTick    int
	firstBrickTick   int
	firstBaseHitTick int

	spawns          int
	kills           int
	contacts        int
	bricksDestroyed int
	playerBaseHits  int
	enemyBaseHits   int
	playerHits      int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var pilotOffset int64
	var workers int

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Int64Var(&pilotOffset, "pilot-seed", 1000, "offset added to the run seed for the autopilot")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "runs simulated in parallel")
	flag.Parse()

	log := logger.Log
	if runs <= 0 {
		log.Fatal("-runs must be > 0")
	}
	if ticks <= 0 {
		log.Fatal("-ticks must be > 0")
	}
	if workers <= 0 {
		workers = 1
	}

	fmt.Printf("=== Headless Siege Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d pilot_seed=%d\n\n", runs, ticks, seedBase, seedStep, pilotOffset)

	all, err := runAll(context.Background(), runs, workers, func(i int) runStats {
		seed := seedBase + int64(i)*seedStep
		return runAutopilot(i+1, seed, seed+pilotOffset, ticks)
	})
	if err != nil {
		log.WithError(err).Error("report aborted")
		os.Exit(1)
	}
	for _, rs := range all {
		printRun(rs)
	}
	printAggregate(all)
}

// runAll fills one slot per run; each World is independent so runs share no state.
func runAll(ctx context.Context, runs, workers int, run func(i int) runStats) ([]runStats, error) {
	all := make([]runStats, runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			all[i] = run(i)
			logger.Log.WithFields(logrus.Fields{"run": i + 1, "outcome": all[i].outcome.Outcome}).Debug("run finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

func runAutopilot(runIndex int, seed, pilotSeed int64, ticks int) runStats {
	ts := game.NewTestSim(
		game.WithSimSeed(seed),
		game.WithAutopilot(pilotSeed),
	)
	ts.RunUntilEnd(ticks)
	return collect(runIndex, seed, ts)
}

func collect(runIndex int, seed int64, ts *game.TestSim) runStats {
	sl := ts.SimLog
	st := ts.World.Stats()
	return runStats{
		runIndex:         runIndex,
		seed:             seed,
		outcome:          game.DetermineRunOutcome(ts.World),
		firstSpawnTick:   sl.FirstTick("spawn", "enemy"),
		firstKillTick:    sl.FirstTick("combat", "enemy_destroyed"),
		firstBrickTick:   sl.FirstTick("map", "brick_destroyed"),
		firstBaseHitTick: firstOf(sl.FirstTick("base", "player_hit"), sl.FirstTick("base", "enemy_hit")),
		spawns:           st.Spawned,
		kills:            st.Kills,
		contacts:         st.Contacts,
		bricksDestroyed:  st.BricksDestroyed,
		playerBaseHits:   sl.CountCategory("base", "player_hit"),
		enemyBaseHits:    sl.CountCategory("base", "enemy_hit"),
		playerHits:       sl.CountCategory("combat", "player_hit"),
	}
}

// firstOf returns the earlier of two ticks, treating -1 as absent.
func firstOf(a, b int) int {
	switch {
	case a < 0:
		return b
	case b < 0:
		return a
	case a < b:
		return a
	}
	return b
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s reason=%s ticks=%d time=%s\n",
		rs.outcome.Outcome, rs.outcome.Description, rs.outcome.Ticks, game.FormatClock(rs.outcome.Elapsed))
	fmt.Printf("phase_markers: first_spawn=%d first_kill=%d first_brick=%d first_base_hit=%d\n",
		rs.firstSpawnTick, rs.firstKillTick, rs.firstBrickTick, rs.firstBaseHitTick)
	fmt.Printf("event_totals: spawns=%d kills=%d contacts=%d bricks=%d player_base_hits=%d enemy_base_hits=%d player_hit=%d\n",
		rs.spawns, rs.kills, rs.contacts, rs.bricksDestroyed, rs.playerBaseHits, rs.enemyBaseHits, rs.playerHits)
	fmt.Printf("bases: player=%d enemy=%d\n\n", rs.outcome.PlayerBaseHealth, rs.outcome.EnemyBaseHealth)
}

type aggregate struct {
	runs         int
	wins         int
	losses       int
	inconclusive int
	reasons      map[string]int

	totalTicks  int
	totalKills  int
	totalBricks int
	killTicks   []int
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), reasons: map[string]int{}}
	for _, rs := range all {
		switch rs.outcome.Outcome {
		case game.OutcomeWin:
			agg.wins++
		case game.OutcomeLoss:
			agg.losses++
		default:
			agg.inconclusive++
		}
		agg.reasons[rs.outcome.Description]++
		agg.totalTicks += rs.outcome.Ticks
		agg.totalKills += rs.kills
		agg.totalBricks += rs.bricksDestroyed
		if rs.firstKillTick >= 0 {
			agg.killTicks = append(agg.killTicks, rs.firstKillTick)
		}
	}
	return agg
}

func printAggregate(all []runStats) {
	agg := summarize(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d win=%d loss=%d inconclusive=%d\n", agg.runs, agg.wins, agg.losses, agg.inconclusive)
	fmt.Printf("avg_per_run: ticks=%.1f kills=%.1f bricks=%.1f\n",
		avg(agg.totalTicks, agg.runs), avg(agg.totalKills, agg.runs), avg(agg.totalBricks, agg.runs))
	fmt.Printf("first_kill_avg_tick=%s\n", avgTickString(agg.killTicks))
	fmt.Printf("reasons: %s\n", formatCounts(agg.reasons))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}
