package game

import "math/rand"

// TestSim is a headless session harness for tests and batch reports. It
// drives a World exactly like the windowed frontend does, minus rendering,
// with deterministic seeding and structured logging.
type TestSim struct {
	World   *World
	SimLog  *SimLog
	Display *RecordingDisplay
	Pilot   *Autopilot

	worldOpts []Option
	seed      int64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // seed, layout, logging: applied before the World is built
	simOptActor                      // enemies, tiles, autopilot: applied to the built World
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSimSeed sets the RNG seed for deterministic runs.
func WithSimSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithWorld passes World options straight through.
func WithWorld(opts ...Option) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.worldOpts = append(ts.worldOpts, opts...)
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithQuietField starts the session with no enemies and no spawn points, so
// tests can place exactly the enemies they need.
func WithQuietField() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.worldOpts = append(ts.worldOpts, WithoutInitialSpawn(), WithSpawnPoints())
	}}
}

// WithEnemy places a resting enemy on (col, row) facing dir.
func WithEnemy(col, row int, dir Direction) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.World.addEnemy(col, row, dir)
	}}
}

// WithTile overwrites one cell after the map is built.
func WithTile(col, row int, t Tile) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.World.tiles.Set(col, row, t)
	}}
}

// WithAutopilot lets a seeded random pilot drive the player every tick.
func WithAutopilot(seed int64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Pilot = NewAutopilot(seed)
	}}
}

// NewTestSim builds a session from options. Infra options run first so
// actor options see the finished World.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog:  NewSimLog(false),
		Display: &RecordingDisplay{},
		seed:    42,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}

	wopts := []Option{
		WithSeed(ts.seed),
		WithSimLog(ts.SimLog),
		WithDisplay(ts.Display),
	}
	ts.World = NewWorld(append(wopts, ts.worldOpts...)...)

	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	return ts
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.step()
	}
}

// RunUntil runs until predicate returns true or maxTicks is reached.
// Returns the number of ticks actually run.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.step()
		if predicate(ts) {
			return i + 1
		}
	}
	return maxTicks
}

// RunUntilEnd runs until the end-of-game message has been delivered.
func (ts *TestSim) RunUntilEnd(maxTicks int) int {
	return ts.RunUntil(func(ts *TestSim) bool { return ts.World.ResultShown() }, maxTicks)
}

func (ts *TestSim) step() {
	if ts.Pilot != nil && ts.World.Running() {
		for _, cmd := range ts.Pilot.Commands(ts.World) {
			ts.World.Apply(cmd)
		}
	}
	ts.World.Update()
}

// CurrentTick returns the World's tick counter.
func (ts *TestSim) CurrentTick() int {
	return ts.World.Tick()
}

// ResultCall is one recorded ShowResult invocation.
type ResultCall struct {
	Result  Result
	Elapsed float64
}

// RecordingDisplay is a ResultDisplay that remembers every call.
type RecordingDisplay struct {
	Calls []ResultCall
}

// ShowResult records the call.
func (d *RecordingDisplay) ShowResult(result Result, elapsedSeconds float64) {
	d.Calls = append(d.Calls, ResultCall{Result: result, Elapsed: elapsedSeconds})
}

// Autopilot is a seeded stand-in for a human player. It wanders with a bias
// toward the enemy base and fires now and then.
type Autopilot struct {
	rng        *rand.Rand
	FireChance float64 // per tick
	TurnChance float64 // per idle tick
	UpBias     float64 // share of turns that go up
}

// NewAutopilot returns a pilot with stock tuning.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{
		rng:        rand.New(rand.NewSource(seed)), // #nosec G404 -- test harness
		FireChance: 0.08,
		TurnChance: 0.25,
		UpBias:     0.4,
	}
}

// Commands returns this tick's input for w's player.
func (a *Autopilot) Commands(w *World) []Command {
	var cmds []Command
	p := w.Player()
	if !p.Moving {
		dir := p.Facing
		col, row := p.Tile()
		dx, dy := dir.Vector()
		blocked := !w.Map().IsPassable(col+dx, row+dy)
		if dir == DirNone || blocked || a.rng.Float64() < a.TurnChance {
			dir = a.pickDirection()
		}
		cmds = append(cmds, commandFor(dir))
	}
	if a.rng.Float64() < a.FireChance {
		cmds = append(cmds, CmdFire)
	}
	return cmds
}

func (a *Autopilot) pickDirection() Direction {
	if a.rng.Float64() < a.UpBias {
		return DirUp
	}
	return cardinals[a.rng.Intn(len(cardinals))]
}

func commandFor(d Direction) Command {
	switch d {
	case DirRight:
		return CmdRight
	case DirDown:
		return CmdDown
	case DirLeft:
		return CmdLeft
	default:
		return CmdUp
	}
}
