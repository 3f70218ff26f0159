package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

//go:generate go tool mockgen -destination=./mocks/display_mock.go -package=mocks . ResultDisplay

// ResultDisplay shows the end-of-game message. The World calls it exactly
// once per session, shortly after the terminal tick.
type ResultDisplay interface {
	ShowResult(result Result, elapsedSeconds float64)
}

type nopDisplay struct{}

func (nopDisplay) ShowResult(Result, float64) {}

// discardLog backs every World built without WithLogger.
var discardLog = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Command is one discrete input event.
type Command int

const (
	CmdUp Command = iota
	CmdRight
	CmdDown
	CmdLeft
	CmdFire
)

func (c Command) direction() Direction {
	switch c {
	case CmdUp:
		return DirUp
	case CmdRight:
		return DirRight
	case CmdDown:
		return DirDown
	case CmdLeft:
		return DirLeft
	default:
		return DirNone
	}
}

// World owns every piece of session state and advances it one fixed tick at
// a time. It is not safe for concurrent use: input, Update and Draw must all
// come from the same goroutine.
type World struct {
	tiles         *TileMap
	session       *Session
	player        Actor
	enemies       []*Enemy
	playerBullets *ProjectileSystem
	enemyBullets  *ProjectileSystem

	spawnPoints   [][2]int
	enemyTotal    int
	enemyOnScreen int
	spawned       int
	nextID        int

	// Counters for reports.
	kills           int
	contacts        int
	bricksDestroyed int

	tick      int
	running   bool
	endReason string

	resultCountdown int
	resultShown     bool
	display         ResultDisplay

	rng    *rand.Rand
	log    logrus.FieldLogger
	simLog *SimLog

	// Construction inputs, consumed by NewWorld.
	layout      [][]Tile
	playerTile  *[2]int
	skipInitial bool
	seed        int64
}

// Option configures a World before it is built.
type Option func(*World)

// WithSeed fixes the RNG seed so a session replays identically.
func WithSeed(seed int64) Option {
	return func(w *World) { w.seed = seed }
}

// WithLayout replaces the stock battlefield. layout is indexed [row][col].
func WithLayout(layout [][]Tile) Option {
	return func(w *World) { w.layout = layout }
}

// WithSpawnPoints replaces the ordered enemy spawn candidates.
func WithSpawnPoints(points ...[2]int) Option {
	return func(w *World) { w.spawnPoints = points }
}

// WithEnemyLimits overrides the session quota and on-screen cap.
func WithEnemyLimits(total, onScreen int) Option {
	return func(w *World) {
		w.enemyTotal = total
		w.enemyOnScreen = onScreen
	}
}

// WithPlayerTile places the player on (col, row) instead of above its base.
func WithPlayerTile(col, row int) Option {
	return func(w *World) { w.playerTile = &[2]int{col, row} }
}

// WithoutInitialSpawn skips the start-of-session pre-fill.
func WithoutInitialSpawn() Option {
	return func(w *World) { w.skipInitial = true }
}

// WithDisplay sets the end-of-game collaborator.
func WithDisplay(d ResultDisplay) Option {
	return func(w *World) {
		if d != nil {
			w.display = d
		}
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithSimLog records structured events into sl.
func WithSimLog(sl *SimLog) Option {
	return func(w *World) {
		if sl != nil {
			w.simLog = sl
		}
	}
}

// NewWorld starts a session: builds the map, places the player one tile
// above its base and pre-fills enemy spawn points.
func NewWorld(opts ...Option) *World {
	w := &World{
		spawnPoints:   defaultSpawnPoints,
		enemyTotal:    EnemyTotal,
		enemyOnScreen: EnemyOnScreen,
		display:       nopDisplay{},
		log:           discardLog,
		simLog:        NewSimLog(false),
		seed:          time.Now().UnixNano(),
		playerBullets: newPlayerProjectiles(),
		enemyBullets:  newEnemyProjectiles(),
	}
	for _, o := range opts {
		o(w)
	}
	if w.layout == nil {
		w.layout = DefaultLayout()
	}
	w.tiles = NewTileMap(w.layout)
	w.layout = nil
	w.rng = rand.New(rand.NewSource(w.seed)) // #nosec G404 -- gameplay only
	w.session = NewSession()
	w.log = w.log.WithField("session", w.session.ID.String())

	// The start tile is left as laid out; TryMove only checks the destination.
	col, row := w.playerStart()
	w.player = newActorAt(col, row, DirUp)

	if !w.skipInitial {
		w.initialSpawn()
	}
	w.running = true
	w.logEvent("--", "session", "start", w.session.ID.String(), float64(w.seed))
	w.log.WithField("seed", w.seed).Info("session started")
	return w
}

// playerStart is the configured tile, or the tile above the player base.
func (w *World) playerStart() (col, row int) {
	if w.playerTile != nil {
		return w.playerTile[0], w.playerTile[1]
	}
	col, row, ok := w.tiles.Find(TilePlayerBase)
	if !ok {
		return 0, 0
	}
	if row > 0 {
		row--
	}
	return col, row
}

// Apply handles one input event immediately. Direction commands turn the
// player and try to start a move; fire launches a bullet along the facing.
// Commands that cannot take effect are ignored.
func (w *World) Apply(cmd Command) {
	if w.session.Terminal() {
		return
	}
	if cmd == CmdFire {
		cx, cy := w.player.Center()
		if w.playerBullets.Fire(cx, cy, w.player.Facing, 0) {
			w.logVerbose("P", "combat", "fire", w.player.Facing.String(), 0)
		}
		return
	}
	dir := cmd.direction()
	if dir == DirNone {
		return
	}
	w.player.TryMove(dir, w.tiles)
	w.player.Facing = dir
}

// Update advances one tick while the session runs. After the terminal tick
// it only counts down to the end-of-game message.
func (w *World) Update() {
	if !w.running {
		w.flushResult()
		return
	}
	w.tick++
	w.player.Advance()
	w.updateEnemies()
	w.maintainSpawns()
	w.advanceProjectiles(w.playerBullets)
	w.advanceProjectiles(w.enemyBullets)
	w.resolveBulletHits()
	w.detectContacts()
	w.session.Tick(w.now())
}

// flushResult delivers the end-of-game message once the delay has run out.
func (w *World) flushResult() {
	if w.resultShown || !w.session.Terminal() {
		return
	}
	w.resultCountdown--
	if w.resultCountdown > 0 {
		return
	}
	w.resultShown = true
	w.display.ShowResult(w.session.Result(), w.session.ElapsedSeconds())
}

// endSession latches the result and stops the tick loop.
func (w *World) endSession(result Result, reason string) {
	if !w.session.End(result, w.now()) {
		return
	}
	w.running = false
	w.endReason = reason
	w.resultCountdown = resultDelayTicks
	w.logEvent("--", "session", "end", result.Key()+" ("+reason+")", w.session.ElapsedSeconds())
	w.log.WithFields(logrus.Fields{
		"result":  result.Key(),
		"reason":  reason,
		"elapsed": w.session.ElapsedSeconds(),
	}).Info("session ended")
}

// now is sim time since the session started.
func (w *World) now() time.Duration {
	return time.Duration(w.tick) * TickDuration
}

func (w *World) logEvent(actor, category, key, value string, num float64) {
	w.simLog.Add(w.tick, actor, category, key, value, num)
}

func (w *World) logVerbose(actor, category, key, value string, num float64) {
	w.simLog.AddVerbose(w.tick, actor, category, key, value, num)
}

func formatTile(col, row int) string {
	return fmt.Sprintf("(%d,%d)", col, row)
}

// Running reports whether ticks still advance the simulation.
func (w *World) Running() bool { return w.running }

// ResultShown reports whether the end-of-game message has been delivered.
func (w *World) ResultShown() bool { return w.resultShown }

// Session returns the session state.
func (w *World) Session() *Session { return w.session }

// Map returns the battlefield grid.
func (w *World) Map() *TileMap { return w.tiles }

// Player returns the player's tank.
func (w *World) Player() *Actor { return &w.player }

// Enemies returns the enemies on the field.
func (w *World) Enemies() []*Enemy { return w.enemies }

// PlayerBullets returns the player's projectile system.
func (w *World) PlayerBullets() *ProjectileSystem { return w.playerBullets }

// EnemyBullets returns the enemies' projectile system.
func (w *World) EnemyBullets() *ProjectileSystem { return w.enemyBullets }

// Tick returns the number of ticks simulated.
func (w *World) Tick() int { return w.tick }

// Elapsed returns the timer value in seconds, two-decimal precision.
func (w *World) Elapsed() float64 { return w.session.ElapsedSeconds() }

// EndReason names what ended the session, or "" while it runs.
func (w *World) EndReason() string { return w.endReason }

// Spawned returns how many enemies have entered the field this session.
func (w *World) Spawned() int { return w.spawned }

// SimLog returns the structured event log.
func (w *World) SimLog() *SimLog { return w.simLog }

// Stats is a snapshot of session counters.
type Stats struct {
	Result           Result
	Ticks            int
	Elapsed          float64
	Spawned          int
	Kills            int
	Contacts         int
	BricksDestroyed  int
	PlayerBaseHealth int
	EnemyBaseHealth  int
}

// Stats returns the current counters.
func (w *World) Stats() Stats {
	return Stats{
		Result:           w.session.Result(),
		Ticks:            w.tick,
		Elapsed:          w.session.ElapsedSeconds(),
		Spawned:          w.spawned,
		Kills:            w.kills,
		Contacts:         w.contacts,
		BricksDestroyed:  w.bricksDestroyed,
		PlayerBaseHealth: w.session.PlayerBaseHealth,
		EnemyBaseHealth:  w.session.EnemyBaseHealth,
	}
}

// FormatClock renders seconds as mm:ss.cc.
func FormatClock(secs float64) string {
	if secs < 0 {
		secs = 0
	}
	total := int(secs*100 + 0.5)
	return fmt.Sprintf("%02d:%02d.%02d", total/6000, (total/100)%60, total%100)
}
