package game

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Result is the terminal outcome of a session.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLose
)

// String returns the label shown to the player.
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "You Win!"
	case ResultLose:
		return "Game Over!"
	default:
		return ""
	}
}

// Key returns a short machine-readable name for logs and reports.
func (r Result) Key() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	default:
		return "none"
	}
}

// Side names one of the two bases.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

// Session tracks base health, the timer and the one-way terminal latch.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	PlayerBaseHealth int
	EnemyBaseHealth  int

	elapsed  time.Duration
	terminal bool
	result   Result
}

// NewSession starts a fresh session with full base health.
func NewSession() *Session {
	return &Session{
		ID:               uuid.New(),
		StartedAt:        time.Now(),
		PlayerBaseHealth: BaseHealth,
		EnemyBaseHealth:  BaseHealth,
	}
}

// HitBase takes one health point off side's base and returns what remains.
func (s *Session) HitBase(side Side) int {
	if side == SideEnemy {
		s.EnemyBaseHealth--
		return s.EnemyBaseHealth
	}
	s.PlayerBaseHealth--
	return s.PlayerBaseHealth
}

// BaseHealth returns the remaining health of side's base.
func (s *Session) BaseHealth(side Side) int {
	if side == SideEnemy {
		return s.EnemyBaseHealth
	}
	return s.PlayerBaseHealth
}

// Tick records elapsed sim time. It is frozen once the session is terminal.
func (s *Session) Tick(elapsed time.Duration) {
	if s.terminal {
		return
	}
	s.elapsed = elapsed
}

// End latches the terminal state. Only the first call has any effect; it
// reports whether this call ended the session.
func (s *Session) End(result Result, elapsed time.Duration) bool {
	if s.terminal {
		return false
	}
	s.terminal = true
	s.result = result
	s.elapsed = elapsed
	return true
}

// Terminal reports whether the session has ended.
func (s *Session) Terminal() bool { return s.terminal }

// Result returns the terminal outcome, or ResultNone while playing.
func (s *Session) Result() Result { return s.result }

// Elapsed returns sim time since the start, frozen at the terminal instant.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// ElapsedSeconds returns Elapsed in seconds rounded to two decimals.
func (s *Session) ElapsedSeconds() float64 {
	return math.Round(s.elapsed.Seconds()*100) / 100
}
