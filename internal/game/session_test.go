package game

import (
	"testing"
	"time"
)

func TestSession_StartsFull(t *testing.T) {
	s := NewSession()
	if s.PlayerBaseHealth != BaseHealth || s.EnemyBaseHealth != BaseHealth {
		t.Fatalf("base health %d/%d, want %d", s.PlayerBaseHealth, s.EnemyBaseHealth, BaseHealth)
	}
	if s.Terminal() || s.Result() != ResultNone {
		t.Fatal("new session should be running")
	}
	if s.ID.String() == NewSession().ID.String() {
		t.Fatal("sessions should get distinct IDs")
	}
}

func TestSession_HitBase(t *testing.T) {
	s := NewSession()
	if left := s.HitBase(SideEnemy); left != BaseHealth-1 {
		t.Fatalf("enemy base left=%d", left)
	}
	if s.BaseHealth(SidePlayer) != BaseHealth {
		t.Fatal("hitting one base must not touch the other")
	}
	s.HitBase(SidePlayer)
	s.HitBase(SidePlayer)
	if s.BaseHealth(SidePlayer) != BaseHealth-2 {
		t.Fatalf("player base=%d, want %d", s.BaseHealth(SidePlayer), BaseHealth-2)
	}
}

func TestSession_EndLatchesOnce(t *testing.T) {
	s := NewSession()
	if !s.End(ResultWin, 1500*time.Millisecond) {
		t.Fatal("first End should take effect")
	}
	if s.End(ResultLose, 9*time.Second) {
		t.Fatal("second End should be a no-op")
	}
	if s.Result() != ResultWin {
		t.Fatalf("result=%v, want first result to stick", s.Result())
	}
	if s.Elapsed() != 1500*time.Millisecond {
		t.Fatalf("elapsed=%v, want frozen at 1.5s", s.Elapsed())
	}
}

func TestSession_TimerFreezesAtEnd(t *testing.T) {
	s := NewSession()
	s.Tick(2 * time.Second)
	s.End(ResultLose, 3*time.Second)
	s.Tick(10 * time.Second)
	if s.Elapsed() != 3*time.Second {
		t.Fatalf("elapsed=%v after end, want 3s", s.Elapsed())
	}
}

func TestSession_ElapsedSecondsRounding(t *testing.T) {
	s := NewSession()
	s.Tick(1234567 * time.Microsecond)
	if got := s.ElapsedSeconds(); got != 1.23 {
		t.Fatalf("ElapsedSeconds=%v, want 1.23", got)
	}
	s.Tick(1236 * time.Millisecond)
	if got := s.ElapsedSeconds(); got != 1.24 {
		t.Fatalf("ElapsedSeconds=%v, want 1.24", got)
	}
}

func TestResult_Labels(t *testing.T) {
	if ResultWin.String() != "You Win!" || ResultLose.String() != "Game Over!" {
		t.Fatalf("labels %q / %q", ResultWin, ResultLose)
	}
	if ResultNone.Key() != "none" || ResultWin.Key() != "win" || ResultLose.Key() != "lose" {
		t.Fatal("unexpected result keys")
	}
}
