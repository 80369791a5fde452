package zombiejump

import (
	"testing"
	"time"

	"github.com/vovakirdan/zombie-jump/internal/config"
)

const tick = 20 * time.Millisecond

func TestPlayerDied(t *testing.T) {
	s := NewSession(config.DefaultZombieConfig())

	if got := s.PlayerDied(); got != PhaseDied || s.Lives != 2 {
		t.Fatalf("first death: phase %s lives %d, want died with 2", got, s.Lives)
	}
	if got := s.PlayerDied(); got != PhaseDied || s.Lives != 2 {
		t.Errorf("second death in the same life: phase %s lives %d", got, s.Lives)
	}

	s.Respawn(platformID{})
	s.PlayerDied()
	s.Respawn(platformID{})
	if got := s.PlayerDied(); got != PhaseOver || s.Lives != 0 {
		t.Errorf("last death: phase %s lives %d, want over with 0", got, s.Lives)
	}
}

func TestCycleLevel(t *testing.T) {
	s := NewSession(config.DefaultZombieConfig())

	for _, want := range []int{2, 3, 1, 2} {
		if got := s.CycleLevel(); got != want {
			t.Errorf("CycleLevel() = %d, want %d", got, want)
		}
	}
}

func TestSetSpeedDiscardsProgress(t *testing.T) {
	s := NewSession(config.DefaultZombieConfig())
	if s.ScrollPeriod() != 500*time.Millisecond {
		t.Fatalf("start period = %v", s.ScrollPeriod())
	}

	scrolls, seconds := 0, 0
	for i := 0; i < 24; i++ {
		tk := s.Advance(tick)
		if tk.Scroll {
			scrolls++
		}
	}

	// 480ms into a 500ms period; a fresh timer must wait a full period.
	s.SetSpeed(config.SpeedNormal)
	for i := 0; i < 26; i++ {
		tk := s.Advance(tick)
		if tk.Scroll {
			scrolls++
		}
		if tk.Second {
			seconds++
		}
	}

	if scrolls != 1 {
		t.Errorf("scrolls = %d, want 1", scrolls)
	}
	if seconds != 1 || s.Clock.Seconds != 1 {
		t.Errorf("elapsed timer affected by speed change: %d ticks, clock %s", seconds, s.Clock)
	}

	s.SetSpeed(config.SpeedFast)
	if s.ScrollPeriod() != 125*time.Millisecond || s.Speed != config.SpeedFast {
		t.Errorf("after SetSpeed(fast) period = %v speed = %s", s.ScrollPeriod(), s.Speed)
	}
}

func TestClockRollover(t *testing.T) {
	c := Clock{Minutes: 1, Seconds: 58}

	c.Tick()
	if c.String() != "01:59" {
		t.Errorf("got %s, want 01:59", c)
	}
	c.Tick()
	if c.String() != "02:00" {
		t.Errorf("got %s, want 02:00", c)
	}
}

func TestAdvanceGravity(t *testing.T) {
	s := NewSession(config.DefaultZombieConfig())

	for i := 1; i <= 25; i++ {
		tk := s.Advance(tick)
		if tk.Gravity != (i == 25) {
			t.Fatalf("tick %d: gravity = %v", i, tk.Gravity)
		}
	}
}

func TestRecordLanding(t *testing.T) {
	s := NewSession(config.DefaultZombieConfig())
	s.Respawn(platformID{slot: 0})

	if s.RecordLanding(platformID{slot: 0}) {
		t.Error("landing on the spawn platform scored")
	}
	if !s.RecordLanding(platformID{slot: 3}) || s.Score != 1 {
		t.Errorf("landing on a new platform: score %d", s.Score)
	}
	if s.RecordLanding(platformID{slot: 3}) {
		t.Error("standing on the same platform scored twice")
	}
	if !s.RecordLanding(platformID{slot: 3, generation: 1}) || s.Score != 2 {
		t.Errorf("recycled slot counts as a new platform: score %d", s.Score)
	}
}
