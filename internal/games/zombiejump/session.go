package zombiejump

import (
	"fmt"
	"time"

	"github.com/vovakirdan/zombie-jump/internal/config"
	"github.com/vovakirdan/zombie-jump/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseDied          // A life was lost; the next tick sets up a new one
	PhaseOver          // No lives left; waits for restart or quit
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDied:
		return "died"
	case PhaseOver:
		return "over"
	default:
		return "playing"
	}
}

// Clock is the elapsed play time shown in the HUD.
type Clock struct {
	Minutes int
	Seconds int
}

// Tick adds one second.
func (c *Clock) Tick() {
	c.Seconds++
	if c.Seconds >= 60 {
		c.Seconds = 0
		c.Minutes++
	}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Minutes, c.Seconds)
}

// Ticks reports which session timers expired during one Advance.
type Ticks struct {
	Second  bool
	Scroll  bool
	Gravity bool
}

// Session holds lives, score, level, speed and the loop timers.
type Session struct {
	Lives int
	Score int
	Level int
	Speed config.Speed
	Phase Phase
	Clock Clock

	levels     int
	timers     config.ZombieTimers
	elapsed    *core.Timer
	scroll     *core.Timer
	gravity    *core.Timer
	lastLanded platformID
}

// NewSession starts a session from the configured rules.
func NewSession(cfg config.ZombieConfig) *Session {
	speed, err := config.ParseSpeed(cfg.Rules.StartSpeed)
	if err != nil {
		speed = config.SpeedNormal
	}

	s := &Session{
		Lives:  cfg.Rules.Lives,
		Level:  core.Clamp(cfg.Rules.StartLevel, 1, core.Max(len(cfg.Levels), 1)),
		Speed:  speed,
		Phase:  PhasePlaying,
		levels: core.Max(len(cfg.Levels), 1),
		timers: cfg.Timers,
	}
	s.elapsed = core.NewTimer(config.Millis(cfg.Timers.ElapsedMS))
	s.scroll = core.NewTimer(cfg.Timers.ScrollPeriod(speed))
	s.gravity = core.NewTimer(config.Millis(cfg.Timers.GravityMS))
	return s
}

// Advance moves every timer forward by dt. An elapsed second is added to
// the clock here.
func (s *Session) Advance(dt time.Duration) Ticks {
	t := Ticks{
		Second:  s.elapsed.Advance(dt),
		Scroll:  s.scroll.Advance(dt),
		Gravity: s.gravity.Advance(dt),
	}
	if t.Second {
		s.Clock.Tick()
	}
	return t
}

// PlayerDied takes a life and returns the resulting phase.
func (s *Session) PlayerDied() Phase {
	if s.Phase != PhasePlaying {
		return s.Phase
	}
	if s.Lives > 1 {
		s.Lives--
		s.Phase = PhaseDied
		return s.Phase
	}
	s.Lives = 0
	s.Phase = PhaseOver
	return s.Phase
}

// Respawn starts a new life. Level, speed, score and the clock carry over;
// the scroll and gravity timers start a fresh period.
func (s *Session) Respawn(spawn platformID) {
	s.Phase = PhasePlaying
	s.lastLanded = spawn
	s.scroll.Reset()
	s.gravity.Reset()
}

// CycleLevel advances to the next level, wrapping to 1 after the last.
// Only platforms generated afterwards use the new level.
func (s *Session) CycleLevel() int {
	s.Level = s.Level%s.levels + 1
	return s.Level
}

// SetSpeed replaces the scroll timer with one at the new cadence. Progress
// towards the old timer's next expiry is discarded.
func (s *Session) SetSpeed(speed config.Speed) {
	s.Speed = speed
	s.scroll = core.NewTimer(s.timers.ScrollPeriod(speed))
}

// ScrollPeriod returns the current scroll cadence.
func (s *Session) ScrollPeriod() time.Duration {
	return s.scroll.Period()
}

// RecordLanding scores a point when the player lands on a platform
// instance other than the last one landed on.
func (s *Session) RecordLanding(id platformID) bool {
	if id == s.lastLanded {
		return false
	}
	s.lastLanded = id
	s.Score++
	return true
}
