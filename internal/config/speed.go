package config

import (
	"fmt"
	"time"
)

// Speed is one of the three fixed platform scroll cadences.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// ParseSpeed converts a name to a Speed. The empty string means normal.
func ParseSpeed(name string) (Speed, error) {
	switch Speed(name) {
	case "", SpeedNormal:
		return SpeedNormal, nil
	case SpeedSlow:
		return SpeedSlow, nil
	case SpeedFast:
		return SpeedFast, nil
	}
	return "", fmt.Errorf("%w: unknown speed %q (want slow, normal or fast)", ErrInvalidConfig, name)
}

// Label returns the four-letter HUD label.
func (s Speed) Label() string {
	switch s {
	case SpeedSlow:
		return "SLOW"
	case SpeedFast:
		return "FAST"
	default:
		return "NORM"
	}
}

// ScrollPeriod returns the scroll timer period for a speed.
func (t ZombieTimers) ScrollPeriod(s Speed) time.Duration {
	switch s {
	case SpeedSlow:
		return Millis(t.SlowMS)
	case SpeedFast:
		return Millis(t.FastMS)
	default:
		return Millis(t.NormalMS)
	}
}
