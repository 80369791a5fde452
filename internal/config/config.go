// Package config provides YAML-based game configuration loading and
// preset management for the arcade.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/zombie-jump/internal/core"
)

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// ZombieConfig contains all configuration for Zombie Jump.
type ZombieConfig struct {
	Board     ZombieBoard     `yaml:"board"`
	Platforms ZombiePlatforms `yaml:"platforms"`
	Generator ZombieGenerator `yaml:"generator"`
	Levels    []ZombieLevel   `yaml:"levels"`
	Timers    ZombieTimers    `yaml:"timers"`
	Player    ZombiePlayer    `yaml:"player"`
	Rules     ZombieRules     `yaml:"rules"`
}

// ZombieBoard defines the playfield size. The playfield shrinks to the
// terminal when the terminal is smaller.
type ZombieBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ZombiePlatforms defines the platform track.
type ZombiePlatforms struct {
	Count     int `yaml:"count"`
	Thickness int `yaml:"thickness"`
}

// ZombieGenerator defines the rejection-sampling ranges used when placing
// platforms. Each range draws uniformly from [0, Range) and rejects draws
// below Min.
type ZombieGenerator struct {
	HorizontalRange int `yaml:"horizontal_range"`
	HorizontalMin   int `yaml:"horizontal_min"`
	VerticalRange   int `yaml:"vertical_range"`
	VerticalMin     int `yaml:"vertical_min"`
	MaxSafeRun      int `yaml:"max_safe_run"`
	MaxLethalRun    int `yaml:"max_lethal_run"`
}

// ZombieLevel defines per-level platform widths and controls.
// Widths are in half-cells; rendered platforms are twice as wide.
type ZombieLevel struct {
	MinWidth        int  `yaml:"min_width"`
	MaxWidth        int  `yaml:"max_width"`
	FixedWidth      bool `yaml:"fixed_width"`
	VerticalControl bool `yaml:"vertical_control"`
}

// ZombieTimers defines the loop cadences in milliseconds.
type ZombieTimers struct {
	ElapsedMS int `yaml:"elapsed_ms"`
	GravityMS int `yaml:"gravity_ms"`
	SlowMS    int `yaml:"slow_ms"`
	NormalMS  int `yaml:"normal_ms"`
	FastMS    int `yaml:"fast_ms"`
}

// ZombiePlayer defines player placement.
type ZombiePlayer struct {
	Height int `yaml:"height"`
}

// ZombieRules defines session rules and starting values.
type ZombieRules struct {
	Lives      int    `yaml:"lives"`
	StartLevel int    `yaml:"start_level"`
	StartSpeed string `yaml:"start_speed"` // "slow", "normal" or "fast"
}

// Level returns the settings for a 1-based level, falling back to the
// last configured level.
func (c ZombieConfig) Level(level int) ZombieLevel {
	if len(c.Levels) == 0 {
		return ZombieLevel{MinWidth: 1, MaxWidth: 1, FixedWidth: true}
	}
	if level < 1 {
		level = 1
	}
	if level > len(c.Levels) {
		level = len(c.Levels)
	}
	return c.Levels[level-1]
}

// Millis converts a millisecond setting to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Validate checks that every range is usable by the generator.
func (c ZombieConfig) Validate() error {
	switch {
	case c.Board.Width < 20 || c.Board.Height < 12:
		return fmt.Errorf("%w: board must be at least 20x12, got %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Platforms.Count < 2:
		return fmt.Errorf("%w: platforms.count must be at least 2", ErrInvalidConfig)
	case c.Platforms.Thickness < 1:
		return fmt.Errorf("%w: platforms.thickness must be positive", ErrInvalidConfig)
	case c.Generator.HorizontalMin < 0 || c.Generator.HorizontalRange <= c.Generator.HorizontalMin:
		return fmt.Errorf("%w: generator.horizontal_range must exceed horizontal_min", ErrInvalidConfig)
	case c.Generator.VerticalMin < 1 || c.Generator.VerticalRange <= c.Generator.VerticalMin:
		return fmt.Errorf("%w: generator.vertical_range must exceed vertical_min >= 1", ErrInvalidConfig)
	case c.Generator.MaxSafeRun < 1 || c.Generator.MaxLethalRun < 1:
		return fmt.Errorf("%w: generator run caps must be positive", ErrInvalidConfig)
	case len(c.Levels) == 0:
		return fmt.Errorf("%w: at least one level is required", ErrInvalidConfig)
	case c.Player.Height < 1:
		return fmt.Errorf("%w: player.height must be positive", ErrInvalidConfig)
	case c.Rules.Lives < 1:
		return fmt.Errorf("%w: rules.lives must be positive", ErrInvalidConfig)
	case c.Rules.StartLevel < 1 || c.Rules.StartLevel > len(c.Levels):
		return fmt.Errorf("%w: rules.start_level %d out of range 1..%d", ErrInvalidConfig, c.Rules.StartLevel, len(c.Levels))
	}

	widest := 0
	for i, lvl := range c.Levels {
		if lvl.MinWidth < 1 {
			return fmt.Errorf("%w: level %d min_width must be positive", ErrInvalidConfig, i+1)
		}
		if !lvl.FixedWidth && lvl.MaxWidth <= lvl.MinWidth {
			return fmt.Errorf("%w: level %d max_width must exceed min_width", ErrInvalidConfig, i+1)
		}
		if 2*core.Max(lvl.MinWidth, lvl.MaxWidth) > c.Board.Width {
			return fmt.Errorf("%w: level %d platforms wider than the board", ErrInvalidConfig, i+1)
		}
		widest = core.Max(widest, 2*core.Max(lvl.MinWidth, lvl.MaxWidth))
	}
	if c.Board.Width < MinBoardWidth(widest, c.Generator.HorizontalMin) {
		return fmt.Errorf("%w: board.width %d leaves no room between platforms", ErrInvalidConfig, c.Board.Width)
	}

	t := c.Timers
	if t.ElapsedMS <= 0 || t.GravityMS <= 0 || t.SlowMS <= 0 || t.NormalMS <= 0 || t.FastMS <= 0 {
		return fmt.Errorf("%w: all timers must be positive", ErrInvalidConfig)
	}

	if _, err := ParseSpeed(c.Rules.StartSpeed); err != nil {
		return err
	}
	return nil
}

// TurtleConfig contains all configuration for the zombie turtle demo.
type TurtleConfig struct {
	Zombies TurtleZombies `yaml:"zombies"`
}

// TurtleZombies defines the drifting zombie sprites.
type TurtleZombies struct {
	Count    int     `yaml:"count"`
	SpeedX   float64 `yaml:"speed_x"`
	SpeedY   float64 `yaml:"speed_y"`
	UpdateMS int     `yaml:"update_ms"`
}

// Validate checks the turtle configuration.
func (c TurtleConfig) Validate() error {
	if c.Zombies.Count < 0 {
		return fmt.Errorf("%w: zombies.count must not be negative", ErrInvalidConfig)
	}
	if c.Zombies.UpdateMS <= 0 {
		return fmt.Errorf("%w: zombies.update_ms must be positive", ErrInvalidConfig)
	}
	return nil
}

// MinBoardWidth is the narrowest board on which a platform of width widest
// can always be placed at least gap columns from a predecessor of the same
// width.
func MinBoardWidth(widest, gap int) int {
	return 3*widest + 2*gap
}
