package config

import (
	_ "embed"
)

//go:embed defaults/zombiejump.yaml
var defaultZombieYAML []byte

//go:embed defaults/turtle.yaml
var defaultTurtleYAML []byte

// DefaultZombieConfig returns the default Zombie Jump configuration.
func DefaultZombieConfig() ZombieConfig {
	return ZombieConfig{
		Board: ZombieBoard{
			Width:  70,
			Height: 49,
		},
		Platforms: ZombiePlatforms{
			Count:     14,
			Thickness: 2,
		},
		Generator: ZombieGenerator{
			HorizontalRange: 30,
			HorizontalMin:   3,
			VerticalRange:   8,
			VerticalMin:     5,
			MaxSafeRun:      5,
			MaxLethalRun:    2,
		},
		Levels: []ZombieLevel{
			{MinWidth: 7, MaxWidth: 7, FixedWidth: true},
			{MinWidth: 3, MaxWidth: 10, VerticalControl: true},
			{MinWidth: 3, MaxWidth: 10, VerticalControl: true},
		},
		Timers: ZombieTimers{
			ElapsedMS: 1000,
			GravityMS: 500,
			SlowMS:    1000,
			NormalMS:  500,
			FastMS:    125,
		},
		Player: ZombiePlayer{
			Height: 3,
		},
		Rules: ZombieRules{
			Lives:      3,
			StartLevel: 1,
			StartSpeed: string(SpeedNormal),
		},
	}
}

// DefaultTurtleConfig returns the default turtle demo configuration.
func DefaultTurtleConfig() TurtleConfig {
	return TurtleConfig{
		Zombies: TurtleZombies{
			Count:    125,
			SpeedX:   0.5,
			SpeedY:   0.0,
			UpdateMS: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "zombiejump":
		return defaultZombieYAML
	case "turtle":
		return defaultTurtleYAML
	default:
		return nil
	}
}
