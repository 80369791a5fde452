package config

import "fmt"

// Preset represents a named difficulty preset.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI value to a Preset. The empty string means no preset.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "", PresetEasy, PresetNormal, PresetHard:
		return Preset(name), nil
	}
	return "", fmt.Errorf("%w: unknown preset %q (want easy, normal or hard)", ErrInvalidConfig, name)
}

// ApplyZombiePreset modifies the config based on a preset.
func ApplyZombiePreset(cfg *ZombieConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Rules.StartLevel = 1
		cfg.Rules.StartSpeed = string(SpeedSlow)
		cfg.Rules.Lives = 5
	case PresetNormal:
		cfg.Rules.StartLevel = 1
		cfg.Rules.StartSpeed = string(SpeedNormal)
	case PresetHard:
		cfg.Rules.StartLevel = len(cfg.Levels)
		cfg.Rules.StartSpeed = string(SpeedFast)
		cfg.Rules.Lives = 2
	}
}
