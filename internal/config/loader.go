package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadZombie loads Zombie Jump configuration.
// Search order: customPath -> ~/.zombiejump/configs/zombiejump.yaml -> ./configs/zombiejump.yaml -> embedded default
func LoadZombie(customPath string) (ZombieConfig, error) {
	cfg, err := load(customPath, "zombiejump.yaml", defaultZombieYAML, DefaultZombieConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: zombiejump: %w", err)
	}
	return cfg, nil
}

// LoadTurtle loads the turtle demo configuration.
// Search order: customPath -> ~/.zombiejump/configs/turtle.yaml -> ./configs/turtle.yaml -> embedded default
func LoadTurtle(customPath string) (TurtleConfig, error) {
	cfg, err := load(customPath, "turtle.yaml", defaultTurtleYAML, DefaultTurtleConfig())
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: turtle: %w", err)
	}
	return cfg, nil
}

// load decodes the first config found on the search path over the
// hardcoded defaults, so partial files only override what they name.
func load[T any](customPath, filename string, embedded []byte, defaults T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zombiejump", "configs", filename)
}
