package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.notch/dino.{yaml,toml} -> ./configs/dino.{yaml,toml} -> embedded default.
// Fields absent from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := make([]string, 0, 4)
	if dir := userConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "dino.yaml"), filepath.Join(dir, "dino.toml"))
	}
	candidates = append(candidates, filepath.Join("configs", "dino.yaml"), filepath.Join("configs", "dino.toml"))

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile decodes a single config file over the defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func loadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigDir returns ~/.notch, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".notch")
}

// Validate reports every setting the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, errors.New("surface width and height must be positive"))
	}
	if c.Surface.CellWidth <= 0 || c.Surface.CellHeight <= 0 {
		errs = append(errs, errors.New("surface cell size must be positive"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, errors.New("physics.jump_impulse must be negative (upward)"))
	}
	if c.Physics.GroundY <= 0 || c.Physics.GroundY > c.Surface.Height {
		errs = append(errs, fmt.Errorf("physics.ground_y %.1f must lie inside the surface", c.Physics.GroundY))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, errors.New("obstacle size must be positive"))
	}
	if c.Obstacles.MinGap < 0 || c.Obstacles.GapJitter < 0 {
		errs = append(errs, errors.New("obstacle gap settings must not be negative"))
	}
	if c.Obstacles.SpawnChance <= 0 || c.Obstacles.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_chance %.3f must be in (0, 1]", c.Obstacles.SpawnChance))
	}
	if c.Speed.Base <= 0 {
		errs = append(errs, errors.New("speed.base must be positive"))
	}
	if c.Speed.Step < 0 {
		errs = append(errs, errors.New("speed.step must not be negative"))
	}
	if c.Speed.Every <= 0 {
		errs = append(errs, errors.New("speed.every must be positive"))
	}
	if !slices.Contains(JumpKeys, c.Input.JumpKey) {
		errs = append(errs, fmt.Errorf("input.jump_key %q must be one of %s", c.Input.JumpKey, strings.Join(JumpKeys, ", ")))
	}

	return errors.Join(errs...)
}
