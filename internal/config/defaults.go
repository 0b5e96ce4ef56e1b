package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/dino.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Surface: Surface{
			Width:      360,
			Height:     120,
			CellWidth:  6,
			CellHeight: 10,
		},
		Physics: Physics{
			Gravity:     0.6,
			JumpImpulse: -10,
			GroundY:     110,
		},
		Player: Player{
			X:      20,
			Width:  20,
			Height: 20,
		},
		Obstacles: Obstacles{
			Width:       15,
			Height:      20,
			MinGap:      150,
			GapJitter:   100,
			SpawnChance: 0.02,
		},
		Speed: Speed{
			Base:  5,
			Step:  0.2,
			Every: 5,
		},
		Input: Input{
			JumpKey: "Space",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
