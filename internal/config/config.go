// Package config provides YAML/TOML-based configuration loading for the runner.
package config

// Config contains all tunables of the runner simulation.
type Config struct {
	Surface   Surface   `yaml:"surface" toml:"surface"`
	Physics   Physics   `yaml:"physics" toml:"physics"`
	Player    Player    `yaml:"player" toml:"player"`
	Obstacles Obstacles `yaml:"obstacles" toml:"obstacles"`
	Speed     Speed     `yaml:"speed" toml:"speed"`
	Input     Input     `yaml:"input" toml:"input"`
}

// Surface defines the drawable area in world units and how it maps to terminal cells.
type Surface struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// Physics defines gravity and jump integration.
type Physics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"` // Negative = up
	GroundY     float64 `yaml:"ground_y" toml:"ground_y"`
}

// Player defines the runner's fixed column and hitbox.
type Player struct {
	X      float64 `yaml:"x" toml:"x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Obstacles defines obstacle size and the spawn gap policy.
type Obstacles struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	MinGap      float64 `yaml:"min_gap" toml:"min_gap"`
	GapJitter   float64 `yaml:"gap_jitter" toml:"gap_jitter"`
	SpawnChance float64 `yaml:"spawn_chance" toml:"spawn_chance"` // Per eligible tick
}

// Speed defines the scroll speed and its ramp.
type Speed struct {
	Base  float64 `yaml:"base" toml:"base"`
	Step  float64 `yaml:"step" toml:"step"`   // Added every Every points
	Every int     `yaml:"every" toml:"every"` // Points per ramp step
}

// Input defines which key counts as a jump.
type Input struct {
	JumpKey string `yaml:"jump_key" toml:"jump_key"` // One of JumpKeys
}

// JumpKeys are the key codes a host can bind to the jump action. Enter is
// not among them because it opens the island.
var JumpKeys = []string{"Space", "ArrowUp"}
