// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// ElementalConfig contains all configuration for Elemental Breakout.
type ElementalConfig struct {
	Physics   ElementalPhysics   `yaml:"physics"`
	Board     ElementalBoard     `yaml:"board"`
	Reactions ElementalReactions `yaml:"reactions"`
	Gameplay  ElementalGameplay  `yaml:"gameplay"`
}

// ElementalPhysics defines motion parameters in world units per second.
// The simulation runs in a fixed 960x720 world; the renderer scales to
// the terminal.
type ElementalPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	BallRadius   float64 `yaml:"ball_radius"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
}

// ElementalBoard defines the brick grid generator parameters.
type ElementalBoard struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Spacing       float64 `yaml:"spacing"`
	BrickHeight   float64 `yaml:"brick_height"`
	TopOffset     float64 `yaml:"top_offset"`
	ChunkMin      int     `yaml:"chunk_min"`
	ChunkMax      int     `yaml:"chunk_max"`
	NeutralChance int     `yaml:"neutral_chance"` // Percent chance a chunk is neutral
	GapChance     int     `yaml:"gap_chance"`     // Percent chance a cell is omitted
	HitPoints     int     `yaml:"hit_points"`
}

// ElementalReactions defines timing for elemental reactions, in seconds.
type ElementalReactions struct {
	AoEDelay        float64 `yaml:"aoe_delay"`         // Delay before an area explosion fires
	ChainStepDelay  float64 `yaml:"chain_step_delay"`  // Per-step delay of a Surge chain
	FreezeDuration  float64 `yaml:"freeze_duration"`   // How long the ball stays frozen
	MessageDuration float64 `yaml:"message_duration"`  // How long reaction messages stay visible
}

// ElementalGameplay defines scoring and run parameters.
type ElementalGameplay struct {
	Lives       int     `yaml:"lives"`
	BrickPoints int     `yaml:"brick_points"`
	WaveSpeedup float64 `yaml:"wave_speedup"` // Ball speed multiplier per cleared wave
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
