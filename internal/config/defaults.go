package config

import (
	_ "embed"
)

//go:embed defaults/elemental.yaml
var defaultElementalYAML []byte

// DefaultElementalConfig returns the default Elemental Breakout configuration.
// The values mirror defaults/elemental.yaml and serve as a fallback if the
// embedded YAML cannot be parsed.
func DefaultElementalConfig() ElementalConfig {
	return ElementalConfig{
		Physics: ElementalPhysics{
			BallSpeed:    420,
			BallRadius:   10,
			PaddleSpeed:  640,
			PaddleWidth:  120,
			PaddleHeight: 20,
		},
		Board: ElementalBoard{
			Rows:          6,
			Cols:          12,
			Spacing:       8,
			BrickHeight:   28,
			TopOffset:     100,
			ChunkMin:      3,
			ChunkMax:      6,
			NeutralChance: 15,
			GapChance:     28,
			HitPoints:     2,
		},
		Reactions: ElementalReactions{
			AoEDelay:        0.18,
			ChainStepDelay:  0.08,
			FreezeDuration:  2.0,
			MessageDuration: 1.2,
		},
		Gameplay: ElementalGameplay{
			Lives:       3,
			BrickPoints: 10,
			WaveSpeedup: 1.15,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultElementalYAML
}
