package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			GridSize: 16,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.1,
		},
		Animation: AnimationConfig{
			SlideTicks: 8,
			MergeTicks: 6,
			SpawnTicks: 6,
		},
		Records: RecordsConfig{
			KeyPrefix: "t2048",
		},
	}
}
