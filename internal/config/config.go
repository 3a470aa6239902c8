// Package config provides YAML-based configuration loading for the 2048 game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
	Records   RecordsConfig   `yaml:"records"`
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	GridSize int `yaml:"grid_size"` // Total cell count, a perfect square
}

// SpawnConfig defines how new tiles are chosen.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // 0.0-1.0
}

// AnimationConfig defines animation lengths in ticks.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	MergeTicks int `yaml:"merge_ticks"`
	SpawnTicks int `yaml:"spawn_ticks"`
}

// RecordsConfig defines how best scores are keyed in the record store.
type RecordsConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Side returns the board dimension for the configured grid size.
func (c T2048Config) Side() int {
	return int(math.Round(math.Sqrt(float64(c.Board.GridSize))))
}

// WithSide returns a copy of the config with a side×side board.
func (c T2048Config) WithSide(side int) T2048Config {
	c.Board.GridSize = side * side
	return c
}

// Validate checks the config for values the game cannot run with.
func (c T2048Config) Validate() error {
	size := c.Board.GridSize
	if side := c.Side(); size <= 0 || side*side != size {
		return fmt.Errorf("%w: board.grid_size %d is not a positive perfect square", ErrInvalidConfig, size)
	}
	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: spawn.four_probability %v outside [0, 1]", ErrInvalidConfig, p)
	}
	a := c.Animation
	if a.SlideTicks < 0 || a.MergeTicks < 0 || a.SpawnTicks < 0 {
		return fmt.Errorf("%w: animation ticks must not be negative", ErrInvalidConfig)
	}
	return nil
}
