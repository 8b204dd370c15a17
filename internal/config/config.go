// Package config provides YAML-based configuration loading and difficulty
// tier management for the tubesort engine.
package config

// Config is the root configuration: solver budgets, generation limits, and
// the difficulty tier table.
type Config struct {
	Solver    SolverConfig          `yaml:"solver"`
	Generator GeneratorConfig       `yaml:"generator"`
	Tiers     map[string]TierConfig `yaml:"tiers"`
}

// SolverConfig bounds the breadth-first search.
type SolverConfig struct {
	MaxStates int `yaml:"max_states"`
	MaxDepth  int `yaml:"max_depth"`
}

// GeneratorConfig holds tier-independent generation parameters.
type GeneratorConfig struct {
	Capacity    int `yaml:"capacity"`
	MaxAttempts int `yaml:"max_attempts"`
}

// TierConfig defines one difficulty tier. Container count, color count and
// shuffle range all widen as tiers rise; the multipliers tighten.
type TierConfig struct {
	Containers int `yaml:"containers"`
	Colors     int `yaml:"colors"`
	ShuffleMin int `yaml:"shuffle_min"`
	ShuffleMax int `yaml:"shuffle_max"`

	// MinOptimal is the minimum optimal move count a generated puzzle
	// must have; shorter puzzles are rejected as trivial.
	MinOptimal int `yaml:"min_optimal"`

	// MoveLimitMultiplier scales the optimal move count into the move
	// limit. Harder tiers use smaller multipliers.
	MoveLimitMultiplier float64 `yaml:"move_limit_multiplier"`

	// StarMultipliers scale the optimal count into the three star
	// thresholds, loosest to tightest.
	StarMultipliers [3]float64 `yaml:"star_multipliers"`
}
