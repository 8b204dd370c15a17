package config

import (
	_ "embed"
)

//go:embed defaults/tubesort.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file is
// found or the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			MaxStates: 200_000,
			MaxDepth:  80,
		},
		Generator: GeneratorConfig{
			Capacity:    4,
			MaxAttempts: 100,
		},
		Tiers: map[string]TierConfig{
			string(TierEasy): {
				Containers:          5,
				Colors:              3,
				ShuffleMin:          6,
				ShuffleMax:          10,
				MinOptimal:          2,
				MoveLimitMultiplier: 2.0,
				StarMultipliers:     [3]float64{1.4, 1.2, 1.05},
			},
			string(TierNormal): {
				Containers:          6,
				Colors:              4,
				ShuffleMin:          12,
				ShuffleMax:          18,
				MinOptimal:          4,
				MoveLimitMultiplier: 1.5,
				StarMultipliers:     [3]float64{1.35, 1.15, 1.05},
			},
			string(TierHard): {
				Containers:          7,
				Colors:              5,
				ShuffleMin:          20,
				ShuffleMax:          30,
				MinOptimal:          6,
				MoveLimitMultiplier: 1.3,
				StarMultipliers:     [3]float64{1.3, 1.15, 1.05},
			},
			string(TierExpert): {
				Containers:          8,
				Colors:              6,
				ShuffleMin:          30,
				ShuffleMax:          45,
				MinOptimal:          8,
				MoveLimitMultiplier: 1.2,
				StarMultipliers:     [3]float64{1.25, 1.1, 1.05},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
