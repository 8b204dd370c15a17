package config

import (
	"fmt"
	"sort"

	"github.com/EngEryx/tubesort/internal/generator"
	"github.com/EngEryx/tubesort/internal/solver"
)

// Tier names a difficulty level.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierNormal Tier = "normal"
	TierHard   Tier = "hard"
	TierExpert Tier = "expert"
)

// ParseTier validates a difficulty name against the configured tiers.
func (c *Config) ParseTier(name string) (Tier, error) {
	if _, ok := c.Tiers[name]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (have: %v)", name, c.TierNames())
	}
	return Tier(name), nil
}

// TierNames returns the configured tier names in sorted order.
func (c *Config) TierNames() []string {
	names := make([]string, 0, len(c.Tiers))
	for name := range c.Tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Params assembles the generator parameters for a tier.
func (c *Config) Params(tier Tier) (generator.Params, error) {
	tc, ok := c.Tiers[string(tier)]
	if !ok {
		return generator.Params{}, fmt.Errorf("config: unknown difficulty %q", tier)
	}
	p := generator.Params{
		Containers:          tc.Containers,
		Colors:              tc.Colors,
		Capacity:            c.Generator.Capacity,
		ShuffleMin:          tc.ShuffleMin,
		ShuffleMax:          tc.ShuffleMax,
		MinOptimal:          tc.MinOptimal,
		MoveLimitMultiplier: tc.MoveLimitMultiplier,
		StarMultipliers:     tc.StarMultipliers,
		MaxAttempts:         c.Generator.MaxAttempts,
		Solver:              c.SolverOptions(),
	}
	return p, p.Validate()
}

// SolverOptions converts the solver section into search options.
func (c *Config) SolverOptions() solver.Options {
	opts := solver.DefaultOptions()
	if c.Solver.MaxStates > 0 {
		opts.MaxStates = c.Solver.MaxStates
	}
	if c.Solver.MaxDepth > 0 {
		opts.MaxDepth = c.Solver.MaxDepth
	}
	return opts
}
