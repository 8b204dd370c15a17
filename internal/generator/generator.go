// Package generator produces guaranteed-solvable tube puzzles by
// reverse-solving: scrambling a trivially solved configuration with random
// legal moves, then confirming solvability and optimal length with the
// solver. Every accepted transformation is itself a legal move, so
// solvability holds by construction; the solver run is what derives the
// optimal count the move limit and star thresholds hang off.
package generator

import (
	"fmt"
	"math"

	"github.com/EngEryx/tubesort/internal/engine"
	"github.com/EngEryx/tubesort/internal/solver"
)

// Params configures a generation request. Tier presets in the config
// package produce these; the tuning constants are inputs, not behavior.
type Params struct {
	Containers int // Total containers, including empty workspace tubes
	Colors     int // Distinct colors; each fills one container when solved
	Capacity   int // Units per container

	ShuffleMin int // Minimum scramble moves
	ShuffleMax int // Maximum scramble moves

	// MinOptimal rejects puzzles whose optimal solution is shorter,
	// filtering out trivial scrambles.
	MinOptimal int

	// MoveLimitMultiplier derives the move limit from the optimal count.
	// Lower multipliers mean a tighter budget.
	MoveLimitMultiplier float64

	// StarMultipliers derive the three star thresholds from the optimal
	// count, loosest to tightest.
	StarMultipliers [3]float64

	// MaxAttempts bounds retries before generation fails outright.
	MaxAttempts int

	Solver solver.Options
}

// Validate checks the parameters for internal consistency.
func (p Params) Validate() error {
	if p.Colors < 2 {
		return fmt.Errorf("generator: need at least 2 colors, got %d", p.Colors)
	}
	if p.Colors > int(engine.ColorCount) {
		return fmt.Errorf("generator: at most %d colors supported, got %d", engine.ColorCount, p.Colors)
	}
	if p.Containers <= p.Colors {
		return fmt.Errorf("generator: need more containers (%d) than colors (%d) for workspace", p.Containers, p.Colors)
	}
	if p.Capacity < 2 {
		return fmt.Errorf("generator: capacity must be at least 2, got %d", p.Capacity)
	}
	if p.ShuffleMin < 1 || p.ShuffleMax < p.ShuffleMin {
		return fmt.Errorf("generator: invalid shuffle range [%d, %d]", p.ShuffleMin, p.ShuffleMax)
	}
	if p.MaxAttempts < 1 {
		return fmt.Errorf("generator: max attempts must be positive, got %d", p.MaxAttempts)
	}
	return nil
}

// Puzzle is an accepted generation result.
type Puzzle struct {
	State          engine.PuzzleState
	OptimalMoves   int
	MoveLimit      int
	StarThresholds [3]int
	Seed           uint64 // Seed that produced this puzzle
	Attempts       int    // Attempts consumed, including the successful one
}

// FailureError reports an exhausted retry budget. Fatal to the request, not
// to the process; callers may retry with different parameters.
type FailureError struct {
	Attempts int
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("generator: no acceptable puzzle after %d attempts", e.Attempts)
}

// Generate produces a solvable puzzle for the given parameters and seed.
// The same (params, seed) pair always yields the same puzzle. A zero seed
// selects the RNG's default.
func Generate(p Params, seed uint64) (Puzzle, error) {
	if err := p.Validate(); err != nil {
		return Puzzle{}, err
	}

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		attemptSeed := seed
		if attempt > 1 {
			attemptSeed = DeriveSeed(seed, attempt)
		}

		puzzle, ok := generateOnce(p, attemptSeed)
		if ok {
			puzzle.Seed = seed
			puzzle.Attempts = attempt
			return puzzle, nil
		}
	}

	return Puzzle{}, &FailureError{Attempts: p.MaxAttempts}
}

// generateOnce runs a single scramble-and-verify attempt.
func generateOnce(p Params, seed uint64) (Puzzle, bool) {
	r := newRNG(seed)

	containers := solvedConfiguration(p)
	shuffleCount := p.ShuffleMin + r.intn(p.ShuffleMax-p.ShuffleMin+1)
	containers = scramble(containers, shuffleCount, r)

	def := &engine.Definition{
		Capacity:   p.Capacity,
		Containers: containers,
	}
	state, err := engine.NewState(def)
	if err != nil {
		return Puzzle{}, false
	}
	if state.IsWon() {
		// Scramble degenerated back into a solved state.
		return Puzzle{}, false
	}

	res := solver.Solve(state, p.Solver)
	if !res.Found() || len(res.Moves) < p.MinOptimal {
		return Puzzle{}, false
	}

	optimal := len(res.Moves)
	def.MoveLimit = ceilMultiple(optimal, p.MoveLimitMultiplier)
	for i, m := range p.StarMultipliers {
		def.StarThresholds[i] = ceilMultiple(optimal, m)
	}
	// Thresholds tighten left to right and never drop below the optimal.
	for i := 2; i >= 0; i-- {
		if def.StarThresholds[i] < optimal {
			def.StarThresholds[i] = optimal
		}
		if i < 2 && def.StarThresholds[i] < def.StarThresholds[i+1] {
			def.StarThresholds[i] = def.StarThresholds[i+1]
		}
	}
	if def.MoveLimit < def.StarThresholds[0] {
		def.MoveLimit = def.StarThresholds[0]
	}

	return Puzzle{
		State:          state,
		OptimalMoves:   optimal,
		MoveLimit:      def.MoveLimit,
		StarThresholds: def.StarThresholds,
	}, true
}

// solvedConfiguration builds the trivially solved start: one full
// single-color container per color, the rest empty workspace.
func solvedConfiguration(p Params) []engine.Container {
	palette := engine.Palette(p.Colors)
	containers := make([]engine.Container, 0, p.Containers)
	for i := 0; i < p.Containers; i++ {
		id := containerID(i)
		if i < p.Colors {
			colors := make([]engine.Color, p.Capacity)
			for j := range colors {
				colors[j] = palette[i]
			}
			c, _ := engine.NewContainer(id, colors, p.Capacity)
			containers = append(containers, c)
		} else {
			containers = append(containers, engine.NewEmptyContainer(id, p.Capacity))
		}
	}
	return containers
}

// scramble applies random legal moves, pouring 1-2 units at a time rather
// than whole runs so the mixing is non-degenerate. Each pour is legal under
// the move grammar, which is what guarantees the result stays solvable.
func scramble(containers []engine.Container, count int, r *rng) []engine.Container {
	applied := 0
	// Random pair sampling can stall on unlucky picks; the guard bounds
	// the total sampling work without changing the accepted-move count.
	for guard := 0; applied < count && guard < count*25; guard++ {
		fromIdx := r.intn(len(containers))
		toIdx := r.intn(len(containers))
		if fromIdx == toIdx {
			continue
		}
		from, to := containers[fromIdx], containers[toIdx]
		if !engine.CanMove(from, to) {
			continue
		}

		limit := engine.TransferAmount(from, to)
		n := 1 + r.intn(2)
		if n > limit {
			n = limit
		}

		color, _ := from.TopColor()
		newFrom, err := from.RemoveTop(n)
		if err != nil {
			continue
		}
		poured := make([]engine.Color, n)
		for i := range poured {
			poured[i] = color
		}
		containers[fromIdx] = newFrom
		containers[toIdx] = to.Add(poured...)
		applied++
	}
	return containers
}

// containerID assigns stable single-letter ids, falling back to numbered
// ids past 'Z'.
func containerID(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("T%d", i+1)
}

// ceilMultiple rounds n*mult up to the next integer.
func ceilMultiple(n int, mult float64) int {
	return int(math.Ceil(float64(n) * mult))
}
