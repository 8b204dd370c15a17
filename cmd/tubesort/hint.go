package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/EngEryx/tubesort/internal/solver"
)

var flagHintMoves string

var hintCmd = &cobra.Command{
	Use:   "hint <level>",
	Short: "Suggest the next move on the shortest solution",
	Long: `Search for the optimal solution of a puzzle and print only its
first move. With --moves, the listed pours are applied to the initial
configuration first, so a hint can be requested for a game in progress.

Examples:
  tubesort hint easy-0001
  tubesort hint easy-0001 --moves A-C,B-D`,
	Args: cobra.ExactArgs(1),
	RunE: runHint,
}

func init() {
	hintCmd.Flags().StringVar(&flagHintMoves, "moves", "", "Comma-separated moves already played, as from-to pairs (e.g. A-C,B-D)")
}

func runHint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lvl, err := loadLevel(args[0])
	if err != nil {
		return err
	}
	state, err := lvl.NewState()
	if err != nil {
		return err
	}

	if flagHintMoves != "" {
		for _, pair := range strings.Split(flagHintMoves, ",") {
			from, to, ok := strings.Cut(strings.TrimSpace(pair), "-")
			if !ok {
				return fmt.Errorf("invalid move %q: expected from-to", pair)
			}
			state, err = state.Apply(from, to)
			if err != nil {
				return fmt.Errorf("replaying move %q: %w", pair, err)
			}
		}
	}

	hint := solver.NextHint(state, cfg.SolverOptions())

	fmt.Printf("Puzzle:          %s\n", lvl.ID)
	if hint.Found {
		fmt.Printf("Next move:       %s\n", hint.Move)
		fmt.Printf("Moves remaining: %d\n", hint.MovesRemaining)
	} else {
		fmt.Printf("No hint:         %s\n", hint.Outcome)
	}
	fmt.Printf("States explored: %d\n", hint.StatesExplored)
	fmt.Printf("Search time:     %s\n", hint.Elapsed.Round(time.Microsecond))

	return nil
}
