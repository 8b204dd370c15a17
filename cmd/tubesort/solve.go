package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/EngEryx/tubesort/internal/solver"
)

var flagSolveShowMoves bool

var solveCmd = &cobra.Command{
	Use:   "solve <level>",
	Short: "Check a puzzle's solvability and optimal move count",
	Long: `Run the breadth-first solver on a puzzle and report whether it is
solvable, the optimal move count, and the search effort.

The level argument is a path to a level file or a level ID found in the
levels directory.

A puzzle the solver cannot crack within its state/depth budget is reported
as "no solution found within budget", which is not the same as proven
unsolvable.

Examples:
  tubesort solve levels/easy-0001.yaml
  tubesort solve easy-0001 --moves`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagSolveShowMoves, "moves", false, "Print the full optimal move sequence")
}

func runSolve(cmd *cobra.Command, args []string) error {
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

	res := solver.Solve(state, cfg.SolverOptions())

	fmt.Printf("Puzzle:          %s\n", lvl.ID)
	fmt.Printf("Result:          %s\n", res.Outcome)
	if res.Found() {
		fmt.Printf("Optimal moves:   %d\n", len(res.Moves))
	}
	fmt.Printf("States explored: %d\n", res.StatesExplored)
	fmt.Printf("Search time:     %s\n", res.Elapsed.Round(time.Microsecond))

	if flagSolveShowMoves && res.Found() {
		fmt.Println()
		for i, m := range res.Moves {
			fmt.Printf("  %2d. %s\n", i+1, m)
		}
	}

	if !res.Found() {
		os.Exit(1)
	}
	return nil
}
