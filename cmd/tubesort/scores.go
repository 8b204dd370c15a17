package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/EngEryx/tubesort/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [puzzle]",
	Short: "Show stored play results",
	Long: `Without an argument, shows per-difficulty generation statistics.
With a puzzle ID, shows the best and most recent results for that puzzle.

Examples:
  tubesort scores
  tubesort scores easy-0001`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printStats(store)
	}
	return printPuzzleResults(store, args[0])
}

func printStats(store *storage.Store) error {
	stats, err := store.StatsByDifficulty()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No puzzles recorded yet.")
		return nil
	}

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-10s  %-8s  %-12s  %s\n", "Difficulty", "Puzzles", "Avg optimal", "Max optimal")
	fmt.Printf("  %-10s  %-8s  %-12s  %s\n", "----------", "-------", "-----------", "-----------")
	for _, name := range names {
		d := stats[name]
		fmt.Printf("  %-10s  %-8d  %-12.1f  %d\n", d.Difficulty, d.PuzzleCount, d.AvgOptimal, d.MaxOptimal)
	}
	return nil
}

func printPuzzleResults(store *storage.Store, puzzleID string) error {
	puzzle, err := store.PuzzleByID(puzzleID)
	if err != nil {
		return err
	}
	if puzzle == nil {
		fmt.Printf("Puzzle %q is not in the database.\n", puzzleID)
		return nil
	}

	fmt.Printf("Puzzle:  %s (%s)\n", puzzle.PuzzleID, puzzle.Difficulty)
	fmt.Printf("Optimal: %d moves, limit %d, stars at %d/%d/%d\n",
		puzzle.OptimalMoves, puzzle.MoveLimit, puzzle.Stars[0], puzzle.Stars[1], puzzle.Stars[2])
	fmt.Println()

	best, err := store.BestResult(puzzleID)
	if err != nil {
		return err
	}
	if best == nil {
		fmt.Println("Never solved. Be the first!")
		return nil
	}
	fmt.Printf("Best: %d moves, %d star(s)\n", best.Moves, best.Stars)
	fmt.Println()

	results, err := store.ResultsFor(puzzleID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "Moves", "Stars", "Hints", "Date")
	fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "-----", "-----", "-----", "----")
	for _, r := range results {
		outcome := fmt.Sprintf("%d", r.Stars)
		if !r.Won {
			outcome = "lost"
		}
		fmt.Printf("  %-6d  %-6s  %-6d  %s\n", r.Moves, outcome, r.Hints, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
