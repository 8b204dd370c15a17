// tubesort is a CLI for generating, solving and playing tube color-sorting
// puzzles in the terminal.
//
// Usage:
//
//	tubesort generate --difficulty hard   - Generate a solvable puzzle
//	tubesort solve <level>                - Check solvability and optimal moves
//	tubesort hint <level>                 - Suggest the next move
//	tubesort play <level>                 - Play a puzzle interactively
//	tubesort list                         - List available puzzles
//	tubesort scores [puzzle]              - Show stored play results
//	tubesort serve                        - Serve puzzles over SSH
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--levels <dir>   - Puzzle files directory (default: ./levels)
//	--db <path>      - Results database path (default: ~/.tubesort/tubesort.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EngEryx/tubesort/internal/config"
	"github.com/EngEryx/tubesort/internal/levels"
)

var (
	// Global flags
	flagConfig    string
	flagLevelsDir string
	flagDBPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tubesort",
	Short: "Tube sort - generate, solve and play color-sorting puzzles",
	Long: `Tubesort is a puzzle engine and terminal player for the classic
color-sorting tube game: pour contiguous color runs between fixed-capacity
tubes until every tube holds a single color.

Available commands:
  generate - Produce new guaranteed-solvable puzzles at a difficulty
  solve    - Check a puzzle's solvability and optimal move count
  hint     - Suggest the next move on the shortest solution
  play     - Play a puzzle interactively in the terminal
  list     - List puzzle files
  scores   - Show stored play results
  serve    - Serve the player over SSH

Examples:
  tubesort generate --difficulty easy --count 10
  tubesort solve levels/easy-0001.yaml
  tubesort play easy-0001
  tubesort serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "levels", "Directory of puzzle files")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tubesort/tubesort.db", "Path to results database")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the app configuration honoring the --config flag.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// loadLevel resolves a puzzle argument: a path to a level file, or a level
// ID looked up in the levels directory.
func loadLevel(arg string) (levels.Level, error) {
	loader := levels.NewLoader(flagLevelsDir)
	if _, err := os.Stat(arg); err == nil {
		return loader.LoadFile(arg)
	}
	return loader.LoadByID(arg)
}
