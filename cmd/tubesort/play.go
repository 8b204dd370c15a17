package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/EngEryx/tubesort/internal/storage"
	"github.com/EngEryx/tubesort/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a puzzle interactively",
	Long: `Play a puzzle in the terminal.

Controls:
  Left/Right  - Move between tubes
  Enter/Space - Pick a tube, then pour into another
  Esc         - Cancel the pick
  u           - Undo the last move
  r           - Reset the puzzle
  ?           - Ask the solver for a hint
  q/Ctrl+C    - Quit

Examples:
  tubesort play easy-0001
  tubesort play levels/hard-00c0ffee.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lvl, err := loadLevel(args[0])
	if err != nil {
		return err
	}

	// A narrow terminal makes the tubes unreadable; warn early.
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if need := len(lvl.Containers) * 5; w < need {
			fmt.Fprintf(os.Stderr, "Warning: terminal width %d is below %d, display may wrap\n", w, need)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(lvl, cfg.SolverOptions(), store)
}
