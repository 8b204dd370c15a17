package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/EngEryx/tubesort/internal/generator"
	"github.com/EngEryx/tubesort/internal/levels"
	"github.com/EngEryx/tubesort/internal/storage"
)

var (
	flagGenDifficulty string
	flagGenCount      int
	flagGenSeed       uint64
	flagGenNoStore    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new solvable puzzles",
	Long: `Generate one or more guaranteed-solvable puzzles at the requested
difficulty. Puzzles are written as YAML files into the levels directory and
recorded in the results database.

Generation is deterministic: the same --seed always produces the same
puzzles, and each puzzle file records the seed that made it.

Examples:
  tubesort generate --difficulty easy
  tubesort generate --difficulty expert --count 20
  tubesort generate --difficulty normal --seed 42`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&flagGenDifficulty, "difficulty", "normal", "Difficulty tier")
	generateCmd.Flags().IntVar(&flagGenCount, "count", 1, "Number of puzzles to generate")
	generateCmd.Flags().Uint64Var(&flagGenSeed, "seed", 0, "Base RNG seed (0 = time-based)")
	generateCmd.Flags().BoolVar(&flagGenNoStore, "no-store", false, "Skip recording puzzles in the database")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "generate"})

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tier, err := cfg.ParseTier(flagGenDifficulty)
	if err != nil {
		return err
	}
	params, err := cfg.Params(tier)
	if err != nil {
		return err
	}

	baseSeed := flagGenSeed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}

	var store *storage.Store
	if !flagGenNoStore {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open database, continuing without it", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	loader := levels.NewLoader(flagLevelsDir)

	for i := 0; i < flagGenCount; i++ {
		seed := generator.DeriveSeed(baseSeed, i)

		puzzle, err := generator.Generate(params, seed)
		if err != nil {
			var failure *generator.FailureError
			if errors.As(err, &failure) {
				logger.Error("generation failed",
					"difficulty", tier,
					"seed", seed,
					"attempts", failure.Attempts,
				)
				return err
			}
			return err
		}

		id := fmt.Sprintf("%s-%08x", tier, seed&0xFFFFFFFF)
		lvl := levels.FromState(id, "", string(tier), puzzle.State)
		lvl.Optimal = puzzle.OptimalMoves
		lvl.Seed = seed

		path, err := loader.WriteFile(lvl)
		if err != nil {
			return err
		}

		if store != nil {
			_, err = store.SavePuzzle(storage.PuzzleRecord{
				PuzzleID:     id,
				Difficulty:   string(tier),
				Seed:         seed,
				OptimalMoves: puzzle.OptimalMoves,
				MoveLimit:    puzzle.MoveLimit,
				Stars:        puzzle.StarThresholds,
				StateKey:     puzzle.State.Key(),
			})
			if err != nil {
				logger.Warn("could not record puzzle", "id", id, "error", err)
			}
		}

		logger.Info("generated",
			"id", id,
			"optimal", puzzle.OptimalMoves,
			"limit", puzzle.MoveLimit,
			"stars", fmt.Sprintf("%v", puzzle.StarThresholds),
			"attempts", puzzle.Attempts,
			"file", path,
		)
	}

	return nil
}
