package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EngEryx/tubesort/internal/levels"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List puzzle files in the levels directory",
	Long:  `Shows all puzzles found in the levels directory, sorted by ID.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	loader := levels.NewLoader(flagLevelsDir)
	lvls, err := loader.LoadAll()
	if err != nil {
		return err
	}

	if len(lvls) == 0 {
		fmt.Println("No puzzles found.")
		fmt.Println()
		fmt.Println("Run 'tubesort generate' to create some.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-10s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Difficulty", "Optimal", "Limit", "Tubes")
	fmt.Printf("  %-*s  %-10s  %-7s  %-5s  %s\n", maxIDLen, "--", "----------", "-------", "-----", "-----")

	for _, l := range lvls {
		difficulty := l.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-*s  %-10s  %-7d  %-5d  %d\n",
			maxIDLen, l.ID, difficulty, l.Optimal, l.MoveLimit, len(l.Containers))
	}

	fmt.Println()
	fmt.Println("Run 'tubesort play <id>' to play a puzzle.")
	return nil
}
