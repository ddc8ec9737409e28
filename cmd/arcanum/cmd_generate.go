package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"arcanum.games/engine/internal/domain"
)

var (
	generateType       string
	generateDifficulty string
	generateSeed       int64
	generateSave       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle with a unique solution",
	Long: `Builds a fresh puzzle of the given type, proves its clue set pins
exactly one solution, and prints the clues. With --save the puzzle is
persisted and becomes the session's active puzzle.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateType, "type", "t", "logic-grid", "puzzle type")
	generateCmd.Flags().StringVarP(&generateDifficulty, "difficulty", "d", "", "difficulty (defaults from the session level)")
	generateCmd.Flags().Int64VarP(&generateSeed, "seed", "s", 0, "random seed, 0 picks one")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "persist the puzzle and start it")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	t, err := domain.ParsePuzzleType(generateType)
	if err != nil {
		return err
	}

	var d domain.Difficulty
	if generateDifficulty != "" {
		if d, err = domain.ParseDifficulty(generateDifficulty); err != nil {
			return err
		}
	} else {
		sess, err := svc.Session(cmd.Context())
		if err != nil {
			return err
		}
		d = domain.DifficultyForLevel(sess.Level)
	}

	seed := generateSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p, stats, err := svc.Generate(cmd.Context(), t, d, seed)
	if err != nil {
		return err
	}
	printPuzzle(p)
	fmt.Printf("\n%d clues, %d solver nodes, %v\n", len(p.Clues), stats.Nodes, stats.Duration)

	if !generateSave {
		return nil
	}
	if err := svc.SavePuzzle(cmd.Context(), p, nil); err != nil {
		return err
	}
	sess, err := svc.Session(cmd.Context())
	if err != nil {
		return err
	}
	if err := svc.StartPuzzle(cmd.Context(), sess, p); err != nil {
		return err
	}
	fmt.Printf("saved %s\n", p.ID)
	return nil
}
