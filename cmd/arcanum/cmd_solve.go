package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arcanum.games/engine/internal/domain"
)

var solveCmd = &cobra.Command{
	Use:   "solve <id>",
	Short: "Run the solver on a saved puzzle and print its solution",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, _, err := svc.LoadPuzzle(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	res, stats, err := svc.Solve(cmd.Context(), p)
	if err != nil {
		return err
	}
	fmt.Printf("%s, %d nodes, %v\n", res.Outcome, stats.Nodes, stats.Duration)
	if res.Outcome != domain.OutcomeUnique {
		return nil
	}
	printAssignment(p, res.Assignment)
	return nil
}
