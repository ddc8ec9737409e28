package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved puzzle and its recorded progress",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	p, a, err := svc.LoadPuzzle(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printPuzzle(p)

	rep, err := svc.Validate(cmd.Context(), p, a)
	if err != nil {
		return err
	}
	fmt.Println()
	printAssignment(p, a)
	fmt.Printf("%d of %d placed\n", rep.Matched+rep.Mismatched, p.Scheme.Cells())
	return nil
}
