package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hintCmd = &cobra.Command{
	Use:   "hint <id>",
	Short: "Reveal one cell of a saved puzzle",
	Args:  cobra.ExactArgs(1),
	RunE:  runHint,
}

func init() {
	rootCmd.AddCommand(hintCmd)
}

func runHint(cmd *cobra.Command, args []string) error {
	p, a, err := svc.LoadPuzzle(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	sess, err := svc.Session(cmd.Context())
	if err != nil {
		return err
	}
	h, err := svc.Hint(cmd.Context(), sess, p, a)
	if err != nil {
		return err
	}
	fmt.Println(h.Text)
	if h.Reason != "" {
		fmt.Printf("because: %s\n", h.Reason)
	}
	fmt.Printf("%d of %d hints used\n", sess.HintsUsed, svc.HintBudget)
	return nil
}
