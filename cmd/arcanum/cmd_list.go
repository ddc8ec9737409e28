package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved puzzles",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sums, err := svc.ListSaves(cmd.Context())
	if err != nil {
		return err
	}
	if len(sums) == 0 {
		fmt.Println("no saves")
		return nil
	}
	for _, s := range sums {
		when := time.Unix(0, s.SavedAt).Format("2006-01-02 15:04")
		fmt.Printf("%-42s %-16s %-7s %s  %s\n", s.ID, s.Type, s.Difficulty, when, s.Title)
	}
	return nil
}
