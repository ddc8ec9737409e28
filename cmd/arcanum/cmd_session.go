package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"arcanum.games/engine/internal/domain"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the player session and progression",
	RunE:  runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	sess, err := svc.Session(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("level %d, %d solved, next difficulty %s\n",
		sess.Level, sess.PuzzlesSolved, domain.DifficultyForLevel(sess.Level))
	fmt.Printf("theme %s, unlocked: %s\n", sess.CurrentTheme, strings.Join(sess.UnlockedThemes, ", "))
	if sess.ActivePuzzle != "" {
		fmt.Printf("active puzzle %s\n", sess.ActivePuzzle)
	}
	return nil
}
