package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"arcanum.games/engine/internal/domain"
)

var checkSet []string

var checkCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Record answers on a saved puzzle and validate them",
	Long: `Writes the given answers into the puzzle's working assignment,
validates every cell against the solution, and persists the result.
A fully correct assignment completes the puzzle and advances the
session.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringArrayVar(&checkSet, "set", nil, `answer as "entity/column=value" (repeatable)`)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, a, err := svc.LoadPuzzle(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	for _, entry := range checkSet {
		if err := applyEntry(p, a, entry); err != nil {
			return err
		}
	}

	rep, err := svc.Validate(cmd.Context(), p, a)
	if err != nil {
		return err
	}
	for _, c := range rep.Cells {
		if c.Status == domain.StatusMismatch {
			fmt.Printf("wrong: %s\n", p.CellName(c.Cell))
		}
	}
	fmt.Printf("%d correct, %d wrong, %d open\n", rep.Matched, rep.Mismatched, rep.Unassigned)

	if err := svc.SavePuzzle(cmd.Context(), p, a); err != nil {
		return err
	}
	if !rep.Solved {
		return nil
	}
	sess, err := svc.Session(cmd.Context())
	if err != nil {
		return err
	}
	if err := svc.RecordSolve(cmd.Context(), sess); err != nil {
		return err
	}
	fmt.Printf("Solved. Level %d, %d puzzles solved.\n", sess.Level, sess.PuzzlesSolved)
	return nil
}

// applyEntry parses one "entity/column=value" answer and writes it into
// the assignment. Single-column puzzles may omit the column part.
func applyEntry(p *domain.Puzzle, a domain.Assignment, entry string) error {
	lhs, val, ok := strings.Cut(entry, "=")
	if !ok {
		return fmt.Errorf("malformed answer %q, want entity/column=value", entry)
	}
	entName, colName, ok := strings.Cut(lhs, "/")
	if !ok {
		if len(p.Scheme.Columns) != 1 {
			return fmt.Errorf("malformed answer %q, want entity/column=value", entry)
		}
		entName, colName = lhs, p.Scheme.Columns[0].Category.Name
	}

	e := p.Scheme.Primary.Index(strings.TrimSpace(entName))
	if e < 0 {
		return fmt.Errorf("unknown %s %q", strings.ToLower(p.Scheme.Primary.Name), entName)
	}
	col := -1
	for i := range p.Scheme.Columns {
		if strings.EqualFold(p.Scheme.Columns[i].Category.Name, strings.TrimSpace(colName)) {
			col = i
			break
		}
	}
	if col < 0 {
		return fmt.Errorf("unknown column %q", colName)
	}
	cat := &p.Scheme.Columns[col].Category
	v := cat.Index(strings.TrimSpace(val))
	if v < 0 {
		return fmt.Errorf("no %s named %q", strings.ToLower(cat.Name), val)
	}
	a[p.Scheme.CellIndex(e, col)] = v
	return nil
}
