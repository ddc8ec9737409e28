// Package hint picks the next cell to reveal for a stuck player.
package hint

import (
	"context"
	"fmt"

	"arcanum.games/engine/internal/domain"
	"arcanum.games/engine/internal/ports"
)

// Deducer prefers hints the player could have reasoned out: it reruns
// constraint propagation from the player's correct entries and offers a
// cell the clues force, quoting a clue that mentions it. Only when
// propagation pins nothing does it reveal the first outstanding cell
// from the stored solution.
type Deducer struct {
	Solver ports.Solver
}

func New(s ports.Solver) *Deducer { return &Deducer{Solver: s} }

func (h *Deducer) Hint(ctx context.Context, p *domain.Puzzle, a domain.Assignment) (*domain.Hint, error) {
	cells := p.Scheme.Cells()
	// Keep only entries the player has right; wrong guesses would poison
	// the propagation.
	known := domain.NewAssignment(&p.Scheme)
	for i := 0; i < cells && i < len(a); i++ {
		if a[i] != domain.Unassigned && a[i] == p.Solution[i] {
			known[i] = a[i]
		}
	}
	outstanding := make([]int, 0, cells)
	for i := 0; i < cells; i++ {
		if known[i] == domain.Unassigned {
			outstanding = append(outstanding, i)
		}
	}
	if len(outstanding) == 0 {
		return nil, fmt.Errorf("%w: nothing left to reveal", domain.ErrHintsExhausted)
	}

	forced, _, err := h.Solver.Deduce(ctx, &p.Scheme, p.Clues, known)
	if err != nil {
		return nil, err
	}
	for _, i := range outstanding {
		if forced[i] != domain.Unassigned && forced[i] == p.Solution[i] {
			return h.build(p, i), nil
		}
	}
	return h.build(p, outstanding[0]), nil
}

func (h *Deducer) build(p *domain.Puzzle, idx int) *domain.Hint {
	ref := p.Scheme.CellAt(idx)
	return &domain.Hint{
		Cell:   ref,
		Value:  p.Solution[idx],
		Text:   fmt.Sprintf("%s is %s.", p.CellName(ref), p.ValueName(ref, p.Solution[idx])),
		Reason: reason(p, ref),
	}
}

// reason quotes the first clue that bears on the cell, if any. Link and
// unlink operands are resolved through the solution so grid hints can
// quote them too.
func reason(p *domain.Puzzle, ref domain.CellRef) string {
	for _, c := range p.Clues {
		if c.MentionsResolved(&p.Scheme, p.Solution, ref) {
			return c.Text
		}
	}
	return ""
}
