package validator

import (
	"context"

	"arcanum.games/engine/internal/domain"
)

// CellValidator grades a working assignment cell by cell against the
// puzzle's stored solution. Malformed input never errors: an absent or
// negative value reads as unassigned, anything else that differs from
// the solution as a mismatch.
type CellValidator struct{}

func New() *CellValidator { return &CellValidator{} }

func (v *CellValidator) Validate(ctx context.Context, p *domain.Puzzle, a domain.Assignment) *domain.Report {
	cells := p.Scheme.Cells()
	rep := &domain.Report{Cells: make([]domain.CellCheck, 0, cells)}
	for idx := 0; idx < cells; idx++ {
		got := domain.Unassigned
		if idx < len(a) {
			got = a[idx]
		}
		want := domain.Unassigned
		if idx < len(p.Solution) {
			want = p.Solution[idx]
		}
		status := domain.StatusUnassigned
		switch {
		case got < 0:
			rep.Unassigned++
		case got == want:
			status = domain.StatusMatch
			rep.Matched++
		default:
			status = domain.StatusMismatch
			rep.Mismatched++
		}
		rep.Cells = append(rep.Cells, domain.CellCheck{Cell: p.Scheme.CellAt(idx), Status: status})
	}
	rep.Solved = cells > 0 && rep.Matched == cells
	return rep
}
