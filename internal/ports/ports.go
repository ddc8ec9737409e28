package ports

import (
	"context"
	"time"

	"arcanum.games/engine/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Add folds another operation's stats into this one.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Duration += o.Duration
}

// Solver computes the satisfiability class of a clue set over a scheme.
// Deduce runs constraint propagation only (no search) from a set of known
// cells and returns every cell the clues force.
type Solver interface {
	Solve(ctx context.Context, s *domain.Scheme, clues []domain.Clue) (domain.Result, Stats, error)
	Deduce(ctx context.Context, s *domain.Scheme, clues []domain.Clue, known domain.Assignment) (domain.Assignment, Stats, error)
}

// Assembler builds complete puzzles: random solution, over-complete clue
// pool, minimization under the solver.
type Assembler interface {
	Generate(ctx context.Context, t domain.PuzzleType, d domain.Difficulty, seed int64) (*domain.Puzzle, Stats, error)
}

// Validator compares a player assignment against the stored solution.
// It reports malformed input as unassigned/mismatched cells, never as an
// error.
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle, a domain.Assignment) *domain.Report
}

// Hinter reveals one outstanding cell. Budget enforcement lives with the
// caller; the hinter only picks the cell.
type Hinter interface {
	Hint(ctx context.Context, p *domain.Puzzle, a domain.Assignment) (*domain.Hint, error)
}

// PuzzleStore persists and retrieves save records.
type PuzzleStore interface {
	Save(ctx context.Context, rec *domain.SaveRecord) error
	Load(ctx context.Context, id string) (*domain.SaveRecord, error)
	List(ctx context.Context) ([]domain.SaveSummary, error)
	Delete(ctx context.Context, id string) error
}

// SessionStore persists the single player session.
type SessionStore interface {
	SaveSession(ctx context.Context, s *domain.Session) error
	LoadSession(ctx context.Context) (*domain.Session, error)
}
