// Package usecase is the engine facade: generation, play, persistence
// and progression behind one type, with ports for every dependency.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"arcanum.games/engine/internal/content"
	"arcanum.games/engine/internal/domain"
	"arcanum.games/engine/internal/infrastructure/storage"
	"arcanum.games/engine/internal/ports"
)

// DefaultHintBudget is how many hints one puzzle grants.
const DefaultHintBudget = 2

// Service wires the engine's ports together with persistence and
// progression bookkeeping. Inner packages never log; the Service emits
// the debug/info events around generation, load checks and hints.
type Service struct {
	Solver    ports.Solver
	Assembler ports.Assembler
	Validator ports.Validator
	Hinter    ports.Hinter
	Puzzles   ports.PuzzleStore
	Sessions  ports.SessionStore
	// Themes drives progression unlocks; empty means no unlockables.
	Themes []content.Theme
	// HintBudget counts hints per puzzle; zero disallows hints entirely.
	HintBudget int
	Log        zerolog.Logger
}

func NewService(asm ports.Assembler, sol ports.Solver, v ports.Validator, h ports.Hinter, puzzles ports.PuzzleStore, sessions ports.SessionStore) *Service {
	return &Service{
		Solver:     sol,
		Assembler:  asm,
		Validator:  v,
		Hinter:     h,
		Puzzles:    puzzles,
		Sessions:   sessions,
		HintBudget: DefaultHintBudget,
		Log:        zerolog.Nop(),
	}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, t domain.PuzzleType, d domain.Difficulty, seed int64) (*domain.Puzzle, ports.Stats, error) {
	if u.Assembler == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, st, err := u.Assembler.Generate(ctx, t, d, seed)
	if err != nil {
		u.Log.Error().Err(err).Str("type", t.String()).Str("difficulty", d.String()).Int64("seed", seed).Msg("Generation failed")
		return nil, st, err
	}
	u.Log.Info().Str("id", p.ID).Int("clues", len(p.Clues)).Int("nodes", st.Nodes).Dur("took", st.Duration).Msg("Puzzle generated")
	return p, st, nil
}

// Solve runs the solver over a puzzle's published clues; a debugging and
// integrity view, not part of normal play.
func (u *Service) Solve(ctx context.Context, p *domain.Puzzle) (domain.Result, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Result{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, &p.Scheme, p.Clues)
}

func (u *Service) Validate(ctx context.Context, p *domain.Puzzle, a domain.Assignment) (*domain.Report, error) {
	if u.Validator == nil {
		return nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, p, a), nil
}

// Hint enforces the per-puzzle budget, delegates cell choice to the
// Hinter, and persists the incremented usage before returning.
func (u *Service) Hint(ctx context.Context, sess *domain.Session, p *domain.Puzzle, a domain.Assignment) (*domain.Hint, error) {
	if u.Hinter == nil {
		return nil, errNotConfigured
	}
	if sess != nil && sess.HintsUsed >= u.HintBudget {
		return nil, fmt.Errorf("%w: %d of %d used", domain.ErrHintsExhausted, sess.HintsUsed, u.HintBudget)
	}
	h, err := u.Hinter.Hint(ctx, p, a)
	if err != nil {
		return nil, err
	}
	if sess != nil {
		sess.HintsUsed++
		if err := u.SaveSession(ctx, sess); err != nil {
			return nil, err
		}
	}
	u.Log.Debug().Str("puzzle", p.ID).Int("entity", h.Cell.Entity).Int("col", h.Cell.Col).Msg("Hint issued")
	return h, nil
}

// SavePuzzle persists the puzzle with the player's working assignment.
func (u *Service) SavePuzzle(ctx context.Context, p *domain.Puzzle, a domain.Assignment) error {
	if u.Puzzles == nil {
		return errNotConfigured
	}
	return u.Puzzles.Save(ctx, storage.EncodeRecord(p, a))
}

// LoadPuzzle decodes a stored record and re-runs the solver on its
// clues; a record whose clues no longer force the stored solution is
// corrupt, whatever else decoded cleanly.
func (u *Service) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, domain.Assignment, error) {
	if u.Puzzles == nil || u.Solver == nil {
		return nil, nil, errNotConfigured
	}
	rec, err := u.Puzzles.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	p, a, err := storage.DecodeRecord(rec)
	if err != nil {
		return nil, nil, err
	}
	res, _, err := u.Solver.Solve(ctx, &p.Scheme, p.Clues)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: integrity check: %v", domain.ErrCorruptSave, err)
	}
	if res.Outcome != domain.OutcomeUnique || !res.Assignment.Equal(p.Solution) {
		u.Log.Warn().Str("id", id).Str("outcome", res.Outcome.String()).Msg("Save failed the integrity re-check")
		return nil, nil, fmt.Errorf("%w: clues no longer pin the stored solution", domain.ErrCorruptSave)
	}
	u.Log.Debug().Str("id", id).Msg("Save loaded and verified")
	return p, a, nil
}

func (u *Service) ListSaves(ctx context.Context) ([]domain.SaveSummary, error) {
	if u.Puzzles == nil {
		return nil, errNotConfigured
	}
	return u.Puzzles.List(ctx)
}

func (u *Service) DeleteSave(ctx context.Context, id string) error {
	if u.Puzzles == nil {
		return errNotConfigured
	}
	return u.Puzzles.Delete(ctx, id)
}

// Session returns the stored session, creating a fresh one when none
// exists yet.
func (u *Service) Session(ctx context.Context) (*domain.Session, error) {
	if u.Sessions == nil {
		return nil, errNotConfigured
	}
	sess, err := u.Sessions.LoadSession(ctx)
	if errors.Is(err, domain.ErrNoSession) {
		return u.NewSession(ctx)
	}
	return sess, err
}

func (u *Service) NewSession(ctx context.Context) (*domain.Session, error) {
	if u.Sessions == nil {
		return nil, errNotConfigured
	}
	sess := &domain.Session{
		Version:        domain.SaveVersion,
		ID:             uuid.NewString(),
		UnlockedThemes: u.themesUnlockedAt(0),
	}
	if len(sess.UnlockedThemes) > 0 {
		sess.CurrentTheme = sess.UnlockedThemes[0]
	}
	if err := u.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	u.Log.Info().Str("session", sess.ID).Msg("Session created")
	return sess, nil
}

func (u *Service) SaveSession(ctx context.Context, sess *domain.Session) error {
	if u.Sessions == nil {
		return errNotConfigured
	}
	sess.UpdatedAt = time.Now().UnixNano()
	return u.Sessions.SaveSession(ctx, sess)
}

// StartPuzzle marks a puzzle active and resets its hint allowance.
func (u *Service) StartPuzzle(ctx context.Context, sess *domain.Session, p *domain.Puzzle) error {
	if sess == nil {
		return fmt.Errorf("%w: start without a session", domain.ErrNoSession)
	}
	sess.ActivePuzzle = p.ID
	sess.HintsUsed = 0
	return u.SaveSession(ctx, sess)
}

// RecordSolve advances progression after a solved puzzle: solved count,
// level, theme unlocks, and a fresh hint allowance for the next one.
func (u *Service) RecordSolve(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		return fmt.Errorf("%w: solve without a session", domain.ErrNoSession)
	}
	sess.PuzzlesSolved++
	sess.Level++
	sess.HintsUsed = 0
	sess.ActivePuzzle = ""
	for _, name := range u.themesUnlockedAt(sess.PuzzlesSolved) {
		if !containsString(sess.UnlockedThemes, name) {
			sess.UnlockedThemes = append(sess.UnlockedThemes, name)
			u.Log.Info().Str("theme", name).Int("solved", sess.PuzzlesSolved).Msg("Theme unlocked")
		}
	}
	return u.SaveSession(ctx, sess)
}

func (u *Service) themesUnlockedAt(solved int) []string {
	var out []string
	for _, t := range u.Themes {
		if t.UnlockAt <= solved {
			out = append(out, t.Name)
		}
	}
	return out
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
