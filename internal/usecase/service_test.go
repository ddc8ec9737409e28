package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcanum.games/engine/internal/content"
	"arcanum.games/engine/internal/domain"
	"arcanum.games/engine/internal/generator"
	"arcanum.games/engine/internal/hint"
	"arcanum.games/engine/internal/infrastructure/storage"
	"arcanum.games/engine/internal/solver"
	"arcanum.games/engine/internal/validator"
)

func testService(t *testing.T) *Service {
	t.Helper()
	pools, err := content.Load()
	require.NoError(t, err)
	db, err := storage.OpenBadger(storage.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	eng := solver.New(solver.Limits{})
	svc := NewService(generator.New(eng, pools), eng, validator.New(), hint.New(eng), db, db)
	svc.Themes = pools.Themes
	return svc
}

func TestServiceNotConfigured(t *testing.T) {
	svc := &Service{}
	ctx := context.Background()

	_, _, err := svc.Generate(ctx, domain.LogicGrid, domain.Easy, 1)
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = svc.Validate(ctx, nil, nil)
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = svc.Hint(ctx, nil, nil, nil)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = svc.LoadPuzzle(ctx, "x")
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = svc.Session(ctx)
	assert.ErrorIs(t, err, errNotConfigured)
}

// The full play loop: generate, save, reload through the integrity
// check, hint twice, then exhaust the budget.
func TestServicePlayLoop(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	p, stats, err := svc.Generate(ctx, domain.LogicGrid, domain.Easy, 42)
	require.NoError(t, err)
	require.NotEmpty(t, p.Clues)
	assert.Positive(t, stats.Nodes)

	require.NoError(t, svc.SavePuzzle(ctx, p, nil))
	loaded, a, err := svc.LoadPuzzle(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Solution.Equal(p.Solution))
	assert.False(t, a.Complete())

	sess, err := svc.Session(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.StartPuzzle(ctx, sess, loaded))
	assert.Equal(t, p.ID, sess.ActivePuzzle)
	assert.Zero(t, sess.HintsUsed)

	// Each hint reveals an unassigned cell correctly and burns budget.
	for want := 1; want <= svc.HintBudget; want++ {
		h, err := svc.Hint(ctx, sess, loaded, a)
		require.NoError(t, err)
		idx := loaded.Scheme.CellIndex(h.Cell.Entity, h.Cell.Col)
		assert.Equal(t, domain.Unassigned, a[idx], "hints target open cells")
		assert.Equal(t, loaded.Solution[idx], h.Value)
		assert.Equal(t, want, sess.HintsUsed)
		a[idx] = h.Value
	}
	_, err = svc.Hint(ctx, sess, loaded, a)
	assert.ErrorIs(t, err, domain.ErrHintsExhausted)

	// Submitting the exact solution reports solved.
	rep, err := svc.Validate(ctx, loaded, loaded.Solution)
	require.NoError(t, err)
	assert.True(t, rep.Solved)

	require.NoError(t, svc.RecordSolve(ctx, sess))
	assert.Equal(t, 1, sess.PuzzlesSolved)
	assert.Equal(t, 1, sess.Level)
	assert.Zero(t, sess.HintsUsed)
	assert.Empty(t, sess.ActivePuzzle)
}

func TestServiceLoadRejectsTamperedSolution(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	p, _, err := svc.Generate(ctx, domain.Ordering, domain.Easy, 7)
	require.NoError(t, err)

	rec := storage.EncodeRecord(p, nil)
	// Swap two entities' stored positions: still a complete, decodable
	// solution, but no longer the one the clues force.
	ents := p.Scheme.Primary.Elements
	col := p.Scheme.Columns[0].Category.Name
	rec.Solution[ents[0]][col], rec.Solution[ents[1]][col] =
		rec.Solution[ents[1]][col], rec.Solution[ents[0]][col]
	require.NoError(t, svc.Puzzles.Save(ctx, rec))

	_, _, err = svc.LoadPuzzle(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrCorruptSave)
}

func TestServiceLoadRejectsContradictoryClues(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	p, _, err := svc.Generate(ctx, domain.Ordering, domain.Easy, 9)
	require.NoError(t, err)

	// Contradict the stored solution outright: the re-solve reports
	// None, which the load treats as corruption.
	p.Clues = append(p.Clues, domain.Clue{
		Kind:  domain.KindExclusion,
		A:     domain.CellRef{Entity: 0, Col: 0},
		Value: p.Solution[0],
		Text:  "tampered",
	})
	require.NoError(t, svc.SavePuzzle(ctx, p, nil))

	_, _, err = svc.LoadPuzzle(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrCorruptSave)
}

func TestServiceSessionLifecycle(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	sess, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, domain.SaveVersion, sess.Version)
	assert.Equal(t, []string{"Alchemist's Study"}, sess.UnlockedThemes)
	assert.Equal(t, "Alchemist's Study", sess.CurrentTheme)

	// A second call loads the same session rather than minting one.
	again, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, again.ID)
}

func TestServiceThemeUnlocks(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	sess, err := svc.Session(ctx)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.RecordSolve(ctx, sess))
	}
	assert.Contains(t, sess.UnlockedThemes, "Arcane Library", "third solve unlocks the library")
	assert.NotContains(t, sess.UnlockedThemes, "Midnight Laboratory")

	for i := 0; i < 4; i++ {
		require.NoError(t, svc.RecordSolve(ctx, sess))
	}
	assert.Contains(t, sess.UnlockedThemes, "Midnight Laboratory", "seventh solve unlocks the lab")
}

func TestServiceListAndDelete(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	p, _, err := svc.Generate(ctx, domain.SymbolCipher, domain.Easy, 3)
	require.NoError(t, err)
	require.NoError(t, svc.SavePuzzle(ctx, p, nil))

	sums, err := svc.ListSaves(ctx)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, p.ID, sums[0].ID)

	require.NoError(t, svc.DeleteSave(ctx, p.ID))
	_, _, err = svc.LoadPuzzle(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
