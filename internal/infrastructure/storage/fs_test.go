package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcanum.games/engine/internal/domain"
)

func TestFSSaveLoadDelete(t *testing.T) {
	store := NewFS(t.TempDir())
	ctx := context.Background()
	rec := EncodeRecord(testPuzzle(), nil)

	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Solution, got.Solution)

	require.NoError(t, store.Delete(ctx, rec.ID))
	_, err = store.Load(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, rec.ID), domain.ErrNotFound)
}

func TestFSSaveRequiresID(t *testing.T) {
	store := NewFS(t.TempDir())
	err := store.Save(context.Background(), &domain.SaveRecord{})
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestFSList(t *testing.T) {
	store := NewFS(t.TempDir())
	ctx := context.Background()

	sums, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sums)

	a := EncodeRecord(testPuzzle(), nil)
	b := EncodeRecord(testPuzzle(), nil)
	b.ID = "logic-grid-easy-0000000000000008"
	require.NoError(t, store.Save(ctx, a))
	require.NoError(t, store.Save(ctx, b))

	sums, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	for _, s := range sums {
		assert.Equal(t, "logic-grid", s.Type)
		assert.Equal(t, "easy", s.Difficulty)
		assert.NotZero(t, s.SavedAt)
	}
}

func TestFSListSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFS(dir)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, EncodeRecord(testPuzzle(), nil)))

	junk := filepath.Join(dir, "saves", "logic-grid", "junk.json")
	require.NoError(t, os.WriteFile(junk, []byte("not json"), 0o644))

	sums, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sums, 1)
}

func TestFSLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFS(dir)
	path := store.pathFor("logic-grid", "broken")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := store.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, domain.ErrCorruptSave)
}

func TestFSSessionRoundTrip(t *testing.T) {
	store := NewFS(t.TempDir())
	ctx := context.Background()

	_, err := store.LoadSession(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	sess := &domain.Session{
		Version:        domain.SaveVersion,
		ID:             "s-1",
		Level:          4,
		PuzzlesSolved:  3,
		UnlockedThemes: []string{"Alchemist's Study", "Arcane Library"},
		UserState:      json.RawMessage(`{"volume":7}`),
	}
	require.NoError(t, store.SaveSession(ctx, sess))

	got, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.Level, got.Level)
	assert.Equal(t, sess.UnlockedThemes, got.UnlockedThemes)
	assert.JSONEq(t, `{"volume":7}`, string(got.UserState), "user state passes through opaquely")
}

func TestFSSessionRejectsUnknownVersion(t *testing.T) {
	dir := t.TempDir()
	store := NewFS(dir)
	require.NoError(t, os.WriteFile(store.sessionPath(), []byte(`{"saveVersion":1}`), 0o644))

	_, err := store.LoadSession(context.Background())
	assert.ErrorIs(t, err, domain.ErrCorruptSave)
}
