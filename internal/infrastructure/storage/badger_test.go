package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcanum.games/engine/internal/domain"
)

func openTestBadger(t *testing.T) *Badger {
	t.Helper()
	db, err := OpenBadger(InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBadgerSaveLoadDelete(t *testing.T) {
	store := openTestBadger(t)
	ctx := context.Background()
	rec := EncodeRecord(testPuzzle(), nil)

	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Load(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.Clues, got.Clues)

	require.NoError(t, store.Delete(ctx, rec.ID))
	_, err = store.Load(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, rec.ID), domain.ErrNotFound)
}

func TestBadgerSaveRequiresID(t *testing.T) {
	store := openTestBadger(t)
	err := store.Save(context.Background(), &domain.SaveRecord{})
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestBadgerList(t *testing.T) {
	store := openTestBadger(t)
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
	assert.Len(t, sums, 2)
}

func TestBadgerSessionRoundTrip(t *testing.T) {
	store := openTestBadger(t)
	ctx := context.Background()

	_, err := store.LoadSession(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	sess := &domain.Session{Version: domain.SaveVersion, ID: "s-1", Level: 2, HintsUsed: 1}
	require.NoError(t, store.SaveSession(ctx, sess))

	got, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess.Level, got.Level)
	assert.Equal(t, sess.HintsUsed, got.HintsUsed)
}

func TestBadgerNeedsPathUnlessInMemory(t *testing.T) {
	_, err := OpenBadger(Config{})
	assert.ErrorIs(t, err, domain.ErrDomain)
}
