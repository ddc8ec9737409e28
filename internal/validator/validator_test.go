package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcanum.games/engine/internal/domain"
)

func testPuzzle() *domain.Puzzle {
	return &domain.Puzzle{
		Scheme: domain.Scheme{
			Primary: domain.Category{Name: "Guest", Elements: []string{"Ann", "Ben", "Cai"}},
			Columns: []domain.Column{
				{Category: domain.Category{Name: "Drink", Elements: []string{"Tea", "Coffee", "Milk"}}, AllDifferent: true},
			},
		},
		Solution: domain.Assignment{0, 1, 2},
	}
}

func TestValidateSolved(t *testing.T) {
	p := testPuzzle()
	rep := New().Validate(context.Background(), p, domain.Assignment{0, 1, 2})
	require.NotNil(t, rep)
	assert.True(t, rep.Solved)
	assert.Equal(t, 3, rep.Matched)
	assert.Zero(t, rep.Mismatched)
	assert.Zero(t, rep.Unassigned)
	require.Len(t, rep.Cells, 3)
	for _, c := range rep.Cells {
		assert.Equal(t, domain.StatusMatch, c.Status)
	}
}

func TestValidateOneWrongCell(t *testing.T) {
	p := testPuzzle()
	rep := New().Validate(context.Background(), p, domain.Assignment{0, 2, 1})
	assert.False(t, rep.Solved)
	assert.Equal(t, 1, rep.Matched)
	assert.Equal(t, 2, rep.Mismatched)
	assert.Equal(t, domain.StatusMatch, rep.Cells[0].Status)
	assert.Equal(t, domain.StatusMismatch, rep.Cells[1].Status)
}

func TestValidatePartialProgress(t *testing.T) {
	p := testPuzzle()
	a := domain.NewAssignment(&p.Scheme)
	a[p.Scheme.CellIndex(2, 0)] = 2

	rep := New().Validate(context.Background(), p, a)
	assert.False(t, rep.Solved)
	assert.Equal(t, 1, rep.Matched)
	assert.Equal(t, 2, rep.Unassigned)
}

func TestValidateMalformedAssignments(t *testing.T) {
	p := testPuzzle()
	v := New()

	rep := v.Validate(context.Background(), p, nil)
	assert.Equal(t, 3, rep.Unassigned, "nil assignment reads as empty")

	rep = v.Validate(context.Background(), p, domain.Assignment{0})
	assert.Equal(t, 1, rep.Matched)
	assert.Equal(t, 2, rep.Unassigned, "short assignments leave the tail unassigned")

	rep = v.Validate(context.Background(), p, domain.Assignment{0, 1, 2, 9, 9})
	assert.True(t, rep.Solved, "trailing junk beyond the scheme is ignored")
}

func TestValidateEmptyIsNotSolved(t *testing.T) {
	p := testPuzzle()
	p.Solution = nil
	p.Scheme.Columns = nil

	rep := New().Validate(context.Background(), p, nil)
	assert.False(t, rep.Solved, "a scheme with no cells never counts as solved")
}
