package generator

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcanum.games/engine/internal/content"
	"arcanum.games/engine/internal/domain"
	"arcanum.games/engine/internal/solver"
)

func testAssembler(t *testing.T) *Assembler {
	t.Helper()
	pools, err := content.Load()
	require.NoError(t, err)
	return New(solver.New(solver.Limits{}), pools)
}

func TestGenerateEveryTypeIsUnique(t *testing.T) {
	asm := testAssembler(t)
	eng := solver.New(solver.Limits{})
	ctx := context.Background()

	for i, pt := range domain.PuzzleTypes() {
		t.Run(pt.String(), func(t *testing.T) {
			p, stats, err := asm.Generate(ctx, pt, domain.Easy, int64(100+i))
			require.NoError(t, err)
			require.NotNil(t, p)

			assert.Equal(t, pt, p.Type)
			assert.Equal(t, domain.Easy, p.Difficulty)
			assert.NotEmpty(t, p.ID)
			assert.NotEmpty(t, p.Clues)
			assert.True(t, p.Solution.Complete())

			for _, c := range p.Clues {
				assert.True(t, c.Eval(&p.Scheme, p.Solution), "published clue untrue: %s", c.Text)
			}

			res, _, err := eng.Solve(ctx, &p.Scheme, p.Clues)
			require.NoError(t, err)
			require.Equal(t, domain.OutcomeUnique, res.Outcome)
			assert.True(t, res.Assignment.Equal(p.Solution), "clues must pin the stored solution")
			t.Logf("%d clues, %d solver nodes, %v", len(p.Clues), stats.Nodes, stats.Duration)
		})
	}
}

func TestGenerateHardGridHasThreeColumns(t *testing.T) {
	asm := testAssembler(t)
	p, _, err := asm.Generate(context.Background(), domain.LogicGrid, domain.Hard, 7)
	require.NoError(t, err)
	assert.Len(t, p.Scheme.Columns, 3)
	assert.Len(t, p.Scheme.Primary.Elements, domain.Hard.Elements())

	p, _, err = asm.Generate(context.Background(), domain.LogicGrid, domain.Easy, 7)
	require.NoError(t, err)
	assert.Len(t, p.Scheme.Columns, 2)
}

func TestGenerateEveryClueNecessary(t *testing.T) {
	asm := testAssembler(t)
	eng := solver.New(solver.Limits{})
	ctx := context.Background()

	p, _, err := asm.Generate(ctx, domain.LogicGrid, domain.Easy, 42)
	require.NoError(t, err)

	for i := range p.Clues {
		trial := make([]domain.Clue, 0, len(p.Clues)-1)
		trial = append(trial, p.Clues[:i]...)
		trial = append(trial, p.Clues[i+1:]...)
		res, _, err := eng.Solve(ctx, &p.Scheme, trial)
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeMultiple, res.Outcome,
			"clue %d is redundant: %s", i, p.Clues[i].Text)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	asm := testAssembler(t)
	ctx := context.Background()

	a, _, err := asm.Generate(ctx, domain.SymbolCipher, domain.Medium, 99)
	require.NoError(t, err)
	b, _, err := asm.Generate(ctx, domain.SymbolCipher, domain.Medium, 99)
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.True(t, a.Solution.Equal(b.Solution))
	require.Equal(t, len(a.Clues), len(b.Clues))
	for i := range a.Clues {
		assert.Equal(t, a.Clues[i].Text, b.Clues[i].Text)
	}
}

func TestGeneratePuzzleID(t *testing.T) {
	asm := testAssembler(t)
	p, _, err := asm.Generate(context.Background(), domain.Ordering, domain.Easy, 42)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ordering-easy-%016x", 42), p.ID)
	assert.Equal(t, int64(42), p.Seed)
}

func TestGenerateSchedulingUsesTwoSlots(t *testing.T) {
	asm := testAssembler(t)
	for seed := int64(1); seed <= 8; seed++ {
		p, _, err := asm.Generate(context.Background(), domain.Scheduling, domain.Easy, seed)
		require.NoError(t, err)

		slots := make(map[int]struct{})
		for _, v := range p.Solution {
			slots[v] = struct{}{}
		}
		assert.GreaterOrEqual(t, len(slots), 2, "seed %d built a one-meeting schedule", seed)
	}
}

func TestGenerateMatchingIsInvolution(t *testing.T) {
	asm := testAssembler(t)
	p, _, err := asm.Generate(context.Background(), domain.RelationshipMap, domain.Easy, 5)
	require.NoError(t, err)

	n := len(p.Scheme.Primary.Elements)
	assert.Zero(t, n%2, "odd casts round up to even")
	for e := 0; e < n; e++ {
		partner := p.Solution[e]
		assert.NotEqual(t, e, partner, "nobody partners themselves")
		assert.Equal(t, e, p.Solution[partner], "pairing must be mutual")
	}
}

func TestGenerateScenarioShape(t *testing.T) {
	asm := testAssembler(t)
	for _, pt := range []domain.PuzzleType{
		domain.SocialDeduction, domain.CommonSenseGap, domain.Dilemma, domain.AgentSimulation,
	} {
		p, _, err := asm.Generate(context.Background(), pt, domain.Medium, 17)
		require.NoError(t, err)

		require.Len(t, p.Scheme.Primary.Elements, 1)
		assert.Len(t, p.Scheme.Columns[0].Category.Elements, domain.Medium.Elements())
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Narrative)
		for _, c := range p.Clues {
			assert.Equal(t, domain.KindExclusion, c.Kind, "scenario clues never name the answer")
		}
	}
}

func TestGenerateUnknownTypeFailsFast(t *testing.T) {
	asm := testAssembler(t)
	_, _, err := asm.Generate(context.Background(), domain.PuzzleType(42), domain.Easy, 1)
	assert.ErrorIs(t, err, domain.ErrDomain)
}

func TestGenerateCanceledContext(t *testing.T) {
	asm := testAssembler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := asm.Generate(ctx, domain.LogicGrid, domain.Easy, 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrGeneration, "cancellation must not burn the attempt budget")
}
