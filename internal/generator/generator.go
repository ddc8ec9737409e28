// Package generator assembles puzzles end to end: a ground-truth
// instance sampled from the content pools, an over-complete pool of true
// clues, then greedy minimization under the solver so the published
// clues still force exactly one solution.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"arcanum.games/engine/internal/cluegen"
	"arcanum.games/engine/internal/content"
	"arcanum.games/engine/internal/domain"
	"arcanum.games/engine/internal/ports"
)

// Assembler creates puzzles with a unique solution using a provided
// Solver. A fresh instance is drawn per attempt until the clue pool pins
// the ground truth within the solver budget.
type Assembler struct {
	Solver   ports.Solver
	Pools    *content.Pools
	Attempts int
}

// defaultAttempts bounds how many instances one Generate call may try.
const defaultAttempts = 10

// New wires an assembler that uses the given solver for uniqueness
// checks.
func New(s ports.Solver, pools *content.Pools) *Assembler {
	return &Assembler{Solver: s, Pools: pools, Attempts: defaultAttempts}
}

// Generate creates a puzzle of the given type and difficulty from seed.
// Equal inputs yield equal puzzles, identifier included.
func (g *Assembler) Generate(ctx context.Context, t domain.PuzzleType, d domain.Difficulty, seed int64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	attempts := g.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	var stats ports.Stats
	var lastErr error
	for i := 0; i < attempts; i++ {
		p, err := g.attempt(ctx, t, d, rng, &stats)
		if err == nil {
			p.ID = puzzleID(t, d, seed)
			p.Seed = seed
			p.CreatedAt = time.Now().UnixNano()
			stats.Duration = time.Since(start)
			return p, stats, nil
		}
		if errors.Is(err, domain.ErrDomain) || ctx.Err() != nil {
			stats.Duration = time.Since(start)
			return nil, stats, err
		}
		lastErr = err
	}
	stats.Duration = time.Since(start)
	return nil, stats, fmt.Errorf("%w: no unique %s %s in %d attempts: %v",
		domain.ErrGeneration, d, t, attempts, lastErr)
}

// attempt draws one instance and tries to turn it into a puzzle.
func (g *Assembler) attempt(ctx context.Context, t domain.PuzzleType, d domain.Difficulty, rng *rand.Rand, stats *ports.Stats) (*domain.Puzzle, error) {
	inst, err := buildInstance(g.Pools, t, d, rng)
	if err != nil {
		return nil, err
	}
	pool, err := cluegen.Pool(inst, rng, cluegen.Options{MaxDirect: directCap(t, d)})
	if err != nil {
		return nil, err
	}
	// The full pool must already pin the ground truth; minimization only
	// ever preserves that.
	res, st, err := g.Solver.Solve(ctx, &inst.Scheme, pool)
	stats.Add(st)
	if err != nil {
		return nil, err
	}
	if res.Outcome != domain.OutcomeUnique || !res.Assignment.Equal(inst.Solution) {
		return nil, fmt.Errorf("clue pool leaves outcome %s", res.Outcome)
	}
	clues, err := g.minimize(ctx, &inst.Scheme, pool, stats)
	if err != nil {
		return nil, err
	}
	res, st, err = g.Solver.Solve(ctx, &inst.Scheme, clues)
	stats.Add(st)
	if err != nil {
		return nil, err
	}
	if res.Outcome != domain.OutcomeUnique || !res.Assignment.Equal(inst.Solution) {
		return nil, fmt.Errorf("minimized clues leave outcome %s", res.Outcome)
	}
	return &domain.Puzzle{
		Type:       t,
		Difficulty: d,
		Title:      inst.Title,
		Narrative:  inst.Narrative,
		Scheme:     inst.Scheme,
		Clues:      clues,
		Solution:   inst.Solution,
	}, nil
}

// minimize drops clues greedily from the back of the pool, keeping a
// removal only while the remainder still has a unique solution. One
// reverse pass suffices: removing clues never shrinks the solution set,
// so a clue that proves necessary stays necessary.
func (g *Assembler) minimize(ctx context.Context, sch *domain.Scheme, pool []domain.Clue, stats *ports.Stats) ([]domain.Clue, error) {
	clues := append([]domain.Clue(nil), pool...)
	for i := len(clues) - 1; i >= 0; i-- {
		trial := make([]domain.Clue, 0, len(clues)-1)
		trial = append(trial, clues[:i]...)
		trial = append(trial, clues[i+1:]...)
		res, st, err := g.Solver.Solve(ctx, sch, trial)
		stats.Add(st)
		if err != nil {
			return nil, err
		}
		if res.Outcome == domain.OutcomeUnique {
			clues = trial
		}
	}
	return clues, nil
}

// directCap is the trivial-clue budget: scenario types never show
// identity clues, the rest follow the per-difficulty policy.
func directCap(t domain.PuzzleType, d domain.Difficulty) int {
	switch t {
	case domain.SocialDeduction, domain.CommonSenseGap, domain.Dilemma, domain.AgentSimulation:
		return 0
	}
	return cluegen.DirectCap(d, d.Elements())
}

// puzzleID is deterministic in the generation inputs, so regenerating
// the same puzzle yields the same identifier.
func puzzleID(t domain.PuzzleType, d domain.Difficulty, seed int64) string {
	return fmt.Sprintf("%s-%s-%016x", t, d, uint64(seed))
}
