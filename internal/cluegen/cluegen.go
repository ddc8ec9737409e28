// Package cluegen enumerates over-complete pools of candidate clues for
// each puzzle type. Every emitted clue is true of the instance's ground
// truth; the assembler later minimizes the pool under the solver.
package cluegen

import (
	"fmt"
	"math/rand"

	"arcanum.games/engine/internal/domain"
)

// Instance is the assembler's hand-off to pool construction: the shape,
// the ground truth, and any scenario prose needed to render clue text.
type Instance struct {
	Type       domain.PuzzleType
	Difficulty domain.Difficulty
	Scheme     domain.Scheme
	Solution   domain.Assignment
	Title      string
	Narrative  string
	// Eliminations carries the prose for single-variable scenario types:
	// for each non-answer value index, the sentence that rules it out.
	Eliminations map[int]string
}

// Options tunes pool construction.
type Options struct {
	// MaxDirect caps how many Direct clues enter the pool, keeping
	// harder puzzles from reading as a list of answers. Zero means none;
	// negative means uncapped.
	MaxDirect int
}

// DirectCap is the default trivial-clue policy per difficulty: easy
// puzzles may spell out identities, harder ones mostly may not.
func DirectCap(d domain.Difficulty, elements int) int {
	var limit int
	switch d {
	case domain.Easy:
		return -1
	case domain.Medium:
		limit = elements - 1
	default:
		limit = elements - 2
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

// Pool builds the shuffled, deduplicated candidate pool for an instance.
// The same rng stream yields the same pool.
func Pool(inst *Instance, rng *rand.Rand, opts Options) ([]domain.Clue, error) {
	var clues []domain.Clue
	var err error
	switch inst.Type {
	case domain.SymbolCipher:
		clues, err = cipherPool(inst, rng)
	case domain.LogicGrid:
		clues, err = gridPool(inst)
	case domain.Ordering:
		clues, err = orderingPool(inst)
	case domain.Scheduling:
		clues, err = schedulingPool(inst)
	case domain.RelationshipMap:
		clues, err = matchingPool(inst)
	case domain.SocialDeduction, domain.CommonSenseGap, domain.Dilemma, domain.AgentSimulation:
		clues, err = scenarioPool(inst)
	default:
		return nil, fmt.Errorf("%w: no clue pool for type %s", domain.ErrDomain, inst.Type)
	}
	if err != nil {
		return nil, err
	}
	clues = dedupe(clues)
	clues = capDirect(clues, opts.MaxDirect, rng)
	rng.Shuffle(len(clues), func(i, j int) {
		clues[i], clues[j] = clues[j], clues[i]
	})
	return clues, nil
}

// dedupe drops clues whose canonical predicate key repeats, keeping the
// first occurrence.
func dedupe(clues []domain.Clue) []domain.Clue {
	seen := make(map[string]struct{}, len(clues))
	out := clues[:0]
	for _, c := range clues {
		k := c.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}

// capDirect keeps at most max Direct clues, chosen by the rng so the
// surviving identities vary between seeds. Other kinds pass through.
func capDirect(clues []domain.Clue, max int, rng *rand.Rand) []domain.Clue {
	if max < 0 {
		return clues
	}
	var direct []int
	for i, c := range clues {
		if c.Kind == domain.KindDirect {
			direct = append(direct, i)
		}
	}
	if len(direct) <= max {
		return clues
	}
	rng.Shuffle(len(direct), func(i, j int) {
		direct[i], direct[j] = direct[j], direct[i]
	})
	drop := make(map[int]struct{}, len(direct)-max)
	for _, idx := range direct[max:] {
		drop[idx] = struct{}{}
	}
	out := clues[:0]
	for i, c := range clues {
		if _, skip := drop[i]; skip {
			continue
		}
		out = append(out, c)
	}
	return out
}

// value reads the ground-truth value of a cell.
func value(inst *Instance, entity, col int) int {
	return inst.Solution[inst.Scheme.CellIndex(entity, col)]
}
