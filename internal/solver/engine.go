package solver

import (
	"context"
	"fmt"
	"time"

	"arcanum.games/engine/internal/domain"
	"arcanum.games/engine/internal/ports"
)

// Limits bounds a single solver run. Worst-case search is exponential in
// the cell count, so every entry point is budgeted.
type Limits struct {
	MaxNodes    int
	MaxDuration time.Duration
}

// DefaultLimits is generous for every supported scheme size; generation
// for a 6x3 grid typically stays under a few thousand nodes.
var DefaultLimits = Limits{MaxNodes: 200_000, MaxDuration: 2 * time.Second}

// Engine is a finite-domain backtracking solver with constraint
// propagation. It reports whether a clue set admits zero, one, or more
// than one assignment, stopping as soon as a second one is found.
type Engine struct {
	limits Limits
}

// New returns an Engine with the given limits, falling back to
// DefaultLimits for zero values.
func New(l Limits) *Engine {
	if l.MaxNodes <= 0 {
		l.MaxNodes = DefaultLimits.MaxNodes
	}
	if l.MaxDuration <= 0 {
		l.MaxDuration = DefaultLimits.MaxDuration
	}
	return &Engine{limits: l}
}

// Solve classifies the clue set: OutcomeNone, OutcomeUnique (with the
// single satisfying assignment), or OutcomeMultiple. The search stops
// after the second solution; full enumeration is never attempted.
func (e *Engine) Solve(ctx context.Context, sch *domain.Scheme, clues []domain.Clue) (domain.Result, ports.Stats, error) {
	start := time.Now()
	st, err := newState(sch, clues)
	if err != nil {
		return domain.Result{}, ports.Stats{Duration: time.Since(start)}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Result{}, ports.Stats{Duration: time.Since(start)}, fmt.Errorf("%w: %v", domain.ErrSolverBudget, err)
	}
	var deadline time.Time
	if e.limits.MaxDuration > 0 {
		deadline = start.Add(e.limits.MaxDuration)
	}
	nodes := 0
	count, first, err := e.search(ctx, st, deadline, &nodes)
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return domain.Result{}, stats, err
	}
	switch {
	case count == 0:
		return domain.Result{Outcome: domain.OutcomeNone}, stats, nil
	case count == 1:
		return domain.Result{Outcome: domain.OutcomeUnique, Assignment: first}, stats, nil
	default:
		return domain.Result{Outcome: domain.OutcomeMultiple}, stats, nil
	}
}

// frame is one level of the explicit search stack: the cell being
// branched, the values not yet tried, and the domain snapshot to restore
// before each retry.
type frame struct {
	cell int
	rest bitset
	snap []bitset
}

// search counts satisfying assignments up to two. The stack replaces
// recursion so the budget check is a plain counter test per branch.
func (e *Engine) search(ctx context.Context, st *state, deadline time.Time, nodes *int) (int, domain.Assignment, error) {
	if !st.propagate() {
		return 0, nil, nil
	}
	var (
		stack []frame
		count int
		first domain.Assignment
	)
	for {
		if cell := st.pickCell(); cell >= 0 {
			stack = append(stack, frame{cell: cell, rest: st.doms[cell], snap: st.snapshot()})
		} else {
			if st.evalComplete() {
				count++
				if count == 1 {
					first = st.extract()
				}
				if count >= 2 {
					return count, first, nil // early out: "more than one" is enough
				}
			}
		}
		// Advance: try the next untried value of the top frame, popping
		// exhausted frames. Stack empty means the space is explored.
		advanced := false
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			v, ok := top.rest.pop()
			if !ok {
				stack = stack[:len(stack)-1]
				continue
			}
			*nodes++
			if *nodes > e.limits.MaxNodes {
				return 0, nil, fmt.Errorf("%w: over %d nodes", domain.ErrSolverBudget, e.limits.MaxNodes)
			}
			if !deadline.IsZero() && *nodes&1023 == 0 && time.Now().After(deadline) {
				return 0, nil, fmt.Errorf("%w: over %v", domain.ErrSolverBudget, e.limits.MaxDuration)
			}
			if err := ctx.Err(); err != nil {
				return 0, nil, fmt.Errorf("%w: %v", domain.ErrSolverBudget, err)
			}
			st.restore(top.snap)
			st.doms[top.cell] = singleSet(v, st.doms[top.cell].n)
			if st.propagate() {
				advanced = true
				break
			}
		}
		if !advanced {
			return count, first, nil
		}
	}
}

// Deduce runs propagation only, seeded with the known cells, and returns
// every cell the clues force to a single value. A contradiction in the
// seeds yields an all-unassigned result rather than an error; search is
// never invoked.
func (e *Engine) Deduce(ctx context.Context, sch *domain.Scheme, clues []domain.Clue, known domain.Assignment) (domain.Assignment, ports.Stats, error) {
	start := time.Now()
	st, err := newState(sch, clues)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, fmt.Errorf("%w: %v", domain.ErrSolverBudget, err)
	}
	for i, v := range known {
		if i >= len(st.doms) {
			break
		}
		if v != domain.Unassigned && st.doms[i].has(v) {
			st.doms[i] = singleSet(v, st.doms[i].n)
		}
	}
	out := make(domain.Assignment, len(st.doms))
	for i := range out {
		out[i] = domain.Unassigned
	}
	if st.propagate() {
		for i := range st.doms {
			if v, ok := st.doms[i].single(); ok {
				out[i] = v
			}
		}
	}
	return out, ports.Stats{Duration: time.Since(start)}, nil
}
