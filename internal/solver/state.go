package solver

import (
	"fmt"

	"arcanum.games/engine/internal/domain"
)

// state is one search node's view of the puzzle: a candidate bitset per
// cell. Cells are laid out column-major, matching domain.Scheme.CellIndex.
type state struct {
	sch   *domain.Scheme
	clues []domain.Clue
	nEnt  int
	doms  []bitset
	// per-clue masks, precomputed so propagation never rebuilds them
	masks  []uint64
	masks2 []uint64
}

func newState(sch *domain.Scheme, clues []domain.Clue) (*state, error) {
	nEnt := len(sch.Primary.Elements)
	if nEnt == 0 || len(sch.Columns) == 0 {
		return nil, fmt.Errorf("%w: scheme needs a primary category and at least one column", domain.ErrDomain)
	}
	st := &state{
		sch:    sch,
		clues:  clues,
		nEnt:   nEnt,
		doms:   make([]bitset, sch.Cells()),
		masks:  make([]uint64, len(clues)),
		masks2: make([]uint64, len(clues)),
	}
	for ci, col := range sch.Columns {
		size := len(col.Category.Elements)
		if size == 0 || size > maxUniverse {
			return nil, fmt.Errorf("%w: column %q has %d elements", domain.ErrDomain, col.Category.Name, size)
		}
		if (col.AllDifferent || col.Symmetric) && size != nEnt {
			return nil, fmt.Errorf("%w: column %q must match the primary size", domain.ErrDomain, col.Category.Name)
		}
		for e := 0; e < nEnt; e++ {
			st.doms[sch.CellIndex(e, ci)] = fullSet(size)
		}
	}
	for i := range clues {
		if err := st.checkRefs(&clues[i]); err != nil {
			return nil, err
		}
		st.masks[i] = maskOf(clues[i].Set)
		st.masks2[i] = maskOf(clues[i].Set2)
	}
	return st, nil
}

// checkRefs rejects clues whose operands fall outside the scheme, so the
// search loop can index without bounds worry.
func (st *state) checkRefs(c *domain.Clue) error {
	cellOK := func(ref domain.CellRef, entityFree bool) bool {
		if ref.Col < 0 || ref.Col >= len(st.sch.Columns) {
			return false
		}
		if entityFree && ref.Entity < 0 {
			return true
		}
		return ref.Entity >= 0 && ref.Entity < st.nEnt
	}
	colSize := func(ref domain.CellRef) int {
		return len(st.sch.Columns[ref.Col].Category.Elements)
	}
	switch c.Kind {
	case domain.KindDirect, domain.KindExclusion:
		if !cellOK(c.A, false) || c.Value < 0 || c.Value >= colSize(c.A) {
			return fmt.Errorf("%w: clue %q references out-of-range operands", domain.ErrDomain, c.Text)
		}
	case domain.KindPositional, domain.KindCategorical:
		if !cellOK(c.A, false) || len(c.Set) == 0 {
			return fmt.Errorf("%w: clue %q references out-of-range operands", domain.ErrDomain, c.Text)
		}
	case domain.KindRelational, domain.KindTogether, domain.KindApart:
		if !cellOK(c.A, false) || !cellOK(c.B, false) {
			return fmt.Errorf("%w: clue %q references out-of-range operands", domain.ErrDomain, c.Text)
		}
	case domain.KindConditional:
		if !cellOK(c.A, false) || !cellOK(c.B, false) || len(c.Set) == 0 || len(c.Set2) == 0 {
			return fmt.Errorf("%w: clue %q references out-of-range operands", domain.ErrDomain, c.Text)
		}
	case domain.KindLink, domain.KindUnlink:
		if !cellOK(c.A, true) || !cellOK(c.B, true) ||
			c.Value < 0 || c.Value >= colSize(c.A) ||
			c.Value2 < 0 || c.Value2 >= colSize(c.B) {
			return fmt.Errorf("%w: clue %q references out-of-range operands", domain.ErrDomain, c.Text)
		}
		// The link/unlink filters equate "holder of Value" with a single
		// entity, which only holds in bijective columns.
		if !st.sch.Columns[c.A.Col].AllDifferent || !st.sch.Columns[c.B.Col].AllDifferent {
			return fmt.Errorf("%w: clue %q links non-bijective columns", domain.ErrDomain, c.Text)
		}
	default:
		return fmt.Errorf("%w: clue %q has unknown kind", domain.ErrDomain, c.Text)
	}
	return nil
}

func (st *state) dom(e, c int) *bitset { return &st.doms[c*st.nEnt+e] }

func (st *state) snapshot() []bitset { return append([]bitset(nil), st.doms...) }

func (st *state) restore(snap []bitset) { copy(st.doms, snap) }

// propagate runs structural and per-clue filtering to a fixpoint.
// It returns false on a wiped-out domain (contradiction).
func (st *state) propagate() bool {
	for {
		changed := false
		if !st.pruneStructure(&changed) {
			return false
		}
		for i := range st.clues {
			if !st.pruneClue(i, &changed) {
				return false
			}
		}
		if !changed {
			return true
		}
	}
}

// pruneStructure enforces the scheme's column flags: assigned values leave
// sibling domains in AllDifferent columns, values with a single possible
// holder are forced there (the column is a bijection, every value is
// used), and Symmetric columns stay mutual and fixed-point-free.
func (st *state) pruneStructure(changed *bool) bool {
	for ci, col := range st.sch.Columns {
		size := len(col.Category.Elements)
		if col.Symmetric {
			for e := 0; e < st.nEnt; e++ {
				d := st.dom(e, ci)
				if d.remove(e) {
					*changed = true
				}
				for v := 0; v < size; v++ {
					if d.has(v) && !st.dom(v, ci).has(e) {
						d.remove(v)
						*changed = true
					}
				}
				if d.empty() {
					return false
				}
				if v, ok := d.single(); ok {
					p := st.dom(v, ci)
					if p.keep(uint64(1) << uint(e)) {
						*changed = true
					}
					if p.empty() {
						return false
					}
				}
			}
		}
		if !col.AllDifferent {
			continue
		}
		for e := 0; e < st.nEnt; e++ {
			v, ok := st.dom(e, ci).single()
			if !ok {
				continue
			}
			for o := 0; o < st.nEnt; o++ {
				if o == e {
					continue
				}
				d := st.dom(o, ci)
				if d.remove(v) {
					*changed = true
				}
				if d.empty() {
					return false
				}
			}
		}
		for v := 0; v < size; v++ {
			holder, n := -1, 0
			for e := 0; e < st.nEnt; e++ {
				if st.dom(e, ci).has(v) {
					holder, n = e, n+1
					if n > 1 {
						break
					}
				}
			}
			if n == 0 {
				return false
			}
			if n == 1 {
				d := st.dom(holder, ci)
				if d.keep(uint64(1) << uint(v)) {
					*changed = true
				}
			}
		}
	}
	return true
}

// pruneClue applies one clue as a monotone domain filter. Filters only
// remove values that cannot appear in any satisfying assignment, so
// propagation stays sound; completeness comes from the search.
func (st *state) pruneClue(i int, changed *bool) bool {
	c := &st.clues[i]
	switch c.Kind {
	case domain.KindDirect:
		d := st.dom(c.A.Entity, c.A.Col)
		if d.keep(uint64(1) << uint(c.Value)) {
			*changed = true
		}
		return !d.empty()

	case domain.KindExclusion:
		d := st.dom(c.A.Entity, c.A.Col)
		if d.remove(c.Value) {
			*changed = true
		}
		return !d.empty()

	case domain.KindPositional, domain.KindCategorical:
		d := st.dom(c.A.Entity, c.A.Col)
		if d.keep(st.masks[i]) {
			*changed = true
		}
		return !d.empty()

	case domain.KindRelational:
		a := st.dom(c.A.Entity, c.A.Col)
		b := st.dom(c.B.Entity, c.B.Col)
		if c.Gap > 0 {
			if a.keep(b.bits >> uint(c.Gap)) {
				*changed = true
			}
			if b.keep(a.bits << uint(c.Gap)) {
				*changed = true
			}
		} else {
			if a.removeAbove(b.max() - 1) {
				*changed = true
			}
			if b.removeBelow(a.min() + 1) {
				*changed = true
			}
		}
		return !a.empty() && !b.empty()

	case domain.KindConditional:
		a := st.dom(c.A.Entity, c.A.Col)
		b := st.dom(c.B.Entity, c.B.Col)
		if a.bits&^st.masks[i] == 0 {
			// antecedent certain: enforce the consequent
			if b.keep(st.masks2[i]) {
				*changed = true
			}
		}
		if b.bits&st.masks2[i] == 0 {
			// consequent impossible: the antecedent must be false
			if a.keep(^st.masks[i]) {
				*changed = true
			}
		}
		return !a.empty() && !b.empty()

	case domain.KindTogether:
		a := st.dom(c.A.Entity, c.A.Col)
		b := st.dom(c.B.Entity, c.B.Col)
		inter := a.bits & b.bits
		if a.keep(inter) {
			*changed = true
		}
		if b.keep(inter) {
			*changed = true
		}
		return !a.empty()

	case domain.KindApart:
		a := st.dom(c.A.Entity, c.A.Col)
		b := st.dom(c.B.Entity, c.B.Col)
		if v, ok := a.single(); ok {
			if b.remove(v) {
				*changed = true
			}
		}
		if v, ok := b.single(); ok {
			if a.remove(v) {
				*changed = true
			}
		}
		return !a.empty() && !b.empty()

	case domain.KindLink:
		// Both columns are bijections (checkRefs enforces it), so the
		// holder of Value and the holder of Value2 are the same entity:
		// an entity that cannot hold one cannot hold the other.
		for e := 0; e < st.nEnt; e++ {
			a := st.dom(e, c.A.Col)
			b := st.dom(e, c.B.Col)
			if !a.has(c.Value) && b.remove(c.Value2) {
				*changed = true
			}
			if !b.has(c.Value2) && a.remove(c.Value) {
				*changed = true
			}
			if a.empty() || b.empty() {
				return false
			}
		}
		return true

	case domain.KindUnlink:
		for e := 0; e < st.nEnt; e++ {
			a := st.dom(e, c.A.Col)
			b := st.dom(e, c.B.Col)
			if v, ok := a.single(); ok && v == c.Value {
				if b.remove(c.Value2) {
					*changed = true
				}
			}
			if v, ok := b.single(); ok && v == c.Value2 {
				if a.remove(c.Value) {
					*changed = true
				}
			}
			if a.empty() || b.empty() {
				return false
			}
		}
		return true

	default:
		return false
	}
}

// pickCell chooses the next branch cell: fewest remaining values, lowest
// index on ties. Returns -1 when every cell is decided.
func (st *state) pickCell() int {
	best, bestN := -1, maxUniverse+1
	for i := range st.doms {
		n := st.doms[i].count()
		if n > 1 && n < bestN {
			best, bestN = i, n
			if n == 2 {
				break
			}
		}
	}
	return best
}

// extract materializes the assignment from a fully decided state.
func (st *state) extract() domain.Assignment {
	a := make(domain.Assignment, len(st.doms))
	for i := range st.doms {
		if v, ok := st.doms[i].single(); ok {
			a[i] = v
		} else {
			a[i] = domain.Unassigned
		}
	}
	return a
}

// evalComplete re-checks every clue's full predicate on a decided state.
// Propagation only ever removes impossible values; this is the final word
// on whether the assignment counts as a solution.
func (st *state) evalComplete() bool {
	a := st.extract()
	for i := range st.clues {
		if !st.clues[i].Eval(st.sch, a) {
			return false
		}
	}
	return true
}
