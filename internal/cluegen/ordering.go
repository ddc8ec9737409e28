package cluegen

import (
	"fmt"

	"arcanum.games/engine/internal/domain"
)

// orderingPool enumerates true clues for a step-ordering puzzle: exact
// positions, negated positions, and pairwise order with and without
// immediacy.
func orderingPool(inst *Instance) ([]domain.Clue, error) {
	sch := &inst.Scheme
	items := sch.Primary.Elements
	last := len(items) - 1

	var pool []domain.Clue
	cell := func(e int) domain.CellRef { return domain.CellRef{Entity: e, Col: 0} }

	for e, name := range items {
		v := value(inst, e, 0)
		pool = append(pool, domain.Clue{
			Kind: domain.KindDirect, A: cell(e), Value: v,
			Text: fmt.Sprintf("%s is the %s step.", name, ordinal(v)),
		})
		for w := 0; w <= last; w++ {
			if w == v {
				continue
			}
			text := fmt.Sprintf("%s is not the %s step.", name, ordinal(w))
			switch w {
			case 0:
				text = fmt.Sprintf("%s is not the first step.", name)
			case last:
				text = fmt.Sprintf("%s is not the last step.", name)
			}
			pool = append(pool, domain.Clue{Kind: domain.KindExclusion, A: cell(e), Value: w, Text: text})
		}
	}

	for a := range items {
		for b := range items {
			if a == b {
				continue
			}
			va, vb := value(inst, a, 0), value(inst, b, 0)
			if va >= vb {
				continue
			}
			pool = append(pool, domain.Clue{
				Kind: domain.KindRelational, A: cell(a), B: cell(b),
				Text: fmt.Sprintf("%s happens before %s.", items[a], items[b]),
			})
			if vb == va+1 {
				pool = append(pool, domain.Clue{
					Kind: domain.KindRelational, A: cell(a), B: cell(b), Gap: 1,
					Text: fmt.Sprintf("%s happens immediately before %s.", items[a], items[b]),
				})
			}
		}
	}

	return pool, nil
}
