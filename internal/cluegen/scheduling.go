package cluegen

import (
	"fmt"

	"arcanum.games/engine/internal/domain"
)

// schedulingPool enumerates true clues for a meeting schedule. Slots are
// shareable, so alongside availability and fixed appointments the pool
// carries same-slot and different-slot statements.
func schedulingPool(inst *Instance) ([]domain.Clue, error) {
	sch := &inst.Scheme
	people := sch.Primary.Elements
	slots := sch.Columns[0].Category.Elements

	var pool []domain.Clue
	cell := func(e int) domain.CellRef { return domain.CellRef{Entity: e, Col: 0} }

	for e, name := range people {
		v := value(inst, e, 0)
		pool = append(pool, domain.Clue{
			Kind: domain.KindDirect, A: cell(e), Value: v,
			Text: fmt.Sprintf("%s must meet at %s.", name, slots[v]),
		})
		for w := range slots {
			if w == v {
				continue
			}
			pool = append(pool, domain.Clue{
				Kind: domain.KindExclusion, A: cell(e), Value: w,
				Text: fmt.Sprintf("%s is unavailable at %s.", name, slots[w]),
			})
		}
	}

	for a := range people {
		for b := range people {
			if a == b {
				continue
			}
			va, vb := value(inst, a, 0), value(inst, b, 0)
			if va < vb {
				pool = append(pool, domain.Clue{
					Kind: domain.KindRelational, A: cell(a), B: cell(b),
					Text: fmt.Sprintf("%s meets before %s does.", people[a], people[b]),
				})
			}
			if b < a {
				continue
			}
			if va == vb {
				pool = append(pool, domain.Clue{
					Kind: domain.KindTogether, A: cell(a), B: cell(b),
					Text: fmt.Sprintf("%s and %s share a time slot.", people[a], people[b]),
				})
			} else {
				pool = append(pool, domain.Clue{
					Kind: domain.KindApart, A: cell(a), B: cell(b),
					Text: fmt.Sprintf("%s and %s meet at different times.", people[a], people[b]),
				})
			}
		}
	}

	return pool, nil
}
