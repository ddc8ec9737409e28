package cluegen

import (
	"fmt"

	"arcanum.games/engine/internal/domain"
)

// gridPool enumerates true clues for a logic grid: identities and
// negations per cell, plus cross-category links through shared entities.
func gridPool(inst *Instance) ([]domain.Clue, error) {
	sch := &inst.Scheme
	entities := sch.Primary.Elements

	var pool []domain.Clue
	for ci, col := range sch.Columns {
		cat := col.Category
		for e, name := range entities {
			v := value(inst, e, ci)
			pool = append(pool, domain.Clue{
				Kind: domain.KindDirect, A: domain.CellRef{Entity: e, Col: ci}, Value: v,
				Text: fmt.Sprintf("%s's %s is %s.", name, cat.Name, cat.Elements[v]),
			})
			for w := range cat.Elements {
				if w == v {
					continue
				}
				pool = append(pool, domain.Clue{
					Kind: domain.KindExclusion, A: domain.CellRef{Entity: e, Col: ci}, Value: w,
					Text: fmt.Sprintf("%s's %s is not %s.", name, cat.Name, cat.Elements[w]),
				})
			}
		}
	}

	for c1 := range sch.Columns {
		for c2 := c1 + 1; c2 < len(sch.Columns); c2++ {
			cat1 := sch.Columns[c1].Category
			cat2 := sch.Columns[c2].Category
			for e1 := range entities {
				v1 := value(inst, e1, c1)
				for e2 := range entities {
					v2 := value(inst, e2, c2)
					a := domain.CellRef{Entity: -1, Col: c1}
					b := domain.CellRef{Entity: -1, Col: c2}
					if e1 == e2 {
						pool = append(pool, domain.Clue{
							Kind: domain.KindLink, A: a, Value: v1, B: b, Value2: v2,
							Text: fmt.Sprintf("The %s %s goes with the %s %s.",
								cat1.Name, cat1.Elements[v1], cat2.Name, cat2.Elements[v2]),
						})
					} else {
						pool = append(pool, domain.Clue{
							Kind: domain.KindUnlink, A: a, Value: v1, B: b, Value2: v2,
							Text: fmt.Sprintf("The %s %s does not go with the %s %s.",
								cat1.Name, cat1.Elements[v1], cat2.Name, cat2.Elements[v2]),
						})
					}
				}
			}
		}
	}

	return pool, nil
}
