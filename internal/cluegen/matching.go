package cluegen

import (
	"fmt"

	"arcanum.games/engine/internal/domain"
)

// matchingPool enumerates true clues for a relationship map: who is
// paired with whom, and who is not. Each statement is emitted once per
// unordered pair; the involution makes the mirror redundant.
func matchingPool(inst *Instance) ([]domain.Clue, error) {
	people := inst.Scheme.Primary.Elements

	var pool []domain.Clue
	for e, name := range people {
		partner := value(inst, e, 0)
		if e < partner {
			pool = append(pool, domain.Clue{
				Kind: domain.KindDirect, A: domain.CellRef{Entity: e, Col: 0}, Value: partner,
				Text: fmt.Sprintf("%s is paired with %s.", name, people[partner]),
			})
		}
		for w := range people {
			if w == e || w == partner || e > w {
				continue
			}
			pool = append(pool, domain.Clue{
				Kind: domain.KindExclusion, A: domain.CellRef{Entity: e, Col: 0}, Value: w,
				Text: fmt.Sprintf("%s is not paired with %s.", name, people[w]),
			})
		}
	}
	return pool, nil
}
