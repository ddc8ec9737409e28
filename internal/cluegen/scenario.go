package cluegen

import (
	"fmt"

	"arcanum.games/engine/internal/domain"
)

// scenarioPool builds the pool for the single-variable scenario types
// (social deduction, common-sense gap, dilemma, agent simulation). Every
// clue is an exclusion whose display text is scenario prose from the
// instance: an alibi, an observation, a ruled-out option.
func scenarioPool(inst *Instance) ([]domain.Clue, error) {
	answer := inst.Solution[0]
	options := inst.Scheme.Columns[0].Category.Elements

	var pool []domain.Clue
	for v, name := range options {
		if v == answer {
			continue
		}
		text, ok := inst.Eliminations[v]
		if !ok || text == "" {
			text = fmt.Sprintf("%s can be ruled out.", name)
		}
		pool = append(pool, domain.Clue{
			Kind: domain.KindExclusion, A: domain.CellRef{Entity: 0, Col: 0}, Value: v,
			Text: text,
		})
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: scenario needs at least two options", domain.ErrDomain)
	}
	return pool, nil
}
