package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"arcanum.games/engine/internal/cluegen"
	"arcanum.games/engine/internal/content"
	"arcanum.games/engine/internal/domain"
)

// buildInstance samples one ground-truth instance for a type at a
// difficulty. Everything random flows through rng, so equal seeds give
// equal instances.
func buildInstance(pools *content.Pools, t domain.PuzzleType, d domain.Difficulty, rng *rand.Rand) (*cluegen.Instance, error) {
	switch t {
	case domain.SymbolCipher:
		return cipherInstance(pools, d, rng)
	case domain.LogicGrid:
		return gridInstance(pools, d, rng)
	case domain.Ordering:
		return orderingInstance(pools, d, rng)
	case domain.Scheduling:
		return schedulingInstance(pools, d, rng)
	case domain.RelationshipMap:
		return matchingInstance(pools, d, rng)
	case domain.SocialDeduction:
		return socialInstance(pools, d, rng)
	case domain.CommonSenseGap:
		return scenarioInstance(pools.CommonSense, t, d, rng)
	case domain.Dilemma:
		return scenarioInstance(pools.Dilemma, t, d, rng)
	case domain.AgentSimulation:
		return scenarioInstance(pools.Agent, t, d, rng)
	default:
		return nil, fmt.Errorf("%w: unknown puzzle type %s", domain.ErrDomain, t)
	}
}

// cipherInstance maps n symbols onto n distinct letters. The letter
// column keeps alphabet order, so clue text about alphabetical position
// reads straight off the value indices.
func cipherInstance(p *content.Pools, d domain.Difficulty, rng *rand.Rand) (*cluegen.Instance, error) {
	n := d.Elements()
	sch := domain.Scheme{
		Primary: domain.Category{Name: "Symbol", Elements: sample(rng, p.Cipher.Symbols, n)},
		Columns: []domain.Column{{
			Category:     domain.Category{Name: "Letter", Elements: sampleLetters(rng, p.Cipher.Alphabet, n)},
			AllDifferent: true,
		}},
	}
	sol := domain.NewAssignment(&sch)
	fillPermutation(rng, &sch, sol, 0)
	return &cluegen.Instance{
		Type: domain.SymbolCipher, Difficulty: d, Scheme: sch, Solution: sol,
		Title: p.Cipher.Title, Narrative: p.Cipher.Narrative,
	}, nil
}

// gridInstance picks a themed grid and permutes each secondary category.
// Easy and medium use two secondary categories, hard and expert three.
func gridInstance(p *content.Pools, d domain.Difficulty, rng *rand.Rand) (*cluegen.Instance, error) {
	n := d.Elements()
	ncols := 2
	if d >= domain.Hard {
		ncols = 3
	}
	theme := p.Grid.Themes[rng.Intn(len(p.Grid.Themes))]
	cols := make([]domain.Column, 0, ncols)
	for _, ci := range rng.Perm(len(theme.Categories))[:ncols] {
		cat := theme.Categories[ci]
		cols = append(cols, domain.Column{
			Category:     domain.Category{Name: cat.Name, Elements: sample(rng, cat.Elements, n)},
			AllDifferent: true,
		})
	}
	sch := domain.Scheme{
		Primary: domain.Category{Name: theme.Primary.Name, Elements: sample(rng, theme.Primary.Elements, n)},
		Columns: cols,
	}
	sol := domain.NewAssignment(&sch)
	for c := range sch.Columns {
		fillPermutation(rng, &sch, sol, c)
	}
	return &cluegen.Instance{
		Type: domain.LogicGrid, Difficulty: d, Scheme: sch, Solution: sol,
		Title: theme.Name, Narrative: theme.Narrative,
	}, nil
}

var positionNames = [...]string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth"}

// orderingInstance samples steps from one scenario; the hidden truth is
// a random order.
func orderingInstance(p *content.Pools, d domain.Difficulty, rng *rand.Rand) (*cluegen.Instance, error) {
	n := d.Elements()
	sc := p.Ordering.Scenarios[rng.Intn(len(p.Ordering.Scenarios))]
	sch := domain.Scheme{
		Primary: domain.Category{Name: "Step", Elements: sample(rng, sc.Items, n)},
		Columns: []domain.Column{{
			Category:     domain.Category{Name: "Position", Elements: positionNames[:n]},
			AllDifferent: true,
		}},
	}
	sol := domain.NewAssignment(&sch)
	fillPermutation(rng, &sch, sol, 0)
	return &cluegen.Instance{
		Type: domain.Ordering, Difficulty: d, Scheme: sch, Solution: sol,
		Title: sc.Title, Narrative: sc.Narrative,
	}, nil
}

// schedulingInstance assigns n people to m shareable slots, at least two
// of them distinct so the schedule is never a single meeting. Slots keep
// the pack's chronological order, which "meets before" clues rely on.
func schedulingInstance(p *content.Pools, d domain.Difficulty, rng *rand.Rand) (*cluegen.Instance, error) {
	n := d.Elements()
	m := n - 1
	if m < 2 {
		m = 2
	}
	sch := domain.Scheme{
		Primary: domain.Category{Name: "Person", Elements: sample(rng, p.People.Names, n)},
		Columns: []domain.Column{{
			Category: domain.Category{Name: "Time", Elements: append([]string(nil), p.Scheduling.Slots[:m]...)},
		}},
	}
	sol := domain.NewAssignment(&sch)
	used := make(map[int]struct{}, m)
	for e := 0; e < n; e++ {
		v := rng.Intn(m)
		sol[sch.CellIndex(e, 0)] = v
		used[v] = struct{}{}
	}
	if len(used) < 2 {
		// Everyone landed in one slot; move the last person over.
		idx := sch.CellIndex(n-1, 0)
		sol[idx] = (sol[idx] + 1) % m
	}
	return &cluegen.Instance{
		Type: domain.Scheduling, Difficulty: d, Scheme: sch, Solution: sol,
		Title: p.Scheduling.Title, Narrative: p.Scheduling.Narrative,
	}, nil
}

// matchingInstance pairs an even cast off into partners. Odd difficulty
// sizes round up so nobody is left unpartnered.
func matchingInstance(p *content.Pools, d domain.Difficulty, rng *rand.Rand) (*cluegen.Instance, error) {
	n := d.Elements()
	if n%2 == 1 {
		n++
	}
	names := sample(rng, p.People.Names, n)
	sch := domain.Scheme{
		Primary: domain.Category{Name: "Person", Elements: names},
		Columns: []domain.Column{{
			Category:     domain.Category{Name: "Partner", Elements: names},
			AllDifferent: true,
			Symmetric:    true,
		}},
	}
	sol := domain.NewAssignment(&sch)
	order := rng.Perm(n)
	for i := 0; i < n; i += 2 {
		a, b := order[i], order[i+1]
		sol[sch.CellIndex(a, 0)] = b
		sol[sch.CellIndex(b, 0)] = a
	}
	return &cluegen.Instance{
		Type: domain.RelationshipMap, Difficulty: d, Scheme: sch, Solution: sol,
		Title: p.People.Pairing.Title, Narrative: p.People.Pairing.Narrative,
	}, nil
}

// socialInstance frames a whodunit: one culprit among n suspects and an
// alibi for everyone else.
func socialInstance(p *content.Pools, d domain.Difficulty, rng *rand.Rand) (*cluegen.Instance, error) {
	n := d.Elements()
	setting := p.Social.Settings[rng.Intn(len(p.Social.Settings))]
	suspects := sample(rng, p.People.Names, n)
	answer := rng.Intn(n)
	alibis := rng.Perm(len(p.Social.Alibis))
	elim := make(map[int]string, n-1)
	ai := 0
	for v, name := range suspects {
		if v == answer {
			continue
		}
		elim[v] = fmt.Sprintf(p.Social.Alibis[alibis[ai]], name)
		ai++
	}
	return &cluegen.Instance{
		Type: domain.SocialDeduction, Difficulty: d,
		Scheme:   singleScheme("The Culprit", "Suspect", suspects),
		Solution: domain.Assignment{answer},
		Title:    setting.Title, Narrative: setting.Narrative, Eliminations: elim,
	}, nil
}

// scenarioInstance samples n options around a scenario's fixed answer.
func scenarioInstance(list []content.Scenario, t domain.PuzzleType, d domain.Difficulty, rng *rand.Rand) (*cluegen.Instance, error) {
	n := d.Elements()
	sc := list[rng.Intn(len(list))]
	others := make([]string, 0, len(sc.Options)-1)
	for _, o := range sc.Options {
		if o != sc.Answer {
			others = append(others, o)
		}
	}
	options := append(sample(rng, others, n-1), sc.Answer)
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	answer := 0
	elim := make(map[int]string, n-1)
	for v, o := range options {
		if o == sc.Answer {
			answer = v
		} else {
			elim[v] = sc.Eliminations[o]
		}
	}
	entity, column := scenarioLabels(t)
	return &cluegen.Instance{
		Type: t, Difficulty: d,
		Scheme:   singleScheme(entity, column, options),
		Solution: domain.Assignment{answer},
		Title:    sc.Title, Narrative: sc.Narrative, Eliminations: elim,
	}, nil
}

// scenarioLabels names the unknown and its option column per type.
func scenarioLabels(t domain.PuzzleType) (entity, column string) {
	switch t {
	case domain.CommonSenseGap:
		return "The Missing Piece", "Candidate"
	case domain.Dilemma:
		return "The Soundest Course", "Course"
	default:
		return "The Hidden Rule", "Hypothesis"
	}
}

// singleScheme is the one-variable shape shared by the scenario types.
func singleScheme(entity, column string, options []string) domain.Scheme {
	return domain.Scheme{
		Primary: domain.Category{Name: "Question", Elements: []string{entity}},
		Columns: []domain.Column{{
			Category: domain.Category{Name: column, Elements: options},
		}},
	}
}

// sample draws n elements without replacement, in random order.
func sample(rng *rand.Rand, xs []string, n int) []string {
	idx := rng.Perm(len(xs))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = xs[j]
	}
	return out
}

// sampleLetters draws n distinct letters, keeping alphabet order.
func sampleLetters(rng *rand.Rand, alphabet string, n int) []string {
	runes := []rune(alphabet)
	idx := rng.Perm(len(runes))[:n]
	sort.Ints(idx)
	out := make([]string, n)
	for i, j := range idx {
		out[i] = string(runes[j])
	}
	return out
}

// fillPermutation writes a random bijection into one all-different
// column of the solution.
func fillPermutation(rng *rand.Rand, sch *domain.Scheme, sol domain.Assignment, col int) {
	for e, v := range rng.Perm(len(sch.Primary.Elements)) {
		sol[sch.CellIndex(e, col)] = v
	}
}
