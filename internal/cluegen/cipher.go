package cluegen

import (
	"fmt"
	"math/rand"

	"arcanum.games/engine/internal/domain"
)

// cipherPool enumerates true clues for a symbol-substitution cipher.
// Kind availability widens with difficulty: easy puzzles stick to
// identities, exclusions and letter classes; positional phrasing,
// alphabetical order and conditionals join at medium, hard and expert.
func cipherPool(inst *Instance, rng *rand.Rand) ([]domain.Clue, error) {
	sch := &inst.Scheme
	symbols := sch.Primary.Elements
	letters := sch.Columns[0].Category.Elements
	vowels := classIndices(letters, true)
	consonants := classIndices(letters, false)

	var pool []domain.Clue
	cell := func(e int) domain.CellRef { return domain.CellRef{Entity: e, Col: 0} }

	for e, sym := range symbols {
		v := value(inst, e, 0)
		pool = append(pool, domain.Clue{
			Kind: domain.KindDirect, A: cell(e), Value: v,
			Text: fmt.Sprintf("The symbol %s stands for the letter %s.", sym, letters[v]),
		})
		for w := range letters {
			if w == v {
				continue
			}
			pool = append(pool, domain.Clue{
				Kind: domain.KindExclusion, A: cell(e), Value: w,
				Text: fmt.Sprintf("The symbol %s does not stand for %s.", sym, letters[w]),
			})
		}
	}

	// Letter-class clues carry information only when the split is real.
	if len(vowels) > 0 && len(consonants) > 0 {
		for e, sym := range symbols {
			set, class := vowels, "a vowel"
			if !isVowel(letters[value(inst, e, 0)]) {
				set, class = consonants, "a consonant"
			}
			c := domain.Clue{Kind: domain.KindCategorical, A: cell(e), Set: set,
				Text: fmt.Sprintf("The symbol %s conceals %s.", sym, class)}
			if inst.Difficulty >= domain.Medium && rng.Intn(2) == 1 {
				c.Kind = domain.KindPositional
				c.Text = fmt.Sprintf("The %s symbol conceals %s.", ordinal(e), class)
			}
			pool = append(pool, c)
		}
	}

	if inst.Difficulty >= domain.Hard {
		for a := range symbols {
			for b := a + 1; b < len(symbols); b++ {
				lo, hi := a, b
				if value(inst, lo, 0) > value(inst, hi, 0) {
					lo, hi = hi, lo
				}
				pool = append(pool, domain.Clue{
					Kind: domain.KindRelational, A: cell(lo), B: cell(hi),
					Text: fmt.Sprintf("The letter behind %s comes before the letter behind %s in the alphabet.",
						symbols[lo], symbols[hi]),
				})
			}
		}
	}

	if inst.Difficulty >= domain.Expert && len(vowels) > 0 && len(consonants) > 0 {
		for a := range symbols {
			for b := range symbols {
				if a == b || !isVowel(letters[value(inst, a, 0)]) {
					continue
				}
				set2, class2 := vowels, "a vowel"
				if !isVowel(letters[value(inst, b, 0)]) {
					set2, class2 = consonants, "a consonant"
				}
				pool = append(pool, domain.Clue{
					Kind: domain.KindConditional, A: cell(a), Set: vowels, B: cell(b), Set2: set2,
					Text: fmt.Sprintf("If %s conceals a vowel, then %s conceals %s.", symbols[a], symbols[b], class2),
				})
			}
		}
	}

	return pool, nil
}

func isVowel(letter string) bool {
	if letter == "" {
		return false
	}
	switch letter[0] {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// classIndices collects the letter indices of one class.
func classIndices(letters []string, vowel bool) []int {
	var out []int
	for i, l := range letters {
		if isVowel(l) == vowel {
			out = append(out, i)
		}
	}
	return out
}
