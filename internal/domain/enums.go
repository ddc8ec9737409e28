package domain

import "fmt"

// Difficulty drives domain sizing and clue-kind availability.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

var difficultyNames = [...]string{"easy", "medium", "hard", "expert"}

func (d Difficulty) String() string {
	if d < Easy || d > Expert {
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

// Elements is the per-category element count used at this difficulty.
func (d Difficulty) Elements() int {
	switch d {
	case Easy:
		return 3
	case Medium:
		return 4
	case Hard:
		return 5
	default:
		return 6
	}
}

// ParseDifficulty maps a user-facing name back to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for i, n := range difficultyNames {
		if n == s {
			return Difficulty(i), nil
		}
	}
	return Easy, fmt.Errorf("%w: unknown difficulty %q", ErrDomain, s)
}

// PuzzleType tags the nine puzzle families the engine can build.
type PuzzleType int

const (
	SymbolCipher PuzzleType = iota
	LogicGrid
	SocialDeduction
	CommonSenseGap
	RelationshipMap
	Ordering
	Scheduling
	Dilemma
	AgentSimulation
)

var puzzleTypeNames = [...]string{
	"symbol-cipher",
	"logic-grid",
	"social-deduction",
	"common-sense-gap",
	"relationship-map",
	"ordering",
	"scheduling",
	"dilemma",
	"agent-simulation",
}

func (t PuzzleType) String() string {
	if t < SymbolCipher || t > AgentSimulation {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return puzzleTypeNames[t]
}

// ParsePuzzleType maps a user-facing name back to a PuzzleType.
func ParsePuzzleType(s string) (PuzzleType, error) {
	for i, n := range puzzleTypeNames {
		if n == s {
			return PuzzleType(i), nil
		}
	}
	return SymbolCipher, fmt.Errorf("%w: unknown puzzle type %q", ErrDomain, s)
}

// PuzzleTypes lists every type in declaration order.
func PuzzleTypes() []PuzzleType {
	out := make([]PuzzleType, 0, len(puzzleTypeNames))
	for i := range puzzleTypeNames {
		out = append(out, PuzzleType(i))
	}
	return out
}

// ClueKind enumerates the closed set of clue predicates. The set is fixed:
// every kind is evaluated by Clue.Eval and pruned by the solver, so adding
// a kind means touching both.
type ClueKind int

const (
	KindDirect      ClueKind = iota // cell A holds Value
	KindExclusion                   // cell A does not hold Value
	KindPositional                  // cell A's value lies in Set, phrased by position
	KindCategorical                 // cell A's value lies in Set
	KindRelational                  // A's value precedes B's value (Gap 1 = immediately)
	KindConditional                 // A in Set implies B in Set2
	KindTogether                    // A and B hold the same value
	KindApart                       // A and B hold different values
	KindLink                        // the entity holding Value in A.Col holds Value2 in B.Col
	KindUnlink                      // no entity holds both Value in A.Col and Value2 in B.Col
)

var clueKindNames = [...]string{
	"direct",
	"exclusion",
	"positional",
	"categorical",
	"relational",
	"conditional",
	"together",
	"apart",
	"link",
	"unlink",
}

func (k ClueKind) String() string {
	if k < KindDirect || k > KindUnlink {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return clueKindNames[k]
}

// ParseClueKind maps a serialized kind name back to a ClueKind.
func ParseClueKind(s string) (ClueKind, error) {
	for i, n := range clueKindNames {
		if n == s {
			return ClueKind(i), nil
		}
	}
	return KindDirect, fmt.Errorf("%w: unknown clue kind %q", ErrCorruptSave, s)
}

// Outcome is the solver's tri-state satisfiability answer.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeUnique
	OutcomeMultiple
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeUnique:
		return "unique"
	case OutcomeMultiple:
		return "multiple"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// CellStatus classifies one cell of a validation report.
type CellStatus int

const (
	StatusUnassigned CellStatus = iota
	StatusMatch
	StatusMismatch
)

func (s CellStatus) String() string {
	switch s {
	case StatusUnassigned:
		return "unassigned"
	case StatusMatch:
		return "match"
	case StatusMismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
