package domain

import (
	"fmt"
	"strings"
)

// Clue is one statement shown to the player. It is a closed tagged
// variant: Kind selects which fields are meaningful, and Eval gives every
// kind a uniform truth test against a candidate assignment. Clues are
// immutable once attached to a puzzle.
//
// Field use by kind:
//
//	Direct       A, Value
//	Exclusion    A, Value
//	Positional   A, Set        (phrased by the cell's position)
//	Categorical  A, Set
//	Relational   A, B, Gap     (0 = strictly before, 1 = immediately before)
//	Conditional  A, Set, B, Set2
//	Together     A, B
//	Apart        A, B
//	Link         A.Col, Value, B.Col, Value2   (Entity fields unused)
//	Unlink       A.Col, Value, B.Col, Value2   (Entity fields unused)
//
// Relational compares value indices, so it is only generated for columns
// whose element order is meaningful (alphabetical letters, chronological
// slots, ordinal positions).
type Clue struct {
	Kind   ClueKind `json:"kind"`
	A      CellRef  `json:"a"`
	B      CellRef  `json:"b,omitempty"`
	Value  int      `json:"value,omitempty"`
	Value2 int      `json:"value2,omitempty"`
	Set    []int    `json:"set,omitempty"`
	Set2   []int    `json:"set2,omitempty"`
	Gap    int      `json:"gap,omitempty"`
	Text   string   `json:"text"`
}

// Eval reports whether the clue holds for a complete assignment. Cells
// the clue references must be assigned; an unassigned referenced cell
// evaluates false.
func (c *Clue) Eval(s *Scheme, a Assignment) bool {
	switch c.Kind {
	case KindDirect:
		return a[s.CellIndex(c.A.Entity, c.A.Col)] == c.Value
	case KindExclusion:
		v := a[s.CellIndex(c.A.Entity, c.A.Col)]
		return v != Unassigned && v != c.Value
	case KindPositional, KindCategorical:
		return inSet(a[s.CellIndex(c.A.Entity, c.A.Col)], c.Set)
	case KindRelational:
		va := a[s.CellIndex(c.A.Entity, c.A.Col)]
		vb := a[s.CellIndex(c.B.Entity, c.B.Col)]
		if va == Unassigned || vb == Unassigned {
			return false
		}
		if c.Gap > 0 {
			return vb == va+c.Gap
		}
		return va < vb
	case KindConditional:
		va := a[s.CellIndex(c.A.Entity, c.A.Col)]
		if va == Unassigned {
			return false
		}
		if !inSet(va, c.Set) {
			return true
		}
		return inSet(a[s.CellIndex(c.B.Entity, c.B.Col)], c.Set2)
	case KindTogether:
		va := a[s.CellIndex(c.A.Entity, c.A.Col)]
		vb := a[s.CellIndex(c.B.Entity, c.B.Col)]
		return va != Unassigned && va == vb
	case KindApart:
		va := a[s.CellIndex(c.A.Entity, c.A.Col)]
		vb := a[s.CellIndex(c.B.Entity, c.B.Col)]
		return va != Unassigned && vb != Unassigned && va != vb
	case KindLink:
		e := holderOf(s, a, c.A.Col, c.Value)
		return e >= 0 && a[s.CellIndex(e, c.B.Col)] == c.Value2
	case KindUnlink:
		e := holderOf(s, a, c.A.Col, c.Value)
		return e < 0 || a[s.CellIndex(e, c.B.Col)] != c.Value2
	default:
		return false
	}
}

// Mentions reports whether the clue explicitly references a cell. Link
// and unlink clues name values rather than cells, so they never match
// here; MentionsResolved covers them.
func (c *Clue) Mentions(ref CellRef) bool {
	switch c.Kind {
	case KindDirect, KindExclusion, KindPositional, KindCategorical:
		return c.A == ref
	case KindRelational, KindConditional, KindTogether, KindApart:
		return c.A == ref || c.B == ref
	default:
		return false
	}
}

// MentionsResolved reports whether the clue bears on a cell once its
// value operands are resolved through a complete assignment. A link or
// unlink clue pins the entity holding Value in A.Col (or Value2 in
// B.Col); that entity is only known given a solution. Used to attach a
// reason line to hints.
func (c *Clue) MentionsResolved(s *Scheme, sol Assignment, ref CellRef) bool {
	switch c.Kind {
	case KindLink, KindUnlink:
		if ref.Col != c.A.Col && ref.Col != c.B.Col {
			return false
		}
		return sol[s.CellIndex(ref.Entity, c.A.Col)] == c.Value ||
			sol[s.CellIndex(ref.Entity, c.B.Col)] == c.Value2
	default:
		return c.Mentions(ref)
	}
}

// Key is a canonical identity for duplicate-predicate suppression: two
// clues with equal keys constrain assignments identically regardless of
// their display text.
func (c *Clue) Key() string {
	switch c.Kind {
	case KindDirect, KindExclusion:
		return fmt.Sprintf("%d|%d.%d=%d", c.Kind, c.A.Col, c.A.Entity, c.Value)
	case KindPositional, KindCategorical:
		// Positional and Categorical share predicate semantics.
		return fmt.Sprintf("set|%d.%d:%s", c.A.Col, c.A.Entity, setKey(c.Set))
	case KindRelational:
		return fmt.Sprintf("%d|%d.%d<%d.%d~%d", c.Kind, c.A.Col, c.A.Entity, c.B.Col, c.B.Entity, c.Gap)
	case KindConditional:
		return fmt.Sprintf("%d|%d.%d:%s>%d.%d:%s", c.Kind, c.A.Col, c.A.Entity, setKey(c.Set), c.B.Col, c.B.Entity, setKey(c.Set2))
	case KindTogether, KindApart:
		a, b := c.A, c.B
		if b.Col < a.Col || (b.Col == a.Col && b.Entity < a.Entity) {
			a, b = b, a
		}
		return fmt.Sprintf("%d|%d.%d~%d.%d", c.Kind, a.Col, a.Entity, b.Col, b.Entity)
	case KindLink, KindUnlink:
		ca, va, cb, vb := c.A.Col, c.Value, c.B.Col, c.Value2
		if cb < ca {
			ca, va, cb, vb = cb, vb, ca, va
		}
		return fmt.Sprintf("%d|%d=%d~%d=%d", c.Kind, ca, va, cb, vb)
	default:
		return fmt.Sprintf("%d|?", c.Kind)
	}
}

func inSet(v int, set []int) bool {
	if v == Unassigned {
		return false
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func setKey(set []int) string {
	var b strings.Builder
	for i, v := range set {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}

// holderOf finds the entity assigned a value in a column, or -1.
func holderOf(s *Scheme, a Assignment, col, value int) int {
	for e := range s.Primary.Elements {
		if a[s.CellIndex(e, col)] == value {
			return e
		}
	}
	return -1
}
