package domain

import "fmt"

// Category is a named finite set of distinct elements.
type Category struct {
	Name     string   `json:"name"`
	Elements []string `json:"elements"`
}

// Index returns the position of an element by name, or -1.
func (c *Category) Index(name string) int {
	for i, e := range c.Elements {
		if e == name {
			return i
		}
	}
	return -1
}

// Column couples a secondary category with the structural constraints the
// solver enforces on it. AllDifferent makes the column a bijection from
// the primary elements. Symmetric marks a partner column: its values index
// the primary elements themselves and the mapping must be a
// fixed-point-free involution. A column with neither flag is a plain
// function, so two primary elements may share a value (scheduling slots).
type Column struct {
	Category     Category `json:"category"`
	AllDifferent bool     `json:"allDifferent,omitempty"`
	Symmetric    bool     `json:"symmetric,omitempty"`
}

// Scheme is the relational shape of a puzzle: one primary category whose
// elements are the variables, and one column of candidate values per
// secondary category.
type Scheme struct {
	Primary Category `json:"primary"`
	Columns []Column `json:"columns"`
}

// Cells is the number of assignable slots: one per (entity, column) pair.
func (s *Scheme) Cells() int { return len(s.Primary.Elements) * len(s.Columns) }

// CellIndex flattens an (entity, column) pair into an Assignment index.
func (s *Scheme) CellIndex(entity, col int) int {
	return col*len(s.Primary.Elements) + entity
}

// CellAt is the inverse of CellIndex.
func (s *Scheme) CellAt(idx int) CellRef {
	n := len(s.Primary.Elements)
	return CellRef{Entity: idx % n, Col: idx / n}
}

// CellRef identifies one assignable slot.
type CellRef struct {
	Entity int `json:"entity"`
	Col    int `json:"col"`
}

// Assignment maps each cell to a value index into its column's category,
// or Unassigned. The player's working state and the stored solution share
// this representation; a solution is simply a complete Assignment.
type Assignment []int

// Unassigned marks a cell with no value.
const Unassigned = -1

// NewAssignment returns an all-unassigned Assignment for a scheme.
func NewAssignment(s *Scheme) Assignment {
	a := make(Assignment, s.Cells())
	for i := range a {
		a[i] = Unassigned
	}
	return a
}

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	return append(Assignment(nil), a...)
}

// Complete reports whether every cell has a value.
func (a Assignment) Complete() bool {
	for _, v := range a {
		if v == Unassigned {
			return false
		}
	}
	return true
}

// Equal reports whether two assignments agree cell for cell.
func (a Assignment) Equal(b Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Puzzle is a fully assembled instance: categories, the hidden solution,
// and the minimal clue sequence shown to the player. Read-only once
// published by the assembler.
type Puzzle struct {
	ID         string     `json:"id"`
	Type       PuzzleType `json:"type"`
	Difficulty Difficulty `json:"difficulty"`
	Seed       int64      `json:"seed"`
	Title      string     `json:"title,omitempty"`
	Narrative  string     `json:"narrative,omitempty"`
	Scheme     Scheme     `json:"scheme"`
	Clues      []Clue     `json:"clues"`
	Solution   Assignment `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// CluesForDisplay returns the ordered human-readable clue texts.
func (p *Puzzle) CluesForDisplay() []string {
	out := make([]string, len(p.Clues))
	for i, c := range p.Clues {
		out[i] = c.Text
	}
	return out
}

// CellName renders a cell as "entity / column" for reports and hints.
func (p *Puzzle) CellName(ref CellRef) string {
	return fmt.Sprintf("%s / %s", p.Scheme.Primary.Elements[ref.Entity], p.Scheme.Columns[ref.Col].Category.Name)
}

// ValueName resolves a value index in a cell's column to its element name.
func (p *Puzzle) ValueName(ref CellRef, value int) string {
	col := p.Scheme.Columns[ref.Col].Category
	if value < 0 || value >= len(col.Elements) {
		return fmt.Sprintf("value(%d)", value)
	}
	return col.Elements[value]
}

// CellCheck is one line of a validation report.
type CellCheck struct {
	Cell   CellRef    `json:"cell"`
	Status CellStatus `json:"status"`
}

// Report is the validator's per-cell answer to "is this right so far".
type Report struct {
	Cells      []CellCheck `json:"cells"`
	Solved     bool        `json:"solved"`
	Matched    int         `json:"matched"`
	Mismatched int         `json:"mismatched"`
	Unassigned int         `json:"unassigned"`
}

// Hint reveals one cell of the solution together with a reason.
type Hint struct {
	Cell   CellRef `json:"cell"`
	Value  int     `json:"value"`
	Text   string  `json:"text"`
	Reason string  `json:"reason,omitempty"`
}

// Result is the solver's answer: the satisfiability class of the clue
// set, plus the single satisfying assignment when the outcome is
// OutcomeUnique.
type Result struct {
	Outcome    Outcome
	Assignment Assignment
}
