// Package storage persists save records and the player session, either
// as JSON files or in a Badger key-value store. The record codec lives
// here too: records store every operand by element name, so decoding
// doubles as a corruption check before the solver's integrity re-run.
package storage

import (
	"fmt"
	"time"

	"arcanum.games/engine/internal/domain"
)

// EncodeRecord renders a puzzle plus the player's working assignment as
// a self-describing save record.
func EncodeRecord(p *domain.Puzzle, a domain.Assignment) *domain.SaveRecord {
	rec := &domain.SaveRecord{
		Version:    domain.SaveVersion,
		ID:         p.ID,
		Type:       p.Type.String(),
		Difficulty: p.Difficulty.String(),
		Seed:       p.Seed,
		Title:      p.Title,
		Narrative:  p.Narrative,
		Primary:    p.Scheme.Primary,
		Columns:    p.Scheme.Columns,
		Solution:   encodeAssignment(&p.Scheme, p.Solution),
		Assignment: encodeAssignment(&p.Scheme, a),
		CreatedAt:  p.CreatedAt,
		SavedAt:    time.Now().UnixNano(),
	}
	rec.Clues = make([]domain.ClueRecord, 0, len(p.Clues))
	for _, c := range p.Clues {
		rec.Clues = append(rec.Clues, encodeClue(&p.Scheme, c))
	}
	return rec
}

// DecodeRecord rebuilds the puzzle and assignment from a record,
// resolving every name against the record's own categories. Any
// reference that fails to resolve reports ErrCorruptSave; whether the
// clues still force the stored solution is the caller's check.
func DecodeRecord(rec *domain.SaveRecord) (*domain.Puzzle, domain.Assignment, error) {
	if rec.Version != domain.SaveVersion {
		return nil, nil, fmt.Errorf("%w: unsupported save version %d", domain.ErrCorruptSave, rec.Version)
	}
	t, err := domain.ParsePuzzleType(rec.Type)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrCorruptSave, err)
	}
	d, err := domain.ParseDifficulty(rec.Difficulty)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrCorruptSave, err)
	}
	sch := domain.Scheme{Primary: rec.Primary, Columns: rec.Columns}
	if len(sch.Primary.Elements) == 0 || len(sch.Columns) == 0 {
		return nil, nil, fmt.Errorf("%w: empty scheme", domain.ErrCorruptSave)
	}
	for _, col := range sch.Columns {
		if len(col.Category.Elements) == 0 {
			return nil, nil, fmt.Errorf("%w: column %q has no elements", domain.ErrCorruptSave, col.Category.Name)
		}
	}
	clues := make([]domain.Clue, 0, len(rec.Clues))
	for i, cr := range rec.Clues {
		c, err := decodeClue(&sch, cr)
		if err != nil {
			return nil, nil, fmt.Errorf("clue %d: %w", i, err)
		}
		clues = append(clues, c)
	}
	sol, err := decodeAssignment(&sch, rec.Solution, true)
	if err != nil {
		return nil, nil, fmt.Errorf("solution: %w", err)
	}
	asg, err := decodeAssignment(&sch, rec.Assignment, false)
	if err != nil {
		return nil, nil, fmt.Errorf("assignment: %w", err)
	}
	p := &domain.Puzzle{
		ID:         rec.ID,
		Type:       t,
		Difficulty: d,
		Seed:       rec.Seed,
		Title:      rec.Title,
		Narrative:  rec.Narrative,
		Scheme:     sch,
		Clues:      clues,
		Solution:   sol,
		CreatedAt:  rec.CreatedAt,
	}
	return p, asg, nil
}

func encodeAssignment(s *domain.Scheme, a domain.Assignment) map[string]map[string]string {
	if a == nil {
		return nil
	}
	out := make(map[string]map[string]string)
	for idx := 0; idx < s.Cells() && idx < len(a); idx++ {
		v := a[idx]
		ref := s.CellAt(idx)
		col := s.Columns[ref.Col].Category
		if v < 0 || v >= len(col.Elements) {
			continue
		}
		ent := s.Primary.Elements[ref.Entity]
		if out[ent] == nil {
			out[ent] = make(map[string]string)
		}
		out[ent][col.Name] = col.Elements[v]
	}
	return out
}

func decodeAssignment(s *domain.Scheme, m map[string]map[string]string, complete bool) (domain.Assignment, error) {
	a := domain.NewAssignment(s)
	for ent, cols := range m {
		e := s.Primary.Index(ent)
		if e < 0 {
			return nil, fmt.Errorf("%w: unknown entity %q", domain.ErrCorruptSave, ent)
		}
		for colName, valName := range cols {
			ci, col := findColumn(s, colName)
			if ci < 0 {
				return nil, fmt.Errorf("%w: unknown column %q", domain.ErrCorruptSave, colName)
			}
			v := col.Index(valName)
			if v < 0 {
				return nil, fmt.Errorf("%w: unknown element %q in column %q", domain.ErrCorruptSave, valName, colName)
			}
			a[s.CellIndex(e, ci)] = v
		}
	}
	if complete && !a.Complete() {
		return nil, fmt.Errorf("%w: incomplete solution", domain.ErrCorruptSave)
	}
	return a, nil
}

func encodeClue(s *domain.Scheme, c domain.Clue) domain.ClueRecord {
	rec := domain.ClueRecord{
		Kind: c.Kind.String(),
		A:    encodeCell(s, c.A),
		Gap:  c.Gap,
		Text: c.Text,
	}
	switch c.Kind {
	case domain.KindDirect, domain.KindExclusion:
		rec.Value = elementName(s, c.A.Col, c.Value)
	case domain.KindPositional, domain.KindCategorical:
		rec.Set = elementNames(s, c.A.Col, c.Set)
	case domain.KindRelational, domain.KindTogether, domain.KindApart:
		b := encodeCell(s, c.B)
		rec.B = &b
	case domain.KindConditional:
		b := encodeCell(s, c.B)
		rec.B = &b
		rec.Set = elementNames(s, c.A.Col, c.Set)
		rec.Set2 = elementNames(s, c.B.Col, c.Set2)
	case domain.KindLink, domain.KindUnlink:
		b := encodeCell(s, c.B)
		rec.B = &b
		rec.Value = elementName(s, c.A.Col, c.Value)
		rec.Value2 = elementName(s, c.B.Col, c.Value2)
	}
	return rec
}

func decodeClue(s *domain.Scheme, rec domain.ClueRecord) (domain.Clue, error) {
	var c domain.Clue
	kind, err := domain.ParseClueKind(rec.Kind)
	if err != nil {
		return c, fmt.Errorf("%w: %v", domain.ErrCorruptSave, err)
	}
	if rec.Gap < 0 {
		return c, fmt.Errorf("%w: negative gap", domain.ErrCorruptSave)
	}
	c.Kind = kind
	c.Gap = rec.Gap
	c.Text = rec.Text
	needEntity := kind != domain.KindLink && kind != domain.KindUnlink
	if c.A, err = decodeCell(s, rec.A, needEntity); err != nil {
		return c, err
	}
	switch kind {
	case domain.KindDirect, domain.KindExclusion:
		c.Value, err = decodeValue(s, c.A.Col, rec.Value)
	case domain.KindPositional, domain.KindCategorical:
		c.Set, err = decodeSet(s, c.A.Col, rec.Set)
	case domain.KindRelational, domain.KindTogether, domain.KindApart:
		c.B, err = decodeSecondCell(s, rec.B, true)
	case domain.KindConditional:
		if c.B, err = decodeSecondCell(s, rec.B, true); err != nil {
			return c, err
		}
		if c.Set, err = decodeSet(s, c.A.Col, rec.Set); err != nil {
			return c, err
		}
		c.Set2, err = decodeSet(s, c.B.Col, rec.Set2)
	case domain.KindLink, domain.KindUnlink:
		if c.B, err = decodeSecondCell(s, rec.B, false); err != nil {
			return c, err
		}
		if c.Value, err = decodeValue(s, c.A.Col, rec.Value); err != nil {
			return c, err
		}
		c.Value2, err = decodeValue(s, c.B.Col, rec.Value2)
	}
	return c, err
}

func encodeCell(s *domain.Scheme, ref domain.CellRef) domain.CellRecord {
	rec := domain.CellRecord{Column: s.Columns[ref.Col].Category.Name}
	if ref.Entity >= 0 && ref.Entity < len(s.Primary.Elements) {
		rec.Entity = s.Primary.Elements[ref.Entity]
	}
	return rec
}

func decodeCell(s *domain.Scheme, rec domain.CellRecord, needEntity bool) (domain.CellRef, error) {
	ci, _ := findColumn(s, rec.Column)
	if ci < 0 {
		return domain.CellRef{}, fmt.Errorf("%w: unknown column %q", domain.ErrCorruptSave, rec.Column)
	}
	ref := domain.CellRef{Entity: -1, Col: ci}
	if !needEntity {
		return ref, nil
	}
	if ref.Entity = s.Primary.Index(rec.Entity); ref.Entity < 0 {
		return domain.CellRef{}, fmt.Errorf("%w: unknown entity %q", domain.ErrCorruptSave, rec.Entity)
	}
	return ref, nil
}

func decodeSecondCell(s *domain.Scheme, rec *domain.CellRecord, needEntity bool) (domain.CellRef, error) {
	if rec == nil {
		return domain.CellRef{}, fmt.Errorf("%w: missing second operand", domain.ErrCorruptSave)
	}
	return decodeCell(s, *rec, needEntity)
}

func decodeValue(s *domain.Scheme, col int, name string) (int, error) {
	v := s.Columns[col].Category.Index(name)
	if v < 0 {
		return 0, fmt.Errorf("%w: unknown element %q", domain.ErrCorruptSave, name)
	}
	return v, nil
}

func decodeSet(s *domain.Scheme, col int, names []string) ([]int, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty element set", domain.ErrCorruptSave)
	}
	out := make([]int, 0, len(names))
	for _, n := range names {
		v, err := decodeValue(s, col, n)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func elementName(s *domain.Scheme, col, v int) string {
	els := s.Columns[col].Category.Elements
	if v < 0 || v >= len(els) {
		return ""
	}
	return els[v]
}

func elementNames(s *domain.Scheme, col int, vs []int) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, elementName(s, col, v))
	}
	return out
}

func findColumn(s *domain.Scheme, name string) (int, *domain.Category) {
	for i := range s.Columns {
		if s.Columns[i].Category.Name == name {
			return i, &s.Columns[i].Category
		}
	}
	return -1, nil
}
