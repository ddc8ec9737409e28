package domain

import "encoding/json"

// SaveVersion is written into every record; loaders reject other versions.
const SaveVersion = 2

// SaveRecord is the persisted form of a puzzle plus the player's partial
// assignment. Everything is stored by name rather than index so a record
// is self-describing and decoding can detect corruption.
type SaveRecord struct {
	Version    int                          `json:"saveVersion"`
	ID         string                       `json:"id"`
	Type       string                       `json:"type"`
	Difficulty string                       `json:"difficulty"`
	Seed       int64                        `json:"seed"`
	Title      string                       `json:"title,omitempty"`
	Narrative  string                       `json:"narrative,omitempty"`
	Primary    Category                     `json:"primary"`
	Columns    []Column                     `json:"columns"`
	Clues      []ClueRecord                 `json:"clues"`
	Solution   map[string]map[string]string `json:"solution"`
	Assignment map[string]map[string]string `json:"assignment,omitempty"`
	CreatedAt  int64                        `json:"createdAt,omitempty"`
	SavedAt    int64                        `json:"savedAt,omitempty"`
}

// CellRecord names a cell by its entity and column. Link and unlink clues
// leave Entity empty: they constrain a column pair, not a single cell.
type CellRecord struct {
	Entity string `json:"entity,omitempty"`
	Column string `json:"column"`
}

// ClueRecord is the persisted form of a Clue, with every operand resolved
// to element names.
type ClueRecord struct {
	Kind   string      `json:"kind"`
	A      CellRecord  `json:"a"`
	B      *CellRecord `json:"b,omitempty"`
	Value  string      `json:"value,omitempty"`
	Value2 string      `json:"value2,omitempty"`
	Set    []string    `json:"set,omitempty"`
	Set2   []string    `json:"set2,omitempty"`
	Gap    int         `json:"gap,omitempty"`
	Text   string      `json:"text"`
}

// SaveSummary is a lightweight listing entry.
type SaveSummary struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	Title      string `json:"title,omitempty"`
	SavedAt    int64  `json:"savedAt"`
}

// Session is the player's progression: level, hint usage, theme unlocks,
// and an opaque user-state blob the engine round-trips untouched.
type Session struct {
	Version        int             `json:"saveVersion"`
	ID             string          `json:"id,omitempty"`
	Level          int             `json:"currentLevel"`
	HintsUsed      int             `json:"hintsUsedThisPuzzle"`
	PuzzlesSolved  int             `json:"puzzlesSolved"`
	CurrentTheme   string          `json:"currentTheme,omitempty"`
	UnlockedThemes []string        `json:"unlockedThemes,omitempty"`
	ActivePuzzle   string          `json:"activePuzzle,omitempty"`
	UserState      json.RawMessage `json:"userState,omitempty"`
	UpdatedAt      int64           `json:"updatedAt,omitempty"`
}

// DifficultyForLevel maps a progression level onto the difficulty ladder:
// three levels per tier, capped at Expert.
func DifficultyForLevel(level int) Difficulty {
	d := Difficulty(level / 3)
	if d > Expert {
		return Expert
	}
	if d < Easy {
		return Easy
	}
	return d
}
