package domain

import (
	"encoding/json"
	"fmt"
)

// Empty is the sentinel rune for a vacant grid cell.
const Empty = ' '

// Grid is a rectangular letter grid. Row 0 renders on top; gravity pulls
// letters toward the highest row index. Grids are immutable by convention:
// transformations return a new Grid and never write through a shared one.
type Grid [][]rune

// ParseGrid builds a Grid from one string per row. All rows must be the
// same length and at least one non-empty row is required.
func ParseGrid(rows []string) (Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}
	want := len([]rune(rows[0]))
	if want == 0 {
		return nil, fmt.Errorf("grid has no columns")
	}
	g := make(Grid, len(rows))
	for i, row := range rows {
		r := []rune(row)
		if len(r) != want {
			return nil, fmt.Errorf("grid row %d has %d columns, want %d", i, len(r), want)
		}
		g[i] = r
	}
	return g, nil
}

func (g Grid) Rows() int { return len(g) }

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether p addresses a cell of the grid.
func (g Grid) InBounds(p Position) bool {
	return p.Y >= 0 && p.Y < g.Rows() && p.X >= 0 && p.X < g.Cols()
}

// At returns the rune at p. The caller must check InBounds first.
func (g Grid) At(p Position) rune { return g[p.Y][p.X] }

// Clone returns a deep copy that shares no row storage with g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]rune, len(row))
		copy(out[i], row)
	}
	return out
}

// Strings renders the grid one string per row.
func (g Grid) Strings() []string {
	out := make([]string, len(g))
	for i, row := range g {
		out[i] = string(row)
	}
	return out
}

// MarshalJSON encodes the grid as an array of row strings.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Strings())
}

// UnmarshalJSON decodes an array of row strings, rejecting jagged input.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		*g = nil
		return nil
	}
	parsed, err := ParseGrid(rows)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Position identifies a cell: X is the column, Y is the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GridWord is a discovered word together with the cells that spelled it,
// in discovery order, and the grid state it was discovered in. Positions
// are in that grid state's coordinate space; gravity shifts coordinates
// between successive words of a solution.
type GridWord struct {
	Word      string     `json:"word"`
	Positions []Position `json:"positions"`
	Grid      Grid       `json:"grid,omitempty"`
}

// GridSolution is an ordered sequence of words that satisfies an entire
// length plan.
type GridSolution struct {
	Words []GridWord `json:"words"`
}

// Hint describes a next-step suggestion for the UI.
type Hint struct {
	Message string     `json:"message,omitempty"`
	Word    string     `json:"word,omitempty"`
	Cells   []Position `json:"cells,omitempty"`
	Tier    HintTier   `json:"tier"`
}

// Puzzle is a persisted word-grid puzzle with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Grid       Grid       `json:"grid"`
	Lengths    []int      `json:"lengths"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
