// Package grids holds the grid transformations the search engine runs
// between words: case normalization and the clear-then-gravity collapse.
package grids

import (
	"unicode"

	"svw.info/wordgrid/internal/domain"
)

// NormalizeCase returns a lower-cased copy of g. The input is not mutated.
func NormalizeCase(g domain.Grid) domain.Grid {
	out := g.Clone()
	for _, row := range out {
		for i, r := range row {
			row[i] = unicode.ToLower(r)
		}
	}
	return out
}

// CollapseAndGravitate returns a new grid with every cell in positions
// cleared, then each column independently compacted toward the bottom
// (highest row index), preserving the relative top-to-bottom order of the
// surviving letters. Vacated cells at the top become the empty sentinel.
// Neither g nor positions is mutated.
func CollapseAndGravitate(g domain.Grid, positions []domain.Position) domain.Grid {
	cleared := make(map[domain.Position]struct{}, len(positions))
	for _, p := range positions {
		cleared[p] = struct{}{}
	}

	rows, cols := g.Rows(), g.Cols()
	out := make(domain.Grid, rows)
	for y := range out {
		out[y] = make([]rune, cols)
		for x := range out[y] {
			out[y][x] = domain.Empty
		}
	}

	for x := 0; x < cols; x++ {
		write := rows - 1
		for y := rows - 1; y >= 0; y-- {
			p := domain.Position{X: x, Y: y}
			if _, gone := cleared[p]; gone {
				continue
			}
			if g.At(p) == domain.Empty {
				continue
			}
			out[write][x] = g.At(p)
			write--
		}
	}
	return out
}

// Equal reports whether two grids have identical dimensions and cells.
func Equal(a, b domain.Grid) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

// Letters counts the non-empty cells of g.
func Letters(g domain.Grid) int {
	n := 0
	for _, row := range g {
		for _, r := range row {
			if r != domain.Empty {
				n++
			}
		}
	}
	return n
}
