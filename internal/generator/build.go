package generator

import (
	"math/rand"
	"slices"
	"time"

	"svw.info/wordgrid/internal/domain"
	"svw.info/wordgrid/internal/grids"
)

// insertTries bounds the rejection-sampling attempts per inserted word.
const insertTries = 150

// buildGrid constructs a grid by inserting the words in reverse plan
// order. Each step scatters the previous state's letters plus the new
// word's letters into bottom-compacted columns, then keeps the candidate
// only if the word sits on an adjacent path whose removal (plus gravity)
// restores the previous state. That invariant makes the whole plan
// peelable front-to-back.
func buildGrid(rng *rand.Rand, rows, cols int, words []string, deadline time.Time) (domain.Grid, bool) {
	cur := emptyGrid(rows, cols)
	for i := len(words) - 1; i >= 0; i-- {
		placed := false
		for try := 0; try < insertTries; try++ {
			if time.Now().After(deadline) {
				return nil, false
			}
			cand, ok := scatter(rng, cur, words[i], rows, cols)
			if !ok {
				return nil, false
			}
			if hasRestoringPlacement(cand, words[i], cur) {
				cur = cand
				placed = true
				break
			}
		}
		if !placed {
			return nil, false
		}
	}
	return cur, true
}

func emptyGrid(rows, cols int) domain.Grid {
	g := make(domain.Grid, rows)
	for y := range g {
		g[y] = make([]rune, cols)
		for x := range g[y] {
			g[y][x] = domain.Empty
		}
	}
	return g
}

// scatter deals the letters of g plus the letters of word into random
// columns, bottom-compacted, and returns the resulting grid.
func scatter(rng *rand.Rand, g domain.Grid, word string, rows, cols int) (domain.Grid, bool) {
	letters := make([]rune, 0, rows*cols)
	for _, row := range g {
		for _, r := range row {
			if r != domain.Empty {
				letters = append(letters, r)
			}
		}
	}
	letters = append(letters, []rune(word)...)
	if len(letters) > rows*cols {
		return nil, false
	}

	rng.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })

	stacks := make([][]rune, cols)
	for _, r := range letters {
		var open []int
		for c := 0; c < cols; c++ {
			if len(stacks[c]) < rows {
				open = append(open, c)
			}
		}
		c := open[rng.Intn(len(open))]
		stacks[c] = append(stacks[c], r)
	}

	out := emptyGrid(rows, cols)
	for c, stack := range stacks {
		for j, r := range stack {
			out[rows-1-j][c] = r
		}
	}
	return out, true
}

var offsets = [8]domain.Position{
	{X: -1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: -1}, {X: 1, Y: 0},
	{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1},
}

// hasRestoringPlacement reports whether word lies on an adjacent path in g
// such that clearing that path and gravitating yields exactly prev.
func hasRestoringPlacement(g domain.Grid, word string, prev domain.Grid) bool {
	runes := []rune(word)

	var walk func(p domain.Position, idx int, path []domain.Position) bool
	walk = func(p domain.Position, idx int, path []domain.Position) bool {
		if !g.InBounds(p) || g.At(p) != runes[idx] || slices.Contains(path, p) {
			return false
		}
		next := append(slices.Clone(path), p)
		if idx == len(runes)-1 {
			return grids.Equal(grids.CollapseAndGravitate(g, next), prev)
		}
		for _, d := range offsets {
			if walk(domain.Position{X: p.X + d.X, Y: p.Y + d.Y}, idx+1, next) {
				return true
			}
		}
		return false
	}

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if walk(domain.Position{X: x, Y: y}, 0, nil) {
				return true
			}
		}
	}
	return false
}
