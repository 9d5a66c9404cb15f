package validator

import (
	"context"
	"unicode"

	"svw.info/wordgrid/internal/domain"
	"svw.info/wordgrid/internal/grids"
)

// FastValidator performs pre-flight checks on a puzzle: cells must be
// letters or the empty sentinel, rows must line up, and the plan must
// consume exactly the letters on the grid.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g domain.Grid, lengths []int) (bool, []domain.Position, error) {
	ok := true
	conf := make([]domain.Position, 0, 4)

	cols := g.Cols()
	for y, row := range g {
		if len(row) != cols {
			ok = false
			conf = append(conf, domain.Position{X: 0, Y: y})
			continue
		}
		for x, r := range row {
			if r != domain.Empty && !unicode.IsLetter(r) {
				ok = false
				conf = append(conf, domain.Position{X: x, Y: y})
			}
		}
	}

	sum := 0
	for _, n := range lengths {
		if n <= 0 {
			ok = false
		}
		sum += n
	}
	if sum != grids.Letters(g) {
		ok = false
	}

	if len(conf) == 0 {
		conf = nil
	}
	return ok, conf, nil
}
