package hint

import (
	"context"
	"fmt"

	"svw.info/wordgrid/internal/domain"
	"svw.info/wordgrid/internal/ports"
)

// FirstWord implements a Hinter that reveals part of a valid next word.
// The wired solver should be configured to stop at the first solution.
type FirstWord struct {
	Solver ports.Solver
}

func NewFirstWord(s ports.Solver) *FirstWord { return &FirstWord{Solver: s} }

// Hint finds one solution and reveals its first word up to the max tier:
// just the starting cell, or the whole word and its cells.
func (h *FirstWord) Hint(ctx context.Context, g domain.Grid, lengths []int, max domain.HintTier) (domain.Hint, bool, error) {
	if len(lengths) == 0 {
		return domain.Hint{}, false, nil
	}
	sols, _, err := h.Solver.Solve(ctx, g, lengths)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if len(sols) == 0 || len(sols[0].Words) == 0 {
		return domain.Hint{}, false, nil
	}
	first := sols[0].Words[0]

	if max >= domain.HintFirstWord {
		return domain.Hint{
			Message: fmt.Sprintf("Try %q next", first.Word),
			Word:    first.Word,
			Cells:   first.Positions,
			Tier:    domain.HintFirstWord,
		}, true, nil
	}
	return domain.Hint{
		Message: fmt.Sprintf("A %d-letter word starts here", lengths[0]),
		Cells:   first.Positions[:1],
		Tier:    domain.HintFirstLetter,
	}, true, nil
}
