package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/wordgrid/internal/domain"
)

func mustGrid(t *testing.T, rows ...string) domain.Grid {
	t.Helper()
	g, err := domain.ParseGrid(rows)
	require.NoError(t, err)
	return g
}

func TestValidateOK(t *testing.T) {
	v := New()
	ok, conflicts, err := v.Validate(context.Background(), mustGrid(t, "ca", "rt"), []int{4})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateEmptyCellsAllowed(t *testing.T) {
	v := New()
	ok, conflicts, err := v.Validate(context.Background(), mustGrid(t, "c ", "rt"), []int{3})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateFlagsNonLetterCells(t *testing.T) {
	v := New()
	ok, conflicts, err := v.Validate(context.Background(), mustGrid(t, "c4", "r!"), []int{4})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.ElementsMatch(t, []domain.Position{{X: 1, Y: 0}, {X: 1, Y: 1}}, conflicts)
}

func TestValidateFlagsJaggedRows(t *testing.T) {
	v := New()
	jagged := domain.Grid{[]rune("ca"), []rune("r")}
	ok, conflicts, err := v.Validate(context.Background(), jagged, []int{3})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.Position{X: 0, Y: 1})
}

func TestValidatePlanMustConsumeGrid(t *testing.T) {
	v := New()

	ok, _, err := v.Validate(context.Background(), mustGrid(t, "ca", "rt"), []int{3})
	require.NoError(t, err)
	assert.False(t, ok, "plan sum below letter count")

	ok, _, err = v.Validate(context.Background(), mustGrid(t, "ca", "rt"), []int{5})
	require.NoError(t, err)
	assert.False(t, ok, "plan sum above letter count")

	ok, _, err = v.Validate(context.Background(), mustGrid(t, "ca", "rt"), []int{4, 0})
	require.NoError(t, err)
	assert.False(t, ok, "non-positive length")
}
