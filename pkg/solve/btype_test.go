package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokoworks/sokosolve/pkg/board/leveltext"
	"github.com/sokoworks/sokosolve/pkg/solve"
)

func TestSolveBTypePreSolvedBoardReturnsEmptyLURD(t *testing.T) {
	b, err := leveltext.Decode("#####\n#@*##\n#####\n")
	require.NoError(t, err)

	sol, err := solve.SolveBType(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, solve.SolverBType, sol.Name)
	assert.Equal(t, "", sol.LURD)
}

func TestSolveBTypeDeadlockAtStart(t *testing.T) {
	// The box sits in a corner off its goal: both axes are wall-blocked
	// before any push is attempted, so LowerBound reports DEADLOCK.
	b, err := leveltext.Decode("####\n#@$#\n####\n#  #\n#. #\n####\n")
	require.NoError(t, err)

	_, err = solve.SolveBType(context.Background(), b)
	assert.ErrorIs(t, err, solve.ErrDeadlockAtStart)
}

func TestSolveBTypeCancellation(t *testing.T) {
	b, err := leveltext.Decode("#######\n#@$  .#\n#  $  #\n#    .#\n#######\n")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = solve.SolveBType(ctx, b, solve.WithWorkers(2))
	assert.ErrorIs(t, err, solve.ErrCancelled)
}

func TestSolveBTypeMeetsInTheMiddle(t *testing.T) {
	// A single box four columns from its goal in an open corridor, clear of
	// the top/bottom walls so its vertical axis is free and the box is not
	// frozen at start, even though a wall blocks it on the left. Each
	// b-type push jumps the box two cells, so the forward and backward
	// searches each need exactly one push to land on the midpoint and meet;
	// the resulting two two-cell pushes expand to four LURD push-letters.
	b, err := leveltext.Decode("#######\n#     #\n#$ @ .#\n#     #\n#######\n")
	require.NoError(t, err)

	sol, err := solve.SolveBType(context.Background(), b, solve.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, solve.SolverBType, sol.Name)
	assert.Equal(t, "RRRR", sol.LURD)
}
