package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokoworks/sokosolve/pkg/board/leveltext"
	"github.com/sokoworks/sokosolve/pkg/solve"
)

func TestSolveMovesEqualsPushesTrivialStraightLine(t *testing.T) {
	b, err := leveltext.Decode("#####\n#@$.#\n#####\n")
	require.NoError(t, err)

	sol, err := solve.SolveMovesEqualsPushes(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, solve.SolverMovesEqualsPushes, sol.Name)
	assert.Equal(t, "R", sol.LURD)
}

func TestSolveMovesEqualsPushesMultiplePushesInARow(t *testing.T) {
	b, err := leveltext.Decode("#######\n#@$  .#\n#######\n")
	require.NoError(t, err)

	sol, err := solve.SolveMovesEqualsPushes(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "RRR", sol.LURD)
}

func TestSolveMovesEqualsPushesNoSolutionOnManufacturedDeadlock(t *testing.T) {
	b, err := leveltext.Decode("#####\n#@$ #\n#####\n")
	require.NoError(t, err)

	_, err = solve.SolveMovesEqualsPushes(context.Background(), b)
	assert.ErrorIs(t, err, solve.ErrNoSolution)
}

func TestSolveMovesEqualsPushesCancellation(t *testing.T) {
	b, err := leveltext.Decode("#######\n#@$  .#\n#  $  #\n#    .#\n#######\n")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = solve.SolveMovesEqualsPushes(ctx, b)
	assert.ErrorIs(t, err, solve.ErrCancelled)
}
