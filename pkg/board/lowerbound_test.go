package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokoworks/sokosolve/pkg/board"
	"github.com/sokoworks/sokosolve/pkg/board/leveltext"
)

func TestLowerBoundZeroWhenSolved(t *testing.T) {
	b, err := leveltext.Decode("####\n#@*#\n####\n")
	require.NoError(t, err)

	lb, ok := b.LowerBound()
	assert.True(t, ok)
	assert.Equal(t, 0, lb)
}

func TestLowerBoundPositiveWhenUnsolved(t *testing.T) {
	b, err := leveltext.Decode("######\n#@$ .#\n######\n")
	require.NoError(t, err)

	lb, ok := b.LowerBound()
	assert.True(t, ok)
	assert.Greater(t, lb, 0)
}

func TestLowerBoundDeadlockOnFrozenOffGoalBox(t *testing.T) {
	b, err := leveltext.Decode("#####\n#@  #\n#$ .#\n#####\n")
	require.NoError(t, err)

	box := board.SquareAt(1, 2, b.Width())
	require.True(t, b.IsBox(box))
	require.True(t, b.FreezeDeadlock(box, true))

	_, ok := b.LowerBound()
	assert.False(t, ok)
}
