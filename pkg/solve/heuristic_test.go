package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokoworks/sokosolve/pkg/board/leveltext"
	"github.com/sokoworks/sokosolve/pkg/solve"
)

func TestBoxesOnCorrectGoalHorizontalAxis(t *testing.T) {
	b, err := leveltext.Decode("#####\n#@*##\n#####\n")
	require.NoError(t, err)
	assert.Equal(t, 1, solve.BoxesOnCorrectGoal(b))
}

func TestBoxesOnCorrectGoalRequiresBoxItselfOnGoal(t *testing.T) {
	b, err := leveltext.Decode("#####\n#@$ #\n#####\n")
	require.NoError(t, err)
	assert.Equal(t, 0, solve.BoxesOnCorrectGoal(b))
}

func TestBoxesOnCorrectGoalVerticalAxisMismatchedCounts(t *testing.T) {
	b, err := leveltext.Decode("#####\n#   #\n# $ #\n# . #\n# @ #\n#####\n")
	require.NoError(t, err)
	assert.Equal(t, 0, solve.BoxesOnCorrectGoal(b))
}

func TestBoxesOnCorrectGoalVerticalAxisOnOwnGoal(t *testing.T) {
	b, err := leveltext.Decode("#####\n#@  #\n# * #\n#####\n")
	require.NoError(t, err)
	assert.Equal(t, 1, solve.BoxesOnCorrectGoal(b))
}

func TestBucketClampsNonPositiveToZero(t *testing.T) {
	assert.Equal(t, 0, solve.Bucket(0))
	assert.Equal(t, 0, solve.Bucket(-3))
}

func TestBucketIndexesByCountMinusOne(t *testing.T) {
	assert.Equal(t, 0, solve.Bucket(1))
	assert.Equal(t, 1, solve.Bucket(2))
	assert.Equal(t, 4, solve.Bucket(5))
}
