package reconstruct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokoworks/sokosolve/pkg/board"
	"github.com/sokoworks/sokosolve/pkg/board/leveltext"
	"github.com/sokoworks/sokosolve/pkg/reconstruct"
)

func TestEmptyOrWhitespaceLURDYieldsEmptyString(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n", "xyz123"} {
		out, err := reconstruct.Reconstruct(in)
		require.NoError(t, err)
		assert.Equal(t, "", out, "input %q", in)
	}
}

// TestRRProducesStandardExample pins the §8 boundary example exactly.
func TestRRProducesStandardExample(t *testing.T) {
	out, err := reconstruct.Reconstruct("RR")
	require.NoError(t, err)
	assert.Equal(t, "######\n#@$ .#\n######\n", out)
}

func TestPureWalksProduceRoomWithNoBoxesOrGoals(t *testing.T) {
	out, err := reconstruct.Reconstruct("rrrd")
	require.NoError(t, err)

	b, err := leveltext.Decode(out)
	require.NoError(t, err)

	assert.Empty(t, b.BoxPositionsClone(), "pure walks should place no boxes")
	assert.True(t, b.EveryBoxOnGoal(), "vacuously true with zero boxes")

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			assert.False(t, b.IsGoal(board.SquareAt(x, y, b.Width())), "no goals expected from a pure walk")
		}
	}
}

// TestBoxBehindBoxIsInvalid constructs a push chain that lands directly
// behind an already-resting box -- a concrete instance of the class of
// invalidity in the "URRU" boundary example (§8): push a box right to rest
// at (2,0), walk the long way around to approach from below, then push up
// into a fresh cell whose push-target collides with that resting box.
func TestBoxBehindBoxIsInvalid(t *testing.T) {
	out, err := reconstruct.Reconstruct("RddrU")
	assert.ErrorIs(t, err, reconstruct.ErrInvalidLURD)
	assert.Equal(t, "", out)
}

func TestOverLongTrailingWalksAreAccepted(t *testing.T) {
	out, err := reconstruct.Reconstruct("RRllu")
	require.NoError(t, err)

	b, err := leveltext.Decode(out)
	require.NoError(t, err)

	assert.Len(t, b.BoxPositionsClone(), 1, "RRllu still only pushes one box")
}

func TestWalkingIntoABoxWithoutPushingIsInvalid(t *testing.T) {
	// "R" creates and pushes a box ahead; a following lowercase "r" would
	// walk the player straight into where that box now rests.
	out, err := reconstruct.Reconstruct("Rr")
	assert.ErrorIs(t, err, reconstruct.ErrInvalidLURD)
	assert.Equal(t, "", out)
}
