package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokoworks/sokosolve/pkg/board"
	"github.com/sokoworks/sokosolve/pkg/solve"
)

func TestBoardPositionSortsAndHashesDeterministically(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultZobristSeed, 64)

	p1 := solve.NewBoardPosition(zt, []board.Square{5, 1, 3}, false)
	p2 := solve.NewBoardPosition(zt, []board.Square{1, 3, 5}, false)

	assert.Equal(t, []board.Square{1, 3, 5}, p1.Boxes())
	assert.Equal(t, p1.Hash(), p2.Hash())
	assert.False(t, p1.Backward())
	assert.Nil(t, p1.ParentPosition())
}

func TestBoardPositionPushTracksParentAndDepth(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultZobristSeed, 64)

	root := solve.NewBoardPosition(zt, []board.Square{1, 10}, false)
	child := root.Push(zt, []board.Square{2, 10}, 1, 2, board.Right)

	assert.Equal(t, []board.Square{2, 10}, child.Boxes())
	assert.Equal(t, 1, child.PushCount)
	assert.True(t, child.HasPush)
	assert.Equal(t, board.Square(2), child.PushedSquare)
	assert.Equal(t, board.Right, child.PushDirection)
	assert.Same(t, root, child.Parent)
	assert.Equal(t, solve.Position(root), child.ParentPosition())
}

func TestDeltaBoardPositionReifiesThroughChain(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultZobristSeed, 64)

	root := solve.NewBoardPosition(zt, []board.Square{1, 10, 20}, true)
	d1 := solve.NewDelta(zt, root, 1, 2)
	d2 := solve.NewDelta(zt, d1, 10, 11)

	assert.Equal(t, []board.Square{2, 11, 20}, d2.Boxes())
	assert.True(t, d2.Backward())
	assert.Equal(t, solve.Position(d1), d2.ParentPosition())
	assert.Equal(t, solve.Position(root), d1.ParentPosition())
}

func TestDeltaBoardPositionHashMatchesEquivalentBoardPosition(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultZobristSeed, 64)

	root := solve.NewBoardPosition(zt, []board.Square{1, 10}, false)
	delta := solve.NewDelta(zt, root, 1, 2)
	direct := solve.NewBoardPosition(zt, []board.Square{2, 10}, false)

	require.Equal(t, direct.Hash(), delta.Hash())
}
