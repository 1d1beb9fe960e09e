package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokoworks/sokosolve/pkg/board"
	"github.com/sokoworks/sokosolve/pkg/solve"
)

func TestOpenQueueDequeueEmptyReturnsFalse(t *testing.T) {
	q := solve.NewOpenQueue(4)

	_, ok := q.Dequeue(false)
	assert.False(t, ok)
	_, ok = q.Dequeue(true)
	assert.False(t, ok)
}

func TestOpenQueuePrefersHighestNonEmptyBucket(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultZobristSeed, 16)
	q := solve.NewOpenQueue(4)

	low := solve.NewBoardPosition(zt, []board.Square{1}, false)
	high := solve.NewBoardPosition(zt, []board.Square{2}, false)

	q.Enqueue(false, 0, low)
	q.Enqueue(false, 3, high)

	got, ok := q.Dequeue(false)
	require.True(t, ok)
	assert.Equal(t, high, got)

	got, ok = q.Dequeue(false)
	require.True(t, ok)
	assert.Equal(t, low, got)

	_, ok = q.Dequeue(false)
	assert.False(t, ok)
}

func TestOpenQueueBucketIsFIFO(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultZobristSeed, 16)
	q := solve.NewOpenQueue(2)

	first := solve.NewBoardPosition(zt, []board.Square{1}, false)
	second := solve.NewBoardPosition(zt, []board.Square{2}, false)

	q.Enqueue(false, 1, first)
	q.Enqueue(false, 1, second)

	got, _ := q.Dequeue(false)
	assert.Equal(t, first, got)
	got, _ = q.Dequeue(false)
	assert.Equal(t, second, got)
}

func TestOpenQueueDirectionsAreIndependent(t *testing.T) {
	zt := board.NewZobristTable(board.DefaultZobristSeed, 16)
	q := solve.NewOpenQueue(2)

	fwd := solve.NewBoardPosition(zt, []board.Square{1}, false)
	q.Enqueue(false, 0, fwd)

	_, ok := q.Dequeue(true)
	assert.False(t, ok, "backward queue must not see a forward enqueue")

	got, ok := q.Dequeue(false)
	require.True(t, ok)
	assert.Equal(t, fwd, got)
}
