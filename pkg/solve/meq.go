package solve

import (
	"context"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/sokoworks/sokosolve/pkg/board"
)

// SolverMovesEqualsPushes names the solution produced by SolveMovesEqualsPushes.
const SolverMovesEqualsPushes = "moves-equals-pushes"

// SolveMovesEqualsPushes runs the single-threaded BFS-by-pushes solver of
// §4.4. It assumes the puzzle's optimal solution has moves equal to pushes,
// and does not use a transposition table: the source describes a plain
// enqueue-on-generation BFS with no dedup, and this mirrors that faithfully
// rather than silently adding one.
//
// start is never mutated: every push generated during the search is undone
// before the next candidate is tried, and SolveMovesEqualsPushes clones start
// before beginning, per the board-restoration invariant (§7, §8.8).
func SolveMovesEqualsPushes(ctx context.Context, start *board.Board, opts ...Option) (*Solution, error) {
	opt := newOptions(opts...)

	zt := board.NewZobristTable(board.DefaultZobristSeed, start.Width()*start.Height())
	root := NewBoardPosition(zt, start.BoxPositionsClone(), false)

	work := start.Clone()
	startPlayer := start.PlayerPosition()

	queue := []*BoardPosition{root}
	expansions := 0

	var solution *BoardPosition

search:
	for len(queue) > 0 {
		if contextx.IsCancelled(ctx) {
			return nil, ErrCancelled
		}

		current := queue[0]
		queue = queue[1:]

		work.SetBoxPositions(current.Boxes())
		work.SetPlayerPosition(playerForNode(work, current, startPlayer))
		work.Reachable.Update()

		for d := board.Direction(0); d < board.NumDirections; d++ {
			p := work.PlayerPosition()
			p1 := p + work.Offset(d)
			p2 := p1 + work.Offset(d)

			if !work.IsBox(p1) || !work.IsAccessibleBox(p2) {
				continue
			}

			work.PushBox(p1, p2)
			work.SetPlayerPosition(p1)

			child := current.Push(zt, work.BoxPositionsClone(), p1, p2, d)

			switch {
			case work.FreezeDeadlock(p2, true):
				// discard: undone below.
			case work.IsBoxOnGoal(p2) && work.EveryBoxOnGoal():
				solution = child
				work.PushBoxUndo(p2, p1)
				work.SetPlayerPosition(p)
				break search
			default:
				queue = append(queue, child)
			}

			work.PushBoxUndo(p2, p1)
			work.SetPlayerPosition(p)
		}

		expansions++
		if expansions%meqProgressInterval == 0 {
			logw.Infof(ctx, "meq: %v expansions, %v queued, depth %v", expansions, len(queue), current.PushCount)
			if freeMemoryBytes() < opt.MemoryFloorBytes {
				return nil, ErrOutOfMemory
			}
		}
	}

	if solution == nil {
		return nil, ErrNoSolution
	}

	return &Solution{
		Name: SolverMovesEqualsPushes,
		LURD: reconstructMEQ(start, solution),
	}, nil
}

// playerForNode derives the player square a BoardPosition implies: the root
// keeps the caller's starting player; any other node was reached by pushing
// a box into PushedSquare along PushDirection, which leaves the player
// standing where the box used to be (§4.1: "pushBox(p', p''); set
// player := p'").
func playerForNode(b *board.Board, n *BoardPosition, startPlayer board.Square) board.Square {
	if n.Parent == nil {
		return startPlayer
	}
	return n.PushedSquare - b.Offset(n.PushDirection)
}

// reconstructMEQ walks the solution's parent chain back to the root,
// collects the subsequence of pushes in root-to-leaf order, and replays them
// against a fresh clone of start to build the full walk+push LURD trace
// (§4.4's "replay them against the restored starting board").
func reconstructMEQ(start *board.Board, solution *BoardPosition) string {
	var pushes []*BoardPosition
	for n := solution; n != nil && n.HasPush; n = n.Parent {
		pushes = append(pushes, n)
	}
	for i, j := 0, len(pushes)-1; i < j; i, j = i+1, j-1 {
		pushes[i], pushes[j] = pushes[j], pushes[i]
	}

	work := start.Clone()
	var hist MoveHistory

	for _, n := range pushes {
		d := n.PushDirection
		to := n.PushedSquare
		from := to - work.Offset(d)
		playerStart := from - work.Offset(d)

		if path, ok := walkPath(work, work.PlayerPosition(), playerStart); ok {
			for _, wd := range path {
				hist.Walk(wd)
				work.SetPlayerPosition(work.PlayerPosition() + work.Offset(wd))
			}
		}

		work.PushBox(from, to)
		work.SetPlayerPosition(from)
		hist.Push(d)
	}

	return hist.String()
}
