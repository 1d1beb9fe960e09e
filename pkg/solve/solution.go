package solve

import (
	"strings"

	"github.com/sokoworks/sokosolve/pkg/board"
)

// Solution is the produced artifact of a successful solve (§6): a complete
// LURD trace from the caller's starting board to a solved one, plus a name
// identifying which solver produced it.
type Solution struct {
	Name string
	LURD string
}

// MoveHistory is the move-history sink of §6: it accepts walk and push
// events in direction order and renders them as a LURD string. Both solvers
// build one during solution reconstruction; neither solver inspects its
// internal state directly, only MoveHistory.String() at the end.
type MoveHistory struct {
	sb strings.Builder
}

// Walk records a player step that does not push a box.
func (m *MoveHistory) Walk(d board.Direction) {
	m.sb.WriteByte(lurdLetter(d, false))
}

// Push records a player step that pushes a box.
func (m *MoveHistory) Push(d board.Direction) {
	m.sb.WriteByte(lurdLetter(d, true))
}

// String returns the accumulated LURD trace.
func (m *MoveHistory) String() string {
	return m.sb.String()
}

// lurdLetter maps a direction and walk/push flag to its LURD character
// (§6: "{u,d,l,r} = walks, {U,D,L,R} = pushes").
func lurdLetter(d board.Direction, push bool) byte {
	var c byte
	switch d {
	case board.Up:
		c = 'u'
	case board.Down:
		c = 'd'
	case board.Left:
		c = 'l'
	case board.Right:
		c = 'r'
	}
	if push {
		c -= 'a' - 'A'
	}
	return c
}

// walkPath finds the shortest player walk from 'from' to 'to' across floor
// squares not occupied by a box or wall, returning the ordered directions of
// each step. Used by the moves-equals-pushes solver to fill in the walk
// portion of the LURD between one push's landing square and the next push's
// starting square (§4.4's "replay them ... to build a push/move history").
//
// Grounded on Reachability.Update's flood fill, extended to record a parent
// pointer per visited square so the path itself, not just reachability, can
// be recovered.
func walkPath(b *board.Board, from, to board.Square) ([]board.Direction, bool) {
	if from == to {
		return nil, true
	}

	type step struct {
		prev board.Square
		dir  board.Direction
	}
	parent := map[board.Square]step{from: {}}
	queue := []board.Square{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == to {
			break
		}

		for d := board.Direction(0); d < board.NumDirections; d++ {
			n := cur + b.Offset(d)
			if b.IsWall(n) || b.IsBox(n) {
				continue
			}
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = step{prev: cur, dir: d}
			queue = append(queue, n)
		}
	}

	if _, ok := parent[to]; !ok {
		return nil, false
	}

	var dirs []board.Direction
	for cur := to; cur != from; {
		s := parent[cur]
		dirs = append(dirs, s.dir)
		cur = s.prev
	}
	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs, true
}
