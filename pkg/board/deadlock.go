package board

// FreezeDeadlock reports whether the box at p can never be pushed again given
// the current wall and box layout -- a box is frozen once both its
// horizontal and vertical axis are blocked, where "blocked" on an axis means
// a wall on at least one side, or a box on that side that is itself frozen
// (checked recursively; a box already under consideration on the current
// recursion path counts as frozen, since a cycle of mutually supporting
// boxes can never resolve itself during this search).
//
// Grounded on the 3x3 corner/wall pattern in bertbaron-pathfinding's
// deadEnd, generalized to the standard recursive frozen-box check so that
// chains of boxes propping each other up are also caught, not just
// single-box corners.
//
// If excludeGoal is true, a frozen box that sits on a goal is not reported
// as a deadlock: it is frozen in a winning spot, which is harmless. The
// moves-equals-pushes solver always passes true, per the usual Sokoban
// convention that only an off-goal freeze is fatal.
func (b *Board) FreezeDeadlock(p Square, excludeGoal bool) bool {
	if !b.IsBox(p) {
		return false
	}

	visited := make(map[Square]bool)
	frozen := b.isFrozen(p, visited)
	if frozen && excludeGoal && b.IsGoal(p) {
		return false
	}
	return frozen
}

func (b *Board) isFrozen(p Square, visited map[Square]bool) bool {
	if visited[p] {
		return true // on the current recursion path: treat as frozen, breaking the cycle.
	}
	visited[p] = true

	h := b.axisBlocked(p, Left, Right, visited)
	v := b.axisBlocked(p, Up, Down, visited)
	return h && v
}

func (b *Board) axisBlocked(p Square, d1, d2 Direction, visited map[Square]bool) bool {
	return b.sideBlocked(p, d1, visited) || b.sideBlocked(p, d2, visited)
}

func (b *Board) sideBlocked(p Square, d Direction, visited map[Square]bool) bool {
	n := p + b.offset[d]
	switch {
	case b.IsWall(n):
		return true
	case b.IsBox(n):
		return b.isFrozen(n, visited)
	default:
		return false
	}
}
