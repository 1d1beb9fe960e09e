// Package board contains the Sokoban board representation and physics:
// the mutable grid of walls/goals, box and player placement, push/undo,
// player reachability and freeze-deadlock detection that the solver
// packages consume as a black-box service.
package board

import (
	"fmt"
	"sort"
)

// Board represents a mutable Sokoban grid: a static layout of walls and
// goals, a dynamic set of box positions and a player position. Not
// thread-safe -- a parallel solver is expected to Clone one Board per
// worker, as morlock forks one *board.Board per search branch.
type Board struct {
	width, height int
	cells         []Cell // static layout only: Wall, Floor or Goal

	boxAt  []bool // len(cells); true iff a box currently occupies the square
	boxes  []Square
	player Square

	offset [NumDirections]Square

	Reachable *Reachability
}

// NewBoard builds a board from a static layout and initial dynamic state.
// cells must not contain Unreached. boxes need not be sorted; NewBoard sorts
// and validates no duplicates.
func NewBoard(width, height int, cells []Cell, boxes []Square, player Square) (*Board, error) {
	if len(cells) != width*height {
		return nil, fmt.Errorf("board: %d cells for %dx%d layout", len(cells), width, height)
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  append([]Cell(nil), cells...),
		boxAt:  make([]bool, width*height),
		offset: Offsets(width),
	}
	b.Reachable = newReachability(b)

	sorted := append([]Square(nil), boxes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i, sq := range sorted {
		if i > 0 && sorted[i-1] == sq {
			return nil, fmt.Errorf("board: duplicate box at %v", sq)
		}
		b.boxAt[sq] = true
	}
	b.boxes = sorted
	b.player = player

	b.Reachable.Update()
	return b, nil
}

// Clone returns an independent copy of the board, for a parallel worker to own.
func (b *Board) Clone() *Board {
	c := &Board{
		width:  b.width,
		height: b.height,
		cells:  append([]Cell(nil), b.cells...),
		boxAt:  append([]bool(nil), b.boxAt...),
		boxes:  append([]Square(nil), b.boxes...),
		player: b.player,
		offset: b.offset,
	}
	c.Reachable = newReachability(c)
	c.Reachable.Update()
	return c
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Offset returns the Square delta for walking or pushing in the given direction.
func (b *Board) Offset(d Direction) Square {
	return b.offset[d]
}

// PlayerPosition returns the current player square.
func (b *Board) PlayerPosition() Square {
	return b.player
}

// SetPlayerPosition moves the player without touching any box. Invalidates reachability.
func (b *Board) SetPlayerPosition(p Square) {
	b.player = p
	b.Reachable.Invalidate()
}

func (b *Board) inBounds(p Square) bool {
	return p >= 0 && int(p) < len(b.cells)
}

func (b *Board) IsWall(p Square) bool {
	return !b.inBounds(p) || b.cells[p] == Wall
}

func (b *Board) IsGoal(p Square) bool {
	return b.inBounds(p) && b.cells[p] == Goal
}

func (b *Board) IsBox(p Square) bool {
	return b.inBounds(p) && b.boxAt[p]
}

func (b *Board) IsBoxOnGoal(p Square) bool {
	return b.IsBox(p) && b.IsGoal(p)
}

// IsAccessibleBox returns true iff a box could be pushed onto (or is free to
// stand on) the given square: in bounds, not a wall, not already occupied by
// another box.
func (b *Board) IsAccessibleBox(p Square) bool {
	return b.inBounds(p) && b.cells[p] != Wall && !b.boxAt[p]
}

// EveryBoxOnGoal reports whether every box is currently on a goal.
func (b *Board) EveryBoxOnGoal() bool {
	for _, sq := range b.boxes {
		if !b.IsGoal(sq) {
			return false
		}
	}
	return true
}

// BoxPositionsClone returns a sorted copy of the current box positions.
func (b *Board) BoxPositionsClone() []Square {
	return append([]Square(nil), b.boxes...)
}

// SetBoxPositions replaces all boxes with the given (not necessarily sorted) set.
func (b *Board) SetBoxPositions(boxes []Square) {
	b.RemoveAllBoxes()
	b.boxes = append([]Square(nil), boxes...)
	sort.Slice(b.boxes, func(i, j int) bool { return b.boxes[i] < b.boxes[j] })
	for _, sq := range b.boxes {
		b.boxAt[sq] = true
	}
	b.Reachable.Invalidate()
}

// SetBoxWithNo overwrites the i'th box (in current sorted order) with a new square.
// Callers owning a BoardPosition's sorted index can use this to avoid a full re-sort
// when they already know the result stays sorted (e.g. restoring a snapshot verbatim).
func (b *Board) SetBoxWithNo(i int, p Square) {
	b.boxAt[b.boxes[i]] = false
	b.boxes[i] = p
	b.boxAt[p] = true
	b.Reachable.Invalidate()
}

// RemoveAllBoxes clears every box from the board. SetBoxPositions calls it
// before installing a new box set.
func (b *Board) RemoveAllBoxes() {
	for _, sq := range b.boxes {
		b.boxAt[sq] = false
	}
	b.boxes = b.boxes[:0]
	b.Reachable.Invalidate()
}

// RemoveBox removes a single box at p, if present.
func (b *Board) RemoveBox(p Square) {
	if !b.boxAt[p] {
		return
	}
	b.boxAt[p] = false
	for i, sq := range b.boxes {
		if sq == p {
			b.boxes = append(b.boxes[:i], b.boxes[i+1:]...)
			break
		}
	}
	b.Reachable.Invalidate()
}

// PushBox moves a box from 'from' to 'to'. Player placement is the caller's
// responsibility (§4.1: "set player := p'" is a separate statement around
// every PushBox call) so that callers which only need the box side-effect --
// e.g. restoring a snapshot -- don't pay for an extra reachability invalidation.
// Does not validate legality; callers establish that per §4.1.
func (b *Board) PushBox(from, to Square) {
	b.boxAt[from] = false
	b.boxAt[to] = true
	for i, sq := range b.boxes {
		if sq == from {
			b.boxes[i] = to
			break
		}
	}
	sort.Slice(b.boxes, func(i, j int) bool { return b.boxes[i] < b.boxes[j] })
	b.Reachable.Invalidate()
}

// PushBoxUndo is the exact inverse of PushBox(from, to): it restores the box
// to 'from'. Player placement is again the caller's responsibility.
func (b *Board) PushBoxUndo(to, from Square) {
	b.boxAt[to] = false
	b.boxAt[from] = true
	for i, sq := range b.boxes {
		if sq == to {
			b.boxes[i] = from
			break
		}
	}
	sort.Slice(b.boxes, func(i, j int) bool { return b.boxes[i] < b.boxes[j] })
	b.Reachable.Invalidate()
}

func (b *Board) String() string {
	var s string
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sq := SquareAt(x, y, b.width)
			s += string(Glyph(b.cells[sq], b.IsBox(sq), sq == b.player))
		}
		s += "\n"
	}
	return s
}
