// Package solve implements the two Sokoban push-space solvers (a
// single-threaded moves-equals-pushes BFS and a parallel bidirectional
// b-type solver) and their shared state: board positions, a concurrent
// transposition table and a heuristic-bucketed open queue.
package solve

import (
	"sort"

	"github.com/sokoworks/sokosolve/pkg/board"
)

// Position is satisfied by both BoardPosition and DeltaBoardPosition. The
// transposition table and open queue are written once against this
// interface, not against either concrete representation -- the "parent
// chains vs. path arrays" design note (§9): both are nodes in an immutable,
// shared, rooted forest, never mutated after construction.
type Position interface {
	// Boxes returns the sorted, duplicate-free box configuration. For a
	// DeltaBoardPosition this walks the parent chain and reifies.
	Boxes() []board.Square
	// Hash returns the 32-bit Zobrist hash of the box configuration.
	Hash() board.ZobristHash
	// Backward reports whether this position was generated by the backward search.
	Backward() bool
	// ParentPosition returns the preceding position along the path that
	// produced this one, or nil at a root. Named distinctly from
	// BoardPosition's exported Parent field so both concrete types can
	// satisfy this method without a name collision.
	ParentPosition() Position
}

// BoardPosition is a full, immutable snapshot of a box configuration.
// Invariant: Boxes is sorted ascending and contains no duplicates (§8.1);
// Hash equals the Zobrist XOR over Boxes (§8.2).
type BoardPosition struct {
	boxes    []board.Square
	hash     board.ZobristHash
	backward bool

	// Parent is the preceding board position along the path that produced
	// this one, used only for solution reconstruction. Nil at the root.
	Parent *BoardPosition

	// PushCount is the depth from the root. Moves-equals-pushes solver only.
	PushCount int

	// HasPush, PushedSquare and PushDirection record the edge from Parent to
	// this position, when one exists (false/zero at the root).
	HasPush       bool
	PushedSquare  board.Square
	PushDirection board.Direction
}

// NewBoardPosition builds a root position (no parent, no recorded push) from
// a box snapshot. boxes is sorted and defensively copied.
func NewBoardPosition(zt *board.ZobristTable, boxes []board.Square, backward bool) *BoardPosition {
	sorted := append([]board.Square(nil), boxes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return &BoardPosition{
		boxes:    sorted,
		hash:     zt.Hash(sorted),
		backward: backward,
	}
}

// Push builds the child position reached by pushing a box from 'from' to
// 'to' in direction d. boxes is the board's box configuration after the
// push (any order; Push sorts it).
func (p *BoardPosition) Push(zt *board.ZobristTable, boxes []board.Square, from, to board.Square, d board.Direction) *BoardPosition {
	sorted := append([]board.Square(nil), boxes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return &BoardPosition{
		boxes:         sorted,
		hash:          zt.Push(p.hash, from, to),
		backward:      p.backward,
		Parent:        p,
		PushCount:     p.PushCount + 1,
		HasPush:       true,
		PushedSquare:  to,
		PushDirection: d,
	}
}

func (p *BoardPosition) Boxes() []board.Square   { return p.boxes }
func (p *BoardPosition) Hash() board.ZobristHash { return p.hash }
func (p *BoardPosition) Backward() bool          { return p.backward }

func (p *BoardPosition) ParentPosition() Position {
	if p.Parent == nil {
		return nil
	}
	return p.Parent
}

// DeltaBoardPosition is a memory-economical child position: it stores only
// the single box move that produced it plus a parent pointer, and reifies
// its full box configuration by walking the parent chain to the nearest
// BoardPosition root. Invariant: Reify always yields a sorted array of the
// same length as the root snapshot (§8.3).
type DeltaBoardPosition struct {
	OldSquare, NewSquare board.Square
	Parent               Position // *BoardPosition or *DeltaBoardPosition
	backward             bool
	hash                 board.ZobristHash
}

// NewDelta builds a child of parent recording a single box move.
func NewDelta(zt *board.ZobristTable, parent Position, old, new_ board.Square) *DeltaBoardPosition {
	return &DeltaBoardPosition{
		OldSquare: old,
		NewSquare: new_,
		Parent:    parent,
		backward:  parent.Backward(),
		hash:      zt.Push(parent.Hash(), old, new_),
	}
}

func (d *DeltaBoardPosition) Hash() board.ZobristHash  { return d.hash }
func (d *DeltaBoardPosition) Backward() bool           { return d.backward }
func (d *DeltaBoardPosition) ParentPosition() Position { return d.Parent }

// Boxes reifies the full sorted box configuration by walking the delta chain
// back to the nearest full snapshot and applying each delta in root-to-leaf
// order, resorting once at the end.
func (d *DeltaBoardPosition) Boxes() []board.Square {
	var chain []*DeltaBoardPosition
	var cur Position = d
	for {
		delta, ok := cur.(*DeltaBoardPosition)
		if !ok {
			break
		}
		chain = append(chain, delta)
		cur = delta.Parent
	}
	root := cur.(*BoardPosition)

	boxes := append([]board.Square(nil), root.boxes...)
	for i := len(chain) - 1; i >= 0; i-- {
		applyDelta(boxes, chain[i].OldSquare, chain[i].NewSquare)
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i] < boxes[j] })
	return boxes
}

func applyDelta(boxes []board.Square, old, new_ board.Square) {
	for i, sq := range boxes {
		if sq == old {
			boxes[i] = new_
			return
		}
	}
}
