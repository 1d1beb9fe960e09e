package solve

import "github.com/sokoworks/sokosolve/pkg/board"

// BoxesOnCorrectGoal computes the b-type heuristic bucket (§4.6): the count
// of boxes currently sitting on the one goal that is "theirs" along the
// level's spanning-tree geometry.
//
// For a box at p, the free axis is Right if there is a wall directly above p
// (the box's corridor runs horizontally), else Down (it runs vertically).
// Walking from p along that axis until a wall, the box is on its correct
// goal iff the number of boxes and goals passed en route (excluding p) are
// equal and p itself is a goal -- i.e. the rest of its corridor segment
// ahead of it holds exactly as many goals as boxes.
func BoxesOnCorrectGoal(b *board.Board) int {
	count := 0
	for _, box := range b.BoxPositionsClone() {
		if onCorrectGoal(b, box) {
			count++
		}
	}
	return count
}

func onCorrectGoal(b *board.Board, box board.Square) bool {
	axis := board.Down
	if b.IsWall(box + b.Offset(board.Up)) {
		axis = board.Right
	}

	off := b.Offset(axis)
	boxes, goals := 0, 0
	for cur := box + off; !b.IsWall(cur); cur += off {
		if b.IsBox(cur) {
			boxes++
		}
		if b.IsGoal(cur) {
			goals++
		}
	}

	return boxes == goals && b.IsGoal(box)
}

// Bucket returns the open-queue bucket index for a box count from
// BoxesOnCorrectGoal: count-1. SolveBType does pass a count of zero for any
// position with no box on its correct goal (the lower-bound short-circuit
// only excludes already-solved starts), so a non-positive count is clamped
// to bucket 0 instead of underflowing; bucket 0 therefore holds both
// zero-count and one-count positions -- see DESIGN.md.
func Bucket(boxesOnCorrectGoal int) int {
	if boxesOnCorrectGoal <= 0 {
		return 0
	}
	return boxesOnCorrectGoal - 1
}
