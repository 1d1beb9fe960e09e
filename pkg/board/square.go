package board

import "fmt"

// Square is a nonnegative row-major index into a board of a given Width:
// Square = y*Width + x. It is a bare integer rather than an (x,y) pair
// because the solver's hot path only ever adds a fixed per-direction offset
// to it -- see Offsets.
type Square int32

// Direction is one of the four cardinal directions a player can walk or push in.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left

	NumDirections = 4
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "?"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Offsets returns the per-direction Square delta for a board of the given width.
// Up/Down wrap by a full row; Left/Right wrap by one column -- callers are
// expected to bounds-check against the board's wall layout before using a
// Square produced this way, exactly as a chess offset table is only ever
// applied to squares already known to be on the board.
func Offsets(width int) [NumDirections]Square {
	w := Square(width)
	return [NumDirections]Square{
		Up:    -w,
		Right: 1,
		Down:  w,
		Left:  -1,
	}
}

func (s Square) String() string {
	return fmt.Sprintf("%d", int32(s))
}

// XY decomposes a Square into (x,y) coordinates for a board of the given width.
func (s Square) XY(width int) (x, y int) {
	return int(s) % width, int(s) / width
}

// SquareAt composes a Square from (x,y) coordinates for a board of the given width.
func SquareAt(x, y, width int) Square {
	return Square(y*width + x)
}
