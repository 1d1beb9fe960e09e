// Package leveltext contains utilities for reading and writing Sokoban
// boards in plain-text glyph notation: rows of '#', ' ', '.', '$', '*', '@',
// '+', terminated by newlines.
package leveltext

import (
	"fmt"
	"strings"

	"github.com/sokoworks/sokosolve/pkg/board"
)

// Decode parses a textual Sokoban level into a Board. Lines are padded to
// the width of the longest line with floor. Exactly one player glyph ('@'
// or '+') is required.
//
// Example:
//
//	######
//	#@$ .#
//	######
func Decode(text string) (*board.Board, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	height := len(lines)

	cells := make([]board.Cell, width*height)
	var boxes []board.Square
	player := board.Square(-1)

	for y, line := range lines {
		for x := 0; x < width; x++ {
			r := ' '
			if x < len(line) {
				r = rune(line[x])
			}

			cell, isBox, isPlayer, ok := board.ParseGlyph(r)
			if !ok {
				return nil, fmt.Errorf("leveltext: invalid glyph %q at line %v, column %v", r, y, x)
			}

			sq := board.SquareAt(x, y, width)
			cells[sq] = cell
			if isBox {
				boxes = append(boxes, sq)
			}
			if isPlayer {
				if player >= 0 {
					return nil, fmt.Errorf("leveltext: more than one player square")
				}
				player = sq
			}
		}
	}
	if player < 0 {
		return nil, fmt.Errorf("leveltext: no player square")
	}

	return board.NewBoard(width, height, cells, boxes, player)
}

// Encode renders a Board in the same glyph notation Decode accepts, trimming
// trailing whitespace from each row.
func Encode(b *board.Board) string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		var row strings.Builder
		for x := 0; x < b.Width(); x++ {
			sq := board.SquareAt(x, y, b.Width())
			r := board.Glyph(cellOf(b, sq), b.IsBox(sq), sq == b.PlayerPosition())
			row.WriteRune(r)
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func cellOf(b *board.Board, sq board.Square) board.Cell {
	switch {
	case b.IsWall(sq):
		return board.Wall
	case b.IsGoal(sq):
		return board.Goal
	default:
		return board.Floor
	}
}
