// Package reconstruct implements the LURD-to-puzzle reconstructor (§4.7): it
// replays a move/push string on an unbounded implicit grid, marks the cells
// the player reached, synthesizes a wall border around that reached region,
// and renders the result as a canonical Sokoban level text.
package reconstruct

import (
	"errors"
	"strings"
	"unicode"

	"github.com/sokoworks/sokosolve/pkg/board"
)

// ErrInvalidLURD is returned when the input string cannot be replayed into a
// consistent puzzle: a push lands on a cell already known not to hold a box,
// a plain walk steps onto a box, or a push would stack two boxes (§4.7 stage 2).
var ErrInvalidLURD = errors.New("reconstruct: invalid LURD")

// replay state of a grid cell during stage 2. Distinct from board.Cell,
// which only distinguishes the *static* layout (Wall/Floor/Goal): during
// replay a cell also needs to represent "not yet visited" and "currently
// holds a box", which collapse into Floor/Goal only once replay is done.
const (
	sUnreached = iota
	sFloor
	sBox
)

type move struct {
	dx, dy int
	push   bool
}

// Reconstruct runs the full four-stage algorithm of §4.7 and returns the
// rendered board text, or ErrInvalidLURD if the string is inconsistent.
// An empty or whitespace-only (no LURD letters) input yields ("", nil).
func Reconstruct(lurd string) (string, error) {
	moves := parse(lurd)
	if len(moves) == 0 {
		return "", nil
	}

	width, height, startX, startY := bounds(moves)

	grid, isInitialBox, startIdx, err := replay(moves, width, height, startX, startY)
	if err != nil {
		return "", err
	}

	cellType := synthesize(grid, width, height)
	return render(cellType, isInitialBox, startIdx, width, height), nil
}

// parse extracts the LURD letters from s, ignoring everything else (§6:
// "Other characters are ignored on input").
func parse(s string) []move {
	var out []move
	for _, r := range s {
		dx, dy, ok := delta(r)
		if !ok {
			continue
		}
		out = append(out, move{dx: dx, dy: dy, push: unicode.IsUpper(r)})
	}
	return out
}

func delta(r rune) (dx, dy int, ok bool) {
	switch unicode.ToLower(r) {
	case 'u':
		return 0, -1, true
	case 'd':
		return 0, 1, true
	case 'l':
		return -1, 0, true
	case 'r':
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// bounds is stage 1: walk the string tracking (x,y) with extrema, including
// the extra cell a push contributes for the pushed box, and derive the grid
// size and the player's starting coordinate within it.
func bounds(moves []move) (width, height, startX, startY int) {
	minX, maxX, minY, maxY := 0, 0, 0, 0
	x, y := 0, 0

	track := func(px, py int) {
		if px < minX {
			minX = px
		}
		if px > maxX {
			maxX = px
		}
		if py < minY {
			minY = py
		}
		if py > maxY {
			maxY = py
		}
	}

	for _, m := range moves {
		x += m.dx
		y += m.dy
		if m.push {
			track(x+m.dx, y+m.dy)
		}
		track(x, y)
	}

	width = maxX - minX + 3
	height = maxY - minY + 3
	startX = -minX + 1
	startY = -minY + 1
	return
}

// replay is stage 2: mark the initial player cell Floor and step through
// every move, inferring and pushing boxes as described in §4.7.
func replay(moves []move, width, height, startX, startY int) (grid []int, isInitialBox []bool, startIdx int, err error) {
	grid = make([]int, width*height)
	isInitialBox = make([]bool, width*height)

	startIdx = idx(startX, startY, width)
	grid[startIdx] = sFloor

	px, py := startX, startY
	for _, m := range moves {
		px += m.dx
		py += m.dy
		cur := idx(px, py, width)

		if m.push && grid[cur] != sBox {
			if grid[cur] != sUnreached {
				return nil, nil, 0, ErrInvalidLURD
			}
			grid[cur] = sBox
			isInitialBox[cur] = true
		}

		if grid[cur] == sBox {
			if !m.push {
				return nil, nil, 0, ErrInvalidLURD
			}
			target := idx(px+m.dx, py+m.dy, width)
			if grid[target] == sBox {
				return nil, nil, 0, ErrInvalidLURD
			}
			grid[target] = sBox
		}

		grid[cur] = sFloor
	}

	return grid, isInitialBox, startIdx, nil
}

// synthesize is stage 3: wall in every cell adjacent (including diagonally)
// to a reached cell, then classify each reached cell as Floor or, if a box
// still rests there at the end of replay, Goal.
func synthesize(grid []int, width, height int) []board.Cell {
	wall := make([]bool, width*height)
	for i, st := range grid {
		if st == sUnreached {
			continue
		}
		cx, cy := i%width, i/width
		for ddy := -1; ddy <= 1; ddy++ {
			for ddx := -1; ddx <= 1; ddx++ {
				if ddx == 0 && ddy == 0 {
					continue
				}
				nx, ny := cx+ddx, cy+ddy
				if nx < 0 || ny < 0 || nx >= width || ny >= height {
					continue
				}
				if ni := idx(nx, ny, width); grid[ni] == sUnreached {
					wall[ni] = true
				}
			}
		}
	}

	cellType := make([]board.Cell, width*height)
	for i := range cellType {
		switch {
		case wall[i]:
			cellType[i] = board.Wall
		case grid[i] == sBox:
			cellType[i] = board.Goal
		default:
			cellType[i] = board.Floor // covers Floor and any leftover Unreached (stage 4).
		}
	}
	return cellType
}

// render is stage 4: overlay the initial box and player positions, emit the
// board row by row, trimming trailing whitespace.
func render(cellType []board.Cell, isInitialBox []bool, startIdx, width, height int) string {
	var sb strings.Builder
	for y := 0; y < height; y++ {
		var row strings.Builder
		for x := 0; x < width; x++ {
			i := idx(x, y, width)
			row.WriteRune(board.Glyph(cellType[i], isInitialBox[i], i == startIdx))
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func idx(x, y, width int) int {
	return y*width + x
}
