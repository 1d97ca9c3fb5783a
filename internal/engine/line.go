package engine

import "github.com/milnv/gobang/internal/board"

// direction enumerates the four lines a five-in-a-row can run along.
type direction int

const (
	dirVertical direction = iota
	dirHorizontal
	dirMainDiagonal
	dirAntiDiagonal
)

var directionDeltas = [4][2]int{
	{1, 0},  // vertical
	{0, 1},  // horizontal
	{1, 1},  // main diagonal
	{1, -1}, // anti-diagonal
}

// window extracts the 9-character line centered on (row, col) along
// direction d, treating (row, col) as already occupied by c regardless
// of the board's actual content there -- the move is evaluated as if
// it had just been played (spec.md §4.2). Off-board cells map to '-',
// empty to '_', same color as c to 'X', opposing color to '#'.
func window(b *board.Board, row, col int, c board.Color, d direction) string {
	delta := directionDeltas[d]

	var buf [9]byte
	for offset := -4; offset <= 4; offset++ {
		idx := offset + 4
		if offset == 0 {
			buf[idx] = 'X'
			continue
		}

		r := row + delta[0]*offset
		cl := col + delta[1]*offset
		if !board.InBounds(r, cl) {
			buf[idx] = '-'
			continue
		}

		switch cell := b.At(r, cl); {
		case cell == board.Empty:
			buf[idx] = '_'
		case cell == c:
			buf[idx] = 'X'
		default:
			buf[idx] = '#'
		}
	}
	return string(buf[:])
}

// matchesInAnyDirection reports whether (row, col), evaluated as color
// c, produces a window matching any of patterns in at least one of
// the four directions.
func matchesInAnyDirection(b *board.Board, row, col int, c board.Color, patterns []string) bool {
	for d := direction(0); d < 4; d++ {
		if hasAny(window(b, row, col, c, d), patterns) {
			return true
		}
	}
	return false
}
