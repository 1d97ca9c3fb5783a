package engine

import "github.com/milnv/gobang/internal/board"

// evaluateMove scores a single prospective move as if color c had
// just been placed at (row, col), without mutating the board. It
// scans all four directions, classifies each line against the pattern
// catalog, sums the class scores, tallies closed-fours/open-threes/
// fourthrees across directions, and adds the (mutually exclusive)
// compound bonus. Pure function of the board and (row, col, c)
// (spec.md §4.3).
//
// The compound-bonus conditions are grounded on
// original_source/Gobang/Evaluator - 副本.cpp's Evaluate, converted
// from that source's plain (potentially cumulative) `if` chain into
// the mutually-exclusive `if`/`else if` spec.md §9 DESIGN NOTES
// mandates.
func evaluateMove(b *board.Board, row, col int, c board.Color) int {
	score := 0
	closedFour := 0
	openThree := 0
	fourThree := 0

	for d := direction(0); d < 4; d++ {
		w := window(b, row, col, c, d)

		_, s := classify(w)
		score += s

		three := hasAny(w, openThreePatterns)
		four := hasAny(w, closedFourPatterns)
		switch {
		case three && four:
			openThree++
			fourThree++
		case three:
			openThree++
		case four:
			closedFour++
		}
	}

	switch {
	case closedFour > 1 || fourThree > 1:
		score += BonusHigh
	case (closedFour > 0 && openThree > 0) || (fourThree > 0 && openThree > 1):
		score += BonusMiddle
	case openThree > 1:
		score += BonusLow
	}

	return score
}

// evaluateBoard scores the whole board from the machine's viewpoint:
// aggressiveness*machineTotal - humanTotal (spec.md §4.3). Positive
// favors the machine. Deterministic: no randomness, so identical
// board states always yield identical scores (spec.md §4.3, testable
// property 6).
func evaluateBoard(b *board.Board, machineColor board.Color, aggressiveness float64) int {
	var machineTotal, humanTotal int

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			cell := b.At(r, c)
			if cell == board.Empty {
				continue
			}

			s := evaluateMove(b, r, c, cell)
			if cell == machineColor {
				machineTotal += s
			} else {
				humanTotal += s
			}
		}
	}

	return int(aggressiveness*float64(machineTotal)) - humanTotal
}
