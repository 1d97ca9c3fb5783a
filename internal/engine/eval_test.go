package engine

import (
	"testing"

	"github.com/milnv/gobang/internal/board"
)

func TestEvaluateMoveFive(t *testing.T) {
	b := board.New()
	for _, col := range []int{3, 4, 5, 6} {
		b.Place(7, col, board.Black)
	}
	if score := evaluateMove(b, 7, 7, board.Black); score < ScoreFive {
		t.Fatalf("evaluateMove(completing five) = %d, want >= %d", score, ScoreFive)
	}
}

func TestEvaluateMoveDoubleThreeBonus(t *testing.T) {
	// Build a cross of two open threes meeting at (7,7): one
	// horizontal, one vertical, both missing the center stone.
	b := board.New()
	b.Place(7, 6, board.Black)
	b.Place(7, 8, board.Black)
	b.Place(6, 7, board.Black)
	b.Place(8, 7, board.Black)

	score := evaluateMove(b, 7, 7, board.Black)
	if score < BonusLow {
		t.Fatalf("evaluateMove(double open three) = %d, want >= BonusLow (%d)", score, BonusLow)
	}
}

func TestEvaluateMoveSymmetricUnderColorSwap(t *testing.T) {
	// testable property: evaluateMove must not depend on which color
	// is "mine" beyond the board's actual stone colors -- swapping
	// every stone's color and re-querying with the opposite color
	// yields the same score.
	b1 := board.New()
	b1.Place(7, 5, board.Black)
	b1.Place(7, 6, board.Black)

	b2 := board.New()
	b2.Place(7, 5, board.White)
	b2.Place(7, 6, board.White)

	s1 := evaluateMove(b1, 7, 7, board.Black)
	s2 := evaluateMove(b2, 7, 7, board.White)
	if s1 != s2 {
		t.Fatalf("evaluateMove not color-symmetric: %d != %d", s1, s2)
	}
}

func TestEvaluateMoveCompoundBonusIsExclusiveNotCumulative(t *testing.T) {
	// A move that simultaneously creates a closed four (horizontal) and
	// two open threes (vertical, main diagonal) satisfies both the
	// BonusMiddle condition (closedFour>0 && openThree>0) and the
	// BonusLow condition (openThree>1). spec.md §9 requires these tiers
	// to collapse to exactly one bonus, matching the first case an
	// if/else if chain would reach -- not the sum of every satisfied
	// tier, which is what a plain (cumulative) if chain would produce.
	b := board.New()
	b.Place(7, 3, board.White)
	b.Place(7, 4, board.Black)
	b.Place(7, 5, board.Black)
	b.Place(7, 6, board.Black)
	b.Place(5, 7, board.Black)
	b.Place(6, 7, board.Black)
	b.Place(5, 5, board.Black)
	b.Place(6, 6, board.Black)

	var baseline int
	for d := direction(0); d < 4; d++ {
		_, s := classify(window(b, 7, 7, board.Black, d))
		baseline += s
	}

	got := evaluateMove(b, 7, 7, board.Black)
	want := baseline + BonusMiddle
	if got != want {
		t.Fatalf("evaluateMove = %d, want exactly baseline+BonusMiddle = %d (baseline=%d); "+
			"a cumulative bonus chain would instead give %d", got, want, baseline, baseline+BonusMiddle+BonusLow)
	}
}

func TestEvaluateBoardDeterministic(t *testing.T) {
	b := board.New()
	b.Place(7, 7, board.Black)
	b.Place(7, 8, board.White)

	s1 := evaluateBoard(b, board.Black, 1.0)
	s2 := evaluateBoard(b, board.Black, 1.0)
	if s1 != s2 {
		t.Fatalf("evaluateBoard nondeterministic: %d != %d", s1, s2)
	}
}
