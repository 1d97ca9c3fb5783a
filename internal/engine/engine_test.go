package engine

import (
	"testing"

	"github.com/milnv/gobang/internal/board"
)

func TestEngineOpeningMoveIsCenter(t *testing.T) {
	e := NewEngine(1, board.White)
	b := board.New()

	row, col := e.NextMove(b, board.Black, 0)
	center := board.Size / 2
	if row != center || col != center {
		t.Fatalf("NextMove(opening) = (%d,%d), want (%d,%d)", row, col, center, center)
	}
}

func TestEngineTakesImmediateWin(t *testing.T) {
	e := NewEngine(1, board.Black)
	b := board.New()
	for _, col := range []int{3, 4, 5, 6} {
		b.Place(7, col, board.Black)
	}

	// Both (7,2) and (7,7) complete the five; the candidate scan
	// reaches (7,2) first.
	row, col := e.NextMove(b, board.Black, 4)
	if row != 7 || col != 2 {
		t.Fatalf("NextMove(immediate win) = (%d,%d), want (7,2)", row, col)
	}

	// NextMove must not have left the board mutated.
	if b.At(7, 2) != board.Empty || b.At(7, 7) != board.Empty {
		t.Fatal("NextMove left a stone on the board")
	}
}

func TestEngineBlocksImmediateLoss(t *testing.T) {
	e := NewEngine(1, board.Black)
	b := board.New()
	b.Place(7, 2, board.Black)
	for _, col := range []int{3, 4, 5, 6} {
		b.Place(7, col, board.White)
	}

	row, col := e.NextMove(b, board.Black, 5)
	if row != 7 || col != 7 {
		t.Fatalf("NextMove(must block) = (%d,%d), want (7,7)", row, col)
	}
}
