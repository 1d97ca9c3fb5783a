package engine

import (
	"testing"

	"github.com/milnv/gobang/internal/board"
)

func TestGenerateCandidatesImmediateWin(t *testing.T) {
	b := board.New()
	for _, col := range []int{3, 4, 5, 6} {
		b.Place(7, col, board.Black)
	}

	// Both (7,2) and (7,7) complete the five; the row-major scan
	// reaches (7,2) first and returns it alone.
	cands := generateCandidates(b, board.Black)
	if len(cands) != 1 || cands[0].Row != 7 || cands[0].Col != 2 {
		t.Fatalf("generateCandidates did not return the single winning move, got %v", cands)
	}
}

func TestGenerateCandidatesBlocksOpponentFive(t *testing.T) {
	b := board.New()
	for _, col := range []int{3, 4, 5, 6} {
		b.Place(7, col, board.White)
	}

	cands := generateCandidates(b, board.Black)
	found := false
	for _, m := range cands {
		if m.Row == 7 && m.Col == 7 {
			found = true
		}
	}
	if !found {
		t.Fatalf("generateCandidates did not include the forced block at (7,7), got %v", cands)
	}
}

func TestGenerateCandidatesTruncation(t *testing.T) {
	b := board.New()
	// A loose scatter of stones gives many low-priority candidates and
	// no kill moves; the bucket the generator returns must never hold
	// more than maxCandidates.
	for r := 0; r < board.Size; r += 3 {
		for c := 0; c < board.Size; c += 3 {
			if (r+c)%2 == 0 {
				b.Place(r, c, board.Black)
			} else {
				b.Place(r, c, board.White)
			}
		}
	}

	cands := generateCandidates(b, board.Black)
	if len(cands) > maxCandidates {
		t.Fatalf("generateCandidates returned %d candidates, want <= %d", len(cands), maxCandidates)
	}
}

func TestGenerateCandidatesEmptyBoardLowBucket(t *testing.T) {
	// On an empty board every cell away from the edge scores an open
	// one in all four directions, so the low-priority bucket fills and
	// is truncated to maxCandidates; the random fallback is not used.
	b := board.New()
	cands := generateCandidates(b, board.Black)
	if len(cands) != maxCandidates {
		t.Fatalf("generateCandidates on empty board = %v, want %d low-priority cells", cands, maxCandidates)
	}
	for _, m := range cands {
		if m.Score != 4*ScoreOpenOne {
			t.Fatalf("candidate %v score = %d, want %d", m, m.Score, 4*ScoreOpenOne)
		}
	}
}
