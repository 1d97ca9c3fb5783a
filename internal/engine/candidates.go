package engine

import (
	"math/rand"
	"sort"

	"github.com/milnv/gobang/internal/board"
)

// maxCandidates is the generator's output truncation (spec.md §4.4).
const maxCandidates = 10

// inRange reports whether v lies in [lo, hi).
func inRange(v, lo, hi int) bool {
	return v >= lo && v < hi
}

// generateCandidates classifies every empty cell into priority
// buckets by threat level and returns a short ordered list (spec.md
// §4.4). Grounded on original_source/Gobang/Evaluator - 副本.cpp's
// GenBestPoint, which (unlike the primary Evaluator.cpp) computes
// Score/FoeScore via the full compound-bonus Evaluate rather than raw
// layout membership -- matching this function's evaluate_move-based
// description exactly.
//
// Step 2 (opponent threatens a five) appends every matching cell to
// the high-priority bucket, even after T has already reached 2 --
// every simultaneous winning reply the opponent has is a real threat
// and none may be dropped (spec.md §4.4 step 2). Step 3 (opponent
// threatens a fourthree) only appends while T < 2: once T has already
// been promoted to 2 by an actual five-threat, a merely
// middle-risk-level cell must not be mixed into that bucket, or it
// can crowd out the real winning block once the bucket is truncated
// to maxCandidates (spec.md §4.4 step 3: append only "if T was
// promoted").
func generateCandidates(b *board.Board, c board.Color) []board.Move {
	opponent := c.Opponent()

	var high, middle, low, kill []board.Move
	threatLevel := 0

	for r := 0; r < board.Size; r++ {
		for col := 0; col < board.Size; col++ {
			if b.At(r, col) != board.Empty {
				continue
			}

			score := evaluateMove(b, r, col, c)
			if score >= ScoreFive {
				return []board.Move{{Row: r, Col: col, Color: c, Score: score}}
			}

			foeScore := evaluateMove(b, r, col, opponent)
			move := board.Move{Row: r, Col: col, Color: c, Score: score}

			switch {
			case foeScore >= ScoreFive:
				if threatLevel < 2 {
					threatLevel = 2
					high = high[:0]
				}
				high = append(high, move)
				continue
			case foeScore >= MiddleRisk:
				if threatLevel == 2 {
					continue
				}
				if threatLevel < 1 {
					threatLevel = 1
					high = high[:0]
				}
				high = append(high, move)
				continue
			}

			if threatLevel == 2 {
				continue
			}

			if threatLevel == 0 {
				switch {
				case inRange(score, LowRisk, MiddleRisk) || inRange(foeScore, LowRisk, MiddleRisk):
					high = append(high, move)
				case score >= ScoreClosedFour || foeScore >= ScoreClosedFour:
					middle = append(middle, move)
				case score >= ScoreClosedOne && len(middle) == 0:
					low = append(low, move)
				}
			}

			if score >= MiddleRisk {
				kill = append(kill, move)
			}
		}
	}

	if threatLevel < 2 && len(kill) > 0 {
		return kill
	}

	bucket := high
	if len(bucket) == 0 {
		bucket = middle
	}
	if len(bucket) == 0 {
		bucket = low
	}
	if len(bucket) == 0 {
		return randomFallback(b, c)
	}

	sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Score > bucket[j].Score })
	if len(bucket) > maxCandidates {
		bucket = bucket[:maxCandidates]
	}
	return bucket
}

// randomFallback returns a single random empty cell when every bucket
// is empty (spec.md §4.4 step 5, §7 EmptyCandidates: a diagnostic, not
// an error).
func randomFallback(b *board.Board, c board.Color) []board.Move {
	var empties []board.Move
	for r := 0; r < board.Size; r++ {
		for col := 0; col < board.Size; col++ {
			if b.At(r, col) == board.Empty {
				empties = append(empties, board.Move{Row: r, Col: col, Color: c})
			}
		}
	}
	if len(empties) == 0 {
		return nil
	}
	return []board.Move{empties[rand.Intn(len(empties))]}
}
