package engine

import (
	"math"
	"sync/atomic"

	"github.com/milnv/gobang/internal/board"
)

// Infinity bounds alpha/beta at the root; it only needs to dwarf
// ScoreFive (spec.md §4.3: ScoreFive dwarfs chess's material units).
const Infinity = 50_000_000

// Searcher runs the iteratively-deepened negamax/alpha-beta search
// over the candidate moves generateCandidates produces. Grounded on
// the teacher's Searcher (search.go), stripped of chess-specific move
// generation/quiescence/PV bookkeeping Gomoku has no analogue for.
type Searcher struct {
	tt             *TranspositionTable
	color          board.Color // the side the search is maximizing for
	aggressiveness float64

	nodes    uint64
	stopFlag atomic.Bool
}

// NewSearcher creates a searcher backed by tt.
func NewSearcher(tt *TranspositionTable) *Searcher {
	return &Searcher{tt: tt}
}

// Stop signals the running search to abandon further work.
func (s *Searcher) Stop() { s.stopFlag.Store(true) }

// Reset clears per-search counters.
func (s *Searcher) Reset() {
	s.stopFlag.Store(false)
	s.nodes = 0
}

// Nodes returns the number of positions visited by the last search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Search runs iterative deepening up to maxDepth plies for color on
// b, returning the best move found and its score from color's
// viewpoint. aggressiveness scales color's side of the board
// evaluation at every leaf (spec.md §3/§4.3), biasing offense against
// defense. b is mutated during search and restored to its original
// state before returning (spec.md §5, §6: the board is a mutable
// borrow for the duration of one call).
func (s *Searcher) Search(b *board.Board, color board.Color, aggressiveness float64, maxDepth int) (board.Move, int) {
	s.color = color
	s.aggressiveness = aggressiveness
	s.Reset()
	s.tt.NewSearch()

	candidates := generateCandidates(b, color)
	if len(candidates) == 0 {
		return board.Move{}, 0
	}
	if len(candidates) == 1 {
		return candidates[0], candidates[0].Score
	}

	var bestMove board.Move
	var bestScore int
	for depth := 2; depth <= maxDepth; depth += 2 {
		move, score := s.searchRoot(b, color, candidates, depth)
		bestMove, bestScore = move, score
		if s.stopFlag.Load() || score >= ScoreFive {
			break
		}
	}
	return bestMove, bestScore
}

// searchRoot evaluates each candidate at depth and breaks ties among
// equal-scoring candidates using a composite offense+defense score
// (spec.md §4.7: "round(α · evaluate_move(p, machine)) +
// evaluate_move(p, opponent)"): the candidate's own threat value,
// scaled by aggressiveness, plus the opponent's threat value at that
// same cell, favoring moves that are simultaneously offensive and
// defensive.
func (s *Searcher) searchRoot(b *board.Board, color board.Color, candidates []board.Move, depth int) (board.Move, int) {
	opponent := color.Opponent()

	bestScore := -Infinity
	var bestMove board.Move
	var tieBreak int
	haveBest := false

	for _, cand := range candidates {
		if _, err := b.Place(cand.Row, cand.Col, color); err != nil {
			continue
		}
		var score int
		if b.LastMoveWins(cand.Row, cand.Col) {
			score = ScoreFive
		} else {
			score = -s.negamax(b, depth-1, -Infinity, Infinity, opponent)
		}
		b.Unplace(cand.Row, cand.Col)

		tie := int(math.Round(s.aggressiveness*float64(evaluateMove(b, cand.Row, cand.Col, color)))) +
			evaluateMove(b, cand.Row, cand.Col, opponent)

		switch {
		case !haveBest || score > bestScore:
			bestScore, bestMove, tieBreak, haveBest = score, cand, tie, true
		case score == bestScore && tie > tieBreak:
			bestMove, tieBreak = cand, tie
		}
	}

	return bestMove, bestScore
}

// negamax searches depth plies further from b's current state for
// color, returning a score from color's viewpoint.
func (s *Searcher) negamax(b *board.Board, depth int, alpha, beta int, color board.Color) int {
	if s.nodes&4095 == 0 && s.stopFlag.Load() {
		return 0
	}
	s.nodes++

	ttEntry, found := s.tt.Probe(b.Hash)
	if found && int(ttEntry.Depth) >= depth {
		switch ttEntry.Flag {
		case TTExact:
			return int(ttEntry.Score)
		case TTLowerBound:
			if int(ttEntry.Score) > alpha {
				alpha = int(ttEntry.Score)
			}
		case TTUpperBound:
			if int(ttEntry.Score) < beta {
				beta = int(ttEntry.Score)
			}
		}
		if alpha >= beta {
			return int(ttEntry.Score)
		}
	}

	if depth <= 0 || b.Full() {
		return evaluateBoard(b, s.color, s.aggressiveness) * sign(color, s.color)
	}

	candidates := generateCandidates(b, color)
	if len(candidates) == 0 {
		return 0
	}

	opponent := color.Opponent()
	bestScore := -Infinity
	var bestMove board.Move
	flag := TTUpperBound

	for _, cand := range candidates {
		if _, err := b.Place(cand.Row, cand.Col, color); err != nil {
			continue
		}

		var score int
		if b.LastMoveWins(cand.Row, cand.Col) {
			score = ScoreFive - 1 // slightly below a just-completed five at the root
		} else {
			score = -s.negamax(b, depth-1, -beta, -alpha, opponent)
		}

		b.Unplace(cand.Row, cand.Col)

		if s.stopFlag.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = cand
			if score > alpha {
				alpha = score
				flag = TTExact
			}
		}

		if score >= beta {
			s.tt.Store(b.Hash, depth, score, TTLowerBound, bestMove)
			return score
		}
	}

	s.tt.Store(b.Hash, depth, bestScore, flag, bestMove)
	return bestScore
}

// sign returns 1 when color matches viewpoint, -1 otherwise -- used
// to orient the board-wide evaluator (always computed from
// viewpoint's side) into the side-to-move-relative score negamax
// expects.
func sign(color, viewpoint board.Color) int {
	if color == viewpoint {
		return 1
	}
	return -1
}
