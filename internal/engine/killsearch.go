package engine

import (
	"sort"

	"github.com/milnv/gobang/internal/board"
)

// KillSearcher looks for a forced win: a sequence of moves that are
// each an unanswerable threat, ending in five-in-a-row regardless of
// how the opponent defends (spec.md §4.8, Victory by Continuous Fours
// / Fours-and-Threes). Grounded on the teacher's transposition-backed
// Searcher, restructured around forcing-move recursion instead of
// full-width negamax since only threat moves are ever tried.
type KillSearcher struct {
	tt    *TranspositionTable // move cache, keyed independently of the main search table
	nodes uint64
}

// NewKillSearcher creates a kill searcher backed by its own
// transposition table (spec.md §4.8 SUPPLEMENTED FEATURES, variant a:
// cache keyed on board hash, storing the forcing move found at that
// node so a repeated sub-position in a later main-search ply is free).
func NewKillSearcher(tt *TranspositionTable) *KillSearcher {
	return &KillSearcher{tt: tt}
}

// Nodes returns the number of positions visited by the last search.
func (k *KillSearcher) Nodes() uint64 { return k.nodes }

// Search tries VCF first, then VCT, each at increasing depth up to
// maxDepth, and returns the first forcing move found along with
// whether a forced win exists (spec.md §4.8 step: "VCF is attempted
// first; VCT is only attempted if VCF fails").
func (k *KillSearcher) Search(b *board.Board, color board.Color, maxDepth int) (board.Move, bool) {
	k.nodes = 0

	for depth := 2; depth <= maxDepth; depth += 2 {
		if move, ok := k.calcKill(b, color, depth, false); ok {
			return move, true
		}
	}
	for depth := 2; depth <= maxDepth; depth += 2 {
		if move, ok := k.calcKill(b, color, depth, true); ok {
			return move, true
		}
	}
	return board.Move{}, false
}

// calcKill recursively looks for a forcing move for color that either
// wins outright or reduces the opponent to exactly one legal reply,
// repeating until remaining is exhausted or no forcing move remains.
// allowThrees selects VCT (fours and open threes) over plain VCF
// (fours only).
func (k *KillSearcher) calcKill(b *board.Board, color board.Color, remaining int, allowThrees bool) (board.Move, bool) {
	if remaining <= 0 {
		return board.Move{}, false
	}

	k.nodes++

	if cached, found := k.tt.Probe(b.Hash); found && int(cached.Depth) >= remaining {
		if cached.Flag == TTExact {
			return cached.BestMove, true
		}
		if cached.Flag == TTUpperBound {
			return board.Move{}, false
		}
	}

	moves := k.forcingMoves(b, color, allowThrees)

	for _, m := range moves {
		if _, err := b.Place(m.Row, m.Col, color); err != nil {
			continue
		}

		win := b.LastMoveWins(m.Row, m.Col)
		if !win {
			defenses := fiveCompletionCells(b, color)
			switch len(defenses) {
			case 0:
				win = false
			case 1:
				b.Place(defenses[0].Row, defenses[0].Col, color.Opponent())
				_, ok := k.calcKill(b, color, remaining-1, allowThrees)
				b.Unplace(defenses[0].Row, defenses[0].Col)
				win = ok
			default:
				win = true // opponent cannot block every completion cell
			}
		}

		b.Unplace(m.Row, m.Col)

		if win {
			k.tt.Store(b.Hash, remaining, 0, TTExact, m)
			return m, true
		}
	}

	k.tt.Store(b.Hash, remaining, 0, TTUpperBound, board.Move{})
	return board.Move{}, false
}

// forcingMoves returns, when some empty cell completes five for color,
// that single cell (the first in row-major order). Otherwise it
// returns, highest score first, every empty cell where placing color
// creates a closed four in some direction, plus (when allowThrees)
// cells that create an open three in some direction -- the two shapes
// spec.md §4.8 names as forcing. This mirrors eval.go's
// own per-direction pattern classification (hasAny against
// closedFourPatterns/openThreePatterns) rather than thresholding the
// aggregate evaluateMove score: ScoreOpenThree (10,000) exceeds
// ScoreClosedFour (9,000), so a scalar threshold would make VCT mode
// *stricter* than VCF (dropping plain closed fours) while letting
// unrelated high-aggregate-score cells qualify as "forcing".
func (k *KillSearcher) forcingMoves(b *board.Board, color board.Color, allowThrees bool) []board.Move {
	if wins := fiveCompletionCells(b, color); len(wins) > 0 {
		return wins[:1]
	}

	var moves []board.Move

	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.At(r, c) != board.Empty {
				continue
			}

			forcing := matchesInAnyDirection(b, r, c, color, closedFourPatterns)
			if !forcing && allowThrees {
				forcing = matchesInAnyDirection(b, r, c, color, openThreePatterns)
			}
			if !forcing {
				continue
			}

			moves = append(moves, board.Move{Row: r, Col: c, Color: color, Score: evaluateMove(b, r, c, color)})
		}
	}

	sort.SliceStable(moves, func(i, j int) bool { return moves[i].Score > moves[j].Score })
	return moves
}

// fiveCompletionCells returns every empty cell where placing color
// would complete a five-in-a-row -- the cell(s) the opponent is
// forced to occupy to survive color's last move.
func fiveCompletionCells(b *board.Board, color board.Color) []board.Move {
	var cells []board.Move
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.At(r, c) != board.Empty {
				continue
			}
			if _, err := b.Place(r, c, color); err != nil {
				continue
			}
			wins := b.LastMoveWins(r, c)
			b.Unplace(r, c)
			if wins {
				cells = append(cells, board.Move{Row: r, Col: c, Color: color})
			}
		}
	}
	return cells
}
