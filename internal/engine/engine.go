package engine

import (
	"log"

	"github.com/milnv/gobang/internal/board"
)

// Engine is the Gomoku move-selection engine: a pattern evaluator, a
// threat-bucketed candidate generator, a VCF/VCT kill searcher, and
// an iteratively-deepened negamax driver, wired together the way the
// teacher's chess Engine wires its worker pool and transposition
// table. Unlike the teacher, NextMove is single-threaded: Gomoku's
// branching factor is controlled almost entirely by
// generateCandidates' truncation rather than by parallel search.
type Engine struct {
	mainTT *TranspositionTable
	killTT *TranspositionTable

	searcher     *Searcher
	killSearcher *KillSearcher

	// Aggressiveness scales the machine's own-move weight in
	// evaluateBoard and the root tie-break (spec.md §3/§4.3/§4.7); 1.0
	// is neutral. NewEngine seeds it from DefaultAggressiveness; it is
	// exported so storage.Preferences can override it at load time.
	Aggressiveness float64
}

// DefaultAggressiveness returns the aggressiveness spec.md §3 assigns
// by default to a machine playing color: black plays first and is
// biased toward offense (1.8), white replies and is biased toward
// defense (0.5).
func DefaultAggressiveness(color board.Color) float64 {
	if color == board.Black {
		return 1.8
	}
	return 0.5
}

// depthStep is one entry of the depth ladder spec.md §6 describes:
// main search depth and paired kill-search depth, indexed by how many
// stones are already on the board.
type depthStep struct {
	maxStones int
	mainDepth int
	killDepth int // 0 means no kill search at this stage
}

var depthLadder = []depthStep{
	{maxStones: 6, mainDepth: 6, killDepth: 0},
	{maxStones: 10, mainDepth: 6, killDepth: 8},
	{maxStones: 30, mainDepth: 8, killDepth: 10},
	{maxStones: 60, mainDepth: 10, killDepth: 12},
	{maxStones: board.Size * board.Size, mainDepth: 12, killDepth: 12},
}

func depthsFor(stonesPlayed int) (mainDepth, killDepth int) {
	for _, step := range depthLadder {
		if stonesPlayed <= step.maxStones {
			return step.mainDepth, step.killDepth
		}
	}
	last := depthLadder[len(depthLadder)-1]
	return last.mainDepth, last.killDepth
}

// NewEngine creates an engine with its own main-search and
// kill-search transposition tables, sized in MB. machineColor seeds
// Aggressiveness via DefaultAggressiveness; callers may overwrite it
// afterward (e.g. from persisted storage.Preferences).
func NewEngine(ttSizeMB int, machineColor board.Color) *Engine {
	mainTT := NewTranspositionTable(ttSizeMB)
	killTT := NewTranspositionTable(ttSizeMB)

	e := &Engine{
		mainTT:         mainTT,
		killTT:         killTT,
		searcher:       NewSearcher(mainTT),
		killSearcher:   NewKillSearcher(killTT),
		Aggressiveness: DefaultAggressiveness(machineColor),
	}

	log.Printf("[Engine] Gomoku engine ready (ttSizeMB=%d, machineColor=%s, aggressiveness=%.2f)",
		ttSizeMB, machineColor, e.Aggressiveness)
	return e
}

// Clear wipes both transposition tables, e.g. at the start of a new
// game.
func (e *Engine) Clear() {
	e.mainTT.Clear()
	e.killTT.Clear()
}

// NextMove chooses color's move on b. b is a mutable borrow for the
// duration of this call only: NextMove places and unplaces
// speculative stones but returns it in its original state (spec.md
// §6). stonesPlayed selects the depth ladder entry.
//
// The opening move is special-cased to the board center, matching the
// near-universal Gomoku convention the original engine also hardcodes
// (spec.md §9 SUPPLEMENTED FEATURES).
func (e *Engine) NextMove(b *board.Board, color board.Color, stonesPlayed int) (int, int) {
	if stonesPlayed == 0 {
		center := board.Size / 2
		log.Printf("[Engine] opening move -> center (%d,%d)", center, center)
		return center, center
	}

	mainDepth, killDepth := depthsFor(stonesPlayed)

	move, score := e.searcher.Search(b, color, e.Aggressiveness, mainDepth)
	log.Printf("[Engine] main search depth=%d nodes=%d score=%d move=(%d,%d)",
		mainDepth, e.searcher.Nodes(), score, move.Row, move.Col)

	if killDepth > 0 && score < ScoreFive {
		if killMove, ok := e.killSearcher.Search(b, color, killDepth); ok {
			log.Printf("[Engine] kill search depth=%d nodes=%d move=(%d,%d)",
				killDepth, e.killSearcher.Nodes(), killMove.Row, killMove.Col)
			return killMove.Row, killMove.Col
		}
	}

	return move.Row, move.Col
}

// Evaluate returns the static evaluation of b from color's viewpoint,
// for diagnostics and tests.
func (e *Engine) Evaluate(b *board.Board, color board.Color) int {
	return evaluateBoard(b, color, e.Aggressiveness)
}
