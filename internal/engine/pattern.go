// Package engine implements the Gomoku move-selection engine: the
// pattern-based evaluator, the threat-bucketed candidate generator,
// the VCF/VCT kill searcher, and the iteratively-deepened negamax
// driver that ties them together.
package engine

import "strings"

// patternClass names one shape category in the pattern catalog.
// Classes are tested in catalog order, strongest shape first (closed
// four, scored 9,000, is tested before open three, scored 10,000);
// classify returns the first match (testable property 3).
type patternClass int

const (
	classNone patternClass = iota
	classFive
	classOpenFour
	classClosedFour
	classOpenThree
	classClosedThree
	classOpenTwo
	classClosedTwo
	classOpenOne
	classClosedOne
)

// Canonical class scores, higher is better for the side to move.
const (
	ScoreFive        = 10_000_000
	ScoreOpenFour    = 1_000_000
	ScoreClosedFour  = 9_000
	ScoreOpenThree   = 10_000
	ScoreClosedThree = 30
	ScoreOpenTwo     = 100
	ScoreClosedTwo   = 10
	ScoreOpenOne     = 80
	ScoreClosedOne   = 1
)

// Compound-bonus values double as the candidate generator's risk
// thresholds (MiddleRisk and LowRisk are the ones it reads).
const (
	BonusHigh   = 800_000 // multi-closed-four, or double-fourthree
	BonusMiddle = 500_000 // closed-four+open-three, or fourthree+>=2 open-three
	BonusLow    = 100_000 // >=2 open-threes

	HighRisk   = BonusHigh
	MiddleRisk = BonusMiddle
	LowRisk    = BonusLow
)

// Pattern lists. five/open-three/closed-three/open-two agree between
// both C++ source variants. closed-four and open-four use the fuller
// enumeration from Evaluator.cpp (spec.md's table lists "example
// shapes", not an exhaustive set). closed-two uses spec.md's own
// corrected list, since the original BlockTwo list accidentally
// duplicates two open-two patterns. open-one/closed-one use the
// original's patterns, which are the ones that actually produce the
// scores spec.md assigns them (see DESIGN.md).
var (
	fiveLinkPatterns   = []string{"XXXXX"}
	openFourPatterns   = []string{"_XXXX_", "XXXX_", "_XXXX"}
	closedFourPatterns = []string{
		"X_XXX", "XX_XX", "XXX_X",
		"#XXXX_", "#XXX_X", "#XX_XX", "#X_XXX",
		"_XXXX#", "X_XXX#", "XX_XX#", "XXX_X#",
	}
	openThreePatterns   = []string{"_XXX__", "_XX_X_", "_X_XX_", "__XXX_"}
	closedThreePatterns = []string{"#XXX__", "#XX_X_", "#X_XX_", "__XXX#", "_X_XX#", "_XX_X#"}
	openTwoPatterns     = []string{"__XX__", "_XX___", "___XX_", "_X_X__", "__X_X_"}
	closedTwoPatterns   = []string{"_XX#__", "__XX#_", "__#XX_", "_#XX__", "___XX#", "#XX___", "XX____", "____XX"}
	openOnePatterns     = []string{"__X__", "_X___", "___X_"}
	closedOnePatterns   = []string{"__X#__", "__#X__", "_#_X__", "___#X_", "___X#_", "__X_#_", "#X____", "____X#"}
)

type patternEntry struct {
	class    patternClass
	score    int
	patterns []string
}

// catalog is ordered strongest shape first: five, open four, closed
// four, open three, and so on down to closed one.
var catalog = []patternEntry{
	{classFive, ScoreFive, fiveLinkPatterns},
	{classOpenFour, ScoreOpenFour, openFourPatterns},
	{classClosedFour, ScoreClosedFour, closedFourPatterns},
	{classOpenThree, ScoreOpenThree, openThreePatterns},
	{classClosedThree, ScoreClosedThree, closedThreePatterns},
	{classOpenTwo, ScoreOpenTwo, openTwoPatterns},
	{classClosedTwo, ScoreClosedTwo, closedTwoPatterns},
	{classOpenOne, ScoreOpenOne, openOnePatterns},
	{classClosedOne, ScoreClosedOne, closedOnePatterns},
}

// hasAny reports whether line contains any of patterns as a substring.
func hasAny(line string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}

// classify returns the score of the first catalog entry matching
// line, or 0 if nothing matches. Reordering the catalog must not
// raise a lower class's score when a higher one would also match
// (spec.md §3 invariant: closed-four never matches a window that
// open-four already claimed).
func classify(line string) (patternClass, int) {
	for _, e := range catalog {
		if hasAny(line, e.patterns) {
			return e.class, e.score
		}
	}
	return classNone, 0
}
