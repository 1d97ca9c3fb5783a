package engine

import (
	"github.com/milnv/gobang/internal/board"
)

// TTFlag indicates the type of bound stored in a transposition entry.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // Exact score
	TTLowerBound               // Failed high (beta cutoff)
	TTUpperBound               // Failed low
)

// TTEntry is one transposition table slot. The same shape backs both
// tables the engine keeps: the main search's score cache and the kill
// searcher's move cache (the latter only ever uses Flag/BestMove/Depth).
type TTEntry struct {
	Key      uint32     // Upper 32 bits of the Zobrist hash, for collision verification
	BestMove board.Move // Best (or only known forcing) move found from this position
	Score    int32      // Score, valid when Flag/Depth come from the main search
	Depth    int8       // Search depth this entry was stored at
	Flag     TTFlag
	Age      uint8 // Generation counter, for replacement
}

// TranspositionTable is a fixed-size, power-of-two-sized hash table.
// Grounded on the teacher's transposition.go; the engine keeps two
// independent instances (spec.md §4.7/§4.8 SUPPLEMENTED FEATURES),
// one for the main search and one for the kill searcher. Both are
// probed with the board's Zobrist hash alone; the stored Depth is
// compared against the query depth after a hit.
type TranspositionTable struct {
	entries []TTEntry
	size    uint64
	mask    uint64
	age     uint8

	hits   uint64
	probes uint64
}

// NewTranspositionTable creates a table sized to roughly sizeMB
// megabytes, rounded down to a power of two entry count so probing
// can use a bitmask instead of a modulo.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	entrySize := uint64(48) // size of TTEntry on 64-bit platforms
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize
	numEntries = roundDownToPowerOf2(numEntries)
	if numEntries == 0 {
		numEntries = 1
	}

	return &TranspositionTable{
		entries: make([]TTEntry, numEntries),
		size:    numEntries,
		mask:    numEntries - 1,
	}
}

func roundDownToPowerOf2(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up hash, verifying the stored key's upper bits to guard
// against index collisions (the table itself is far smaller than the
// Zobrist key space).
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.probes++

	idx := hash & tt.mask
	entry := tt.entries[idx]

	if entry.Key == uint32(hash>>32) && entry.Depth > 0 {
		tt.hits++
		return entry, true
	}

	return TTEntry{}, false
}

// Store saves a result for hash, subject to a depth-preferred,
// age-preferred replacement policy: never overwrite a deeper entry
// from the same search generation with a shallower one.
func (tt *TranspositionTable) Store(hash uint64, depth int, score int, flag TTFlag, bestMove board.Move) {
	idx := hash & tt.mask
	entry := &tt.entries[idx]

	if entry.Age != tt.age || depth >= int(entry.Depth) {
		entry.Key = uint32(hash >> 32)
		entry.BestMove = bestMove
		entry.Score = int32(score)
		entry.Depth = int8(depth)
		entry.Flag = flag
		entry.Age = tt.age
	}
}

// NewSearch bumps the age counter, marking every previously stored
// entry as stale for replacement purposes without clearing the table.
func (tt *TranspositionTable) NewSearch() {
	tt.age++
}

// Clear wipes every entry and resets statistics.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.age = 0
	tt.hits = 0
	tt.probes = 0
}

// HitRate returns the cache hit rate as a percentage, for diagnostics.
func (tt *TranspositionTable) HitRate() float64 {
	if tt.probes == 0 {
		return 0
	}
	return float64(tt.hits) / float64(tt.probes) * 100
}

// Size returns the number of entries in the table.
func (tt *TranspositionTable) Size() uint64 {
	return tt.size
}
