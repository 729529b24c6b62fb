// Package engine implements the transposition table, evaluator, and
// alpha-beta search built on top of internal/chess's board kernel.
package engine

import (
	"unsafe"

	"github.com/algerbrex/gryphon/internal/chess"
)

const bytesPerEntry = int(unsafe.Sizeof(Entry{})) // in-memory size of one slot, padding included

// BoundFlag classifies how a stored Value relates to the window it
// was produced in: Exact (a true score), Lower (a beta cutoff — the
// true score is at least Value), or Upper (every move failed low —
// the true score is at most Value).
type BoundFlag uint8

const (
	NoBound BoundFlag = iota
	ExactBound
	LowerBound
	UpperBound
)

// Entry is a single transposition table slot.
type Entry struct {
	Hash     uint64
	Depth    int
	Value    int
	Flag     BoundFlag
	BestMove chess.Move
	valid    bool
}

// Table is a fixed-size, direct-mapped transposition table with
// depth-preferred replacement: a store into an occupied slot
// overwrites it only at equal or greater depth, trusting the newer
// search to be at least as informative as the shallower one.
type Table struct {
	entries []Entry
}

// NewTable allocates a table sized to fit within mib mebibytes.
func NewTable(mib int) *Table {
	if mib <= 0 {
		mib = 1
	}
	count := (mib * 1024 * 1024) / bytesPerEntry
	if count < 1 {
		count = 1
	}
	return &Table{entries: make([]Entry, count)}
}

func (t *Table) index(hash uint64) uint64 { return hash % uint64(len(t.entries)) }

// Probe returns the entry stored for hash, if any, and whether it was
// found at all (regardless of whether it is usable at the requested
// depth — callers that care about depth check Entry.Depth
// themselves).
func (t *Table) Probe(hash uint64) (Entry, bool) {
	e := t.entries[t.index(hash)]
	if e.valid && e.Hash == hash {
		return e, true
	}
	return Entry{}, false
}

// Store records a search result, replacing whatever currently
// occupies hash's slot if the slot is empty or the new result came
// from a search at least as deep, whichever position the slot holds.
func (t *Table) Store(hash uint64, depth, value int, flag BoundFlag, best chess.Move) {
	slot := &t.entries[t.index(hash)]
	if slot.valid && slot.Depth > depth {
		return
	}
	*slot = Entry{Hash: hash, Depth: depth, Value: value, Flag: flag, BestMove: best, valid: true}
}

// Clear empties every slot, used by the UCI "ucinewgame" command.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// LoadFactor reports the fraction of slots currently occupied, for
// diagnostic logging.
func (t *Table) LoadFactor() float64 {
	used := 0
	for _, e := range t.entries {
		if e.valid {
			used++
		}
	}
	return float64(used) / float64(len(t.entries))
}
