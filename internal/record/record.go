// Package record implements Component D: the dense, mutable array of
// (row_id, score) pairs that cursors produce and expressions consume.
// It is the evaluation substrate every expr node's filter/adjust/evaluate
// verb operates over, one block at a time.
package record

import "github.com/groonga/grnxx-sub002/internal/value"

// NARowID is the N/A row id: a Record carrying it refers to no row.
const NARowID = value.IntNA

// Cursor is the shared contract produced by Table.CreateCursor and every
// Index lookup (spec.md §6): repeated Read calls append up to max fresh
// records and report how many were produced; 0 means exhausted.
type Cursor interface {
	Read(max int, out *Set) (int, error)
}

// Record is a single (row_id, score) pair.
type Record struct {
	RowID value.Int
	Score value.Float
}

// Set is a dense, owned array of Records, grounded on the teacher's
// internal/dataframe.NDArray slice-and-reshape idiom: one growable backing
// array plus cheap non-owning sub-slices for block processing.
type Set struct {
	records []Record
}

func New() *Set { return &Set{} }

func NewWithCapacity(capacity int) *Set {
	return &Set{records: make([]Record, 0, capacity)}
}

func (s *Set) Push(r Record) {
	s.records = append(s.records, r)
}

func (s *Set) Len() int { return len(s.records) }

// Resize grows or shrinks the set in place; growth zero-fills new slots.
func (s *Set) Resize(n int) {
	if n <= len(s.records) {
		s.records = s.records[:n]
		return
	}
	if n <= cap(s.records) {
		old := len(s.records)
		s.records = s.records[:n]
		for i := old; i < n; i++ {
			s.records[i] = Record{}
		}
		return
	}
	grown := make([]Record, n)
	copy(grown, s.records)
	s.records = grown
}

func (s *Set) Clear() { s.records = s.records[:0] }

func (s *Set) At(i int) Record { return s.records[i] }

func (s *Set) Set(i int, r Record) { s.records[i] = r }

func (s *Set) SetRowID(i int, id value.Int) { s.records[i].RowID = id }

func (s *Set) SetScore(i int, score value.Float) { s.records[i].Score = score }

// All returns the full backing slice, mutable, for callers (the block
// driver) that need to hand a contiguous []Record to a node's verbs.
func (s *Set) All() []Record { return s.records }

// Slice is a non-owning view into a Set (or another Slice): both the
// source and the slice must remain alive for the duration of its use, as
// documented in spec.md §4.D.
type Slice struct {
	records []Record
}

func (s *Set) Ref(start, length int) Slice {
	return Slice{records: s.records[start : start+length]}
}

func (s *Set) CRef(start, length int) Slice {
	return Slice{records: s.records[start : start+length : start+length]}
}

func SliceOf(records []Record) Slice { return Slice{records: records} }

func (sl Slice) Len() int { return len(sl.records) }

func (sl Slice) At(i int) Record { return sl.records[i] }

func (sl Slice) Set(i int, r Record) { sl.records[i] = r }

func (sl Slice) Raw() []Record { return sl.records }

// Shrink truncates the slice to n records (used by filter to compact its
// output in place).
func (sl *Slice) Shrink(n int) { sl.records = sl.records[:n] }
