// Package engineopts holds the option bags spec.md §6 names as part of
// the library's stable external surface: CursorOptions, ExpressionOptions
// and IndexRange. They are plain structs with typed enum fields, the same
// constant-table idiom the teacher uses for internal/bytecode.OpCode.
package engineopts

import "github.com/groonga/grnxx-sub002/internal/value"

// OrderType selects ascending (table row id, or index value) versus
// descending iteration order for a cursor.
type OrderType uint8

const (
	Regular OrderType = iota
	Reverse
)

// CursorOptions configures a Table or Index cursor.
type CursorOptions struct {
	Offset    int
	Limit     int // <0 means unbounded
	OrderType OrderType
}

// DefaultCursorOptions returns the zero-offset, unbounded, ascending
// default every CreateCursor call uses unless overridden.
func DefaultCursorOptions() CursorOptions {
	return CursorOptions{Offset: 0, Limit: -1, OrderType: Regular}
}

// ExpressionOptions configures an Expression released by the builder;
// BlockSize controls how many records the vectorised driver processes per
// call to a node's filter/adjust/evaluate. The typical default matches
// spec.md §6 (1024).
type ExpressionOptions struct {
	BlockSize int
}

func DefaultExpressionOptions() ExpressionOptions {
	return ExpressionOptions{BlockSize: 1024}
}

// BoundKind distinguishes an inclusive bound (<=, >=) from an exclusive
// one (<, >) on either end of an IndexRange.
type BoundKind uint8

const (
	Inclusive BoundKind = iota
	Exclusive
)

// Bound is one end of a range; a nil *Bound on a Range means "unbounded"
// on that side.
type Bound struct {
	Value value.Datum
	Kind  BoundKind
}

func LowerBound(v value.Datum, kind BoundKind) *Bound { return &Bound{Value: v, Kind: kind} }
func UpperBound(v value.Datum, kind BoundKind) *Bound { return &Bound{Value: v, Kind: kind} }

// Range describes a tree-index range lookup: a half-open or closed
// interval with either end optionally unbounded.
type Range struct {
	Lower *Bound
	Upper *Bound
}

// All is the unbounded range, matching spec.md S6's "find_in_range(all, ...)".
func All() Range { return Range{} }
