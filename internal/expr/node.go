package expr

import (
	"github.com/groonga/grnxx-sub002/internal/column"
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// Node is the shared contract for every expression-tree node: its static
// type info plus the three polymorphic verbs of spec.md §4.E. Evaluate
// always works in terms of value.Datum: nodes are free to carry their own
// narrowly-typed internal state, but the Node boundary stays type-generic
// the same way value.Datum does at the column/builder boundary.
type Node interface {
	NodeType() NodeType
	DataType() value.DataType

	// ReferenceTable returns the table an Int or Vector<Int> node's values
	// are row ids into, or nil if this node is not a reference. Only
	// COLUMN nodes over a reference column (and dereference nodes, which
	// forward the inner expression's own reference table) ever return
	// non-nil.
	ReferenceTable() *column.Table

	// Evaluate fills out[i] with this node's value for in[i], for every i.
	Evaluate(in []record.Record, out []value.Datum) error

	// Filter shrinks out in place to the records of in for which this
	// node is strictly Bool true, preserving order. Only valid when
	// DataType() == value.BoolType.
	Filter(in []record.Record, out *record.Slice) (int, error)

	// Adjust writes this node's Float value into each record's Score.
	// Only valid when DataType() == value.FloatType.
	Adjust(records []record.Record) error
}

// base embeds the fields every concrete node needs and gives them the
// ReferenceTable() nil default; nodes that can be references (column
// nodes, dereference nodes) set refTable explicitly.
type base struct {
	nodeType NodeType
	dataType value.DataType
	refTable *column.Table
}

func (b *base) NodeType() NodeType                { return b.nodeType }
func (b *base) DataType() value.DataType          { return b.dataType }
func (b *base) ReferenceTable() *column.Table     { return b.refTable }

// defaultFilter implements spec.md §4.E's "filter -> evaluate then
// compact" fallback: evaluate the node's Bool value for every input
// record, then keep only those strictly true, in order. out may alias in.
func defaultFilter(n Node, in []record.Record, out *record.Slice) (int, error) {
	if n.DataType() != value.BoolType {
		return 0, grnxxerr.NewInvalidOperation("Node.Filter", "filter requires a Bool-valued node, got "+n.DataType().String())
	}
	vals := make([]value.Datum, len(in))
	if err := n.Evaluate(in, vals); err != nil {
		return 0, err
	}
	kept := 0
	for i, r := range in {
		if vals[i].AsBool().IsTrue() {
			out.Set(kept, r)
			kept++
		}
	}
	out.Shrink(kept)
	return kept, nil
}

// defaultAdjust implements "adjust -> evaluate then scatter": evaluate
// the node's Float value for every record and write it into that
// record's score.
func defaultAdjust(n Node, records []record.Record) error {
	if n.DataType() != value.FloatType {
		return grnxxerr.NewInvalidOperation("Node.Adjust", "adjust requires a Float-valued node, got "+n.DataType().String())
	}
	vals := make([]value.Datum, len(records))
	if err := n.Evaluate(records, vals); err != nil {
		return err
	}
	for i := range records {
		records[i].Score = vals[i].AsFloat()
	}
	return nil
}
