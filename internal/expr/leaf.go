package expr

import (
	"github.com/groonga/grnxx-sub002/internal/column"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// constantNode fills every output slot with the same Datum, per spec.md
// §4.E's Constant<T> leaf.
type constantNode struct {
	base
	val value.Datum
}

func newConstant(val value.Datum) Node {
	return &constantNode{base: base{nodeType: ConstantNode, dataType: val.Type()}, val: val}
}

func (n *constantNode) Evaluate(in []record.Record, out []value.Datum) error {
	for i := range in {
		out[i] = n.val
	}
	return nil
}

func (n *constantNode) Filter(in []record.Record, out *record.Slice) (int, error) {
	return defaultFilter(n, in, out)
}

func (n *constantNode) Adjust(records []record.Record) error {
	return defaultAdjust(n, records)
}

// rowIDNode yields each record's own row id.
type rowIDNode struct{ base }

func newRowID() Node {
	return &rowIDNode{base{nodeType: RowIDNode, dataType: value.IntType}}
}

func (n *rowIDNode) Evaluate(in []record.Record, out []value.Datum) error {
	for i, r := range in {
		out[i] = value.FromInt(r.RowID)
	}
	return nil
}

func (n *rowIDNode) Filter(in []record.Record, out *record.Slice) (int, error) {
	return defaultFilter(n, in, out)
}

func (n *rowIDNode) Adjust(records []record.Record) error {
	return defaultAdjust(n, records)
}

// scoreNode yields each record's current score; adjust on it is a no-op
// since the record already carries that exact value.
type scoreNode struct{ base }

func newScore() Node {
	return &scoreNode{base{nodeType: ScoreNode, dataType: value.FloatType}}
}

func (n *scoreNode) Evaluate(in []record.Record, out []value.Datum) error {
	for i, r := range in {
		out[i] = value.FromFloat(r.Score)
	}
	return nil
}

func (n *scoreNode) Filter(in []record.Record, out *record.Slice) (int, error) {
	return defaultFilter(n, in, out)
}

func (n *scoreNode) Adjust(records []record.Record) error { return nil }

// columnNode reads column[records[i].row_id]. When the column is a
// reference column (Int or Vector<Int> pointed at another table) it
// exposes that table via ReferenceTable so the builder can open a
// dereference subexpression over it.
type columnNode struct {
	base
	col column.Column
}

func newColumn(col column.Column) Node {
	var refTable *column.Table
	if col.ReferenceTable() != nil {
		refTable = col.ReferenceTable()
	}
	return &columnNode{
		base: base{nodeType: ColumnNode, dataType: col.DataType(), refTable: refTable},
		col:  col,
	}
}

func (n *columnNode) Evaluate(in []record.Record, out []value.Datum) error {
	for i, r := range in {
		out[i] = n.col.Get(r.RowID)
	}
	return nil
}

// Filter overrides the default for a Bool column: this is the "column-on-
// Bool direct filter" performance override spec.md §4.E calls out.
func (n *columnNode) Filter(in []record.Record, out *record.Slice) (int, error) {
	if n.dataType != value.BoolType {
		return defaultFilter(n, in, out)
	}
	kept := 0
	for _, r := range in {
		if n.col.Get(r.RowID).AsBool().IsTrue() {
			out.Set(kept, r)
			kept++
		}
	}
	out.Shrink(kept)
	return kept, nil
}

func (n *columnNode) Adjust(records []record.Record) error {
	return defaultAdjust(n, records)
}
