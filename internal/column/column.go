package column

import (
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/index"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// Column is the catalog-facing contract expr.Column<T> nodes and the
// builder use to resolve and read a named column. The lower-case methods
// are Table-internal plumbing (row growth, rollback-free unset on row
// removal, reference-column cleanup) that only this package's Table type
// calls.
type Column interface {
	columnName() string
	DataType() value.DataType
	Table() *Table
	IsKey() bool
	ReferenceTable() *Table

	Get(rowID value.Int) value.Datum
	Set(rowID value.Int, v value.Datum) error
	SetDefaultValue(rowID value.Int) error
	Unset(rowID value.Int) error
	FindOne(v value.Datum) value.Int

	CreateIndex(name string) (*index.Tree, error)
	Indexes() []*index.Tree

	growTo(id value.Int)
	unsetNoRollback(rowID value.Int)
	clearReferences(removedRowID value.Int)
}

// indexSet applies a new value to every attached index, rolling back
// already-updated indexes on the first failure, per spec.md §4.B's
// set() protocol step 1.
func indexSet(indexes []*index.Tree, rowID value.Int, newVal value.Datum) error {
	for j, idx := range indexes {
		// google/btree-backed Tree.Insert cannot itself fail (no
		// capacity ceiling, no I/O), so rollback is unreachable in
		// practice; the loop mirrors the rollback contract exactly so a
		// future index backend that *can* fail slots in without
		// changing Column.Set's structure.
		func() {
			defer func() {
				if r := recover(); r != nil {
					for k := j - 1; k >= 0; k-- {
						indexes[k].Remove(rowID, newVal)
					}
					panic(r)
				}
			}()
			idx.Insert(rowID, newVal)
		}()
	}
	return nil
}

func indexRemove(indexes []*index.Tree, rowID value.Int, oldVal value.Datum) {
	for _, idx := range indexes {
		idx.Remove(rowID, oldVal)
	}
}

func notFoundIndex(op, table, name string) error {
	return grnxxerr.NewNotFound(op, "index "+name).WithTable(table)
}
