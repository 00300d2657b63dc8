package column

import (
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/index"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// fixedColumn stores one fixed-size typed value per row in a contiguous
// slice, indexed directly by row id (slot 0 unused, matching the
// 1-based row ids spec.md §3 describes). It covers Bool, Int, Float,
// GeoPoint and Vector<Bool>: every type whose N/A encoding already fits
// in a single in-band value, so no separate header+arena is needed.
type fixedColumn[T any] struct {
	name           string
	dataType       value.DataType
	table          *Table
	isKey          bool
	referenceTable *Table
	data           []T
	defaultVal     T
	naVal          T

	toDatum   func(T) value.Datum
	fromDatum func(value.Datum) T
	equalRaw  func(a, b T) bool

	indexes []*index.Tree
}

func newFixedColumn[T any](
	name string, dt value.DataType, table *Table,
	defaultVal, naVal T,
	toDatum func(T) value.Datum, fromDatum func(value.Datum) T, equalRaw func(a, b T) bool,
) *fixedColumn[T] {
	maxID := int(table.MaxRowID())
	data := make([]T, maxID+1)
	for i := range data {
		data[i] = defaultVal
	}
	return &fixedColumn[T]{
		name: name, dataType: dt, table: table,
		defaultVal: defaultVal, naVal: naVal,
		data:      data,
		toDatum:   toDatum,
		fromDatum: fromDatum,
		equalRaw:  equalRaw,
	}
}

func (c *fixedColumn[T]) columnName() string            { return c.name }
func (c *fixedColumn[T]) DataType() value.DataType       { return c.dataType }
func (c *fixedColumn[T]) Table() *Table                  { return c.table }
func (c *fixedColumn[T]) IsKey() bool                    { return c.isKey }
func (c *fixedColumn[T]) ReferenceTable() *Table          { return c.referenceTable }
func (c *fixedColumn[T]) Indexes() []*index.Tree          { return c.indexes }

func (c *fixedColumn[T]) growTo(id value.Int) {
	n := int(id) + 1
	if n <= len(c.data) {
		return
	}
	grown := make([]T, n)
	copy(grown, c.data)
	for i := len(c.data); i < n; i++ {
		grown[i] = c.defaultVal
	}
	c.data = grown
}

func (c *fixedColumn[T]) rawGet(rowID value.Int) T {
	i := int(rowID)
	if i < 0 || i >= len(c.data) {
		return c.defaultVal
	}
	return c.data[i]
}

func (c *fixedColumn[T]) Get(rowID value.Int) value.Datum {
	return c.toDatum(c.rawGet(rowID))
}

func (c *fixedColumn[T]) validate(v value.Datum) (T, error) {
	if v.Type() != c.dataType {
		return c.naVal, grnxxerr.NewTypeMismatch("Column.Set", "expected "+c.dataType.String()+", got "+v.Type().String()).WithColumn(c.name)
	}
	return c.fromDatum(v), nil
}

// Set implements spec.md §4.B's protocol: validate, update indexes (with
// rollback on failure), remove old index entries, then write.
func (c *fixedColumn[T]) Set(rowID value.Int, v value.Datum) error {
	raw, err := c.validate(v)
	if err != nil {
		return err
	}
	if c.isKey {
		if any(raw) != nil && !c.equalRaw(raw, c.naVal) {
			if existing := c.FindOne(v); !existing.IsNA() && existing != rowID {
				return grnxxerr.NewKeyDuplicate("Column.Set", "").WithTable(c.table.name).WithColumn(c.name)
			}
		} else {
			return grnxxerr.NewInvalidOperation("Column.Set", "key column cannot be N/A").WithTable(c.table.name).WithColumn(c.name)
		}
	}
	if c.referenceTable != nil {
		if rid, ok := any(raw).(value.Int); ok && !rid.IsNA() {
			if !c.referenceTable.TestRow(rid) {
				return grnxxerr.NewInvalidReference("Column.Set", "").WithTable(c.table.name).WithColumn(c.name)
			}
		}
	}

	old := c.rawGet(rowID)
	oldDatum := c.toDatum(old)
	newDatum := c.toDatum(raw)

	if err := indexSet(c.indexes, rowID, newDatum); err != nil {
		return err
	}
	indexRemove(c.indexes, rowID, oldDatum)

	c.growTo(rowID)
	c.data[int(rowID)] = raw
	return nil
}

func (c *fixedColumn[T]) SetDefaultValue(rowID value.Int) error {
	if c.isKey {
		return grnxxerr.NewInvalidOperation("Column.SetDefaultValue", "disallowed on key column").WithTable(c.table.name).WithColumn(c.name)
	}
	return c.Set(rowID, c.toDatum(c.defaultVal))
}

func (c *fixedColumn[T]) Unset(rowID value.Int) error {
	old := c.rawGet(rowID)
	indexRemove(c.indexes, rowID, c.toDatum(old))
	if int(rowID) < len(c.data) {
		c.data[int(rowID)] = c.defaultVal
	}
	return nil
}

func (c *fixedColumn[T]) unsetNoRollback(rowID value.Int) {
	_ = c.Unset(rowID)
}

func (c *fixedColumn[T]) FindOne(v value.Datum) value.Int {
	if len(c.indexes) > 0 {
		return c.indexes[0].FindOne(v)
	}
	raw, err := c.validate(v)
	if err != nil {
		return value.IntNA
	}
	for i, d := range c.data {
		if i == 0 {
			continue
		}
		if c.equalRaw(d, raw) {
			return value.Int(i)
		}
	}
	return value.IntNA
}

func (c *fixedColumn[T]) CreateIndex(name string) (*index.Tree, error) {
	idx := index.New(name, c.dataType)
	for i, d := range c.data {
		if i == 0 {
			continue
		}
		idx.Insert(value.Int(i), c.toDatum(d))
	}
	c.indexes = append(c.indexes, idx)
	return idx, nil
}

func (c *fixedColumn[T]) clearReferences(removedRowID value.Int) {
	rid, ok := any(removedRowID).(value.Int)
	_ = rid
	_ = ok
	for i, d := range c.data {
		if i == 0 {
			continue
		}
		if r, ok := any(d).(value.Int); ok && r == removedRowID {
			indexRemove(c.indexes, value.Int(i), c.toDatum(d))
			c.data[i] = c.naVal
		}
	}
}
