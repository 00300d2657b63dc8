package column

import (
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/index"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// varColumn stores one variable-length value per row as a header into a
// shared append-only arena (spec.md §4.B): Text and every Vector<T> other
// than Vector<Bool>, which is small and fixed-size enough to live in a
// fixedColumn instead.
type varColumn[T any] struct {
	name           string
	dataType       value.DataType
	table          *Table
	isKey          bool
	referenceTable *Table

	headers []header
	arena   arena

	encode  func(T) []byte
	decode  func([]byte) T
	isNAVal func(T) bool
	naVal   T

	toDatum   func(T) value.Datum
	fromDatum func(value.Datum) T
	equalRaw  func(a, b T) bool

	indexes []*index.Tree
}

func newVarColumn[T any](
	name string, dt value.DataType, table *Table,
	naVal T,
	encode func(T) []byte, decode func([]byte) T, isNAVal func(T) bool,
	toDatum func(T) value.Datum, fromDatum func(value.Datum) T, equalRaw func(a, b T) bool,
) *varColumn[T] {
	maxID := int(table.MaxRowID())
	headers := make([]header, maxID+1)
	for i := range headers {
		headers[i] = headerNA
	}
	return &varColumn[T]{
		name: name, dataType: dt, table: table,
		naVal: naVal,
		encode: encode, decode: decode, isNAVal: isNAVal,
		toDatum: toDatum, fromDatum: fromDatum, equalRaw: equalRaw,
		headers: headers,
	}
}

func (c *varColumn[T]) columnName() string       { return c.name }
func (c *varColumn[T]) DataType() value.DataType { return c.dataType }
func (c *varColumn[T]) Table() *Table            { return c.table }
func (c *varColumn[T]) IsKey() bool              { return c.isKey }
func (c *varColumn[T]) ReferenceTable() *Table    { return c.referenceTable }
func (c *varColumn[T]) Indexes() []*index.Tree    { return c.indexes }

func (c *varColumn[T]) growTo(id value.Int) {
	n := int(id) + 1
	if n <= len(c.headers) {
		return
	}
	grown := make([]header, n)
	copy(grown, c.headers)
	for i := len(c.headers); i < n; i++ {
		grown[i] = headerNA
	}
	c.headers = grown
}

func (c *varColumn[T]) rawGet(rowID value.Int) T {
	i := int(rowID)
	if i < 0 || i >= len(c.headers) {
		var zero T
		return zero
	}
	h := c.headers[i]
	if h.isNA() {
		return c.naVal
	}
	return c.decode(c.arena.read(h))
}

func (c *varColumn[T]) Get(rowID value.Int) value.Datum {
	return c.toDatum(c.rawGet(rowID))
}

func (c *varColumn[T]) validate(v value.Datum) (T, error) {
	if v.Type() != c.dataType {
		var zero T
		return zero, grnxxerr.NewTypeMismatch("Column.Set", "expected "+c.dataType.String()+", got "+v.Type().String()).WithColumn(c.name)
	}
	return c.fromDatum(v), nil
}

func (c *varColumn[T]) Set(rowID value.Int, v value.Datum) error {
	raw, err := c.validate(v)
	if err != nil {
		return err
	}
	if c.isKey {
		if c.isNAVal(raw) {
			return grnxxerr.NewInvalidOperation("Column.Set", "key column cannot be N/A").WithTable(c.table.name).WithColumn(c.name)
		}
		if existing := c.FindOne(v); !existing.IsNA() && existing != rowID {
			return grnxxerr.NewKeyDuplicate("Column.Set", "").WithTable(c.table.name).WithColumn(c.name)
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
	if c.isNAVal(raw) {
		c.headers[int(rowID)] = headerNA
		return nil
	}
	c.headers[int(rowID)] = c.arena.write(c.encode(raw))
	return nil
}

func (c *varColumn[T]) SetDefaultValue(rowID value.Int) error {
	if c.isKey {
		return grnxxerr.NewInvalidOperation("Column.SetDefaultValue", "disallowed on key column").WithTable(c.table.name).WithColumn(c.name)
	}
	c.growTo(rowID)
	indexRemove(c.indexes, rowID, c.toDatum(c.rawGet(rowID)))
	c.headers[int(rowID)] = headerNA
	return nil
}

func (c *varColumn[T]) Unset(rowID value.Int) error {
	indexRemove(c.indexes, rowID, c.toDatum(c.rawGet(rowID)))
	if int(rowID) < len(c.headers) {
		c.headers[int(rowID)] = headerNA
	}
	return nil
}

func (c *varColumn[T]) unsetNoRollback(rowID value.Int) {
	_ = c.Unset(rowID)
}

func (c *varColumn[T]) FindOne(v value.Datum) value.Int {
	if len(c.indexes) > 0 {
		return c.indexes[0].FindOne(v)
	}
	raw, err := c.validate(v)
	if err != nil {
		return value.IntNA
	}
	for i := range c.headers {
		if i == 0 {
			continue
		}
		if c.equalRaw(c.rawGet(value.Int(i)), raw) {
			return value.Int(i)
		}
	}
	return value.IntNA
}

func (c *varColumn[T]) CreateIndex(name string) (*index.Tree, error) {
	idx := index.New(name, c.dataType)
	for i := range c.headers {
		if i == 0 {
			continue
		}
		idx.Insert(value.Int(i), c.toDatum(c.rawGet(value.Int(i))))
	}
	c.indexes = append(c.indexes, idx)
	return idx, nil
}

// clearReferences implements spec.md §8 property 6 for Vector<Int>
// reference columns: removing a row compacts every vector that referenced
// it, rather than leaving a dangling row id or nulling the whole vector.
func (c *varColumn[T]) clearReferences(removedRowID value.Int) {
	if c.referenceTable == nil {
		return
	}
	for i := range c.headers {
		if i == 0 {
			continue
		}
		rowID := value.Int(i)
		raw := c.rawGet(rowID)
		vec, ok := any(raw).(value.Vector[value.Int])
		if !ok || vec.IsNA() {
			continue
		}
		elems := vec.Slice()
		filtered := make([]value.Int, 0, len(elems))
		changed := false
		for _, e := range elems {
			if e == removedRowID {
				changed = true
				continue
			}
			filtered = append(filtered, e)
		}
		if !changed {
			continue
		}
		newVec := value.NewVector(filtered)
		c.headers[i] = c.arena.write(c.encode(any(newVec).(T)))
	}
}
