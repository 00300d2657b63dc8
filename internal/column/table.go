// Package column implements Component B: tables, typed columns and the
// catalog interface (spec.md §6 "Catalog") expression nodes and the
// builder resolve names against.
//
// Grounded on the teacher's internal/dataframe.DataFrame (a name -> Series
// map plus a row count) for the Table/Column split, generalized from
// dataframe's untyped []interface{} columns to spec.md's typed, N/A-aware
// storage with key and reference-column constraints.
package column

import (
	"sort"

	"github.com/groonga/grnxx-sub002/internal/engineopts"
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// Table owns a monotonically increasing, never-reused set of row ids and
// a name -> Column catalog.
type Table struct {
	name       string
	nextRowID  value.Int
	live       map[value.Int]bool
	columns    map[string]Column
	columnList []string
	keyColumn  Column
}

func NewTable(name string) *Table {
	return &Table{
		name:      name,
		nextRowID: 1,
		live:      make(map[value.Int]bool),
		columns:   make(map[string]Column),
	}
}

func (t *Table) Name() string { return t.name }

// TestRow reports whether rowID is currently live (spec.md §6 Catalog).
func (t *Table) TestRow(rowID value.Int) bool {
	return t.live[rowID]
}

func (t *Table) MaxRowID() value.Int { return t.nextRowID - 1 }

// FindColumn resolves a column by name (spec.md §6 Catalog).
func (t *Table) FindColumn(name string) (Column, error) {
	c, ok := t.columns[name]
	if !ok {
		return nil, grnxxerr.NewNotFound("Table.FindColumn", name).WithTable(t.name)
	}
	return c, nil
}

func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columnList))
	for i, name := range t.columnList {
		out[i] = t.columns[name]
	}
	return out
}

func (t *Table) KeyColumn() Column { return t.keyColumn }

func (t *Table) addColumn(c Column, isKey bool) error {
	if _, exists := t.columns[c.columnName()]; exists {
		return grnxxerr.NewInvalidOperation("Table.AddColumn", "duplicate column name "+c.columnName()).WithTable(t.name)
	}
	if isKey {
		if t.keyColumn != nil {
			return grnxxerr.NewInvalidOperation("Table.AddColumn", "table already has a key column").WithTable(t.name)
		}
		t.keyColumn = c
	}
	t.columns[c.columnName()] = c
	t.columnList = append(t.columnList, c.columnName())
	return nil
}

// InsertRow allocates the next row id and returns it. It sets no key
// value; InsertRowWithKey does that for tables with a key column.
// This is a test-harness / catalog operation (spec.md §6), not part of the
// evaluation hot path.
func (t *Table) InsertRow() value.Int {
	id := t.nextRowID
	t.nextRowID++
	t.live[id] = true
	for _, name := range t.columnList {
		t.columns[name].growTo(id)
	}
	return id
}

// InsertRowWithKey inserts a row and immediately sets its key column,
// failing with KeyDuplicate if keyValue already exists.
func (t *Table) InsertRowWithKey(keyValue value.Datum) (value.Int, error) {
	if t.keyColumn == nil {
		return value.IntNA, grnxxerr.NewInvalidOperation("Table.InsertRowWithKey", "table has no key column").WithTable(t.name)
	}
	if existing := t.keyColumn.FindOne(keyValue); !existing.IsNA() {
		return value.IntNA, grnxxerr.NewKeyDuplicate("Table.InsertRowWithKey", "").WithTable(t.name).WithColumn(t.keyColumn.columnName())
	}
	id := t.InsertRow()
	if err := t.keyColumn.Set(id, keyValue); err != nil {
		return value.IntNA, err
	}
	return id, nil
}

// RemoveRow permanently invalidates rowID (it is never reused) and unsets
// that row in every column of this table. It does not touch columns that
// refer to rowID; the caller clears those via ClearReferrers, since
// reference columns may live on other tables.
func (t *Table) RemoveRow(rowID value.Int) error {
	if !t.live[rowID] {
		return grnxxerr.NewNotFound("Table.RemoveRow", "row not live").WithTable(t.name)
	}
	delete(t.live, rowID)
	for _, name := range t.columnList {
		t.columns[name].unsetNoRollback(rowID)
	}
	return nil
}

// ClearReferrers is called after RemoveRow on the *referenced* table, for
// every column elsewhere in the schema whose ReferenceTable() is t, to
// enforce spec.md §3's reference-column invariant.
func (t *Table) ClearReferrers(referrers []Column, removedRowID value.Int) {
	for _, c := range referrers {
		c.clearReferences(removedRowID)
	}
}

// CreateCursor yields every live row in ascending (or, with
// options.OrderType == Reverse, descending) row-id order.
func (t *Table) CreateCursor(options engineopts.CursorOptions) record.Cursor {
	ids := make([]value.Int, 0, len(t.live))
	for id := range t.live {
		ids = append(ids, id)
	}
	reverse := options.OrderType == engineopts.Reverse
	sort.Slice(ids, func(i, j int) bool {
		if reverse {
			return ids[i] > ids[j]
		}
		return ids[i] < ids[j]
	})

	offset := options.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > len(ids) {
		offset = len(ids)
	}
	ids = ids[offset:]
	if options.Limit >= 0 && options.Limit < len(ids) {
		ids = ids[:options.Limit]
	}
	return &tableCursor{ids: ids}
}

type tableCursor struct {
	ids []value.Int
	pos int
}

func (c *tableCursor) Read(max int, out *record.Set) (int, error) {
	remaining := len(c.ids) - c.pos
	if remaining <= 0 {
		return 0, nil
	}
	n := max
	if n > remaining {
		n = remaining
	}
	for i := 0; i < n; i++ {
		out.Push(record.Record{RowID: c.ids[c.pos+i], Score: 0})
	}
	c.pos += n
	return n, nil
}
