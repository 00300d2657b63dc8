package column

import (
	"bytes"

	"github.com/groonga/grnxx-sub002/internal/value"
)

// NewBoolColumn creates a dense Bool column on t.
func NewBoolColumn(t *Table, name string) Column {
	c := newFixedColumn[value.Bool](
		name, value.BoolType, t,
		value.False, value.NA,
		value.FromBool,
		func(d value.Datum) value.Bool { return d.AsBool() },
		value.Bool.Match,
	)
	_ = t.addColumn(c, false)
	return c
}

// NewIntColumn creates a dense Int column. If referenceTable is non-nil,
// the column is a scalar reference column: its values must be N/A or a
// live row id of referenceTable (spec.md §3's reference-column invariant).
func NewIntColumn(t *Table, name string, isKey bool, referenceTable *Table) (Column, error) {
	c := newFixedColumn[value.Int](
		name, value.IntType, t,
		0, value.IntNA,
		value.FromInt,
		func(d value.Datum) value.Int { return d.AsInt() },
		value.Int.Match,
	)
	c.isKey = isKey
	c.referenceTable = referenceTable
	if err := t.addColumn(c, isKey); err != nil {
		return nil, err
	}
	return c, nil
}

func NewFloatColumn(t *Table, name string) Column {
	c := newFixedColumn[value.Float](
		name, value.FloatType, t,
		0, value.FloatNA,
		value.FromFloat,
		func(d value.Datum) value.Float { return d.AsFloat() },
		value.Float.Match,
	)
	_ = t.addColumn(c, false)
	return c
}

func NewGeoPointColumn(t *Table, name string) Column {
	c := newFixedColumn[value.GeoPoint](
		name, value.GeoPointType, t,
		value.GeoPoint{}, value.GeoPointNA,
		value.FromGeoPoint,
		func(d value.Datum) value.GeoPoint { return d.AsGeoPoint() },
		value.GeoPoint.Match,
	)
	_ = t.addColumn(c, false)
	return c
}

func NewVectorBoolColumn(t *Table, name string) Column {
	c := newFixedColumn[value.VectorBool](
		name, value.VectorBoolType, t,
		value.NewVectorBool(nil), value.VectorBoolNA,
		value.FromVectorBool,
		func(d value.Datum) value.VectorBool { return d.AsVectorBool() },
		func(a, b value.VectorBool) bool { return a == b },
	)
	_ = t.addColumn(c, false)
	return c
}

// NewTextColumn creates a variable-length Text column, backed by the
// header+arena encoding (Component B, spec.md §4.B). If isKey is set the
// column enforces uniqueness exactly like a key Int column.
func NewTextColumn(t *Table, name string, isKey bool) (Column, error) {
	c := newVarColumn[value.Text](
		name, value.TextType, t,
		value.TextNA,
		encodeText, decodeText, isTextNA,
		value.FromText,
		func(d value.Datum) value.Text { return d.AsText() },
		value.Text.Match,
	)
	c.isKey = isKey
	if err := t.addColumn(c, isKey); err != nil {
		return nil, err
	}
	return c, nil
}

func NewVectorIntColumn(t *Table, name string, referenceTable *Table) Column {
	c := newVarColumn[value.Vector[value.Int]](
		name, value.VectorIntType, t,
		value.NAVector[value.Int](),
		encodeVectorInt, decodeVectorInt, isVectorIntNA,
		value.FromVectorInt,
		func(d value.Datum) value.Vector[value.Int] { return d.AsVectorInt() },
		func(a, b value.Vector[value.Int]) bool {
			return bytes.Equal(encodeVectorInt(a), encodeVectorInt(b))
		},
	)
	c.referenceTable = referenceTable
	_ = t.addColumn(c, false)
	return c
}

func NewVectorFloatColumn(t *Table, name string) Column {
	c := newVarColumn[value.Vector[value.Float]](
		name, value.VectorFloatType, t,
		value.NAVector[value.Float](),
		encodeVectorFloat, decodeVectorFloat, isVectorFloatNA,
		value.FromVectorFloat,
		func(d value.Datum) value.Vector[value.Float] { return d.AsVectorFloat() },
		func(a, b value.Vector[value.Float]) bool {
			return bytes.Equal(encodeVectorFloat(a), encodeVectorFloat(b))
		},
	)
	_ = t.addColumn(c, false)
	return c
}

func NewVectorGeoPointColumn(t *Table, name string) Column {
	c := newVarColumn[value.Vector[value.GeoPoint]](
		name, value.VectorGeoPointType, t,
		value.NAVector[value.GeoPoint](),
		encodeVectorGeoPoint, decodeVectorGeoPoint, isVectorGeoPointNA,
		value.FromVectorGeoPoint,
		func(d value.Datum) value.Vector[value.GeoPoint] { return d.AsVectorGeoPoint() },
		func(a, b value.Vector[value.GeoPoint]) bool {
			return bytes.Equal(encodeVectorGeoPoint(a), encodeVectorGeoPoint(b))
		},
	)
	_ = t.addColumn(c, false)
	return c
}

func NewVectorTextColumn(t *Table, name string) Column {
	c := newVarColumn[value.Vector[value.Text]](
		name, value.VectorTextType, t,
		value.NAVector[value.Text](),
		encodeVectorText, decodeVectorText, isVectorTextNA,
		value.FromVectorText,
		func(d value.Datum) value.Vector[value.Text] { return d.AsVectorText() },
		func(a, b value.Vector[value.Text]) bool {
			return bytes.Equal(encodeVectorText(a), encodeVectorText(b))
		},
	)
	_ = t.addColumn(c, false)
	return c
}
