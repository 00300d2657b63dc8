package value

// Datum is the tagged-sum "any value of any of the 10 data types" used
// wherever the type is only known at runtime: builder constant pushes,
// Column.Get/Set, and every expression node's Evaluate, which reads and
// writes Datum values.
type Datum struct {
	typ DataType

	b  Bool
	i  Int
	f  Float
	g  GeoPoint
	t  Text
	vb VectorBool
	vi Vector[Int]
	vf Vector[Float]
	vg Vector[GeoPoint]
	vt Vector[Text]
}

func (d Datum) Type() DataType { return d.typ }

func FromBool(v Bool) Datum             { return Datum{typ: BoolType, b: v} }
func FromInt(v Int) Datum               { return Datum{typ: IntType, i: v} }
func FromFloat(v Float) Datum           { return Datum{typ: FloatType, f: v} }
func FromGeoPoint(v GeoPoint) Datum     { return Datum{typ: GeoPointType, g: v} }
func FromText(v Text) Datum             { return Datum{typ: TextType, t: v} }
func FromVectorBool(v VectorBool) Datum { return Datum{typ: VectorBoolType, vb: v} }
func FromVectorInt(v Vector[Int]) Datum { return Datum{typ: VectorIntType, vi: v} }
func FromVectorFloat(v Vector[Float]) Datum {
	return Datum{typ: VectorFloatType, vf: v}
}
func FromVectorGeoPoint(v Vector[GeoPoint]) Datum {
	return Datum{typ: VectorGeoPointType, vg: v}
}
func FromVectorText(v Vector[Text]) Datum {
	return Datum{typ: VectorTextType, vt: v}
}

func (d Datum) AsBool() Bool             { return d.b }
func (d Datum) AsInt() Int               { return d.i }
func (d Datum) AsFloat() Float           { return d.f }
func (d Datum) AsGeoPoint() GeoPoint     { return d.g }
func (d Datum) AsText() Text             { return d.t }
func (d Datum) AsVectorBool() VectorBool { return d.vb }
func (d Datum) AsVectorInt() Vector[Int] { return d.vi }
func (d Datum) AsVectorFloat() Vector[Float] {
	return d.vf
}
func (d Datum) AsVectorGeoPoint() Vector[GeoPoint] {
	return d.vg
}
func (d Datum) AsVectorText() Vector[Text] {
	return d.vt
}

// IsNA reports whether the contained value is the N/A of its type.
func (d Datum) IsNA() bool {
	switch d.typ {
	case BoolType:
		return d.b.IsNA()
	case IntType:
		return d.i.IsNA()
	case FloatType:
		return d.f.IsNA()
	case GeoPointType:
		return d.g.IsNA()
	case TextType:
		return d.t.IsNA()
	case VectorBoolType:
		return d.vb.IsNA()
	case VectorIntType:
		return d.vi.IsNA()
	case VectorFloatType:
		return d.vf.IsNA()
	case VectorGeoPointType:
		return d.vg.IsNA()
	case VectorTextType:
		return d.vt.IsNA()
	default:
		return true
	}
}

// NA_ returns the N/A Datum of the given type.
func NA_(typ DataType) Datum {
	switch typ {
	case BoolType:
		return FromBool(NA)
	case IntType:
		return FromInt(IntNA)
	case FloatType:
		return FromFloat(FloatNA)
	case GeoPointType:
		return FromGeoPoint(GeoPointNA)
	case TextType:
		return FromText(TextNA)
	case VectorBoolType:
		return FromVectorBool(VectorBoolNA)
	case VectorIntType:
		return FromVectorInt(NAVector[Int]())
	case VectorFloatType:
		return FromVectorFloat(NAVector[Float]())
	case VectorGeoPointType:
		return FromVectorGeoPoint(NAVector[GeoPoint]())
	case VectorTextType:
		return FromVectorText(NAVector[Text]())
	default:
		return Datum{}
	}
}
