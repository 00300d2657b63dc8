// Package value implements the scalar and vector value model described in
// SPEC_FULL.md Component A: Bool, Int, Float, GeoPoint and Text scalars plus
// their Vector<T> counterparts, every one of them carrying an explicit,
// in-band N/A (missing) encoding instead of a wrapper type.
//
// The shape follows the teacher's NaN-boxed internal/vmregister.Value: a
// single word per scalar with a reserved bit pattern standing for "no
// value" rather than an extra has-value flag. We use a tagged sum (Datum)
// rather than NaN-boxing a single 64-bit word across all ten data types,
// since spec.md's own design notes ask for a tagged enum over raw bit
// tricks once no single C++ union layout has to be matched byte-for-byte.
package value

// DataType enumerates every type a Datum, column or expression node can
// carry. Ordering matches SPEC_FULL.md's "10 data types" exactly: five
// scalars followed by their five vector counterparts.
type DataType uint8

const (
	Invalid DataType = iota
	BoolType
	IntType
	FloatType
	GeoPointType
	TextType
	VectorBoolType
	VectorIntType
	VectorFloatType
	VectorGeoPointType
	VectorTextType
)

func (t DataType) String() string {
	switch t {
	case BoolType:
		return "Bool"
	case IntType:
		return "Int"
	case FloatType:
		return "Float"
	case GeoPointType:
		return "GeoPoint"
	case TextType:
		return "Text"
	case VectorBoolType:
		return "Vector<Bool>"
	case VectorIntType:
		return "Vector<Int>"
	case VectorFloatType:
		return "Vector<Float>"
	case VectorGeoPointType:
		return "Vector<GeoPoint>"
	case VectorTextType:
		return "Vector<Text>"
	default:
		return "Invalid"
	}
}

// IsVector reports whether t is one of the five Vector<T> types.
func (t DataType) IsVector() bool {
	return t >= VectorBoolType && t <= VectorTextType
}

// Orderable reports whether LESS/LESS_EQUAL/GREATER/GREATER_EQUAL are
// defined between two values of this type (spec.md §4.E binary operator
// table: "orderable T x T"). Bool and GeoPoint only support
// EQUAL/NOT_EQUAL; vectors are never directly orderable.
func (t DataType) Orderable() bool {
	switch t {
	case IntType, FloatType, TextType:
		return true
	default:
		return false
	}
}
