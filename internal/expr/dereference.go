package expr

import (
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// dereferenceNode implements spec.md §4.E's `Int.child`: parent evaluates
// to a row id in another table; child is a subexpression rooted at that
// table. Evaluating it constructs a temporary record set of
// (target_row_id, input.score) and recurses child over it.
type dereferenceNode struct {
	base
	parent Node
	child  Node
}

// newDereference requires parent to expose a non-nil ReferenceTable, per
// spec.md §4.E's typing rule for dereference.
func newDereference(parent, child Node) (Node, error) {
	if parent.ReferenceTable() == nil {
		return nil, grnxxerr.NewInvalidOperation("Builder.EndSubexpression", "dereference requires a reference-column operand")
	}
	if parent.DataType() != value.IntType {
		return nil, grnxxerr.NewTypeMismatch("Builder.EndSubexpression", "scalar dereference requires an Int reference operand")
	}
	return &dereferenceNode{
		base:   base{nodeType: OperatorNode, dataType: child.DataType(), refTable: child.ReferenceTable()},
		parent: parent,
		child:  child,
	}, nil
}

func (n *dereferenceNode) Evaluate(in []record.Record, out []value.Datum) error {
	targets := make([]value.Datum, len(in))
	if err := n.parent.Evaluate(in, targets); err != nil {
		return err
	}
	subRecords := make([]record.Record, len(in))
	for i, r := range in {
		subRecords[i] = record.Record{RowID: targets[i].AsInt(), Score: r.Score}
	}
	return n.child.Evaluate(subRecords, out)
}

func (n *dereferenceNode) Filter(in []record.Record, out *record.Slice) (int, error) {
	return defaultFilter(n, in, out)
}

func (n *dereferenceNode) Adjust(records []record.Record) error {
	return defaultAdjust(n, records)
}

// vectorDereferenceNode implements `Vector<Int>.child`: for each input
// record, the output is a Vector<T> whose i-th element is child evaluated
// at the i-th target row id, sharing the input's score. Results are
// materialised into a growing pool of backing arrays (result arenas, per
// spec.md §5) so the Vector<T>s returned from Evaluate stay valid for as
// long as the owning Expression is.
type vectorDereferenceNode struct {
	base
	parent    Node
	child     Node
	blockSize int
	pool      [][]value.Datum
}

func newVectorDereference(parent, child Node, blockSize int) (Node, error) {
	if parent.ReferenceTable() == nil {
		return nil, grnxxerr.NewInvalidOperation("Builder.EndSubexpression", "dereference requires a reference-column operand")
	}
	if parent.DataType() != value.VectorIntType {
		return nil, grnxxerr.NewTypeMismatch("Builder.EndSubexpression", "vector dereference requires a Vector<Int> reference operand")
	}
	return &vectorDereferenceNode{
		base:      base{nodeType: OperatorNode, dataType: elementTypeToVector(child.DataType())},
		parent:    parent,
		child:     child,
		blockSize: blockSize,
	}, nil
}

func elementTypeToVector(et value.DataType) value.DataType {
	switch et {
	case value.BoolType:
		return value.VectorBoolType
	case value.IntType:
		return value.VectorIntType
	case value.FloatType:
		return value.VectorFloatType
	case value.GeoPointType:
		return value.VectorGeoPointType
	case value.TextType:
		return value.VectorTextType
	default:
		return value.Invalid
	}
}

func (n *vectorDereferenceNode) Evaluate(in []record.Record, out []value.Datum) error {
	targets := make([]value.Datum, len(in))
	if err := n.parent.Evaluate(in, targets); err != nil {
		return err
	}
	for i, r := range in {
		vec := targets[i].AsVectorInt()
		if vec.IsNA() {
			out[i] = value.NA_(n.dataType)
			continue
		}
		elems := vec.Slice()
		subRecords := make([]record.Record, len(elems))
		for j, rid := range elems {
			subRecords[j] = record.Record{RowID: rid, Score: r.Score}
		}
		results := make([]value.Datum, len(elems))
		if err := n.child.Evaluate(subRecords, results); err != nil {
			return err
		}
		n.pool = append(n.pool, results)
		out[i] = packVector(n.dataType, results)
	}
	return nil
}

// packVector assembles a Vector<T> Datum from a flat []value.Datum slice
// of homogeneous element type, as produced per-record by vector
// dereference.
func packVector(vt value.DataType, elems []value.Datum) value.Datum {
	switch vt {
	case value.VectorIntType:
		out := make([]value.Int, len(elems))
		for i, e := range elems {
			out[i] = e.AsInt()
		}
		return value.FromVectorInt(value.NewVector(out))
	case value.VectorFloatType:
		out := make([]value.Float, len(elems))
		for i, e := range elems {
			out[i] = e.AsFloat()
		}
		return value.FromVectorFloat(value.NewVector(out))
	case value.VectorGeoPointType:
		out := make([]value.GeoPoint, len(elems))
		for i, e := range elems {
			out[i] = e.AsGeoPoint()
		}
		return value.FromVectorGeoPoint(value.NewVector(out))
	case value.VectorTextType:
		out := make([]value.Text, len(elems))
		for i, e := range elems {
			out[i] = e.AsText()
		}
		return value.FromVectorText(value.NewVector(out))
	case value.VectorBoolType:
		bits := make([]bool, len(elems))
		for i, e := range elems {
			bits[i] = e.AsBool().IsTrue()
		}
		return value.FromVectorBool(value.NewVectorBool(bits))
	default:
		return value.Datum{}
	}
}

func (n *vectorDereferenceNode) Filter(in []record.Record, out *record.Slice) (int, error) {
	return defaultFilter(n, in, out)
}

func (n *vectorDereferenceNode) Adjust(records []record.Record) error {
	return defaultAdjust(n, records)
}
