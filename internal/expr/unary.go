package expr

import (
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

type unaryNode struct {
	base
	op    UnaryOp
	child Node
}

// newUnary validates the operator/argument-type combination from spec.md
// §4.E's unary operator table and returns the resulting node. POSITIVE is
// resolved by the builder to the identity before reaching here: it never
// becomes a node.
func newUnary(op UnaryOp, child Node) (Node, error) {
	argType := child.DataType()
	var resultType value.DataType
	switch op {
	case LogicalNot:
		if argType != value.BoolType {
			return nil, typeErr("LOGICAL_NOT", argType)
		}
		resultType = value.BoolType
	case BitwiseNot:
		switch argType {
		case value.BoolType, value.IntType:
			resultType = argType
		default:
			return nil, typeErr("BITWISE_NOT", argType)
		}
	case Negate:
		switch argType {
		case value.IntType, value.FloatType:
			resultType = argType
		default:
			return nil, typeErr("NEGATIVE", argType)
		}
	case ToInt:
		if argType != value.FloatType {
			return nil, typeErr("TO_INT", argType)
		}
		resultType = value.IntType
	case ToFloat:
		if argType != value.IntType {
			return nil, typeErr("TO_FLOAT", argType)
		}
		resultType = value.FloatType
	default:
		return nil, grnxxerr.NewInvalidOperation("Builder.PushOperator", "unknown unary operator")
	}
	return &unaryNode{base: base{nodeType: OperatorNode, dataType: resultType}, op: op, child: child}, nil
}

func typeErr(op string, got value.DataType) error {
	return grnxxerr.NewTypeMismatch("Builder.PushOperator", op+": invalid argument type "+got.String())
}

func (n *unaryNode) Evaluate(in []record.Record, out []value.Datum) error {
	args := make([]value.Datum, len(in))
	if err := n.child.Evaluate(in, args); err != nil {
		return err
	}
	for i, a := range args {
		out[i] = n.applyOne(a)
	}
	return nil
}

func (n *unaryNode) applyOne(a value.Datum) value.Datum {
	switch n.op {
	case LogicalNot:
		return value.FromBool(a.AsBool().Not())
	case BitwiseNot:
		if a.Type() == value.BoolType {
			return value.FromBool(a.AsBool().Not())
		}
		return value.FromInt(a.AsInt().Not())
	case Negate:
		if a.Type() == value.IntType {
			return value.FromInt(a.AsInt().Negate())
		}
		return value.FromFloat(a.AsFloat().Negate())
	case ToInt:
		return value.FromInt(a.AsFloat().ToInt())
	case ToFloat:
		return value.FromFloat(a.AsInt().ToFloat())
	default:
		return value.Datum{}
	}
}

// Filter overrides the default for LOGICAL_NOT per spec.md §4.E: filter
// the child, then keep the records of in whose row id did not survive the
// child's filter. Row ids within in are assumed distinct, which holds for
// every record set this core produces (§3: row ids are never reused and a
// cursor/filter never duplicates one).
func (n *unaryNode) Filter(in []record.Record, out *record.Slice) (int, error) {
	if n.op != LogicalNot {
		return defaultFilter(n, in, out)
	}
	childOut := make([]record.Record, len(in))
	copy(childOut, in)
	childSlice := record.SliceOf(childOut)
	childKept, err := n.child.Filter(in, &childSlice)
	if err != nil {
		return 0, err
	}
	selected := make(map[value.Int]bool, childKept)
	for i := 0; i < childKept; i++ {
		selected[childSlice.At(i).RowID] = true
	}
	kept := 0
	for _, r := range in {
		if !selected[r.RowID] {
			out.Set(kept, r)
			kept++
		}
	}
	out.Shrink(kept)
	return kept, nil
}

func (n *unaryNode) Adjust(records []record.Record) error {
	return defaultAdjust(n, records)
}
