package expr

import (
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/record"
	"github.com/groonga/grnxx-sub002/internal/value"
)

type binaryNode struct {
	base
	op          BinaryOp
	left, right Node
}

// newBinary validates the operator/argument-type combination from
// spec.md §4.E's binary operator table. A binary operator whose arguments
// disagree on data type is always invalid: there is no implicit numeric
// conversion.
func newBinary(op BinaryOp, left, right Node) (Node, error) {
	lt, rt := left.DataType(), right.DataType()

	opName := binaryOpName(op)

	switch op {
	case LogicalAnd, LogicalOr:
		if lt != value.BoolType || rt != value.BoolType {
			return nil, grnxxerr.NewTypeMismatch("Builder.PushOperator", opName+" requires Bool x Bool")
		}
		return &binaryNode{base: base{nodeType: OperatorNode, dataType: value.BoolType}, op: op, left: left, right: right}, nil
	case Equal, NotEqual:
		if lt != rt {
			return nil, grnxxerr.NewTypeMismatch("Builder.PushOperator", opName+": operand type mismatch")
		}
		return &binaryNode{base: base{nodeType: OperatorNode, dataType: value.BoolType}, op: op, left: left, right: right}, nil
	case Less, LessEqual, Greater, GreaterEqual:
		if lt != rt || !orderable(lt) {
			return nil, grnxxerr.NewTypeMismatch("Builder.PushOperator", opName+": operands must be the same orderable type")
		}
		return &binaryNode{base: base{nodeType: OperatorNode, dataType: value.BoolType}, op: op, left: left, right: right}, nil
	case BitwiseAnd, BitwiseOr, BitwiseXor:
		if lt != rt || (lt != value.BoolType && lt != value.IntType) {
			return nil, grnxxerr.NewTypeMismatch("Builder.PushOperator", opName+" requires Bool x Bool or Int x Int")
		}
		return &binaryNode{base: base{nodeType: OperatorNode, dataType: lt}, op: op, left: left, right: right}, nil
	case Plus, Minus, Multiplication, Division, Modulus:
		if lt != rt || (lt != value.IntType && lt != value.FloatType) {
			return nil, grnxxerr.NewTypeMismatch("Builder.PushOperator", opName+" requires Int x Int or Float x Float")
		}
		return &binaryNode{base: base{nodeType: OperatorNode, dataType: lt}, op: op, left: left, right: right}, nil
	case StartsWith, EndsWith, Contains:
		if lt != value.TextType || rt != value.TextType {
			return nil, grnxxerr.NewTypeMismatch("Builder.PushOperator", opName+" requires Text x Text")
		}
		return &binaryNode{base: base{nodeType: OperatorNode, dataType: value.BoolType}, op: op, left: left, right: right}, nil
	case Subscript:
		if !lt.IsVector() || rt != value.IntType {
			return nil, grnxxerr.NewTypeMismatch("Builder.PushOperator", "SUBSCRIPT requires Vector<T> x Int")
		}
		return &binaryNode{base: base{nodeType: OperatorNode, dataType: elementType(lt)}, op: op, left: left, right: right}, nil
	default:
		return nil, grnxxerr.NewInvalidOperation("Builder.PushOperator", "unknown binary operator")
	}
}

func elementType(vt value.DataType) value.DataType {
	switch vt {
	case value.VectorBoolType:
		return value.BoolType
	case value.VectorIntType:
		return value.IntType
	case value.VectorFloatType:
		return value.FloatType
	case value.VectorGeoPointType:
		return value.GeoPointType
	case value.VectorTextType:
		return value.TextType
	default:
		return value.Invalid
	}
}

func binaryOpName(op BinaryOp) string {
	switch op {
	case LogicalAnd:
		return "LOGICAL_AND"
	case LogicalOr:
		return "LOGICAL_OR"
	case Equal:
		return "EQUAL"
	case NotEqual:
		return "NOT_EQUAL"
	case Less:
		return "LESS"
	case LessEqual:
		return "LESS_EQUAL"
	case Greater:
		return "GREATER"
	case GreaterEqual:
		return "GREATER_EQUAL"
	case BitwiseAnd:
		return "BITWISE_AND"
	case BitwiseOr:
		return "BITWISE_OR"
	case BitwiseXor:
		return "BITWISE_XOR"
	case Plus:
		return "PLUS"
	case Minus:
		return "MINUS"
	case Multiplication:
		return "MULTIPLICATION"
	case Division:
		return "DIVISION"
	case Modulus:
		return "MODULUS"
	case StartsWith:
		return "STARTS_WITH"
	case EndsWith:
		return "ENDS_WITH"
	case Contains:
		return "CONTAINS"
	case Subscript:
		return "SUBSCRIPT"
	default:
		return "UNKNOWN"
	}
}

func (n *binaryNode) Evaluate(in []record.Record, out []value.Datum) error {
	if n.op == LogicalAnd {
		return n.evaluateLogicalAnd(in, out)
	}
	largs := make([]value.Datum, len(in))
	rargs := make([]value.Datum, len(in))
	if err := n.left.Evaluate(in, largs); err != nil {
		return err
	}
	if err := n.right.Evaluate(in, rargs); err != nil {
		return err
	}
	for i := range in {
		out[i] = n.applyOne(largs[i], rargs[i])
	}
	return nil
}

func (n *binaryNode) applyOne(l, r value.Datum) value.Datum {
	switch n.op {
	case LogicalOr:
		return value.FromBool(l.AsBool().Or(r.AsBool()))
	case Equal:
		return value.FromBool(equalDatum(l, r))
	case NotEqual:
		return value.FromBool(equalDatum(l, r).Not())
	case Less, LessEqual, Greater, GreaterEqual:
		return value.FromBool(compareDatum(n.op, l, r))
	case BitwiseAnd:
		if l.Type() == value.BoolType {
			return value.FromBool(l.AsBool().And(r.AsBool()))
		}
		return value.FromInt(l.AsInt().And(r.AsInt()))
	case BitwiseOr:
		if l.Type() == value.BoolType {
			return value.FromBool(l.AsBool().Or(r.AsBool()))
		}
		return value.FromInt(l.AsInt().Or(r.AsInt()))
	case BitwiseXor:
		if l.Type() == value.BoolType {
			return value.FromBool(l.AsBool().Xor(r.AsBool()))
		}
		return value.FromInt(l.AsInt().Xor(r.AsInt()))
	case Plus:
		if l.Type() == value.IntType {
			return value.FromInt(l.AsInt().Add(r.AsInt()))
		}
		return value.FromFloat(l.AsFloat().Add(r.AsFloat()))
	case Minus:
		if l.Type() == value.IntType {
			return value.FromInt(l.AsInt().Sub(r.AsInt()))
		}
		return value.FromFloat(l.AsFloat().Sub(r.AsFloat()))
	case Multiplication:
		if l.Type() == value.IntType {
			return value.FromInt(l.AsInt().Mul(r.AsInt()))
		}
		return value.FromFloat(l.AsFloat().Mul(r.AsFloat()))
	case Division:
		if l.Type() == value.IntType {
			return value.FromInt(l.AsInt().Div(r.AsInt()))
		}
		return value.FromFloat(l.AsFloat().Div(r.AsFloat()))
	case Modulus:
		if l.Type() == value.IntType {
			return value.FromInt(l.AsInt().Mod(r.AsInt()))
		}
		return value.FromFloat(l.AsFloat().Mod(r.AsFloat()))
	case StartsWith:
		return value.FromBool(l.AsText().StartsWith(r.AsText()))
	case EndsWith:
		return value.FromBool(l.AsText().EndsWith(r.AsText()))
	case Contains:
		return value.FromBool(l.AsText().Contains(r.AsText()))
	case Subscript:
		return subscriptOne(n.left.DataType(), l, r.AsInt())
	default:
		return value.Datum{}
	}
}

func equalDatum(l, r value.Datum) value.Bool {
	switch l.Type() {
	case value.BoolType:
		return l.AsBool().Equal(r.AsBool())
	case value.IntType:
		return l.AsInt().Equal(r.AsInt())
	case value.FloatType:
		return l.AsFloat().Equal(r.AsFloat())
	case value.GeoPointType:
		return l.AsGeoPoint().Equal(r.AsGeoPoint())
	case value.TextType:
		return l.AsText().Equal(r.AsText())
	default:
		return value.NA
	}
}

func compareDatum(op BinaryOp, l, r value.Datum) value.Bool {
	switch l.Type() {
	case value.IntType:
		a, b := l.AsInt(), r.AsInt()
		switch op {
		case Less:
			return a.Less(b)
		case LessEqual:
			return a.LessEqual(b)
		case Greater:
			return a.Greater(b)
		default:
			return a.GreaterEqual(b)
		}
	case value.FloatType:
		a, b := l.AsFloat(), r.AsFloat()
		switch op {
		case Less:
			return a.Less(b)
		case LessEqual:
			return a.LessEqual(b)
		case Greater:
			return a.Greater(b)
		default:
			return a.GreaterEqual(b)
		}
	case value.TextType:
		a, b := l.AsText(), r.AsText()
		switch op {
		case Less:
			return a.Less(b)
		case LessEqual:
			return a.LessEqual(b)
		case Greater:
			return a.Greater(b)
		default:
			return a.GreaterEqual(b)
		}
	default:
		return value.NA
	}
}

func subscriptOne(vt value.DataType, v value.Datum, idx value.Int) value.Datum {
	switch vt {
	case value.VectorBoolType:
		return value.FromBool(v.AsVectorBool().Get(idx))
	case value.VectorIntType:
		e, ok := v.AsVectorInt().At(idx)
		if !ok {
			return value.FromInt(value.IntNA)
		}
		return value.FromInt(e)
	case value.VectorFloatType:
		e, ok := v.AsVectorFloat().At(idx)
		if !ok {
			return value.FromFloat(value.FloatNA)
		}
		return value.FromFloat(e)
	case value.VectorGeoPointType:
		e, ok := v.AsVectorGeoPoint().At(idx)
		if !ok {
			return value.FromGeoPoint(value.GeoPointNA)
		}
		return value.FromGeoPoint(e)
	case value.VectorTextType:
		e, ok := v.AsVectorText().At(idx)
		if !ok {
			return value.FromText(value.TextNA)
		}
		return value.FromText(e)
	default:
		return value.Datum{}
	}
}

// evaluateLogicalAnd implements spec.md §4.E's specified evaluate:
// evaluate arg1 over all records; select the records where arg1 is not
// strictly false into a compacted sub-record-set, fill arg2 over that
// sub-set, merge back by walking both in order.
func (n *binaryNode) evaluateLogicalAnd(in []record.Record, out []value.Datum) error {
	lvals := make([]value.Datum, len(in))
	if err := n.left.Evaluate(in, lvals); err != nil {
		return err
	}
	subRecords := make([]record.Record, 0, len(in))
	subIndex := make([]int, 0, len(in))
	for i, r := range in {
		if !lvals[i].AsBool().IsFalse() {
			subRecords = append(subRecords, r)
			subIndex = append(subIndex, i)
		}
	}
	rvals := make([]value.Datum, len(subRecords))
	if err := n.right.Evaluate(subRecords, rvals); err != nil {
		return err
	}
	rp := 0
	for i := range in {
		if lvals[i].AsBool().IsFalse() {
			out[i] = value.FromBool(value.False)
			continue
		}
		out[i] = value.FromBool(lvals[i].AsBool().And(rvals[rp].AsBool()))
		rp++
	}
	return nil
}

// Filter overrides the default for LOGICAL_AND/LOGICAL_OR per spec.md
// §4.E's specified short-circuiting filter algorithms.
func (n *binaryNode) Filter(in []record.Record, out *record.Slice) (int, error) {
	switch n.op {
	case LogicalAnd:
		return n.filterLogicalAnd(in, out)
	case LogicalOr:
		return n.filterLogicalOr(in, out)
	default:
		return defaultFilter(n, in, out)
	}
}

// filterLogicalAnd: arg1.filter(in, &mut out); arg2.filter(out, &mut out).
func (n *binaryNode) filterLogicalAnd(in []record.Record, out *record.Slice) (int, error) {
	scratch := make([]record.Record, len(in))
	copy(scratch, in)
	scratchSlice := record.SliceOf(scratch)
	kept, err := n.left.Filter(in, &scratchSlice)
	if err != nil {
		return 0, err
	}
	stage1 := scratchSlice.Raw()[:kept]
	stage1Slice := record.SliceOf(stage1)
	kept2, err := n.right.Filter(stage1, &stage1Slice)
	if err != nil {
		return 0, err
	}
	for i := 0; i < kept2; i++ {
		out.Set(i, stage1Slice.At(i))
	}
	out.Shrink(kept2)
	return kept2, nil
}

// filterLogicalOr evaluates arg1 as a filter; short-circuits when arg1
// selects none (run arg2 directly) or all (copy through); otherwise runs
// arg2's filter over arg1's false records and merges both true sets
// while preserving input order, per spec.md §4.E.
func (n *binaryNode) filterLogicalOr(in []record.Record, out *record.Slice) (int, error) {
	arg1Scratch := make([]record.Record, len(in))
	copy(arg1Scratch, in)
	arg1Slice := record.SliceOf(arg1Scratch)
	arg1Kept, err := n.left.Filter(in, &arg1Slice)
	if err != nil {
		return 0, err
	}
	if arg1Kept == 0 {
		return n.right.Filter(in, out)
	}
	if arg1Kept == len(in) {
		for i, r := range in {
			out.Set(i, r)
		}
		out.Shrink(len(in))
		return len(in), nil
	}

	trueSet := make(map[value.Int]bool, arg1Kept)
	for i := 0; i < arg1Kept; i++ {
		trueSet[arg1Slice.At(i).RowID] = true
	}
	falseRecords := make([]record.Record, 0, len(in)-arg1Kept)
	for _, r := range in {
		if !trueSet[r.RowID] {
			falseRecords = append(falseRecords, r)
		}
	}
	falseSlice := record.SliceOf(falseRecords)
	arg2Kept, err := n.right.Filter(falseRecords, &falseSlice)
	if err != nil {
		return 0, err
	}
	for i := 0; i < arg2Kept; i++ {
		trueSet[falseSlice.At(i).RowID] = true
	}
	kept := 0
	for _, r := range in {
		if trueSet[r.RowID] {
			out.Set(kept, r)
			kept++
		}
	}
	out.Shrink(kept)
	return kept, nil
}

func (n *binaryNode) Adjust(records []record.Record) error {
	return defaultAdjust(n, records)
}
