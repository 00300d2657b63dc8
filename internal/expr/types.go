// Package expr implements Component E (the typed expression tree) and
// Component G (the vectorised block-by-block driver that sits on top of
// it), folded together the way a tree-walking evaluator and its driver
// naturally share one package.
//
// Grounded on the teacher's internal/compiler tree-walking visitor shape
// (one Go type per syntax-tree node, a single entry point per verb), here
// generalized from "compile statement to bytecode" to "evaluate node over
// a block of records" for each of filter/adjust/evaluate.
package expr

import "github.com/groonga/grnxx-sub002/internal/value"

// NodeType distinguishes the four node kinds every node reports itself
// as; Operator nodes additionally carry an Op (unary or binary).
type NodeType int

const (
	ConstantNode NodeType = iota
	RowIDNode
	ScoreNode
	ColumnNode
	OperatorNode
)

func (t NodeType) String() string {
	switch t {
	case ConstantNode:
		return "CONSTANT"
	case RowIDNode:
		return "ROW_ID"
	case ScoreNode:
		return "SCORE"
	case ColumnNode:
		return "COLUMN"
	case OperatorNode:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// UnaryOp is the unary operator set of spec.md §4.E. POSITIVE is not a
// member: the builder resolves it to the identity, inserting no node.
type UnaryOp int

const (
	LogicalNot UnaryOp = iota
	BitwiseNot
	Negate
	ToInt
	ToFloat
)

// BinaryOp is the binary operator set of spec.md §4.E.
type BinaryOp int

const (
	LogicalAnd BinaryOp = iota
	LogicalOr
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	Plus
	Minus
	Multiplication
	Division
	Modulus
	StartsWith
	EndsWith
	Contains
	Subscript
)

func orderable(dt value.DataType) bool {
	return dt.Orderable()
}
