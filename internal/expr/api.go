package expr

import (
	"github.com/groonga/grnxx-sub002/internal/column"
	"github.com/groonga/grnxx-sub002/internal/engineopts"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// This file is the package's builder-facing surface: internal/builder
// constructs Node trees exclusively through these exported functions,
// never by reaching into the unexported concrete node types above.

func NewConstant(val value.Datum) Node { return newConstant(val) }

func NewRowID() Node { return newRowID() }

func NewScore() Node { return newScore() }

func NewColumn(col column.Column) Node { return newColumn(col) }

func NewUnary(op UnaryOp, child Node) (Node, error) { return newUnary(op, child) }

func NewBinary(op BinaryOp, left, right Node) (Node, error) { return newBinary(op, left, right) }

func NewDereference(parent, child Node) (Node, error) { return newDereference(parent, child) }

func NewVectorDereference(parent, child Node, blockSize int) (Node, error) {
	return newVectorDereference(parent, child, blockSize)
}

// NewExpression releases root as an immutable Expression, capturing
// options.BlockSize, per spec.md §4.F's release(options).
func NewExpression(root Node, options engineopts.ExpressionOptions) *Expression {
	return newExpression(root, options)
}
