// Package builder implements Component F: a stateful, stack-based
// constructor for expr.Node trees over one table's schema, with nested
// subexpression scoping for dereference.
//
// Grounded on the teacher's internal/compiler's operand-stack shape
// (hoisting_compiler.go tracks a scope stack the same way this tracks a
// builder stack), generalized from "compile one function body" to "build
// one expression, possibly nested one table deep via dereference".
package builder

import (
	"github.com/groonga/grnxx-sub002/internal/column"
	"github.com/groonga/grnxx-sub002/internal/engineopts"
	"github.com/groonga/grnxx-sub002/internal/expr"
	"github.com/groonga/grnxx-sub002/internal/grnxxerr"
	"github.com/groonga/grnxx-sub002/internal/value"
)

// Builder accumulates operand nodes on a stack, rooted at one table's
// schema, with at most one nested subexpression builder active at a time.
type Builder struct {
	table  *column.Table
	stack  []expr.Node
	nested *Builder
}

// New creates a builder rooted at table.
func New(table *column.Table) *Builder {
	return &Builder{table: table}
}

func (b *Builder) active() *Builder {
	if b.nested != nil {
		return b.nested.active()
	}
	return b
}

func (b *Builder) PushConstant(val value.Datum) {
	a := b.active()
	a.stack = append(a.stack, expr.NewConstant(val))
}

func (b *Builder) PushRowID() {
	a := b.active()
	a.stack = append(a.stack, expr.NewRowID())
}

func (b *Builder) PushScore() {
	a := b.active()
	a.stack = append(a.stack, expr.NewScore())
}

// PushColumn resolves name against the builder's own table (or the
// innermost nested builder's table, when a subexpression is open).
func (b *Builder) PushColumn(name string) error {
	a := b.active()
	col, err := a.table.FindColumn(name)
	if err != nil {
		return err
	}
	a.stack = append(a.stack, expr.NewColumn(col))
	return nil
}

func (b *Builder) pop() (expr.Node, error) {
	a := b.active()
	if len(a.stack) == 0 {
		return nil, grnxxerr.NewInvalidOperation("Builder.PushOperator", "operand stack is empty")
	}
	n := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	return n, nil
}

func (b *Builder) push(n expr.Node) {
	a := b.active()
	a.stack = append(a.stack, n)
}

// PushOperatorUnary pops 1 operand and pushes the result node, per
// spec.md §4.F. POSITIVE is not handled here; PushPositive resolves it to
// the identity.
func (b *Builder) PushOperatorUnary(op expr.UnaryOp) error {
	child, err := b.pop()
	if err != nil {
		return err
	}
	n, err := expr.NewUnary(op, child)
	if err != nil {
		return err
	}
	b.push(n)
	return nil
}

// PushPositive implements the POSITIVE unary operator: a no-op pass
// through per spec.md §4.E's unary operator table ("identity, no node
// inserted").
func (b *Builder) PushPositive() error {
	child, err := b.pop()
	if err != nil {
		return err
	}
	if child.DataType() != value.IntType && child.DataType() != value.FloatType {
		return grnxxerr.NewTypeMismatch("Builder.PushOperator", "POSITIVE requires Int or Float, got "+child.DataType().String())
	}
	b.push(child)
	return nil
}

func (b *Builder) PushOperatorBinary(op expr.BinaryOp) error {
	right, err := b.pop()
	if err != nil {
		return err
	}
	left, err := b.pop()
	if err != nil {
		return err
	}
	n, err := expr.NewBinary(op, left, right)
	if err != nil {
		return err
	}
	b.push(n)
	return nil
}

// BeginSubexpression requires the top of the active stack to be a node
// whose ReferenceTable() is non-nil, then opens a nested Builder rooted
// at that table. All subsequent pushes go to the nested builder until
// EndSubexpression. Per spec.md §9, the reference node stays logically
// available to the outer stack (we simply leave it unpopped) so
// EndSubexpression can re-pair it with the inner result.
func (b *Builder) BeginSubexpression() error {
	a := b.active()
	if len(a.stack) == 0 {
		return grnxxerr.NewInvalidOperation("Builder.BeginSubexpression", "operand stack is empty")
	}
	top := a.stack[len(a.stack)-1]
	refTable := top.ReferenceTable()
	if refTable == nil {
		return grnxxerr.NewInvalidOperation("Builder.BeginSubexpression", "top of stack is not a reference-column operand")
	}
	a.nested = New(refTable)
	return nil
}

// EndSubexpression requires the innermost nested builder to hold exactly
// one node; pops it as the child of a dereference with the previously
// pushed reference node (now popped off the outer stack), using
// options.BlockSize for the vector-dereference case.
func (b *Builder) EndSubexpression(options engineopts.ExpressionOptions) error {
	parentOwner := b.findNestedOwner()
	if parentOwner == nil {
		return grnxxerr.NewInvalidOperation("Builder.EndSubexpression", "no open subexpression")
	}
	inner := parentOwner.nested
	if len(inner.stack) != 1 {
		return grnxxerr.NewInvalidOperation("Builder.EndSubexpression", "subexpression must hold exactly one node")
	}
	child := inner.stack[0]

	if len(parentOwner.stack) == 0 {
		return grnxxerr.NewInvalidOperation("Builder.EndSubexpression", "no pending reference operand")
	}
	parent := parentOwner.stack[len(parentOwner.stack)-1]
	parentOwner.stack = parentOwner.stack[:len(parentOwner.stack)-1]
	parentOwner.nested = nil

	var result expr.Node
	var err error
	switch parent.DataType() {
	case value.IntType:
		result, err = expr.NewDereference(parent, child)
	case value.VectorIntType:
		result, err = expr.NewVectorDereference(parent, child, options.BlockSize)
	default:
		err = grnxxerr.NewTypeMismatch("Builder.EndSubexpression", "reference operand must be Int or Vector<Int>")
	}
	if err != nil {
		return err
	}
	parentOwner.stack = append(parentOwner.stack, result)
	return nil
}

// findNestedOwner returns the builder whose .nested is the innermost
// (deepest) open subexpression, or nil if none is open.
func (b *Builder) findNestedOwner() *Builder {
	if b.nested == nil {
		return nil
	}
	if inner := b.nested.findNestedOwner(); inner != nil {
		return inner
	}
	return b
}

// Clear discards every operand on the active stack (and any open
// subexpression), returning the builder to its initial state.
func (b *Builder) Clear() {
	b.stack = nil
	b.nested = nil
}

// Release requires the stack to hold exactly one node and returns it as
// an immutable Expression, capturing options.BlockSize.
func (b *Builder) Release(options engineopts.ExpressionOptions) (*expr.Expression, error) {
	if b.nested != nil {
		return nil, grnxxerr.NewInvalidOperation("Builder.Release", "subexpression still open")
	}
	if len(b.stack) != 1 {
		return nil, grnxxerr.NewInvalidOperation("Builder.Release", "operand stack must hold exactly one node")
	}
	root := b.stack[0]
	return expr.NewExpression(root, options), nil
}
