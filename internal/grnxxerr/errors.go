// Package grnxxerr is the error taxonomy shared by every core component:
// value, column, index, record, expr and builder all return *Error instead
// of ad-hoc fmt.Errorf strings so callers can branch on Kind.
package grnxxerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the taxonomy of structural failures the core can report. It does
// not cover arithmetic anomalies (overflow, div-by-zero, out-of-range cast):
// those are N/A values, not errors.
type Kind string

const (
	TypeMismatch     Kind = "TypeMismatch"
	InvalidOperation Kind = "InvalidOperation"
	NotFound         Kind = "NotFound"
	KeyDuplicate     Kind = "KeyDuplicate"
	InvalidReference Kind = "InvalidReference"
	OutOfMemory      Kind = "OutOfMemory"
)

// Error is the error type returned across the public API of every core
// package. Op names the failing call (e.g. "Column.Set", "Builder.PushOperator").
type Error struct {
	Kind    Kind
	Op      string
	Table   string
	Column  string
	Message string
	cause   error
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s: %s", e.Kind, e.Op)
	if e.Table != "" {
		s += fmt.Sprintf(" table=%s", e.Table)
	}
	if e.Column != "" {
		s += fmt.Sprintf(" column=%s", e.Column)
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.cause != nil {
		s += ": " + e.cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets errors.Is(err, grnxxerr.New(kind, "", "")) match on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

func Newf(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a lower-level cause (e.g. a scratch-buffer allocation
// failure) to a structural error, using pkg/errors so the cause keeps its
// own stack trace.
func Wrap(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, cause: errors.Wrap(cause, op)}
}

func (e *Error) WithTable(table string) *Error {
	e.Table = table
	return e
}

func (e *Error) WithColumn(column string) *Error {
	e.Column = column
	return e
}

func NewTypeMismatch(op, message string) *Error {
	return New(TypeMismatch, op, message)
}

func NewInvalidOperation(op, message string) *Error {
	return New(InvalidOperation, op, message)
}

func NewNotFound(op, message string) *Error {
	return New(NotFound, op, message)
}

func NewKeyDuplicate(op, message string) *Error {
	return New(KeyDuplicate, op, message)
}

func NewInvalidReference(op, message string) *Error {
	return New(InvalidReference, op, message)
}

func NewOutOfMemory(op string, cause error) *Error {
	return Wrap(OutOfMemory, op, cause)
}
