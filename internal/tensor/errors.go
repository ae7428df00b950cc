package tensor

import "fmt"

// ShapeError reports operands whose shapes are incompatible for an operation.
//
// A ShapeError is always a caller bug, never a transient condition: the same
// operands fail the same way on every call, so callers must not retry.
type ShapeError struct {
	Op  string // operation that rejected the operands, e.g. "add", "concat"
	Msg string // what was incompatible
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return e.Op + ": " + e.Msg
}

// shapeErrorf builds a ShapeError for the given operation.
func shapeErrorf(op, format string, args ...any) *ShapeError {
	return &ShapeError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
