package bits

import "fmt"

// ErrorKind categorizes the type of error
type ErrorKind int

const (
	ErrorWidthMismatch ErrorKind = iota
	ErrorNonRepresentable
	ErrorOutOfBounds
	ErrorOverlap
	ErrorDivision
	ErrorParseEmpty
	ErrorParseInvalidChar
	ErrorParseOverflow
	ErrorAllocation
)

// String returns the string representation of an error kind
func (k ErrorKind) String() string {
	names := []string{
		"width mismatch", "non-representable", "out of bounds", "overlap",
		"division by zero", "empty parse input", "invalid parse character",
		"parse overflow", "allocation failure",
	}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Error represents a failed Bits operation, carrying the operation name
// and the failure category
type Error struct {
	Op      string
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bits.%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("bits.%s: %s: %s", e.Op, e.Kind, e.Message)
}

// newError creates a new operation error
func newError(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{
		Op:      op,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewError creates an operation error on behalf of a collaborator layer
// that reports through the same error vocabulary
func NewError(op string, kind ErrorKind, format string, args ...any) *Error {
	return newError(op, kind, format, args...)
}

// KindOf extracts the ErrorKind from an error produced by this package.
// The second return is false when err is nil or foreign.
func KindOf(err error) (ErrorKind, bool) {
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}

// widthMismatch builds the width mismatch error shared by every
// width-checked operation
func widthMismatch(op string, want, got int) *Error {
	return newError(op, ErrorWidthMismatch, "receiver width %d, argument width %d", want, got)
}
