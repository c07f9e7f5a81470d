// errors.go defines the package's fatal-invariant error type.

package chess

import "fmt"

// InvariantError reports a violated board invariant. RequireConsistent is
// the only function that returns it; move decoding and square indexing do
// not check their inputs and never produce it. Unlike malformed-input
// errors (FEN, coordinate moves) this is not expected to happen on any
// reachable code path and callers are expected to treat it as fatal.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string { return e.msg }

func invariantErrorf(format string, args ...interface{}) *InvariantError {
	return &InvariantError{msg: fmt.Sprintf(format, args...)}
}
