package corelex

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by corelex operations.
var (
	// ErrNoMatch indicates a discipline did not find an acceptable match.
	// Not normally returned directly; exposed for callers that want to
	// compare against it via errors.Is on wrapped results.
	ErrNoMatch = errors.New("corelex: no match")

	// ErrNoPattern indicates an operation required a bound pattern but
	// none has been set via BorrowPattern/OwnPattern.
	ErrNoPattern = errors.New("corelex: no pattern bound")

	// ErrBadLess indicates Less was called with n > the current match
	// length or n < 0.
	ErrBadLess = errors.New("corelex: less(n) out of range")
)

// PatternError wraps a failure to compile or bind a pattern.
//
// Example:
//
//	_, err := corelex.OwnPattern(`(`)
//	var perr *corelex.PatternError
//	if errors.As(err, &perr) {
//	    log.Printf("bad pattern %q: %v", perr.Source, perr.Err)
//	}
type PatternError struct {
	Source string
	Err    error
}

func (e *PatternError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("corelex: compile pattern %q: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("corelex: compile pattern: %v", e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// BufferError reports a non-fatal buffer-level failure, such as an
// Source.Get call returning an opaque read error that is not EOF.
type BufferError struct {
	Op  string
	Err error
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("corelex: buffer %s: %v", e.Op, e.Err)
}

func (e *BufferError) Unwrap() error {
	return e.Err
}
