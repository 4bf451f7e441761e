// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vs

import (
	"errors"
	"fmt"
)

// Error kinds. Every parse failure wraps exactly one of these.
var (
	// ErrFormat marks a malformed header or pick line.
	ErrFormat = errors.New("format error")

	// ErrSequence marks a shot marker out of order with the survey geometry.
	ErrSequence = errors.New("sequence error")

	// ErrRange marks a geophone pick outside the geophone spread.
	ErrRange = errors.New("range error")
)

// LineError reports where in the input a parse failure happened.
type LineError struct {
	// Line is the 1-based input line number.
	Line int
	// Err is one of ErrFormat, ErrSequence or ErrRange.
	Err error
	Msg string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Msg)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineErr(line int, kind error, format string, args ...any) *LineError {
	return &LineError{Line: line, Err: kind, Msg: fmt.Sprintf(format, args...)}
}
