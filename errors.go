// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "fmt"

// Kind classifies an Error without pinning down its exact message, so
// callers can branch with errors.Is(err, delaunay.ErrOutOfRange) and similar.
type Kind int

const (
	// OutOfRange names a point index below FirstPointIndex that does not
	// match a known sentinel, or one beyond the PointSet's length.
	OutOfRange Kind = iota
	// DegenerateInput names a location step whose three orientation
	// tests all report collinearity; the core treats this as fatal.
	DegenerateInput
	// InvariantViolation names an A/V consistency failure found by
	// Context.Verify, or an insertion call on a Context that lacks the
	// structure it needs (AddPointBerg without a history arena,
	// AddPointBowyer without a seed triangulation).
	InvariantViolation
	// DuplicatePoint names an insertion of a point coincident with an
	// existing vertex, when the duplicate policy is PolicyError.
	DuplicatePoint
)

func (k Kind) String() string {
	switch k {
	case OutOfRange:
		return "OutOfRange"
	case DegenerateInput:
		return "DegenerateInput"
	case InvariantViolation:
		return "InvariantViolation"
	case DuplicatePoint:
		return "DuplicatePoint"
	default:
		return "Unknown"
	}
}

// Error is the error type surfaced by every public insertion and
// construction function. Predicates and map lookups never return one;
// they report sentinels instead (spec. error-propagation policy).
type Error struct {
	Kind Kind
	Func string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Func, e.Msg)
}

// Is supports errors.Is(err, ErrOutOfRange) and friends by comparing Kind
// values rather than requiring the exact Func/Msg to match.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel errors, one per Kind, for use with errors.Is. A *Error
// returned by this package is never one of these values directly (Func
// and Msg are always filled in by newError); comparison goes through
// Error.Is, which looks only at Kind.
var (
	ErrOutOfRange         error = &Error{Kind: OutOfRange}
	ErrDegenerateInput    error = &Error{Kind: DegenerateInput}
	ErrInvariantViolation error = &Error{Kind: InvariantViolation}
	ErrDuplicatePoint     error = &Error{Kind: DuplicatePoint}
)

func newError(kind Kind, fn, format string, args ...any) *Error {
	return &Error{Kind: kind, Func: fn, Msg: fmt.Sprintf(format, args...)}
}
