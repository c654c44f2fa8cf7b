// Package contfrac: sentinel error set.
// All user-triggered failures are reported through these sentinels and
// matched with errors.Is. Stream exhaustion is normal control flow inside the
// engines and never surfaces as an error by itself; it only becomes
// ErrUnbounded when a caller required a non-empty result.

package contfrac

import "errors"

var (
	// ErrUnbounded signals a mathematically infinite quantity: materializing
	// an empty convergent stream, splitting an empty coefficient stream, or
	// dividing by zero (rational or continued-fraction).
	ErrUnbounded = errors.New("contfrac: value is unbounded")

	// ErrInvalidInput is returned when a constructor receives a value outside
	// the recognized input set, a NaN/±Inf float, or a zero denominator.
	ErrInvalidInput = errors.New("contfrac: invalid construction input")

	// ErrInvalidBilinear is returned when a bihomographic transform is
	// requested with a negative denominator coefficient (e, f, g or h).
	// This is a construction precondition, never a mid-stream state.
	ErrInvalidBilinear = errors.New("contfrac: negative bilinear denominator coefficient")
)
