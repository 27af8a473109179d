// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// image output, timeouts) and for carrying the underlying cause.
//
// The numeric packages never return errors: out-of-range colors are clamped
// and divisions by zero follow IEEE 754. Errors only arise at the edges of the
// program, when parsing the command line or writing the image.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types carrying a cause implement Unwrap() to support errors.Is() and errors.As().
package apperrors
