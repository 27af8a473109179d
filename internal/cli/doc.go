// Package cli holds the plain terminal presentation of rtcore: the run
// summary, the spinner shown while an image is encoded, and error reporting.
//
// # Naming Conventions
//
//   - Print* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
package cli
