// Package render fills images from a per-pixel color function.
//
// Rows are the unit of work and of progress: every completed row is reported
// once through a Reporter. Fill renders rows concurrently into an in-memory
// RGB8 buffer, WriteText streams them in order as plain-text pixels.
package render
