// Package progress provides a thread-safe, rate-limited terminal progress bar
// for long-running loops.
//
// A Bar is created for one unit of work and shared by pointer with every
// goroutine that reports into it. Updates are cheap: the bar repaints only
// when the number of filled cells changes, when the refresh interval has
// elapsed, or when the work completes. Close must be called once the work is
// done so the cursor ends on a fresh line.
package progress
