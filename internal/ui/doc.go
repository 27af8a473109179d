// Package ui provides theme and color support for the application's user interface.
// It defines color schemes for the progress bar and status lines and decides
// whether the current output supports color at all.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between numeric code and presentation.
package ui
