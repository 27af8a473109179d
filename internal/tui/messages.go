package tui

import "time"

// AdvanceMsg reports N more completed work units.
type AdvanceMsg struct {
	N int
}

// RenderDoneMsg is sent once the render function has returned.
type RenderDoneMsg struct {
	Err error
}

// TickMsg refreshes the elapsed time display.
type TickMsg time.Time

// ContextCancelledMsg is sent when the run context is done.
type ContextCancelledMsg struct {
	Err error
}
