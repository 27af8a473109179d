package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/rtcore/internal/render"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the render goroutine can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// Reporter implements render.Reporter by forwarding progress to the TUI.
type Reporter struct {
	ref *programRef
}

// Verify interface compliance.
var _ render.Reporter = (*Reporter)(nil)

// Advance sends an AdvanceMsg to the program. Negative steps are dropped.
func (r *Reporter) Advance(n int) {
	if n <= 0 {
		return
	}
	r.ref.Send(AdvanceMsg{N: n})
}
