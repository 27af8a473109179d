package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/rtcore/internal/format"
	"github.com/agbru/rtcore/internal/render"
	"github.com/agbru/rtcore/internal/ui"
)

// Layout constants for the progress view.
const (
	defaultBarWidth = 40
	minBarWidth     = 10
	maxBarWidth     = 80
	tickInterval    = 250 * time.Millisecond
)

// RenderFunc performs the work tracked by the view, reporting progress
// through reporter. It must return once ctx is done.
type RenderFunc func(ctx context.Context, reporter render.Reporter) error

// Model is the bubbletea model of the progress view.
type Model struct {
	label   string
	total   int
	current int

	bar    progress.Model
	help   help.Model
	keymap KeyMap

	start   time.Time
	elapsed time.Duration
	done    bool
	err     error

	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a progress view for total work units.
func NewModel(parentCtx context.Context, label string, total int) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		label:  label,
		total:  max(total, 1),
		bar:    newBar(),
		help:   help.New(),
		keymap: DefaultKeyMap(),
		start:  time.Now(),
		ctx:    ctx,
		cancel: cancel,
	}
}

func newBar() progress.Model {
	t := ui.GetCurrentTUITheme()
	if t.GradientFrom == "" {
		return progress.New(progress.WithWidth(defaultBarWidth), progress.WithFillCharacters('#', ' '))
	}
	return progress.New(progress.WithWidth(defaultBarWidth), progress.WithGradient(t.GradientFrom, t.GradientTo))
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-len(m.label)-4, minBarWidth), maxBarWidth)
		m.help.Width = msg.Width
		return m, nil

	case AdvanceMsg:
		if msg.N > 0 {
			m.current = min(m.current+msg.N, m.total)
		}
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		m.elapsed = time.Since(m.start)
		return m, tickCmd()

	case RenderDoneMsg:
		m.done = true
		m.err = msg.Err
		m.elapsed = time.Since(m.start)
		return m, tea.Quit

	case ContextCancelledMsg:
		if m.done {
			return m, nil
		}
		m.done = true
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// Percent returns the completed fraction in [0,1].
func (m Model) Percent() float64 {
	return float64(m.current) / float64(m.total)
}

// View renders the progress view.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("  ")
	b.WriteString(m.bar.ViewAs(m.Percent()))
	b.WriteString("\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d/%d", m.current, m.total)))
	b.WriteString(" ")
	b.WriteString(elapsedStyle.Render(format.FormatExecutionDuration(m.elapsed)))
	b.WriteString("\n")

	switch {
	case m.done && m.err != nil:
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	case m.done:
		b.WriteString(doneStyle.Render("✓ Done"))
		b.WriteString("\n")
	default:
		b.WriteString(m.help.View(m.keymap))
		b.WriteString("\n")
	}
	return b.String()
}

// Run shows the progress view on out while fn executes. It returns fn's
// error, or the program error when the view itself failed. Quitting the
// view cancels the context handed to fn; Run always waits for fn to return.
func Run(ctx context.Context, out io.Writer, label string, total int, fn RenderFunc) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, label, total)
	defer model.cancel()

	ref := &programRef{}
	p := tea.NewProgram(model, tea.WithOutput(out))
	// Inject the program reference before the render starts so Advance can Send.
	ref.SetProgram(p)

	result := make(chan error, 1)
	go func() {
		err := fn(model.ctx, &Reporter{ref: ref})
		ref.Send(RenderDoneMsg{Err: err})
		result <- err
	}()

	_, runErr := p.Run()
	model.cancel()
	if err := <-result; err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("progress view: %w", runErr)
	}
	return nil
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
