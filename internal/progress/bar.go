package progress

import (
	"io"
	"math/bits"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agbru/rtcore/internal/ui"
)

const (
	// DefaultWidth is the number of cells in the bar.
	DefaultWidth = 50
	// DefaultMinRefresh bounds repaints to roughly 30 per second.
	DefaultMinRefresh = 33 * time.Millisecond

	fillCell  = '#'
	emptyCell = ' '
)

// flusher is implemented by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Bar is a counter rendered as a single, continuously rewritten terminal line.
// All methods are safe for concurrent use.
type Bar struct {
	mu sync.Mutex

	out   io.Writer
	label string
	theme ui.Theme
	now   func() time.Time

	max        int
	counter    int
	width      int
	filled     int
	minRefresh time.Duration
	lastDraw   time.Time

	line    strings.Builder
	redraws int
	closed  bool
	err     error
}

// Option configures a Bar during construction.
type Option func(*Bar)

// WithWidth sets the number of cells. Values below 1 are raised to 1.
func WithWidth(width int) Option {
	return func(b *Bar) { b.width = width }
}

// WithMinRefresh sets the interval after which an update repaints even if the
// fill level did not change.
func WithMinRefresh(d time.Duration) Option {
	return func(b *Bar) { b.minRefresh = d }
}

// WithTheme sets the colors. The default is the active ui theme.
func WithTheme(t ui.Theme) Option {
	return func(b *Bar) { b.theme = t }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Bar) { b.now = now }
}

// New creates a bar counting up to total and renders it once. total and the
// width are floored at 1.
func New(out io.Writer, total int, label string, opts ...Option) *Bar {
	b := &Bar{
		out:        out,
		label:      label,
		theme:      ui.GetCurrentTheme(),
		now:        time.Now,
		max:        total,
		width:      DefaultWidth,
		minRefresh: DefaultMinRefresh,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.max = atLeastOne(b.max)
	b.width = atLeastOne(b.width)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastDraw = b.now()
	b.redraw(true)
	return b
}

// Advance adds n to the counter, saturating at the maximum.
func (b *Bar) Advance(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n >= b.max-b.counter {
		b.store(b.max)
		return
	}
	b.store(b.counter + n)
}

// Increment advances the counter by one.
func (b *Bar) Increment() { b.Advance(1) }

// Set moves the counter to min(value, max). Once the maximum is reached the
// bar is finished and lower values are ignored.
func (b *Bar) Set(value int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store(value)
}

// Update is an alias of Set.
func (b *Bar) Update(value int) { b.Set(value) }

// Finish moves the counter to the maximum.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store(b.max)
}

// Close ends the line and flushes the sink. It is safe to call more than once;
// only the first call writes. The first write or flush error seen by the bar
// is returned.
func (b *Bar) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return b.err
	}
	b.closed = true
	b.write("\n")
	b.flush()
	return b.err
}

// Current returns the counter value.
func (b *Bar) Current() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counter
}

// Max returns the maximum counter value.
func (b *Bar) Max() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.max
}

// Redraws returns the number of times the line was painted, including the
// initial render.
func (b *Bar) Redraws() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.redraws
}

// store applies a new counter value and repaints if needed. b.mu must be held.
func (b *Bar) store(value int) {
	if b.counter == b.max {
		return
	}
	b.counter = min(max(value, 0), b.max)

	filled := scale(b.counter, b.width, b.max)
	now := b.now()
	if filled != b.filled || now.Sub(b.lastDraw) >= b.minRefresh || b.counter == b.max {
		b.filled = filled
		b.redraw(false)
		b.lastDraw = now
	}
}

// redraw rewrites the current line. b.mu must be held.
func (b *Bar) redraw(force bool) {
	if b.closed {
		return
	}
	t := b.theme
	percent := scale(b.counter, 100, b.max)

	b.line.Reset()
	b.line.WriteByte('\r')
	b.line.WriteString(b.label)
	b.line.WriteString(t.Frame + "  [" + t.Reset)
	b.line.WriteString(t.Fill)
	for i := 0; i < b.width; i++ {
		if i < b.filled {
			b.line.WriteByte(fillCell)
		} else {
			b.line.WriteByte(emptyCell)
		}
	}
	b.line.WriteString(t.Reset)
	b.line.WriteString(t.Frame + "] " + t.Reset)
	b.line.WriteString(t.Percent + strconv.Itoa(percent) + "%" + t.Reset)

	b.write(b.line.String())
	b.redraws++
	if force || b.counter == b.max {
		b.flush()
	}
}

func (b *Bar) write(s string) {
	if _, err := io.WriteString(b.out, s); err != nil && b.err == nil {
		b.err = err
	}
}

func (b *Bar) flush() {
	f, ok := b.out.(flusher)
	if !ok {
		return
	}
	if err := f.Flush(); err != nil && b.err == nil {
		b.err = err
	}
}

// scale returns value*n/total without overflowing. 0 <= value <= total and
// n >= 0 must hold.
func scale(value, n, total int) int {
	hi, lo := bits.Mul64(uint64(value), uint64(n))
	q, _ := bits.Div64(hi, lo, uint64(total))
	return int(q)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
