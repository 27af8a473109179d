//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks

package render

// Reporter receives progress as rows complete. Fill calls Advance from
// several goroutines at once, so implementations must be safe for concurrent
// use.
type Reporter interface {
	Advance(n int)
}

// Nop is a Reporter that discards progress.
type Nop struct{}

// Advance does nothing.
func (Nop) Advance(int) {}
