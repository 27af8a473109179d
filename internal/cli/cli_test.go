package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/rtcore/internal/config"
	"github.com/agbru/rtcore/internal/ui"
)

// MockSpinner for testing
type MockSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.suffix = suffix
}

func TestWithSpinner(t *testing.T) {
	mock := &MockSpinner{}
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return mock }
	defer func() { newSpinner = orig }()

	called := false
	err := WithSpinner(&bytes.Buffer{}, "Encoding PNG", true, func() error {
		called = true
		if !mock.started || mock.stopped {
			t.Error("spinner should be running while fn executes")
		}
		return errors.New("encode failed")
	})

	if !called {
		t.Fatal("fn was not called")
	}
	if err == nil || err.Error() != "encode failed" {
		t.Errorf("WithSpinner should return fn's error, got %v", err)
	}
	if !mock.stopped {
		t.Error("spinner should be stopped after fn returns")
	}
	if mock.suffix != " Encoding PNG" {
		t.Errorf("unexpected suffix %q", mock.suffix)
	}
}

func TestWithSpinner_Disabled(t *testing.T) {
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner {
		t.Error("no spinner should be created when disabled")
		return &MockSpinner{}
	}
	defer func() { newSpinner = orig }()

	var out bytes.Buffer
	if err := WithSpinner(&out, "x", false, func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("disabled spinner wrote %q", out.String())
	}
}

func TestPrintRenderConfig(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(ui.ClassicTheme)

	cfg := config.AppConfig{
		Width: 320, Height: 200, OutputFile: "res/out.png",
		Precision: config.PrecisionDouble, Gamma: 2.2, Workers: 4,
	}
	var out bytes.Buffer
	PrintRenderConfig(cfg, "png", &out)

	got := out.String()
	for _, want := range []string{"320x200", "res/out.png (png)", "double precision", "gamma 2.2", "4 workers"} {
		if !strings.Contains(got, want) {
			t.Errorf("output should contain %q, got %q", want, got)
		}
	}
}

func TestPrintSaved(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	PrintSaved(&out, "res/output.png", 1500*time.Microsecond)

	got := out.String()
	if !strings.Contains(got, "Image written:") || !strings.Contains(got, "res/output.png") || !strings.Contains(got, "1ms") {
		t.Errorf("unexpected output %q", got)
	}
}

func TestPrintError(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	PrintError(&out, nil)
	if out.Len() != 0 {
		t.Errorf("nil error should print nothing, got %q", out.String())
	}

	PrintError(&out, errors.New("cannot write image"))
	if !strings.Contains(out.String(), "Error:") || !strings.Contains(out.String(), "cannot write image") {
		t.Errorf("unexpected output %q", out.String())
	}
}
