package app

import (
	"bytes"
	"context"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "github.com/agbru/rtcore/internal/errors"
	"github.com/agbru/rtcore/internal/logging"
	"github.com/agbru/rtcore/internal/metrics"
)

func newTestApp(t *testing.T, args ...string) (*Application, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var errBuf, logBuf bytes.Buffer
	logger := logging.NewStdLoggerAdapter(log.New(&logBuf, "", 0))
	application, err := New(append([]string{"rtcore"}, args...), &errBuf, WithLogger(logger))
	if err != nil {
		t.Fatalf("New failed: %v (%s)", err, errBuf.String())
	}
	return application, &errBuf, &logBuf
}

func TestNew_HelpError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"rtcore", "-h"}, &errBuf)
	if !IsHelpError(err) {
		t.Errorf("expected a help error, got %v", err)
	}
}

func TestNew_ConfigError(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := New([]string{"rtcore", "-precision", "quad"}, &errBuf)
	if err == nil || apperrors.ExitCode(err) != apperrors.ExitErrorConfig {
		t.Errorf("expected a config error, got %v", err)
	}
}

func TestNew_AdaptiveWorkers(t *testing.T) {
	application, _, _ := newTestApp(t, "-height", "2")
	if application.Config.Workers < 1 || application.Config.Workers > 2 {
		t.Errorf("workers should be resolved within [1, rows], got %d", application.Config.Workers)
	}
}

func TestRun_WritesPNG(t *testing.T) {
	for _, precision := range []string{"single", "double"} {
		t.Run(precision, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "res", "output.png")
			rec := metrics.NewRecorder()
			var errBuf bytes.Buffer
			application, err := New([]string{
				"rtcore", "-width", "32", "-height", "16", "-o", path,
				"-precision", precision, "-bar-width", "10", "-refresh", "0s",
			}, &errBuf, WithRecorder(rec), WithLogger(logging.NewStdLoggerAdapter(log.New(&errBuf, "", 0))))
			if err != nil {
				t.Fatal(err)
			}

			var out bytes.Buffer
			if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
				t.Fatalf("Run returned %d: %s", code, errBuf.String())
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
				t.Errorf("unexpected bounds %v", b)
			}

			got := out.String()
			if !strings.Contains(got, "Rendering") || !strings.Contains(got, "100%") {
				t.Errorf("progress bar should reach 100%%, got %q", got)
			}
			if !strings.Contains(got, "Image written:") {
				t.Errorf("output should announce the image, got %q", got)
			}
			if n, err := testutil.GatherAndCount(rec.Gatherer(), "rtcore_rows_rendered_total"); err != nil || n != 1 {
				t.Errorf("expected the rows counter to be exported, got %d series", n)
			}
		})
	}
}

func TestRun_QuietPPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.ppm")
	application, errBuf, _ := newTestApp(t, "-width", "2", "-height", "2", "-o", path, "-q")

	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d: %s", code, errBuf.String())
	}
	if out.Len() != 0 {
		t.Errorf("quiet mode should not write to stdout, got %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "P3\n2 2\n255\n0 0 0\n255 0 0\n0 255 0\n255 255 0\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestRun_SkyScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sky.png")
	application, errBuf, _ := newTestApp(t, "-scene", "sky", "-width", "16", "-height", "9", "-q", "-o", path)

	if code := application.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d: %s", code, errBuf.String())
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	_, _, b, _ := img.At(8, 0).RGBA()
	if b>>8 != 255 {
		t.Errorf("the sky should be saturated blue at the top, got %d", b>>8)
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	application, errBuf, logBuf := newTestApp(t, "-width", "4", "-height", "4", "-q", "-o", filepath.Join(blocker, "out.png"))

	code := application.Run(context.Background(), &bytes.Buffer{})
	if code != apperrors.ExitErrorOutput {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitErrorOutput, code)
	}
	if !strings.Contains(errBuf.String(), "cannot write image") {
		t.Errorf("stderr should explain the failure, got %q", errBuf.String())
	}
	if !strings.Contains(logBuf.String(), "render failed") {
		t.Errorf("the failure should be logged, got %q", logBuf.String())
	}
}

func TestRun_Canceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	application, _, logBuf := newTestApp(t, "-q", "-o", path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := application.Run(ctx, &bytes.Buffer{}); code != apperrors.ExitErrorCanceled {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitErrorCanceled, code)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("a canceled render should not write an image")
	}
	if !strings.Contains(logBuf.String(), "render interrupted") {
		t.Errorf("cancellation should be logged as an interruption, got %q", logBuf.String())
	}
}

func TestRun_Timeout(t *testing.T) {
	application, errBuf, _ := newTestApp(t, "-q", "-o", filepath.Join(t.TempDir(), "out.png"), "-timeout", "1ns")
	time.Sleep(time.Millisecond)

	if code := application.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorTimeout {
		t.Errorf("expected exit code %d, got %d (%s)", apperrors.ExitErrorTimeout, code, errBuf.String())
	}
}

func TestRun_UnknownSceneAfterParse(t *testing.T) {
	application, errBuf, _ := newTestApp(t, "-q", "-o", filepath.Join(t.TempDir(), "out.png"))
	application.Config.Scene = "cornell"

	if code := application.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorConfig {
		t.Errorf("expected exit code %d, got %d", apperrors.ExitErrorConfig, code)
	}
	if !strings.Contains(errBuf.String(), "cornell") {
		t.Errorf("stderr should name the scene, got %q", errBuf.String())
	}
}

func TestRun_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "rtcore.prom")
	application, errBuf, _ := newTestApp(t, "-width", "8", "-height", "8", "-q",
		"-o", filepath.Join(dir, "out.png"), "-metrics-file", metricsPath)

	if code := application.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d: %s", code, errBuf.String())
	}
	data, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"rtcore_rows_rendered_total 8", "rtcore_pixels_written_total 64"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics file should contain %q", want)
		}
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"--version"}, true},
		{[]string{"-width", "4", "-V"}, true},
		{[]string{"-version"}, true},
		{[]string{"--", "--version"}, false},
		{[]string{"-v"}, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%q) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.HasPrefix(out.String(), "rtcore "+Version) {
		t.Errorf("unexpected banner %q", out.String())
	}
}
