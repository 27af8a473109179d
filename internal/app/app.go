// Package app wires configuration, rendering, progress display and output
// into the rtcore command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/rtcore/internal/cli"
	"github.com/agbru/rtcore/internal/config"
	apperrors "github.com/agbru/rtcore/internal/errors"
	"github.com/agbru/rtcore/internal/logging"
	"github.com/agbru/rtcore/internal/metrics"
	"github.com/agbru/rtcore/internal/ui"
)

const tracerName = "github.com/agbru/rtcore/internal/app"

// Application represents the rtcore application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.Recorder

	memory *metrics.MemoryCollector
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = r }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "rtcore"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Config:    config.ApplyAdaptiveDefaults(cfg),
		ErrWriter: errWriter,
		memory:    metrics.NewMemoryCollector(),
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = defaultLogger(errWriter, cfg.NoColor)
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}
	return app, nil
}

// Run renders the image and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.Theme, a.Config.NoColor, fileOf(out))

	ctx, span := otel.Tracer(tracerName).Start(ctx, "rtcore.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("rtcore.precision", a.Config.Precision),
		attribute.String("rtcore.output", a.Config.OutputFile),
	)

	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	err := a.render(ctx, out)
	a.writeMetrics()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: "render", Limit: a.Config.Timeout}
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if apperrors.IsContextError(err) {
			a.Logger.Info("render interrupted", logging.Err(err))
		} else {
			a.Logger.Error("render failed", err, logging.String("output", a.Config.OutputFile))
		}
		cli.PrintError(a.ErrWriter, err)
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}

// writeMetrics dumps the recorder to the configured textfile. Failures are
// logged and do not change the exit code.
func (a *Application) writeMetrics() {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.Logger.Error("cannot write metrics", err, logging.String("path", a.Config.MetricsFile))
		return
	}
	a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// defaultLogger writes human-readable lines to terminals and JSON elsewhere.
func defaultLogger(w io.Writer, noColor bool) logging.Logger {
	f := fileOf(w)
	if !ui.IsTerminal(f) {
		return logging.NewLogger(w, "rtcore")
	}
	return logging.NewConsoleLogger(w, "rtcore", noColor || !ui.ColorSupported(f))
}

// fileOf returns w as an *os.File when it is one, for terminal detection.
func fileOf(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
