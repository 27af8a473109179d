package app

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/agbru/rtcore/internal/cli"
	"github.com/agbru/rtcore/internal/config"
	apperrors "github.com/agbru/rtcore/internal/errors"
	"github.com/agbru/rtcore/internal/format"
	"github.com/agbru/rtcore/internal/imageio"
	"github.com/agbru/rtcore/internal/logging"
	"github.com/agbru/rtcore/internal/metrics"
	"github.com/agbru/rtcore/internal/progress"
	"github.com/agbru/rtcore/internal/render"
	"github.com/agbru/rtcore/internal/tui"
	"github.com/agbru/rtcore/internal/ui"
	"github.com/agbru/rtcore/internal/vec"
)

// render dispatches on the configured precision.
func (a *Application) render(ctx context.Context, out io.Writer) error {
	if a.Config.Precision == config.PrecisionDouble {
		return renderAs[float64](ctx, a, out)
	}
	return renderAs[float32](ctx, a, out)
}

// renderAs runs the whole pipeline with components of type T.
func renderAs[T vec.Float](ctx context.Context, a *Application, out io.Writer) error {
	cfg := a.Config
	outFormat := imageio.FormatFor(cfg.OutputFile, cfg.Format)
	sampler, ok := render.SceneSampler[T](cfg.Scene, cfg.Width, cfg.Height)
	if !ok {
		return apperrors.ValidationError{Field: "scene", Message: "no sampler named " + cfg.Scene}
	}
	gamma := T(cfg.Gamma)

	if !cfg.Quiet && !cfg.TUI {
		cli.PrintRenderConfig(cfg, outFormat, out)
	}
	a.Logger.Debug("render started",
		logging.Int("width", cfg.Width),
		logging.Int("height", cfg.Height),
		logging.String("precision", cfg.Precision),
		logging.String("scene", cfg.Scene),
		logging.String("format", outFormat),
		logging.Int("workers", cfg.Workers),
		logging.Float64("gamma", cfg.Gamma),
	)

	before := a.memory.Snapshot()
	start := time.Now()

	var err error
	if outFormat == imageio.FormatPPM {
		err = renderText(ctx, a, out, sampler, gamma)
	} else {
		err = renderPNG(ctx, a, out, sampler, gamma)
	}
	if err != nil {
		return apperrors.WrapError(err, "%s scene", cfg.Scene)
	}

	elapsed := time.Since(start)
	a.Metrics.ObserveRender(cfg.Precision, elapsed)
	a.Metrics.AddPixels(cfg.Width * cfg.Height)

	delta := a.memory.Snapshot().Since(before)
	a.Logger.Debug("render finished",
		logging.Duration("elapsed", elapsed),
		logging.String("allocated", format.FormatBytes(delta.Allocated)),
		logging.Uint64("gc_cycles", uint64(delta.GCCycles)),
	)

	if !cfg.Quiet {
		cli.PrintSaved(out, cfg.OutputFile, elapsed)
	}
	return nil
}

func renderPNG[T vec.Float](ctx context.Context, a *Application, out io.Writer, sampler render.Sampler[T], gamma T) error {
	cfg := a.Config
	img := render.NewImage(cfg.Width, cfg.Height)
	err := a.withProgress(ctx, out, func(ctx context.Context, reporter render.Reporter) error {
		return render.Fill(ctx, img, sampler, gamma, cfg.Workers, reporter)
	})
	if err != nil {
		return err
	}

	showSpinner := !cfg.Quiet && !cfg.TUI
	err = cli.WithSpinner(out, "Encoding "+cfg.OutputFile, showSpinner, func() error {
		return imageio.WritePNG(cfg.OutputFile, img)
	})
	if err != nil {
		a.Metrics.IncWriteErrors(imageio.FormatPNG)
	}
	return err
}

func renderText[T vec.Float](ctx context.Context, a *Application, out io.Writer, sampler render.Sampler[T], gamma T) error {
	cfg := a.Config
	tf, err := imageio.CreateText(cfg.OutputFile)
	if err != nil {
		a.Metrics.IncWriteErrors(imageio.FormatPPM)
		return err
	}

	err = a.withProgress(ctx, out, func(ctx context.Context, reporter render.Reporter) error {
		return render.WriteText(ctx, tf, cfg.Width, cfg.Height, sampler, gamma, reporter)
	})
	if closeErr := tf.Close(); err == nil {
		err = closeErr
	}
	if err != nil && ctx.Err() == nil {
		a.Metrics.IncWriteErrors(imageio.FormatPPM)
	}
	return err
}

// withProgress runs fn with the progress sink selected by the configuration:
// nothing in quiet mode, the bubbletea view with --tui, the plain bar
// otherwise. Every reported row is also counted in the metrics.
func (a *Application) withProgress(ctx context.Context, out io.Writer, fn tui.RenderFunc) error {
	cfg := a.Config
	switch {
	case cfg.Quiet:
		return fn(ctx, rowCounter{next: render.Nop{}, rec: a.Metrics})

	case cfg.TUI:
		return tui.Run(ctx, out, cfg.Label, cfg.Height, func(ctx context.Context, reporter render.Reporter) error {
			return fn(ctx, rowCounter{next: reporter, rec: a.Metrics})
		})

	default:
		w := bufio.NewWriter(out)
		bar := progress.New(w, cfg.Height, cfg.Label,
			progress.WithWidth(cfg.BarWidth),
			progress.WithMinRefresh(cfg.Refresh),
			progress.WithTheme(ui.GetCurrentTheme()),
		)
		err := fn(ctx, rowCounter{next: bar, rec: a.Metrics})
		if closeErr := bar.Close(); closeErr != nil {
			a.Logger.Debug("progress output failed", logging.Err(closeErr))
		}
		a.Metrics.SetRedraws(bar.Redraws())
		return err
	}
}

// rowCounter forwards progress and counts rendered rows.
type rowCounter struct {
	next render.Reporter
	rec  *metrics.Recorder
}

func (r rowCounter) Advance(n int) {
	r.next.Advance(n)
	r.rec.AddRows(n)
}
