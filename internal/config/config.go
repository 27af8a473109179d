// Package config holds the command-line configuration of rtcore: the flag
// set, its defaults and the RTCORE_ environment overrides.
package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/rtcore/internal/errors"
	"github.com/agbru/rtcore/internal/render"
)

// EnvPrefix prefixes every environment variable read by ParseConfig.
const EnvPrefix = "RTCORE_"

// Default values, taken from the reference render.
const (
	DefaultWidth      = 256
	DefaultHeight     = 256
	DefaultOutput     = "res/output.png"
	DefaultLabel      = "Rendering"
	DefaultBarWidth   = 60
	DefaultRefresh    = 33 * time.Millisecond
	DefaultGamma      = 1.0
	DefaultPrecision  = PrecisionSingle
	DefaultTimeout    = 5 * time.Minute
	DefaultTheme      = "classic"
	DefaultScene      = "gradient"
	PrecisionSingle   = "single"
	PrecisionDouble   = "double"
	FormatPNG         = "png"
	FormatPPM         = "ppm"
	maxImageDimension = 1 << 15
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	Width       int
	Height      int
	OutputFile  string
	Format      string
	Scene       string
	Label       string
	BarWidth    int
	Refresh     time.Duration
	Gamma       float64
	Precision   string
	Workers     int
	Timeout     time.Duration
	Theme       string
	MetricsFile string
	Quiet       bool
	Verbose     bool
	TUI         bool
	NoColor     bool
}

// Validate checks the semantic consistency of the configuration parameters.
func (c AppConfig) Validate() error {
	if c.Width < 1 || c.Width > maxImageDimension {
		return apperrors.NewConfigError("width must be between 1 and %d, got %d", maxImageDimension, c.Width)
	}
	if c.Height < 1 || c.Height > maxImageDimension {
		return apperrors.NewConfigError("height must be between 1 and %d, got %d", maxImageDimension, c.Height)
	}
	if c.OutputFile == "" {
		return apperrors.NewConfigError("output path must not be empty")
	}
	if !(c.Gamma > 0) || math.IsInf(c.Gamma, 0) {
		return apperrors.NewConfigError("gamma must be a positive finite number, got %v", c.Gamma)
	}
	switch c.Precision {
	case PrecisionSingle, PrecisionDouble:
	default:
		return apperrors.NewConfigError("unknown precision %q (expected %s or %s)", c.Precision, PrecisionSingle, PrecisionDouble)
	}
	switch c.Format {
	case "", FormatPNG, FormatPPM:
	default:
		return apperrors.NewConfigError("unknown output format %q (expected %s or %s)", c.Format, FormatPNG, FormatPPM)
	}
	if !slices.Contains(render.Scenes, c.Scene) {
		return apperrors.NewConfigError("unknown scene %q (expected one of %s)", c.Scene, strings.Join(render.Scenes, ", "))
	}
	if c.BarWidth < 1 {
		return apperrors.NewConfigError("bar width must be at least 1, got %d", c.BarWidth)
	}
	if c.Refresh < 0 {
		return apperrors.NewConfigError("refresh interval must not be negative, got %s", c.Refresh)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must not be negative, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be strictly positive")
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("--quiet and --tui are mutually exclusive")
	}
	return nil
}

// ParseConfig parses the command-line arguments, applies RTCORE_ environment
// overrides for flags left unset, and validates the result.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintln(errorWriter, "Renders a test image while reporting progress.")
		fmt.Fprintln(errorWriter, "Every option can also be set with an RTCORE_ environment variable.")
		fmt.Fprintln(errorWriter, "\nOptions:")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.IntVar(&config.Width, "width", DefaultWidth, "Image width in pixels.")
	fs.IntVar(&config.Height, "height", DefaultHeight, "Image height in pixels.")
	fs.StringVar(&config.OutputFile, "output", DefaultOutput, "Output image path.")
	fs.StringVar(&config.OutputFile, "o", DefaultOutput, "Output image path (shorthand).")
	fs.StringVar(&config.Format, "format", "", "Output format: 'png' or 'ppm' (default: from the file extension).")
	fs.StringVar(&config.Scene, "scene", DefaultScene, "Scene to render: "+strings.Join(render.Scenes, ", ")+".")
	fs.StringVar(&config.Label, "label", DefaultLabel, "Progress bar label.")
	fs.IntVar(&config.BarWidth, "bar-width", DefaultBarWidth, "Number of cells in the progress bar.")
	fs.DurationVar(&config.Refresh, "refresh", DefaultRefresh, "Minimum interval between progress redraws.")
	fs.Float64Var(&config.Gamma, "gamma", DefaultGamma, "Display gamma applied when encoding colors (1 = linear).")
	fs.StringVar(&config.Precision, "precision", DefaultPrecision, "Floating-point precision of the pipeline: 'single' or 'double'.")
	fs.IntVar(&config.Workers, "workers", 0, "Number of rows rendered concurrently (0 = one per CPU).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum time allowed for the render.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color theme: 'classic', 'orange' or 'none'.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics in textfile format to this path.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Disable the progress display.")
	fs.BoolVar(&config.Quiet, "q", false, "Disable the progress display (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging (shorthand).")
	fs.BoolVar(&config.TUI, "tui", false, "Show progress in an interactive terminal UI.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable ANSI colors.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)
	config.Format = strings.ToLower(config.Format)
	config.Precision = strings.ToLower(config.Precision)
	config.Scene = strings.ToLower(config.Scene)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}
