package cli

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/agbru/rtcore/internal/config"
	"github.com/agbru/rtcore/internal/format"
	"github.com/agbru/rtcore/internal/ui"
)

// PrintRenderConfig displays the render settings before the run starts.
func PrintRenderConfig(cfg config.AppConfig, outFormat string, out io.Writer) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "--- Render Configuration ---\n")
	fmt.Fprintf(out, "Image %s%dx%d%s %s to %s%s%s (%s), %s precision, gamma %s%g%s.\n",
		t.Info, cfg.Width, cfg.Height, t.Reset, cfg.Scene,
		t.Info, cfg.OutputFile, t.Reset, outFormat,
		cfg.Precision,
		t.Info, cfg.Gamma, t.Reset)
	fmt.Fprintf(out, "Environment: %s%d%s workers on %d logical processors, Go %s.\n",
		t.Info, cfg.Workers, t.Reset, runtime.NumCPU(), runtime.Version())
}

// FormatSaved returns the line announcing a written image.
func FormatSaved(path string, elapsed time.Duration) string {
	return fmt.Sprintf("%s %s %s",
		ui.SuccessStyle().Render("Image written:"),
		ui.AccentStyle().Render(path),
		ui.DimStyle().Render("("+format.FormatExecutionDuration(elapsed)+")"))
}

// PrintSaved announces a written image on out.
func PrintSaved(out io.Writer, path string, elapsed time.Duration) {
	fmt.Fprintln(out, FormatSaved(path, elapsed))
}

// PrintError reports err on out. Nothing is printed for a nil error.
func PrintError(out io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(out, "%s %v\n", ui.ErrorStyle().Render("Error:"), err)
}
