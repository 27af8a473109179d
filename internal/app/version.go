package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, set at build time with
// -ldflags "-X github.com/agbru/rtcore/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args request the version. Arguments after
// "--" are ignored.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "rtcore %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
