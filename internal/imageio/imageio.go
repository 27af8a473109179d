// Package imageio writes rendered images to disk.
package imageio

import (
	"bufio"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/agbru/rtcore/internal/errors"
	"github.com/agbru/rtcore/internal/render"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatPPM = "ppm"
)

// FormatFor returns explicit when set, otherwise the format implied by the
// extension of path. Anything but .ppm is written as PNG.
func FormatFor(path, explicit string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	if strings.EqualFold(filepath.Ext(path), "."+FormatPPM) {
		return FormatPPM
	}
	return FormatPNG
}

// WritePNG encodes img to path, creating the parent directory when needed.
// Any failure is reported as an apperrors.OutputError.
func WritePNG(path string, img *render.Image) error {
	if err := ensureDir(path); err != nil {
		return apperrors.OutputError{Path: path, Cause: err}
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return apperrors.OutputError{Path: path, Cause: err}
	}

	w := bufio.NewWriter(f)
	if err := png.Encode(w, img.NRGBA()); err != nil {
		_ = f.Close()
		return apperrors.OutputError{Path: path, Cause: err}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return apperrors.OutputError{Path: path, Cause: err}
	}
	if err := f.Close(); err != nil {
		return apperrors.OutputError{Path: path, Cause: err}
	}
	return nil
}

// TextFile is a buffered file sink for plain-text images.
type TextFile struct {
	*bufio.Writer
	path string
	f    *os.File
}

// CreateText opens path for writing, creating the parent directory when
// needed.
func CreateText(path string) (*TextFile, error) {
	if err := ensureDir(path); err != nil {
		return nil, apperrors.OutputError{Path: path, Cause: err}
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, apperrors.OutputError{Path: path, Cause: err}
	}
	return &TextFile{Writer: bufio.NewWriter(f), path: path, f: f}, nil
}

// Path returns the file name given to CreateText.
func (t *TextFile) Path() string { return t.path }

// Close flushes buffered data and closes the file. The first error wins.
func (t *TextFile) Close() error {
	flushErr := t.Flush()
	closeErr := t.f.Close()
	if flushErr != nil {
		return apperrors.OutputError{Path: t.path, Cause: flushErr}
	}
	if closeErr != nil {
		return apperrors.OutputError{Path: t.path, Cause: closeErr}
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
