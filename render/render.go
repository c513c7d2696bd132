// Package render rasterizes MusicXML documents to images by invoking
// MuseScore.
package render

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strconv"
)

// ErrNotInstalled is returned when the MuseScore binary cannot be found.
var ErrNotInstalled = errors.New("MuseScore is not installed or not found in PATH")

const (
	// DefaultBin is the MuseScore command name looked up in PATH.
	DefaultBin = "mscore"

	// DefaultTrimMargin is the pixel margin MuseScore leaves around the
	// score when trimming the image.
	DefaultTrimMargin = 50
)

// A Renderer runs MuseScore to convert MusicXML files into images. The
// image format follows the output file's extension, so a ".png" path
// produces a PNG.
type Renderer struct {
	// Bin is the MuseScore command to run. Empty means DefaultBin.
	Bin string

	// TrimMargin is the pixel margin passed to -T. Negative means
	// DefaultTrimMargin.
	TrimMargin int

	logger *log.Logger
}

// New creates a Renderer with the default binary and trim margin. A nil
// logger falls back to the standard logger.
func New(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		Bin:        DefaultBin,
		TrimMargin: DefaultTrimMargin,
		logger:     logger,
	}
}

func (r *Renderer) bin() string {
	if r.Bin == "" {
		return DefaultBin
	}
	return r.Bin
}

func (r *Renderer) args(xmlPath, outPath string) []string {
	margin := r.TrimMargin
	if margin < 0 {
		margin = DefaultTrimMargin
	}
	return []string{xmlPath, "-o", outPath, "-T", strconv.Itoa(margin)}
}

// Render converts the MusicXML file at xmlPath into an image at outPath.
// MuseScore's own output is folded into the error when it exits non-zero.
func (r *Renderer) Render(xmlPath, outPath string) error {
	bin, err := exec.LookPath(r.bin())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}

	args := r.args(xmlPath, outPath)
	r.logger.Printf("Running %s %v", bin, args)

	out, err := exec.Command(bin, args...).CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d: %s", r.bin(), exitErr.ExitCode(), out)
		}
		return fmt.Errorf("running %s: %w", r.bin(), err)
	}
	return nil
}
