// Package render provides shared rendering plumbing for chart artifacts.
//
// The statistical charts (bar charts, histogram, box plot) are drawn with
// gonum/plot, which writes SVG, PNG, and PDF natively. The timeline is
// built as hand-written SVG (see the timelinesvg subpackage); [ToPDF] and
// [ToPNG] convert that SVG to the other formats via the external
// rsvg-convert tool from librsvg.
package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/retroviz/gamewatch/pkg/errors"
)

const converterBinary = "rsvg-convert"

// ToPDF converts SVG bytes to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// ToPNG converts SVG bytes to PNG at the given scale factor.
// A scale of 2.0 doubles the raster resolution.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// convert pipes svg through rsvg-convert. A missing binary reports
// UNSUPPORTED with install instructions; a conversion failure reports
// INTERNAL_ERROR with the tool's stderr.
func convert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	bin, err := exec.LookPath(converterBinary)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err,
			"%s output needs librsvg (brew install librsvg / apt install librsvg2-bin)", format)
	}

	cmd := exec.Command(bin, append([]string{"-f", format}, extraArgs...)...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s conversion failed: %s", converterBinary, bytes.TrimSpace(stderr.Bytes()))
	}
	return out.Bytes(), nil
}
