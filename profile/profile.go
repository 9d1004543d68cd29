// SPDX-License-Identifier: MIT
// Package profile draws the Gram-Schmidt profile log2‖b*_i‖ of a basis
// before and after reduction. A reduced basis shows a flatter, less steep
// curve; the area between the two lines is the work LLL did.

package profile

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default chart size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ErrEmptyProfile is returned when a series has no points.
var ErrEmptyProfile = errors.New("profile: empty series")

// points converts a profile into (i, log2‖b*_i‖) pairs.
func points(series []float64) plotter.XYs {
	pts := make(plotter.XYs, len(series))
	for i, v := range series {
		pts[i].X = float64(i)
		pts[i].Y = v
	}

	return pts
}

// Chart builds the plot. after may be nil to draw the input profile only.
//
// Errors: ErrEmptyProfile, or the plotter error for non-finite values.
func Chart(before, after []float64) (*plot.Plot, error) {
	if len(before) == 0 {
		return nil, fmt.Errorf("before: %w", ErrEmptyProfile)
	}
	p := plot.New()
	p.Title.Text = "Gram-Schmidt profile"
	p.X.Label.Text = "i"
	p.Y.Label.Text = "log2 ‖b*_i‖"
	p.Add(plotter.NewGrid())

	series := []interface{}{"input", points(before)}
	if after != nil {
		if len(after) == 0 {
			return nil, fmt.Errorf("after: %w", ErrEmptyProfile)
		}
		series = append(series, "reduced", points(after))
	}
	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	p.Legend.Top = true

	return p, nil
}

// Render writes the chart to path; the image format follows the extension
// (.png, .svg, .pdf, .eps, .jpg, .tif).
func Render(before, after []float64, path string) error {
	p, err := Chart(before, after)
	if err != nil {
		return err
	}
	if err = p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("profile: save %s: %w", path, err)
	}

	return nil
}

// WriteTo renders the chart to w in the given format ("png", "svg", ...).
func WriteTo(w io.Writer, format string, before, after []float64) error {
	p, err := Chart(before, after)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	return nil
}
