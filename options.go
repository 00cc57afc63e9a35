// seehuhn.de/go/fractal - fractal images for 2D drawing surfaces
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fractal

import (
	"image/color"

	"seehuhn.de/go/fractal/mandelbrot"
)

// Option configures [Mandelbrot] and [Sierpinski].
type Option func(*config)

type config struct {
	preset    mandelbrot.Preset
	colorizer mandelbrot.Colorizer
	order     mandelbrot.Order
	hasOrder  bool
	workers   int

	lineWidth   float64
	strokeColor color.Color
}

// DefaultLineWidth is the line width used by [Sierpinski] unless
// [WithLineWidth] is given.
const DefaultLineWidth = 0.5

func newConfig(opts []Option) *config {
	cfg := &config{
		preset:      mandelbrot.DefaultPreset,
		lineWidth:   DefaultLineWidth,
		strokeColor: color.Black,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithPreset selects the viewport, coloring and pixel order of a
// Mandelbrot image.  The default is [mandelbrot.DefaultPreset].
func WithPreset(p mandelbrot.Preset) Option {
	return func(c *config) {
		c.preset = p
	}
}

// WithColorizer overrides the colorizer of the preset.
func WithColorizer(col mandelbrot.Colorizer) Option {
	return func(c *config) {
		c.colorizer = col
	}
}

// WithOrder overrides the pixel order of the preset.
func WithOrder(o mandelbrot.Order) Option {
	return func(c *config) {
		c.order = o
		c.hasOrder = true
	}
}

// WithWorkers sets the number of goroutines used to compute a
// Mandelbrot image.  The result does not depend on n.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithLineWidth sets the line width used for Sierpinski outlines.
func WithLineWidth(w float64) Option {
	return func(c *config) {
		c.lineWidth = w
	}
}

// WithStrokeColor sets the color used for Sierpinski outlines.
func WithStrokeColor(col color.Color) Option {
	return func(c *config) {
		c.strokeColor = col
	}
}
