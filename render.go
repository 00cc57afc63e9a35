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
	"fmt"
	"image"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fractal/mandelbrot"
	"seehuhn.de/go/fractal/surface"
	"seehuhn.de/go/fractal/testcases"
)

// RenderExample draws a test case onto a new transparent canvas of
// size tc.Width×tc.Width.
func RenderExample(tc testcases.TestCase) (*image.RGBA, error) {
	opts, err := ExampleOptions(tc)
	if err != nil {
		return nil, err
	}
	c := surface.NewCanvas(tc.Width, tc.Width)

	switch op := tc.Op.(type) {
	case testcases.Mandelbrot:
		_, err = Mandelbrot(uint(tc.Width), op.Iterations, c, opts...)
	case testcases.Sierpinski:
		c.Cap = op.Cap
		c.Join = op.Join
		c.MiterLimit = op.MiterLimit
		if op.CTM != (matrix.Matrix{}) {
			c.CTM = op.CTM
		}
		_, err = Sierpinski(uint(tc.Width), op.Depth, c, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	return c.Image(), nil
}

// ExampleOptions returns the options which configure [Mandelbrot] or
// [Sierpinski] for a test case.  Stroke styles and transformations are
// properties of the surface and are not included.
func ExampleOptions(tc testcases.TestCase) ([]Option, error) {
	switch op := tc.Op.(type) {
	case testcases.Mandelbrot:
		p, err := mandelbrot.LookupPreset(op.Preset)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tc.Name, err)
		}
		opts := []Option{WithPreset(p), WithWorkers(op.Workers)}
		if op.Colorizer != "" {
			col, err := mandelbrot.ColorizerByName(op.Colorizer)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", tc.Name, err)
			}
			opts = append(opts, WithColorizer(col))
		}
		return opts, nil
	case testcases.Sierpinski:
		return []Option{WithLineWidth(op.Width)}, nil
	default:
		return nil, fmt.Errorf("%s: unsupported operation %T", tc.Name, tc.Op)
	}
}
