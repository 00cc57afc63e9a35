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

// Package testcases lists named rendering cases for both fractals.
// The cases are shared by tests, benchmarks and the helper commands
// which export the case table and render reference images.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase defines a single rendering case.
type TestCase struct {
	Name  string    // lowercase a-z, 0-9 and _ only
	Width int       // width and height of the square image in pixels
	Op    Operation // the fractal to draw
}

// Operation selects the fractal drawn by a test case.
type Operation interface {
	isOperation()
}

// Mandelbrot draws an escape-time image.
type Mandelbrot struct {
	Preset     string // preset name, see mandelbrot.LookupPreset
	Iterations int    // iteration limit
	Colorizer  string // "discrete", "smooth", or empty for the preset's
	Workers    int
}

func (Mandelbrot) isOperation() {}

// Sierpinski strokes the outlines of a subdivision tree.
type Sierpinski struct {
	Depth      int
	Width      float64                // line width (>0)
	Cap        graphics.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       graphics.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64
	CTM        matrix.Matrix // zero value means no transform
}

func (Sierpinski) isOperation() {}
