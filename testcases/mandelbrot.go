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

package testcases

var mandelbrotCases = []TestCase{
	{
		Name:  "reference",
		Width: 128,
		Op:    Mandelbrot{Preset: "reference", Iterations: 100},
	},
	{
		Name:  "zoom",
		Width: 128,
		Op:    Mandelbrot{Preset: "zoom", Iterations: 100},
	},
	{
		Name:  "zoom_smooth",
		Width: 128,
		Op:    Mandelbrot{Preset: "zoom", Iterations: 100, Colorizer: "smooth"},
	},
	{
		Name:  "deep",
		Width: 64,
		Op:    Mandelbrot{Preset: "deep", Iterations: 1000},
	},
	{
		Name:  "deep_parallel",
		Width: 64,
		Op:    Mandelbrot{Preset: "deep", Iterations: 1000, Workers: 4},
	},
	{
		Name:  "tiny",
		Width: 2,
		Op:    Mandelbrot{Preset: "zoom", Iterations: 1},
	},
}
