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

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// thin is the stroke style of the plain Sierpinski drawing.
var thin = Sierpinski{
	Width:      0.5,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: 10,
}

func thinAt(depth int) Sierpinski {
	op := thin
	op.Depth = depth
	return op
}

var sierpinskiCases = []TestCase{
	{
		Name:  "depth0",
		Width: 64,
		Op:    thinAt(0),
	},
	{
		Name:  "depth3",
		Width: 128,
		Op:    thinAt(3),
	},
	{
		Name:  "depth6",
		Width: 256,
		Op:    thinAt(6),
	},
	{
		Name:  "thick_round",
		Width: 128,
		Op: Sierpinski{
			Depth:      2,
			Width:      4,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
		},
	},
	{
		Name:  "thick_bevel",
		Width: 128,
		Op: Sierpinski{
			Depth:      2,
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinBevel,
			MiterLimit: 10,
		},
	},
	{
		Name:  "thick_miter",
		Width: 128,
		Op: Sierpinski{
			Depth:      1,
			Width:      6,
			Cap:        graphics.LineCapSquare,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
		},
	},
	{
		// the triangle is drawn at half size in the center
		Name:  "scaled",
		Width: 128,
		Op: Sierpinski{
			Depth:      3,
			Width:      1,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			CTM:        matrix.Scale(0.5, 0.5).Translate(32, 32),
		},
	},
	{
		// upside down
		Name:  "rotated",
		Width: 128,
		Op: Sierpinski{
			Depth:      2,
			Width:      1,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			CTM:        matrix.RotateDeg(180).Translate(128, 128),
		},
	},
}
