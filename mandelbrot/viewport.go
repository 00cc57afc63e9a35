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

package mandelbrot

// Viewport is a rectangle in the complex plane.
//
// The x-bounds are sampled along the horizontal pixel axis and give the
// imaginary part of a point, the y-bounds are sampled along the vertical
// pixel axis and give the real part.  See [Viewport.At].
type Viewport struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Base is the region all presets zoom into.
var Base = Viewport{
	MinX: -1.0,
	MinY: -3.0,
	MaxX: 5.0,
	MaxY: 3.0,
}

// Width returns the extent of the x-bounds.
func (v Viewport) Width() float64 {
	return v.MaxX - v.MinX
}

// Height returns the extent of the y-bounds.
func (v Viewport) Height() float64 {
	return v.MaxY - v.MinY
}

// Valid reports whether the viewport bounds are not inverted.
// Zero-area viewports are valid.
func (v Viewport) Valid() bool {
	return v.MinX <= v.MaxX && v.MinY <= v.MaxY
}

// Zoom returns a viewport with the extents of v multiplied by scale,
// centered on (cx, cy).  The center is given in viewport coordinates,
// cx on the x-bounds and cy on the y-bounds.
//
// A scale of 0 gives a degenerate viewport of zero area.
func (v Viewport) Zoom(cx, cy, scale float64) Viewport {
	halfW := v.Width() * scale / 2
	halfH := v.Height() * scale / 2
	return Viewport{
		MinX: cx - halfW,
		MinY: cy - halfH,
		MaxX: cx + halfW,
		MaxY: cy + halfH,
	}
}

// Center returns the center of the viewport in viewport coordinates.
func (v Viewport) Center() (cx, cy float64) {
	return (v.MinX + v.MaxX) / 2, (v.MinY + v.MaxY) / 2
}

// At maps the pixel (px, py) of a width×height image to a point in the
// complex plane.  The real part is interpolated from py across the
// y-bounds, the imaginary part from px across the x-bounds.  Pixel (0, 0)
// maps to complex(MinY, MinX).
func (v Viewport) At(px, py, width, height int) complex128 {
	re := v.MinY + float64(py)/float64(height)*(v.MaxY-v.MinY)
	im := v.MinX + float64(px)/float64(width)*(v.MaxX-v.MinX)
	return complex(re, im)
}
