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

import (
	"fmt"
	"image/color"
	"math"
)

// Palette is the fixed color table used by [Discrete].
// It runs from black through blue to red.
var Palette = [16]color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 32, A: 255},
	{R: 0, G: 0, B: 64, A: 255},
	{R: 0, G: 0, B: 92, A: 255},
	{R: 0, G: 0, B: 128, A: 255},
	{R: 0, G: 0, B: 160, A: 255},
	{R: 0, G: 0, B: 192, A: 255},
	{R: 0, G: 0, B: 224, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 32, G: 0, B: 224, A: 255},
	{R: 64, G: 0, B: 192, A: 255},
	{R: 128, G: 0, B: 160, A: 255},
	{R: 160, G: 0, B: 128, A: 255},
	{R: 192, G: 0, B: 96, A: 255},
	{R: 224, G: 0, B: 64, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
}

// Colorizer converts the result of an escape-time test into a color.
// Implementations must always return an opaque color.
type Colorizer interface {
	Color(r Result, maxIter int) color.RGBA
}

// ColorIndex returns the palette index for an iteration count,
// i.e. n mod 16 folded into the range [0, 15].
func ColorIndex(n int) int {
	i := n % len(Palette)
	if i < 0 {
		i += len(Palette)
	}
	return i
}

// Discrete colors points by looking up the iteration count in [Palette].
// The bands repeat every 16 iterations, independent of maxIter.
type Discrete struct{}

// Color implements the [Colorizer] interface.
func (Discrete) Color(r Result, _ int) color.RGBA {
	return Palette[ColorIndex(r.N)]
}

// Smooth derives a gray level from the iteration count and the magnitude
// of the final iterate, giving a continuous gradient instead of bands.
//
// Channel values outside [0, 255] are clamped; NaN maps to 0.  In
// particular, points where the final iterate is 0 give +Inf and are
// painted white.
type Smooth struct{}

// Color implements the [Colorizer] interface.
func (Smooth) Color(r Result, maxIter int) color.RGBA {
	factor := 0.0
	if maxIter > 0 {
		factor = float64(r.N) / float64(maxIter) * 255
	}
	logs := 2 + math.Log2(math.Log2(Abs(r.Z)+1)/math.Log2(2))
	red := math.Floor(factor + 5 - logs)
	blue := math.Round(255 * red / 255)

	v := clampByte(red)
	return color.RGBA{R: v, G: v, B: clampByte(blue), A: 255}
}

// clampByte converts x to a byte, saturating at 0 and 255.
// NaN is mapped to 0.
func clampByte(x float64) uint8 {
	switch {
	case math.IsNaN(x), x <= 0:
		return 0
	case x >= 255:
		return 255
	default:
		return uint8(x)
	}
}

// ColorizerByName returns the colorizer with the given name,
// either "discrete" or "smooth".
func ColorizerByName(name string) (Colorizer, error) {
	switch name {
	case "discrete":
		return Discrete{}, nil
	case "smooth":
		return Smooth{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColorizer, name)
	}
}

// ColorizerName returns the name of c as accepted by [ColorizerByName],
// or the Go type name for other implementations.
func ColorizerName(c Colorizer) string {
	switch c.(type) {
	case Discrete:
		return "discrete"
	case Smooth:
		return "smooth"
	default:
		return fmt.Sprintf("%T", c)
	}
}
