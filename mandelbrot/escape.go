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

import "math"

// escapeRadius is the magnitude beyond which an orbit is known to diverge.
const escapeRadius = 2.0

// Result is the outcome of the escape-time test for one point.
type Result struct {
	// N is the number of iterations performed, 0 <= N <= maxIter.
	// N equals maxIter for points whose orbit stayed bounded.
	N int

	// Z is the last iterate.
	Z complex128
}

// Escape iterates z ← z² + c, starting from z = 0, until |z| exceeds 2
// or maxIter iterations have been performed.
//
// No special care is taken for overflow: once an orbit escapes, |z| may
// grow without bound, but the loop always stops after at most maxIter
// steps.
func Escape(c complex128, maxIter int) Result {
	var z complex128
	n := 0
	for Abs(z) <= escapeRadius && n < maxIter {
		z = z*z + c
		n++
	}
	return Result{N: n, Z: z}
}

// Abs returns the Euclidean norm sqrt(re² + im²) of z.
//
// Unlike cmplx.Abs, no rescaling is done to avoid intermediate overflow.
// For escaped orbits this makes the magnitude become +Inf one step
// earlier, which only affects smooth coloring of such points.
func Abs(z complex128) float64 {
	re, im := real(z), imag(z)
	return math.Sqrt(re*re + im*im)
}
