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

// Package mandelbrot computes escape-time images of the Mandelbrot set.
//
// A [Renderer] maps every pixel of an image to a point of a [Viewport],
// runs [Escape] for the point, converts the result to a color using a
// [Colorizer], and stores the color as four bytes R, G, B, 255 in a flat
// pixel buffer.
package mandelbrot

import (
	"errors"
	"fmt"
	"image"
	"math"

	"golang.org/x/sync/errgroup"
)

// Errors returned by this package.
var (
	ErrImageSize        = errors.New("mandelbrot: invalid image dimensions")
	ErrBufferSize       = errors.New("mandelbrot: buffer length does not match image size")
	ErrViewport         = errors.New("mandelbrot: viewport bounds are inverted")
	ErrUnknownPreset    = errors.New("mandelbrot: unknown preset")
	ErrUnknownColorizer = errors.New("mandelbrot: unknown colorizer")
)

// Order is the order in which pixels are stored in a buffer.
type Order int

const (
	// RowMajor stores pixel (px, py) at byte offset (py*width+px)*4.
	RowMajor Order = iota

	// ColumnMajor stores pixel (px, py) at byte offset (px*height+py)*4.
	ColumnMajor
)

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Renderer assembles pixel buffers.
// The zero value is not usable; create instances with [NewRenderer] or
// fill in all fields.  A Renderer may be reused for several images, but
// must not be used concurrently.
type Renderer struct {
	// Viewport is the region of the complex plane covered by the image.
	Viewport Viewport

	// MaxIterations is the iteration limit passed to [Escape].
	MaxIterations int

	// Colorizer converts escape-time results to colors.
	// If nil, [Discrete] is used.
	Colorizer Colorizer

	// Order is the pixel order of the output buffer.
	Order Order

	// Workers is the number of goroutines used.  Values below 2 render
	// on the calling goroutine.  The output does not depend on Workers.
	Workers int
}

// NewRenderer creates a Renderer for the given preset.
func NewRenderer(p Preset, maxIter int) *Renderer {
	return &Renderer{
		Viewport:      p.Viewport(),
		MaxIterations: maxIter,
		Colorizer:     p.Colorizer,
		Order:         p.Order,
	}
}

// BufferSize returns the length of the pixel buffer for a width×height
// image.  The result is only meaningful for sizes accepted by
// [Renderer.Render].
func BufferSize(width, height int) int {
	return width * height * 4
}

// checkSize verifies that both dimensions are positive and that the
// buffer length fits into an int.
func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > math.MaxInt/4/height {
		return fmt.Errorf("%w: %dx%d", ErrImageSize, width, height)
	}
	return nil
}

// Render computes a width×height image and returns the pixel buffer.
// The returned slice has length width*height*4.
func (r *Renderer) Render(width, height int) ([]byte, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	buf := make([]byte, BufferSize(width, height))
	if err := r.RenderInto(buf, width, height); err != nil {
		return nil, err
	}
	return buf, nil
}

// RenderInto computes a width×height image into buf.
// If len(buf) is not width*height*4, ErrBufferSize is returned and buf is
// left unchanged.
func (r *Renderer) RenderInto(buf []byte, width, height int) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	if want := BufferSize(width, height); len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(buf), want)
	}
	if !r.Viewport.Valid() {
		return fmt.Errorf("%w: %+v", ErrViewport, r.Viewport)
	}

	// The outer loop runs over rows for RowMajor and over columns for
	// ColumnMajor, so that consecutive pixels are stored consecutively.
	outer := height
	if r.Order == ColumnMajor {
		outer = width
	}

	workers := min(r.Workers, outer)
	if workers < 2 {
		r.renderBand(buf, width, height, 0, outer)
		return nil
	}

	var g errgroup.Group
	for _, b := range splitBands(outer, workers) {
		g.Go(func() error {
			r.renderBand(buf, width, height, b.from, b.to)
			return nil
		})
	}
	return g.Wait()
}

// RenderImage computes a width×height image in row-major order,
// regardless of r.Order.
func (r *Renderer) RenderImage(width, height int) (*image.RGBA, error) {
	rr := *r
	rr.Order = RowMajor
	buf, err := rr.Render(width, height)
	if err != nil {
		return nil, err
	}
	return &image.RGBA{
		Pix:    buf,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// renderBand fills the pixels with outer loop index in [from, to).
// Bands rendered concurrently write to disjoint parts of buf.
func (r *Renderer) renderBand(buf []byte, width, height, from, to int) {
	inner := width
	if r.Order == ColumnMajor {
		inner = height
	}
	colorizer := r.Colorizer
	if colorizer == nil {
		colorizer = Discrete{}
	}

	pos := from * inner * 4
	for o := from; o < to; o++ {
		for i := range inner {
			px, py := i, o
			if r.Order == ColumnMajor {
				px, py = o, i
			}
			res := Escape(r.Viewport.At(px, py, width, height), r.MaxIterations)
			col := colorizer.Color(res, r.MaxIterations)
			buf[pos] = col.R
			buf[pos+1] = col.G
			buf[pos+2] = col.B
			buf[pos+3] = 255
			pos += 4
		}
	}
}

// band is a half-open range [from, to) of the outer loop index.
type band struct {
	from, to int
}

// splitBands divides the range [0, n) into at most k contiguous,
// non-empty bands of nearly equal size.
func splitBands(n, k int) []band {
	if k <= 0 {
		panic("band count must be positive")
	}

	bands := make([]band, 0, k)
	size, extra := n/k, n%k
	start := 0
	for i := range k {
		h := size
		if i < extra {
			h++
		}
		if h == 0 {
			continue
		}
		bands = append(bands, band{from: start, to: start + h})
		start += h
	}
	return bands
}
