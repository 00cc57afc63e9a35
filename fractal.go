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

// Package fractal draws Mandelbrot and Sierpinski images onto 2D drawing
// surfaces.
//
// [Mandelbrot] computes an escape-time image as a flat RGBA buffer and
// hands it to a [surface.ImagePainter].  [Sierpinski] subdivides a
// triangle and strokes the outline of every triangle of the subdivision
// tree on a [surface.PathStroker].  Both functions can be used without a
// surface, in which case only the data is computed.
package fractal

//go:generate go run ./testcases/export

import (
	"fmt"
	"time"

	"seehuhn.de/go/fractal/mandelbrot"
	"seehuhn.de/go/fractal/sierpinski"
	"seehuhn.de/go/fractal/surface"
)

// Mandelbrot renders a square image of the Mandelbrot set with
// pixelWidth pixels on each side.  If s is non-nil, the image is painted
// onto s with its top-left corner at (0, 0).
//
// The returned buffer holds four bytes R, G, B, 255 per pixel, in the
// pixel order configured by the preset or by [WithOrder].
func Mandelbrot(pixelWidth uint, maxIterations int, s surface.ImagePainter, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	w := int(pixelWidth)

	r := mandelbrot.NewRenderer(cfg.preset, maxIterations)
	if cfg.colorizer != nil {
		r.Colorizer = cfg.colorizer
	}
	if cfg.hasOrder {
		r.Order = cfg.order
	}
	r.Workers = cfg.workers

	log := Logger()
	start := time.Now()
	buf, err := r.Render(w, w)
	if err != nil {
		return nil, fmt.Errorf("mandelbrot: %w", err)
	}
	log.Debug("mandelbrot rendered",
		"preset", cfg.preset.Name,
		"width", w,
		"iterations", maxIterations,
		"order", r.Order,
		"workers", r.Workers,
		"elapsed", time.Since(start))

	if s == nil {
		return buf, nil
	}
	if err := s.PutImageData(buf, w, w, 0, 0); err != nil {
		return buf, fmt.Errorf("mandelbrot: %w", err)
	}
	return buf, nil
}

// Sierpinski subdivides the triangle [sierpinski.Root] of a pixelWidth
// wide canvas down to the given depth.  If s is non-nil, the outline of
// every node of the tree, internal nodes included, is stroked onto s in
// depth-first pre-order.  For each node the calls are BeginPath, MoveTo
// to corner A, LineTo B, C and A, and Stroke.
//
// Stroke color and line width are set once, before the first node.
// Drawing stops at the first error returned by Stroke; the tree is
// returned in all cases.
func Sierpinski(pixelWidth uint, depth int, s surface.PathStroker, opts ...Option) (*sierpinski.Tree, error) {
	cfg := newConfig(opts)

	log := Logger()
	start := time.Now()
	tree := sierpinski.Subdivide(sierpinski.Root(int(pixelWidth)), depth)
	log.Debug("sierpinski subdivided",
		"width", pixelWidth,
		"depth", tree.Depth(),
		"nodes", tree.Len(),
		"leaves", tree.Leaves(),
		"elapsed", time.Since(start))

	if s == nil {
		return tree, nil
	}

	start = time.Now()
	s.SetStrokeColor(cfg.strokeColor)
	s.SetLineWidth(cfg.lineWidth)

	var err error
	tree.Walk(func(i int, n sierpinski.Node) bool {
		if e := surface.StrokePath(s, n.Path()); e != nil {
			err = fmt.Errorf("sierpinski: node %d: %w", i, e)
			return false
		}
		return true
	})
	if err != nil {
		return tree, err
	}
	log.Debug("sierpinski stroked", "nodes", tree.Len(), "elapsed", time.Since(start))
	return tree, nil
}
