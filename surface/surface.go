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

// Package surface defines the 2D drawing surfaces which fractal images are
// painted on, together with several implementations.
//
// An [ImagePainter] receives finished RGBA pixel buffers, a [PathStroker]
// receives line geometry.  The implementations are:
//
//   - [Canvas], a software surface drawing into an *image.RGBA,
//   - [GG], an adapter for a github.com/gogpu/gg context,
//   - [PDF], a vector surface writing a single page PDF file,
//   - [Recorder], which records all calls for later inspection.
package surface

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrBufferSize is returned when a pixel buffer does not hold exactly
// width*height RGBA pixels.
var ErrBufferSize = errors.New("surface: pixel buffer size mismatch")

// ImagePainter is implemented by surfaces which can display raw pixels.
type ImagePainter interface {
	// PutImageData paints a width×height image with its top-left corner
	// at (x, y).  The buffer holds 4 bytes (R, G, B, A) per pixel, row by
	// row.
	PutImageData(pix []byte, width, height, x, y int) error
}

// PathStroker is implemented by surfaces which can stroke line paths.
//
// A path is started with BeginPath and built from MoveTo, LineTo and
// ClosePath calls.  Stroke draws the path using the current line width and
// stroke color.
type PathStroker interface {
	SetLineWidth(w float64)
	SetStrokeColor(c color.Color)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke() error
}

// Surface is a full drawing surface.
type Surface interface {
	ImagePainter
	PathStroker

	SetFillColor(c color.Color)
	// Fill fills the current path using the nonzero winding rule.
	Fill() error
}

// StrokePath starts a new path on s, replays p, and strokes the result.
// Curves are flattened to line segments.
func StrokePath(s PathStroker, p path.Path) error {
	s.BeginPath()
	replay(s, p)
	return s.Stroke()
}

// replay sends the segments of p to s.
func replay(s PathStroker, p path.Path) {
	var start, current vec.Vec2
	lineTo := func(_, to vec.Vec2) {
		s.LineTo(to.X, to.Y)
	}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			s.MoveTo(pts[0].X, pts[0].Y)
			start, current = pts[0], pts[0]
		case path.CmdLineTo:
			s.LineTo(pts[0].X, pts[0].Y)
			current = pts[0]
		case path.CmdQuadTo:
			flattenQuadratic(current, pts[0], pts[1], defaultFlatness, lineTo)
			current = pts[1]
		case path.CmdCubeTo:
			flattenCubic(current, pts[0], pts[1], pts[2], defaultFlatness, lineTo)
			current = pts[2]
		case path.CmdClose:
			s.ClosePath()
			current = start
		}
	}
}

// checkBuffer verifies that pix holds a width×height RGBA image.
func checkBuffer(pix []byte, width, height int) error {
	tooLarge := height > 0 && width > math.MaxInt/4/height
	if width < 0 || height < 0 || tooLarge || len(pix) != 4*width*height {
		return fmt.Errorf("%w: %d bytes for %dx%d pixels",
			ErrBufferSize, len(pix), width, height)
	}
	return nil
}
