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

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas is a software drawing surface backed by an *image.RGBA.
// Device coordinates are pixel coordinates with the origin in the top-left
// corner of the image.
//
// The exported fields set the stroke parameters.  They can be changed
// between calls.
type Canvas struct {
	// CTM maps path coordinates to device coordinates.
	// Must be a non-singular matrix.
	CTM matrix.Matrix

	// Flatness is the curve and arc flattening tolerance in device pixels.
	Flatness float64

	// Cap is the line cap style for stroke endpoints.
	Cap graphics.LineCapStyle

	// Join is the line join style for stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit is the miter limit for miter joins.
	// Must be >= 1.0.
	MiterLimit float64

	img   *image.RGBA
	clip  rect.Rect
	width float64

	strokeColor *image.Uniform
	fillColor   *image.Uniform

	path       path.Data
	hasCurrent bool

	ras     *vector.Rasterizer
	s       stroker
	polygon []vec.Vec2
}

var _ Surface = (*Canvas)(nil)

// NewCanvas allocates a transparent canvas of the given size.
// The line width is 1, cap and join styles are the PDF defaults, and both
// colors are black.
func NewCanvas(width, height int) *Canvas {
	return NewCanvasFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewCanvasFor returns a canvas which draws into img.
func NewCanvasFor(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{
		CTM:        matrix.Identity,
		Flatness:   defaultFlatness,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,

		img: img,
		clip: rect.Rect{
			LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
			URx: float64(b.Max.X), URy: float64(b.Max.Y),
		},
		width:       1,
		strokeColor: image.NewUniform(color.Black),
		fillColor:   image.NewUniform(color.Black),
		ras:         vector.NewRasterizer(0, 0),
	}
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with col, replacing all pixels.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// PutImageData implements the [ImagePainter] interface.
// The pixels replace the canvas contents; the CTM is not applied.
func (c *Canvas) PutImageData(pix []byte, width, height, x, y int) error {
	if err := checkBuffer(pix, width, height); err != nil {
		return err
	}
	src := &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
	r := image.Rect(x, y, x+width, y+height)
	draw.Draw(c.img, r, src, image.Point{}, draw.Src)
	return nil
}

// SetLineWidth sets the stroke width in path coordinates.
func (c *Canvas) SetLineWidth(w float64) {
	c.width = w
}

// SetStrokeColor sets the color used by [Canvas.Stroke].
func (c *Canvas) SetStrokeColor(col color.Color) {
	c.strokeColor = image.NewUniform(col)
}

// SetFillColor sets the color used by [Canvas.Fill].
func (c *Canvas) SetFillColor(col color.Color) {
	c.fillColor = image.NewUniform(col)
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path.Cmds = c.path.Cmds[:0]
	c.path.Coords = c.path.Coords[:0]
	c.hasCurrent = false
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(vec.Vec2{X: x, Y: y})
	c.hasCurrent = true
}

// LineTo adds a straight line to (x, y).  Without a current point, LineTo
// acts like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if !c.hasCurrent {
		c.MoveTo(x, y)
		return
	}
	c.path.LineTo(vec.Vec2{X: x, Y: y})
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if !c.hasCurrent {
		return
	}
	c.path.Close()
}

// Path returns the current path.
func (c *Canvas) Path() path.Path {
	return c.path.Iter()
}

// Stroke draws the outline of the current path and then discards the
// path.
func (c *Canvas) Stroke() error {
	defer c.BeginPath()

	if c.width <= 0 || len(c.path.Cmds) == 0 {
		return nil
	}

	c.s.CTM = c.CTM
	c.s.Flatness = c.Flatness
	c.s.Width = c.width
	c.s.Cap = c.Cap
	c.s.Join = c.Join
	c.s.MiterLimit = c.MiterLimit
	c.s.outline(c.path.Iter())
	if len(c.s.strokeOffsets) == 0 {
		return nil
	}

	for i := range c.s.stroke {
		c.s.stroke[i] = apply(c.CTM, c.s.stroke[i])
	}
	r, ok := c.deviceBounds(c.s.stroke)
	if !ok {
		return nil
	}

	// All outlines are given the same orientation, so that overlapping
	// outlines add up instead of cancelling out.
	c.ras.Reset(r.Dx(), r.Dy())
	c.s.polygons(func(poly []vec.Vec2) {
		c.addPolygon(poly, r.Min, signedArea(poly) < 0)
	})
	c.ras.Draw(c.img, r, c.strokeColor, image.Point{})
	return nil
}

// Fill fills the current path using the nonzero winding rule and then
// discards the path.  Open subpaths are closed implicitly.
func (c *Canvas) Fill() error {
	defer c.BeginPath()

	c.s.CTM = c.CTM
	c.s.Flatness = c.Flatness
	tol := c.s.userTolerance()

	// collect one polygon per subpath, in device coordinates
	c.s.stroke = c.s.stroke[:0]
	c.s.strokeOffsets = c.s.strokeOffsets[:0]
	var start, current vec.Vec2
	startSubpath := func(p vec.Vec2) {
		c.s.strokeOffsets = append(c.s.strokeOffsets, len(c.s.stroke))
		c.s.stroke = append(c.s.stroke, p)
	}
	lineTo := func(_, to vec.Vec2) {
		c.s.stroke = append(c.s.stroke, to)
	}
	for cmd, pts := range c.path.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			startSubpath(pts[0])
			start, current = pts[0], pts[0]
		case path.CmdLineTo:
			lineTo(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			flattenQuadratic(current, pts[0], pts[1], tol, lineTo)
			current = pts[1]
		case path.CmdCubeTo:
			flattenCubic(current, pts[0], pts[1], pts[2], tol, lineTo)
			current = pts[2]
		case path.CmdClose:
			current = start
		}
	}
	if len(c.s.stroke) == 0 {
		return nil
	}

	for i := range c.s.stroke {
		c.s.stroke[i] = apply(c.CTM, c.s.stroke[i])
	}
	r, ok := c.deviceBounds(c.s.stroke)
	if !ok {
		return nil
	}

	c.ras.Reset(r.Dx(), r.Dy())
	c.s.polygons(func(poly []vec.Vec2) {
		if len(poly) >= 3 {
			c.addPolygon(poly, r.Min, false)
		}
	})
	c.ras.Draw(c.img, r, c.fillColor, image.Point{})
	return nil
}

// addPolygon adds a closed polygon to the rasterizer, translated so that
// origin maps to the rasterizer's (0, 0).
func (c *Canvas) addPolygon(poly []vec.Vec2, origin image.Point, reverse bool) {
	c.polygon = append(c.polygon[:0], poly...)
	if reverse {
		for i, j := 0, len(c.polygon)-1; i < j; i, j = i+1, j-1 {
			c.polygon[i], c.polygon[j] = c.polygon[j], c.polygon[i]
		}
	}

	ox, oy := float64(origin.X), float64(origin.Y)
	c.ras.MoveTo(float32(c.polygon[0].X-ox), float32(c.polygon[0].Y-oy))
	for _, p := range c.polygon[1:] {
		c.ras.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.ras.ClosePath()
}

// deviceBounds returns the pixel rectangle covered by pts, clipped to
// the canvas.
func (c *Canvas) deviceBounds(pts []vec.Vec2) (image.Rectangle, bool) {
	bbox := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range pts {
		bbox.LLx = min(bbox.LLx, p.X)
		bbox.LLy = min(bbox.LLy, p.Y)
		bbox.URx = max(bbox.URx, p.X)
		bbox.URy = max(bbox.URy, p.Y)
	}

	xMin := int(math.Floor(max(bbox.LLx, c.clip.LLx)))
	yMin := int(math.Floor(max(bbox.LLy, c.clip.LLy)))
	xMax := int(math.Ceil(min(bbox.URx, c.clip.URx)))
	yMax := int(math.Ceil(min(bbox.URy, c.clip.URy)))
	if xMin >= xMax || yMin >= yMax {
		return image.Rectangle{}, false
	}
	return image.Rect(xMin, yMin, xMax, yMax), true
}

// apply maps v from path coordinates to device coordinates.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
