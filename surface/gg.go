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
	"io"

	"github.com/gogpu/gg"
)

// GG is a drawing surface backed by a gg.Context.
//
// gg keeps a single current color.  GG remembers the stroke and fill
// colors separately and selects the right one before painting.
type GG struct {
	ctx *gg.Context

	strokeColor color.Color
	fillColor   color.Color
}

var _ Surface = (*GG)(nil)

// NewGG creates a new gg context of the given size.
func NewGG(width, height int) *GG {
	return WrapGG(gg.NewContext(width, height))
}

// WrapGG returns a surface which draws on ctx.
func WrapGG(ctx *gg.Context) *GG {
	ctx.SetLineCap(gg.LineCapButt)
	ctx.SetLineJoin(gg.LineJoinMiter)
	return &GG{
		ctx:         ctx,
		strokeColor: color.Black,
		fillColor:   color.Black,
	}
}

// Context returns the underlying gg context.
func (s *GG) Context() *gg.Context {
	return s.ctx
}

// Image returns the current contents of the surface.
func (s *GG) Image() image.Image {
	return s.ctx.Image()
}

// Clear fills the whole surface with col.
func (s *GG) Clear(col color.Color) {
	s.ctx.ClearWithColor(gg.FromColor(col))
}

// EncodePNG writes the contents of the surface to w.
func (s *GG) EncodePNG(w io.Writer) error {
	return s.ctx.EncodePNG(w)
}

// Close releases the resources held by the gg context.
func (s *GG) Close() error {
	return s.ctx.Close()
}

// PutImageData implements the [ImagePainter] interface.
func (s *GG) PutImageData(pix []byte, width, height, x, y int) error {
	if err := checkBuffer(pix, width, height); err != nil {
		return err
	}
	img := &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
	s.ctx.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:             float64(x),
		Y:             float64(y),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// SetLineWidth sets the stroke width in pixels.
func (s *GG) SetLineWidth(w float64) {
	s.ctx.SetLineWidth(w)
}

// SetStrokeColor sets the color used by [GG.Stroke].
func (s *GG) SetStrokeColor(c color.Color) {
	s.strokeColor = c
}

// SetFillColor sets the color used by [GG.Fill].
func (s *GG) SetFillColor(c color.Color) {
	s.fillColor = c
}

// BeginPath discards the current path.
func (s *GG) BeginPath() {
	s.ctx.ClearPath()
}

// MoveTo starts a new subpath at (x, y).
func (s *GG) MoveTo(x, y float64) {
	s.ctx.MoveTo(x, y)
}

// LineTo adds a straight line to (x, y).
func (s *GG) LineTo(x, y float64) {
	s.ctx.LineTo(x, y)
}

// ClosePath closes the current subpath.
func (s *GG) ClosePath() {
	s.ctx.ClosePath()
}

// Stroke strokes and then clears the current path.
func (s *GG) Stroke() error {
	s.ctx.SetColor(s.strokeColor)
	return s.ctx.Stroke()
}

// Fill fills and then clears the current path.
func (s *GG) Fill() error {
	s.ctx.SetColor(s.fillColor)
	return s.ctx.Fill()
}
