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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// PDF is a vector surface which writes a single page PDF file.
// One unit of path coordinates is one PDF point, and the origin is in the
// top-left corner of the page.
//
// PDF does not allow changes of the graphics state while a path is under
// construction.  Line width and colors set in the middle of a path
// therefore take effect for the next path.
type PDF struct {
	page *document.Page

	width       float64
	strokeColor color.Color
	fillColor   color.Color
	dirty       bool

	inPath bool
}

var _ PathStroker = (*PDF)(nil)

// NewPDF creates the file fname, with a page of the given size in PDF
// points.  The file is complete once Close has been called.
func NewPDF(fname string, width, height float64) (*PDF, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// PDF origin is bottom-left; flip the y-axis.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	return &PDF{
		page:        page,
		width:       1,
		strokeColor: color.Black,
		fillColor:   color.Black,
		dirty:       true,
	}, nil
}

// Close finishes the page and closes the file.  Errors which occurred
// while drawing are reported here.
func (s *PDF) Close() error {
	return s.page.Close()
}

// SetLineWidth sets the stroke width in PDF points.
func (s *PDF) SetLineWidth(w float64) {
	s.width = w
	s.dirty = true
}

// SetStrokeColor sets the stroke color.  Colors are written as
// DeviceGray.
func (s *PDF) SetStrokeColor(c color.Color) {
	s.strokeColor = c
	s.dirty = true
}

// SetFillColor sets the fill color.  Colors are written as DeviceGray.
func (s *PDF) SetFillColor(c color.Color) {
	s.fillColor = c
	s.dirty = true
}

// BeginPath starts a new path.  A path which was started but not painted
// is continued.
func (s *PDF) BeginPath() {
	if !s.inPath {
		s.applyState()
	}
}

// MoveTo starts a new subpath at (x, y).
func (s *PDF) MoveTo(x, y float64) {
	if !s.inPath {
		s.applyState()
		s.inPath = true
	}
	s.page.MoveTo(x, y)
}

// LineTo adds a straight line to (x, y).  Without a current point,
// LineTo acts like MoveTo.
func (s *PDF) LineTo(x, y float64) {
	if !s.inPath {
		s.MoveTo(x, y)
		return
	}
	s.page.LineTo(x, y)
}

// ClosePath closes the current subpath.
func (s *PDF) ClosePath() {
	if s.inPath {
		s.page.ClosePath()
	}
}

// Stroke paints the current path.  Write errors are reported by
// [PDF.Close].
func (s *PDF) Stroke() error {
	if !s.inPath {
		return nil
	}
	s.page.Stroke()
	s.inPath = false
	return nil
}

// Fill fills the current path using the nonzero winding rule.
func (s *PDF) Fill() error {
	if !s.inPath {
		return nil
	}
	s.page.Fill()
	s.inPath = false
	return nil
}

func (s *PDF) applyState() {
	if !s.dirty {
		return
	}
	s.page.SetLineWidth(s.width)
	s.page.SetStrokeColor(gray(s.strokeColor))
	s.page.SetFillColor(gray(s.fillColor))
	s.dirty = false
}

// gray converts c to a PDF DeviceGray color.
func gray(c color.Color) pdfcolor.DeviceGray {
	g := color.GrayModel.Convert(c).(color.Gray)
	return pdfcolor.DeviceGray(float64(g.Y) / 255)
}
