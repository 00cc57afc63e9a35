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
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// Pixels with alpha at or above opaque count as painted, pixels with
// alpha at or below blank count as untouched.
const (
	opaque = 0xf0
	blank  = 0x10
)

type pixelCheck struct {
	X, Y    int
	Painted bool
}

// checkPixels verifies the alpha channel of img at the given positions.
// On failure a debug image is written.
func checkPixels(t *testing.T, name string, img *image.RGBA, checks []pixelCheck) {
	t.Helper()

	failed := false
	for _, c := range checks {
		a := img.RGBAAt(c.X, c.Y).A
		if c.Painted && a < opaque {
			t.Errorf("pixel (%d,%d): alpha %d, want painted", c.X, c.Y, a)
			failed = true
		} else if !c.Painted && a > blank {
			t.Errorf("pixel (%d,%d): alpha %d, want clear", c.X, c.Y, a)
			failed = true
		}
	}
	if failed {
		_ = writeDebugImage(name, img, checks)
	}
}

// writeDebugImage writes a 2-panel image: the canvas alpha channel (left)
// and the checked pixels (right, green=painted, red=clear).
func writeDebugImage(name string, img *image.RGBA, checks []pixelCheck) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, 2*w, h))
	for y := range h {
		for x := range w {
			a := img.RGBAAt(b.Min.X+x, b.Min.Y+y).A
			out.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})
			out.Set(x+w, y, color.RGBA{A: 255})
		}
	}
	for _, c := range checks {
		col := color.RGBA{R: 255, A: 255}
		if c.Painted {
			col = color.RGBA{G: 255, A: 255}
		}
		out.Set(c.X-b.Min.X+w, c.Y-b.Min.Y, col)
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func strokeTriangle(s PathStroker, ax, ay, bx, by, cx, cy float64) error {
	s.BeginPath()
	s.MoveTo(ax, ay)
	s.LineTo(bx, by)
	s.LineTo(cx, cy)
	s.LineTo(ax, ay)
	return s.Stroke()
}

// TestCanvasStrokeTriangle checks that stroking a triangle paints the
// outline and leaves the interior and exterior untouched.
func TestCanvasStrokeTriangle(t *testing.T) {
	c := NewCanvas(40, 40)
	c.SetLineWidth(2)
	if err := strokeTriangle(c, 20, 4, 4, 36, 36, 36); err != nil {
		t.Fatal(err)
	}

	checkPixels(t, "canvas_triangle", c.Image(), []pixelCheck{
		{20, 35, true}, // bottom edge
		{20, 36, true},
		{11, 20, true},  // left edge
		{28, 20, true},  // right edge
		{20, 25, false}, // interior
		{20, 33, false},
		{20, 38, false}, // exterior
		{2, 2, false},
		{38, 20, false},
	})
}

// TestCanvasClosedPath checks that ClosePath joins the last segment to the
// first, while a path which only returns to its start point gets caps.
func TestCanvasClosedPath(t *testing.T) {
	open := NewCanvas(40, 40)
	open.SetLineWidth(2)
	if err := strokeTriangle(open, 20, 4, 4, 36, 36, 36); err != nil {
		t.Fatal(err)
	}

	closed := NewCanvas(40, 40)
	closed.SetLineWidth(2)
	closed.BeginPath()
	closed.MoveTo(20, 4)
	closed.LineTo(4, 36)
	closed.LineTo(36, 36)
	closed.ClosePath()
	if err := closed.Stroke(); err != nil {
		t.Fatal(err)
	}

	// the miter join at the apex reaches above the butt caps
	rowSum := func(img *image.RGBA, y0, y1 int) int {
		sum := 0
		for y := y0; y < y1; y++ {
			for x := range 40 {
				sum += int(img.RGBAAt(x, y).A)
			}
		}
		return sum
	}
	if a, b := rowSum(open.Image(), 0, 4), rowSum(closed.Image(), 0, 4); b <= a {
		t.Errorf("apex coverage: closed %d, open %d", b, a)
	}

	// away from the apex both outlines agree
	for y := 12; y < 40; y++ {
		for x := range 40 {
			a := int(open.Image().RGBAAt(x, y).A)
			b := int(closed.Image().RGBAAt(x, y).A)
			if a-b > 4 || b-a > 4 {
				t.Fatalf("pixel (%d,%d): open %d, closed %d", x, y, a, b)
			}
		}
	}
}

func TestCanvasLineCaps(t *testing.T) {
	type testCase struct {
		cap    graphics.LineCapStyle
		checks []pixelCheck
	}
	cases := []testCase{
		{graphics.LineCapButt, []pixelCheck{{10, 9, true}, {10, 10, true}, {4, 10, false}, {20, 10, false}}},
		{graphics.LineCapSquare, []pixelCheck{{10, 9, true}, {3, 10, true}, {21, 10, true}, {23, 10, false}}},
		{graphics.LineCapRound, []pixelCheck{{10, 9, true}, {4, 10, true}, {20, 10, true}, {23, 10, false}}},
	}
	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			c := NewCanvas(30, 20)
			c.Cap = tc.cap
			c.SetLineWidth(4)
			c.BeginPath()
			c.MoveTo(5, 10)
			c.LineTo(20, 10)
			if err := c.Stroke(); err != nil {
				t.Fatal(err)
			}
			checkPixels(t, "canvas_cap_"+tc.cap.String(), c.Image(), tc.checks)
		})
	}
}

// TestCanvasRoundDot checks that a zero-length subpath with round caps
// paints a disk.
func TestCanvasRoundDot(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Cap = graphics.LineCapRound
	c.SetLineWidth(8)
	c.BeginPath()
	c.MoveTo(10, 10)
	c.LineTo(10, 10)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	checkPixels(t, "canvas_dot", c.Image(), []pixelCheck{
		{9, 9, true},
		{10, 10, true},
		{10, 15, false},
		{15, 10, false},
	})

	// butt caps leave no mark
	c = NewCanvas(20, 20)
	c.SetLineWidth(8)
	c.BeginPath()
	c.MoveTo(10, 10)
	c.LineTo(10, 10)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	checkPixels(t, "canvas_dot_butt", c.Image(), []pixelCheck{{9, 9, false}, {10, 10, false}})
}

func TestCanvasCTM(t *testing.T) {
	c := NewCanvas(20, 20)
	c.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	c.SetLineWidth(1)
	c.BeginPath()
	c.MoveTo(1, 5)
	c.LineTo(9, 5)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	checkPixels(t, "canvas_ctm", c.Image(), []pixelCheck{
		{10, 9, true},
		{10, 10, true},
		{10, 12, false},
		{10, 7, false},
		{1, 10, false},
		{18, 10, false},
	})
}

func TestCanvasStrokeColor(t *testing.T) {
	c := NewCanvas(10, 10)
	red := color.RGBA{R: 255, A: 255}
	c.SetStrokeColor(red)
	c.SetLineWidth(4)
	c.BeginPath()
	c.MoveTo(0, 5)
	c.LineTo(10, 5)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	if got := c.Image().RGBAAt(5, 4); got != red {
		t.Errorf("pixel (5,4) = %v, want %v", got, red)
	}
}

// TestCanvasStrokeClearsPath checks that a second Stroke without a new
// path paints nothing.
func TestCanvasStrokeClearsPath(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetLineWidth(2)
	c.BeginPath()
	c.MoveTo(0, 5)
	c.LineTo(10, 5)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	if len(c.path.Cmds) != 0 {
		t.Errorf("path not cleared after Stroke")
	}

	c.SetStrokeColor(color.RGBA{B: 255, A: 255})
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	if got := c.Image().RGBAAt(5, 5); got.B != 0 {
		t.Errorf("second Stroke painted %v", got)
	}
}

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(10, 10)
	red := color.RGBA{R: 255, A: 255}
	c.SetFillColor(red)
	c.BeginPath()
	c.MoveTo(2, 2)
	c.LineTo(8, 2)
	c.LineTo(8, 8)
	c.LineTo(2, 8)
	c.ClosePath()
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}

	if got := c.Image().RGBAAt(5, 5); got != red {
		t.Errorf("inside: %v", got)
	}
	for _, p := range []image.Point{{1, 1}, {8, 8}, {0, 5}, {9, 5}} {
		if got := c.Image().RGBAAt(p.X, p.Y); got.A != 0 {
			t.Errorf("outside %v: %v", p, got)
		}
	}
}

func TestCanvasPutImageData(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(color.White)

	pix := []byte{
		1, 2, 3, 255, 4, 5, 6, 255,
		7, 8, 9, 255, 10, 11, 12, 128,
	}
	if err := c.PutImageData(pix, 2, 2, 1, 2); err != nil {
		t.Fatal(err)
	}

	img := c.Image()
	want := map[image.Point]color.RGBA{
		{1, 2}: {1, 2, 3, 255},
		{2, 2}: {4, 5, 6, 255},
		{1, 3}: {7, 8, 9, 255},
		{2, 3}: {10, 11, 12, 128}, // replaced, not blended
		{0, 0}: {255, 255, 255, 255},
		{3, 3}: {255, 255, 255, 255},
	}
	for p, col := range want {
		if got := img.RGBAAt(p.X, p.Y); got != col {
			t.Errorf("pixel %v = %v, want %v", p, got, col)
		}
	}

	err := c.PutImageData(pix[:12], 2, 2, 0, 0)
	if !errors.Is(err, ErrBufferSize) {
		t.Errorf("short buffer: got %v, want ErrBufferSize", err)
	}
}

// TestCanvasOutside checks that paths outside the canvas are ignored.
func TestCanvasOutside(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetLineWidth(2)
	c.BeginPath()
	c.MoveTo(-50, -50)
	c.LineTo(-20, -50)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}

	// partly visible
	c.BeginPath()
	c.MoveTo(-50, 5)
	c.LineTo(50, 5)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	checkPixels(t, "canvas_outside", c.Image(), []pixelCheck{
		{0, 4, true}, {9, 5, true}, {5, 1, false},
	})
}

func BenchmarkCanvasStroke(b *testing.B) {
	c := NewCanvas(512, 512)
	c.SetLineWidth(0.5)
	b.ReportAllocs()
	for b.Loop() {
		_ = strokeTriangle(c, 256, 0, 0, 512, 512, 512)
	}
}
