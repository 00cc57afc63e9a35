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

package fractal

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fractal/mandelbrot"
	"seehuhn.de/go/fractal/sierpinski"
	"seehuhn.de/go/fractal/testcases"
)

// TestExamples renders every test case.  Mandelbrot images must match the
// buffer computed directly by a [mandelbrot.Renderer].  Sierpinski images
// must be painted along every edge of the tree and clear in the center
// of the central hole.
func TestExamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				img, err := RenderExample(tc)
				if err != nil {
					t.Fatal(err)
				}
				if img.Bounds() != image.Rect(0, 0, tc.Width, tc.Width) {
					t.Fatalf("image bounds %v", img.Bounds())
				}

				switch op := tc.Op.(type) {
				case testcases.Mandelbrot:
					expected := expectedMandelbrot(t, tc.Width, op)
					if err := compareImages(name, expected, img); err != nil {
						t.Error(err)
					}
				case testcases.Sierpinski:
					checkSierpinski(t, tc.Width, op, img)
				}
			})
		}
	}
}

// expectedMandelbrot computes the pixels of a Mandelbrot test case
// without going through a drawing surface.
func expectedMandelbrot(t *testing.T, width int, op testcases.Mandelbrot) *image.RGBA {
	t.Helper()

	p, err := mandelbrot.LookupPreset(op.Preset)
	if err != nil {
		t.Fatal(err)
	}
	r := mandelbrot.NewRenderer(p, op.Iterations)
	if op.Colorizer != "" {
		r.Colorizer, err = mandelbrot.ColorizerByName(op.Colorizer)
		if err != nil {
			t.Fatal(err)
		}
	}
	buf, err := r.Render(width, width)
	if err != nil {
		t.Fatal(err)
	}
	return &image.RGBA{
		Pix:    buf,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, width),
	}
}

// checkSierpinski verifies a rendered Sierpinski test case.  Positions
// are mapped through the CTM of the case.
func checkSierpinski(t *testing.T, width int, op testcases.Sierpinski, img *image.RGBA) {
	t.Helper()

	ctm := op.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	pixel := func(x, y float64) (int, int) {
		dx := ctm[0]*x + ctm[2]*y + ctm[4]
		dy := ctm[1]*x + ctm[3]*y + ctm[5]
		px := min(max(int(math.Floor(dx)), 0), width-1)
		py := min(max(int(math.Floor(dy)), 0), width-1)
		return px, py
	}

	tree := sierpinski.Subdivide(sierpinski.Root(width), op.Depth)
	missing := 0
	for _, e := range tree.Edges() {
		mx := float64(e.From.X+e.To.X) / 2
		my := float64(e.From.Y+e.To.Y) / 2
		px, py := pixel(mx, my)
		if img.RGBAAt(px, py).A == 0 {
			missing++
			if missing <= 5 {
				t.Errorf("edge %v: pixel (%d,%d) not painted", e, px, py)
			}
		}
	}
	if missing > 5 {
		t.Errorf("%d edges not painted", missing)
	}

	// The triangle spanned by the edge midpoints of the root is never
	// subdivided.
	root := tree.Root()
	ab := sierpinski.Midpoint(root.A, root.B)
	bc := sierpinski.Midpoint(root.B, root.C)
	ca := sierpinski.Midpoint(root.C, root.A)
	cx := float64(ab.X+bc.X+ca.X) / 3
	cy := float64(ab.Y+bc.Y+ca.Y) / 3
	px, py := pixel(cx, cy)
	if a := img.RGBAAt(px, py).A; a != 0 {
		t.Errorf("center of the hole (%d,%d) painted, alpha %d", px, py, a)
	}
}

func TestExamplesParallel(t *testing.T) {
	find := func(name string) testcases.TestCase {
		for _, tc := range testcases.All["mandelbrot"] {
			if tc.Name == name {
				return tc
			}
		}
		t.Fatalf("no test case %q", name)
		return testcases.TestCase{}
	}

	serial, err := RenderExample(find("deep"))
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := RenderExample(find("deep_parallel"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(serial.Pix, parallel.Pix) {
		t.Error("parallel rendering differs from serial rendering")
	}
}

// TestExampleScaled checks that the canvas transformation of the
// "scaled" case keeps the drawing inside the central quarter.
func TestExampleScaled(t *testing.T) {
	var tc testcases.TestCase
	for _, c := range testcases.All["sierpinski"] {
		if c.Name == "scaled" {
			tc = c
		}
	}
	img, err := RenderExample(tc)
	if err != nil {
		t.Fatal(err)
	}

	inner := image.Rect(31, 31, 97, 97)
	for y := range tc.Width {
		for x := range tc.Width {
			if image.Pt(x, y).In(inner) {
				continue
			}
			if a := img.RGBAAt(x, y).A; a != 0 {
				t.Fatalf("pixel (%d,%d) painted outside the scaled triangle", x, y)
			}
		}
	}
}

func TestExampleOptionsErrors(t *testing.T) {
	cases := []testcases.TestCase{
		{Name: "bad_preset", Width: 4, Op: testcases.Mandelbrot{Preset: "nowhere"}},
		{Name: "bad_color", Width: 4, Op: testcases.Mandelbrot{Preset: "zoom", Colorizer: "plaid"}},
		{Name: "no_op", Width: 4},
	}
	for _, tc := range cases {
		if _, err := RenderExample(tc); err == nil {
			t.Errorf("%s: no error", tc.Name)
		}
	}
}

// compareImages requires the two images to be identical.  Differences are
// written to the debug directory.
func compareImages(name string, expected, actual *image.RGBA) error {
	if expected.Bounds().Size() != actual.Bounds().Size() {
		return fmt.Errorf("size %v, expected %v",
			actual.Bounds().Size(), expected.Bounds().Size())
	}

	diffCount := 0
	for i := 0; i < len(actual.Pix); i += 4 {
		if !bytes.Equal(expected.Pix[i:i+4], actual.Pix[i:i+4]) {
			diffCount++
		}
	}
	if diffCount > 0 {
		writeDiffImage(name, expected, actual)
		return fmt.Errorf("%d of %d pixels differ", diffCount, len(actual.Pix)/4)
	}
	return nil
}

// writeDiffImage shows the expected brightness in red and the actual
// brightness in green.
func writeDiffImage(name string, expected, actual *image.RGBA) {
	os.MkdirAll("debug", 0755)

	b := actual.Bounds()
	img := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, color.RGBA{
				R: color.GrayModel.Convert(expected.At(x, y)).(color.Gray).Y,
				G: color.GrayModel.Convert(actual.At(x, y)).(color.Gray).Y,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}

func TestCompareImages(t *testing.T) {
	t.Chdir(t.TempDir())

	a := image.NewRGBA(image.Rect(0, 0, 4, 4))
	b := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := compareImages("same", a, b); err != nil {
		t.Errorf("identical images: %v", err)
	}

	b.SetRGBA(1, 2, color.RGBA{R: 1, A: 255})
	if err := compareImages("changed", a, b); err == nil {
		t.Error("difference not detected")
	}
	if _, err := os.Stat(filepath.Join("debug", "changed.png")); err != nil {
		t.Errorf("no diff image: %v", err)
	}

	c := image.NewRGBA(image.Rect(0, 0, 5, 4))
	if err := compareImages("size", a, c); err == nil {
		t.Error("size mismatch not detected")
	}
}
