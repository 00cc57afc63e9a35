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

// Command genref renders every test case for visual inspection.
// Each case is written as a PNG file using the software canvas.
// Sierpinski cases are also written as PDF files, to compare the
// canvas stroker against a PDF viewer.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/surface"
	"seehuhn.de/go/fractal/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			pngPath := filepath.Join(refDir, name+".png")
			if err := writePNG(tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if _, ok := tc.Op.(testcases.Sierpinski); ok {
				pdfPath := filepath.Join(refDir, name+".pdf")
				if err := writePDF(tc, pdfPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func writePNG(tc testcases.TestCase, pngPath string) error {
	img, err := fractal.RenderExample(tc)
	if err != nil {
		return err
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writePDF draws the case on a PDF page of tc.Width×tc.Width points.
// The canvas transformation and stroke styles are not applied.
func writePDF(tc testcases.TestCase, pdfPath string) error {
	op := tc.Op.(testcases.Sierpinski)

	page, err := surface.NewPDF(pdfPath, float64(tc.Width), float64(tc.Width))
	if err != nil {
		return err
	}
	_, err = fractal.Sierpinski(uint(tc.Width), op.Depth, page, fractal.WithLineWidth(op.Width))
	if err != nil {
		page.Close()
		return err
	}
	return page.Close()
}
