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

// Command export writes the test case definitions to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fractal/sierpinski"
	"seehuhn.de/go/fractal/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
	Op    string `json:"op"`

	Preset     string `json:"preset,omitempty"`
	Iterations int    `json:"iterations,omitempty"`
	Colorizer  string `json:"colorizer,omitempty"`
	Workers    int    `json:"workers,omitempty"`

	Depth      int       `json:"depth,omitempty"`
	Nodes      int       `json:"nodes,omitempty"`
	Edges      [][4]int  `json:"edges,omitempty"`
	LineWidth  float64   `json:"line_width,omitempty"`
	LineCap    string    `json:"line_cap,omitempty"`
	LineJoin   string    `json:"line_join,omitempty"`
	MiterLimit float64   `json:"miter_limit,omitempty"`
	CTM        []float64 `json:"ctm,omitempty"`
}

// maxExportedEdges limits the size of the edge list per case.
const maxExportedEdges = 300

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:  category + "_" + tc.Name,
		Width: tc.Width,
	}

	switch op := tc.Op.(type) {
	case testcases.Mandelbrot:
		jtc.Op = "mandelbrot"
		jtc.Preset = op.Preset
		jtc.Iterations = op.Iterations
		jtc.Colorizer = op.Colorizer
		jtc.Workers = op.Workers
	case testcases.Sierpinski:
		jtc.Op = "sierpinski"
		jtc.Depth = op.Depth
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
		if op.CTM != (matrix.Matrix{}) {
			jtc.CTM = op.CTM[:]
		}

		tree := sierpinski.Subdivide(sierpinski.Root(tc.Width), op.Depth)
		jtc.Nodes = tree.Len()
		for _, e := range tree.Edges() {
			if len(jtc.Edges) >= maxExportedEdges {
				break
			}
			jtc.Edges = append(jtc.Edges, [4]int{e.From.X, e.From.Y, e.To.X, e.To.Y})
		}
	}
	return jtc
}
