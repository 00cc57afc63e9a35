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

package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMandelbrotCommand(t *testing.T) {
	for _, kind := range []string{"canvas", "gg"} {
		t.Run(kind, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "m.png")
			var stderr bytes.Buffer
			err := run([]string{"-v", "mandelbrot",
				"-width", "24", "-iter", "30", "-preset", "reference",
				"-color", "smooth", "-workers", "3",
				"-surface", kind, "-o", out}, &stderr)
			if err != nil {
				t.Fatal(err)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if img.Bounds().Dx() != 24 {
				t.Errorf("image size %v", img.Bounds())
			}
			if !strings.Contains(stderr.String(), "mandelbrot rendered") {
				t.Errorf("no debug output:\n%s", stderr.String())
			}
		})
	}
}

func TestSierpinskiCommand(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		kind, name, magic string
	}{
		{"canvas", "s.png", "\x89PNG"},
		{"gg", "s-gg.png", "\x89PNG"},
		{"pdf", "s.pdf", "%PDF-"},
	}
	for _, tc := range cases {
		out := filepath.Join(dir, tc.name)
		var stderr bytes.Buffer
		err := run([]string{"sierpinski", "-width", "64", "-depth", "3",
			"-surface", tc.kind, "-o", out}, &stderr)
		if err != nil {
			t.Fatalf("%s: %v", tc.kind, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte(tc.magic)) {
			t.Errorf("%s: output starts with %q", tc.kind, data[:min(8, len(data))])
		}
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer

	if err := run(nil, &stderr); !errors.Is(err, errUsage) {
		t.Errorf("no command: got %v", err)
	}
	if err := run([]string{"koch"}, &stderr); !errors.Is(err, errUsage) {
		t.Errorf("unknown command: got %v", err)
	}

	bad := [][]string{
		{"mandelbrot", "-preset", "nowhere", "-o", filepath.Join(dir, "a.png")},
		{"mandelbrot", "-color", "plaid", "-o", filepath.Join(dir, "b.png")},
		{"mandelbrot", "-surface", "pdf", "-o", filepath.Join(dir, "c.pdf")},
		{"mandelbrot", "-width", "0", "-o", filepath.Join(dir, "d.png")},
		{"mandelbrot", "-width", "2147483648", "-o", filepath.Join(dir, "f.png")},
		{"sierpinski", "-width", "2147483648", "-o", filepath.Join(dir, "g.png")},
		{"sierpinski", "-surface", "svg", "-o", filepath.Join(dir, "e.svg")},
		{"sierpinski", "-nosuchflag"},
	}
	for _, args := range bad {
		if err := run(args, &stderr); err == nil {
			t.Errorf("%v: no error", args)
		}
	}
}
