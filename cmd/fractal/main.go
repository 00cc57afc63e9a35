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

// Command fractal draws a Mandelbrot or Sierpinski image to a file.
//
// Usage:
//
//	fractal [-v] mandelbrot [-width N] [-iter N] [-preset name] [-color name]
//	                        [-workers N] [-surface canvas|gg] [-o out.png]
//	fractal [-v] sierpinski [-width N] [-depth N] [-surface canvas|gg|pdf] [-o file]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"seehuhn.de/go/fractal"
	"seehuhn.de/go/fractal/mandelbrot"
	"seehuhn.de/go/fractal/surface"
)

var errUsage = errors.New("usage: fractal [-v] mandelbrot|sierpinski [flags]")

// maxWidth bounds the image size, so that the surface can be allocated.
const maxWidth = 16384

func checkWidth(width uint) error {
	if width == 0 || width > maxWidth {
		return fmt.Errorf("width %d out of range 1..%d", width, maxWidth)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		slog.Error("fractal failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	global := flag.NewFlagSet("fractal", flag.ContinueOnError)
	global.SetOutput(stderr)
	verbose := global.Bool("v", false, "log debug messages")
	if err := global.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	fractal.SetLogger(logger)

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return errUsage
	}
	switch rest[0] {
	case "mandelbrot":
		return runMandelbrot(rest[1:], stderr)
	case "sierpinski":
		return runSierpinski(rest[1:], stderr)
	default:
		return fmt.Errorf("unknown command %q: %w", rest[0], errUsage)
	}
}

func runMandelbrot(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Uint("width", 512, "image width and height in pixels")
	iter := fs.Int("iter", 256, "iteration limit")
	presetName := fs.String("preset", mandelbrot.DefaultPreset.Name,
		"viewport preset ("+strings.Join(mandelbrot.PresetNames(), ", ")+")")
	colorName := fs.String("color", "", "coloring, discrete or smooth (default: the preset's)")
	workers := fs.Int("workers", runtime.NumCPU(), "number of goroutines")
	kind := fs.String("surface", "canvas", "drawing surface, canvas or gg")
	out := fs.String("o", "mandelbrot.png", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := checkWidth(*width); err != nil {
		return err
	}
	p, err := mandelbrot.LookupPreset(*presetName)
	if err != nil {
		return err
	}
	opts := []fractal.Option{fractal.WithPreset(p), fractal.WithWorkers(*workers)}
	if *colorName != "" {
		col, err := mandelbrot.ColorizerByName(*colorName)
		if err != nil {
			return err
		}
		opts = append(opts, fractal.WithColorizer(col))
	}

	w := int(*width)
	switch *kind {
	case "canvas":
		c := surface.NewCanvas(w, w)
		if _, err := fractal.Mandelbrot(*width, *iter, c, opts...); err != nil {
			return err
		}
		return writePNG(*out, func(wr io.Writer) error { return png.Encode(wr, c.Image()) })
	case "gg":
		s := surface.NewGG(w, w)
		defer s.Close()
		if _, err := fractal.Mandelbrot(*width, *iter, s, opts...); err != nil {
			return err
		}
		return writePNG(*out, s.EncodePNG)
	default:
		return fmt.Errorf("unsupported surface %q for mandelbrot", *kind)
	}
}

func runSierpinski(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("sierpinski", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Uint("width", 512, "image width and height in pixels")
	depth := fs.Int("depth", 6, "subdivision depth")
	lineWidth := fs.Float64("line-width", fractal.DefaultLineWidth, "line width in pixels")
	kind := fs.String("surface", "canvas", "drawing surface, canvas, gg or pdf")
	out := fs.String("o", "", "output file (default sierpinski.png or sierpinski.pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkWidth(*width); err != nil {
		return err
	}
	if *out == "" {
		*out = "sierpinski.png"
		if *kind == "pdf" {
			*out = "sierpinski.pdf"
		}
	}

	opts := []fractal.Option{fractal.WithLineWidth(*lineWidth)}
	w := int(*width)
	switch *kind {
	case "canvas":
		c := surface.NewCanvas(w, w)
		c.Clear(color.White)
		if _, err := fractal.Sierpinski(*width, *depth, c, opts...); err != nil {
			return err
		}
		return writePNG(*out, func(wr io.Writer) error { return png.Encode(wr, c.Image()) })
	case "gg":
		s := surface.NewGG(w, w)
		defer s.Close()
		s.Clear(color.White)
		if _, err := fractal.Sierpinski(*width, *depth, s, opts...); err != nil {
			return err
		}
		return writePNG(*out, s.EncodePNG)
	case "pdf":
		page, err := surface.NewPDF(*out, float64(w), float64(w))
		if err != nil {
			return err
		}
		if _, err := fractal.Sierpinski(*width, *depth, page, opts...); err != nil {
			page.Close()
			return err
		}
		return page.Close()
	default:
		return fmt.Errorf("unsupported surface %q for sierpinski", *kind)
	}
}

func writePNG(fname string, encode func(io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("image written", "file", fname)
	return nil
}
