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

package mandelbrot

import (
	"fmt"
	"maps"
	"slices"
)

// Preset is a named set of fixed rendering parameters.
type Preset struct {
	Name string

	// CenterX and CenterY give the center of the zoomed viewport,
	// see [Viewport.Zoom].
	CenterX, CenterY float64

	// Scale is the zoom factor applied to [Base].
	Scale float64

	Colorizer Colorizer
	Order     Order
}

// Viewport returns the region of the complex plane covered by p.
func (p Preset) Viewport() Viewport {
	return Base.Zoom(p.CenterX, p.CenterY, p.Scale)
}

// Known presets.
var (
	// Reference covers the whole of [Base] and stores pixels in
	// column-major order, which a row-major canvas shows with the real
	// axis horizontal.
	Reference = Preset{
		Name:      "reference",
		CenterX:   2.0,
		CenterY:   0.0,
		Scale:     1,
		Colorizer: Discrete{},
		Order:     ColumnMajor,
	}

	// Zoom is a 100× magnification near the main cardioid.
	Zoom = Preset{
		Name:      "zoom",
		CenterX:   -0.5,
		CenterY:   -0.5,
		Scale:     0.01,
		Colorizer: Discrete{},
		Order:     RowMajor,
	}

	// Deep is a 10⁷× magnification rendered with smooth coloring.
	Deep = Preset{
		Name:      "deep",
		CenterX:   -0.55,
		CenterY:   -0.55,
		Scale:     0.0000001,
		Colorizer: Smooth{},
		Order:     RowMajor,
	}
)

// DefaultPreset is used when no preset is configured.
var DefaultPreset = Zoom

// Presets lists the known presets by name.
var Presets = map[string]Preset{
	Reference.Name: Reference,
	Zoom.Name:      Zoom,
	Deep.Name:      Deep,
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, error) {
	p, ok := Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames returns the names of all known presets in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}
