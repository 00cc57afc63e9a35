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
	"fmt"
	"image/color"
	"slices"
)

// OpKind identifies a recorded surface call.
type OpKind int

// These are the calls recorded by a [Recorder].
const (
	OpPutImageData OpKind = iota
	OpSetLineWidth
	OpSetStrokeColor
	OpSetFillColor
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpClosePath
	OpStroke
	OpFill
)

var opNames = [...]string{
	OpPutImageData:   "PutImageData",
	OpSetLineWidth:   "SetLineWidth",
	OpSetStrokeColor: "SetStrokeColor",
	OpSetFillColor:   "SetFillColor",
	OpBeginPath:      "BeginPath",
	OpMoveTo:         "MoveTo",
	OpLineTo:         "LineTo",
	OpClosePath:      "ClosePath",
	OpStroke:         "Stroke",
	OpFill:           "Fill",
}

func (k OpKind) String() string {
	if k >= 0 && int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is a single recorded call.  Only the fields relevant for Kind are
// set.
type Op struct {
	Kind OpKind

	X, Y       float64 // MoveTo, LineTo
	Width      float64 // SetLineWidth
	Color      color.Color
	Pix        []byte // PutImageData, a copy of the buffer
	PixW, PixH int
	PixX, PixY int
}

func (op Op) String() string {
	switch op.Kind {
	case OpMoveTo, OpLineTo:
		return fmt.Sprintf("%s(%g, %g)", op.Kind, op.X, op.Y)
	case OpSetLineWidth:
		return fmt.Sprintf("%s(%g)", op.Kind, op.Width)
	case OpSetStrokeColor, OpSetFillColor:
		return fmt.Sprintf("%s(%v)", op.Kind, op.Color)
	case OpPutImageData:
		return fmt.Sprintf("%s(%dx%d at %d,%d)", op.Kind, op.PixW, op.PixH, op.PixX, op.PixY)
	default:
		return op.Kind.String()
	}
}

// Recorder is a [Surface] which records all calls.
// Paint operations fail with the configured error, if any.
type Recorder struct {
	Ops []Op

	// Err, if non-nil, is returned by PutImageData, Stroke and Fill.
	Err error
}

var _ Surface = (*Recorder)(nil)

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// PutImageData implements the [ImagePainter] interface.
// The buffer is copied.
func (r *Recorder) PutImageData(pix []byte, width, height, x, y int) error {
	if err := checkBuffer(pix, width, height); err != nil {
		return err
	}
	r.Ops = append(r.Ops, Op{
		Kind: OpPutImageData,
		Pix:  slices.Clone(pix),
		PixW: width, PixH: height,
		PixX: x, PixY: y,
	})
	return r.Err
}

// SetLineWidth records an [OpSetLineWidth] call.
func (r *Recorder) SetLineWidth(w float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSetLineWidth, Width: w})
}

// SetStrokeColor records an [OpSetStrokeColor] call.
func (r *Recorder) SetStrokeColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpSetStrokeColor, Color: c})
}

// SetFillColor records an [OpSetFillColor] call.
func (r *Recorder) SetFillColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpSetFillColor, Color: c})
}

// BeginPath records an [OpBeginPath] call.
func (r *Recorder) BeginPath() {
	r.Ops = append(r.Ops, Op{Kind: OpBeginPath})
}

// MoveTo records an [OpMoveTo] call.
func (r *Recorder) MoveTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpMoveTo, X: x, Y: y})
}

// LineTo records an [OpLineTo] call.
func (r *Recorder) LineTo(x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLineTo, X: x, Y: y})
}

// ClosePath records an [OpClosePath] call.
func (r *Recorder) ClosePath() {
	r.Ops = append(r.Ops, Op{Kind: OpClosePath})
}

// Stroke records an [OpStroke] call and returns r.Err.
func (r *Recorder) Stroke() error {
	r.Ops = append(r.Ops, Op{Kind: OpStroke})
	return r.Err
}

// Fill records an [OpFill] call and returns r.Err.
func (r *Recorder) Fill() error {
	r.Ops = append(r.Ops, Op{Kind: OpFill})
	return r.Err
}
