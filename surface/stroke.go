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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a line segment in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// stroker converts paths into closed outline polygons.  The polygons are
// in user space; every subpath gives one polygon.
//
// Buffers are reused between calls.
type stroker struct {
	CTM        matrix.Matrix
	Flatness   float64
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	segs             []strokeSegment // all segments from all subpaths, contiguous
	segsOffsets      []int           // start index of each subpath in segs
	subpathClosed    []bool
	degeneratePoints []vec.Vec2 // subpaths without orientation

	stroke        []vec.Vec2 // outline vertices, all polygons contiguous
	strokeOffsets []int      // start index of each polygon in stroke
}

// outline builds the stroke outlines for p into s.stroke and
// s.strokeOffsets.
func (s *stroker) outline(p path.Path) {
	s.flattenPath(p)

	s.stroke = s.stroke[:0]
	s.strokeOffsets = s.strokeOffsets[:0]

	// only round caps give a mark for a subpath without orientation
	if s.Cap == graphics.LineCapRound {
		for _, pt := range s.degeneratePoints {
			start := len(s.stroke)
			s.addArc(pt, s.Width/2, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
			s.strokeOffsets = append(s.strokeOffsets, start)
		}
	}

	for i := range s.segsOffsets {
		start := len(s.stroke)
		s.strokeSubpath(s.subpath(i), s.subpathClosed[i])
		if len(s.stroke)-start >= 3 {
			s.strokeOffsets = append(s.strokeOffsets, start)
		} else {
			s.stroke = s.stroke[:start]
		}
	}
}

// polygons calls fn for every outline polygon built by the last call to
// outline.  The slice is only valid during the call.
func (s *stroker) polygons(fn func(poly []vec.Vec2)) {
	for i, start := range s.strokeOffsets {
		end := len(s.stroke)
		if i+1 < len(s.strokeOffsets) {
			end = s.strokeOffsets[i+1]
		}
		fn(s.stroke[start:end])
	}
}

func (s *stroker) subpath(i int) []strokeSegment {
	start := s.segsOffsets[i]
	end := len(s.segs)
	if i+1 < len(s.segsOffsets) {
		end = s.segsOffsets[i+1]
	}
	return s.segs[start:end]
}

// transformLinear applies the 2×2 linear part of the CTM to v.
func (s *stroker) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: s.CTM[0]*v.X + s.CTM[2]*v.Y,
		Y: s.CTM[1]*v.X + s.CTM[3]*v.Y,
	}
}

// userTolerance converts the device space flatness into user space.
func (s *stroker) userTolerance() float64 {
	scale := max(
		s.transformLinear(vec.Vec2{X: 1}).Length(),
		s.transformLinear(vec.Vec2{Y: 1}).Length())
	if scale <= 0 {
		return s.Flatness
	}
	return s.Flatness / scale
}

// flattenPath splits p into subpaths of straight segments.
func (s *stroker) flattenPath(p path.Path) {
	s.segs = s.segs[:0]
	s.segsOffsets = s.segsOffsets[:0]
	s.subpathClosed = s.subpathClosed[:0]
	s.degeneratePoints = s.degeneratePoints[:0]

	tol := s.userTolerance()

	var current, start vec.Vec2
	startIdx := 0
	inSubpath := false
	sawDrawing := false

	endSubpath := func(closed bool) {
		if len(s.segs) == startIdx {
			s.degeneratePoints = append(s.degeneratePoints, start)
		} else {
			s.segsOffsets = append(s.segsOffsets, startIdx)
			s.subpathClosed = append(s.subpathClosed, closed)
		}
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath && (len(s.segs) > startIdx || sawDrawing) {
				endSubpath(false)
			}
			current = pts[0]
			start = current
			startIdx = len(s.segs)
			inSubpath = true
			sawDrawing = false

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			s.addSegment(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			flattenQuadratic(current, pts[0], pts[1], tol, s.addSegment)
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			sawDrawing = true
			flattenCubic(current, pts[0], pts[1], pts[2], tol, s.addSegment)
			current = pts[2]

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if current != start {
				s.addSegment(current, start)
			}
			endSubpath(true)
			current = start
			startIdx = len(s.segs)
			inSubpath = false
			sawDrawing = false
		}
	}
	if inSubpath && (len(s.segs) > startIdx || sawDrawing) {
		endSubpath(false)
	}
}

// addSegment appends the segment a→b, skipping segments of zero length.
func (s *stroker) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	s.segs = append(s.segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// strokeSubpath appends the outline polygon of one subpath.  The polygon
// runs forward along the +N side and backward along the -N side.  Closed
// subpaths give a ring with a seam at the start point.
func (s *stroker) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}

	d := s.Width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]

	if closed {
		s.stroke = append(s.stroke, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			next := &segs[(i+1)%len(segs)]
			s.addCorner(segs[i].B, &segs[i], next, d, true)
		}

		s.addCorner(first.A, last, first, d, false)
		for i := len(segs) - 1; i > 0; i-- {
			s.addCorner(segs[i].A, &segs[i-1], &segs[i], d, false)
		}
		s.stroke = append(s.stroke, first.A.Sub(first.N.Mul(d)))
		return
	}

	s.addCap(first.A, first.T.Mul(-1), d)
	s.stroke = append(s.stroke, first.A.Add(first.N.Mul(d)))
	for i := 0; i < len(segs)-1; i++ {
		s.addCorner(segs[i].B, &segs[i], &segs[i+1], d, true)
	}
	s.stroke = append(s.stroke, last.B.Add(last.N.Mul(d)))

	s.addCap(last.B, last.T, d)
	s.stroke = append(s.stroke, last.B.Sub(last.N.Mul(d)))
	for i := len(segs) - 1; i > 0; i-- {
		s.addCorner(segs[i].A, &segs[i-1], &segs[i], d, false)
	}
	s.stroke = append(s.stroke, first.A.Sub(first.N.Mul(d)))
}

// addCorner adds the outline points on one side of the corner P where
// segment a is followed by segment b.  On the +N side the points run from
// a to b, on the -N side from b back to a.
//
// The inner side of a corner passes through P itself.  This keeps the
// outline correct for segments shorter than the line width, where the
// inner offset lines do not intersect.
func (s *stroker) addCorner(P vec.Vec2, a, b *strokeSegment, d float64, positive bool) {
	var o1, o2 vec.Vec2
	if positive {
		o1 = P.Add(a.N.Mul(d))
		o2 = P.Add(b.N.Mul(d))
	} else {
		o1 = P.Sub(b.N.Mul(d))
		o2 = P.Sub(a.N.Mul(d))
	}

	sinTheta := a.T.X*b.T.Y - a.T.Y*b.T.X
	switch {
	case math.Abs(sinTheta) < collinearityThreshold:
		s.stroke = append(s.stroke, o1, o2)
	case (sinTheta > 0) == positive:
		// inner side
		s.stroke = append(s.stroke, o1, P, o2)
	default:
		s.stroke = append(s.stroke, o1)
		s.addJoin(P, a.T, b.T, d, positive)
		s.stroke = append(s.stroke, o2)
	}
}

// addCap adds a line cap at P.  T is the outward tangent direction.
func (s *stroker) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch s.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		s.stroke = append(s.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))

	case graphics.LineCapRound:
		// semicircle from N through T to -N
		s.addArc(P, d, N, -math.Pi, true)
	}
}

// addJoin adds the join geometry on the outer side of the corner P, where
// the tangent changes from T1 to T2.
func (s *stroker) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X

	if cosTheta < cuspCosineThreshold {
		s.addCap(P, T1, d)
		s.addCap(P, T2.Mul(-1), d)
		return
	}

	switch s.Join {
	case graphics.LineJoinMiter:
		// miter length / line width = 1 / cos(θ/2)
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if cosHalf > 0 && 1/cosHalf <= s.MiterLimit+miterEpsilon {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
			bisector := N1.Add(N2)
			if !positive {
				bisector = bisector.Mul(-1)
			}
			if l := bisector.Length(); l > zeroLengthThreshold {
				s.stroke = append(s.stroke, P.Add(bisector.Mul(d/(l*cosHalf))))
			}
		}
		// beyond the miter limit the join is a bevel

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if positive {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if sinTheta > 0 {
				s.addArc(P, d, N1, angle, false)
			} else {
				s.addArc(P, d, N1, -angle, false)
			}
		} else {
			N2 := vec.Vec2{X: T2.Y, Y: -T2.X} // -N of T2
			if sinTheta > 0 {
				s.addArc(P, d, N2, -angle, false)
			} else {
				s.addArc(P, d, N2, angle, false)
			}
		}
	}
}

// addArc adds the vertices of a circular arc around center.  startDir is
// the unit vector towards the start of the arc, sweep is the angle in
// radians (positive = CCW).
func (s *stroker) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		s.transformLinear(vec.Vec2{X: radius}).Length(),
		s.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius >= s.Flatness {
		// a chord spanning angle θ deviates by r(1 - cos(θ/2)) from the arc
		step := 2 * math.Acos(1-s.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	dt := sweep / float64(n)
	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		cos, sin := math.Cos(float64(i)*dt), math.Sin(float64(i)*dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		s.stroke = append(s.stroke, center.Add(dir.Mul(radius)))
	}
}

// signedArea returns twice the signed area of the polygon.
func signedArea(poly []vec.Vec2) float64 {
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}
