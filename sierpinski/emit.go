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

package sierpinski

import (
	"iter"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Edge is a line segment between two pixel positions.
type Edge struct {
	From, To Point
}

// Edges returns the three edges a→b, b→c, c→a of the triangle.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{From: t.A, To: t.B},
		{From: t.B, To: t.C},
		{From: t.C, To: t.A},
	}
}

// Path returns the outline of the triangle as a path which starts and
// ends at corner A.
func (t Triangle) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{t.A.vec()}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{t.B.vec()}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{t.C.vec()}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{t.A.vec()})
	}
}

func (p Point) vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Walk calls fn for every node of the tree in depth-first pre-order,
// parents before their children and children in arena order.  The
// arguments of fn are the arena index and the node.  Walk stops early if
// fn returns false.
func (t *Tree) Walk(fn func(i int, n Node) bool) {
	if len(t.Nodes) == 0 {
		return
	}

	stack := make([]int, 1, 2*t.maxDepth+1)
	stack[0] = 0
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Nodes[i]
		if !fn(i, n) {
			return
		}
		if !n.IsLeaf() {
			// push in reverse, so that the first child is visited first
			stack = append(stack, n.First+2, n.First+1, n.First)
		}
	}
}

// Edges returns the edges of all nodes, three per node, in the order of
// [Tree.Walk].  Internal nodes contribute their edges as well as leaves.
func (t *Tree) Edges() []Edge {
	edges := make([]Edge, 0, 3*len(t.Nodes))
	t.Walk(func(_ int, n Node) bool {
		e := n.Edges()
		edges = append(edges, e[:]...)
		return true
	})
	return edges
}

// Paths returns an iterator over the outlines of all nodes, in the order
// of [Tree.Walk].
func (t *Tree) Paths() iter.Seq[path.Path] {
	return func(yield func(path.Path) bool) {
		t.Walk(func(_ int, n Node) bool {
			return yield(n.Path())
		})
	}
}
