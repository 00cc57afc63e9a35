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

// Package sierpinski builds the Sierpinski gasket by midpoint subdivision.
//
// [Subdivide] splits a root triangle into three corner triangles, and
// each of those again, down to a fixed depth.  The resulting tree is
// stored in an arena: a flat slice of [Node] values where the three
// children of a node are stored next to each other.  Both construction
// and traversal are iterative, so deep trees do not grow the call stack.
package sierpinski

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Midpoint returns the midpoint of p and q, truncated to integer
// coordinates.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Triangle is given by its three corners.
type Triangle struct {
	A, B, C Point
}

// Root returns the triangle filling a square canvas of the given width,
// with the apex at the top center.
func Root(width int) Triangle {
	return Triangle{
		A: Point{X: width / 2, Y: 0},
		B: Point{X: 0, Y: width},
		C: Point{X: width, Y: width},
	}
}

// Subdivide returns the three corner triangles of t.  Each child keeps
// one corner of t and replaces the other two by edge midpoints.
func (t Triangle) Subdivide() [3]Triangle {
	return [3]Triangle{
		corner(t.A, t.B, t.C),
		corner(t.B, t.C, t.A),
		corner(t.C, t.A, t.B),
	}
}

func corner(a, b, c Point) Triangle {
	return Triangle{A: a, B: Midpoint(a, b), C: Midpoint(a, c)}
}

// Node is an entry in the arena of a [Tree].
type Node struct {
	Triangle

	// Depth is the number of ancestors of the node.
	Depth int

	// First is the arena index of the first of the three children,
	// or -1 if the node is a leaf.
	First int
}

// IsLeaf reports whether the node has no children.
func (n Node) IsLeaf() bool {
	return n.First < 0
}

// Tree is a subdivision tree.  Nodes[0] is the root.
// Nodes are stored in breadth-first order, so all nodes of depth d come
// before the nodes of depth d+1.
type Tree struct {
	Nodes    []Node
	maxDepth int
}

// maxPrealloc limits the number of nodes allocated up front.
const maxPrealloc = 1 << 20

// Subdivide builds the subdivision tree of root down to maxDepth levels.
// A negative maxDepth is treated as 0, giving a tree which consists of
// the root only.
func Subdivide(root Triangle, maxDepth int) *Tree {
	maxDepth = max(maxDepth, 0)

	total := NodeCount(maxDepth)
	if total < 0 || total > maxPrealloc {
		total = maxPrealloc
	}
	nodes := make([]Node, 1, total)
	nodes[0] = Node{Triangle: root, First: -1}

	// Children are appended behind the nodes still to be processed, so
	// the three children of a node end up next to each other.
	for i := 0; i < len(nodes); i++ {
		if nodes[i].Depth >= maxDepth {
			continue
		}
		first := len(nodes)
		for _, child := range nodes[i].Subdivide() {
			nodes = append(nodes, Node{
				Triangle: child,
				Depth:    nodes[i].Depth + 1,
				First:    -1,
			})
		}
		nodes[i].First = first
	}

	return &Tree{Nodes: nodes, maxDepth: maxDepth}
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.Nodes[0]
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// Depth returns the depth of the leaves.
func (t *Tree) Depth() int {
	return t.maxDepth
}

// Leaves returns the number of leaf nodes.
func (t *Tree) Leaves() int {
	count := 0
	for _, n := range t.Nodes {
		if n.IsLeaf() {
			count++
		}
	}
	return count
}

// Children returns the children of the node with arena index i.
// The result is empty for leaves.
func (t *Tree) Children(i int) []Node {
	n := t.Nodes[i]
	if n.IsLeaf() {
		return nil
	}
	return t.Nodes[n.First : n.First+3]
}

// Bounds returns the bounding box of all nodes.
// Since every child lies inside its parent, this is the bounding box of
// the root triangle.
func (t *Tree) Bounds() rect.Rect {
	r := t.Root().Triangle
	return rect.Rect{
		LLx: float64(min(r.A.X, r.B.X, r.C.X)),
		LLy: float64(min(r.A.Y, r.B.Y, r.C.Y)),
		URx: float64(max(r.A.X, r.B.X, r.C.X)),
		URy: float64(max(r.A.Y, r.B.Y, r.C.Y)),
	}
}

// LeafCount returns 3^depth, the number of leaves of a tree of the given
// depth.  The result is -1 if it does not fit into an int.
func LeafCount(depth int) int {
	n := 1
	for range depth {
		if n > math.MaxInt/3 {
			return -1
		}
		n *= 3
	}
	return n
}

// NodeCount returns (3^(depth+1) - 1) / 2, the total number of nodes of a
// tree of the given depth.  The result is -1 if it does not fit into an
// int.
func NodeCount(depth int) int {
	leaves := LeafCount(depth)
	if leaves < 0 || leaves > (math.MaxInt-1)/3 {
		return -1
	}
	return (3*leaves - 1) / 2
}
