/*
Copyright © 2026 the MeshRefine authors.
This file is part of MeshRefine.

MeshRefine is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MeshRefine is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MeshRefine.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package meshrefine adaptively refines a uniform square grid so that
// regions near supplied point locations gain finer resolution while
// distant regions keep larger cells. The result is always a flat,
// ordered table of leaf cells rather than a navigable tree, making it
// directly usable as an interpolation or modeling mesh.
package meshrefine

import (
	"fmt"
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// Version gives the version number of this library.
const Version = "0.1.0"

// A Cell is an axis-aligned square grid cell. Its footprint is the
// bounds [X-Size/2, X+Size/2] × [Y-Size/2, Y+Size/2]. ID is assigned
// densely within one Grid snapshot and is not stable across
// refinement passes; cells should be tracked across passes by
// (X, Y, Size) instead.
type Cell struct {
	geom.Polygonal

	X, Y float64
	Size float64
	ID   int
}

func newCell(x, y, size float64) *Cell {
	return &Cell{
		Polygonal: &geom.Bounds{
			Min: geom.Point{X: x - size/2, Y: y - size/2},
			Max: geom.Point{X: x + size/2, Y: y + size/2},
		},
		X:    x,
		Y:    y,
		Size: size,
	}
}

// polygon returns the cell footprint as a counter-clockwise polygon.
func (c *Cell) polygon() geom.Polygon {
	b := c.Bounds()
	return geom.Polygon{{
		{X: b.Min.X, Y: b.Min.Y}, {X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y}, {X: b.Min.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Min.Y}}}
}

// contains reports whether point p lies within the cell footprint,
// inclusive of the edges on both axes.
func (c *Cell) contains(p geom.Point) bool {
	b := c.Bounds()
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// before reports whether c belongs before c2 in the canonical
// x-ascending-then-y-ascending cell ordering.
func (c *Cell) before(c2 *Cell) bool {
	if c.X != c2.X {
		return c.X < c2.X
	}
	return c.Y < c2.Y
}

func (c *Cell) String() string {
	return fmt.Sprintf("{x: %g, y: %g, size: %g, id: %d}", c.X, c.Y, c.Size, c.ID)
}

// A Grid is one snapshot of the refinement state: an ordered,
// non-overlapping set of square cells covering the area of interest.
// A Grid is a value; refinement replaces it with a new Grid rather
// than editing it in place, so retained snapshots are never mutated.
type Grid struct {
	cells []*Cell
	index *rtree.Rtree
}

// newGrid sorts cells into canonical order, assigns dense IDs
// starting at 1 and builds the spatial index.
func newGrid(cells []*Cell) *Grid {
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].before(cells[j])
	})
	g := &Grid{
		cells: cells,
		index: rtree.NewTree(25, 50),
	}
	for i, c := range cells {
		c.ID = i + 1
		g.index.Insert(c)
	}
	return g
}

// Len returns the number of cells in the grid.
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns the grid cells in canonical order. The returned
// slice is a copy; the cells themselves are shared and must not be
// modified.
func (g *Grid) Cells() []*Cell {
	o := make([]*Cell, len(g.cells))
	copy(o, g.cells)
	return o
}

// Cell returns the cell with the given 1-based ID.
func (g *Grid) Cell(id int) (*Cell, bool) {
	if id < 1 || id > len(g.cells) {
		return nil, false
	}
	return g.cells[id-1], true
}

// Extent returns the bounds of the union of all cell footprints.
func (g *Grid) Extent() *geom.Bounds {
	b := geom.NewBounds()
	for _, c := range g.cells {
		b.Extend(c.Bounds())
	}
	return b
}

// MinSize returns the smallest cell edge length present anywhere in
// the grid.
func (g *Grid) MinSize() float64 {
	m := g.cells[0].Size
	for _, c := range g.cells[1:] {
		if c.Size < m {
			m = c.Size
		}
	}
	return m
}

// CellsAt returns every cell whose footprint contains point p, using
// inclusive bounds on both axes, in canonical order. A point in a
// cell interior matches exactly one cell; a point on a shared edge or
// corner matches every adjacent cell.
func (g *Grid) CellsAt(p geom.Point) []*Cell {
	var o []*Cell
	for _, cI := range g.index.SearchIntersect(p.Bounds()) {
		c := cI.(*Cell)
		if c.contains(p) {
			o = append(o, c)
		}
	}
	sort.Slice(o, func(i, j int) bool { return o[i].before(o[j]) })
	return o
}

// cellsCenteredIn returns every cell whose center falls within b,
// inclusive of the box edges.
func (g *Grid) cellsCenteredIn(b *geom.Bounds) []*Cell {
	var o []*Cell
	for _, cI := range g.index.SearchIntersect(b) {
		c := cI.(*Cell)
		if c.X >= b.Min.X && c.X <= b.Max.X &&
			c.Y >= b.Min.Y && c.Y <= b.Max.Y {
			o = append(o, c)
		}
	}
	return o
}

// A Record is one row of the flat leaf-cell table that forms the
// interchange contract with external consumers.
type Record struct {
	X        float64
	Y        float64
	CellSize float64
	CellID   int
}

// Records returns the grid as a flat table, sorted by x ascending
// then y ascending with dense IDs 1..N.
func (g *Grid) Records() []Record {
	o := make([]Record, len(g.cells))
	for i, c := range g.cells {
		o[i] = Record{X: c.X, Y: c.Y, CellSize: c.Size, CellID: c.ID}
	}
	return o
}
