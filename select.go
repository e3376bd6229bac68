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

package meshrefine

import (
	"sort"

	"github.com/ctessum/geom"
)

// A Policy chooses which and how many cells are selected for
// refinement around each point.
type Policy string

const (
	// PolicyNearestCell selects, for each point, the finest cell
	// currently covering that point: among every cell whose footprint
	// contains the point (inclusive bounds on both axes), the one
	// with the smallest size. If several of the finest cells tie, the
	// first under the grid's canonical x-then-y ordering is taken.
	PolicyNearestCell Policy = "nearest"

	// PolicyNeighborhoodBox selects, for each point, every cell whose
	// center falls within ±1.5m of the point on both axes (inclusive
	// bounds), where m is the smallest cell size present anywhere in
	// the grid. This ordinarily yields the 3×3 block of cells
	// surrounding the point. When a point lies exactly on a cell
	// center or boundary, the inclusive bounds pull in neighbors on
	// both sides, growing the selection to as many as 16 cells in
	// fully symmetric cases. This bias toward inclusion is
	// intentional and load-bearing; downstream behavior depends on
	// it.
	PolicyNeighborhoodBox Policy = "neighborhood"
)

// valid reports whether p is a recognized policy name.
func (p Policy) valid() bool {
	return p == PolicyNearestCell || p == PolicyNeighborhoodBox
}

// Select returns the IDs of the cells in g that should be subdivided
// to refine the grid around the points given by the x and y
// coordinate slices, using the given policy. The per-point selections
// are merged into a single deduplicated set, returned in ascending ID
// order, so a cell chosen by several points is refined only once.
//
// Select has no side effects: it is purely a function of the current
// grid and the points.
func Select(g *Grid, x, y []float64, policy Policy) ([]int, error) {
	if !policy.valid() {
		return nil, &InvalidPolicyError{Policy: policy}
	}
	if len(x) != len(y) {
		return nil, validationErrorf("x and y coordinate slices have different lengths (%d != %d)", len(x), len(y))
	}

	selected := make(map[int]bool)
	switch policy {
	case PolicyNearestCell:
		for i := range x {
			if c := nearestCell(g, geom.Point{X: x[i], Y: y[i]}); c != nil {
				selected[c.ID] = true
			}
		}
	case PolicyNeighborhoodBox:
		m := g.MinSize()
		for i := range x {
			box := &geom.Bounds{
				Min: geom.Point{X: x[i] - 1.5*m, Y: y[i] - 1.5*m},
				Max: geom.Point{X: x[i] + 1.5*m, Y: y[i] + 1.5*m},
			}
			for _, c := range g.cellsCenteredIn(box) {
				selected[c.ID] = true
			}
		}
	}

	ids := make([]int, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// nearestCell returns the smallest cell whose footprint contains p,
// or nil if p lies outside the grid. Ties between equally small cells
// go to the first in canonical order; CellsAt already returns
// candidates in that order.
func nearestCell(g *Grid, p geom.Point) *Cell {
	var best *Cell
	for _, c := range g.CellsAt(p) {
		if best == nil || c.Size < best.Size {
			best = c
		}
	}
	return best
}
