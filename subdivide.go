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

// Subdivide returns a new grid in which each cell named in ids has
// been replaced by its four quarter-size children, centered at the
// corners of the parent's central half-square, so that the children
// tile the parent's footprint exactly. Cells not named in ids are
// carried over unchanged. The resulting cell set is re-sorted into
// canonical x-then-y order and assigned fresh dense IDs starting at
// 1; IDs from g are not meaningful in the returned grid.
//
// The input grid is not modified. Duplicate IDs in ids are
// subdivided once. An ID outside 1..g.Len() yields a *NotFoundError.
func Subdivide(g *Grid, ids []int) (*Grid, error) {
	divide := make(map[int]bool)
	for _, id := range ids {
		if id < 1 || id > g.Len() {
			return nil, &NotFoundError{ID: id}
		}
		divide[id] = true
	}

	cells := make([]*Cell, 0, g.Len()+3*len(divide))
	for _, c := range g.cells {
		if !divide[c.ID] {
			// Copy so the new grid's ID reassignment cannot
			// reach back into g.
			kept := newCell(c.X, c.Y, c.Size)
			cells = append(cells, kept)
			continue
		}
		q := c.Size / 4
		h := c.Size / 2
		cells = append(cells,
			newCell(c.X-q, c.Y-q, h),
			newCell(c.X+q, c.Y-q, h),
			newCell(c.X-q, c.Y+q, h),
			newCell(c.X+q, c.Y+q, h),
		)
	}
	return newGrid(cells), nil
}
