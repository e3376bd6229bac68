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
	"math"

	"gonum.org/v1/gonum/floats"
)

// Build creates a uniform grid of square cells with edge length
// cellSize covering all of the points given by the x and y coordinate
// slices, expanded by buffer extra rows and columns on every side.
// All cells initially have the same size; cells are sorted by x
// ascending then y ascending and given dense IDs starting at 1.
//
// Every input point is covered by at least one cell, as is the
// buffered bounding box of the points. buffer may be zero, in which
// case the grid encloses the point extent exactly.
func Build(x, y []float64, cellSize float64, buffer int) (*Grid, error) {
	if err := validate(x, y, cellSize, buffer); err != nil {
		return nil, err
	}
	xSeq := centerSequence(floats.Min(x), floats.Max(x), cellSize, buffer)
	ySeq := centerSequence(floats.Min(y), floats.Max(y), cellSize, buffer)

	cells := make([]*Cell, 0, len(xSeq)*len(ySeq))
	for _, cx := range xSeq {
		for _, cy := range ySeq {
			cells = append(cells, newCell(cx, cy, cellSize))
		}
	}
	return newGrid(cells), nil
}

func validate(x, y []float64, cellSize float64, buffer int) error {
	if len(x) != len(y) {
		return validationErrorf("x and y coordinate slices have different lengths (%d != %d)", len(x), len(y))
	}
	if len(x) == 0 {
		return validationErrorf("no points were supplied")
	}
	if !(cellSize > 0) {
		return validationErrorf("cell size is %g but must be >0", cellSize)
	}
	if buffer < 0 {
		return validationErrorf("buffer is %d but must be >=0", buffer)
	}
	return nil
}

// centerSequence returns the cell center coordinates along one axis.
// The origin is the floor of the minimum coordinate minus the buffer
// margin and the extent is the ceiling of the maximum coordinate plus
// the buffer margin. If the step does not evenly divide the span, one
// extra step is appended so the extreme edge stays covered.
func centerSequence(min, max, cellSize float64, buffer int) []float64 {
	origin := math.Floor(min) - cellSize*float64(buffer)
	extent := math.Ceil(max) + cellSize*float64(buffer)

	var seq []float64
	for i := 0; ; i++ {
		v := origin + float64(i)*cellSize
		if v > extent {
			break
		}
		seq = append(seq, v)
	}
	if last := seq[len(seq)-1]; last <= extent-cellSize/2 {
		seq = append(seq, last+cellSize)
	}
	return seq
}
