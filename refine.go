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

import "fmt"

// A PassStats records what one refinement pass did to the grid.
type PassStats struct {
	Pass     int // 1-based pass number
	Selected int // cells selected for subdivision
	Cells    int // total cells after the pass
}

// Refine builds a uniform grid over the points given by x and y and
// then runs the given number of select-subdivide passes over it: each
// pass selects cells around the points using the policy and replaces
// every selected cell with its four quarter-size children. The points
// used for selection are the same points the grid was built from.
//
// iterations may be zero, in which case the initial grid is returned
// untouched. Passes where the policy selects no cells still count
// toward iterations.
func Refine(x, y []float64, cellSize float64, buffer, iterations int, policy Policy) (*Grid, error) {
	g, _, err := RefineHistory(x, y, cellSize, buffer, iterations, policy, nil)
	return g, err
}

// RefineHistory is like Refine but also returns per-pass statistics,
// and sends a progress message to logChan after each pass if logChan
// is not nil.
func RefineHistory(x, y []float64, cellSize float64, buffer, iterations int, policy Policy, logChan chan string) (*Grid, []PassStats, error) {
	if !policy.valid() {
		return nil, nil, &InvalidPolicyError{Policy: policy}
	}
	if iterations < 0 {
		return nil, nil, validationErrorf("iterations must not be negative (got %d)", iterations)
	}
	g, err := Build(x, y, cellSize, buffer)
	if err != nil {
		return nil, nil, err
	}

	stats := make([]PassStats, 0, iterations)
	for pass := 1; pass <= iterations; pass++ {
		ids, err := Select(g, x, y, policy)
		if err != nil {
			return nil, nil, err
		}
		g, err = Subdivide(g, ids)
		if err != nil {
			return nil, nil, err
		}
		stats = append(stats, PassStats{Pass: pass, Selected: len(ids), Cells: g.Len()})
		if logChan != nil {
			logChan <- fmt.Sprintf("Pass %d subdivided %d grid cells; there are now %d cells total",
				pass, len(ids), g.Len())
		}
	}
	return g, stats, nil
}
