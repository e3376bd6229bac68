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
	"reflect"
	"strings"
	"testing"
)

func TestRefineZeroIterations(t *testing.T) {
	x, y := []float64{5}, []float64{5}
	g, err := Refine(x, y, 1, 1, 0, PolicyNearestCell)
	if err != nil {
		t.Fatal(err)
	}
	uniform, err := Build(x, y, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Records(), uniform.Records()) {
		t.Error("zero iterations should return the uniform grid unchanged")
	}
}

func TestRefineNearest(t *testing.T) {
	g, err := Refine([]float64{5}, []float64{5}, 1, 1, 1, PolicyNearestCell)
	if err != nil {
		t.Fatal(err)
	}
	// One cell replaced by four.
	if g.Len() != 12 {
		t.Errorf("got %d cells, want 12", g.Len())
	}
	if different(g.MinSize(), 0.5, 1.e-12) {
		t.Errorf("minimum size is %g, want 0.5", g.MinSize())
	}
}

// Two passes of neighborhood refinement around a single centered
// point: the first pass subdivides all 9 cells, and the second pass's
// inclusive box bounds select a symmetric 16-cell block.
func TestRefineNeighborhoodTwoPasses(t *testing.T) {
	g, stats, err := RefineHistory([]float64{5}, []float64{5}, 1, 1, 2, PolicyNeighborhoodBox, nil)
	if err != nil {
		t.Fatal(err)
	}
	wantStats := []PassStats{
		{Pass: 1, Selected: 9, Cells: 36},
		{Pass: 2, Selected: 16, Cells: 84},
	}
	if !reflect.DeepEqual(stats, wantStats) {
		t.Errorf("stats: got %v, want %v", stats, wantStats)
	}
	if g.Len() != 84 {
		t.Errorf("got %d cells, want 84", g.Len())
	}
	if different(g.MinSize(), 0.25, 1.e-12) {
		t.Errorf("minimum size is %g, want 0.25", g.MinSize())
	}
}

// Points close enough to share selections refine the shared cells
// only once per pass.
func TestRefineSharedSelections(t *testing.T) {
	// Both points are in the interior of the cell at (5, 5).
	g, stats, err := RefineHistory([]float64{4.9, 5.1}, []float64{5.1, 4.9}, 1, 1, 1, PolicyNearestCell, nil)
	if err != nil {
		t.Fatal(err)
	}
	if stats[0].Selected != 1 {
		t.Errorf("selected %d cells, want 1", stats[0].Selected)
	}
	if g.Len() != 12 {
		t.Errorf("got %d cells, want 12", g.Len())
	}
}

func TestRefineCellCountGrows(t *testing.T) {
	_, stats, err := RefineHistory([]float64{2.5}, []float64{2.5}, 1, 1, 4, PolicyNearestCell, nil)
	if err != nil {
		t.Fatal(err)
	}
	prev := 0
	for _, s := range stats {
		if s.Cells <= prev {
			t.Errorf("pass %d: cell count %d did not grow from %d", s.Pass, s.Cells, prev)
		}
		prev = s.Cells
	}
}

func TestRefineDeterministic(t *testing.T) {
	x := []float64{1.2, 4.7, 3.3}
	y := []float64{0.8, 2.1, 4}
	g1, err := Refine(x, y, 1, 1, 3, PolicyNeighborhoodBox)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := Refine(x, y, 1, 1, 3, PolicyNeighborhoodBox)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g1.Records(), g2.Records()) {
		t.Error("repeated refinements gave different grids")
	}
}

func TestRefineLog(t *testing.T) {
	logChan := make(chan string)
	var msgs []string
	done := make(chan struct{})
	go func() {
		for msg := range logChan {
			msgs = append(msgs, msg)
		}
		close(done)
	}()
	_, _, err := RefineHistory([]float64{5}, []float64{5}, 1, 1, 2, PolicyNeighborhoodBox, logChan)
	close(logChan)
	<-done
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d log messages, want 2: %v", len(msgs), msgs)
	}
	if !strings.Contains(msgs[1], "84 cells total") {
		t.Errorf("unexpected final message %q", msgs[1])
	}
}

func TestRefineValidation(t *testing.T) {
	if _, err := Refine([]float64{5}, []float64{5}, 1, 1, -1, PolicyNearestCell); err == nil {
		t.Error("expected error for negative iterations")
	} else if _, ok := err.(*ValidationError); !ok {
		t.Errorf("got %T, want *ValidationError", err)
	}

	if _, err := Refine([]float64{5}, []float64{5}, 1, 1, 1, Policy("voronoi")); err == nil {
		t.Error("expected error for invalid policy")
	} else if _, ok := err.(*InvalidPolicyError); !ok {
		t.Errorf("got %T, want *InvalidPolicyError", err)
	}

	// Input validation runs before any work is done.
	if _, err := Refine([]float64{5}, nil, 1, 1, 1, PolicyNearestCell); err == nil {
		t.Error("expected error for mismatched coordinates")
	} else if _, ok := err.(*ValidationError); !ok {
		t.Errorf("got %T, want *ValidationError", err)
	}
}
