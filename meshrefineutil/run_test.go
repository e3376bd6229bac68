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

package meshrefineutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spatialmodel/meshrefine"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	v := testViper(t)
	v.Set("Points.X", []string{"5"})
	v.Set("Points.Y", []string{"5"})
	v.Set("Grid.CellSize", 1.0)
	v.Set("Grid.Buffer", 1)
	v.Set("Refine.Iterations", 2)
	v.Set("OutputFile", filepath.Join(dir, "grid.shp"))
	v.Set("CSVFile", filepath.Join(dir, "grid.csv"))
	v.Set("GridDataFile", filepath.Join(dir, "grid.gob"))

	cfg, err := RefineConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := Run(cfg); err != nil {
		t.Fatal(err)
	}

	for _, f := range []string{"grid.shp", "grid.dbf", "grid.shx", "grid.csv", "grid.gob"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("output %s was not written: %v", f, err)
		}
	}

	r, err := os.Open(cfg.GridDataFile)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	g, err := meshrefine.Load(r)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 84 {
		t.Errorf("snapshot grid has %d cells, want 84", g.Len())
	}
}

func TestRunNoPoints(t *testing.T) {
	v := testViper(t)
	v.Set("Points.X", []string{})
	v.Set("Points.Y", []string{})
	cfg, err := RefineConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := Run(cfg); err == nil {
		t.Error("expected error when no points are specified")
	}
}

func TestPlot(t *testing.T) {
	dir := t.TempDir()
	v := testViper(t)
	v.Set("Points.X", []string{"5"})
	v.Set("Points.Y", []string{"5"})
	v.Set("Grid.CellSize", 1.0)
	v.Set("Grid.Buffer", 1)
	v.Set("Refine.Iterations", 1)
	v.Set("OutputFile", filepath.Join(dir, "grid.shp"))
	v.Set("GridDataFile", filepath.Join(dir, "grid.gob"))

	cfg, err := RefineConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := Run(cfg); err != nil {
		t.Fatal(err)
	}

	cfg.PlotFile = filepath.Join(dir, "grid.png")
	if err := Plot(cfg); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(cfg.PlotFile); err != nil || fi.Size() == 0 {
		t.Errorf("plot file was not written: %v", err)
	}
}

func TestPlotRequiresSnapshot(t *testing.T) {
	cfg, err := RefineConfig(testViper(t))
	if err != nil {
		t.Fatal(err)
	}
	cfg.GridDataFile = ""
	if err := Plot(cfg); err == nil {
		t.Error("expected error when GridDataFile is unset")
	}
}
