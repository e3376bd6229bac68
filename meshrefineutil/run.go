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
	"fmt"
	"log"
	"os"

	"github.com/spatialmodel/meshrefine"
)

// msgLog starts a function to receive and print log messages.
func msgLog() chan string {
	c := make(chan string)
	go func() {
		for msg := range c {
			log.Println(msg)
		}
	}()
	return c
}

// points gathers the points of interest from the configuration,
// appending any points read from shapefiles to the inline
// coordinates.
func points(cfg *ConfigData, logChan chan string) (x, y []float64, err error) {
	x = append(x, cfg.PointsX...)
	y = append(y, cfg.PointsY...)
	if len(cfg.PointShapefiles) > 0 {
		sx, sy, err := meshrefine.ReadPointShapefiles(logChan, cfg.PointShapefiles...)
		if err != nil {
			return nil, nil, err
		}
		x = append(x, sx...)
		y = append(y, sy...)
	}
	if len(x) == 0 {
		return nil, nil, fmt.Errorf("meshrefine: no points of interest were specified; " +
			"set Points.X and Points.Y or PointShapefiles")
	}
	return x, y, nil
}

// Run creates a grid over the configured points, refines it for the
// configured number of passes, and writes the outputs.
func Run(cfg *ConfigData) error {
	logChan := msgLog()

	x, y, err := points(cfg, logChan)
	if err != nil {
		return err
	}

	logChan <- "Creating grid"

	g, _, err := meshrefine.RefineHistory(x, y, cfg.CellSize, cfg.Buffer,
		cfg.Iterations, cfg.Policy, logChan)
	if err != nil {
		return err
	}

	if err := writeOutputs(g, cfg, x, y, logChan); err != nil {
		return err
	}
	logChan <- fmt.Sprintf("Grid successfully created at %s", cfg.OutputFile)
	return nil
}

// Plot reads a grid snapshot from GridDataFile and renders it,
// together with the configured points, to PlotFile.
func Plot(cfg *ConfigData) error {
	logChan := msgLog()

	if cfg.GridDataFile == "" {
		return fmt.Errorf("meshrefine: the plot command requires the GridDataFile " +
			"configuration variable to point to a saved grid snapshot")
	}
	r, err := os.Open(cfg.GridDataFile)
	if err != nil {
		return fmt.Errorf("problem opening grid snapshot: %v", err)
	}
	defer r.Close()
	g, err := meshrefine.Load(r)
	if err != nil {
		return err
	}

	var x, y []float64
	if len(cfg.PointsX) > 0 || len(cfg.PointShapefiles) > 0 {
		x, y, err = points(cfg, logChan)
		if err != nil {
			return err
		}
	}

	plotFile := cfg.PlotFile
	if plotFile == "" {
		plotFile = "grid.png"
	}
	if err := writePlot(g, plotFile, cfg.PlotWidth, x, y); err != nil {
		return err
	}
	logChan <- fmt.Sprintf("Grid image written to %s", plotFile)
	return nil
}

// writeOutputs writes the shapefile and, when configured, the CSV
// table, the binary snapshot, and the PNG image.
func writeOutputs(g *meshrefine.Grid, cfg *ConfigData, x, y []float64, logChan chan string) error {
	logChan <- fmt.Sprintf("Writing %d grid cells to %s", g.Len(), cfg.OutputFile)
	if err := g.WriteShapefile(cfg.OutputFile); err != nil {
		return err
	}

	if cfg.CSVFile != "" {
		w, err := os.Create(cfg.CSVFile)
		if err != nil {
			return fmt.Errorf("problem creating CSV file: %v", err)
		}
		if err := g.WriteCSV(w); err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
	}

	if cfg.GridDataFile != "" {
		w, err := os.Create(cfg.GridDataFile)
		if err != nil {
			return fmt.Errorf("problem creating file to store grid data in: %v", err)
		}
		if err := g.Save(w); err != nil {
			w.Close()
			return err
		}
		if err := w.Close(); err != nil {
			return err
		}
	}

	if cfg.PlotFile != "" {
		return writePlot(g, cfg.PlotFile, cfg.PlotWidth, x, y)
	}
	return nil
}

func writePlot(g *meshrefine.Grid, filename string, width int, x, y []float64) error {
	w, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("problem creating image file: %v", err)
	}
	if err := g.Draw(w, width, x, y); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
