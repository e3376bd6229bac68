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
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/meshrefine"
	"github.com/spf13/cast"
)

// ConfigData holds the checked configuration for one command
// invocation.
type ConfigData struct {
	// PointsX and PointsY are point coordinates given directly in the
	// configuration; points from PointShapefiles are appended to them
	// at run time.
	PointsX, PointsY []float64

	// PointShapefiles is a list of shapefiles holding points of
	// interest.
	PointShapefiles []string

	// CellSize is the edge length of cells in the initial uniform
	// grid.
	CellSize float64

	// Buffer is the number of extra cell rings around the point
	// bounding box.
	Buffer int

	// Iterations is the number of select-subdivide passes to run.
	Iterations int

	// Policy selects cells for subdivision around each point.
	Policy meshrefine.Policy

	// OutputFile is the path for the output shapefile.
	OutputFile string

	// CSVFile, GridDataFile and PlotFile are optional paths for the
	// CSV table, the binary grid snapshot, and the PNG image.
	CSVFile, GridDataFile, PlotFile string

	// PlotWidth is the output image width in pixels.
	PlotWidth int
}

// RefineConfig reads the configuration out of cfg and checks it.
func RefineConfig(cfg *viper.Viper) (*ConfigData, error) {
	x, err := getFloatSlice("Points.X", cfg)
	if err != nil {
		return nil, err
	}
	y, err := getFloatSlice("Points.Y", cfg)
	if err != nil {
		return nil, err
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("meshrefine: Points.X and Points.Y have different numbers of entries (%d and %d)",
			len(x), len(y))
	}

	policy := meshrefine.Policy(os.ExpandEnv(cfg.GetString("Refine.Policy")))
	if policy != meshrefine.PolicyNearestCell && policy != meshrefine.PolicyNeighborhoodBox {
		return nil, fmt.Errorf("the Refine.Policy variable in the configuration file "+
			"needs to be set to either %s or %s, but is currently set to `%s`",
			meshrefine.PolicyNearestCell, meshrefine.PolicyNeighborhoodBox, policy)
	}

	c := &ConfigData{
		PointsX:         x,
		PointsY:         y,
		PointShapefiles: removeShpSupportFiles(expandStringSlice(cfg.GetStringSlice("PointShapefiles"))),
		CellSize:        cfg.GetFloat64("Grid.CellSize"),
		Buffer:          cfg.GetInt("Grid.Buffer"),
		Iterations:      cfg.GetInt("Refine.Iterations"),
		Policy:          policy,
		CSVFile:         os.ExpandEnv(cfg.GetString("CSVFile")),
		GridDataFile:    os.ExpandEnv(cfg.GetString("GridDataFile")),
		PlotFile:        os.ExpandEnv(cfg.GetString("PlotFile")),
		PlotWidth:       cfg.GetInt("PlotWidth"),
	}
	c.OutputFile, err = checkOutputFile(cfg.GetString("OutputFile"))
	if err != nil {
		return nil, err
	}
	if c.PlotWidth <= 0 {
		return nil, fmt.Errorf("meshrefine: PlotWidth must be positive (got %d)", c.PlotWidth)
	}
	return c, nil
}

// getFloatSlice returns a []float64 from a viper configuration,
// accounting for the fact that the values may arrive as strings when
// set from command line arguments.
func getFloatSlice(varName string, cfg *viper.Viper) ([]float64, error) {
	s, err := cast.ToStringSliceE(cfg.Get(varName))
	if err != nil {
		return nil, fmt.Errorf("meshrefine: reading '%s': %v", varName, err)
	}
	o := make([]float64, len(s))
	for i, v := range s {
		o[i], err = strconv.ParseFloat(strings.TrimSpace(os.ExpandEnv(v)), 64)
		if err != nil {
			return nil, fmt.Errorf("meshrefine: reading '%s' entry %d: %v", varName, i, err)
		}
	}
	return o, nil
}

// expandStringSlice expands the environment variables in a slice of strings.
func expandStringSlice(s []string) []string {
	for i := 0; i < len(s); i++ {
		s[i] = os.ExpandEnv(s[i])
	}
	return s
}

// removeShpSupportFiles deletes from the list of files any that do not
// end in `.shp`.
func removeShpSupportFiles(files []string) []string {
	var o []string
	for _, s := range files {
		if strings.HasSuffix(s, ".shp") {
			o = append(o, s)
		}
	}
	return o
}

// checkOutputFile makes sure that the output file is specified and its
// directory exists, and expands any environment variables.
func checkOutputFile(f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf(`you need to specify an output file configuration variable (for example: OutputFile="grid.shp")`)
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("meshrefine: the OutputFile directory doesn't exist: %v", err)
	}
	return f, nil
}
