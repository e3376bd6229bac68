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

	"github.com/lnashier/viper"
	"github.com/spatialmodel/meshrefine"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to MeshRefine.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Points.X",
			usage: `
              Points.X specifies the X coordinates of the points of interest,
              given directly on the command line or in the configuration file.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "Points.Y",
			usage: `
              Points.Y specifies the Y coordinates of the points of interest.
              It must have the same number of entries as Points.X.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "PointShapefiles",
			usage: `
              PointShapefiles is a list of shapefiles holding the points of
              interest. Points read from shapefiles are appended to any
              points given in Points.X and Points.Y.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "Grid.CellSize",
			usage: `
              Grid.CellSize specifies the edge length of the cells in the
              initial uniform grid, in the units of the point coordinates.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags()},
		},
		{
			name: "Grid.Buffer",
			usage: `
              Grid.Buffer specifies the number of extra rings of cells to
              add around the bounding box of the points.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags()},
		},
		{
			name: "Refine.Iterations",
			usage: `
              Refine.Iterations specifies the number of select-subdivide
              passes to run over the initial grid.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{refineCmd.Flags()},
		},
		{
			name: "Refine.Policy",
			usage: `
              Refine.Policy specifies how cells are selected for subdivision
              around each point. Valid values are 'nearest', which refines
              the single finest cell covering the point, and 'neighborhood',
              which refines the block of cells whose centers fall within 1.5
              fine-cell-widths of the point.`,
			defaultVal: string(meshrefine.PolicyNearestCell),
			flagsets:   []*pflag.FlagSet{refineCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path where the resulting grid is
              written as a shapefile.`,
			defaultVal: "grid.shp",
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags()},
		},
		{
			name: "CSVFile",
			usage: `
              CSVFile specifies an optional path where the resulting
              leaf-cell table is additionally written as CSV.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags()},
		},
		{
			name: "GridDataFile",
			usage: `
              GridDataFile specifies a path for the binary grid snapshot.
              The build and refine commands write a snapshot there if it is
              set; the plot command reads the grid from it.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile specifies an optional path where an image of the
              grid and points is written as PNG.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "PlotWidth",
			usage: `
              PlotWidth specifies the width of the output image in pixels.`,
			defaultVal: 800,
			flagsets:   []*pflag.FlagSet{buildCmd.Flags(), refineCmd.Flags(), plotCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("MESHREFINE")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(buildCmd)
	Root.AddCommand(refineCmd)
	Root.AddCommand(plotCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("meshrefine: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "meshrefine",
	Short: "An adaptive square-grid refinement tool.",
	Long: `MeshRefine builds a uniform square grid over a set of points of interest
and iteratively refines it, subdividing the cells nearest the points into
quarters so that resolution concentrates where the points are.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'MESHREFINE_var' where 'var' is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of MeshRefine.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("MeshRefine v%s\n", meshrefine.Version)
	},
	DisableAutoGenTag: true,
}

// buildCmd is a command that creates and saves a uniform grid without
// refining it.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Create a uniform grid",
	Long: `build creates a uniform square grid covering the points of interest,
plus the configured buffer, and saves it without running any refinement
passes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := RefineConfig(Cfg)
		if err != nil {
			return err
		}
		cfg.Iterations = 0
		return Run(cfg)
	},
	DisableAutoGenTag: true,
}

// refineCmd is a command that creates a grid and refines it around the
// points of interest.
var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Create and refine a grid",
	Long: `refine creates a uniform square grid covering the points of interest and
then runs the configured number of refinement passes over it, subdividing
the cells selected by the refinement policy into quarters on each pass.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := RefineConfig(Cfg)
		if err != nil {
			return err
		}
		return Run(cfg)
	},
	DisableAutoGenTag: true,
}

// plotCmd is a command that renders a previously saved grid to an image.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render a saved grid as an image",
	Long: `plot reads a grid snapshot previously written by the build or refine
command (GridDataFile) and renders it, together with any points of
interest, as a PNG image.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := RefineConfig(Cfg)
		if err != nil {
			return err
		}
		return Plot(cfg)
	},
	DisableAutoGenTag: true,
}
