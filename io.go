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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	goshp "github.com/jonas-p/go-shp"
)

// WriteShapefile writes the grid's leaf cells to the shapefile at
// filename (which should end in .shp; companion .dbf and .shx files
// are written alongside it). Each cell becomes one polygon record
// with the attribute fields x, y, cell_size and cell_id.
func (g *Grid) WriteShapefile(filename string) error {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	for _, ext := range []string{".shp", ".prj", ".dbf", ".shx"} {
		os.Remove(base + ext)
	}
	fields := []goshp.Field{
		goshp.FloatField("x", 16, 8),
		goshp.FloatField("y", 16, 8),
		goshp.FloatField("cell_size", 16, 8),
		goshp.NumberField("cell_id", 10),
	}
	e, err := shp.NewEncoderFromFields(base+".shp", goshp.POLYGON, fields...)
	if err != nil {
		return fmt.Errorf("meshrefine: creating shapefile %s: %v", filename, err)
	}
	for _, c := range g.cells {
		if err := e.EncodeFields(c.polygon(), c.X, c.Y, c.Size, c.ID); err != nil {
			e.Close()
			return fmt.Errorf("meshrefine: writing shapefile %s: %v", filename, err)
		}
	}
	e.Close()
	return nil
}

// WriteCSV writes the grid's leaf-cell table to w as CSV with a
// header row, one row per cell in canonical order:
//
//	x,y,cell_size,cell_id
func (g *Grid) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "cell_size", "cell_id"}); err != nil {
		return err
	}
	for _, c := range g.cells {
		row := []string{
			strconv.FormatFloat(c.X, 'g', -1, 64),
			strconv.FormatFloat(c.Y, 'g', -1, 64),
			strconv.FormatFloat(c.Size, 'g', -1, 64),
			strconv.Itoa(c.ID),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadPointShapefiles reads point locations from the given
// shapefiles, returning their x and y coordinates. Point and
// MultiPoint geometries are accepted; any other geometry type is an
// error. If c is not nil, a progress message is sent for each file.
func ReadPointShapefiles(c chan string, filenames ...string) (x, y []float64, err error) {
	for _, fname := range filenames {
		if c != nil {
			c <- fmt.Sprintf("Loading point shapefile: %s.", fname)
		}
		fname = strings.Replace(fname, ".shp", "", -1)
		f, err := shp.NewDecoder(fname + ".shp")
		if err != nil {
			return nil, nil, fmt.Errorf("there was a problem reading the point shapefile '%s'. "+
				"The error message was %v.", fname, err)
		}
		for {
			var rec struct{ geom.Geom }
			if ok := f.DecodeRow(&rec); !ok {
				break
			}
			switch t := rec.Geom.(type) {
			case geom.Point:
				x = append(x, t.X)
				y = append(y, t.Y)
			case geom.MultiPoint:
				for _, p := range t {
					x = append(x, p.X)
					y = append(y, p.Y)
				}
			default:
				f.Close()
				return nil, nil, fmt.Errorf("meshrefine: shapefile %s contains a %T; only points are supported",
					fname, rec.Geom)
			}
		}
		if err := f.Error(); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("there was a problem reading the point shapefile '%s'. "+
				"The error message was %v.", fname, err)
		}
		f.Close()
	}
	return x, y, nil
}
