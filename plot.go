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
	"image"
	"image/color"
	idraw "image/draw"
	"io"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/carto"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Draw renders the grid as a PNG image of the given pixel width and
// writes it to w. Cell outlines are drawn in black; the points given
// by x and y, if any, are drawn as red circles. The image height is
// scaled to the grid's aspect ratio.
func (g *Grid) Draw(w io.Writer, width int, x, y []float64) error {
	b := g.Extent()
	// Pad by half the finest cell so boundary strokes aren't clipped.
	pad := g.MinSize() / 2
	W, E := b.Min.X-pad, b.Max.X+pad
	S, N := b.Min.Y-pad, b.Max.Y+pad
	height := int(float64(width) * (N - S) / (E - W))

	img := idraw.Image(image.NewRGBA(image.Rect(0, 0, width, height)))
	c := vgimg.NewWith(vgimg.UseImage(img))
	dc := vgdraw.New(c)
	m := carto.NewCanvas(N, S, E, W, dc)

	cellLine := vgdraw.LineStyle{
		Width: 0.25 * vg.Millimeter,
		Color: color.Black,
	}
	clearFill := color.NRGBA{0, 0, 0, 0}
	for _, cell := range g.cells {
		if err := m.DrawVector(cell.polygon(), clearFill, cellLine, vgdraw.GlyphStyle{}); err != nil {
			return err
		}
	}

	red := color.NRGBA{R: 255, A: 255}
	pointGlyph := vgdraw.GlyphStyle{
		Radius: 0.5 * vg.Millimeter,
		Shape:  vgdraw.CircleGlyph{},
		Color:  red,
	}
	for i := range x {
		p := geom.Point{X: x[i], Y: y[i]}
		if err := m.DrawVector(p, red, vgdraw.LineStyle{}, pointGlyph); err != nil {
			return err
		}
	}

	png := vgimg.PngCanvas{Canvas: c}
	_, err := png.WriteTo(w)
	return err
}
