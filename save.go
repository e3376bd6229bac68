package meshrefine

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/ctessum/geom"
)

func init() {
	gob.Register(&geom.Bounds{})
}

// Save writes the grid to w as a gob file
// (format description at https://golang.org/pkg/encoding/gob/).
func (g *Grid) Save(w io.Writer) error {
	e := gob.NewEncoder(w)
	if err := e.Encode(g.cells); err != nil {
		return fmt.Errorf("meshrefine.Grid.Save: %v", err)
	}
	return nil
}

// Load reads a grid from a previously Saved file. The cells are
// re-sorted and re-indexed, so IDs match what Save wrote.
func Load(r io.Reader) (*Grid, error) {
	dec := gob.NewDecoder(r)
	var cells []*Cell
	if err := dec.Decode(&cells); err != nil {
		return nil, fmt.Errorf("meshrefine.Load: %v", err)
	}
	return newGrid(cells), nil
}
