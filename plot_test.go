package meshrefine

import (
	"bytes"
	"testing"
)

func TestDraw(t *testing.T) {
	g, err := Refine([]float64{5}, []float64{5}, 1, 1, 1, PolicyNeighborhoodBox)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := g.Draw(&b, 200, []float64{5}, []float64{5}); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG image")
	}
}

func TestDrawNoPoints(t *testing.T) {
	g, err := Build([]float64{0, 3}, []float64{0, 2}, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := g.Draw(&b, 100, nil, nil); err != nil {
		t.Fatal(err)
	}
	if b.Len() == 0 {
		t.Error("no image data written")
	}
}
