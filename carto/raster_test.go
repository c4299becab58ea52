/*
Copyright © 2024 the GISViz authors.
This file is part of GISViz.

GISViz is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GISViz is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GISViz.  If not, see <http://www.gnu.org/licenses/>.
*/

package carto

import (
	"bytes"
	"testing"

	"github.com/spatialmodel/gisviz/geom"
)

const (
	squareWKT = "POLYGON((0 0,10 0,10 10,0 10,0 0))"
	holeWKT   = "POLYGON((0 0,10 0,10 10,0 10,0 0),(2 2,4 2,4 4,2 4,2 2))"
)

func squareTransform() geom.Transform {
	b := geom.NewBounds()
	b.ExtendPoints([]geom.Point{{0, 0}, {10, 10}})
	return b.Freeze(100, 100)
}

func TestRasterDraw(t *testing.T) {
	r := NewRaster(squareTransform())
	if err := r.Draw(holeWKT, "cell A", Style{}); err != nil {
		t.Fatal(err)
	}

	img := r.Image()
	// Inside the outer ring but not the hole: filled.
	if _, _, _, a := img.At(70, 50).RGBA(); a == 0 {
		t.Error("expected (70,50) to be filled")
	}
	// Inside the hole (world (3,3) -> device (30,70) with the y
	// axis inverted): the even-odd rule leaves it unfilled.
	if _, _, _, a := img.At(30, 70).RGBA(); a != 0 {
		t.Error("expected the hole at (30,70) to stay unfilled")
	}

	var buf bytes.Buffer
	if err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output does not look like a PNG")
	}
}

func TestRasterMalformedRow(t *testing.T) {
	r := NewRaster(squareTransform())
	if err := r.Draw("POLYGON((0 0, abc 10))", "", Style{}); err == nil {
		t.Error("expected a parse error")
	}
}

func TestRasterDegenerate(t *testing.T) {
	r := NewRaster(squareTransform())
	// Zero rings: nothing drawn, no error.
	if err := r.Draw("POLYGON(())", "", Style{}); err != nil {
		t.Fatal(err)
	}
}

func TestRasterFamily(t *testing.T) {
	r := NewRaster(squareTransform())
	for _, s := range []string{
		"POINT(5 5)",
		"LINESTRING(0 0,10 10)",
		"MULTIPOINT(1 1,9 9)",
		"MULTIPOLYGON(((0 0,5 0,5 5,0 5,0 0)))",
		"GEOMETRYCOLLECTION(POINT(2 2),LINESTRING(0 5,10 5))",
	} {
		if err := r.Draw(s, "", Style{}); err != nil {
			t.Errorf("%s: %v", s, err)
		}
	}
}
