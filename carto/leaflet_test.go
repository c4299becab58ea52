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
	"reflect"
	"strings"
	"testing"
)

func TestLeafletDraw(t *testing.T) {
	l := NewLeaflet(squareTransform())
	if err := l.Draw(holeWKT, "cell A", Style{}); err != nil {
		t.Fatal(err)
	}
	if len(l.Layers) != 1 {
		t.Fatalf("have %d layers, want 1", len(l.Layers))
	}
	layer := l.Layers[0]
	if layer.Type != "polygon" {
		t.Errorf("type: have %q, want %q", layer.Type, "polygon")
	}
	rings, ok := layer.Coordinates.([][][]float64)
	if !ok || len(rings) != 2 {
		t.Fatalf("coordinates: have %T %v, want 2 rings", layer.Coordinates, layer.Coordinates)
	}
	// Not y-inverted: world (0,0) stays (0,0), (10,0) maps to (100,0).
	if !reflect.DeepEqual(rings[0][0], []float64{0, 0}) {
		t.Errorf("first point: have %v, want [0 0]", rings[0][0])
	}
	// Label anchored at the second scaled point of the first ring.
	if layer.Label != "cell A" {
		t.Errorf("label: have %q", layer.Label)
	}
	if !reflect.DeepEqual(layer.LabelAnchor, []float64{100, 0}) {
		t.Errorf("anchor: have %v, want [100 0]", layer.LabelAnchor)
	}
}

func TestLeafletLabelOmitted(t *testing.T) {
	l := NewLeaflet(squareTransform())
	if err := l.Draw(squareWKT, "", Style{}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := l.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "label") {
		t.Errorf("label fields must be omitted when the label is empty: %s", out)
	}
	if !strings.Contains(out, `"fillOpacity":0.8`) {
		t.Errorf("style defaults missing: %s", out)
	}
}

func TestLeafletCollectionFlattens(t *testing.T) {
	l := NewLeaflet(squareTransform())
	err := l.Draw("GEOMETRYCOLLECTION(POINT(1 1),LINESTRING(0 0,10 10))", "gc", Style{})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Layers) != 2 {
		t.Fatalf("have %d layers, want 2", len(l.Layers))
	}
	if l.Layers[0].Type != "point" || l.Layers[1].Type != "linestring" {
		t.Errorf("have %q and %q", l.Layers[0].Type, l.Layers[1].Type)
	}
}
