/*
Copyright © 2023 the GISViz authors.
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

package wkt

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spatialmodel/gisviz/geom"
)

const (
	squareWKT = "POLYGON((0 0,10 0,10 10,0 10,0 0))"
	holeWKT   = "POLYGON((0 0,10 0,10 10,0 10,0 0),(2 2,4 2,4 4,2 4,2 2))"
)

func TestExtractFlat(t *testing.T) {
	pts, err := ExtractFlat(squareWKT)
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	if !reflect.DeepEqual(pts, want) {
		t.Errorf("have %v, want %v", pts, want)
	}

	// Flat mode concatenates the hole's points after the outer ring's.
	pts, err = ExtractFlat(holeWKT)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 10 {
		t.Errorf("have %d points, want 10", len(pts))
	}
}

func TestExtractNested(t *testing.T) {
	rings, err := ExtractNested(holeWKT)
	if err != nil {
		t.Fatal(err)
	}
	want := geom.Polygon{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}},
	}
	if !reflect.DeepEqual(rings, want) {
		t.Errorf("have %v, want %v", rings, want)
	}
}

func TestExtractMalformed(t *testing.T) {
	_, err := ExtractFlat("POLYGON((0 0, abc 10))")
	var malformed *MalformedGeometryError
	if !errors.As(err, &malformed) {
		t.Fatalf("have %v, want *MalformedGeometryError", err)
	}
	if malformed.Token != "abc" {
		t.Errorf("offending token: have %q, want %q", malformed.Token, "abc")
	}
}

func TestExtractDegenerate(t *testing.T) {
	// Zero rings and too-short rings pass through unchanged; it is
	// the consumer's job to handle them.
	rings, err := ExtractNested("POLYGON(())")
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 0 {
		t.Errorf("have %d rings, want 0", len(rings))
	}
	rings, err = ExtractNested("POLYGON((1 2,3 4))")
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 1 || len(rings[0]) != 2 {
		t.Errorf("have %v, want one ring of two points", rings)
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		wkt  string
		want geom.Geom
	}{
		{"POINT(3 -4.5)", geom.Point{X: 3, Y: -4.5}},
		{"LINESTRING(0 0,5 5,10 0)", geom.LineString{{0, 0}, {5, 5}, {10, 0}}},
		{squareWKT, geom.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}},
		{"MULTIPOINT(1 1,2 2)", geom.MultiPoint{{1, 1}, {2, 2}}},
		{"MULTIPOINT((1 1),(2 2))", geom.MultiPoint{{1, 1}, {2, 2}}},
		{"MULTILINESTRING((0 0,1 1),(2 2,3 3))",
			geom.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}},
		{"MULTIPOLYGON(((0 0,1 0,1 1,0 0)),((5 5,6 5,6 6,5 5)))",
			geom.MultiPolygon{
				{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
				{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}},
			}},
		{"GEOMETRYCOLLECTION(POINT(1 2),LINESTRING(0 0,1 1))",
			geom.GeometryCollection{
				geom.Point{X: 1, Y: 2},
				geom.LineString{{0, 0}, {1, 1}},
			}},
	}
	for _, test := range tests {
		have, err := Parse(test.wkt)
		if err != nil {
			t.Errorf("%s: %v", test.wkt, err)
			continue
		}
		if !reflect.DeepEqual(have, test.want) {
			t.Errorf("%s: have %#v, want %#v", test.wkt, have, test.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"POLYGON",
		"CIRCLE(0 0,5)",
		"POINT(1)",
		"LINESTRING(0 0,x 1)",
	} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): expected an error", s)
		}
	}
}
