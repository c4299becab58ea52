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

package geom

import "testing"

// square is the ring from "POLYGON((0 0,10 0,10 10,0 10,0 0))".
var square = []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}

func reverseRing(ring []Point) []Point {
	out := make([]Point, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

func TestArea(t *testing.T) {
	if a := Area(square); a != -100 {
		t.Errorf("area: have %g, want -100", a)
	}
	if a := Area(reverseRing(square)); a != 100 {
		t.Errorf("reversed area: have %g, want 100", a)
	}
}

func TestAreaClosingPoint(t *testing.T) {
	open := square[:len(square)-1]
	if Area(square) != Area(open) {
		t.Errorf("closed %g != open %g", Area(square), Area(open))
	}
}

func TestAreaReversalSignFlip(t *testing.T) {
	rings := [][]Point{
		square,
		{{1, 1}, {4, 2}, {6, 7}, {2, 5}, {1, 1}},
		{{-3, 0}, {0, 4}, {3, 0}},
	}
	for i, ring := range rings {
		if Area(reverseRing(ring)) != -Area(ring) {
			t.Errorf("ring %d: Area(reverse) = %g, want %g", i,
				Area(reverseRing(ring)), -Area(ring))
		}
	}
}

func TestAreaDegenerate(t *testing.T) {
	for _, ring := range [][]Point{nil, {{1, 2}}, {{1, 2}, {3, 4}}, {{1, 2}, {3, 4}, {1, 2}}} {
		if a := Area(ring); a != 0 {
			t.Errorf("degenerate ring %v: have %g, want 0", ring, a)
		}
	}
}

func TestIsOuterRing(t *testing.T) {
	if !IsOuterRing(square) {
		t.Error("square should be an outer ring")
	}
	if IsOuterRing(reverseRing(square)) {
		t.Error("reversed square should not be an outer ring")
	}
}

func TestCentroid(t *testing.T) {
	c := Polygon{square}.Centroid()
	if c.X != 5 || c.Y != 5 {
		t.Errorf("have %v, want {5 5}", c)
	}
}
