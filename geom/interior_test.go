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

func TestInteriorPoint(t *testing.T) {
	rings := [][]Point{
		square,
		{{1, 1}, {4, 2}, {6, 7}, {2, 5}, {1, 1}},
		{{-3, 0}, {0, 4}, {3, 0}, {-3, 0}},
	}
	for i, ring := range rings {
		p, ok := InteriorPoint(ring)
		if !ok {
			t.Errorf("ring %d: no interior point found", i)
			continue
		}
		if !PointInPolygon(p, ring) {
			t.Errorf("ring %d: %v is not inside the ring", i, p)
		}
	}
}

func TestInteriorPointDeterministic(t *testing.T) {
	a, _ := InteriorPoint(square)
	b, _ := InteriorPoint(square)
	if !a.Equals(b) {
		t.Errorf("have %v and %v, want identical results", a, b)
	}
}

func TestInteriorPointDegenerate(t *testing.T) {
	// All points share one y coordinate, so there is no edge to
	// probe from.
	flat := []Point{{0, 1}, {5, 1}, {9, 1}, {0, 1}}
	if _, ok := InteriorPoint(flat); ok {
		t.Error("expected no interior point for a flat ring")
	}
	// A zero-width sliver: the probes never land inside, and the
	// epsilon loop runs down to zero.
	sliver := []Point{{0, 0}, {0, 10}, {0, 0}}
	if _, ok := InteriorPoint(sliver); ok {
		t.Error("expected no interior point for a sliver ring")
	}
}
