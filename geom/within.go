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

import "math"

// PointInPolygon reports whether pt lies inside the given ring, using
// the even-odd ray-casting rule adapted from
// https://rosettacode.org/wiki/Ray-casting_algorithm.
//
// The edge test is half-open on the y interval (strictly above the
// lower vertex, at or below the upper one) and counts a crossing when
// the edge is vertical or pt.x is at or left of the x-intercept. The
// asymmetry is the standard ray-casting convention that keeps
// horizontal edges and vertex touches from being counted twice; points
// exactly on a boundary are classified by this tie-break, one way or
// the other, deterministically.
func PointInPolygon(pt Point, ring []Point) bool {
	ring = dropClosingPoint(ring)
	n := len(ring)
	if n < 3 {
		return false
	}
	counter := 0
	p1 := ring[0]
	for i := 1; i <= n; i++ {
		p2 := ring[i%n]
		if pt.Y > math.Min(p1.Y, p2.Y) &&
			pt.Y <= math.Max(p1.Y, p2.Y) &&
			pt.X <= math.Max(p1.X, p2.X) &&
			p1.Y != p2.Y {
			xIntersect := (pt.Y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
			if p1.X == p2.X || pt.X <= xIntersect {
				counter++
			}
		}
		p1 = p2
	}
	return counter%2 != 0
}

// Contains reports whether pt lies inside p, combining the per-ring
// results with the even-odd rule so that points inside a hole are
// outside the polygon. This matches the fill rule the renderers use.
func (p Polygon) Contains(pt Point) bool {
	in := false
	for _, ring := range p {
		if PointInPolygon(pt, ring) {
			in = !in
		}
	}
	return in
}
