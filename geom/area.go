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

// dropClosingPoint removes the duplicated closing point of an
// explicitly closed ring, so that the closing edge is not counted
// twice. Rings without the duplicate are returned unchanged.
func dropClosingPoint(ring []Point) []Point {
	if n := len(ring); n > 1 && ring[0].Equals(ring[n-1]) {
		return ring[:n-1]
	}
	return ring
}

// Area returns the signed area of ring via the shoelace formula,
// adapted from http://www.mathopenref.com/coordpolygonarea2.html.
// A negative result means the ring winds clockwise, which is the
// outer-ring convention throughout this package; callers depend on
// the sign, so it is not taken absolute. A duplicated closing point
// is excluded before computing. Rings with fewer than 3 distinct
// points have zero area.
func Area(ring []Point) float64 {
	ring = dropClosingPoint(ring)
	n := len(ring)
	if n < 3 {
		return 0
	}
	a := 0.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += ring[j].X*ring[i].Y - ring[i].X*ring[j].Y
	}
	return a / 2
}

// IsOuterRing reports whether ring winds in the outer-ring direction,
// i.e. whether its signed area is negative. The same sign convention
// is relied on by the renderers' even-odd fill handling; keep them
// consistent.
func IsOuterRing(ring []Point) bool {
	return Area(ring) < 0
}

// Centroid returns the area-weighted centroid of p. Each ring must
// have nonzero area; the result for self-intersecting polygons is
// undefined.
func (p Polygon) Centroid() Point {
	var a, xa, ya float64
	for _, ring := range p {
		r := dropClosingPoint(ring)
		n := len(r)
		if n < 3 {
			continue
		}
		ra := Area(ring)
		var cx, cy float64
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			cross := r[j].X*r[i].Y - r[i].X*r[j].Y
			cx += (r[i].X + r[j].X) * cross
			cy += (r[i].Y + r[j].Y) * cross
		}
		cx /= 6 * ra
		cy /= 6 * ra
		a += ra
		xa += cx * ra
		ya += cy * ra
	}
	if a == 0 {
		return Point{}
	}
	return Point{X: xa / a, Y: ya / a}
}
