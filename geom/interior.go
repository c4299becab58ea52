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

// maxInteriorIterations bounds the epsilon-shrink loop in
// InteriorPoint. Squaring 0.1 underflows float64 to exactly 0 after
// about ten iterations, so the natural termination fires long before
// the cap; the cap only guards against numeric representations where
// the underflow argument does not hold.
const maxInteriorIterations = 64

// InteriorPoint estimates a point in the interior of ring, for label
// placement and similar uses. It takes the midpoint of the first edge
// whose endpoints differ in y, then probes along the perpendicular to
// that edge at a shrinking offset epsilon (squared after each failed
// round), accepting the first probe that PointInPolygon reports
// inside. The edge choice is deterministic: always the first such
// edge in ring order.
//
// The second return value is false when no interior point was found
// before epsilon reached zero. That is the expected outcome for
// degenerate or extremely thin rings, not a failure.
func InteriorPoint(ring []Point) (Point, bool) {
	// Find two consecutive vertices with differing y.
	edge := -1
	for i := 0; i < len(ring)-1; i++ {
		if ring[i].Y != ring[i+1].Y {
			edge = i
			break
		}
	}
	if edge < 0 {
		return Point{}, false
	}
	p1, p2 := ring[edge], ring[edge+1]
	x0 := (p1.X + p2.X) / 2
	y0 := (p1.Y + p2.Y) / 2
	denominator := math.Sqrt(math.Pow(p1.Y-p2.Y, 2) + math.Pow(p2.X-p1.X, 2))

	// Keep epsilon < 1 so repeated squaring shrinks it.
	epsilon := 0.1
	for i := 0; i < maxInteriorIterations; i++ {
		if epsilon == 0 {
			return Point{}, false
		}
		dx := epsilon * (p1.Y - p2.Y) / denominator
		a := Point{X: x0 + dx, Y: y0 + dx*(p2.X-p1.X)/(p1.Y-p2.Y)}
		if PointInPolygon(a, ring) {
			return a, true
		}
		b := Point{X: x0 - dx, Y: y0 - dx*(p2.X-p1.X)/(p1.Y-p2.Y)}
		if PointInPolygon(b, ring) {
			return b, true
		}
		epsilon = epsilon * epsilon
	}
	return Point{}, false
}
