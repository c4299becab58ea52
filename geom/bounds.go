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

// Bounds holds the spatial extent of one or more geometries. It is a
// mutable accumulator: create it once per batch with NewBounds, fold
// every row's geometry into it, then Freeze it into a Transform before
// rendering begins. Accumulation assumes a single writer; a frozen
// Transform may be shared freely.
type Bounds struct {
	Min, Max Point
}

// NewBounds initializes a new bounds object.
func NewBounds() *Bounds {
	return &Bounds{Point{X: math.Inf(1), Y: math.Inf(1)}, Point{X: math.Inf(-1), Y: math.Inf(-1)}}
}

// NewBoundsPoint creates a bounds object from a point.
func NewBoundsPoint(point Point) *Bounds {
	return &Bounds{Point{X: point.X, Y: point.Y}, Point{X: point.X, Y: point.Y}}
}

// Copy returns a copy of b.
func (b *Bounds) Copy() *Bounds {
	return &Bounds{Point{X: b.Min.X, Y: b.Min.Y}, Point{X: b.Max.X, Y: b.Max.Y}}
}

// Empty returns true if b does not contain any points.
func (b *Bounds) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Extend increases the extent of b to include b2.
func (b *Bounds) Extend(b2 *Bounds) {
	if b2 == nil || b2.Empty() {
		return
	}
	b.extendPoint(b2.Min)
	b.extendPoint(b2.Max)
}

// ExtendPoints increases the extent of b to include every point in
// points.
func (b *Bounds) ExtendPoints(points []Point) {
	for _, point := range points {
		b.extendPoint(point)
	}
}

// ExtendGeom increases the extent of b to include g. For polygonal
// geometries only the outer ring of each polygon is observed; holes
// are interior and cannot extend the box.
func (b *Bounds) ExtendGeom(g Geom) {
	if g == nil {
		return
	}
	b.Extend(g.Bounds())
}

func (b *Bounds) extendPoint(point Point) {
	b.Min.X = math.Min(b.Min.X, point.X)
	b.Min.Y = math.Min(b.Min.Y, point.Y)
	b.Max.X = math.Max(b.Max.X, point.X)
	b.Max.Y = math.Max(b.Max.Y, point.Y)
}

// Overlaps returns whether b and b2 overlap.
func (b *Bounds) Overlaps(b2 *Bounds) bool {
	return b.Min.X <= b2.Max.X && b.Min.Y <= b2.Max.Y && b.Max.X >= b2.Min.X && b.Max.Y >= b2.Min.Y
}
