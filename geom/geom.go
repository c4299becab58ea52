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

// Package geom holds geometry objects and functions to operate on them.
// They can be encoded and decoded by other packages in this repository.
package geom

import "fmt"

// Geom is an interface for the generic geometry types in this package.
// The set of implementations is closed: Point, LineString, Polygon,
// MultiPoint, MultiLineString, MultiPolygon and GeometryCollection.
// Consumers dispatch with a type switch and treat any other
// implementation as an error.
type Geom interface {
	Bounds() *Bounds
}

// Point is a holder for 2D coordinates X and Y.
type Point struct {
	X, Y float64
}

// Bounds gives the rectangular extents of the Point.
func (p Point) Bounds() *Bounds {
	return NewBoundsPoint(p)
}

// Equals returns whether p is equal to p2.
func (p Point) Equals(p2 Point) bool {
	return p.X == p2.X && p.Y == p2.Y
}

// LineString is an open path of points.
type LineString []Point

// Bounds gives the rectangular extents of the LineString.
func (l LineString) Bounds() *Bounds {
	b := NewBounds()
	b.ExtendPoints(l)
	return b
}

// A Polygon is a series of closed rings. Ring 0 is the outer boundary;
// rings 1..n are holes. Rings are semantically closed: conventionally
// the first point equals the last, but operations in this package
// tolerate rings where it does not. Whether the holes actually lie
// inside the outer ring is not checked; malformed input is carried
// through as given.
type Polygon [][]Point

// Bounds gives the rectangular extents of the polygon's outer ring.
// Holes are interior and cannot extend the bounding box, so they are
// not considered.
func (p Polygon) Bounds() *Bounds {
	b := NewBounds()
	if len(p) > 0 {
		b.ExtendPoints(p[0])
	}
	return b
}

// MultiPoint is a set of points.
type MultiPoint []Point

// Bounds gives the rectangular extents of the MultiPoint.
func (mp MultiPoint) Bounds() *Bounds {
	b := NewBounds()
	b.ExtendPoints(mp)
	return b
}

// MultiLineString is a set of LineStrings.
type MultiLineString []LineString

// Bounds gives the rectangular extents of the MultiLineString.
func (ml MultiLineString) Bounds() *Bounds {
	b := NewBounds()
	for _, l := range ml {
		b.Extend(l.Bounds())
	}
	return b
}

// MultiPolygon is a set of Polygons.
type MultiPolygon []Polygon

// Bounds gives the rectangular extents of the MultiPolygon.
func (mp MultiPolygon) Bounds() *Bounds {
	b := NewBounds()
	for _, p := range mp {
		b.Extend(p.Bounds())
	}
	return b
}

// GeometryCollection is a holder for multiple related geometry objects
// of arbitrary type.
type GeometryCollection []Geom

// Bounds gives the rectangular extents of the GeometryCollection.
func (gc GeometryCollection) Bounds() *Bounds {
	b := NewBounds()
	for _, g := range gc {
		if g != nil {
			b.Extend(g.Bounds())
		}
	}
	return b
}

// UnsupportedGeometryError is returned when a geometry type is outside
// the closed set handled by this package.
type UnsupportedGeometryError struct {
	G Geom
}

func (e UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("geom: unsupported geometry type %T", e.G)
}
