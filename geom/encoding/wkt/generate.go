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
	"strconv"
	"strings"

	"github.com/spatialmodel/gisviz/geom"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writePoint(b *strings.Builder, p geom.Point) {
	b.WriteString(formatFloat(p.X))
	b.WriteByte(' ')
	b.WriteString(formatFloat(p.Y))
}

func writePoints(b *strings.Builder, pts []geom.Point) {
	b.WriteByte('(')
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(',')
		}
		writePoint(b, p)
	}
	b.WriteByte(')')
}

func writeRings(b *strings.Builder, rings [][]geom.Point) {
	b.WriteByte('(')
	for i, r := range rings {
		if i > 0 {
			b.WriteByte(',')
		}
		writePoints(b, r)
	}
	b.WriteByte(')')
}

// Marshal serializes g as a WKT literal. The output parses back into
// a coordinate-equal geometry with Parse.
func Marshal(g geom.Geom) (string, error) {
	var b strings.Builder
	if err := write(&b, g); err != nil {
		return "", err
	}
	return b.String(), nil
}

func write(b *strings.Builder, g geom.Geom) error {
	switch g := g.(type) {
	case geom.Point:
		b.WriteString("POINT(")
		writePoint(b, g)
		b.WriteByte(')')
	case geom.LineString:
		b.WriteString("LINESTRING")
		writePoints(b, g)
	case geom.Polygon:
		b.WriteString("POLYGON")
		writeRings(b, g)
	case geom.MultiPoint:
		b.WriteString("MULTIPOINT")
		writePoints(b, g)
	case geom.MultiLineString:
		b.WriteString("MULTILINESTRING")
		rings := make([][]geom.Point, len(g))
		for i, l := range g {
			rings[i] = l
		}
		writeRings(b, rings)
	case geom.MultiPolygon:
		b.WriteString("MULTIPOLYGON(")
		for i, p := range g {
			if i > 0 {
				b.WriteByte(',')
			}
			writeRings(b, p)
		}
		b.WriteByte(')')
	case geom.GeometryCollection:
		b.WriteString("GEOMETRYCOLLECTION(")
		for i, member := range g {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := write(b, member); err != nil {
				return err
			}
		}
		b.WriteByte(')')
	default:
		return geom.UnsupportedGeometryError{G: g}
	}
	return nil
}

// Editor form input. Coordinate values stay strings because the form
// may be partially filled in; generation substitutes a placeholder
// for anything blank instead of failing, so an in-progress edit still
// produces a syntactically shaped literal.

// PointForm is one coordinate pair as entered in an editor.
type PointForm struct {
	X, Y string
}

// RingForm is the entered point set of one ring. Points is sparse:
// indexes with no entry are treated as blank.
type RingForm struct {
	NumPoints int
	Points    map[int]PointForm
}

// PolygonForm is the entered ring set of a polygon. Rings is sparse
// like RingForm.Points.
type PolygonForm struct {
	NumRings int
	Rings    map[int]RingForm
}

// Polygon generation policy: at least one ring, and at least four
// points per ring (a minimal closed triangle plus its closing
// duplicate). Requests for fewer are clamped up.
const (
	minRings         = 1
	minPointsPerRing = 4
)

// GeneratePolygon builds a WKT POLYGON literal from editor input, the
// inverse of ExtractNested. Blank or missing coordinate values are
// replaced with empty, which may itself be blank.
func GeneratePolygon(form PolygonForm, empty string) string {
	numRings := form.NumRings
	if numRings < minRings {
		numRings = minRings
	}
	var b strings.Builder
	b.WriteString("POLYGON(")
	for i := 0; i < numRings; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		ring := form.Rings[i]
		numPoints := ring.NumPoints
		if numPoints < minPointsPerRing {
			numPoints = minPointsPerRing
		}
		b.WriteByte('(')
		for j := 0; j < numPoints; j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			p := ring.Points[j]
			b.WriteString(orEmpty(p.X, empty))
			b.WriteByte(' ')
			b.WriteString(orEmpty(p.Y, empty))
		}
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}

func orEmpty(v, empty string) string {
	if strings.TrimSpace(v) == "" {
		return empty
	}
	return v
}
