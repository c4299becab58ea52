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
	"strings"

	"github.com/spatialmodel/gisviz/geom"
)

const (
	polygonPrefix = "POLYGON(("
	polygonSuffix = "))"
)

// polygonBody strips the fixed POLYGON wrapper from s. The caller is
// expected to have dispatched on the type keyword already; anything
// that does not carry the wrapper is malformed from this function's
// point of view.
func polygonBody(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(polygonPrefix)+len(polygonSuffix) ||
		!strings.EqualFold(s[:len(polygonPrefix)], polygonPrefix) ||
		!strings.HasSuffix(s, polygonSuffix) {
		return "", &MalformedGeometryError{Token: s}
	}
	return s[len(polygonPrefix) : len(s)-len(polygonSuffix)], nil
}

// ExtractNested returns the rings of a POLYGON literal, one point
// sequence per ring: ring 0 the outer boundary, the rest holes.
// Analytical consumers (area, containment) use this mode because they
// must tell rings apart.
func ExtractNested(s string) (geom.Polygon, error) {
	body, err := polygonBody(s)
	if err != nil {
		return nil, err
	}
	rings, err := parseRings(body)
	if err != nil {
		return nil, err
	}
	return geom.Polygon(rings), nil
}

// ExtractFlat returns all points of a POLYGON literal as one flat
// ordered sequence, ring structure discarded. Renderers that draw
// independent closed shapes use this mode.
func ExtractFlat(s string) ([]geom.Point, error) {
	rings, err := ExtractNested(s)
	if err != nil {
		return nil, err
	}
	var points []geom.Point
	for _, ring := range rings {
		points = append(points, ring...)
	}
	return points, nil
}
