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

// Package wkt converts geometry objects to and from Well-Known-Text
// spatial literals.
//
// Parsing is purely lexical: literals are taken apart by delimiter
// splitting, with no grammar validation beyond it. A coordinate token
// that does not parse as a number is reported as a
// *MalformedGeometryError rather than silently zeroed; degenerate but
// well-tokenized input (zero rings, too few points) is passed through
// unchanged, since downstream consumers have defined behavior for it.
package wkt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spatialmodel/gisviz/geom"
)

// MalformedGeometryError is returned when a WKT literal cannot be
// taken apart into numeric coordinates.
type MalformedGeometryError struct {
	Token string // the offending fragment
	Err   error  // underlying cause, may be nil
}

func (e *MalformedGeometryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wkt: malformed geometry at %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("wkt: malformed geometry at %q", e.Token)
}

func (e *MalformedGeometryError) Unwrap() error { return e.Err }

// Parse converts a WKT literal into a geometry object, dispatching on
// the leading type keyword. The keyword match is case-insensitive.
func Parse(s string) (geom.Geom, error) {
	s = strings.TrimSpace(s)
	open := strings.Index(s, "(")
	if open < 0 {
		return nil, &MalformedGeometryError{Token: s}
	}
	keyword := strings.ToUpper(strings.TrimSpace(s[:open]))
	if !strings.HasSuffix(s, ")") {
		return nil, &MalformedGeometryError{Token: s}
	}
	body := s[open+1 : len(s)-1]

	switch keyword {
	case "POINT":
		return parsePoint(body)
	case "LINESTRING":
		pts, err := parsePoints(body)
		if err != nil {
			return nil, err
		}
		return geom.LineString(pts), nil
	case "POLYGON":
		rings, err := parseRings(body)
		if err != nil {
			return nil, err
		}
		return geom.Polygon(rings), nil
	case "MULTIPOINT":
		return parseMultiPoint(body)
	case "MULTILINESTRING":
		rings, err := parseRings(body)
		if err != nil {
			return nil, err
		}
		ml := make(geom.MultiLineString, len(rings))
		for i, r := range rings {
			ml[i] = geom.LineString(r)
		}
		return ml, nil
	case "MULTIPOLYGON":
		return parseMultiPolygon(body)
	case "GEOMETRYCOLLECTION":
		return parseCollection(body)
	}
	return nil, &MalformedGeometryError{Token: keyword}
}

func parsePoint(body string) (geom.Point, error) {
	fields := strings.Fields(body)
	if len(fields) < 2 {
		return geom.Point{}, &MalformedGeometryError{Token: body}
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Point{}, &MalformedGeometryError{Token: fields[0], Err: err}
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, &MalformedGeometryError{Token: fields[1], Err: err}
	}
	return geom.Point{X: x, Y: y}, nil
}

// parsePoints splits a ring or line body on "," and each point on
// whitespace.
func parsePoints(body string) ([]geom.Point, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	points := make([]geom.Point, len(parts))
	for i, part := range parts {
		p, err := parsePoint(part)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

// parseRings splits a nested body like "0 0,1 0,1 1,0 0),(2 2,3 3"
// (outer parentheses already stripped by the caller) on the ring
// separator "),(".
func parseRings(body string) ([][]geom.Point, error) {
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	ringBodies := strings.Split(body, "),(")
	rings := make([][]geom.Point, len(ringBodies))
	for i, rb := range ringBodies {
		pts, err := parsePoints(rb)
		if err != nil {
			return nil, err
		}
		rings[i] = pts
	}
	return rings, nil
}

func parseMultiPoint(body string) (geom.MultiPoint, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	mp := make(geom.MultiPoint, len(parts))
	for i, part := range parts {
		// Tolerate both "1 2" and "(1 2)" member forms.
		p, err := parsePoint(strings.Trim(strings.TrimSpace(part), "()"))
		if err != nil {
			return nil, err
		}
		mp[i] = p
	}
	return mp, nil
}

func parseMultiPolygon(body string) (geom.MultiPolygon, error) {
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ")")
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	polyBodies := strings.Split(body, ")),((")
	mp := make(geom.MultiPolygon, len(polyBodies))
	for i, pb := range polyBodies {
		rings, err := parseRings(pb)
		if err != nil {
			return nil, err
		}
		mp[i] = geom.Polygon(rings)
	}
	return mp, nil
}

// parseCollection splits the members of a GEOMETRYCOLLECTION on the
// commas at parenthesis depth zero and parses each recursively.
func parseCollection(body string) (geom.GeometryCollection, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	var gc geom.GeometryCollection
	depth, start := 0, 0
	for i := 0; i <= len(body); i++ {
		if i == len(body) || (body[i] == ',' && depth == 0) {
			g, err := Parse(body[start:i])
			if err != nil {
				return nil, err
			}
			gc = append(gc, g)
			start = i + 1
			continue
		}
		switch body[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return gc, nil
}
