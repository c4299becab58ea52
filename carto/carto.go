/*
Copyright © 2024 the GISViz authors.
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

// Package carto renders geometry parsed from WKT literals onto
// several output targets: raster images, PDF pages, SVG markup, and a
// declarative map-layer description.
//
// The renderers are deliberately independent: each one re-extracts
// the WKT string it is handed, maps world coordinates through a
// frozen geom.Transform, and draws in its target's native coordinate
// convention (y inverted for raster and PDF, not inverted for SVG and
// map layers). They share no state beyond the read-only Transform, so
// a frozen batch may be rendered concurrently.
package carto

import (
	"fmt"
	"image/color"

	"github.com/spatialmodel/gisviz/geom"
)

// Style configures how one geometry row is painted. The zero value of
// any field is replaced with a format-specific default, so callers
// set only what they care about. Styles are built per render call and
// never persisted.
type Style struct {
	FillColor   color.NRGBA
	StrokeColor color.NRGBA
	StrokeWidth float64 // device units of the target (px or pt)
	Opacity     float64 // fill opacity in (0,1]
}

var zeroColor = color.NRGBA{}

// withDefaults fills zero-valued fields of s from d.
func (s Style) withDefaults(d Style) Style {
	if s.FillColor == zeroColor {
		s.FillColor = d.FillColor
	}
	if s.StrokeColor == zeroColor {
		s.StrokeColor = d.StrokeColor
	}
	if s.StrokeWidth == 0 {
		s.StrokeWidth = d.StrokeWidth
	}
	if s.Opacity == 0 {
		s.Opacity = d.Opacity
	}
	return s
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// labelAnchor picks the deterministic label position for a geometry:
// the second point of the first ring, in device coordinates, falling
// back to the first point when there is only one.
func labelAnchor(points []geom.Point) (geom.Point, bool) {
	switch {
	case len(points) > 1:
		return points[1], true
	case len(points) == 1:
		return points[0], true
	}
	return geom.Point{}, false
}

// firstRing returns the points of the geometry's first ring (or path,
// or the points themselves for point-like geometries), for label
// anchoring.
func firstRing(g geom.Geom) []geom.Point {
	switch g := g.(type) {
	case geom.Point:
		return []geom.Point{g}
	case geom.LineString:
		return g
	case geom.Polygon:
		if len(g) > 0 {
			return g[0]
		}
	case geom.MultiPoint:
		return g
	case geom.MultiLineString:
		if len(g) > 0 {
			return g[0]
		}
	case geom.MultiPolygon:
		if len(g) > 0 {
			return firstRing(g[0])
		}
	case geom.GeometryCollection:
		if len(g) > 0 {
			return firstRing(g[0])
		}
	}
	return nil
}
