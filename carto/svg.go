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

package carto

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/spatialmodel/gisviz/geom"
	"github.com/spatialmodel/gisviz/geom/encoding/wkt"
)

var svgDefaults = Style{
	FillColor:   color.NRGBA{R: 0xb0, G: 0xc4, B: 0xde, A: 0xff},
	StrokeColor: color.NRGBA{A: 0xff},
	StrokeWidth: 2,
	Opacity:     0.8,
}

const svgMarkerRadius = 3

// SVG emits geometry as SVG markup. Per the SVG convention the y axis
// is not inverted here: device coordinates are written as computed by
// Transform.Device.
type SVG struct {
	canvas *svg.SVG
	tr     geom.Transform
}

// NewSVG opens an SVG document of the transform's viewport size on w.
// Call Close when all rows are drawn.
func NewSVG(w io.Writer, tr geom.Transform) *SVG {
	c := svg.New(w)
	c.Start(int(tr.Width), int(tr.Height))
	return &SVG{canvas: c, tr: tr}
}

// Close terminates the document.
func (s *SVG) Close() {
	s.canvas.End()
}

// Draw parses the WKT literal and emits it. A polygon becomes a
// single path element whose ring subpaths are concatenated "M ... L
// ... Z" runs, with fill-rule:evenodd so holes render correctly. The
// label, when non-empty, is a text element at the second scaled point
// of the first ring.
func (s *SVG) Draw(wktStr, label string, st Style) error {
	g, err := wkt.Parse(wktStr)
	if err != nil {
		return err
	}
	st = st.withDefaults(svgDefaults)
	if err := s.drawGeom(s.tr, g, st); err != nil {
		return err
	}
	if label != "" {
		if anchor, ok := labelAnchor(firstRing(g)); ok {
			d := s.tr.Device(anchor)
			s.canvas.Text(round(d.X), round(d.Y),
				label, "fill:black;font-size:10px")
		}
	}
	return nil
}

func (s *SVG) drawGeom(tr geom.Transform, g geom.Geom, st Style) error {
	pointStyle := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g",
		hexColor(st.FillColor), hexColor(st.StrokeColor), st.StrokeWidth)
	lineStyle := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g",
		hexColor(st.StrokeColor), st.StrokeWidth)
	polyStyle := fmt.Sprintf(
		"fill:%s;fill-rule:evenodd;fill-opacity:%g;stroke:%s;stroke-width:%g",
		hexColor(st.FillColor), st.Opacity, hexColor(st.StrokeColor), st.StrokeWidth)

	switch g := g.(type) {
	case geom.Point:
		d := tr.Device(g)
		s.canvas.Circle(round(d.X), round(d.Y), svgMarkerRadius, pointStyle)
	case geom.MultiPoint:
		for _, p := range g {
			d := tr.Device(p)
			s.canvas.Circle(round(d.X), round(d.Y), svgMarkerRadius, pointStyle)
		}
	case geom.LineString:
		s.canvas.Path(pathData(tr, [][]geom.Point{g}, false), lineStyle)
	case geom.MultiLineString:
		rings := make([][]geom.Point, len(g))
		for i, l := range g {
			rings[i] = l
		}
		s.canvas.Path(pathData(tr, rings, false), lineStyle)
	case geom.Polygon:
		if len(g) == 0 {
			return nil
		}
		s.canvas.Path(pathData(tr, g, true), polyStyle)
	case geom.MultiPolygon:
		for _, p := range g {
			if err := s.drawGeom(tr, p, st); err != nil {
				return err
			}
		}
	case geom.GeometryCollection:
		for _, member := range g {
			if err := s.drawGeom(tr, member, st); err != nil {
				return err
			}
		}
	default:
		return geom.UnsupportedGeometryError{G: g}
	}
	return nil
}

// pathData builds the d attribute: one "M x,y L x,y ..." run per
// ring, "Z"-closed for polygons, concatenated into one string.
func pathData(tr geom.Transform, rings [][]geom.Point, closed bool) string {
	var b strings.Builder
	for _, ring := range rings {
		for i, p := range ring {
			d := tr.Device(p)
			if i == 0 {
				fmt.Fprintf(&b, "M %g,%g", d.X, d.Y)
			} else {
				fmt.Fprintf(&b, " L %g,%g", d.X, d.Y)
			}
		}
		if closed && len(ring) > 0 {
			b.WriteString(" Z ")
		}
	}
	return strings.TrimSpace(b.String())
}

func round(v float64) int {
	return int(math.Round(v))
}
