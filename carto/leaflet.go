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
	"encoding/json"
	"image/color"
	"io"

	"github.com/spatialmodel/gisviz/geom"
	"github.com/spatialmodel/gisviz/geom/encoding/wkt"
)

var leafletDefaults = Style{
	FillColor:   color.NRGBA{R: 0xb0, G: 0xc4, B: 0xde, A: 0xff},
	StrokeColor: color.NRGBA{A: 0xff},
	StrokeWidth: 2,
	Opacity:     0.8,
}

// LayerStyle is the style object attached to every emitted layer,
// named after the options the client map library understands.
type LayerStyle struct {
	Color       string  `json:"color"`  // stroke
	Weight      float64 `json:"weight"` // stroke width, px
	FillColor   string  `json:"fillColor"`
	FillOpacity float64 `json:"fillOpacity"`
}

// Layer is the declarative description of one rendered geometry:
// a type tag, the scaled coordinate list, and a style object, for
// client-side interpretation. The label fields are omitted entirely
// when the row has no label.
type Layer struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
	Style       LayerStyle  `json:"style"`
	Label       string      `json:"label,omitempty"`
	LabelAnchor []float64   `json:"labelAnchor,omitempty"`
}

// Leaflet accumulates map layers instead of drawing immediately; it
// is a serialization renderer. The y axis is not inverted, matching
// the map client's coordinate convention.
type Leaflet struct {
	tr     geom.Transform
	Layers []Layer
}

// NewLeaflet returns an empty layer collection for the given
// transform.
func NewLeaflet(tr geom.Transform) *Leaflet {
	return &Leaflet{tr: tr}
}

// WriteTo serializes the accumulated layers as JSON.
func (l *Leaflet) WriteTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(struct {
		Layers []Layer `json:"layers"`
	}{Layers: l.Layers})
}

// Draw parses the WKT literal and appends the corresponding layer
// descriptions. Geometry collections flatten into one layer per
// member, each carrying the row's label so the client can attach the
// tooltip wherever it draws.
func (l *Leaflet) Draw(wktStr, label string, st Style) error {
	g, err := wkt.Parse(wktStr)
	if err != nil {
		return err
	}
	st = st.withDefaults(leafletDefaults)
	return l.addGeom(g, label, st)
}

func (l *Leaflet) addGeom(g geom.Geom, label string, st Style) error {
	layer := Layer{
		Style: LayerStyle{
			Color:       hexColor(st.StrokeColor),
			Weight:      st.StrokeWidth,
			FillColor:   hexColor(st.FillColor),
			FillOpacity: st.Opacity,
		},
	}
	switch g := g.(type) {
	case geom.Point:
		layer.Type = "point"
		layer.Coordinates = l.coord(g)
	case geom.MultiPoint:
		layer.Type = "multipoint"
		layer.Coordinates = l.coords(g)
	case geom.LineString:
		layer.Type = "linestring"
		layer.Coordinates = l.coords(g)
	case geom.MultiLineString:
		layer.Type = "multilinestring"
		layer.Coordinates = l.rings(toRings(g))
	case geom.Polygon:
		layer.Type = "polygon"
		layer.Coordinates = l.rings(g)
	case geom.MultiPolygon:
		layer.Type = "multipolygon"
		polys := make([][][][]float64, len(g))
		for i, p := range g {
			polys[i] = l.rings(p)
		}
		layer.Coordinates = polys
	case geom.GeometryCollection:
		for _, member := range g {
			if err := l.addGeom(member, label, st); err != nil {
				return err
			}
		}
		return nil
	default:
		return geom.UnsupportedGeometryError{G: g}
	}
	if label != "" {
		layer.Label = label
		if anchor, ok := labelAnchor(firstRing(g)); ok {
			d := l.tr.Device(anchor)
			layer.LabelAnchor = []float64{d.X, d.Y}
		}
	}
	l.Layers = append(l.Layers, layer)
	return nil
}

func (l *Leaflet) coord(p geom.Point) []float64 {
	d := l.tr.Device(p)
	return []float64{d.X, d.Y}
}

func (l *Leaflet) coords(points []geom.Point) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = l.coord(p)
	}
	return out
}

func (l *Leaflet) rings(rings [][]geom.Point) [][][]float64 {
	out := make([][][]float64, len(rings))
	for i, r := range rings {
		out[i] = l.coords(r)
	}
	return out
}

func toRings(ml geom.MultiLineString) [][]geom.Point {
	out := make([][]geom.Point, len(ml))
	for i, l := range ml {
		out[i] = l
	}
	return out
}
