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

// Package gisvizutil holds input readers, batch orchestration, and the
// command-line interface for GISViz.
package gisvizutil

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jonas-p/go-shp"

	"github.com/spatialmodel/gisviz/geom"
	"github.com/spatialmodel/gisviz/geom/encoding/wkt"
)

// Row is one renderable geometry: a WKT literal plus its display
// label. An empty label suppresses all label drawing for the row.
type Row struct {
	Label string
	WKT   string
}

// ReadRows reads one geometry per line. A line may be either a bare
// WKT literal or "label<TAB>literal". Blank lines and lines starting
// with # are skipped.
func ReadRows(r io.Reader) ([]Row, error) {
	var rows []Row
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if label, literal, found := strings.Cut(line, "\t"); found {
			rows = append(rows, Row{Label: strings.TrimSpace(label), WKT: strings.TrimSpace(literal)})
		} else {
			rows = append(rows, Row{WKT: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gisviz: reading rows: %w", err)
	}
	return rows, nil
}

// ReadShapefile converts the geometries of an ESRI shapefile into WKT
// rows. Labels come from the first attribute field when the shapefile
// carries attributes, otherwise from the record index.
func ReadShapefile(path string) ([]Row, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gisviz: opening shapefile: %w", err)
	}
	defer r.Close()

	hasAttrs := len(r.Fields()) > 0
	var rows []Row
	for r.Next() {
		i, shape := r.Shape()
		g, err := shapeToGeom(shape)
		if err != nil {
			return nil, err
		}
		literal, err := wkt.Marshal(g)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("%d", i)
		if hasAttrs {
			if v := strings.TrimSpace(r.ReadAttribute(i, 0)); v != "" {
				label = v
			}
		}
		rows = append(rows, Row{Label: label, WKT: literal})
	}
	return rows, nil
}

func shapeToGeom(shape shp.Shape) (geom.Geom, error) {
	switch s := shape.(type) {
	case *shp.Point:
		return geom.Point{X: s.X, Y: s.Y}, nil
	case *shp.PolyLine:
		parts := splitParts(s.Parts, s.Points)
		ml := make(geom.MultiLineString, len(parts))
		for i, p := range parts {
			ml[i] = geom.LineString(p)
		}
		return ml, nil
	case *shp.Polygon:
		parts := splitParts(s.Parts, s.Points)
		return geom.Polygon(parts), nil
	case *shp.MultiPoint:
		mp := make(geom.MultiPoint, len(s.Points))
		for i, p := range s.Points {
			mp[i] = geom.Point{X: p.X, Y: p.Y}
		}
		return mp, nil
	}
	return nil, fmt.Errorf("gisviz: unsupported shapefile shape %T", shape)
}

// splitParts cuts the flat shapefile point array at each part offset.
func splitParts(offsets []int32, points []shp.Point) [][]geom.Point {
	if len(offsets) == 0 && len(points) > 0 {
		offsets = []int32{0}
	}
	out := make([][]geom.Point, len(offsets))
	for i, start := range offsets {
		end := len(points)
		if i+1 < len(offsets) {
			end = int(offsets[i+1])
		}
		part := make([]geom.Point, 0, end-int(start))
		for _, p := range points[start:end] {
			part = append(part, geom.Point{X: p.X, Y: p.Y})
		}
		out[i] = part
	}
	return out
}
