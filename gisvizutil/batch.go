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

package gisvizutil

import (
	"fmt"
	"image/color"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/gisviz/carto"
	"github.com/spatialmodel/gisviz/geom"
	"github.com/spatialmodel/gisviz/geom/encoding/wkt"
)

// palette supplies fill colors for rows that do not specify one,
// cycling when there are more rows than colors.
var palette = []color.NRGBA{
	{R: 0xb2, G: 0x18, B: 0x2b, A: 0xff},
	{R: 0x21, G: 0x66, B: 0xac, A: 0xff},
	{R: 0x33, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x00, A: 0xff},
	{R: 0x6a, G: 0x3d, B: 0x9a, A: 0xff},
	{R: 0xb1, G: 0x59, B: 0x28, A: 0xff},
}

// drawer is the part of a renderer the batch loop needs.
type drawer interface {
	Draw(wktStr, label string, st carto.Style) error
}

// RenderBatch renders rows to the given format ("png", "pdf", "svg"
// or "leaflet") on one shared canvas. All rows are folded into a
// single bounds accumulator first, so every row is scaled
// consistently; the bounds are then frozen before any drawing starts.
//
// A malformed row fails only itself: it is logged with its index and
// skipped, and the rest of the batch still renders.
func RenderBatch(rows []Row, format string, width, height float64, w io.Writer) error {
	bounds := geom.NewBounds()
	for i, row := range rows {
		g, err := wkt.Parse(row.WKT)
		if err != nil {
			logrus.WithField("row", i).WithError(err).Error("skipping malformed geometry")
			continue
		}
		bounds.ExtendGeom(g)
	}
	tr := bounds.Freeze(width, height)

	var d drawer
	var finish func() error
	switch format {
	case "png":
		r := carto.NewRaster(tr)
		d, finish = r, func() error { return r.WriteTo(w) }
	case "pdf":
		p := carto.NewPDF(tr)
		d, finish = p, func() error { return p.WriteTo(w) }
	case "svg":
		s := carto.NewSVG(w, tr)
		d, finish = s, func() error { s.Close(); return nil }
	case "leaflet":
		l := carto.NewLeaflet(tr)
		d, finish = l, func() error { return l.WriteTo(w) }
	default:
		return fmt.Errorf("gisviz: unknown output format %q", format)
	}

	for i, row := range rows {
		st := carto.Style{FillColor: palette[i%len(palette)]}
		if err := d.Draw(row.WKT, row.Label, st); err != nil {
			logrus.WithField("row", i).WithError(err).Error("skipping row")
		}
	}
	return finish()
}

// Inspect writes a textual report of the analytical properties of
// each row: ring areas and winding for polygons, plus an estimated
// interior point, and the bounding box for everything else. Geometry
// math runs on unscaled world coordinates.
func Inspect(rows []Row, w io.Writer) error {
	for i, row := range rows {
		g, err := wkt.Parse(row.WKT)
		if err != nil {
			logrus.WithField("row", i).WithError(err).Error("skipping malformed geometry")
			continue
		}
		name := row.Label
		if name == "" {
			name = fmt.Sprintf("row %d", i)
		}
		fmt.Fprintf(w, "%s: %s\n", name, describe(g))
	}
	return nil
}

func describe(g geom.Geom) string {
	switch g := g.(type) {
	case geom.Polygon:
		s := fmt.Sprintf("polygon with %d ring(s)", len(g))
		for j, ring := range g {
			role := "hole"
			if geom.IsOuterRing(ring) {
				role = "outer"
			}
			s += fmt.Sprintf("\n  ring %d: area %g (%s)", j, geom.Area(ring), role)
		}
		if len(g) > 0 {
			if p, ok := geom.InteriorPoint(g[0]); ok {
				s += fmt.Sprintf("\n  interior point: (%g, %g)", p.X, p.Y)
			} else {
				s += "\n  interior point: not found"
			}
		}
		return s
	case geom.MultiPolygon:
		return fmt.Sprintf("multipolygon with %d member(s)", len(g))
	case geom.GeometryCollection:
		return fmt.Sprintf("collection with %d member(s)", len(g))
	default:
		b := g.Bounds()
		return fmt.Sprintf("%T with bounds (%g, %g)-(%g, %g)",
			g, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	}
}
