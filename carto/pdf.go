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
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/spatialmodel/gisviz/geom"
	"github.com/spatialmodel/gisviz/geom/encoding/wkt"
)

var pdfDefaults = Style{
	FillColor:   color.NRGBA{R: 0xb0, G: 0xc4, B: 0xde, A: 0xff},
	StrokeColor: color.NRGBA{A: 0xff},
	StrokeWidth: 0.5,
	Opacity:     1,
}

const pdfMarkerRadius = 1.5 // pt

// PDF draws geometry onto a single-page document whose page size is
// the transform's viewport. PDF pages have a top-left origin here, so
// the y axis is inverted like the raster target.
type PDF struct {
	doc *gofpdf.Fpdf
	tr  geom.Transform
}

// NewPDF allocates a one-page document matching the transform's
// viewport, in points.
func NewPDF(tr geom.Transform) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: tr.Width, Ht: tr.Height},
	})
	doc.SetFont("Helvetica", "", 8)
	doc.AddPage()
	return &PDF{doc: doc, tr: tr}
}

// WriteTo serializes the document.
func (p *PDF) WriteTo(w io.Writer) error {
	return p.doc.Output(w)
}

// Err surfaces any drawing error the document has accumulated.
func (p *PDF) Err() error {
	if p.doc.Err() {
		return p.doc.Error()
	}
	return nil
}

func (p *PDF) device(pt geom.Point) geom.Point {
	return p.tr.DeviceYDown(pt)
}

// Draw parses the WKT literal and paints it onto the page. Polygon
// rings become subpaths of one path painted with the even-odd rule
// (the B* operator), so holes come out unfilled. The label, when
// non-empty, is placed at the second scaled point of the first ring.
func (p *PDF) Draw(wktStr, label string, st Style) error {
	g, err := wkt.Parse(wktStr)
	if err != nil {
		return err
	}
	st = st.withDefaults(pdfDefaults)
	p.doc.SetFillColor(int(st.FillColor.R), int(st.FillColor.G), int(st.FillColor.B))
	p.doc.SetDrawColor(int(st.StrokeColor.R), int(st.StrokeColor.G), int(st.StrokeColor.B))
	p.doc.SetLineWidth(st.StrokeWidth)
	p.doc.SetAlpha(st.Opacity, "Normal")
	if err := p.drawGeom(g); err != nil {
		return err
	}
	p.doc.SetAlpha(1, "Normal")
	if label != "" {
		if anchor, ok := labelAnchor(firstRing(g)); ok {
			d := p.device(anchor)
			p.doc.SetXY(d.X, d.Y)
			p.doc.Text(d.X, d.Y, label)
		}
	}
	return p.Err()
}

func (p *PDF) drawGeom(g geom.Geom) error {
	switch g := g.(type) {
	case geom.Point:
		d := p.device(g)
		p.doc.Circle(d.X, d.Y, pdfMarkerRadius, "FD")
	case geom.MultiPoint:
		for _, pt := range g {
			d := p.device(pt)
			p.doc.Circle(d.X, d.Y, pdfMarkerRadius, "FD")
		}
	case geom.LineString:
		p.subpath(g, false)
		p.doc.DrawPath("D")
	case geom.MultiLineString:
		for _, l := range g {
			p.subpath(l, false)
			p.doc.DrawPath("D")
		}
	case geom.Polygon:
		if len(g) == 0 {
			return nil
		}
		for _, ring := range g {
			p.subpath(ring, true)
		}
		p.doc.DrawPath("B*") // fill+stroke, even-odd
	case geom.MultiPolygon:
		for _, poly := range g {
			if err := p.drawGeom(poly); err != nil {
				return err
			}
		}
	case geom.GeometryCollection:
		for _, member := range g {
			if err := p.drawGeom(member); err != nil {
				return err
			}
		}
	default:
		return geom.UnsupportedGeometryError{G: g}
	}
	return nil
}

func (p *PDF) subpath(points []geom.Point, closed bool) {
	for i, pt := range points {
		d := p.device(pt)
		if i == 0 {
			p.doc.MoveTo(d.X, d.Y)
		} else {
			p.doc.LineTo(d.X, d.Y)
		}
	}
	if closed && len(points) > 0 {
		p.doc.ClosePath()
	}
}
