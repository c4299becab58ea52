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
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/spatialmodel/gisviz/geom"
	"github.com/spatialmodel/gisviz/geom/encoding/wkt"
)

var rasterDefaults = Style{
	FillColor:   color.NRGBA{R: 0xb0, G: 0xc4, B: 0xde, A: 0xff},
	StrokeColor: color.NRGBA{A: 0xff},
	StrokeWidth: 1,
	Opacity:     1,
}

const rasterMarkerRadius = 3 // px, for point geometries

// Raster draws geometry onto an RGBA image with the origin at the top
// left, y axis pointing down.
type Raster struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext
	tr  geom.Transform
}

// NewRaster allocates a canvas matching the transform's viewport.
func NewRaster(tr geom.Transform) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, int(tr.Width), int(tr.Height)))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillRule(draw2d.FillRuleEvenOdd)
	return &Raster{img: img, gc: gc, tr: tr}
}

// Image returns the underlying image.
func (r *Raster) Image() *image.RGBA { return r.img }

// WriteTo encodes the canvas as PNG.
func (r *Raster) WriteTo(w io.Writer) error {
	return png.Encode(w, r.img)
}

func (r *Raster) device(p geom.Point) geom.Point {
	return r.tr.DeviceYDown(p)
}

// Draw parses the WKT literal and paints it. A polygon's rings are
// concatenated into one path and filled with the even-odd rule, which
// is what makes holes render as holes; the orientation convention of
// geom.Area is consistent with this. The label, when non-empty, is
// drawn at the second scaled point of the first ring. Degenerate
// geometry paints nothing extra and is not an error.
func (r *Raster) Draw(wktStr, label string, st Style) error {
	g, err := wkt.Parse(wktStr)
	if err != nil {
		return err
	}
	st = st.withDefaults(rasterDefaults)
	if err := r.drawGeom(g, st); err != nil {
		return err
	}
	if label != "" {
		if anchor, ok := labelAnchor(firstRing(g)); ok {
			r.text(label, r.device(anchor), st.StrokeColor)
		}
	}
	return nil
}

func (r *Raster) drawGeom(g geom.Geom, st Style) error {
	fill := st.FillColor
	fill.A = uint8(st.Opacity * float64(fill.A))
	r.gc.SetFillColor(fill)
	r.gc.SetStrokeColor(st.StrokeColor)
	r.gc.SetLineWidth(st.StrokeWidth)

	switch g := g.(type) {
	case geom.Point:
		r.marker(r.device(g))
	case geom.MultiPoint:
		for _, p := range g {
			r.marker(r.device(p))
		}
	case geom.LineString:
		r.path([][]geom.Point{g}, false)
		r.gc.Stroke()
	case geom.MultiLineString:
		for _, l := range g {
			r.path([][]geom.Point{l}, false)
			r.gc.Stroke()
		}
	case geom.Polygon:
		if len(g) == 0 {
			return nil
		}
		// One path through all rings; the even-odd fill rule
		// carves the holes out.
		var flat []geom.Point
		for _, ring := range g {
			flat = append(flat, ring...)
		}
		r.path([][]geom.Point{flat}, true)
		r.gc.FillStroke()
	case geom.MultiPolygon:
		for _, p := range g {
			if err := r.drawGeom(p, st); err != nil {
				return err
			}
		}
	case geom.GeometryCollection:
		for _, member := range g {
			if err := r.drawGeom(member, st); err != nil {
				return err
			}
		}
	default:
		return geom.UnsupportedGeometryError{G: g}
	}
	return nil
}

func (r *Raster) path(rings [][]geom.Point, closed bool) {
	for _, ring := range rings {
		for i, p := range ring {
			d := r.device(p)
			if i == 0 {
				r.gc.MoveTo(d.X, d.Y)
			} else {
				r.gc.LineTo(d.X, d.Y)
			}
		}
		if closed && len(ring) > 0 {
			r.gc.Close()
		}
	}
}

func (r *Raster) marker(d geom.Point) {
	r.gc.MoveTo(d.X+rasterMarkerRadius, d.Y)
	r.gc.ArcTo(d.X, d.Y, rasterMarkerRadius, rasterMarkerRadius, 0, 2*math.Pi)
	r.gc.Close()
	r.gc.FillStroke()
}

func (r *Raster) text(s string, at geom.Point, c color.NRGBA) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(at.X), int(at.Y)),
	}
	d.DrawString(s)
}
