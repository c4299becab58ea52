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

package geom

// Transform is a frozen affine map from world coordinates into a
// device viewport. It is an immutable value: once created from a
// Bounds accumulator it may be shared across concurrent renderer
// invocations without locking.
type Transform struct {
	Width, Height float64 // viewport extent in device units
	min           Point
	sx, sy        float64
}

// Freeze converts the accumulated bounds into an immutable Transform
// for a viewport of the given size. A zero extent on either axis gets
// a scale factor of 1 so that degenerate geometry (a single point, a
// vertical line) still maps to finite coordinates.
func (b *Bounds) Freeze(width, height float64) Transform {
	t := Transform{Width: width, Height: height, min: b.Min, sx: 1, sy: 1}
	if b.Empty() {
		t.min = Point{}
		return t
	}
	if dx := b.Max.X - b.Min.X; dx != 0 {
		t.sx = width / dx
	}
	if dy := b.Max.Y - b.Min.Y; dy != 0 {
		t.sy = height / dy
	}
	return t
}

// Device maps p into viewport coordinates without inverting the y
// axis. This is the convention for SVG and map-layer targets.
func (t Transform) Device(p Point) Point {
	return Point{
		X: (p.X - t.min.X) * t.sx,
		Y: (p.Y - t.min.Y) * t.sy,
	}
}

// DeviceYDown maps p into viewport coordinates with the y axis
// inverted, for targets whose origin is the top-left corner (raster
// images and pages). The divergence from Device is deliberate and
// mirrors each target's native coordinate convention.
func (t Transform) DeviceYDown(p Point) Point {
	return Point{
		X: (p.X - t.min.X) * t.sx,
		Y: t.Height - (p.Y-t.min.Y)*t.sy,
	}
}
