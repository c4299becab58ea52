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
	"bytes"
	"strings"
	"testing"
)

func TestSVGDraw(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, squareTransform())
	if err := s.Draw(holeWKT, "cell A", Style{}); err != nil {
		t.Fatal(err)
	}
	s.Close()
	out := buf.String()

	if !strings.Contains(out, "fill-rule:evenodd") {
		t.Error("polygon path must use the even-odd fill rule")
	}
	// Two rings means two move commands and two closes inside one
	// path element.
	if have := strings.Count(out, "M "); have != 2 {
		t.Errorf("have %d move commands, want 2", have)
	}
	if have := strings.Count(out, "Z"); have != 2 {
		t.Errorf("have %d close commands, want 2", have)
	}
	if have := strings.Count(out, "<path"); have != 1 {
		t.Errorf("have %d path elements, want 1 (subpaths concatenate)", have)
	}
	if !strings.Contains(out, ">cell A</text>") {
		t.Error("missing label text element")
	}
	// The y axis is not inverted for SVG: world (0,0) maps to
	// device (0,0).
	if !strings.Contains(out, "M 0,0") {
		t.Errorf("expected path to start at the origin: %s", out)
	}
}

func TestSVGNoLabel(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, squareTransform())
	if err := s.Draw(squareWKT, "", Style{}); err != nil {
		t.Fatal(err)
	}
	s.Close()
	if strings.Contains(buf.String(), "<text") {
		t.Error("empty label must not produce a text element")
	}
}
