/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package shape implements the drawable primitives and their click-by-click
// construction protocol. Every shape stores its vertices in pixel space as
// they are captured and derives device-space vertices in Fit; Draw submits the
// device-space geometry to a Renderer.
//
// Composite shapes own their helpers: a Triangle previews through a base Line
// until its second vertex lands, a Quad through two Lines, and a Circle is
// tessellated into Line segments or filled Triangle wedges.
package shape

import (
	"fmt"

	"vecdraw/internal/vector"
)

// Renderer is the primitive submission surface consumed by Draw. Vertices are
// device-space and flat: Lines takes pairs, Triangles triples and Quads
// quadruples. SetPolygonMode selects fill or outline for the polygons that
// follow.
type Renderer interface {
	SetPolygonMode(filled bool)
	Points(c vector.Color, pts ...vector.Pt)
	Lines(c vector.Color, pts ...vector.Pt)
	Triangles(c vector.Color, pts ...vector.Pt)
	Quads(c vector.Color, pts ...vector.Pt)
}

// Shape is the capability set shared by all variants.
type Shape interface {
	Kind() Kind
	// Advance commits the next vertex of the gesture.
	Advance(p vector.Pt)
	// Preview moves the pending vertex without committing it. It does
	// nothing before the first Advance or once the shape is complete.
	Preview(p vector.Pt)
	Complete() bool
	// Reset returns the shape to step 0 and clears all vertices.
	Reset()
	// Fit recomputes device-space vertices from the stored pixel vertices.
	Fit(vp vector.Viewport)
	Draw(r Renderer)
	// Step is the number of committed vertices.
	Step() int
	Color() vector.Color
	Filled() bool
}

// Kind enumerates the shape variants, including the zoom selection tool.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindTriangle
	KindQuad
	KindCircle
	KindZoom
)

var kindNames = [...]string{"point", "line", "triangle", "quad", "circle", "zoom"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the names produced by String.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// Vertices is the number of clicks that completes a shape of this kind.
func (k Kind) Vertices() int {
	switch k {
	case KindPoint:
		return 1
	case KindLine, KindCircle, KindZoom:
		return 2
	case KindTriangle:
		return 3
	case KindQuad:
		return 4
	}
	return 0
}

// New creates an empty drawable shape of the given kind. The zoom selection
// is not a drawable shape; use NewZoomRegion for it.
func New(k Kind, c vector.Color, filled bool) (Shape, error) {
	switch k {
	case KindPoint:
		return NewPoint(c, filled), nil
	case KindLine:
		return NewLine(c, filled), nil
	case KindTriangle:
		return NewTriangle(c, filled), nil
	case KindQuad:
		return NewQuad(c, filled), nil
	case KindCircle:
		return NewCircle(c, filled), nil
	}
	return nil, fmt.Errorf("shape: cannot create %s", k)
}

type style struct {
	color  vector.Color
	filled bool
}

func (s *style) Color() vector.Color { return s.color }
func (s *style) Filled() bool        { return s.filled }

func (s *style) begin(r Renderer) { r.SetPolygonMode(s.filled) }

func fit(vp vector.Viewport, dst, src []vector.Pt) {
	for i := range src {
		dst[i] = vp.ToDevice(src[i])
	}
}
