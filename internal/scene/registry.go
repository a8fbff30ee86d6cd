/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package scene holds the ordered collection of drawn shapes.
package scene

import (
	"errors"
	"fmt"

	"vecdraw/internal/shape"
	"vecdraw/internal/vector"
)

// MaxShapes is the default registry capacity.
const MaxShapes = 30000

// ErrCapacity is returned when appending to a full registry.
var ErrCapacity = errors.New("scene: shape capacity reached")

// Registry is an append-only list of shapes that only shrinks from the tail.
// It is not safe for concurrent use; the host event loop serializes access.
type Registry struct {
	shapes []shape.Shape
	max    int
	// generation of the viewport the shapes were last fitted to
	fitted uint64
}

// New returns an empty registry holding at most max shapes (MaxShapes if max <= 0).
func New(max int) *Registry {
	if max <= 0 {
		max = MaxShapes
	}
	return &Registry{max: max}
}

func (r *Registry) Len() int { return len(r.shapes) }
func (r *Registry) Cap() int { return r.max }

// Append adds s at the tail. A full registry is left unchanged.
func (r *Registry) Append(s shape.Shape) error {
	if len(r.shapes) >= r.max {
		return fmt.Errorf("append %s: %w (%d)", s.Kind(), ErrCapacity, r.max)
	}
	r.shapes = append(r.shapes, s)
	return nil
}

// At returns the i-th shape in draw order.
func (r *Registry) At(i int) shape.Shape { return r.shapes[i] }

// Last returns the tail shape, or nil when empty.
func (r *Registry) Last() shape.Shape {
	if len(r.shapes) == 0 {
		return nil
	}
	return r.shapes[len(r.shapes)-1]
}

// EraseLast drops the tail shape and reports whether one was removed.
func (r *Registry) EraseLast() bool {
	n := len(r.shapes)
	if n == 0 {
		return false
	}
	r.shapes[n-1] = nil
	r.shapes = r.shapes[:n-1]
	return true
}

// Clear drops all shapes and returns how many were removed.
func (r *Registry) Clear() int {
	n := len(r.shapes)
	clear(r.shapes)
	r.shapes = r.shapes[:0]
	return n
}

// Sync refits every shape when vp differs from the generation the registry
// was last fitted to. It is idempotent for an unchanged viewport and reports
// whether a refit happened.
func (r *Registry) Sync(vp vector.Viewport) bool {
	if r.fitted == vp.Gen {
		return false
	}
	for _, s := range r.shapes {
		s.Fit(vp)
	}
	r.fitted = vp.Gen
	return true
}

// Draw submits every shape in insertion order.
func (r *Registry) Draw(rd shape.Renderer) {
	for _, s := range r.shapes {
		s.Draw(rd)
	}
}

// Counts tallies shapes per kind.
func (r *Registry) Counts() map[shape.Kind]int {
	out := make(map[shape.Kind]int)
	for _, s := range r.shapes {
		out[s.Kind()]++
	}
	return out
}
