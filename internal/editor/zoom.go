/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import "vecdraw/internal/vector"

// BaseMultiplier is the initial and minimum zoom multiplier.
const BaseMultiplier = 2.0

// ZoomView is a committed zoom selection: the region of the main canvas
// shown by the zoom canvas and the multiplier the zoom canvas was opened with.
type ZoomView struct {
	// Frame is the selected region in main-canvas pixels.
	Frame      vector.Rect
	Multiplier float64
}

// Size is the pixel extent of the zoom canvas for this view.
func (v ZoomView) Size() (w, h float64) {
	return v.Frame.W() * v.Multiplier, v.Frame.H() * v.Multiplier
}

// Transform maps zoom-canvas pixels to main-canvas pixels.
func (v ZoomView) Transform() vector.Affine2D {
	m := v.Multiplier
	if m == 0 {
		m = BaseMultiplier
	}
	return vector.Translate(v.Frame.Min.X, v.Frame.Min.Y).Mul(vector.Scale(1/m, 1/m))
}

// ToMain maps a zoom-canvas pointer position into main-canvas pixels:
// divide by the multiplier, then offset by the frame's lesser corner.
func (v ZoomView) ToMain(p vector.Pt) vector.Pt { return v.Transform().Apply(p) }

// Projection derives the zoom canvas's orthographic bounds from the frame
// and the current main viewport. It is recomputed on demand so a main canvas
// resize never leaves a stale zoom projection behind.
func (v ZoomView) Projection(main vector.Viewport) vector.Ortho {
	return vector.OrthoFromCorners(main.ToDevice(v.Frame.Min), main.ToDevice(v.Frame.Max))
}
