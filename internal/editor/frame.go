/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package editor

import (
	"fmt"

	"vecdraw/internal/render"
)

// Rasterize renders canvas c into ras at the canvas's pixel size. The frame
// is cleared even when the canvas has nothing to show; the result reports
// whether anything was drawn.
func (e *Editor) Rasterize(c Canvas, ras *render.Raster) bool {
	vp := e.main
	if c == ZoomCanvas {
		vp = e.zoom
	}
	proj, ok := e.Projection(c)
	ras.Begin(vp.W, vp.H, proj)
	if !ok {
		return false
	}
	e.Render(c, ras)
	return true
}

// Describe summarizes the editor state in one line for crash reports.
func (e *Editor) Describe() string {
	_, zoomed := e.View()
	return fmt.Sprintf("tool=%s shapes=%d/%d constructing=%t multiplier=%g zoom_open=%t main=%dx%d",
		e.tool, e.reg.Len(), e.reg.Cap(), e.Constructing(), e.multiplier, zoomed, e.main.W, e.main.H)
}
