/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"

	"vecdraw/internal/editor"
	"vecdraw/internal/shape"
)

// Control is one toolbar button. Rows group buttons the way they are laid
// out under the main canvas.
type Control struct {
	Label string
	Row   int
	// Apply runs the action against the editor. Nil for controls the host
	// handles itself (color picker, exit).
	Apply func(*editor.Editor)
}

// Host-handled control labels.
const (
	LabelColor = "Change Color"
	LabelExit  = "Exit"
)

func tool(k shape.Kind) func(*editor.Editor) {
	return func(e *editor.Editor) { e.SelectTool(k) }
}

// Controls returns the toolbar in display order.
func Controls() []Control {
	return []Control{
		{Label: "Points", Row: 0, Apply: tool(shape.KindPoint)},
		{Label: "Lines", Row: 0, Apply: tool(shape.KindLine)},
		{Label: "Triangles", Row: 0, Apply: tool(shape.KindTriangle)},
		{Label: "Quadrilaterals", Row: 0, Apply: tool(shape.KindQuad)},
		{Label: "Circles", Row: 0, Apply: tool(shape.KindCircle)},

		{Label: "Fill", Row: 1, Apply: func(e *editor.Editor) { e.SetFilled(true) }},
		{Label: "Line", Row: 1, Apply: func(e *editor.Editor) { e.SetFilled(false) }},

		{Label: "ZoomIn", Row: 2, Apply: tool(shape.KindZoom)},
		{Label: "Zoom +", Row: 2, Apply: (*editor.Editor).ZoomIn},
		{Label: "Zoom -", Row: 2, Apply: (*editor.Editor).ZoomOut},
		{Label: ZoomResetLabel(editor.BaseMultiplier), Row: 2, Apply: (*editor.Editor).ZoomReset},
		{Label: LabelColor, Row: 2},

		{Label: "Clear Zoom", Row: 3, Apply: (*editor.Editor).ZoomClear},
		{Label: "Erase", Row: 3, Apply: (*editor.Editor).Erase},
		{Label: "Clear", Row: 3, Apply: (*editor.Editor).Clear},

		{Label: "Idle", Row: 4, Apply: (*editor.Editor).Idle},
		{Label: LabelExit, Row: 4},
	}
}

// ZoomResetLabel is the caption of the zoom reset button for multiplier m.
func ZoomResetLabel(m float64) string { return fmt.Sprintf("%dX Zoom Reset", int(m)) }

// IsZoomReset reports whether c is the button relabelled on multiplier changes.
func (c Control) IsZoomReset() bool { return c.Row == 2 && c.Label == ZoomResetLabel(editor.BaseMultiplier) }
