/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package script parses and replays gesture scripts: YAML lists of tool
// selections, toolbar actions and pointer events driven through the editor
// without a window.
package script

import (
	"errors"
	"fmt"

	"vecdraw/internal/editor"
	"vecdraw/internal/shape"
	"vecdraw/internal/vector"
)

// ErrUnknownAction marks a step naming an action the editor does not have.
var ErrUnknownAction = errors.New("unknown action")

// Script is a parsed replay document.
//
//	canvas: {width: 620, height: 400}
//	steps:
//	  - tool: line
//	  - down: [10, 20]
//	  - move: {x: 40, y: 60, canvas: zoom}
//	  - action: erase
type Script struct {
	// Width and Height are zero when the document does not set a canvas.
	Width, Height int
	Steps         []Step
}

// Op is the kind of a step.
type Op int

const (
	OpTool Op = iota
	OpDown
	OpMove
	OpAction
	OpColor
	OpFilled
	OpResize
	OpResizeZoom
)

var opNames = map[Op]string{
	OpTool:       "tool",
	OpDown:       "down",
	OpMove:       "move",
	OpAction:     "action",
	OpColor:      "color",
	OpFilled:     "filled",
	OpResize:     "resize",
	OpResizeZoom: "resize_zoom",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Action is a toolbar action without arguments.
type Action string

const (
	ActionErase     Action = "erase"
	ActionClear     Action = "clear"
	ActionIdle      Action = "idle"
	ActionZoomIn    Action = "zoom_in"
	ActionZoomOut   Action = "zoom_out"
	ActionZoomReset Action = "zoom_reset"
	ActionZoomClear Action = "zoom_clear"
	ActionCloseZoom Action = "close_zoom"
	ActionFill      Action = "fill"
	ActionLineMode  Action = "line_mode"
	// ActionRender rasterizes both canvases and records their coverage.
	ActionRender Action = "render"
	// ActionExit stops the replay.
	ActionExit Action = "exit"
)

var actions = map[Action]struct{}{
	ActionErase: {}, ActionClear: {}, ActionIdle: {}, ActionZoomIn: {},
	ActionZoomOut: {}, ActionZoomReset: {}, ActionZoomClear: {}, ActionCloseZoom: {},
	ActionFill: {}, ActionLineMode: {}, ActionRender: {}, ActionExit: {},
}

// Step is one replayed event. Only the fields relevant to Op are set.
type Step struct {
	Op     Op
	Line   int // 1-based line in the source document
	Tool   shape.Kind
	Action Action
	Pos    vector.Pt
	Canvas editor.Canvas
	Button editor.Button
	Color  vector.Color
	Filled bool
	W, H   int
}

// Error is a parse error with position context.
type Error struct {
	Line    int
	Column  int
	Message string
	Err     error
}

func (e Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

func (e Error) Unwrap() error { return e.Err }
