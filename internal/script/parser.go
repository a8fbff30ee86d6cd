/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"vecdraw/internal/config"
	"vecdraw/internal/editor"
	"vecdraw/internal/shape"
	"vecdraw/internal/vector"
)

// Parse reads a replay document. Each entry under "steps" is a mapping
// with exactly one key:
//   - tool: point|line|triangle|quad|circle|zoom
//   - down: [x, y] or {x, y, canvas: main|zoom, button: left|middle|right}
//   - move: [x, y] or {x, y, canvas}
//   - action: erase|clear|idle|zoom_in|zoom_out|zoom_reset|zoom_clear|close_zoom|fill|line_mode|render|exit
//   - color: "#rrggbb" or a CSS color name
//   - filled: true|false
//   - resize / resize_zoom: [w, h]
//
// Bad steps are reported and skipped; the rest of the document still parses.
func Parse(data []byte) (Script, []Error) {
	var s Script
	var errs []Error

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return s, []Error{{Message: err.Error(), Err: err}}
	}
	if len(doc.Content) == 0 {
		return s, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return s, []Error{nodeErr(root, "document must be a mapping")}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "canvas":
			w, h, err := size(val)
			if err != nil {
				errs = append(errs, *err)
				continue
			}
			s.Width, s.Height = w, h
		case "steps":
			if val.Kind != yaml.SequenceNode {
				errs = append(errs, nodeErr(val, "steps must be a list"))
				continue
			}
			for _, item := range val.Content {
				st, err := parseStep(item)
				if err != nil {
					errs = append(errs, *err)
					continue
				}
				s.Steps = append(s.Steps, st)
			}
		default:
			errs = append(errs, nodeErr(key, fmt.Sprintf("unknown key %q", key.Value)))
		}
	}
	return s, errs
}

func parseStep(n *yaml.Node) (Step, *Error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		e := nodeErr(n, "step must be a mapping with one key")
		return Step{}, &e
	}
	key, val := n.Content[0], n.Content[1]
	st := Step{Line: key.Line}
	switch key.Value {
	case "tool":
		k, err := shape.ParseKind(strings.ToLower(strings.TrimSpace(val.Value)))
		if err != nil {
			e := wrapErr(val, err)
			return st, &e
		}
		st.Op, st.Tool = OpTool, k
	case "down", "move":
		st.Op = OpDown
		if key.Value == "move" {
			st.Op = OpMove
		}
		if err := pointer(val, &st); err != nil {
			return st, err
		}
	case "action":
		a := Action(strings.ToLower(strings.TrimSpace(val.Value)))
		if _, ok := actions[a]; !ok {
			e := wrapErr(val, fmt.Errorf("%w %q", ErrUnknownAction, val.Value))
			return st, &e
		}
		st.Op, st.Action = OpAction, a
	case "color":
		c, err := config.ParseColor(val.Value)
		if err != nil {
			e := wrapErr(val, err)
			return st, &e
		}
		st.Op, st.Color = OpColor, vector.FromColor(c)
	case "filled":
		var b bool
		if err := val.Decode(&b); err != nil {
			e := wrapErr(val, err)
			return st, &e
		}
		st.Op, st.Filled = OpFilled, b
	case "resize", "resize_zoom":
		w, h, err := size(val)
		if err != nil {
			return st, err
		}
		st.Op, st.W, st.H = OpResize, w, h
		if key.Value == "resize_zoom" {
			st.Op = OpResizeZoom
		}
	default:
		e := nodeErr(key, fmt.Sprintf("unknown step %q", key.Value))
		return st, &e
	}
	return st, nil
}

// pointer decodes [x, y] or {x, y, canvas, button}.
func pointer(n *yaml.Node, st *Step) *Error {
	if n.Kind == yaml.SequenceNode {
		x, y, err := pair(n)
		if err != nil {
			return err
		}
		st.Pos = vector.P(x, y)
		return nil
	}
	var m struct {
		X      *float64 `yaml:"x"`
		Y      *float64 `yaml:"y"`
		Canvas string   `yaml:"canvas"`
		Button string   `yaml:"button"`
	}
	if err := n.Decode(&m); err != nil {
		e := wrapErr(n, err)
		return &e
	}
	if m.X == nil || m.Y == nil {
		e := nodeErr(n, "pointer needs x and y")
		return &e
	}
	st.Pos = vector.P(*m.X, *m.Y)
	switch strings.ToLower(m.Canvas) {
	case "", "main":
		st.Canvas = editor.MainCanvas
	case "zoom":
		st.Canvas = editor.ZoomCanvas
	default:
		e := nodeErr(n, fmt.Sprintf("unknown canvas %q", m.Canvas))
		return &e
	}
	switch strings.ToLower(m.Button) {
	case "", "left":
		st.Button = editor.ButtonLeft
	case "middle":
		st.Button = editor.ButtonMiddle
	case "right":
		st.Button = editor.ButtonRight
	default:
		e := nodeErr(n, fmt.Sprintf("unknown button %q", m.Button))
		return &e
	}
	return nil
}

func pair(n *yaml.Node) (float64, float64, *Error) {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 2 {
		e := nodeErr(n, "expected a [a, b] pair")
		return 0, 0, &e
	}
	var out [2]float64
	for i, c := range n.Content {
		v, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			e := wrapErr(c, err)
			return 0, 0, &e
		}
		out[i] = v
	}
	return out[0], out[1], nil
}

// size accepts [w, h] or {width, height}.
func size(n *yaml.Node) (int, int, *Error) {
	if n.Kind == yaml.MappingNode {
		var sz config.Size
		if err := n.Decode(&sz); err != nil {
			e := wrapErr(n, err)
			return 0, 0, &e
		}
		if sz.Width <= 0 || sz.Height <= 0 {
			e := nodeErr(n, "size must be positive")
			return 0, 0, &e
		}
		return sz.Width, sz.Height, nil
	}
	w, h, err := pair(n)
	if err != nil {
		return 0, 0, err
	}
	if w <= 0 || h <= 0 || w != float64(int(w)) || h != float64(int(h)) {
		e := nodeErr(n, "size must be positive integers")
		return 0, 0, &e
	}
	return int(w), int(h), nil
}

func nodeErr(n *yaml.Node, msg string) Error {
	return Error{Line: n.Line, Column: n.Column, Message: msg}
}

func wrapErr(n *yaml.Node, err error) Error {
	return Error{Line: n.Line, Column: n.Column, Message: err.Error(), Err: err}
}
