/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"vecdraw/internal/editor"
	applog "vecdraw/internal/log"
	"vecdraw/internal/render"
	"vecdraw/internal/scene"
	"vecdraw/internal/shape"
)

// Frame is the coverage of one "render" step: the number of pixels that
// differ from the background on each canvas. Zoom is -1 while no zoom view
// is open.
type Frame struct {
	Step int
	Main int
	Zoom int
}

// Report summarizes a replay.
type Report struct {
	Steps int
	// Rejected counts pointer-downs refused because the registry was full.
	Rejected   int
	Exited     bool
	Shapes     int
	Counts     map[shape.Kind]int
	Multiplier float64
	ZoomOpen   bool
	Frames     []Frame
}

// Run replays s against ed. Capacity rejections are counted, not fatal.
// A cancelled context stops the replay between steps.
func Run(ctx context.Context, ed *editor.Editor, s Script) (Report, error) {
	l := applog.WithOperation(applog.WithComponent("replay"), "run")
	var rep Report
	var ras *render.Raster

	if s.Width > 0 && s.Height > 0 {
		ed.ResizeMain(s.Width, s.Height)
	}
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return summarize(rep, ed), err
		}
		rep.Steps++
		switch st.Op {
		case OpTool:
			ed.SelectTool(st.Tool)
		case OpDown:
			if err := ed.PointerDown(st.Canvas, st.Button, st.Pos.X, st.Pos.Y); err != nil {
				if !errors.Is(err, scene.ErrCapacity) {
					return summarize(rep, ed), fmt.Errorf("line %d: %w", st.Line, err)
				}
				rep.Rejected++
			}
		case OpMove:
			ed.PointerMove(st.Canvas, st.Pos.X, st.Pos.Y)
		case OpColor:
			ed.SetColor(st.Color)
		case OpFilled:
			ed.SetFilled(st.Filled)
		case OpResize:
			ed.ResizeMain(st.W, st.H)
		case OpResizeZoom:
			ed.ResizeZoom(st.W, st.H)
		case OpAction:
			if st.Action == ActionExit {
				rep.Exited = true
				l.Debug("exit step", slog.Int("line", st.Line))
				return summarize(rep, ed), nil
			}
			if st.Action == ActionRender {
				if ras == nil {
					ras = render.NewRaster(1, 1)
				}
				rep.Frames = append(rep.Frames, frame(ed, ras, i))
				continue
			}
			if err := apply(ed, st.Action); err != nil {
				return summarize(rep, ed), fmt.Errorf("line %d: %w", st.Line, err)
			}
		default:
			return summarize(rep, ed), fmt.Errorf("line %d: unsupported step %s", st.Line, st.Op)
		}
	}
	rep = summarize(rep, ed)
	l.Info("replay finished", slog.Int("steps", rep.Steps), slog.Int("shapes", rep.Shapes), slog.Int("rejected", rep.Rejected))
	return rep, nil
}

// apply dispatches a toolbar action.
func apply(ed *editor.Editor, a Action) error {
	switch a {
	case ActionErase:
		ed.Erase()
	case ActionClear:
		ed.Clear()
	case ActionIdle:
		ed.Idle()
	case ActionZoomIn:
		ed.ZoomIn()
	case ActionZoomOut:
		ed.ZoomOut()
	case ActionZoomReset:
		ed.ZoomReset()
	case ActionZoomClear:
		ed.ZoomClear()
	case ActionCloseZoom:
		ed.CloseZoom()
	case ActionFill:
		ed.SetFilled(true)
	case ActionLineMode:
		ed.SetFilled(false)
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, a)
	}
	return nil
}

func frame(ed *editor.Editor, ras *render.Raster, step int) Frame {
	f := Frame{Step: step, Zoom: -1}
	ed.Rasterize(editor.MainCanvas, ras)
	f.Main = ras.Coverage()
	if ed.Rasterize(editor.ZoomCanvas, ras) {
		f.Zoom = ras.Coverage()
	}
	return f
}

func summarize(rep Report, ed *editor.Editor) Report {
	rep.Shapes = ed.Registry().Len()
	rep.Counts = ed.Registry().Counts()
	rep.Multiplier = ed.Multiplier()
	_, rep.ZoomOpen = ed.View()
	return rep
}
