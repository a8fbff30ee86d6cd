/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package editor is the construction state machine. It owns the application
// state (active tool, current color and fill mode, the shape registry, the
// pending zoom selection and the committed zoom view) and turns pointer
// events and toolbar actions into shape mutations.
//
// The editor is single-threaded: the host event loop delivers pointer events,
// actions and redraws one at a time.
package editor

import (
	"log/slog"

	applog "vecdraw/internal/log"
	"vecdraw/internal/scene"
	"vecdraw/internal/shape"
	"vecdraw/internal/vector"
)

// Canvas identifies which drawing surface an event came from.
type Canvas int

const (
	MainCanvas Canvas = iota
	ZoomCanvas
)

func (c Canvas) String() string {
	if c == ZoomCanvas {
		return "zoom"
	}
	return "main"
}

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Hooks are host callbacks for state changes the editor cannot apply itself.
type Hooks struct {
	// ZoomOpened asks the host to show the zoom canvas sized to v.Size().
	ZoomOpened func(v ZoomView)
	// ZoomClosed asks the host to hide the zoom canvas.
	ZoomClosed func()
	// MultiplierChanged reports a new zoom multiplier for labels.
	MultiplierChanged func(m float64)
	// WindowReset asks the host to restore the default window layout.
	WindowReset func()
}

// construction is the shape currently accepting vertices.
type construction struct {
	shape shape.Shape
	zoom  bool
}

// Editor holds the drawing state.
type Editor struct {
	log   *slog.Logger
	hooks Hooks

	tool         shape.Kind
	color        vector.Color
	defaultColor vector.Color
	filled       bool
	multiplier   float64

	reg    *scene.Registry
	active *construction

	// pending zoom selection and the canvas it is drawn on
	selection       *shape.ZoomRegion
	selectionCanvas Canvas
	selectionGen    uint64
	view            *ZoomView

	main vector.Viewport
	zoom vector.Viewport
}

// Option configures an Editor during creation.
type Option func(*Editor)

// WithCapacity sets the registry capacity.
func WithCapacity(n int) Option { return func(e *Editor) { e.reg = scene.New(n) } }

// WithColor sets the initial and idle-reset drawing color.
func WithColor(c vector.Color) Option {
	return func(e *Editor) { e.color, e.defaultColor = c, c }
}

// WithFilled sets the initial fill mode.
func WithFilled(filled bool) Option { return func(e *Editor) { e.filled = filled } }

// WithLogger replaces the component logger.
func WithLogger(l *slog.Logger) Option { return func(e *Editor) { e.log = l } }

// WithHooks registers host callbacks.
func WithHooks(h Hooks) Option { return func(e *Editor) { e.hooks = h } }

// New creates an editor for a main canvas of w×h pixels. Defaults: point
// tool, white, filled, capacity scene.MaxShapes.
func New(w, h int, opts ...Option) *Editor {
	e := &Editor{
		tool:         shape.KindPoint,
		color:        vector.White,
		defaultColor: vector.White,
		filled:       true,
		multiplier:   BaseMultiplier,
		selection:    shape.NewZoomRegion(),
		main:         vector.NewViewport(w, h),
	}
	for _, o := range opts {
		o(e)
	}
	if e.reg == nil {
		e.reg = scene.New(scene.MaxShapes)
	}
	if e.log == nil {
		e.log = applog.WithComponent("editor")
	}
	return e
}

func (e *Editor) Tool() shape.Kind              { return e.tool }
func (e *Editor) Color() vector.Color           { return e.color }
func (e *Editor) Filled() bool                  { return e.filled }
func (e *Editor) Multiplier() float64           { return e.multiplier }
func (e *Editor) Registry() *scene.Registry     { return e.reg }
func (e *Editor) Selection() *shape.ZoomRegion  { return e.selection }
func (e *Editor) MainViewport() vector.Viewport { return e.main }
func (e *Editor) ZoomViewport() vector.Viewport { return e.zoom }

// Constructing reports whether a gesture is open.
func (e *Editor) Constructing() bool { return e.active != nil }

// Active returns the shape under construction, or nil.
func (e *Editor) Active() shape.Shape {
	if e.active == nil {
		return nil
	}
	return e.active.shape
}

// View returns the committed zoom view, if the zoom canvas is open.
func (e *Editor) View() (ZoomView, bool) {
	if e.view == nil {
		return ZoomView{}, false
	}
	return *e.view, true
}

// SelectTool sets the shape kind for the next gesture. An open gesture is
// not interrupted.
func (e *Editor) SelectTool(k shape.Kind) {
	if k == e.tool {
		return
	}
	e.tool = k
	e.log.Info("tool selected", slog.String("tool", k.String()))
}

// SetColor applies to shapes created afterwards.
func (e *Editor) SetColor(c vector.Color) {
	e.color = c
	e.log.Info("color changed", slog.Any("rgb", []float32{c.R, c.G, c.B}))
}

// SetFilled applies to shapes created afterwards.
func (e *Editor) SetFilled(filled bool) {
	e.filled = filled
	e.log.Info("fill mode changed", slog.Bool("filled", filled))
}

// PointerDown starts or advances a gesture. Only the left button draws.
// A full registry yields scene.ErrCapacity and leaves the state unchanged.
func (e *Editor) PointerDown(c Canvas, b Button, x, y float64) error {
	if b != ButtonLeft {
		return nil
	}
	p, ok := e.mapPointer(c, vector.P(x, y))
	if !ok {
		return nil
	}
	if e.active == nil {
		return e.begin(c, p)
	}
	e.advance(c, p)
	return nil
}

// PointerMove previews the pending vertex of the open gesture.
func (e *Editor) PointerMove(c Canvas, x, y float64) {
	if e.active == nil {
		return
	}
	p, ok := e.mapPointer(c, vector.P(x, y))
	if !ok {
		return
	}
	s := e.active.shape
	s.Preview(p)
	s.Fit(e.main)
}

func (e *Editor) begin(c Canvas, p vector.Pt) error {
	if e.tool == shape.KindZoom {
		e.selection.Reset()
		e.selection.Advance(p)
		e.selection.Fit(e.main)
		e.selectionCanvas = c
		e.selectionGen = e.main.Gen
		e.active = &construction{shape: e.selection, zoom: true}
		e.log.Debug("zoom selection started", slog.String("canvas", c.String()))
		return nil
	}
	s, err := shape.New(e.tool, e.color, e.filled)
	if err != nil {
		return err
	}
	if err := e.reg.Append(s); err != nil {
		e.log.Warn("shape rejected", slog.String("tool", e.tool.String()), slog.Any("err", err))
		return err
	}
	s.Advance(p)
	s.Fit(e.main)
	if s.Complete() {
		e.log.Debug("shape completed", slog.String("kind", s.Kind().String()), slog.Int("count", e.reg.Len()))
		return nil
	}
	e.active = &construction{shape: s}
	return nil
}

func (e *Editor) advance(c Canvas, p vector.Pt) {
	a := e.active
	a.shape.Advance(p)
	a.shape.Fit(e.main)
	if !a.shape.Complete() {
		return
	}
	e.active = nil
	if a.zoom {
		e.commitZoom(c)
		return
	}
	e.log.Debug("shape completed", slog.String("kind", a.shape.Kind().String()), slog.Int("count", e.reg.Len()))
}

// commitZoom turns the completed selection into the zoom view. A selection
// made inside the zoom canvas zooms further in.
func (e *Editor) commitZoom(c Canvas) {
	frame := e.selection.Frame()
	if frame.Empty() {
		e.log.Info("zoom selection ignored", slog.String("reason", "empty"))
		e.selection.Reset()
		return
	}
	if c == ZoomCanvas {
		e.setMultiplier(e.multiplier * 2)
	}
	e.view = &ZoomView{Frame: frame, Multiplier: e.multiplier}
	w, h := e.view.Size()
	e.zoom = e.zoom.Resize(int(w), int(h))
	e.log.Info("zoom opened", slog.Float64("multiplier", e.multiplier), slog.Float64("w", w), slog.Float64("h", h))
	if e.hooks.ZoomOpened != nil {
		e.hooks.ZoomOpened(*e.view)
	}
}

// mapPointer converts an event position to main-canvas pixels. Events from
// the zoom canvas are dropped while no zoom view is open.
func (e *Editor) mapPointer(c Canvas, p vector.Pt) (vector.Pt, bool) {
	if c != ZoomCanvas {
		return p, true
	}
	if e.view == nil {
		return vector.Pt{}, false
	}
	return e.view.ToMain(p), true
}

// Erase removes the most recent shape, or abandons an open zoom selection.
func (e *Editor) Erase() {
	if e.active != nil && e.active.zoom {
		e.selection.Reset()
		e.active = nil
		e.log.Info("zoom selection erased")
		return
	}
	e.active = nil
	if e.reg.EraseLast() {
		e.log.Info("shape erased", slog.Int("count", e.reg.Len()))
	}
}

// Clear removes every shape and the zoom selection.
func (e *Editor) Clear() {
	n := e.reg.Clear()
	e.selection.Reset()
	e.active = nil
	if n > 0 {
		e.log.Info("canvas cleared", slog.Int("removed", n))
	}
}

// Idle clears the canvas, closes the zoom view, restores the default color
// and asks the host to reset its window layout.
func (e *Editor) Idle() {
	e.Clear()
	e.closeView(true)
	e.color = e.defaultColor
	e.log.Info("idle")
	if e.hooks.WindowReset != nil {
		e.hooks.WindowReset()
	}
}

// ZoomIn doubles the multiplier used by the next zoom view.
func (e *Editor) ZoomIn() { e.setMultiplier(e.multiplier * 2) }

// ZoomOut halves the multiplier, never below BaseMultiplier.
func (e *Editor) ZoomOut() {
	if e.multiplier <= BaseMultiplier {
		return
	}
	e.setMultiplier(e.multiplier / 2)
}

// ZoomReset restores BaseMultiplier.
func (e *Editor) ZoomReset() { e.setMultiplier(BaseMultiplier) }

// ZoomClear resets the multiplier, drops the selection and closes the zoom canvas.
func (e *Editor) ZoomClear() {
	e.setMultiplier(BaseMultiplier)
	e.cancelSelection()
	e.closeView(true)
}

// CloseZoom is called when the user closes the zoom canvas.
func (e *Editor) CloseZoom() {
	e.cancelSelection()
	e.closeView(false)
}

func (e *Editor) cancelSelection() {
	if e.active != nil && e.active.zoom {
		e.active = nil
	}
	e.selection.Reset()
}

func (e *Editor) closeView(notify bool) {
	if e.view == nil {
		return
	}
	e.view = nil
	e.log.Info("zoom closed")
	if notify && e.hooks.ZoomClosed != nil {
		e.hooks.ZoomClosed()
	}
}

func (e *Editor) setMultiplier(m float64) {
	if m == e.multiplier {
		return
	}
	e.multiplier = m
	e.log.Info("zoom multiplier", slog.Float64("multiplier", m))
	if e.hooks.MultiplierChanged != nil {
		e.hooks.MultiplierChanged(m)
	}
}

// ResizeMain records a new main canvas extent and refits all shapes.
func (e *Editor) ResizeMain(w, h int) {
	e.main = e.main.Resize(w, h)
	e.sync()
}

// ResizeZoom records a new zoom canvas extent. Main-canvas geometry is not
// affected.
func (e *Editor) ResizeZoom(w, h int) { e.zoom = e.zoom.Resize(w, h) }

func (e *Editor) sync() {
	e.reg.Sync(e.main)
	if e.selectionGen != e.main.Gen {
		e.selection.Fit(e.main)
		e.selectionGen = e.main.Gen
	}
}

// Projection returns the orthographic bounds a canvas renders with. The zoom
// canvas has none while no zoom view is open.
func (e *Editor) Projection(c Canvas) (vector.Ortho, bool) {
	if c != ZoomCanvas {
		return vector.Unit, true
	}
	if e.view == nil {
		return vector.Ortho{}, false
	}
	return e.view.Projection(e.main), true
}

// Render draws the registry for a canvas followed by the zoom selection
// overlay on the canvas that is defining it. It does not mutate shapes
// beyond refitting them to a changed viewport.
func (e *Editor) Render(c Canvas, r shape.Renderer) {
	if _, ok := e.Projection(c); !ok {
		return
	}
	e.sync()
	e.reg.Draw(r)
	if e.selection.Step() > 0 && e.selectionCanvas == c {
		e.selection.Draw(r)
	}
}
