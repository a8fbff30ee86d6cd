//go:build fyne

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
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"vecdraw/internal/editor"
	"vecdraw/internal/render"
)

// DrawingCanvas shows one editor canvas as a software-rendered raster and
// forwards pointer input to the editor. Pointer positions are in widget
// units, which are the editor's pixel units.
type DrawingCanvas struct {
	widget.BaseWidget

	ed    *editor.Editor
	which editor.Canvas
	ras   *render.Raster
	min   fyne.Size

	// OnError receives gestures the editor rejected.
	OnError func(error)
}

var (
	_ desktop.Mouseable = (*DrawingCanvas)(nil)
	_ desktop.Hoverable = (*DrawingCanvas)(nil)
	_ fyne.Draggable    = (*DrawingCanvas)(nil)
)

func NewDrawingCanvas(ed *editor.Editor, which editor.Canvas, min fyne.Size) *DrawingCanvas {
	d := &DrawingCanvas{ed: ed, which: which, ras: render.NewRaster(1, 1), min: min}
	d.ExtendBaseWidget(d)
	return d
}

func (d *DrawingCanvas) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewRaster(d.frame)
	return &drawingRenderer{dc: d, img: img, objects: []fyne.CanvasObject{img}}
}

// frame ignores the requested pixel size; the image is produced at the
// editor's canvas size and scaled by the driver.
func (d *DrawingCanvas) frame(_, _ int) image.Image {
	d.ed.Rasterize(d.which, d.ras)
	return d.ras.Image()
}

// Resize keeps the editor viewport in step with the widget.
func (d *DrawingCanvas) Resize(s fyne.Size) {
	d.BaseWidget.Resize(s)
	w, h := int(s.Width), int(s.Height)
	if d.which == editor.ZoomCanvas {
		d.ed.ResizeZoom(w, h)
		return
	}
	d.ed.ResizeMain(w, h)
}

func (d *DrawingCanvas) MouseDown(ev *desktop.MouseEvent) {
	b := editor.ButtonLeft
	switch ev.Button {
	case desktop.MouseButtonSecondary:
		b = editor.ButtonRight
	case desktop.MouseButtonTertiary:
		b = editor.ButtonMiddle
	}
	if err := d.ed.PointerDown(d.which, b, float64(ev.Position.X), float64(ev.Position.Y)); err != nil && d.OnError != nil {
		d.OnError(err)
	}
	d.Refresh()
}

func (d *DrawingCanvas) MouseUp(*desktop.MouseEvent) {}

func (d *DrawingCanvas) MouseIn(*desktop.MouseEvent) {}
func (d *DrawingCanvas) MouseOut()                   {}

func (d *DrawingCanvas) MouseMoved(ev *desktop.MouseEvent) { d.move(ev.Position) }

func (d *DrawingCanvas) Dragged(ev *fyne.DragEvent) { d.move(ev.Position) }
func (d *DrawingCanvas) DragEnd()                   {}

func (d *DrawingCanvas) move(p fyne.Position) {
	if !d.ed.Constructing() {
		return
	}
	d.ed.PointerMove(d.which, float64(p.X), float64(p.Y))
	d.Refresh()
}

type drawingRenderer struct {
	dc      *DrawingCanvas
	img     *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *drawingRenderer) Destroy()                     {}
func (r *drawingRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *drawingRenderer) MinSize() fyne.Size           { return r.dc.min }
func (r *drawingRenderer) Refresh()                     { canvas.Refresh(r.img) }

func (r *drawingRenderer) Layout(size fyne.Size) {
	r.img.Resize(size)
	r.img.Move(fyne.NewPos(0, 0))
}
