//go:build fyne && cgo

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
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"vecdraw/internal/config"
	"vecdraw/internal/crash"
	"vecdraw/internal/editor"
	applog "vecdraw/internal/log"
	"vecdraw/internal/scene"
	"vecdraw/internal/vector"
)

// Run opens the main drawing window and blocks until it is closed. The zoom
// window is created hidden and shown whenever a zoom selection completes.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	fyneApp := app.NewWithID("vecdraw")
	w := fyneApp.NewWindow("vecdraw")
	w.SetMaster()
	zoomWin := fyneApp.NewWindow("Zoom")

	status := widget.NewLabel("Ready")
	swatch := canvas.NewRectangle(cfg.DefaultColor())
	swatch.SetMinSize(fyne.NewSize(20, 20))
	var resetBtn *widget.Button

	hooks := editor.Hooks{
		ZoomOpened: func(v editor.ZoomView) {
			zw, zh := v.Size()
			zoomWin.Resize(fyne.NewSize(float32(zw), float32(zh)))
			zoomWin.SetTitle(fmt.Sprintf("Zoom %gX", v.Multiplier))
			zoomWin.Show()
		},
		ZoomClosed: zoomWin.Hide,
		MultiplierChanged: func(m float64) {
			if resetBtn != nil {
				resetBtn.SetText(ZoomResetLabel(m))
			}
		},
		WindowReset: func() {
			w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
			swatch.FillColor = cfg.DefaultColor()
			swatch.Refresh()
			status.SetText("Idle")
		},
	}
	ed := editor.New(cfg.Canvas.Width, cfg.Canvas.Height,
		editor.WithCapacity(cfg.Drawing.MaxShapes),
		editor.WithColor(vector.FromColor(cfg.DefaultColor())),
		editor.WithFilled(cfg.Drawing.Filled),
		editor.WithHooks(hooks),
	)
	defer crash.Recover(ed.Describe)

	mainCanvas := NewDrawingCanvas(ed, editor.MainCanvas, fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))
	zoomCanvas := NewDrawingCanvas(ed, editor.ZoomCanvas, fyne.NewSize(1, 1))
	onErr := func(err error) {
		if errors.Is(err, scene.ErrCapacity) {
			status.SetText(fmt.Sprintf("Shape limit reached (%d)", ed.Registry().Cap()))
			return
		}
		l.Error("gesture failed", slog.Any("err", err))
		status.SetText("Error: " + err.Error())
	}
	mainCanvas.OnError = onErr
	zoomCanvas.OnError = onErr

	zoomWin.SetContent(zoomCanvas)
	zoomWin.Resize(fyne.NewSize(float32(cfg.Zoom.Width), float32(cfg.Zoom.Height)))
	zoomWin.SetCloseIntercept(func() {
		ed.CloseZoom()
		zoomWin.Hide()
	})

	refresh := func() {
		mainCanvas.Refresh()
		if _, ok := ed.View(); ok {
			zoomCanvas.Refresh()
		}
	}

	rows := map[int][]fyne.CanvasObject{}
	maxRow := 0
	for _, c := range Controls() {
		c := c
		var btn *widget.Button
		switch {
		case c.Label == LabelColor:
			btn = widget.NewButton(c.Label, func() {
				picker := dialog.NewColorPicker("Choose a color", "", func(col color.Color) {
					ed.SetColor(vector.FromColor(col))
					swatch.FillColor = ed.Color().RGBA()
					swatch.Refresh()
				}, w)
				picker.Advanced = true
				picker.SetColor(ed.Color().RGBA())
				picker.Show()
			})
			rows[c.Row] = append(rows[c.Row], container.NewBorder(nil, nil, swatch, nil, btn))
			continue
		case c.Label == LabelExit:
			btn = widget.NewButton(c.Label, fyneApp.Quit)
		default:
			btn = widget.NewButton(c.Label, func() {
				c.Apply(ed)
				refresh()
			})
		}
		if c.IsZoomReset() {
			resetBtn = btn
		}
		rows[c.Row] = append(rows[c.Row], btn)
		if c.Row > maxRow {
			maxRow = c.Row
		}
	}
	toolbar := container.NewVBox()
	for i := 0; i <= maxRow; i++ {
		toolbar.Add(container.NewGridWithColumns(len(rows[i]), rows[i]...))
	}
	toolbar.Add(status)

	w.SetContent(container.NewBorder(nil, toolbar, nil, nil, mainCanvas))
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tick(ctx, cfg.Render.FPS, refresh)

	w.ShowAndRun()
	l.Info("UI closed", slog.Int("shapes", ed.Registry().Len()))
	return nil
}

// tick drives redraws at fps frames per second on the UI goroutine until
// ctx is done.
func tick(ctx context.Context, fps int, redraw func()) {
	if fps <= 0 {
		fps = 60
	}
	t := time.NewTicker(time.Second / time.Duration(fps))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			fyne.Do(redraw)
		}
	}
}
