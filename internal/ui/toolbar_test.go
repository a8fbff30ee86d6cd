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
	"testing"

	"vecdraw/internal/editor"
	applog "vecdraw/internal/log"
	"vecdraw/internal/shape"
)

func find(t *testing.T, label string) Control {
	t.Helper()
	for _, c := range Controls() {
		if c.Label == label {
			return c
		}
	}
	t.Fatalf("no control %q", label)
	return Control{}
}

func TestZoomResetLabel(t *testing.T) {
	cases := map[float64]string{2: "2X Zoom Reset", 8: "8X Zoom Reset", 64: "64X Zoom Reset"}
	for m, want := range cases {
		if got := ZoomResetLabel(m); got != want {
			t.Fatalf("ZoomResetLabel(%v) = %q, want %q", m, got, want)
		}
	}
}

func TestControlsDriveEditor(t *testing.T) {
	e := editor.New(100, 100, editor.WithLogger(applog.Discard()))
	find(t, "Circles").Apply(e)
	if e.Tool() != shape.KindCircle {
		t.Fatalf("tool = %s", e.Tool())
	}
	find(t, "ZoomIn").Apply(e)
	if e.Tool() != shape.KindZoom {
		t.Fatalf("ZoomIn should select the zoom tool, got %s", e.Tool())
	}
	find(t, "Zoom +").Apply(e)
	find(t, "Zoom +").Apply(e)
	find(t, "Zoom -").Apply(e)
	if e.Multiplier() != 4 {
		t.Fatalf("multiplier = %v", e.Multiplier())
	}
	find(t, "Line").Apply(e)
	if e.Filled() {
		t.Fatalf("Line should switch to outline mode")
	}
	find(t, "Fill").Apply(e)
	if !e.Filled() {
		t.Fatalf("Fill should switch to fill mode")
	}
	if !find(t, "2X Zoom Reset").IsZoomReset() {
		t.Fatalf("zoom reset control not recognized")
	}
	find(t, "2X Zoom Reset").Apply(e)
	if e.Multiplier() != 2 {
		t.Fatalf("multiplier after reset = %v", e.Multiplier())
	}
}

func TestHostControlsHaveNoAction(t *testing.T) {
	for _, c := range Controls() {
		host := c.Label == LabelColor || c.Label == LabelExit
		if host != (c.Apply == nil) {
			t.Fatalf("control %q: host=%v apply=%v", c.Label, host, c.Apply != nil)
		}
	}
}
