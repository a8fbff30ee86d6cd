/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"gopkg.in/yaml.v3"

	"vecdraw/internal/config"
	"vecdraw/internal/crash"
	"vecdraw/internal/editor"
	applog "vecdraw/internal/log"
	"vecdraw/internal/script"
	"vecdraw/internal/shape"
	"vecdraw/internal/ui"
	"vecdraw/internal/vector"
	"vecdraw/internal/version"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "vecdraw - vector drawing tool")
	fmt.Fprintf(w, "Version: %s\n", version.String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  vecdraw [ui]                      Launch desktop UI (build with -tags fyne)")
	fmt.Fprintln(w, "  vecdraw version|-v|--version      Show version")
	fmt.Fprintln(w, "  vecdraw config                    Print effective configuration")
	fmt.Fprintln(w, "  vecdraw replay <script.yaml>      Replay a gesture script headless")
	fmt.Fprintln(w, "  vecdraw help|-h|--help            Show this help")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	cfg, cfgErr := config.Load()
	applog.Init(cfg.Logging.LogOptions())
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config load failed, using defaults", slog.Any("err", cfgErr))
	}

	var ed *editor.Editor
	defer crash.Recover(func() string {
		if ed == nil {
			return "no editor"
		}
		return ed.Describe()
	})

	cmd := "ui"
	if len(args) > 0 {
		cmd = args[0]
	}
	l.Debug("start", slog.String("cmd", cmd), slog.Int("args", len(args)))
	switch cmd {
	case "version", "--version", "-v":
		fmt.Fprintln(out, version.String())
		return 0
	case "help", "--help", "-h":
		usage(out)
		return 0
	case "config":
		return printConfig(out, cfg)
	case "replay":
		if len(args) < 2 {
			fmt.Fprintln(out, "replay requires <script.yaml>")
			usage(out)
			return 2
		}
		ed = newEditor(cfg)
		return replay(out, ed, args[1])
	case "ui":
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(out, "Error:", err)
			return 1
		}
		if err := ui.Run(cfg); err != nil {
			fmt.Fprintln(out, "Error:", err)
			return 1
		}
		return 0
	}
	fmt.Fprintf(out, "unknown command %q\n", cmd)
	usage(out)
	return 2
}

func newEditor(cfg config.AppConfig) *editor.Editor {
	return editor.New(cfg.Canvas.Width, cfg.Canvas.Height,
		editor.WithCapacity(cfg.Drawing.MaxShapes),
		editor.WithColor(vector.FromColor(cfg.DefaultColor())),
		editor.WithFilled(cfg.Drawing.Filled),
	)
}

func printConfig(out io.Writer, cfg config.AppConfig) int {
	path, _ := config.ConfigPath()
	fmt.Fprintln(out, "# file:", path)
	b, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return 1
	}
	out.Write(b)
	for _, k := range config.Keys() {
		if env, ok := config.EnvOverrideFor(k); ok {
			fmt.Fprintf(out, "# %s overridden by %s\n", k, env)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(out, "# invalid:", err)
		return 1
	}
	return 0
}

func replay(out io.Writer, ed *editor.Editor, path string) int {
	l := applog.WithComponent("cli")
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return 1
	}
	s, errs := script.Parse(data)
	for _, e := range errs {
		fmt.Fprintf(out, "%s:%s\n", path, e.Error())
	}
	if len(errs) > 0 {
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rep, err := script.Run(ctx, ed, s)
	if err != nil {
		l.Error("replay failed", slog.String("path", path), slog.Any("err", err))
		fmt.Fprintln(out, "Error:", err)
		return 1
	}

	fmt.Fprintf(out, "steps: %d\n", rep.Steps)
	fmt.Fprintf(out, "shapes: %d\n", rep.Shapes)
	for k := shape.KindPoint; k < shape.KindZoom; k++ {
		if n := rep.Counts[k]; n > 0 {
			fmt.Fprintf(out, "  %s: %d\n", k, n)
		}
	}
	if rep.Rejected > 0 {
		fmt.Fprintf(out, "rejected: %d\n", rep.Rejected)
	}
	fmt.Fprintf(out, "multiplier: %g\n", rep.Multiplier)
	fmt.Fprintf(out, "zoom_open: %t\n", rep.ZoomOpen)
	for _, f := range rep.Frames {
		fmt.Fprintf(out, "frame %d: main=%d zoom=%d\n", f.Step, f.Main, f.Zoom)
	}
	if rep.Exited {
		fmt.Fprintln(out, "exited")
	}
	return 0
}
