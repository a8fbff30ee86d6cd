/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns a top-level panic into a logged error, a report file
// in the temp directory and exit status 2.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	applog "vecdraw/internal/log"
	"vecdraw/internal/version"
)

// ExitCode is the process status after a recovered panic.
const ExitCode = 2

var (
	exitFn    = os.Exit
	reportDir = os.TempDir
)

// Recover captures a panic, logs it with its stack, writes a crash report
// and exits. describe, if non-nil, adds a line of application state to the
// report (for example the active tool and shape count).
//
// Usage: defer crash.Recover(ed.Describe)
func Recover(describe func() string) {
	r := recover()
	if r == nil {
		return
	}
	l := applog.WithComponent("crash")
	stack := debug.Stack()
	l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

	state := ""
	if describe != nil {
		state = safeDescribe(describe)
	}
	path, err := writeReport(r, state, stack)
	if err != nil {
		l.Error("crash report not written", slog.Any("err", err), slog.String("path", path))
	}
	_, _ = fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", path)
	_, _ = fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH)
	exitFn(ExitCode)
}

// safeDescribe keeps a panicking describe from masking the original panic.
func safeDescribe(describe func() string) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<describe panicked: %v>", r)
		}
	}()
	return describe()
}

func writeReport(panicVal any, state string, stack []byte) (string, error) {
	path := filepath.Join(reportDir(), fmt.Sprintf("vecdraw-crash-%s.log", time.Now().Format("20060102-150405")))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Vecdraw Crash Report\n")
	fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&buf, "Version: %s\n", version.String())
	fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if state != "" {
		fmt.Fprintf(&buf, "State: %s\n", state)
	}
	fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	fmt.Fprintf(&buf, "Stack:\n%s\n", stack)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return path, err
	}
	return path, nil
}
