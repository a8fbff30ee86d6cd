/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package config loads the user configuration: window and canvas sizes,
// drawing defaults, frame rate and logging. It is a YAML file in the user
// config directory; environment variables override it at runtime.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	applog "vecdraw/internal/log"
)

// Size is a pixel extent.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type DrawingConfig struct {
	// Color is "#rrggbb" or a CSS color name.
	Color     string `yaml:"color"`
	Filled    bool   `yaml:"filled"`
	MaxShapes int    `yaml:"max_shapes"`
}

type RenderConfig struct {
	FPS int `yaml:"fps"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// AppConfig is the persisted configuration.
//
// config_version: bump when the structure changes in a backward-incompatible way.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Window        Size          `yaml:"window"`
	Canvas        Size          `yaml:"canvas"`
	Zoom          Size          `yaml:"zoom"`
	Drawing       DrawingConfig `yaml:"drawing"`
	Render        RenderConfig  `yaml:"render"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Window:        Size{Width: 640, Height: 532},
		Canvas:        Size{Width: 620, Height: 400},
		Zoom:          Size{Width: 320, Height: 240},
		Drawing:       DrawingConfig{Color: "#ffffff", Filled: true, MaxShapes: 30000},
		Render:        RenderConfig{FPS: 60},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath   = "VD_CONFIG"
	EnvCanvasWidth  = "VD_CANVAS_WIDTH"
	EnvCanvasHeight = "VD_CANVAS_HEIGHT"
	EnvFPS          = "VD_FPS"
	EnvDefaultColor = "VD_DEFAULT_COLOR"
	EnvFilled       = "VD_FILLED"
	EnvMaxShapes    = "VD_MAX_SHAPES"
	EnvLogLevel     = "VD_LOG_LEVEL"
	EnvLogFormat    = "VD_LOG_FORMAT"
	EnvLogSource    = "VD_LOG_SOURCE"
	EnvLogFile      = "VD_LOG_FILE"
)

// envKeys maps dotted config keys to the variables that override them.
var envKeys = map[string]string{
	"canvas.width":       EnvCanvasWidth,
	"canvas.height":      EnvCanvasHeight,
	"render.fps":         EnvFPS,
	"drawing.color":      EnvDefaultColor,
	"drawing.filled":     EnvFilled,
	"drawing.max_shapes": EnvMaxShapes,
	"logging.level":      EnvLogLevel,
	"logging.format":     EnvLogFormat,
	"logging.source":     EnvLogSource,
	"logging.file":       EnvLogFile,
}

// Keys lists the overridable config keys in display order.
func Keys() []string {
	return []string{
		"canvas.width", "canvas.height", "render.fps",
		"drawing.color", "drawing.filled", "drawing.max_shapes",
		"logging.level", "logging.format", "logging.source", "logging.file",
	}
}

// ConfigPath returns the per-user config file path. VD_CONFIG wins when set.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "Vecdraw")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "Vecdraw")
	default:
		if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
			base = filepath.Join(x, "vecdraw")
		} else if h := os.Getenv("HOME"); h != "" {
			base = filepath.Join(h, ".config", "vecdraw")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file if present, merges it over the defaults
// and applies environment overrides. A missing file is not an error.
func Load() (AppConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Defaults()
		applyEnvOverrides(&cfg)
		return cfg, err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (AppConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			applyEnvOverrides(&cfg)
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg, data)
	case !errors.Is(err, os.ErrNotExist):
		applyEnvOverrides(&cfg)
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes cfg to the user config file.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile is Save for an explicit path.
func SaveFile(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// mergeInto copies the non-zero fields of src over dst. Booleans are only
// copied when the raw document names them, so an omitted "filled" keeps the
// default.
func mergeInto(dst *AppConfig, src *AppConfig, raw []byte) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	mergeSize(&dst.Window, src.Window)
	mergeSize(&dst.Canvas, src.Canvas)
	mergeSize(&dst.Zoom, src.Zoom)
	if c := strings.TrimSpace(src.Drawing.Color); c != "" {
		dst.Drawing.Color = c
	}
	if src.Drawing.MaxShapes > 0 {
		dst.Drawing.MaxShapes = src.Drawing.MaxShapes
	}
	if src.Render.FPS > 0 {
		dst.Render.FPS = src.Render.FPS
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}

	var present struct {
		Drawing map[string]any `yaml:"drawing"`
		Logging map[string]any `yaml:"logging"`
	}
	if raw == nil || yaml.Unmarshal(raw, &present) != nil {
		dst.Drawing.Filled = src.Drawing.Filled
		dst.Logging.Source = src.Logging.Source
		return
	}
	if _, ok := present.Drawing["filled"]; ok {
		dst.Drawing.Filled = src.Drawing.Filled
	}
	if _, ok := present.Logging["source"]; ok {
		dst.Logging.Source = src.Logging.Source
	}
}

func mergeSize(dst *Size, src Size) {
	if src.Width > 0 {
		dst.Width = src.Width
	}
	if src.Height > 0 {
		dst.Height = src.Height
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	envInt(EnvCanvasWidth, &cfg.Canvas.Width)
	envInt(EnvCanvasHeight, &cfg.Canvas.Height)
	envInt(EnvFPS, &cfg.Render.FPS)
	envInt(EnvMaxShapes, &cfg.Drawing.MaxShapes)
	if v := strings.TrimSpace(os.Getenv(EnvDefaultColor)); v != "" {
		cfg.Drawing.Color = v
	}
	envBool(EnvFilled, &cfg.Drawing.Filled)
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	envBool(EnvLogSource, &cfg.Logging.Source)
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func envInt(key string, dst *int) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "on", "yes":
			*dst = true
		case "0", "false", "off", "no":
			*dst = false
		}
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	name, ok := envKeys[key]
	if !ok || strings.TrimSpace(os.Getenv(name)) == "" {
		return "", false
	}
	return name, true
}

// Validate reports every out-of-range field.
func (c AppConfig) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Render.FPS <= 0 || c.Render.FPS > 240 {
		errs = append(errs, fmt.Errorf("render.fps %d out of range 1..240", c.Render.FPS))
	}
	if c.Drawing.MaxShapes <= 0 {
		errs = append(errs, fmt.Errorf("drawing.max_shapes %d must be positive", c.Drawing.MaxShapes))
	}
	if _, err := ParseColor(c.Drawing.Color); err != nil {
		errs = append(errs, fmt.Errorf("drawing.color: %w", err))
	}
	return errors.Join(errs...)
}

// DefaultColor parses Drawing.Color, falling back to white.
func (c AppConfig) DefaultColor() color.RGBA {
	col, err := ParseColor(c.Drawing.Color)
	if err != nil {
		return colornames.White
	}
	return col
}

// LogOptions converts the logging section for log.Init.
func (l LoggingConfig) LogOptions() applog.Options {
	return applog.Options{Level: l.Level, Format: l.Format, AddSource: l.Source, File: l.File}
}

// ParseColor accepts "#rgb", "#rrggbb" or a CSS color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.RGBA{}, errors.New("empty color")
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
