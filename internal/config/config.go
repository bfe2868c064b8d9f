package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tiles/internal/icons"
)

// Layout modes.
const (
	LayoutGrid    = "grid"
	LayoutMasonry = "masonry"
)

// Interrupt policies for a drop that lands while cards are still moving.
const (
	InterruptApproximate = "approximate"
	InterruptCancel      = "cancel"
)

type Config struct {
	Layout    LayoutConfig    `koanf:"layout"`
	Animation AnimationConfig `koanf:"animation"`
	State     StateConfig     `koanf:"state"`
	Log       LogConfig       `koanf:"log"`
	UI        UIConfig        `koanf:"ui"`
}

// LayoutConfig controls how cards are placed on the board.
type LayoutConfig struct {
	Mode         string `koanf:"mode"`           // "grid" or "masonry" (default: grid)
	ColumnWidth  int    `koanf:"column_width"`   // card width in cells (default: 36)
	Gap          int    `koanf:"gap"`            // cells between cards (default: 1)
	MinRowHeight int    `koanf:"min_row_height"` // grid row floor (default: 7)
}

// AnimationConfig controls the reorder transition.
type AnimationConfig struct {
	DurationMS *int      `koanf:"duration_ms"` // 0 disables the transition (default: 300)
	Easing     []float64 `koanf:"easing"`      // cubic-bezier control points (default: .2,.8,.2,1)
	FPS        int       `koanf:"fps"`         // frame rate (1-120, default: 60)
	Interrupt  string    `koanf:"interrupt"`   // "approximate" or "cancel"
}

// StateConfig locates the order database.
type StateConfig struct {
	Path string `koanf:"path"` // empty means the XDG data dir
}

// LogConfig locates the log file.
type LogConfig struct {
	File  string `koanf:"file"`  // empty means the XDG state dir
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Icons string `koanf:"icons"` // "nerd", "unicode" or "none" (default: none)
}

// Load reads the config files in order of priority. extra, when non-empty,
// is loaded last and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if extra != "" {
		extra = expandPath(extra)
		if err := k.Load(file.Provider(extra), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", extra, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.State.Path = expandPath(cfg.State.Path)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Layout.Mode = strings.ToLower(strings.TrimSpace(cfg.Layout.Mode))
	cfg.Animation.Interrupt = strings.ToLower(strings.TrimSpace(cfg.Animation.Interrupt))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tiles/config.toml
		filepath.Join(xdg.ConfigHome, "tiles", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ValidLayoutMode reports whether mode names a known layout.
func ValidLayoutMode(mode string) bool {
	return mode == LayoutGrid || mode == LayoutMasonry
}

// GetLayoutConfig returns the layout configuration with defaults applied.
func (c *Config) GetLayoutConfig() LayoutConfig {
	cfg := c.Layout

	if !ValidLayoutMode(cfg.Mode) {
		cfg.Mode = LayoutGrid
	}
	if cfg.ColumnWidth < 16 {
		cfg.ColumnWidth = 36
	}
	if cfg.Gap < 0 || cfg.Gap > 8 {
		cfg.Gap = 1
	}
	if cfg.MinRowHeight <= 0 {
		cfg.MinRowHeight = 7
	}

	return cfg
}

// GetAnimationConfig returns the animation configuration with defaults applied.
func (c *Config) GetAnimationConfig() AnimationConfig {
	cfg := c.Animation

	ms := 300
	if cfg.DurationMS != nil {
		ms = max(*cfg.DurationMS, 0)
	}
	cfg.DurationMS = &ms
	if len(cfg.Easing) != 4 || cfg.Easing[0] < 0 || cfg.Easing[0] > 1 ||
		cfg.Easing[2] < 0 || cfg.Easing[2] > 1 {
		cfg.Easing = []float64{0.2, 0.8, 0.2, 1}
	}
	if cfg.FPS <= 0 || cfg.FPS > 120 {
		cfg.FPS = 60
	}
	if cfg.Interrupt != InterruptCancel {
		cfg.Interrupt = InterruptApproximate
	}

	return cfg
}

// Duration returns the transition length.
func (a AnimationConfig) Duration() time.Duration {
	if a.DurationMS == nil {
		return 300 * time.Millisecond
	}
	return time.Duration(*a.DurationMS) * time.Millisecond
}

// FrameInterval returns the time between animation frames.
func (a AnimationConfig) FrameInterval() time.Duration {
	if a.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(a.FPS)
}

// GetUIConfig returns UI settings with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	ui := c.UI
	ui.Icons = strings.ToLower(ui.Icons)
	if !icons.Valid(ui.Icons) {
		ui.Icons = string(icons.StyleNone)
	}
	return ui
}
