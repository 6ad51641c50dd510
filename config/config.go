// Package config holds the tunables of the editor and the engine front ends.
// Values are read from a YAML file over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/tilekit/tilemap"
	"github.com/plus3/tilekit/viewport"
)

// Size is a width and height pair.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CellSize bounds the map cell size in pixels at a UI scale of 1.
type CellSize struct {
	Default int `yaml:"default"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Step    int `yaml:"step"`
}

// Zoom converts c to a viewport zoom.
func (c CellSize) Zoom() viewport.Zoom {
	return viewport.Zoom{Default: c.Default, Min: c.Min, Max: c.Max, Step: c.Step}
}

// Editor configures the map editor.
type Editor struct {
	Window      Size     `yaml:"window"`
	CellSize    CellSize `yaml:"cell_size"`
	Margin      int      `yaml:"margin"`
	Toolbar     int      `yaml:"toolbar"`
	SpritePanel int      `yaml:"sprite_panel"`
	PaletteTile int      `yaml:"palette_tile"`
	PaletteGap  int      `yaml:"palette_gap"`
	NewMap      Size     `yaml:"new_map"`
	TileSize    Size     `yaml:"tile_size"`
	MaxTileSize int      `yaml:"max_tile_size"`
	ShowGrid    bool     `yaml:"show_grid"`
	FPS         int      `yaml:"fps"`
}

// Engine configures the runtime front end.
type Engine struct {
	Window   Size   `yaml:"window"`
	CellSize int    `yaml:"cell_size"`
	Margin   int    `yaml:"margin"`
	FPS      int    `yaml:"fps"`
	ShowGrid bool   `yaml:"show_grid"`
	Title    string `yaml:"title"`
}

// Config is the root of the configuration file.
type Config struct {
	Editor Editor `yaml:"editor"`
	Engine Engine `yaml:"engine"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			Window:      Size{Width: 1920, Height: 1080},
			CellSize:    CellSize{Default: 32, Min: 8, Max: 128, Step: 4},
			Margin:      10,
			Toolbar:     30,
			SpritePanel: 300,
			PaletteTile: 48,
			PaletteGap:  4,
			NewMap:      Size{Width: 4, Height: 4},
			TileSize:    Size{Width: 16, Height: 16},
			MaxTileSize: 512,
			ShowGrid:    true,
			FPS:         60,
		},
		Engine: Engine{
			Window:   Size{Width: 1280, Height: 720},
			CellSize: 32,
			Margin:   10,
			FPS:      60,
			ShowGrid: true,
			Title:    "Tile Engine",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	e := c.Editor
	positive("editor.window.width", e.Window.Width)
	positive("editor.window.height", e.Window.Height)
	positive("editor.cell_size.min", e.CellSize.Min)
	positive("editor.cell_size.step", e.CellSize.Step)
	positive("editor.palette_tile", e.PaletteTile)
	positive("editor.max_tile_size", e.MaxTileSize)
	positive("editor.fps", e.FPS)
	if e.CellSize.Min > e.CellSize.Max {
		errs = append(errs, fmt.Errorf("editor.cell_size.min %d exceeds max %d", e.CellSize.Min, e.CellSize.Max))
	}
	if e.CellSize.Default < e.CellSize.Min || e.CellSize.Default > e.CellSize.Max {
		errs = append(errs, fmt.Errorf("editor.cell_size.default %d outside [%d, %d]", e.CellSize.Default, e.CellSize.Min, e.CellSize.Max))
	}
	if e.Margin < 0 || e.Toolbar < 0 || e.SpritePanel < 0 || e.PaletteGap < 0 {
		errs = append(errs, errors.New("editor layout sizes must not be negative"))
	}
	if e.NewMap.Width < 1 || e.NewMap.Width > tilemap.MaxWidth || e.NewMap.Height < 1 || e.NewMap.Height > tilemap.MaxHeight {
		errs = append(errs, fmt.Errorf("editor.new_map %dx%d outside 1x1..%dx%d", e.NewMap.Width, e.NewMap.Height, tilemap.MaxWidth, tilemap.MaxHeight))
	}
	positive("editor.tile_size.width", e.TileSize.Width)
	positive("editor.tile_size.height", e.TileSize.Height)

	g := c.Engine
	positive("engine.window.width", g.Window.Width)
	positive("engine.window.height", g.Window.Height)
	positive("engine.cell_size", g.CellSize)
	positive("engine.fps", g.FPS)
	if g.Margin < 0 {
		errs = append(errs, fmt.Errorf("engine.margin must not be negative, got %d", g.Margin))
	}

	return errors.Join(errs...)
}
