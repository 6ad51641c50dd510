// Command tileengine walks a player across a tile map with the arrow keys.
package main

import (
	"errors"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"github.com/plus3/tilekit/config"
	"github.com/plus3/tilekit/engine"
	"github.com/plus3/tilekit/render"
	"github.com/plus3/tilekit/render/raylibrender"
	"github.com/plus3/tilekit/sprite"
	"github.com/plus3/tilekit/tilemap"
)

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "tileengine MAP",
		Short:        "Walk a tile map",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return run(cfg.Engine, args[0])
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "tilekit.yaml", "Path to the YAML configuration file.")
	return cmd
}

func run(cfg config.Engine, mapPath string) error {
	session, err := engine.Load(mapPath)
	if err != nil {
		return err
	}
	for _, c := range session.Clamped {
		log.Printf("%s: clamped %v", mapPath, c)
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
	defer rl.CloseWindow()

	renderSystem := &RenderSystem{cfg: cfg, theme: render.DefaultTheme}
	if err := renderSystem.loadSheet(mapPath, session.Map.Sprite()); err != nil {
		log.Printf("sprite sheet: %v", err)
		session.Console.Print("Sprite sheet unavailable; drawing placeholders.")
	}
	defer renderSystem.release()

	session.Console.Print("Arrow keys move, Home returns to the start.")
	scheduler := engine.NewScheduler(session)
	scheduler.Register(&InputSystem{Out: os.Stdout})
	scheduler.Register(renderSystem)

	lastTime := rl.GetTime()

	for !rl.WindowShouldClose() {
		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		scheduler.Once(deltaTime)
	}

	for _, s := range scheduler.Stats().Systems {
		log.Printf("%s: %d frames, avg %v, max %v", s.Name, s.ExecutionCount, s.AvgDuration, s.MaxDuration)
	}
	return nil
}

// loadSheet loads the sheet the map refers to from the map's directory and
// uploads it. A map without a sheet is not an error.
func (s *RenderSystem) loadSheet(mapPath string, ref tilemap.SpriteRef) error {
	if ref.IsNone() {
		return nil
	}
	path := tilemap.SiblingPath(mapPath, ref.Name)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return err
	}
	sheet, err := sprite.Load(path, ref.TileWidth, ref.TileHeight)
	if err != nil {
		return err
	}
	tex, err := raylibrender.Loader{}.Upload(sheet.Image)
	if err != nil {
		return err
	}
	s.sheet, s.texture = sheet, tex
	return nil
}

func main() {
	log.SetFlags(log.Ltime)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("tileengine: %v", err)
	}
}
