// Command mapeditor is the interactive tile map editor.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/plus3/tilekit/config"
	"github.com/plus3/tilekit/overlay"
	"github.com/plus3/tilekit/render/ebitenrender"
)

const windowTitle = "Tile Map Editor"

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "mapeditor [MAP]",
		Short:        "Edit tile maps and paint them from a sprite sheet",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return run(cfg.Editor, args)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "tilekit.yaml", "Path to the YAML configuration file.")
	return cmd
}

func run(cfg config.Editor, args []string) error {
	backend := overlay.NewBackend(windowTitle, cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	surface, err := ebitenrender.NewSurface()
	if err != nil {
		return err
	}

	game := newGame(cfg, overlay.NewLayer(backend), surface)
	defer game.session.Close()

	if len(args) == 1 {
		game.path = args[0]
		game.loadMap(args[0])
	}
	return ebiten.RunGame(game)
}

func main() {
	log.SetFlags(log.Ltime)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("mapeditor: %v", err)
	}
}
