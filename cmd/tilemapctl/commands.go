package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plus3/tilekit/config"
	"github.com/plus3/tilekit/engine"
	"github.com/plus3/tilekit/sprite"
	"github.com/plus3/tilekit/tilemap"
)

func parseDirection(s string) (engine.Direction, error) {
	for d := engine.Right; d <= engine.Down; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func logClamped(path string, clamped []*tilemap.BoundsError) {
	for _, c := range clamped {
		log.Printf("%s: clamped %v", path, c)
	}
}

func newPrintCmd() *cobra.Command {
	var moves []string

	cmd := &cobra.Command{
		Use:   "print MAP",
		Short: "Print a map with the player on its start cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := engine.Load(args[0])
			if err != nil {
				return err
			}
			logClamped(args[0], s.Clamped)

			for _, m := range moves {
				d, err := parseDirection(m)
				if err != nil {
					return err
				}
				if !s.Move(d) {
					log.Printf("move %s refused at %s", d, s.Player.Coord)
				}
			}
			return s.Dump(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringSliceVar(&moves, "moves", nil, "Comma separated moves to apply first (right, left, up, down).")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info MAP",
		Short: "Summarise a map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, clamped, err := tilemap.ReadFile(args[0])
			if err != nil {
				return err
			}
			report := newMapReport(args[0], doc, clamped)
			if sheet, err := resolveSheet(args[0], doc, ""); err != nil {
				report.SheetError = err.Error()
			} else if sheet != nil {
				report.attachSheet(doc, sheet)
			}
			return report.Generate(cmd.OutOrStdout())
		},
	}
}

// resolveSheet loads the sheet named by override, or the one the map refers
// to next to the map file. It returns nil when the map has no sheet or the
// file is absent.
func resolveSheet(mapPath string, doc *tilemap.Document, override string) (*sprite.Sheet, error) {
	ref := doc.Sprite()
	path := override
	if path == "" {
		if ref.IsNone() {
			return nil, nil
		}
		path = tilemap.SiblingPath(mapPath, ref.Name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
	}
	return sprite.Load(path, ref.TileWidth, ref.TileHeight)
}

func newValidateCmd() *cobra.Command {
	var sheetPath string
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate MAP",
		Short: "Check a map file against its sprite sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, clamped, err := tilemap.ReadFile(args[0])
			if err != nil {
				return err
			}
			logClamped(args[0], clamped)
			if strict && len(clamped) > 0 {
				return fmt.Errorf("%s: %d header value(s) out of range", args[0], len(clamped))
			}

			sheet, err := resolveSheet(args[0], doc, sheetPath)
			if err != nil {
				return err
			}
			if sheet == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (no sprite sheet to check against)\n", args[0])
				return nil
			}
			if err := doc.Validate(sheet.TotalTiles()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tiles in %s)\n", args[0], sheet.TotalTiles(), sheet.Name())
			return nil
		},
	}
	cmd.Flags().StringVar(&sheetPath, "sheet", "", "Sprite sheet to validate against instead of the one next to the map.")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat clamped header values as errors.")
	return cmd
}

func newNewCmd(cfg *config.Config) *cobra.Command {
	var (
		width, height         int
		startX, startY        int
		spriteName            string
		tileWidth, tileHeight int
		force                 bool
	)

	cmd := &cobra.Command{
		Use:   "new PATH",
		Short: "Write an empty map file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width == 0 {
				width = cfg.Editor.NewMap.Width
			}
			if height == 0 {
				height = cfg.Editor.NewMap.Height
			}
			doc, err := tilemap.New(width, height)
			if err != nil {
				return err
			}
			if err := doc.SetStart(tilemap.Coord{X: startX, Y: startY}); err != nil {
				return err
			}
			doc.SetSprite(tilemap.SpriteRef{Name: spriteName, TileWidth: tileWidth, TileHeight: tileHeight})

			if !force {
				if _, err := os.Stat(args[0]); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", args[0])
				}
			}
			if err := tilemap.WriteFile(args[0], doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", args[0], width, height)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "Map width in cells (default from config).")
	cmd.Flags().IntVar(&height, "height", 0, "Map height in cells (default from config).")
	cmd.Flags().IntVar(&startX, "start-x", 0, "Start cell column.")
	cmd.Flags().IntVar(&startY, "start-y", 0, "Start cell row.")
	cmd.Flags().StringVar(&spriteName, "sprite", tilemap.NoSprite, "Sprite sheet file name stored in the header.")
	cmd.Flags().IntVar(&tileWidth, "tile-width", 0, "Sprite tile width in pixels.")
	cmd.Flags().IntVar(&tileHeight, "tile-height", 0, "Sprite tile height in pixels.")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file.")
	return cmd
}

func newSheetCmd() *cobra.Command {
	var tileWidth, tileHeight int

	cmd := &cobra.Command{
		Use:   "sheet IMAGE",
		Short: "Show how an image splits into tiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := sprite.Load(args[0], tileWidth, tileHeight)
			if err != nil {
				return err
			}
			return newSheetReport(sheet).Generate(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&tileWidth, "tile-width", 16, "Tile width in pixels.")
	cmd.Flags().IntVar(&tileHeight, "tile-height", 16, "Tile height in pixels.")
	return cmd
}
