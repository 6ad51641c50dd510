// Command tilemapctl inspects, validates and creates tile map files without
// opening a window.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/plus3/tilekit/config"
)

func newRootCmd() *cobra.Command {
	var configPath string
	cfg := config.Default()

	root := &cobra.Command{
		Use:           "tilemapctl",
		Short:         "Inspect and create tile map files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "tilekit.yaml", "Path to the YAML configuration file.")

	root.AddCommand(
		newPrintCmd(),
		newInfoCmd(),
		newValidateCmd(),
		newNewCmd(&cfg),
		newSheetCmd(),
	)
	return root
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("tilemapctl: %v", err)
	}
}
