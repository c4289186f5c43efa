package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-studio/internal/config"
	"github.com/vovakirdan/tile-studio/internal/games/studio"
	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

var flagDumpYAML bool

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Show the block catalog",
	Long: `Lists the palette categories and the properties of each block.
The catalog comes from --config when given, otherwise from
~/.studio/configs/studio.yaml, ./configs/studio.yaml or the built-in defaults.

Examples:
  studio blocks
  studio blocks --config ./my-studio.yaml
  studio blocks --yaml > studio.yaml`,
	Run: runBlocks,
}

func init() {
	blocksCmd.Flags().BoolVar(&flagDumpYAML, "yaml", false, "Print the built-in config as YAML")
}

func runBlocks(_ *cobra.Command, _ []string) {
	if flagDumpYAML {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg, err := config.LoadStudio(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	catalog, err := studio.BuildCatalog(cfg.Catalog)
	if err != nil {
		fail("invalid catalog: %v", err)
	}

	for _, cat := range catalog.Categories() {
		fmt.Printf("%s (%s)\n", cat.Name, cat.Key)
		for _, b := range cat.Blocks {
			fmt.Printf("  %-8s %-8s %s\n", b.ID, b.Name, describe(b))
		}
		fmt.Println()
	}
}

// describe lists the behaviour flags of a block.
func describe(b core.BlockDef) string {
	var props []string
	if b.Solid {
		props = append(props, "solid")
	}
	if b.Hazard {
		props = append(props, "hazard")
	}
	if b.Collectible {
		props = append(props, fmt.Sprintf("collectible +%d", b.Points))
	}
	if b.Interactive {
		props = append(props, "interactive")
	}
	if len(props) == 0 {
		return "walkable"
	}
	return strings.Join(props, ", ")
}
