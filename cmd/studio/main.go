// studio is a terminal tile-level studio: paint a level from a block palette,
// then play it as a top-down walker or a platformer.
//
// Usage:
//
//	studio list               - List available variants
//	studio blocks             - Show the block catalog
//	studio play [variant]     - Open a variant (default: studio)
//	studio menu               - Pick a variant interactively
//	studio serve              - Start SSH server for remote play
//	studio scores [variant]   - Show records (--browse for the TUI view)
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.studio/scores.db)
//	--config <path>       - Custom studio config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Write announcements and session logs to a file
//	--volume <0..1>       - Placement sound volume
//	--mute                - Disable the placement sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tile-studio/internal/games/studio"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagVolume     float64
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Tile Studio - build and play tile levels in your terminal",
	Long: `Tile Studio is a terminal level editor. Paint a grid from a palette of
blocks with the keyboard or the mouse, then press Tab to play the level.

Available commands:
  list     - Show all variants
  blocks   - Show the block catalog
  play     - Open a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  studio play
  studio play platformer --difficulty easy
  studio menu
  studio serve --ssh :2222 --metrics :9091
  studio scores platformer`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.studio/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom studio config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write announcements and session logs to this file")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", -1, "Placement sound volume 0.0-1.0 (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the placement sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
