package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-studio/internal/platform/tui"
	"github.com/vovakirdan/tile-studio/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Open a studio variant",
	Long: `Open the studio in edit mode. Press Tab to play the level and Tab again
to return to editing; the level is kept between the two.

Edit controls:
  Arrows/WASD     - Move cursor
  Enter/Space     - Paint selected block
  Mouse           - Click a palette entry, click or drag to paint
  1-9, [ ]        - Select block
  U / Ctrl+Z      - Undo
  Y / Ctrl+Y      - Redo
  X               - Clear grid

Play controls:
  Arrows/WASD     - Move (platformer: walk left/right)
  Space/Up        - Jump (platformer)

Any time:
  Tab             - Toggle edit/play
  ?               - More keys
  Esc, Q/Ctrl+C   - Quit

Variants:
  studio      - top-down: the player moves one cell per key press
  platformer  - gravity and jumps over a fixed ground row

Examples:
  studio play
  studio play platformer
  studio play platformer --difficulty easy
  studio play --config ./my-studio.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "studio"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown variant %q\nRun 'studio list' to see available variants.", gameID)
	}
	if _, err := loadStudioConfig(); err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating variant: %v", err)
	}

	sess, err := openSession()
	if err != nil {
		fail("%v", err)
	}

	runErr := tui.Run(game, tui.ModelOptions{
		Config:     runtimeConfig(),
		Dispatcher: sess.dispatcher,
		Player:     localPlayer(),
	})

	// Flush sessions before potential exit
	sess.Close()

	if runErr != nil {
		fail("running studio: %v", runErr)
	}
}
