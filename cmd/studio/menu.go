package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-studio/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Opens the variant menu, the same screens the SSH server shows.

Menu keys:
  Up/Down, j/k  - Move
  Enter         - Open the variant
  Tab           - Records
  Q, Esc        - Quit

Esc inside a variant returns to the menu.

Examples:
  studio menu
  studio menu --fps 30 --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if _, err := loadStudioConfig(); err != nil {
		fail("%v", err)
	}
	sess, err := openSession()
	if err != nil {
		fail("%v", err)
	}

	runErr := tui.RunSession(sess.store, sess.dispatcher, runtimeConfig(), localPlayer())
	sess.Close()
	if runErr != nil {
		fail("running menu: %v", runErr)
	}
}
