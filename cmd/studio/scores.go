package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-studio/internal/platform/tui"
	"github.com/vovakirdan/tile-studio/internal/registry"
	"github.com/vovakirdan/tile-studio/internal/storage"
)

var (
	flagTop    int
	flagRecent int
	flagBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Print the records of a variant",
	Long: `Prints the best scores, a summary of recorded play sessions and the
latest sessions of a variant.

With --browse the records open full screen instead, where every variant
can be paged through.

Examples:
  studio scores studio
  studio scores platformer --recent 10
  studio scores --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of best scores to show")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent sessions to show (0 hides them)")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse all records in the terminal UI")
}

func runScores(_ *cobra.Command, args []string) {
	if flagBrowse {
		browseScores()
		return
	}
	if len(args) == 0 {
		fail("a variant is required unless --browse is set")
	}
	variant := args[0]
	game, err := registry.Create(variant)
	if err != nil {
		fail("%v\nRun 'studio list' to see the variants.", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores(variant, flagTop)
	if err != nil {
		fail("reading scores: %v", err)
	}

	fmt.Println(headerStyle.Render(game.Title()))
	if len(scores) == 0 {
		fmt.Printf("No scores yet. Build a level with coins in 'studio play %s' and play it.\n", variant)
		return
	}

	top := newTable("#", "Score", "Date")
	for i, s := range scores {
		top.Row(fmt.Sprint(i+1), fmt.Sprint(s.Score), s.CreatedAt.Format(time.DateTime))
	}
	fmt.Println(top)

	if st, err := store.GetVariantStats(variant); err == nil && st.SessionCount > 0 {
		fmt.Printf("%d sessions, best %d, average %.1f, %d deaths, %d game overs\n",
			st.SessionCount, st.HighScore, st.AvgScore, st.TotalDeaths, st.GameOvers)
	}

	if flagRecent <= 0 {
		return
	}
	recent, err := store.RecentSessions(variant, flagRecent)
	if err != nil || len(recent) == 0 {
		return
	}
	sessions := newTable("When", "Player", "Score", "Deaths", "Time", "End")
	for _, s := range recent {
		end := "finished"
		if s.GameOver {
			end = "game over"
		}
		sessions.Row(s.CreatedAt.Format(time.DateTime), s.Player, fmt.Sprint(s.Score),
			fmt.Sprint(s.Deaths), s.Duration.Round(time.Second).String(), end)
	}
	fmt.Println(sessions)
}

func browseScores() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	cfg := runtimeConfig()
	if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
		fail("running scoreboard: %v", err)
	}
}
