package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-studio/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the studio variants",
	Run:   runList,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// newTable returns a plain bordered table used by the listing commands.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()
	if len(variants) == 0 {
		fmt.Println("No variants registered.")
		return
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	t := newTable("ID", "Title", "Best")
	for _, v := range variants {
		best := "-"
		if store != nil {
			if score, err := store.HighScore(v.ID); err == nil && score > 0 {
				best = fmt.Sprint(score)
			}
		}
		t.Row(v.ID, v.Title, best)
	}
	fmt.Println(t)
	fmt.Println("Open one with 'studio play <id>'.")
}
