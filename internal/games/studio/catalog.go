package studio

import (
	"github.com/vovakirdan/tile-studio/internal/config"
	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

// BuildCatalog turns configured palette categories into a validated catalog.
func BuildCatalog(defs []config.CategoryDef) (*core.Catalog, error) {
	cats := make([]core.Category, 0, len(defs))
	for _, d := range defs {
		cat := core.Category{Key: d.Key, Name: d.Name}
		for _, b := range d.Blocks {
			cat.Blocks = append(cat.Blocks, core.BlockDef{
				ID:          b.ID,
				Name:        b.Name,
				RenderClass: b.RenderClass,
				Solid:       b.Solid,
				Hazard:      b.Hazard,
				Collectible: b.Collectible,
				Interactive: b.Interactive,
				Points:      b.Points,
			})
		}
		cats = append(cats, cat)
	}
	return core.NewCatalog(cats)
}
