package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

func TestDefaultCatalog(t *testing.T) {
	c := core.DefaultCatalog()

	assert.Equal(t, 7, c.Len())
	assert.Len(t, c.Categories(), 3)

	coin, ok := c.Lookup("coin")
	require.True(t, ok)
	assert.True(t, coin.Collectible)
	assert.Equal(t, 10, coin.Points)

	wall, ok := c.Lookup("wall")
	require.True(t, ok)
	assert.True(t, wall.Solid)

	water, ok := c.Lookup("water")
	require.True(t, ok)
	assert.True(t, water.Hazard)

	_, ok = c.Lookup(core.GroundID)
	assert.False(t, ok, "ground is not a palette block")
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name   string
		blocks []core.BlockDef
	}{
		{"missing id", []core.BlockDef{{Name: "Nameless"}}},
		{"reserved id", []core.BlockDef{{ID: core.EmptyID, Name: "Empty"}}},
		{"duplicate id", []core.BlockDef{{ID: "a", Name: "A"}, {ID: "a", Name: "A again"}}},
		{"negative points", []core.BlockDef{{ID: "debt", Name: "Debt", Collectible: true, Points: -5}}},
		{"collectible hazard", []core.BlockDef{{ID: "trap", Name: "Trap", Collectible: true, Hazard: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.NewCatalog([]core.Category{{Key: "k", Name: "K", Blocks: tt.blocks}})
			assert.Error(t, err)
		})
	}
}

func TestCatalogBlocksKeepPaletteOrder(t *testing.T) {
	c := core.DefaultCatalog()

	var ids []string
	for _, b := range c.Blocks() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"wall", "water", "grass", "door", "key", "coin", "gem"}, ids)
}
