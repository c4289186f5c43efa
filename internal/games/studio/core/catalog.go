package core

import (
	"fmt"
)

// EmptyID is the block id of an empty cell. Selecting it turns painting into erasing.
const EmptyID = "empty"

// GroundID is the block laid on the protected bottom row of the platformer.
const GroundID = "ground"

// BlockDef describes one paintable tile type and its gameplay flags.
// Definitions are plain values: a cell keeps its own copy.
type BlockDef struct {
	ID          string
	Name        string
	RenderClass string
	Solid       bool
	Hazard      bool
	Collectible bool
	Interactive bool
	Points      int
}

// Category groups block definitions for the palette.
type Category struct {
	Key    string
	Name   string
	Blocks []BlockDef
}

// Catalog is the immutable registry of block definitions.
type Catalog struct {
	categories []Category
	byID       map[string]BlockDef
	order      []string
}

// NewCatalog validates the categories and builds a catalog.
// Ids must be unique across all categories, points must be non-negative and a
// block may not be both collectible and a hazard.
func NewCatalog(categories []Category) (*Catalog, error) {
	c := &Catalog{
		byID: make(map[string]BlockDef),
	}

	for _, cat := range categories {
		blocks := make([]BlockDef, len(cat.Blocks))
		copy(blocks, cat.Blocks)

		for _, b := range blocks {
			if b.ID == "" {
				return nil, fmt.Errorf("catalog: block without id in category %q", cat.Name)
			}
			if b.ID == EmptyID {
				return nil, fmt.Errorf("catalog: id %q is reserved", EmptyID)
			}
			if _, dup := c.byID[b.ID]; dup {
				return nil, fmt.Errorf("catalog: duplicate block id %q", b.ID)
			}
			if b.Points < 0 {
				return nil, fmt.Errorf("catalog: block %q has negative points", b.ID)
			}
			if b.Collectible && b.Hazard {
				return nil, fmt.Errorf("catalog: block %q is both collectible and hazard", b.ID)
			}
			c.byID[b.ID] = b
			c.order = append(c.order, b.ID)
		}

		c.categories = append(c.categories, Category{Key: cat.Key, Name: cat.Name, Blocks: blocks})
	}

	return c, nil
}

// DefaultCategories returns the reference palette: terrain, interactive
// blocks and items.
func DefaultCategories() []Category {
	return []Category{
		{
			Key:  "terrain",
			Name: "Terrain",
			Blocks: []BlockDef{
				{ID: "wall", Name: "Wall", RenderClass: "wall", Solid: true},
				{ID: "water", Name: "Water", RenderClass: "water", Hazard: true},
				{ID: "grass", Name: "Grass", RenderClass: "grass"},
			},
		},
		{
			Key:  "interactive",
			Name: "Interactive",
			Blocks: []BlockDef{
				{ID: "door", Name: "Door", RenderClass: "door", Interactive: true},
				{ID: "key", Name: "Key", RenderClass: "key", Collectible: true},
			},
		},
		{
			Key:  "items",
			Name: "Items",
			Blocks: []BlockDef{
				{ID: "coin", Name: "Coin", RenderClass: "coin", Collectible: true, Points: 10},
				{ID: "gem", Name: "Gem", RenderClass: "gem", Collectible: true, Points: 50},
			},
		},
	}
}

// GroundBlock is the definition laid on the platformer's ground row.
func GroundBlock() BlockDef {
	return BlockDef{ID: GroundID, Name: "Ground", RenderClass: "ground", Solid: true}
}

// DefaultCatalog returns the reference catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultCategories())
	if err != nil {
		panic(err) // the reference palette is static and valid
	}
	return c
}

// Categories returns the palette categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Lookup returns the definition for id.
func (c *Catalog) Lookup(id string) (BlockDef, bool) {
	b, ok := c.byID[id]
	return b, ok
}

// Blocks returns every definition in palette order.
func (c *Catalog) Blocks() []BlockDef {
	out := make([]BlockDef, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the number of block definitions.
func (c *Catalog) Len() int {
	return len(c.order)
}
