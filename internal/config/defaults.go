package config

import (
	_ "embed"
)

//go:embed defaults/studio.yaml
var defaultStudioYAML []byte

// DefaultStudioConfig returns the default studio configuration.
func DefaultStudioConfig() StudioConfig {
	return StudioConfig{
		Grid: GridConfig{
			Width:  15,
			Height: 10,
		},
		Actor: ActorConfig{
			Lives: 3,
		},
		History: HistoryConfig{
			MaxEntries: 200,
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpVelocity: -1.5,
			JumpHeight:   2,
			MaxFallSpeed: 2,
			StepEvery:    6, // ~10 steps/sec at 60 FPS
		},
		Audio: AudioConfig{
			Volume: 0.5,
		},
		Catalog: []CategoryDef{
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
		},
	}
}

// DefaultYAML returns the embedded default studio YAML.
func DefaultYAML() []byte {
	return defaultStudioYAML
}
