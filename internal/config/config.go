// Package config provides YAML-based studio configuration loading and
// difficulty presets.
package config

// StudioConfig contains all configuration for the level studio.
type StudioConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Actor   ActorConfig   `yaml:"actor"`
	History HistoryConfig `yaml:"history"`
	Physics PhysicsConfig `yaml:"physics"`
	Audio   AudioConfig   `yaml:"audio"`
	Catalog []CategoryDef `yaml:"catalog"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ActorConfig defines the player's starting state.
type ActorConfig struct {
	Lives  int `yaml:"lives"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// HistoryConfig bounds the undo log.
type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"` // 0 = unlimited
}

// PhysicsConfig defines platformer physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	JumpHeight   int     `yaml:"jump_height"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	StepEvery    int     `yaml:"step_every"` // platform ticks per physics step
}

// AudioConfig defines the "block placed" feedback.
type AudioConfig struct {
	Volume float64 `yaml:"volume"` // 0.0 to 1.0
	Muted  bool    `yaml:"muted"`
}

// CategoryDef is one palette category in YAML form.
type CategoryDef struct {
	Key    string     `yaml:"key"`
	Name   string     `yaml:"name"`
	Blocks []BlockDef `yaml:"blocks"`
}

// BlockDef is one block definition in YAML form.
type BlockDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	RenderClass string `yaml:"render_class"`
	Solid       bool   `yaml:"solid"`
	Hazard      bool   `yaml:"hazard"`
	Collectible bool   `yaml:"collectible"`
	Interactive bool   `yaml:"interactive"`
	Points      int    `yaml:"points"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a flag value to a preset. Unknown values are normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// Validate normalises out-of-range values in place.
func (c *StudioConfig) Validate() {
	def := DefaultStudioConfig()

	if c.Grid.Width < 2 {
		c.Grid.Width = def.Grid.Width
	}
	if c.Grid.Height < 2 {
		c.Grid.Height = def.Grid.Height
	}
	if c.Actor.Lives < 1 {
		c.Actor.Lives = def.Actor.Lives
	}
	if c.Actor.SpawnX < 0 || c.Actor.SpawnX >= c.Grid.Width {
		c.Actor.SpawnX = 0
	}
	if c.Actor.SpawnY < 0 || c.Actor.SpawnY >= c.Grid.Height {
		c.Actor.SpawnY = 0
	}
	if c.History.MaxEntries < 0 {
		c.History.MaxEntries = 0
	}
	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = def.Physics.Gravity
	}
	if c.Physics.JumpVelocity >= 0 {
		c.Physics.JumpVelocity = def.Physics.JumpVelocity
	}
	if c.Physics.JumpHeight < 1 {
		c.Physics.JumpHeight = def.Physics.JumpHeight
	}
	if c.Physics.MaxFallSpeed < 0 {
		c.Physics.MaxFallSpeed = 0
	}
	if c.Physics.StepEvery < 1 {
		c.Physics.StepEvery = def.Physics.StepEvery
	}
	if c.Audio.Volume < 0 {
		c.Audio.Volume = 0
	}
	if c.Audio.Volume > 1 {
		c.Audio.Volume = 1
	}
	if len(c.Catalog) == 0 {
		c.Catalog = def.Catalog
	}
}
