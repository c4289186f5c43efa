package core

// RuntimeConfig is what the platform tells a game about its surroundings:
// the screen area it may draw on and how often Step is called.
type RuntimeConfig struct {
	ScreenW, ScreenH int
	TickRate         int   // Step calls per second
	Seed             int64 // zero lets the platform pick one
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the summary of a game the platform needs for its help bar,
// hold handling and session bookkeeping.
type GameState struct {
	Score    int
	Lives    int
	Mode     string // "edit" or "play"
	GameOver bool
	Paused   bool // simulation frozen, true while editing
	CanUndo  bool
	CanRedo  bool
	// HoldInput asks the platform to repeat direction actions every tick
	// while the key is held, rather than once per key press.
	HoldInput bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Status is the latest announcement text, empty when nothing new happened.
	Status string
	// Events are the side effects produced during this tick, in order.
	Events []Event
}
