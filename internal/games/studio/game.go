// Package studio provides the tile level studio: paint a grid from a block
// palette, then play it as a top-down walker or a platformer.
package studio

import (
	"fmt"

	"github.com/vovakirdan/tile-studio/internal/config"
	platformcore "github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
	"github.com/vovakirdan/tile-studio/internal/registry"
)

// Game adapts a core.Studio to the platform: it owns the input adapter state
// (cursor, drag painting, palette index) and draws the studio.
type Game struct {
	id      string
	title   string
	variant core.Variant

	cfg     config.StudioConfig
	catalog *core.Catalog
	studio  *core.Studio
	events  *eventBuffer

	// Palette entries in display order; index 0 is the eraser.
	palette    []core.BlockDef
	paletteIdx int

	// Input adapter state
	cursor  core.Coord
	drawing bool
	intent  core.Dir

	tick   uint64
	status string
	layout layout

	screenW int
	screenH int
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	audioOverride    *config.AudioConfig
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = config.ParsePreset(preset)
}

// SetAudio overrides the configured placement sound settings.
func SetAudio(volume float64, muted bool) {
	audioOverride = &config.AudioConfig{Volume: volume, Muted: muted}
}

func init() {
	registry.Register("studio", func() registry.Game {
		return New(core.VariantTopDown)
	})
	registry.Register("platformer", func() registry.Game {
		return New(core.VariantPlatformer)
	})
}

// New creates a studio game for the given variant.
func New(variant core.Variant) *Game {
	g := &Game{variant: variant}
	if variant == core.VariantPlatformer {
		g.id, g.title = "platformer", "Platformer Studio"
	} else {
		g.id, g.title = "studio", "Level Studio"
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the studio with a blank grid.
func (g *Game) Reset(rt platformcore.RuntimeConfig) {
	cfg, err := config.LoadStudio(configPath)
	if err != nil {
		cfg = config.DefaultStudioConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if audioOverride != nil {
		cfg.Audio = *audioOverride
		cfg.Validate()
	}
	g.Configure(cfg)
	g.Resize(rt.ScreenW, rt.ScreenH)
}

// Configure rebuilds the studio from cfg. A catalog that fails validation
// falls back to the reference palette.
func (g *Game) Configure(cfg config.StudioConfig) {
	cfg.Validate()
	g.cfg = cfg

	catalog, err := BuildCatalog(cfg.Catalog)
	if err != nil {
		catalog = core.DefaultCatalog()
	}
	g.catalog = catalog

	g.studio = core.New(catalog, core.Options{
		Variant:    g.variant,
		Width:      cfg.Grid.Width,
		Height:     cfg.Grid.Height,
		MaxHistory: cfg.History.MaxEntries,
		Lives:      cfg.Actor.Lives,
		Spawn:      core.C(cfg.Actor.SpawnX, cfg.Actor.SpawnY),
		Physics: core.PhysicsParams{
			Gravity:      cfg.Physics.Gravity,
			JumpVelocity: cfg.Physics.JumpVelocity,
			JumpHeight:   cfg.Physics.JumpHeight,
			MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		},
		Volume: cfg.Audio.Volume,
		Muted:  cfg.Audio.Muted,
	})

	g.events = &eventBuffer{}
	g.studio.SetAnnouncer(g.events)
	g.studio.SetSoundPlayer(g.events)
	g.studio.SetSessionSink(g.events)

	eraser := core.BlockDef{ID: core.EmptyID, Name: "Eraser"}
	g.palette = append([]core.BlockDef{eraser}, catalog.Blocks()...)
	g.paletteIdx = -1

	g.cursor = core.C(0, 0)
	g.drawing = false
	g.intent = core.DirNone
	g.tick = 0
	g.status = "Select a block and paint"
	if err != nil {
		g.status = fmt.Sprintf("Catalog error, using defaults: %v", err)
	}
}

// Resize recomputes the layout for a new screen size without touching the level.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.layout = computeLayout(w, h, g.studio.Grid(), g.catalog)
}

// Step advances the studio by one platform tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.events.reset()

	if in.Has(platformcore.ActionToggleMode) {
		g.dispatch(core.ToggleMode())
		g.drawing = false
		g.intent = core.DirNone
	}

	if g.studio.Mode() == core.ModeEdit {
		g.stepEdit(in)
	} else {
		g.stepPlay(in)
	}

	return platformcore.StepResult{
		State:  g.State(),
		Status: g.latestStatus(),
		Events: g.events.drain(),
	}
}

func (g *Game) stepEdit(in platformcore.InputFrame) {
	if in.Slot > 0 {
		g.selectPalette(in.Slot - 1)
	}
	if in.Has(platformcore.ActionNextBlock) {
		g.selectPalette(g.paletteIdx + 1)
	}
	if in.Has(platformcore.ActionPrevBlock) {
		idx := g.paletteIdx - 1
		if idx < 0 {
			idx = len(g.palette) - 1
		}
		g.selectPalette(idx)
	}

	if in.Has(platformcore.ActionUndo) {
		g.dispatch(core.Undo())
	}
	if in.Has(platformcore.ActionRedo) {
		g.dispatch(core.Redo())
	}
	if in.Has(platformcore.ActionReset) {
		g.dispatch(core.ResetGrid())
	}

	grid := g.studio.Grid()
	dx, dy := 0, 0
	if in.Has(platformcore.ActionUp) {
		dy--
	}
	if in.Has(platformcore.ActionDown) {
		dy++
	}
	if in.Has(platformcore.ActionLeft) {
		dx--
	}
	if in.Has(platformcore.ActionRight) {
		dx++
	}
	g.cursor = core.C(
		platformcore.Clamp(g.cursor.X+dx, 0, grid.Width()-1),
		platformcore.Clamp(g.cursor.Y+dy, 0, grid.Height()-1),
	)

	if in.Has(platformcore.ActionConfirm) {
		g.dispatch(core.PaintCell(g.cursor.X, g.cursor.Y))
	}

	for _, p := range in.Pointers {
		g.pointer(p)
	}
}

// pointer handles one mouse event: palette clicks select, presses and drags
// over the grid paint.
func (g *Game) pointer(p platformcore.PointerEvent) {
	switch p.Kind {
	case platformcore.PointerPress:
		if idx, ok := g.layout.PaletteAt(p.X, p.Y); ok {
			g.selectPalette(idx)
			return
		}
		if c, ok := g.layout.CellAt(p.X, p.Y); ok {
			g.drawing = true
			g.cursor = c
			g.dispatch(core.PaintCell(c.X, c.Y))
		}
	case platformcore.PointerMotion:
		if !g.drawing {
			return
		}
		if c, ok := g.layout.CellAt(p.X, p.Y); ok {
			g.cursor = c
			g.dispatch(core.PaintCell(c.X, c.Y))
		}
	case platformcore.PointerRelease:
		g.drawing = false
	}
}

func (g *Game) stepPlay(in platformcore.InputFrame) {
	if g.variant == core.VariantPlatformer {
		dir := core.DirNone
		if in.Has(platformcore.ActionLeft) {
			dir = core.DirLeft
		}
		if in.Has(platformcore.ActionRight) {
			dir = core.DirRight
		}
		if dir != g.intent {
			g.intent = dir
			g.dispatch(core.MoveIntent(dir))
		}
		if in.Has(platformcore.ActionJump) || in.Has(platformcore.ActionUp) {
			g.dispatch(core.JumpRequest())
		}

		every := uint64(g.cfg.Physics.StepEvery)
		if every > 0 && g.tick%every == 0 {
			g.studio.Tick()
		}
		return
	}

	for _, d := range []struct {
		action platformcore.Action
		dir    core.Dir
	}{
		{platformcore.ActionUp, core.DirUp},
		{platformcore.ActionDown, core.DirDown},
		{platformcore.ActionLeft, core.DirLeft},
		{platformcore.ActionRight, core.DirRight},
	} {
		if in.Has(d.action) {
			g.dispatch(core.MoveIntent(d.dir))
		}
	}
}

func (g *Game) selectPalette(idx int) {
	if len(g.palette) == 0 {
		return
	}
	idx = ((idx % len(g.palette)) + len(g.palette)) % len(g.palette)
	if res := g.dispatch(core.SelectBlock(g.palette[idx].ID)); res.Err == nil {
		g.paletteIdx = idx
	}
}

func (g *Game) dispatch(cmd core.Command) core.Result {
	return g.studio.Dispatch(cmd)
}

func (g *Game) latestStatus() string {
	if a := g.studio.LastAnnouncement(); !a.IsZero() {
		g.status = a.Message
	}
	return g.status
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	a := g.studio.Actor()
	h := g.studio.Editor().History()
	play := g.studio.Mode() == core.ModePlay
	return platformcore.GameState{
		Score:     a.Score,
		Lives:     a.Lives,
		Mode:      g.studio.Mode().String(),
		GameOver:  g.studio.GameOver(),
		Paused:    !play,
		CanUndo:   h.CanUndo(),
		CanRedo:   h.CanRedo(),
		HoldInput: play && g.variant == core.VariantPlatformer,
	}
}

// Studio exposes the underlying studio, mainly for tests.
func (g *Game) Studio() *core.Studio {
	return g.studio
}

// Cursor returns the editor cursor position.
func (g *Game) Cursor() core.Coord {
	return g.cursor
}

// Drawing reports whether a mouse drag is painting.
func (g *Game) Drawing() bool {
	return g.drawing
}

// Palette returns the palette entries, eraser first.
func (g *Game) Palette() []core.BlockDef {
	return append([]core.BlockDef(nil), g.palette...)
}
