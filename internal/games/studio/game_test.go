package studio

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tile-studio/internal/config"
	platformcore "github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
	"github.com/vovakirdan/tile-studio/internal/registry"
)

func newTestGame(t *testing.T, variant core.Variant) *Game {
	t.Helper()
	g := New(variant)
	g.Configure(config.DefaultStudioConfig())
	g.Resize(80, 24)
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"studio", "platformer"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}
}

func TestKeyboardPaint(t *testing.T) {
	g := newTestGame(t, core.VariantTopDown)

	f := frame(platformcore.ActionRight, platformcore.ActionDown)
	f.SelectSlot(2) // wall
	g.Step(f)

	res := g.Step(frame(platformcore.ActionConfirm))

	if got := g.Studio().Grid().At(core.C(1, 1)).Type; got != "wall" {
		t.Fatalf("expected wall at (1,1), got %q", got)
	}
	if res.Status != "Wall placed at row 2, column 2" {
		t.Errorf("unexpected status %q", res.Status)
	}
	if !res.State.CanUndo || res.State.CanRedo {
		t.Errorf("undo/redo flags wrong: %+v", res.State)
	}

	var placed, announced bool
	for _, e := range res.Events {
		switch e.Kind {
		case platformcore.EventBlockPlaced:
			placed = true
			if e.Volume != g.cfg.Audio.Volume {
				t.Errorf("volume %v, want %v", e.Volume, g.cfg.Audio.Volume)
			}
		case platformcore.EventAnnounce:
			announced = true
		}
	}
	if !placed || !announced {
		t.Errorf("expected sound and announcement events, got %+v", res.Events)
	}
}

func TestCursorStaysOnGrid(t *testing.T) {
	g := newTestGame(t, core.VariantTopDown)

	g.Step(frame(platformcore.ActionUp, platformcore.ActionLeft))
	if g.Cursor() != core.C(0, 0) {
		t.Errorf("cursor left the grid: %v", g.Cursor())
	}

	for i := 0; i < 40; i++ {
		g.Step(frame(platformcore.ActionRight, platformcore.ActionDown))
	}
	if g.Cursor() != core.C(14, 9) {
		t.Errorf("expected cursor at (14,9), got %v", g.Cursor())
	}
}

func TestDragPaint(t *testing.T) {
	g := newTestGame(t, core.VariantTopDown)
	g.selectPalette(1)

	f := platformcore.NewInputFrame()
	for x := 1; x <= 3; x++ {
		sx, sy := g.layout.cellScreen(core.C(x, 0))
		kind := platformcore.PointerMotion
		if x == 1 {
			kind = platformcore.PointerPress
		}
		f.AddPointer(platformcore.PointerEvent{Kind: kind, X: sx, Y: sy})
	}
	g.Step(f)

	if !g.Drawing() {
		t.Error("expected drag painting to be active")
	}
	grid := g.Studio().Grid()
	for x := 1; x <= 3; x++ {
		if grid.At(core.C(x, 0)).Type != "wall" {
			t.Errorf("cell (%d,0) not painted", x)
		}
	}
	if n := g.Studio().Editor().History().Len(); n != 4 {
		t.Errorf("expected 4 history entries, got %d", n)
	}

	f = platformcore.NewInputFrame()
	f.AddPointer(platformcore.PointerEvent{Kind: platformcore.PointerRelease})
	sx, sy := g.layout.cellScreen(core.C(5, 0))
	f.AddPointer(platformcore.PointerEvent{Kind: platformcore.PointerMotion, X: sx, Y: sy})
	g.Step(f)

	if g.Drawing() {
		t.Error("release should stop drag painting")
	}
	if !g.Studio().Grid().At(core.C(5, 0)).IsEmpty() {
		t.Error("motion after release must not paint")
	}
}

func TestPaletteClick(t *testing.T) {
	g := newTestGame(t, core.VariantTopDown)

	var coinLine paletteLine
	for _, line := range g.layout.lines {
		if line.label == "Coin" {
			coinLine = line
		}
	}

	f := platformcore.NewInputFrame()
	f.AddPointer(platformcore.PointerEvent{Kind: platformcore.PointerPress, X: g.layout.paletteX + 2, Y: coinLine.y})
	g.Step(f)

	sel := g.Studio().Editor().Selected()
	if sel == nil || sel.ID != "coin" {
		t.Fatalf("expected coin selected, got %+v", sel)
	}
	if g.Drawing() {
		t.Error("palette click must not start painting")
	}
}

func TestPlayTopDown(t *testing.T) {
	g := newTestGame(t, core.VariantTopDown)
	f := frame(platformcore.ActionRight, platformcore.ActionConfirm)
	f.SelectSlot(7) // coin
	g.Step(f)

	res := g.Step(frame(platformcore.ActionToggleMode))
	if res.State.Mode != "play" {
		t.Fatalf("expected play mode, got %q", res.State.Mode)
	}

	res = g.Step(frame(platformcore.ActionRight))
	if res.State.Score != 10 {
		t.Errorf("expected score 10, got %d", res.State.Score)
	}

	res = g.Step(frame(platformcore.ActionToggleMode))
	var ended *platformcore.SessionSummary
	for _, e := range res.Events {
		if e.Kind == platformcore.EventSessionEnded {
			s := e.Session
			ended = &s
		}
	}
	if ended == nil || ended.Score != 10 || ended.Collected != 1 {
		t.Errorf("expected session end with score 10, got %+v", ended)
	}
}

func TestPlatformerPhysicsRate(t *testing.T) {
	g := newTestGame(t, core.VariantPlatformer)
	g.Step(frame(platformcore.ActionToggleMode))

	every := g.cfg.Physics.StepEvery
	start := g.Studio().Actor().Pos
	for i := 1; i < every-1; i++ {
		g.Step(platformcore.NewInputFrame())
	}
	if g.Studio().Actor().Pos != start {
		t.Fatal("physics ran before step_every ticks")
	}
	g.Step(platformcore.NewInputFrame())
	if g.Studio().Actor().Pos.Y != start.Y+1 {
		t.Errorf("expected one row of fall, got %v", g.Studio().Actor().Pos)
	}
}

func TestPlatformerIntentRelease(t *testing.T) {
	g := newTestGame(t, core.VariantPlatformer)
	g.Step(frame(platformcore.ActionToggleMode))

	g.Step(frame(platformcore.ActionRight))
	if g.Studio().Actor().Intent != 1 {
		t.Fatalf("expected right intent, got %d", g.Studio().Actor().Intent)
	}
	g.Step(platformcore.NewInputFrame())
	if g.Studio().Actor().Intent != 0 {
		t.Errorf("intent should be released, got %d", g.Studio().Actor().Intent)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, core.VariantTopDown)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Level Studio", "EDIT", "Palette", "Eraser", "Terrain", "Gem"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.Step(frame(platformcore.ActionToggleMode))
	g.Render(screen)
	sx, sy := g.layout.cellScreen(core.C(0, 0))
	if screen.Get(sx, sy) != ActorChar {
		t.Errorf("expected actor at spawn, got %q", screen.Get(sx, sy))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, core.VariantTopDown)
	g.Resize(30, 10)

	screen := platformcore.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too small message")
	}
}
