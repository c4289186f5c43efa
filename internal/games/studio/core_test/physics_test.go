package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

func TestJumpArcReturnsToLaunchRow(t *testing.T) {
	g := core.NewGrid(10, 10)
	p := core.DefaultPhysics()
	a := core.NewActor(core.C(3, 9), 3)

	a, err := core.Jump(a, g, p)
	require.NoError(t, err)
	require.True(t, a.Airborne)

	rows := []int{a.Pos.Y}
	for i := 0; i < 20; i++ {
		a, _ = core.Tick(a, g, p, core.C(0, 0))
		rows = append(rows, a.Pos.Y)
	}

	peak := 9
	for _, y := range rows {
		if y < peak {
			peak = y
		}
	}
	assert.Less(t, peak, 9, "actor never left the launch row")
	assert.LessOrEqual(t, 9-peak, p.JumpHeight)

	// Rising strictly, then falling back.
	i := 1
	for ; rows[i] < rows[i-1]; i++ {
	}
	assert.Equal(t, peak, rows[i-1])
	for ; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i], rows[i-1])
	}

	assert.Equal(t, 9, a.Pos.Y)
	assert.False(t, a.Airborne)
	assert.Equal(t, 3, a.Pos.X)
}

func TestJumpRequiresSupport(t *testing.T) {
	g := core.NewGrid(5, 5)
	p := core.DefaultPhysics()

	floating := core.NewActor(core.C(2, 1), 3)
	_, err := core.Jump(floating, g, p)
	assert.ErrorIs(t, err, core.ErrInvalidTransition)

	g = place(t, 5, 5, map[core.Coord]core.BlockDef{core.C(2, 2): wallDef})
	standing := core.NewActor(core.C(2, 1), 3)
	_, err = core.Jump(standing, g, p)
	assert.NoError(t, err)
}

func TestJumpWhileAirborne(t *testing.T) {
	g := core.NewGrid(5, 5)
	p := core.DefaultPhysics()

	a, err := core.Jump(core.NewActor(core.C(0, 4), 3), g, p)
	require.NoError(t, err)

	_, err = core.Jump(a, g, p)
	assert.ErrorIs(t, err, core.ErrInvalidTransition)
}

func TestTickFallsUntilLanding(t *testing.T) {
	g := place(t, 3, 6, map[core.Coord]core.BlockDef{core.C(1, 4): wallDef})
	p := core.DefaultPhysics()
	a := core.NewActor(core.C(1, 0), 3)

	for i := 0; i < 10; i++ {
		a, _ = core.Tick(a, g, p, core.C(0, 0))
	}
	assert.Equal(t, core.C(1, 3), a.Pos)
	assert.True(t, core.Supported(a, g))
}

func TestTickHeadBump(t *testing.T) {
	g := place(t, 3, 4, map[core.Coord]core.BlockDef{core.C(1, 2): wallDef})
	p := core.DefaultPhysics()
	a := core.NewActor(core.C(1, 3), 3)

	a, err := core.Jump(a, g, p)
	require.NoError(t, err)

	a, res := core.Tick(a, g, p, core.C(0, 0))
	assert.Equal(t, core.C(1, 3), a.Pos)
	assert.Zero(t, a.VelY)
	assert.False(t, res.Landed)
}

func TestTickHorizontalIntent(t *testing.T) {
	g := place(t, 5, 2, map[core.Coord]core.BlockDef{core.C(3, 1): wallDef})
	p := core.DefaultPhysics()
	a := core.SetIntent(core.NewActor(core.C(0, 1), 3), 1)

	for i := 0; i < 5; i++ {
		a, _ = core.Tick(a, g, p, core.C(0, 0))
	}
	assert.Equal(t, core.C(2, 1), a.Pos, "the wall stops horizontal movement")

	a = core.SetIntent(a, 0)
	a, _ = core.Tick(a, g, p, core.C(0, 0))
	assert.Equal(t, core.C(2, 1), a.Pos)
}

func TestTickCollectsWhileFalling(t *testing.T) {
	g := place(t, 1, 4, map[core.Coord]core.BlockDef{core.C(0, 2): coinDef})
	p := core.DefaultPhysics()
	a := core.NewActor(core.C(0, 0), 3)

	var clears []core.Coord
	points := 0
	for i := 0; i < 4; i++ {
		var res core.TickResult
		a, res = core.Tick(a, g, p, core.C(0, 0))
		clears = append(clears, res.Clears()...)
		points += res.Points()
		for _, c := range res.Clears() {
			g, _ = g.Set(c.X, c.Y, core.EmptyCell())
		}
	}

	assert.Equal(t, []core.Coord{core.C(0, 2)}, clears)
	assert.Equal(t, 10, points)
	assert.Equal(t, 10, a.Score)
	assert.Equal(t, core.C(0, 3), a.Pos)
}

func TestTickHazardCancelsJump(t *testing.T) {
	g := place(t, 3, 4, map[core.Coord]core.BlockDef{core.C(2, 2): waterDef})
	p := core.DefaultPhysics()
	a := core.NewActor(core.C(2, 3), 3)

	a, err := core.Jump(a, g, p)
	require.NoError(t, err)

	a, res := core.Tick(a, g, p, core.C(0, 3))
	assert.True(t, res.Respawned)
	assert.False(t, a.Airborne)
	assert.Equal(t, core.C(0, 3), a.Pos)
	assert.Equal(t, 2, a.Lives)
}
