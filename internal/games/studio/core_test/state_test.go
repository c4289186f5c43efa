package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

type recorder struct {
	announcements []core.Announcement
	placed        []float64
	sessions      []core.SessionResult
}

func (r *recorder) Announce(a core.Announcement)        { r.announcements = append(r.announcements, a) }
func (r *recorder) BlockPlaced(volume float64)          { r.placed = append(r.placed, volume) }
func (r *recorder) SessionEnded(res core.SessionResult) { r.sessions = append(r.sessions, res) }

func newStudio(t *testing.T) (*core.Studio, *recorder) {
	t.Helper()
	s := core.New(core.DefaultCatalog(), core.DefaultOptions())
	r := &recorder{}
	s.SetAnnouncer(r)
	s.SetSoundPlayer(r)
	s.SetSessionSink(r)
	return s, r
}

func mustDispatch(t *testing.T, s *core.Studio, cmd core.Command) core.Result {
	t.Helper()
	res := s.Dispatch(cmd)
	require.NoError(t, res.Err, "dispatch %v", cmd.Kind)
	return res
}

func TestScenarioWallBlocks(t *testing.T) {
	s, _ := newStudio(t)
	mustDispatch(t, s, core.SelectBlock("wall"))
	mustDispatch(t, s, core.PaintCell(2, 0))
	mustDispatch(t, s, core.ToggleMode())

	mustDispatch(t, s, core.MoveIntent(core.DirRight))
	res := mustDispatch(t, s, core.MoveIntent(core.DirRight))

	assert.False(t, res.Changed)
	assert.Equal(t, core.CategoryBlocked, res.Announcement.Category)
	a := s.Actor()
	assert.Equal(t, core.C(1, 0), a.Pos)
	assert.Equal(t, 3, a.Lives)
	assert.Equal(t, 0, a.Score)
}

func TestScenarioCoinCollected(t *testing.T) {
	s, _ := newStudio(t)
	mustDispatch(t, s, core.SelectBlock("coin"))
	mustDispatch(t, s, core.PaintCell(1, 0))
	mustDispatch(t, s, core.ToggleMode())

	mustDispatch(t, s, core.MoveIntent(core.DirRight))

	assert.Equal(t, core.C(1, 0), s.Actor().Pos)
	assert.Equal(t, 10, s.Actor().Score)
	assert.True(t, s.Grid().At(core.C(1, 0)).IsEmpty())

	// Back in the editor the coin is still there.
	mustDispatch(t, s, core.ToggleMode())
	assert.Equal(t, "coin", s.Grid().At(core.C(1, 0)).Type)
}

func TestScenarioWaterRespawns(t *testing.T) {
	s, _ := newStudio(t)
	mustDispatch(t, s, core.SelectBlock("water"))
	mustDispatch(t, s, core.PaintCell(3, 0))
	mustDispatch(t, s, core.ToggleMode())

	mustDispatch(t, s, core.MoveIntent(core.DirRight))
	mustDispatch(t, s, core.MoveIntent(core.DirRight))
	require.Equal(t, core.C(2, 0), s.Actor().Pos)

	mustDispatch(t, s, core.MoveIntent(core.DirRight))
	assert.Equal(t, core.C(0, 0), s.Actor().Pos)
	assert.Equal(t, 2, s.Actor().Lives)
}

func TestStudioRejectsCommandsForOtherMode(t *testing.T) {
	s, _ := newStudio(t)

	res := s.Dispatch(core.MoveIntent(core.DirRight))
	assert.ErrorIs(t, res.Err, core.ErrInvalidTransition)
	res = s.Dispatch(core.JumpRequest())
	assert.ErrorIs(t, res.Err, core.ErrInvalidTransition)

	mustDispatch(t, s, core.ToggleMode())
	for _, cmd := range []core.Command{
		core.SelectBlock("wall"),
		core.PaintCell(0, 0),
		core.Undo(),
		core.Redo(),
		core.ResetGrid(),
	} {
		res := s.Dispatch(cmd)
		assert.ErrorIs(t, res.Err, core.ErrInvalidTransition, cmd.Kind.String())
	}

	// Jumping is a platformer command.
	res = s.Dispatch(core.JumpRequest())
	assert.ErrorIs(t, res.Err, core.ErrInvalidTransition)
}

func TestStudioPlayResetsActor(t *testing.T) {
	s, _ := newStudio(t)
	mustDispatch(t, s, core.ToggleMode())
	mustDispatch(t, s, core.MoveIntent(core.DirDown))
	mustDispatch(t, s, core.ToggleMode())
	mustDispatch(t, s, core.ToggleMode())

	assert.Equal(t, core.NewActor(core.C(0, 0), 3), s.Actor())
}

func TestStudioSinks(t *testing.T) {
	s, r := newStudio(t)
	mustDispatch(t, s, core.SelectBlock("gem"))
	mustDispatch(t, s, core.PaintCell(1, 0))
	mustDispatch(t, s, core.PaintCell(1, 0))

	assert.Equal(t, []float64{1}, r.placed, "repainting the same cell plays no sound")

	s.SetVolume(0.5, true)
	mustDispatch(t, s, core.PaintCell(2, 0))
	assert.Len(t, r.placed, 1)

	mustDispatch(t, s, core.ToggleMode())
	mustDispatch(t, s, core.MoveIntent(core.DirRight))
	mustDispatch(t, s, core.ToggleMode())

	require.Len(t, r.sessions, 1)
	assert.Equal(t, 50, r.sessions[0].Score)
	assert.Equal(t, 1, r.sessions[0].Collected)
	assert.Equal(t, 1, r.sessions[0].Steps)
	assert.False(t, r.sessions[0].GameOver)

	last := r.announcements[len(r.announcements)-1]
	assert.Equal(t, core.CategoryModeChange, last.Category)
	assert.Equal(t, last, s.LastAnnouncement())
}

func TestStudioGameOver(t *testing.T) {
	opts := core.DefaultOptions()
	opts.Lives = 1
	s := core.New(core.DefaultCatalog(), opts)
	r := &recorder{}
	s.SetSessionSink(r)

	mustDispatch(t, s, core.SelectBlock("water"))
	mustDispatch(t, s, core.PaintCell(0, 1))
	mustDispatch(t, s, core.ToggleMode())
	mustDispatch(t, s, core.MoveIntent(core.DirDown))

	assert.True(t, s.GameOver())
	require.Len(t, r.sessions, 1)
	assert.True(t, r.sessions[0].GameOver)

	res := s.Dispatch(core.MoveIntent(core.DirRight))
	assert.ErrorIs(t, res.Err, core.ErrInvalidTransition)

	// Leaving play does not report the session twice.
	mustDispatch(t, s, core.ToggleMode())
	assert.Len(t, r.sessions, 1)
	assert.Equal(t, core.ModeEdit, s.Mode())
}

func TestStudioUndoRedoThroughDispatch(t *testing.T) {
	s, _ := newStudio(t)
	mustDispatch(t, s, core.SelectBlock("grass"))
	mustDispatch(t, s, core.PaintCell(4, 4))

	res := mustDispatch(t, s, core.Undo())
	assert.True(t, res.Changed)
	assert.True(t, s.Grid().At(core.C(4, 4)).IsEmpty())

	res = mustDispatch(t, s, core.Undo())
	assert.False(t, res.Changed)

	res = mustDispatch(t, s, core.Redo())
	assert.True(t, res.Changed)
	assert.Equal(t, "grass", s.Grid().At(core.C(4, 4)).Type)
}

func TestPlatformerStudio(t *testing.T) {
	opts := core.DefaultOptions()
	opts.Variant = core.VariantPlatformer
	s := core.New(core.DefaultCatalog(), opts)

	g := s.Grid()
	require.Equal(t, core.GroundID, g.At(core.C(0, g.Height()-1)).Type)

	res := s.Tick()
	assert.ErrorIs(t, res.Err, core.ErrInvalidTransition, "no physics in edit mode")

	mustDispatch(t, s, core.ToggleMode())

	// The actor falls from the spawn point onto the ground.
	for i := 0; i < g.Height(); i++ {
		s.Tick()
	}
	standRow := g.Height() - 2
	require.Equal(t, core.C(0, standRow), s.Actor().Pos)

	mustDispatch(t, s, core.JumpRequest())
	peak := standRow
	for i := 0; i < 10; i++ {
		s.Tick()
		if y := s.Actor().Pos.Y; y < peak {
			peak = y
		}
	}
	assert.Equal(t, standRow-opts.Physics.JumpHeight, peak)
	assert.Equal(t, standRow, s.Actor().Pos.Y)
	assert.False(t, s.Actor().Airborne)

	mustDispatch(t, s, core.MoveIntent(core.DirRight))
	s.Tick()
	s.Tick()
	mustDispatch(t, s, core.MoveIntent(core.DirNone))
	s.Tick()
	assert.Equal(t, core.C(2, standRow), s.Actor().Pos)

	res = s.Dispatch(core.MoveIntent(core.DirUp))
	assert.ErrorIs(t, res.Err, core.ErrInvalidTransition)
}
