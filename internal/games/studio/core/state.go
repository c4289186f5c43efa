package core

import (
	"fmt"
)

// Variant selects the play rules.
type Variant int

const (
	// VariantTopDown moves the actor one cell per input in four directions.
	VariantTopDown Variant = iota
	// VariantPlatformer adds gravity, jumps and a protected ground row.
	VariantPlatformer
)

// String returns the variant name.
func (v Variant) String() string {
	if v == VariantPlatformer {
		return "platformer"
	}
	return "topdown"
}

// Mode is the top-level studio state.
type Mode int

const (
	ModeEdit Mode = iota
	ModePlay
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModePlay {
		return "play"
	}
	return "edit"
}

// Options configures a Studio.
type Options struct {
	Variant    Variant
	Width      int
	Height     int
	MaxHistory int
	Lives      int
	Spawn      Coord
	Physics    PhysicsParams
	Volume     float64
	Muted      bool
}

// DefaultOptions returns the reference setup: a 15x10 top-down studio with
// three lives and spawn at the origin.
func DefaultOptions() Options {
	return Options{
		Variant: VariantTopDown,
		Width:   15,
		Height:  10,
		Lives:   3,
		Physics: DefaultPhysics(),
		Volume:  1,
	}
}

// Studio is the single owner of all studio state: the editor (grid,
// history, selection), the mode and, during play, the actor and the play grid.
// It is not safe for concurrent use; the platform drives it from one loop.
type Studio struct {
	opts   Options
	editor *Editor

	mode     Mode
	actor    Actor
	play     Grid
	session  SessionResult
	gameOver bool

	last      Announcement
	announcer Announcer
	sound     SoundPlayer
	sessions  SessionSink
}

// New creates a studio in edit mode with an empty grid.
func New(catalog *Catalog, opts Options) *Studio {
	if opts.Lives < 1 {
		opts.Lives = 1
	}

	eo := EditorOptions{
		Width:      opts.Width,
		Height:     opts.Height,
		MaxHistory: opts.MaxHistory,
	}
	if opts.Variant == VariantPlatformer {
		ground := GroundBlock()
		eo.Ground = &ground
	}

	s := &Studio{
		opts:   opts,
		editor: NewEditor(catalog, eo),
	}
	g := s.editor.Grid()
	if !g.InBounds(opts.Spawn.X, opts.Spawn.Y) {
		s.opts.Spawn = C(0, 0)
	}
	s.actor = NewActor(s.opts.Spawn, opts.Lives)
	return s
}

// SetAnnouncer installs the announcement sink.
func (s *Studio) SetAnnouncer(a Announcer) {
	s.announcer = a
}

// SetSoundPlayer installs the audio sink.
func (s *Studio) SetSoundPlayer(p SoundPlayer) {
	s.sound = p
}

// SetSessionSink installs the play-session sink.
func (s *Studio) SetSessionSink(sink SessionSink) {
	s.sessions = sink
}

// SetVolume changes the block placed volume; volume <= 0 mutes.
func (s *Studio) SetVolume(volume float64, muted bool) {
	s.opts.Volume = volume
	s.opts.Muted = muted
}

// Dispatch applies one command and returns its effect.
// Commands that do not apply in the current mode are ignored and reported
// through Result.Err.
func (s *Studio) Dispatch(cmd Command) Result {
	switch cmd.Kind {
	case CmdToggleMode:
		return s.toggleMode()
	case CmdSelectBlock, CmdPaintCell, CmdUndo, CmdRedo, CmdResetGrid:
		if s.mode != ModeEdit {
			return s.ignore(cmd)
		}
		return s.edit(cmd)
	case CmdMoveIntent, CmdJump:
		if s.mode != ModePlay || s.gameOver {
			return s.ignore(cmd)
		}
		return s.control(cmd)
	}
	return s.ignore(cmd)
}

func (s *Studio) ignore(cmd Command) Result {
	return Result{Err: fmt.Errorf("%s in %s mode: %w", cmd.Kind, s.mode, ErrInvalidTransition)}
}

func (s *Studio) edit(cmd Command) Result {
	var (
		ann     Announcement
		err     error
		changed bool
	)

	switch cmd.Kind {
	case CmdSelectBlock:
		var def BlockDef
		def, err = s.editor.Select(cmd.BlockID)
		if err == nil {
			ann = Announcement{Category: CategoryPlacement, Message: def.Name + " selected"}
		}
	case CmdPaintCell:
		ann, err = s.editor.Paint(cmd.X, cmd.Y)
		// Paint stays silent when the cell already held the block.
		changed = err == nil && !ann.IsZero()
		if changed && s.sound != nil && !s.opts.Muted && s.opts.Volume > 0 {
			s.sound.BlockPlaced(s.opts.Volume)
		}
	case CmdUndo:
		ann, changed = s.editor.Undo()
	case CmdRedo:
		ann, changed = s.editor.Redo()
	case CmdResetGrid:
		ann = s.editor.Reset()
		changed = true
	}

	s.emit(ann)
	return Result{Changed: changed, Announcement: ann, Err: err}
}

func (s *Studio) control(cmd Command) Result {
	if cmd.Kind == CmdJump {
		if s.opts.Variant != VariantPlatformer {
			return s.ignore(cmd)
		}
		next, err := Jump(s.actor, s.play, s.opts.Physics)
		if err != nil {
			return Result{Err: err}
		}
		s.actor = next
		return Result{Changed: true}
	}

	if s.opts.Variant == VariantPlatformer {
		switch cmd.Dir {
		case DirLeft:
			s.actor = SetIntent(s.actor, -1)
		case DirRight:
			s.actor = SetIntent(s.actor, 1)
		case DirNone:
			s.actor = SetIntent(s.actor, 0)
		default:
			return s.ignore(cmd)
		}
		return Result{Changed: true}
	}

	dx, dy := cmd.Dir.Delta()
	next, mr, err := Move(s.actor, s.play, dx, dy, s.opts.Spawn)
	s.actor = next
	s.apply(mr)
	s.emit(mr.Announcement)
	s.checkLives()
	return Result{Changed: mr.Outcome != OutcomeBlocked, Announcement: mr.Announcement, Err: err}
}

// apply performs the grid mutation a movement requested and updates the
// session counters.
func (s *Studio) apply(mr MoveResult) {
	switch mr.Outcome {
	case OutcomeBlocked:
		return
	case OutcomeHazard:
		s.session.Deaths++
	case OutcomeCollected:
		s.session.Collected++
	}
	s.session.Steps++
	if mr.Clear != nil {
		if g, err := s.play.Set(mr.Clear.X, mr.Clear.Y, EmptyCell()); err == nil {
			s.play = g
		}
	}
}

// Tick advances the platformer physics by one step. It is a no-op outside
// play mode, for the top-down variant and after the session is over; the
// driver stops calling it once the mode leaves play.
func (s *Studio) Tick() Result {
	if s.mode != ModePlay || s.opts.Variant != VariantPlatformer || s.gameOver {
		return Result{Err: fmt.Errorf("tick in %s mode: %w", s.mode, ErrInvalidTransition)}
	}

	before := s.actor
	next, tr := Tick(s.actor, s.play, s.opts.Physics, s.opts.Spawn)
	s.actor = next
	s.session.Ticks++

	var ann Announcement
	for _, mr := range tr.Moves {
		s.apply(mr)
		if mr.Outcome != OutcomeMoved && !mr.Announcement.IsZero() && mr.Outcome != OutcomeBlocked {
			ann = mr.Announcement
		}
	}
	s.emit(ann)
	s.checkLives()

	return Result{Changed: s.actor != before || len(tr.Clears()) > 0, Announcement: ann}
}

func (s *Studio) checkLives() {
	if s.actor.Lives > 0 || s.gameOver {
		return
	}
	s.gameOver = true
	s.emit(Announcement{Category: CategoryModeChange, Message: fmt.Sprintf("Game over! Score: %d", s.actor.Score)})
	s.endSession()
}

func (s *Studio) toggleMode() Result {
	if s.mode == ModeEdit {
		s.mode = ModePlay
		s.actor = NewActor(s.opts.Spawn, s.opts.Lives)
		s.play = s.editor.Grid()
		s.session = SessionResult{}
		s.gameOver = false
		ann := Announcement{Category: CategoryModeChange, Message: "Play mode"}
		s.emit(ann)
		return Result{Changed: true, Announcement: ann}
	}

	if !s.gameOver {
		s.endSession()
	}
	s.mode = ModeEdit
	s.play = Grid{}
	ann := Announcement{Category: CategoryModeChange, Message: "Edit mode"}
	s.emit(ann)
	return Result{Changed: true, Announcement: ann}
}

func (s *Studio) endSession() {
	s.session.Score = s.actor.Score
	s.session.Lives = s.actor.Lives
	s.session.GameOver = s.gameOver
	if s.sessions != nil {
		s.sessions.SessionEnded(s.session)
	}
}

func (s *Studio) emit(a Announcement) {
	if a.IsZero() {
		return
	}
	s.last = a
	if s.announcer != nil {
		s.announcer.Announce(a)
	}
}

// Mode returns the current mode.
func (s *Studio) Mode() Mode {
	return s.mode
}

// Variant returns the play rules in use.
func (s *Studio) Variant() Variant {
	return s.opts.Variant
}

// Actor returns the actor state. Outside play it is the state the next
// session starts with.
func (s *Studio) Actor() Actor {
	return s.actor
}

// Grid returns the grid currently shown: the play grid during play and the
// edited grid otherwise.
func (s *Studio) Grid() Grid {
	if s.mode == ModePlay {
		return s.play
	}
	return s.editor.Grid()
}

// Editor exposes the editor for palette and history inspection.
func (s *Studio) Editor() *Editor {
	return s.editor
}

// GameOver reports whether the current play session ran out of lives.
func (s *Studio) GameOver() bool {
	return s.gameOver
}

// Session returns the running counters of the current play session.
func (s *Studio) Session() SessionResult {
	r := s.session
	r.Score = s.actor.Score
	r.Lives = s.actor.Lives
	r.GameOver = s.gameOver
	return r
}

// LastAnnouncement returns the most recent announcement.
func (s *Studio) LastAnnouncement() Announcement {
	return s.last
}

// Spawn returns the respawn point.
func (s *Studio) Spawn() Coord {
	return s.opts.Spawn
}

// Options returns the studio options.
func (s *Studio) Options() Options {
	return s.opts
}
