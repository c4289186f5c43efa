package core

import (
	"fmt"
	"math"
)

// PhysicsParams tunes the platformer simulation. Units are cells and ticks.
type PhysicsParams struct {
	Gravity      float64 // added to VelY every airborne tick
	JumpVelocity float64 // initial VelY of a jump, negative is up
	JumpHeight   int     // rows travelled from the launch row that end a jump
	MaxFallSpeed float64 // cap on downward VelY, 0 for none
}

// DefaultPhysics returns the reference tuning: a two-row capped jump arc.
func DefaultPhysics() PhysicsParams {
	return PhysicsParams{
		Gravity:      0.5,
		JumpVelocity: -1.5,
		JumpHeight:   2,
		MaxFallSpeed: 2,
	}
}

// TickResult collects what happened during one physics step.
type TickResult struct {
	Moves     []MoveResult
	Landed    bool
	Respawned bool
}

// Clears returns the cells collected during the tick.
func (r TickResult) Clears() []Coord {
	var out []Coord
	for _, m := range r.Moves {
		if m.Clear != nil {
			out = append(out, *m.Clear)
		}
	}
	return out
}

// Points returns the points gained during the tick.
func (r TickResult) Points() int {
	total := 0
	for _, m := range r.Moves {
		total += m.Points
	}
	return total
}

// Supported reports whether the actor stands on something: a solid cell
// directly below or the bottom edge of the grid.
func Supported(a Actor, g Grid) bool {
	below := a.Pos.Step(DirDown)
	cell, err := g.Get(below.X, below.Y)
	if err != nil {
		return true
	}
	return cell.Properties.Solid
}

// Jump starts a jump. It is only valid while the actor is not airborne and is
// standing on something.
func Jump(a Actor, g Grid, p PhysicsParams) (Actor, error) {
	if a.Airborne {
		return a, fmt.Errorf("jump while airborne: %w", ErrInvalidTransition)
	}
	if !Supported(a, g) {
		return a, fmt.Errorf("jump while falling: %w", ErrInvalidTransition)
	}
	a.Airborne = true
	a.JumpOriginY = a.Pos.Y
	a.VelY = p.JumpVelocity
	return a, nil
}

// SetIntent latches the horizontal direction: -1, 0 or +1.
func SetIntent(a Actor, dir int) Actor {
	switch {
	case dir < 0:
		a.Intent = -1
	case dir > 0:
		a.Intent = 1
	default:
		a.Intent = 0
	}
	return a
}

// Tick advances the platformer by one fixed step.
//
// Order within a step is fixed: the vertical move resolves before the
// horizontal one. Every single-cell move goes through Move, so solids block,
// collectibles are picked up and hazards respawn the actor. A jump ends when
// the actor is JumpHeight rows away from its launch row, when it lands on
// something while falling, or on a hazard.
func Tick(a Actor, g Grid, p PhysicsParams, spawn Coord) (Actor, TickResult) {
	var res TickResult

	step := func(dx, dy int) bool {
		next, mr, err := Move(a, g, dx, dy, spawn)
		a = next
		res.Moves = append(res.Moves, mr)
		if mr.Clear != nil {
			g, _ = g.Set(mr.Clear.X, mr.Clear.Y, EmptyCell())
		}
		if mr.Outcome == OutcomeHazard {
			a.Airborne = false
			a.VelY = 0
			a.JumpOriginY = a.Pos.Y
			res.Respawned = true
			return false
		}
		return err == nil && mr.Outcome != OutcomeBlocked
	}

	if a.Airborne {
		a.VelY += p.Gravity
		if p.MaxFallSpeed > 0 && a.VelY > p.MaxFallSpeed {
			a.VelY = p.MaxFallSpeed
		}

		n := int(math.Round(a.VelY))
		dir := 1
		if n < 0 {
			dir, n = -1, -n
		}
		for i := 0; i < n; i++ {
			if step(0, dir) {
				continue
			}
			if res.Respawned {
				break
			}
			a.VelY = 0
			if dir > 0 {
				a.Airborne = false
				res.Landed = true
			}
			break
		}

		if a.Airborne && absInt(a.Pos.Y-a.JumpOriginY) >= p.JumpHeight {
			a.Airborne = false
			a.VelY = 0
		}
	} else if !Supported(a, g) {
		step(0, 1)
	}

	if a.Intent != 0 && !res.Respawned {
		step(a.Intent, 0)
	}

	return a, res
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
