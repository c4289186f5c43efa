package core

import (
	"fmt"
)

// Actor is the player-controlled entity during play.
type Actor struct {
	Pos   Coord
	Score int
	Lives int

	// Platformer state.
	VelY        float64
	Airborne    bool
	JumpOriginY int
	Intent      int // -1 left, 0 none, +1 right
}

// NewActor returns an actor at spawn with full lives and no score.
func NewActor(spawn Coord, lives int) Actor {
	return Actor{Pos: spawn, Lives: lives, JumpOriginY: spawn.Y}
}

// Outcome is the result category of a single movement attempt.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeBlocked
	OutcomeCollected
	OutcomeHazard
	OutcomeInteracted
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeCollected:
		return "collected"
	case OutcomeHazard:
		return "hazard"
	case OutcomeInteracted:
		return "interacted"
	default:
		return "unknown"
	}
}

// MoveResult describes the side effects of a movement attempt.
// The engine never writes the grid: Clear asks the grid owner to empty a
// collected cell.
type MoveResult struct {
	Outcome      Outcome
	Target       Coord
	Clear        *Coord
	Points       int
	Announcement Announcement
}

// Move resolves one cardinal step of the actor against the grid.
// Rules are checked in order and the first match wins: bounds, solid,
// collectible, hazard, plain move.
func Move(a Actor, g Grid, dx, dy int, spawn Coord) (Actor, MoveResult, error) {
	if !isCardinalStep(dx, dy) {
		return a, MoveResult{Outcome: OutcomeBlocked, Target: a.Pos},
			fmt.Errorf("move by (%d,%d): %w", dx, dy, ErrInvalidTransition)
	}

	target := a.Pos.Add(dx, dy)
	cell, err := g.Get(target.X, target.Y)
	if err != nil {
		return a, MoveResult{
			Outcome: OutcomeBlocked,
			Target:  target,
			Announcement: Announcement{
				Category: CategoryBlocked,
				Message:  "Edge of the world",
			},
		}, err
	}

	props := cell.Properties
	switch {
	case props.Solid:
		return a, MoveResult{
			Outcome: OutcomeBlocked,
			Target:  target,
			Announcement: Announcement{
				Category: CategoryBlocked,
				Message:  fmt.Sprintf("%s blocks the way", props.Name),
				Cell:     cellContext(target.X, target.Y, cell),
			},
		}, nil

	case props.Collectible:
		a.Score += props.Points
		a.Pos = target
		collected := target
		return a, MoveResult{
			Outcome: OutcomeCollected,
			Target:  target,
			Clear:   &collected,
			Points:  props.Points,
			Announcement: Announcement{
				Category: CategoryMovement,
				Message:  fmt.Sprintf("Picked up %s (+%d)", props.Name, props.Points),
				Cell:     cellContext(target.X, target.Y, cell),
			},
		}, nil

	case props.Hazard:
		a.Lives--
		a.Pos = spawn
		return a, MoveResult{
			Outcome: OutcomeHazard,
			Target:  target,
			Announcement: Announcement{
				Category: CategoryMovement,
				Message:  fmt.Sprintf("Ouch, %s! %d lives left", props.Name, a.Lives),
				Cell:     cellContext(target.X, target.Y, cell),
			},
		}, nil
	}

	a.Pos = target
	res := MoveResult{
		Outcome: OutcomeMoved,
		Target:  target,
		Announcement: Announcement{
			Category: CategoryMovement,
			Message:  positionMessage(target),
		},
	}
	if props.Interactive {
		res.Outcome = OutcomeInteracted
		res.Announcement.Message = fmt.Sprintf("%s reached at row %d, column %d", props.Name, target.Y+1, target.X+1)
		res.Announcement.Cell = cellContext(target.X, target.Y, cell)
	}
	return a, res, nil
}
