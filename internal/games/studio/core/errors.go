package core

import "errors"

// Errors returned by studio operations. Every one of them is recoverable:
// the failing operation leaves all state unchanged.
var (
	// ErrOutOfBounds is returned for coordinates outside the grid extent.
	ErrOutOfBounds = errors.New("studio: coordinate out of bounds")

	// ErrNoBlockSelected is returned when painting without an active selection.
	ErrNoBlockSelected = errors.New("studio: no block selected")

	// ErrImmutableCell is returned when editing a reserved cell such as the ground row.
	ErrImmutableCell = errors.New("studio: cell cannot be edited")

	// ErrInvalidTransition is returned for commands that do not apply in the
	// current state (jumping while airborne, moving while editing).
	ErrInvalidTransition = errors.New("studio: invalid transition")

	// ErrUnknownBlock is returned when selecting an id missing from the catalog.
	ErrUnknownBlock = errors.New("studio: unknown block")
)
