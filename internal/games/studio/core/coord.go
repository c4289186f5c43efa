package core

import "fmt"

// Coord is a cell position; column X grows rightward and row Y downward.
type Coord struct {
	X, Y int
}

// C builds a Coord.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Add offsets c by dx columns and dy rows.
func (c Coord) Add(dx, dy int) Coord { return C(c.X+dx, c.Y+dy) }

// Step moves c one cell towards d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Dir is a move direction. DirNone means standing still.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

var dirInfo = [...]struct {
	name   string
	dx, dy int
}{
	DirNone:  {"None", 0, 0},
	DirUp:    {"Up", 0, -1},
	DirRight: {"Right", 1, 0},
	DirDown:  {"Down", 0, 1},
	DirLeft:  {"Left", -1, 0},
}

func (d Dir) String() string {
	if int(d) >= len(dirInfo) {
		return "None"
	}
	return dirInfo[d].name
}

// Delta returns the unit offset of d. Rows count downward, so DirUp is (0, -1).
func (d Dir) Delta() (dx, dy int) {
	if int(d) >= len(dirInfo) {
		return 0, 0
	}
	return dirInfo[d].dx, dirInfo[d].dy
}

// isCardinalStep reports whether (dx, dy) moves exactly one cell on one axis.
func isCardinalStep(dx, dy int) bool {
	return absInt(dx)+absInt(dy) == 1
}
