package core

import "fmt"

// AnnouncementCategory classifies status feedback.
type AnnouncementCategory int

const (
	CategoryPlacement AnnouncementCategory = iota
	CategoryMovement
	CategoryBlocked
	CategoryModeChange
)

// String returns the category name.
func (c AnnouncementCategory) String() string {
	switch c {
	case CategoryPlacement:
		return "placement"
	case CategoryMovement:
		return "movement"
	case CategoryBlocked:
		return "blocked"
	case CategoryModeChange:
		return "mode"
	default:
		return "unknown"
	}
}

// CellContext identifies the cell an announcement is about.
type CellContext struct {
	X, Y int
	Type string
}

// Announcement is status feedback for the player, shown or spoken by the platform.
type Announcement struct {
	Category AnnouncementCategory
	Message  string
	Cell     *CellContext
}

// IsZero reports whether there is nothing to announce.
func (a Announcement) IsZero() bool {
	return a.Message == ""
}

// Announcer receives announcements. Implementations must not block;
// delivery is best-effort.
type Announcer interface {
	Announce(Announcement)
}

// SoundPlayer receives the "block placed" trigger. Volume is in [0, 1].
// Implementations must not block.
type SoundPlayer interface {
	BlockPlaced(volume float64)
}

// SessionResult summarises one play session.
type SessionResult struct {
	Score     int
	Lives     int
	Collected int
	Deaths    int
	Steps     int
	Ticks     int
	GameOver  bool
}

// SessionSink is told when a play session ends, either by toggling back to
// edit mode or by running out of lives.
type SessionSink interface {
	SessionEnded(SessionResult)
}

// placementMessage uses 1-based rows and columns like the on-screen rulers.
func placementMessage(name string, x, y int) string {
	return fmt.Sprintf("%s placed at row %d, column %d", name, y+1, x+1)
}

func positionMessage(p Coord) string {
	return fmt.Sprintf("Player at row %d, column %d", p.Y+1, p.X+1)
}

func cellContext(x, y int, c Cell) *CellContext {
	return &CellContext{X: x, Y: y, Type: c.Type}
}
