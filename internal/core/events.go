package core

// EventKind identifies a side effect a game reports to the platform.
type EventKind int

const (
	// EventAnnounce carries status text for the player.
	EventAnnounce EventKind = iota
	// EventBlockPlaced asks for the placement sound.
	EventBlockPlaced
	// EventSessionEnded reports a finished play session for persistence.
	EventSessionEnded
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventAnnounce:
		return "announce"
	case EventBlockPlaced:
		return "blockPlaced"
	case EventSessionEnded:
		return "sessionEnded"
	default:
		return "unknown"
	}
}

// Event is a side effect produced by a game step. Games stay pure: they only
// describe what happened and the platform delivers it.
type Event struct {
	Kind     EventKind
	Category string  // announcement category
	Message  string  // announcement text
	Volume   float64 // EventBlockPlaced, 0.0 to 1.0
	Session  SessionSummary
}

// SessionSummary describes one finished play session.
type SessionSummary struct {
	Score     int
	Lives     int
	Collected int
	Deaths    int
	Steps     int
	Ticks     int
	GameOver  bool
}
