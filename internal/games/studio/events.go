package studio

import (
	platformcore "github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

// eventBuffer collects the studio's sink calls during one step so the
// platform can deliver them after Step returns.
type eventBuffer struct {
	events []platformcore.Event
}

func (b *eventBuffer) Announce(a core.Announcement) {
	b.events = append(b.events, platformcore.Event{
		Kind:     platformcore.EventAnnounce,
		Category: a.Category.String(),
		Message:  a.Message,
	})
}

func (b *eventBuffer) BlockPlaced(volume float64) {
	b.events = append(b.events, platformcore.Event{
		Kind:   platformcore.EventBlockPlaced,
		Volume: volume,
	})
}

func (b *eventBuffer) SessionEnded(r core.SessionResult) {
	b.events = append(b.events, platformcore.Event{
		Kind: platformcore.EventSessionEnded,
		Session: platformcore.SessionSummary{
			Score:     r.Score,
			Lives:     r.Lives,
			Collected: r.Collected,
			Deaths:    r.Deaths,
			Steps:     r.Steps,
			Ticks:     r.Ticks,
			GameOver:  r.GameOver,
		},
	})
}

func (b *eventBuffer) reset() {
	b.events = b.events[:0]
}

// drain returns the collected events; the buffer keeps no reference to them.
func (b *eventBuffer) drain() []platformcore.Event {
	if len(b.events) == 0 {
		return nil
	}
	out := make([]platformcore.Event, len(b.events))
	copy(out, b.events)
	return out
}
