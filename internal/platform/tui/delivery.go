package tui

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/storage"
)

const defaultQueueSize = 64

// bell is the terminal bell, the only placement sound a terminal can make.
var bell = []byte("\a")

// Delivery identifies who produced a batch of events.
type Delivery struct {
	Variant string
	Player  string
	// Played is the wall time of the play session the batch closes, if any.
	Played time.Duration
}

type batch struct {
	Delivery
	events []core.Event
}

// DispatcherOptions configures the event sinks. Every sink is optional.
type DispatcherOptions struct {
	Logger    *log.Logger    // announcements at debug level
	Bell      io.Writer      // placement sound
	Store     *storage.Store // finished play sessions
	Metrics   *Metrics
	QueueSize int
}

// Dispatcher delivers step events to the sinks on its own goroutine.
// Deliver never blocks the tick loop; batches are dropped when the queue is
// full.
type Dispatcher struct {
	logger  *log.Logger
	bell    io.Writer
	store   *storage.Store
	metrics *Metrics

	queue chan batch
	done  chan struct{}
	once  sync.Once

	mu      sync.Mutex
	dropped int
	saved   []string
}

// NewDispatcher starts a dispatcher.
func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	size := opts.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	d := &Dispatcher{
		logger:  opts.Logger,
		bell:    opts.Bell,
		store:   opts.Store,
		metrics: opts.Metrics,
		queue:   make(chan batch, size),
		done:    make(chan struct{}),
	}
	go d.loop()
	return d
}

// Deliver queues the events of one step.
func (d *Dispatcher) Deliver(from Delivery, events []core.Event) {
	if len(events) == 0 {
		return
	}
	select {
	case d.queue <- batch{Delivery: from, events: events}:
	default:
		d.mu.Lock()
		d.dropped++
		d.mu.Unlock()
		d.metrics.eventDropped()
	}
}

// Close flushes queued events and stops the dispatcher.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
		<-d.done
	})
}

// Dropped returns how many batches were discarded.
func (d *Dispatcher) Dropped() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dropped
}

// SavedSessions returns the ids of the sessions persisted so far.
func (d *Dispatcher) SavedSessions() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.saved...)
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for b := range d.queue {
		for _, ev := range b.events {
			d.handle(b.Delivery, ev)
		}
	}
}

func (d *Dispatcher) handle(from Delivery, ev core.Event) {
	switch ev.Kind {
	case core.EventAnnounce:
		d.metrics.announced(ev.Category)
		if d.logger != nil {
			d.logger.Debug("announce", "variant", from.Variant, "category", ev.Category, "message", ev.Message)
		}

	case core.EventBlockPlaced:
		d.metrics.blockPlaced()
		if d.bell != nil && ev.Volume > 0 {
			//nolint:errcheck // Best-effort sound, editing continues regardless
			d.bell.Write(bell)
		}

	case core.EventSessionEnded:
		s := ev.Session
		d.metrics.sessionEnded(from.Variant, s.Score, s.GameOver)
		if d.store == nil {
			return
		}
		id, err := d.store.SaveSession(storage.SessionRecord{
			Variant:   from.Variant,
			Player:    from.Player,
			Score:     s.Score,
			Lives:     s.Lives,
			Collected: s.Collected,
			Deaths:    s.Deaths,
			Steps:     s.Steps,
			Ticks:     s.Ticks,
			GameOver:  s.GameOver,
			Duration:  from.Played,
		})
		if err != nil {
			if d.logger != nil {
				d.logger.Error("Failed to save session", "variant", from.Variant, "error", err)
			}
			return
		}
		d.mu.Lock()
		d.saved = append(d.saved, id)
		d.mu.Unlock()
		if d.logger != nil {
			d.logger.Info("Session saved", "id", id, "variant", from.Variant, "score", s.Score)
		}
	}
}
