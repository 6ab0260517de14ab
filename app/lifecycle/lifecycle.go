// Package lifecycle carries the host-page events that drive wholesale
// cache invalidation and session recovery: back/forward navigation and a
// tab regaining visibility after an idle period.
package lifecycle

import (
	"log/slog"
	"sync"
)

// Event is a host-page lifecycle transition.
type Event string

const (
	// EventNavigated fires on browser-level back/forward navigation.
	EventNavigated Event = "navigated"
	// EventVisible fires when the tab regains visibility.
	EventVisible Event = "visible"
)

// Notifier fans lifecycle events out to its subscribers in registration
// order.
type Notifier struct {
	mu     sync.Mutex
	subs   map[int]func(Event)
	order  []int
	nextID int
	logger *slog.Logger
}

// NewNotifier creates a new Notifier instance
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{
		subs:   make(map[int]func(Event)),
		logger: logger.With("component", "lifecycle"),
	}
}

// Subscribe registers a handler for every published event and returns its
// cancel function.
func (n *Notifier) Subscribe(fn func(Event)) (cancel func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.order = append(n.order, id)
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Publish delivers the event to all current subscribers.
func (n *Notifier) Publish(event Event) {
	n.mu.Lock()
	fns := make([]func(Event), 0, len(n.subs))
	for _, id := range n.order {
		if fn, ok := n.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	n.mu.Unlock()

	n.logger.Debug("lifecycle event", "event", event, "subscribers", len(fns))
	for _, fn := range fns {
		fn(event)
	}
}
