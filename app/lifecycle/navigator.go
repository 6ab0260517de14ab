package lifecycle

import (
	"log/slog"
	"sync"
)

// HistoryNavigator is the in-process view history. Auth operations push
// their landing paths onto it; Back pops the stack and publishes the
// navigation event that triggers wholesale cache invalidation.
type HistoryNavigator struct {
	mu       sync.Mutex
	stack    []string
	notifier *Notifier
	logger   *slog.Logger
}

// NewHistoryNavigator creates a navigator rooted at the given path.
func NewHistoryNavigator(root string, notifier *Notifier, logger *slog.Logger) *HistoryNavigator {
	return &HistoryNavigator{
		stack:    []string{root},
		notifier: notifier,
		logger:   logger.With("component", "navigator"),
	}
}

// Push records a forward navigation to path.
func (n *HistoryNavigator) Push(path string) {
	n.mu.Lock()
	n.stack = append(n.stack, path)
	n.mu.Unlock()

	n.logger.Debug("navigated", "path", path)
}

// Current returns the path on top of the history stack.
func (n *HistoryNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Back pops the current path and publishes the navigation event. The
// root entry never pops.
func (n *HistoryNavigator) Back() string {
	n.mu.Lock()
	if len(n.stack) > 1 {
		n.stack = n.stack[:len(n.stack)-1]
	}
	current := n.stack[len(n.stack)-1]
	n.mu.Unlock()

	n.notifier.Publish(EventNavigated)
	return current
}
