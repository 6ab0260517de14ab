package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryNavigator_PushAndBack(t *testing.T) {
	notifier := NewNotifier(testLogger())
	nav := NewHistoryNavigator("/login", notifier, testLogger())

	var events []Event
	notifier.Subscribe(func(e Event) { events = append(events, e) })

	nav.Push("/dashboard")
	nav.Push("/projects")
	assert.Equal(t, "/projects", nav.Current())
	assert.Empty(t, events, "forward navigation publishes nothing")

	assert.Equal(t, "/dashboard", nav.Back())
	assert.Equal(t, []Event{EventNavigated}, events, "going back fires the navigation event")
}

func TestHistoryNavigator_RootNeverPops(t *testing.T) {
	notifier := NewNotifier(testLogger())
	nav := NewHistoryNavigator("/login", notifier, testLogger())

	assert.Equal(t, "/login", nav.Back())
	assert.Equal(t, "/login", nav.Back())
	assert.Equal(t, "/login", nav.Current())
}
