package events

import (
	"log/slog"
	"sort"
	"sync"
	"time"
)

type Collection string

const (
	CollectionEmployees      Collection = "employees"
	CollectionAttendance     Collection = "attendance"
	CollectionApplicants     Collection = "applicants"
	CollectionPayroll        Collection = "payroll"
	CollectionTasks          Collection = "tasks"
	CollectionDayOffRequests Collection = "dayOffRequests"
	CollectionTimeTrackers   Collection = "timeTrackers"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event announces that a collection changed. Snapshot holds the full
// collection as it stood right after the change.
type Event struct {
	Collection Collection `json:"collection"`
	Action     Action     `json:"action"`
	RecordID   string     `json:"recordId,omitempty"`
	At         time.Time  `json:"at"`
	Snapshot   any        `json:"snapshot,omitempty"`
}

type Observer interface {
	Observe(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// Bus delivers events to observers synchronously, in subscription order.
type Bus struct {
	mu        sync.RWMutex
	next      int
	observers map[int]Observer
	closed    bool
	logger    *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{observers: map[int]Observer{}, logger: logger}
}

// Subscribe registers o and returns a func that removes it. Subscribing to a
// closed bus is a no-op.
func (b *Bus) Subscribe(o Observer) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || o == nil {
		return func() {}
	}
	id := b.next
	b.next++
	b.observers[id] = o
	return func() {
		b.mu.Lock()
		delete(b.observers, id)
		b.mu.Unlock()
	}
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	ids := make([]int, 0, len(b.observers))
	for id := range b.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	targets := make([]Observer, 0, len(ids))
	for _, id := range ids {
		targets = append(targets, b.observers[id])
	}
	b.mu.RUnlock()

	for _, o := range targets {
		b.deliver(o, e)
	}
}

func (b *Bus) deliver(o Observer, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("observer panicked", "collection", e.Collection, "action", e.Action, "panic", r)
		}
	}()
	o.Observe(e)
}

func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.observers)
}

// Close drops every observer. Later publishes reach nobody.
func (b *Bus) Close() {
	b.mu.Lock()
	b.closed = true
	b.observers = map[int]Observer{}
	b.mu.Unlock()
}
