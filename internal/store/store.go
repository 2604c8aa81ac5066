// Package store holds the dashboard's in-memory collections. A Store is the
// only place records are created or changed; every change is re-published to
// observers as a full copy of the affected collection.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrdash/internal/platform/events"
)

var (
	ErrStoreNotInitialized = errors.New("store not initialized")
	ErrStoreClosed         = fmt.Errorf("store closed: %w", ErrStoreNotInitialized)
	ErrAlreadyInitialized  = errors.New("store already initialized")
)

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithAvatarGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newAvatar = fn
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type Store struct {
	// publishMu serializes mutate-then-publish so observers see changes in
	// the order they were applied. It is always taken before mu.
	publishMu sync.Mutex
	mu        sync.RWMutex
	data      *Dataset
	closed    bool

	now       func() time.Time
	newID     func() string
	newAvatar func() string
	bus       *events.Bus
	logger    *slog.Logger
}

// New returns an empty store. It must be loaded before use.
func New(opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	s.newAvatar = s.defaultAvatar
	for _, opt := range opts {
		opt(s)
	}
	s.bus = events.NewBus(s.logger)
	return s
}

// Load installs the initial dataset. The store keeps its own copy.
func (s *Store) Load(ds Dataset) error {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if s.data != nil {
		return ErrAlreadyInitialized
	}
	loaded := ds.Clone()
	s.data = &loaded
	s.logger.Info("store loaded",
		"employees", len(loaded.Employees),
		"attendance", len(loaded.Attendance),
		"applicants", len(loaded.Applicants),
		"payroll", len(loaded.Payroll),
		"tasks", len(loaded.Tasks),
		"dayOffRequests", len(loaded.DayOffRequests),
		"timeTrackers", len(loaded.TimeTrackers),
	)
	return nil
}

// Close releases the data and every observer. It is safe to call twice.
func (s *Store) Close() error {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()
	s.mu.Lock()
	wasOpen := !s.closed
	s.closed = true
	s.data = nil
	s.mu.Unlock()

	s.bus.Close()
	if wasOpen {
		s.logger.Info("store closed")
	}
	return nil
}

func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data != nil
}

// Subscribe registers an observer for every later change and returns a func
// that removes it.
func (s *Store) Subscribe(o events.Observer) func() {
	return s.bus.Subscribe(o)
}

func (s *Store) Now() time.Time {
	return s.now()
}

// Snapshot returns a copy of every collection.
func (s *Store) Snapshot() (Dataset, error) {
	var out Dataset
	err := s.read(func(d *Dataset) {
		out = d.Clone()
	})
	return out, err
}

func (s *Store) unavailable() error {
	if s.closed {
		return ErrStoreClosed
	}
	return ErrStoreNotInitialized
}

func (s *Store) read(fn func(d *Dataset)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return s.unavailable()
	}
	fn(s.data)
	return nil
}

// mutate runs fn under the write lock and then publishes the resulting
// collection. fn returns the id of the touched record.
func (s *Store) mutate(collection events.Collection, action events.Action, fn func(d *Dataset) (string, error)) error {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	if s.data == nil {
		err := s.unavailable()
		s.mu.Unlock()
		return err
	}
	recordID, err := fn(s.data)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	event := events.Event{
		Collection: collection,
		Action:     action,
		RecordID:   recordID,
		At:         s.now(),
		Snapshot:   s.data.collection(collection),
	}
	s.mu.Unlock()

	s.bus.Publish(event)
	return nil
}

func (s *Store) defaultAvatar() string {
	return "https://i.pravatar.cc/256?u=" + uuid.NewString()
}
