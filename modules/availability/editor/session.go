package editor

import (
	"context"
	"errors"
	"sync"
	"time"

	"recruit-api/core/logger"
	"recruit-api/modules/availability/entity"
)

var (
	ErrNotLoaded     = errors.New("availability has not been loaded")
	ErrLoadInFlight  = errors.New("a load is already in progress")
	ErrSaveInFlight  = errors.New("a save is already in progress")
	ErrSessionClosed = errors.New("editing session is closed")
)

//go:generate mockgen -source=session.go -destination=session_mock.go -package=editor

// Store reads and writes one user's availability record.
type Store interface {
	// Load returns nil, nil when the user has no availability yet.
	Load(ctx context.Context) (*entity.Availability, error)
	Save(ctx context.Context, set SaveSet) error
}

// Session sequences loads and saves for one editing session. Only one
// operation runs at a time, saves require a completed load, and results that
// arrive after Close are discarded.
type Session struct {
	mu       sync.Mutex
	store    Store
	grid     *Grid
	timeout  time.Duration
	defaults SlotDefaults

	record  *entity.Availability
	loaded  bool
	loading bool
	saving  bool
	closed  bool
}

func NewSession(store Store, grid *Grid, timeout time.Duration, defaults SlotDefaults) *Session {
	return &Session{
		store:    store,
		grid:     grid,
		timeout:  timeout,
		defaults: defaults,
	}
}

// Grid returns the grid being edited.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Record returns the last loaded record, or an empty one for a user with no
// availability yet.
func (s *Session) Record() *entity.Availability {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrSessionClosed
	case s.saving:
		s.mu.Unlock()
		return ErrSaveInFlight
	case s.loading:
		s.mu.Unlock()
		return ErrLoadInFlight
	}
	s.loading = true
	s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.store.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if s.closed {
		logger.Debug("Session:Load:Discarded")
		return ErrSessionClosed
	}
	if err != nil {
		logger.Error("Session:Load:Error", "error", err)
		return err
	}

	if rec == nil {
		rec = &entity.Availability{}
	}
	s.record = rec
	s.grid.Load(rec.FreeSlots, rec.OccupiedSlots, rec.BlackoutDates)
	s.loaded = true
	return nil
}

// Save serializes the grid and writes it. On failure the grid is left as is
// so the caller can retry.
func (s *Session) Save(ctx context.Context) (SaveSet, error) {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return SaveSet{}, ErrSessionClosed
	case s.loading:
		s.mu.Unlock()
		return SaveSet{}, ErrLoadInFlight
	case !s.loaded:
		s.mu.Unlock()
		return SaveSet{}, ErrNotLoaded
	case s.saving:
		s.mu.Unlock()
		return SaveSet{}, ErrSaveInFlight
	}
	s.saving = true
	set := s.grid.Serialize(s.defaults)
	s.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.store.Save(ctx, set)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false

	if err != nil {
		logger.Error("Session:Save:Error", "error", err)
		return SaveSet{}, err
	}
	return set, nil
}

// Close ends the session. A load still in flight is discarded when it returns.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *Session) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
