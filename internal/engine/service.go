package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultStateKey embeds the schema version so incompatible blobs never collide.
const DefaultStateKey = "missions_v5"

// StateStore persists one blob per key. Load returns (nil, nil) when the key
// has never been written.
type StateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// RevisionReader is implemented by stores that stamp every save, letting the
// service notice a second writer between its load and its save.
type RevisionReader interface {
	Revision(ctx context.Context, key string) (string, error)
}

// Service owns the progress state. All mutations go through it and are
// persisted immediately.
type Service struct {
	store    StateStore
	key      string
	clock    Clock
	schedule Schedule
	log      *zap.Logger

	state    State
	catalog  []Mission
	loaded   bool
	revision string
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithSchedule(sch Schedule) Option {
	return func(s *Service) { s.schedule = sch }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithStateKey(key string) Option {
	return func(s *Service) { s.key = key }
}

func NewService(store StateStore, opts ...Option) *Service {
	s := &Service{
		store: store,
		key:   DefaultStateKey,
		clock: RealClock{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Now() time.Time      { return s.clock.Now() }
func (s *Service) Schedule() Schedule  { return s.schedule }
func (s *Service) Catalog() []Mission  { return s.catalog }
func (s *Service) State() State        { return s.state.Clone() }
func (s *Service) StateKey() string    { return s.key }
func (s *Service) Logger() *zap.Logger { return s.log }

// Load reads the persisted blob. existed is false when nothing was stored or
// the blob could not be decoded; in both cases the state is DefaultState.
func (s *Service) Load(ctx context.Context) (st State, existed bool, err error) {
	now := s.clock.Now()
	blob, err := s.store.Load(ctx, s.key)
	if err != nil {
		return State{}, false, fmt.Errorf("load state: %w", err)
	}
	if rr, ok := s.store.(RevisionReader); ok {
		rev, err := rr.Revision(ctx, s.key)
		if err != nil {
			return State{}, false, fmt.Errorf("load state revision: %w", err)
		}
		s.revision = rev
	}

	st = DefaultState(now)
	if blob != nil {
		decoded, err := DecodeState(blob)
		if err != nil {
			s.log.Warn("discarding unreadable state", zap.String("key", s.key), zap.Error(err))
		} else {
			st = decoded
			existed = true
		}
	}
	s.state = st
	s.loaded = true
	return st.Clone(), existed, nil
}

// Reconcile reloads the persisted state and applies reset decisions and key
// accrual for the given catalog. The result is persisted only when something
// changed or no prior state existed.
func (s *Service) Reconcile(ctx context.Context, missions []Mission) (State, ReconcileResult, error) {
	st, existed, err := s.Load(ctx)
	if err != nil {
		return State{}, ReconcileResult{}, err
	}
	s.catalog = missions

	now := s.clock.Now()
	next, res := s.schedule.Reconcile(missions, st, now)
	s.state = next

	if len(res.Cleared) > 0 {
		s.log.Info("cleared expired completions", zap.Strings("keys", res.Cleared))
	}
	if res.Increments > 0 {
		s.log.Info("accrued key stock", zap.Int("increments", res.Increments))
	}
	if res.Changed() || !existed {
		if err := s.persist(ctx); err != nil {
			return State{}, res, err
		}
	}
	return next.Clone(), res, nil
}

// Toggle flips a completion key at the current instant.
func (s *Service) Toggle(ctx context.Context, key string) (State, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return State{}, err
	}
	return s.apply(ctx, s.state.Toggle(key, s.clock.Now()))
}

// Undo reverses the most recent completion. It is a no-op, without a save,
// when the history is empty.
func (s *Service) Undo(ctx context.Context) (State, string, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return State{}, "", err
	}
	next, key, ok := s.state.Undo()
	if !ok {
		return s.state.Clone(), "", nil
	}
	st, err := s.apply(ctx, next)
	return st, key, err
}

func (s *Service) SetStock(ctx context.Context, r Resource, v int) (State, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return State{}, err
	}
	if !r.IsValid() {
		return State{}, fmt.Errorf("invalid resource: %q", r)
	}
	return s.apply(ctx, s.state.SetStock(r, v))
}

func (s *Service) SetRuinsFloor(ctx context.Context, v int) (State, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return State{}, err
	}
	return s.apply(ctx, s.state.SetRuinsFloor(v))
}

// ResetAll replaces the state with defaults and refills the key counters.
// Confirmation is the caller's job.
func (s *Service) ResetAll(ctx context.Context) (State, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return State{}, err
	}
	s.log.Info("resetting all progress", zap.String("key", s.key))
	return s.apply(ctx, ResetAllState(s.clock.Now()))
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	_, _, err := s.Load(ctx)
	return err
}

func (s *Service) apply(ctx context.Context, next State) (State, error) {
	prev := s.state
	s.state = next
	if err := s.persist(ctx); err != nil {
		s.state = prev
		return State{}, err
	}
	return next.Clone(), nil
}

func (s *Service) persist(ctx context.Context) error {
	blob, err := EncodeState(s.state)
	if err != nil {
		return err
	}

	rr, tracked := s.store.(RevisionReader)
	if tracked {
		cur, err := rr.Revision(ctx, s.key)
		if err != nil {
			return fmt.Errorf("check state revision: %w", err)
		}
		if cur != s.revision {
			// Last write wins; another process saved since we loaded.
			s.log.Warn("state was modified by another writer; overwriting",
				zap.String("key", s.key),
				zap.String("loaded_revision", s.revision),
				zap.String("current_revision", cur))
		}
	}

	if err := s.store.Save(ctx, s.key, blob); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	if tracked {
		rev, err := rr.Revision(ctx, s.key)
		if err != nil {
			s.log.Warn("read state revision after save", zap.Error(err))
		}
		s.revision = rev
	}
	return nil
}
