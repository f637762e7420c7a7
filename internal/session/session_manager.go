package session

import (
	"context"
	"sync"
	"time"

	"hris-portal/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type live struct {
	store    *store.Store
	watchers map[string]context.CancelFunc
}

// Manager pairs the persisted session (redis) with its in-process state: the
// session's store and the background watchers (pollers) bound to it.
type Manager struct {
	repo       Repository
	defaultTTL time.Duration
	mu         sync.Mutex
	live       map[string]*live
	now        func() time.Time
	logger     *zap.Logger
}

func NewManager(repo Repository, defaultTTL time.Duration, logger ...*zap.Logger) *Manager {
	l := zap.L().Named("session.manager")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.manager")
	}
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &Manager{
		repo:       repo,
		defaultTTL: defaultTTL,
		live:       make(map[string]*live),
		now:        time.Now,
		logger:     l,
	}
}

// Create persists a new session. ExpiresAt (usually the token exp) bounds the
// TTL; without it the default TTL applies.
func (m *Manager) Create(ctx context.Context, s Session) (Session, error) {
	now := m.now()
	s.ID = uuid.NewString()
	s.CreatedAt = now

	ttl := m.defaultTTL
	if !s.ExpiresAt.IsZero() {
		if until := s.ExpiresAt.Sub(now); until > 0 && until < ttl {
			ttl = until
		}
	}
	s.ExpiresAt = now.Add(ttl)

	if err := m.repo.Save(ctx, s, ttl); err != nil {
		m.logger.Error("save session failed", zap.String("email", s.Email), zap.Error(err))
		return Session{}, err
	}

	m.logger.Info("session created",
		zap.String("session_id", s.ID),
		zap.String("email", s.Email),
		zap.String("role", s.Role),
		zap.Duration("ttl", ttl),
	)
	return s, nil
}

func (m *Manager) Resolve(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, ErrSessionNotFound
	}
	return m.repo.Get(ctx, id)
}

// Store returns the session's store, creating it on first use.
func (m *Manager) Store(id string) *store.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liveLocked(id).store
}

func (m *Manager) liveLocked(id string) *live {
	l, ok := m.live[id]
	if !ok {
		l = &live{store: store.New(id), watchers: make(map[string]context.CancelFunc)}
		m.live[id] = l
	}
	return l
}

// Watch derives a context for a background task owned by the session. The
// returned stop func must be called when the owning view goes away; Destroy
// cancels whatever is still running.
func (m *Manager) Watch(parent context.Context, id string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	key := uuid.NewString()

	m.mu.Lock()
	m.liveLocked(id).watchers[key] = cancel
	m.mu.Unlock()

	stop := func() {
		cancel()
		m.mu.Lock()
		if l, ok := m.live[id]; ok {
			delete(l.watchers, key)
		}
		m.mu.Unlock()
	}
	return ctx, stop
}

// WatcherCount is the number of background tasks still bound to the session.
func (m *Manager) WatcherCount(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.live[id]; ok {
		return len(l.watchers)
	}
	return 0
}

func (m *Manager) Destroy(ctx context.Context, id string) error {
	m.release(id)
	if err := m.repo.Delete(ctx, id); err != nil {
		m.logger.Error("delete session failed", zap.String("session_id", id), zap.Error(err))
		return err
	}
	m.logger.Info("session destroyed", zap.String("session_id", id))
	return nil
}

func (m *Manager) release(id string) {
	m.mu.Lock()
	l, ok := m.live[id]
	delete(m.live, id)
	m.mu.Unlock()

	if !ok {
		return
	}
	for _, cancel := range l.watchers {
		cancel()
	}
	l.store.Close()
}

// Sweep drops in-process state of sessions that expired in redis.
func (m *Manager) Sweep(ctx context.Context) int {
	m.mu.Lock()
	ids := make([]string, 0, len(m.live))
	for id := range m.live {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	released := 0
	for _, id := range ids {
		ok, err := m.repo.Exists(ctx, id)
		if err != nil {
			m.logger.Warn("sweep session lookup failed", zap.String("session_id", id), zap.Error(err))
			continue
		}
		if !ok {
			m.release(id)
			released++
		}
	}
	if released > 0 {
		m.logger.Info("expired sessions released", zap.Int("count", released))
	}
	return released
}

// RunSweeper calls Sweep on every tick until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}
