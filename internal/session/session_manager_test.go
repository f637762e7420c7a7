package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hris-portal/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu   sync.Mutex
	data map[string]session.Session
	ttls map[string]time.Duration
}

func newMemRepo() *memRepo {
	return &memRepo{data: map[string]session.Session{}, ttls: map[string]time.Duration{}}
}

func (m *memRepo) Save(_ context.Context, s session.Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[s.ID] = s
	m.ttls[s.ID] = ttl
	return nil
}

func (m *memRepo) Get(_ context.Context, id string) (session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.data[id]
	if !ok {
		return session.Session{}, session.ErrSessionNotFound
	}
	return s, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}

func (m *memRepo) Exists(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[id]
	return ok, nil
}

func TestManager_CreateUsesTokenExpiry(t *testing.T) {
	repo := newMemRepo()
	m := session.NewManager(repo, 24*time.Hour)

	s, err := m.Create(context.Background(), session.Session{
		Email:     "boss@gmail.com",
		Role:      session.RoleAdmin,
		ExpiresAt: time.Now().Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)

	ttl := repo.ttls[s.ID]
	assert.InDelta(t, (2 * time.Hour).Seconds(), ttl.Seconds(), 5)

	got, err := m.Resolve(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "boss@gmail.com", got.Email)
}

func TestManager_ResolveEmptyID(t *testing.T) {
	m := session.NewManager(newMemRepo(), time.Hour)
	_, err := m.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_DestroyCancelsWatchersAndClosesStore(t *testing.T) {
	repo := newMemRepo()
	m := session.NewManager(repo, time.Hour)
	s, _ := m.Create(context.Background(), session.Session{Email: "a@paarsiv.com", Role: session.RoleEmployee})

	st := m.Store(s.ID)
	assert.Same(t, st, m.Store(s.ID))

	ctx, stop := m.Watch(context.Background(), s.ID)
	defer stop()
	assert.Equal(t, 1, m.WatcherCount(s.ID))

	require.NoError(t, m.Destroy(context.Background(), s.ID))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("watcher was not cancelled")
	}
	assert.True(t, st.Closed())

	_, err := m.Resolve(context.Background(), s.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestManager_WatchStopUnregisters(t *testing.T) {
	m := session.NewManager(newMemRepo(), time.Hour)
	ctx, stop := m.Watch(context.Background(), "sid")
	assert.Equal(t, 1, m.WatcherCount("sid"))

	stop()
	assert.Error(t, ctx.Err())
	assert.Equal(t, 0, m.WatcherCount("sid"))
}

func TestManager_SweepReleasesExpired(t *testing.T) {
	repo := newMemRepo()
	m := session.NewManager(repo, time.Hour)
	alive, _ := m.Create(context.Background(), session.Session{Email: "a@paarsiv.com"})

	aliveStore := m.Store(alive.ID)
	expiredStore := m.Store("gone")

	released := m.Sweep(context.Background())

	assert.Equal(t, 1, released)
	assert.True(t, expiredStore.Closed())
	assert.False(t, aliveStore.Closed())
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/dashboard-admin", session.DashboardPath(session.RoleAdmin))
	assert.Equal(t, "/dashboard-employee", session.DashboardPath(session.RoleEmployee))
}
