//go:build !integration

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"saasStackAnalyzer/domain"
	"saasStackAnalyzer/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	ids       map[string]uuid.UUID
	lookups   int
	refreshes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{ids: map[string]uuid.UUID{}}
}

func (c *fakeCache) Store(_ context.Context, token string, id uuid.UUID, _ time.Duration) error {
	c.ids[token] = id
	return nil
}

func (c *fakeCache) Lookup(_ context.Context, token string) (uuid.UUID, error) {
	c.lookups++
	id, ok := c.ids[token]
	if !ok {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

func (c *fakeCache) Refresh(_ context.Context, token string, _ time.Duration) error {
	if _, ok := c.ids[token]; !ok {
		return domain.ErrNotFound
	}
	c.refreshes++
	return nil
}

func (c *fakeCache) Forget(_ context.Context, token string) error {
	delete(c.ids, token)
	return nil
}

func TestCreateSession_TokenShape(t *testing.T) {
	svc := NewSessionService(memory.NewSessionRepository(), nil, time.Hour)

	a, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)
	b, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	assert.Len(t, a.SessionToken, 64)
	assert.Regexp(t, "^[0-9a-f]+$", a.SessionToken)
	assert.NotEqual(t, a.SessionToken, b.SessionToken)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestTouchSession_UpdatesLastActive(t *testing.T) {
	repo := memory.NewSessionRepository()
	svc := NewSessionService(repo, nil, time.Hour)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	created, err := svc.CreateSession(context.Background(), map[string]interface{}{"ua": "firefox"})
	require.NoError(t, err)

	later := start.Add(2 * time.Hour)
	svc.now = func() time.Time { return later }

	touched, err := svc.TouchSession(context.Background(), created.SessionToken, nil)
	require.NoError(t, err)
	assert.Equal(t, later, touched.LastActive)
	assert.Equal(t, "firefox", touched.DeviceInfo["ua"])

	stored, err := repo.FindByID(context.Background(), created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, later, stored.LastActive)

	touched, err = svc.TouchSession(context.Background(), created.SessionToken, map[string]interface{}{"ua": "safari"})
	require.NoError(t, err)
	assert.Equal(t, "safari", touched.DeviceInfo["ua"])
}

func TestTouchSession_UnknownAndMissingToken(t *testing.T) {
	svc := NewSessionService(memory.NewSessionRepository(), nil, time.Hour)

	_, err := svc.TouchSession(context.Background(), "nope", nil)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = svc.TouchSession(context.Background(), "", nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestTouchSession_UsesCache(t *testing.T) {
	cache := newFakeCache()
	svc := NewSessionService(memory.NewSessionRepository(), cache, time.Hour)

	created, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, created.SessionID, cache.ids[created.SessionToken])

	_, err = svc.TouchSession(context.Background(), created.SessionToken, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.lookups)
	assert.Equal(t, 1, cache.refreshes)
}

func TestTouchSession_CacheMissFallsBackToStore(t *testing.T) {
	cache := newFakeCache()
	svc := NewSessionService(memory.NewSessionRepository(), cache, time.Hour)

	created, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)
	delete(cache.ids, created.SessionToken)

	touched, err := svc.TouchSession(context.Background(), created.SessionToken, nil)
	require.NoError(t, err)
	assert.Equal(t, created.SessionID, touched.ID)
	assert.Equal(t, created.SessionID, cache.ids[created.SessionToken])
}

func TestDeleteSession_ForgetsToken(t *testing.T) {
	cache := newFakeCache()
	svc := NewSessionService(memory.NewSessionRepository(), cache, time.Hour)

	created, err := svc.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(context.Background(), created.SessionID))
	assert.Empty(t, cache.ids)

	_, err = svc.GetSessionByID(context.Background(), created.SessionID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, errors.Is(svc.DeleteSession(context.Background(), created.SessionID), domain.ErrNotFound))
}
