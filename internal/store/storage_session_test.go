package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStorage(t *testing.T) *BoltSessionStorage {
	t.Helper()
	s, err := NewSessionStorage(filepath.Join(t.TempDir(), "nested", "sessions.bdb"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSessionStorage_SaveGet(t *testing.T) {
	s := newTestSessionStorage(t)
	ctx := context.Background()

	session := models.Session{
		ID:          "s1",
		Credentials: models.Credentials{Nickname: "bret", RemoteKey: "k"},
		Settings:    models.Settings{Num: 20, FontSize: 12, Media: true},
		UserID:      5,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		ExpiresAt:   time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Save(ctx, session))

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, session.Credentials, got.Credentials)
	assert.Equal(t, session.Settings, got.Settings)
	assert.Equal(t, int64(5), got.UserID)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))
}

func TestSessionStorage_GetUnknown(t *testing.T) {
	s := newTestSessionStorage(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStorage_GetExpiredDeletes(t *testing.T) {
	s := newTestSessionStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.Session{ID: "old", ExpiresAt: time.Now().Add(-time.Minute)}))

	_, err := s.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	purged, err := s.PurgeExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, purged)
}

func TestSessionStorage_Delete(t *testing.T) {
	s := newTestSessionStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, models.Session{ID: "s1", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, s.Delete(ctx, "s1"))
	require.NoError(t, s.Delete(ctx, "never-existed"))

	_, err := s.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStorage_PurgeExpired(t *testing.T) {
	s := newTestSessionStorage(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.Save(ctx, models.Session{ID: "live", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, s.Save(ctx, models.Session{ID: "dead1", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, s.Save(ctx, models.Session{ID: "dead2", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, s.Save(ctx, models.Session{ID: "forever"}))

	purged, err := s.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, purged)

	_, err = s.Get(ctx, "live")
	assert.NoError(t, err)
	_, err = s.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestSessionStorage_PurgeCancelled(t *testing.T) {
	s := newTestSessionStorage(t)
	require.NoError(t, s.Save(context.Background(), models.Session{ID: "a", ExpiresAt: time.Now().Add(-time.Hour)}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.PurgeExpired(ctx, time.Now())
	assert.ErrorIs(t, err, context.Canceled)
}
