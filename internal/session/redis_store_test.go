package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), mr
}

func TestCreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	sess := Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "user-1", got.UserID)
	require.True(t, got.ExpiresAt.Equal(sess.ExpiresAt))
}

func TestGetMissingSession(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCreateRejectsIncompleteSession(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.Create(ctx, Session{UserID: "u", ExpiresAt: time.Now().Add(time.Hour)})
	require.Error(t, err)

	err = store.Create(ctx, Session{SessionID: "s", ExpiresAt: time.Now().Add(time.Hour)})
	require.Error(t, err)

	err = store.Create(ctx, Session{SessionID: "s", UserID: "u", ExpiresAt: time.Now().Add(-time.Minute)})
	require.Error(t, err)
}

func TestSessionExpiresWithTTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sess := Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Minute),
	}
	require.NoError(t, store.Create(ctx, sess))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, sess))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestGenerateIDIsRandom(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.GreaterOrEqual(t, len(a), 32)
}
