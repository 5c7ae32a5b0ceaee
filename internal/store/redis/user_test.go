package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkdeck/internal/domain"
)

func TestSaveAndGetUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &domain.User{
		Name:         "alice@linkdeck.local",
		PasswordHash: []byte("$2a$10$fakehash"),
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.SaveUser(ctx, user))

	got, err := store.GetUser(ctx, user.Name)
	require.NoError(t, err)
	assert.Equal(t, user.Name, got.Name)
	assert.Equal(t, user.PasswordHash, got.PasswordHash)
	assert.True(t, user.CreatedAt.Equal(got.CreatedAt))
}

func TestGetUserNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetUser(context.Background(), "nobody@linkdeck.local")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	session := &domain.Session{
		Token:     "deadbeef",
		UserName:  "alice@linkdeck.local",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.SaveSession(ctx, session, time.Hour))

	got, err := store.GetSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserName, got.UserName)

	require.NoError(t, store.DeleteSession(ctx, session.Token))

	_, err = store.GetSession(ctx, session.Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSessionExpiry(t *testing.T) {
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewStore(client)
	ctx := context.Background()

	session := &domain.Session{Token: "shortlived", UserName: "alice@linkdeck.local"}
	require.NoError(t, store.SaveSession(ctx, session, time.Minute))

	srv.FastForward(2 * time.Minute)

	_, err := store.GetSession(ctx, session.Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDeleteSessionMissingIsNoop(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.DeleteSession(context.Background(), "never-issued"))
}
