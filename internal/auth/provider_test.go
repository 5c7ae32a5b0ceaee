package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"linkdeck/internal/domain"
	"linkdeck/internal/logger"
	redisstore "linkdeck/internal/store/redis"
)

func newTestProvider(t *testing.T) (*Provider, *redisstore.Store) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redisstore.NewStore(client)
	log := logger.New("error", false)

	return New(store, log, time.Hour, bcrypt.MinCost), store
}

func TestLoginProvisionsUnknownAccount(t *testing.T) {
	provider, store := newTestProvider(t)
	ctx := context.Background()

	firstTime, token, err := provider.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.True(t, firstTime, "unknown identifier should be provisioned")
	assert.NotEmpty(t, token)

	user, err := store.GetUser(ctx, "alice@linkdeck.local")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("secret1")))
}

func TestLoginExistingAccount(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	_, _, err := provider.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	firstTime, token, err := provider.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.False(t, firstTime)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	_, _, err := provider.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, _, err = provider.Login(ctx, "alice", "not-the-secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWrongPassword))
}

func TestLoginValidationBeforeStore(t *testing.T) {
	// A client pointing at nothing: any store access would surface a
	// connection error instead of ErrValidation.
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })
	provider := New(redisstore.NewStore(client), logger.New("error", false), time.Hour, bcrypt.MinCost)

	tests := []struct {
		name       string
		identifier string
		secret     string
	}{
		{name: "empty identifier", identifier: "", secret: "secret1"},
		{name: "whitespace identifier", identifier: "   ", secret: "secret1"},
		{name: "short secret", identifier: "alice", secret: "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := provider.Login(context.Background(), tt.identifier, tt.secret)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
		})
	}
}

func TestLoginTrimsIdentifier(t *testing.T) {
	provider, store := newTestProvider(t)
	ctx := context.Background()

	_, _, err := provider.Login(ctx, "  alice  ", "secret1")
	require.NoError(t, err)

	_, err = store.GetUser(ctx, "alice@linkdeck.local")
	assert.NoError(t, err)
}

func TestResolveAndLogout(t *testing.T) {
	provider, _ := newTestProvider(t)
	ctx := context.Background()

	_, token, err := provider.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	session, err := provider.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice@linkdeck.local", session.UserName)

	require.NoError(t, provider.Logout(ctx, token))

	_, err = provider.Resolve(ctx, token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestResolveEmptyToken(t *testing.T) {
	provider, _ := newTestProvider(t)

	_, err := provider.Resolve(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSessionExpiresWithTTL(t *testing.T) {
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := redisstore.NewStore(client)
	provider := New(store, logger.New("error", false), time.Minute, bcrypt.MinCost)
	ctx := context.Background()

	_, token, err := provider.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	srv.FastForward(2 * time.Minute)

	_, err = provider.Resolve(ctx, token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAccountName(t *testing.T) {
	assert.Equal(t, "alice@linkdeck.local", AccountName("alice"))
}
