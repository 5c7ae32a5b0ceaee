package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"linkdeck/internal/domain"
	"linkdeck/internal/logger"
	redisstore "linkdeck/internal/store/redis"
)

const (
	// MinSecretLen is the minimum secret length accepted at login.
	MinSecretLen = 6

	// syntheticDomain maps login identifiers to a fixed synthetic
	// address form; no real email is ever collected.
	syntheticDomain = "linkdeck.local"
)

// Provider implements the sign-in-or-provision login policy over the
// store: an unknown identifier is silently registered with the given
// credentials and reported as a first-time login.
type Provider struct {
	store      *redisstore.Store
	log        logger.Logger
	sessionTTL time.Duration
	bcryptCost int
}

// New creates a session provider.
func New(store *redisstore.Store, log logger.Logger, sessionTTL time.Duration, bcryptCost int) *Provider {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Provider{
		store:      store,
		log:        log,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}
}

// AccountName maps a login identifier to the synthetic account address.
func AccountName(identifier string) string {
	return identifier + "@" + syntheticDomain
}

// Login validates credentials and opens a session. Validation failures
// are rejected before any store call. Returns whether this login
// provisioned a new account, plus the minted session token.
func (p *Provider) Login(ctx context.Context, identifier, secret string) (bool, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return false, "", fmt.Errorf("%w: identifier must not be empty", domain.ErrValidation)
	}
	if len(secret) < MinSecretLen {
		return false, "", fmt.Errorf("%w: secret must be at least %d characters", domain.ErrValidation, MinSecretLen)
	}

	account := AccountName(identifier)
	firstTime := false

	user, err := p.store.GetUser(ctx, account)
	switch {
	case err == nil:
		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(secret)); err != nil {
			return false, "", fmt.Errorf("account %s: %w", account, domain.ErrWrongPassword)
		}

	case errors.Is(err, domain.ErrNotFound):
		// Unknown identifier: provision a fresh account.
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(secret), p.bcryptCost)
		if hashErr != nil {
			return false, "", fmt.Errorf("failed to hash secret: %w", hashErr)
		}
		user = &domain.User{
			Name:         account,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := p.store.SaveUser(ctx, user); err != nil {
			return false, "", err
		}
		firstTime = true
		p.log.Info("provisioned new account", logger.String("account", account))

	default:
		return false, "", err
	}

	token, err := newToken()
	if err != nil {
		return false, "", err
	}
	session := &domain.Session{
		Token:     token,
		UserName:  account,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.store.SaveSession(ctx, session, p.sessionTTL); err != nil {
		return false, "", err
	}

	return firstTime, token, nil
}

// Logout deletes the session. Unknown tokens succeed silently.
func (p *Provider) Logout(ctx context.Context, token string) error {
	return p.store.DeleteSession(ctx, token)
}

// Resolve maps a session token to the session it identifies.
func (p *Provider) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, fmt.Errorf("session: %w", domain.ErrNotFound)
	}
	return p.store.GetSession(ctx, token)
}

// newToken mints a random 128-bit hex session token.
func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
