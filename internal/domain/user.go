package domain

import "time"

// User is an account provisioned through the sign-in-or-register flow.
// The raw secret is never stored, only its bcrypt hash.
type User struct {
	// Name is the synthetic account address derived from the login
	// identifier. It is the unique key for the account.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the secret.
	PasswordHash []byte `json:"passwordHash"`

	// CreatedAt is the account creation time (UTC).
	CreatedAt time.Time `json:"createdAt"`
}

// Session is an authenticated session handle. Expiry is enforced by the
// store's TTL, not tracked here.
type Session struct {
	Token     string    `json:"token"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}
