// Package session persists the admin bearer token between runs.
package session

import (
	"context"
	"errors"
)

// Fixed storage keys, shared by every Store implementation.
const (
	KeyToken = "adminToken"
	KeyEmail = "adminEmail"
)

// ErrNoSession is returned by Load when no token is stored.
var ErrNoSession = errors.New("no admin session")

// Session is the only durable client-side state: the bearer token and the admin identity.
// A stored token is not proof of validity; the backend decides that on every call.
type Session struct {
	Token string
	Email string
}

// Store is the token store. Implementations must make Clear idempotent and must not
// validate what they Save. Every reader of the same backing storage observes the last write.
type Store interface {
	// Load returns the stored session or ErrNoSession.
	Load(ctx context.Context) (Session, error)
	// Save replaces the stored session.
	Save(ctx context.Context, s Session) error
	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
