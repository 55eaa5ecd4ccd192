// Package session owns the authentication token and derived identity for
// the lifetime of the process. Exactly one session slot exists; it
// survives restarts until an explicit logout.
package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

const tokenKey = "session-token"

// PlaceholderUsername is used when the token carries no readable identity.
const PlaceholderUsername = "User"

// Identity is the user identity derived from the session token. Decoding
// is best-effort; a session is valid even when claims are absent.
type Identity struct {
	Username string
	Email    string
}

// Store persists the single session slot under the configured data path.
// Restore, Establish, and Clear are its only mutators.
type Store struct {
	d *diskv.Diskv

	token         string
	identity      Identity
	authenticated bool
}

// NewStore opens the session slot under basePath.
func NewStore(basePath string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 64 * 1024,
		}),
		identity: Identity{Username: PlaceholderUsername},
	}
}

// Restore reads a previously persisted token. The token is trusted without
// server-side validation: an expired one simply makes later requests fail.
// An absent slot leaves the store unauthenticated and is not an error.
func (s *Store) Restore() error {
	if !s.d.Has(tokenKey) {
		s.reset()
		return nil
	}
	val, err := s.d.Read(tokenKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.reset()
			return nil
		}
		return fmt.Errorf("session: read slot: %w", err)
	}
	token := string(val)
	if token == "" {
		s.reset()
		return nil
	}
	s.token = token
	s.identity = decodeIdentity(token)
	s.authenticated = true
	return nil
}

// Establish persists the token and marks the session authenticated.
func (s *Store) Establish(token string) error {
	if token == "" {
		return errors.New("session: empty token")
	}
	if err := s.d.Write(tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("session: persist slot: %w", err)
	}
	s.token = token
	s.identity = decodeIdentity(token)
	s.authenticated = true
	return nil
}

// Clear removes the persisted token and marks the session unauthenticated.
// Clearing an already empty slot succeeds.
func (s *Store) Clear() error {
	if err := s.d.Erase(tokenKey); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: clear slot: %w", err)
	}
	s.reset()
	return nil
}

// Token returns the current session token, empty when unauthenticated.
func (s *Store) Token() string {
	return s.token
}

// Authenticated reports whether a session is established.
func (s *Store) Authenticated() bool {
	return s.authenticated
}

// Identity returns the derived identity; a placeholder when the token's
// claims were unreadable.
func (s *Store) Identity() Identity {
	return s.identity
}

func (s *Store) reset() {
	s.token = ""
	s.identity = Identity{Username: PlaceholderUsername}
	s.authenticated = false
}
