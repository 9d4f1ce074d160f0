// Package session holds the logged-in identity for one storefront or admin
// session. The customer and admin stores are two instances of the same type
// on different blob keys and credential lists.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"techtrove/internal/blobstore"
	"techtrove/internal/domain"
	identityrepo "techtrove/internal/repository/identity"
)

var (
	// ErrInvalidCredentials covers both unknown emails and wrong secrets;
	// callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotAuthenticated is returned for profile updates without a session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Status is the session state machine: Loading until Restore has run, then
// Authenticated or Unauthenticated.
type Status int

const (
	StatusLoading Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

type Store struct {
	mu         sync.Mutex
	blobs      blobstore.Store
	identities identityrepo.Repository
	storageKey string
	logger     *log.Logger

	current *domain.Identity
	status  Status
}

func New(blobs blobstore.Store, identities identityrepo.Repository, storageKey string, logger *log.Logger) *Store {
	return &Store{
		blobs:      blobs,
		identities: identities,
		storageKey: storageKey,
		logger:     logger,
		status:     StatusLoading,
	}
}

// Restore runs once at application start. A missing blob leaves the session
// unauthenticated; a corrupt blob is deleted and likewise never surfaced.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.blobs.Get(ctx, s.storageKey)
	if errors.Is(err, domain.ErrNotFound) {
		s.status = StatusUnauthenticated
		return nil
	}
	if err != nil {
		s.status = StatusUnauthenticated
		return err
	}

	var id domain.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		s.logger.Printf("discarding unparsable %s session blob: %v", s.storageKey, err)
		s.status = StatusUnauthenticated
		return s.blobs.Delete(ctx, s.storageKey)
	}
	s.current = &id
	s.status = StatusAuthenticated
	return nil
}

// Login scans the credential list for a case-insensitive email match and an
// exact secret match, then persists the identity verbatim. The secret is
// compared and stored in plaintext; the mock data set is built that way.
// A failed login leaves the session untouched.
func (s *Store) Login(ctx context.Context, email, secret string) (*domain.Identity, error) {
	found, err := s.identities.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if found.Secret != secret {
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistLocked(ctx, *found); err != nil {
		return nil, err
	}
	s.current = found
	s.status = StatusAuthenticated
	out := *found
	return &out, nil
}

// Logout clears the in-memory identity and removes the persisted blob.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.status = StatusUnauthenticated
	return s.blobs.Delete(ctx, s.storageKey)
}

// Current returns a copy of the logged-in identity, or nil.
func (s *Store) Current() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Update replaces the identity's profile fields and re-persists it. The id
// and secret of the current identity are kept.
func (s *Store) Update(ctx context.Context, name, email string) (*domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNotAuthenticated
	}
	updated := *s.current
	if name != "" {
		updated.Name = name
	}
	if email != "" {
		updated.Email = email
	}
	if err := s.persistLocked(ctx, updated); err != nil {
		return nil, err
	}
	s.current = &updated
	out := updated
	return &out, nil
}

// UpdateSecret stores the new secret on the current identity, verbatim.
func (s *Store) UpdateSecret(ctx context.Context, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotAuthenticated
	}
	updated := *s.current
	updated.Secret = secret
	if err := s.persistLocked(ctx, updated); err != nil {
		return err
	}
	s.current = &updated
	return nil
}

func (s *Store) persistLocked(ctx context.Context, id domain.Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return s.blobs.Set(ctx, s.storageKey, raw)
}
