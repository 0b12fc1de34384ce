// Package services contains the application stores of Latte Art Meister:
// session, submissions, and chat. Each store owns its slice of in-memory
// state, persists through the key-value storage port, and exposes a loading
// flag for the duration of its simulated processing delays.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baristalab/lattemeister/internal/common"
	"github.com/baristalab/lattemeister/internal/models"
	"github.com/baristalab/lattemeister/internal/repositories/credentials"
	"github.com/baristalab/lattemeister/internal/storage"
)

// SessionService owns the authenticated-user identity. It is the root of all
// per-user data partitioning: the other stores subscribe to it and swap their
// visible data set whenever the active user changes.
//
// Contract:
//   - Register: fails with common.ErrDuplicateUser on a known email; otherwise
//     creates the account and logs the user in as a side effect.
//   - Login: fails with common.ErrInvalidCredentials unless email and password
//     match a record exactly; holds the loading flag for a simulated delay.
//   - Logout: clears the session pointer only; per-user records stay persisted.
//   - Restore: invoked once at startup; adopts the persisted session pointer
//     if present. IsLoading reports true until restoration completes, so
//     dependent callers know whether "no user" is final or transient.
type SessionService interface {
	Register(ctx context.Context, email, name, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	CurrentUser() *models.User
	IsLoading() bool
	Subscribe(fn func(*models.User))
}

type sessionService struct {
	store storage.KV
	creds credentials.Repository
	delay time.Duration

	mu        sync.Mutex
	user      *models.User
	loading   bool
	listeners []func(*models.User)
}

// NewSessionService constructs a SessionService over the given storage and
// credential repository. The delay is the simulated authentication latency;
// tests pass zero. The service starts in the loading state until Restore runs.
func NewSessionService(store storage.KV, creds credentials.Repository, delay time.Duration) SessionService {
	return &sessionService{store: store, creds: creds, delay: delay, loading: true}
}

func (s *sessionService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// setUser swaps the active user and notifies subscribers. Listeners are
// called outside the lock so they may call back into the service.
func (s *sessionService) setUser(u *models.User) {
	s.mu.Lock()
	s.user = u
	listeners := append(([]func(*models.User))(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(u)
	}
}

func (s *sessionService) persistSession(ctx context.Context, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Set(ctx, storage.SessionKey, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func (s *sessionService) Register(ctx context.Context, email, name, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	exists, err := s.creds.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrDuplicateUser
	}

	time.Sleep(s.delay)

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.creds.Insert(ctx, credentials.Record{User: user, Password: password}); err != nil {
		return err
	}
	if err := s.persistSession(ctx, &user); err != nil {
		return err
	}

	s.setUser(&user)
	return nil
}

func (s *sessionService) Login(ctx context.Context, email, password string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	time.Sleep(s.delay)

	rec, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidCredentials
		}
		return err
	}
	if rec.Password != password {
		return common.ErrInvalidCredentials
	}

	user := rec.User
	if err := s.persistSession(ctx, &user); err != nil {
		return err
	}

	s.setUser(&user)
	return nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, storage.SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.setUser(nil)
	return nil
}

func (s *sessionService) Restore(ctx context.Context) error {
	defer s.setLoading(false)

	raw, err := s.store.Get(ctx, storage.SessionKey)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return fmt.Errorf("failed to decode session: %w", err)
	}

	s.setUser(&user)
	return nil
}

func (s *sessionService) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *sessionService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *sessionService) Subscribe(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
