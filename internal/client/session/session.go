// Package session maintains the client's authentication state: who is logged
// in, the active token, and the transitions between them. It persists the
// token across restarts and rehydrates the profile on startup.
package session

import (
	"context"
	"sync"

	"github.com/ekaraman/skyfare/internal/client/models"
	"github.com/ekaraman/skyfare/internal/client/storage"
	"github.com/ekaraman/skyfare/internal/common"
	"github.com/ekaraman/skyfare/internal/logging"
)

// Directory is the slice of the auth service the session consumes. Tests
// provide a fake.
type Directory interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

// AuthState is an immutable snapshot of the session. Authenticated is true
// exactly when both User and Token are set.
type AuthState struct {
	User          *models.User
	Token         string
	Authenticated bool
	Loading       bool
	Err           error
}

type Session struct {
	dir   Directory
	store storage.Store
	log   logging.Logger

	mu       sync.Mutex
	state    AuthState
	onChange func(AuthState)
}

// New builds a session in the loading state; callers run CheckAuthStatus to
// settle it before serving commands.
func New(dir Directory, store storage.Store, log logging.Logger) *Session {
	return &Session{dir: dir, store: store, log: log, state: AuthState{Loading: true}}
}

// OnChange registers a callback invoked with a state snapshot after every
// transition. The callback runs outside the session's lock.
func (s *Session) OnChange(fn func(AuthState)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// State returns the current snapshot.
func (s *Session) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CheckAuthStatus restores the session from a persisted token. A token that
// no longer resolves to a profile is removed from the store so the next
// startup does not retry it.
func (s *Session) CheckAuthStatus(ctx context.Context) {
	s.setLoading(true)

	token, ok := s.store.GetString(ctx, common.AuthTokenKey)
	if !ok || token == "" {
		s.commit(AuthState{})
		return
	}

	user, err := s.dir.GetProfile(ctx, token)
	if err != nil {
		s.log.Warn(ctx, "session: persisted token rejected, clearing it", "error", err)
		s.store.Delete(ctx, common.AuthTokenKey)
		s.commit(AuthState{})
		return
	}

	s.log.Info(ctx, "session: restored from persisted token", "username", user.Username)
	s.commit(AuthState{User: user, Token: token, Authenticated: true})
}

// Login authenticates and persists the issued token.
func (s *Session) Login(ctx context.Context, creds models.Credentials) error {
	s.setLoading(true)

	resp, err := s.dir.Login(ctx, creds)
	if err != nil {
		s.commitKeepingIdentity(err)
		return err
	}

	s.store.Set(ctx, common.AuthTokenKey, resp.Token)
	s.commit(AuthState{User: resp.User, Token: resp.Token, Authenticated: true})
	return nil
}

// Register creates an account without authenticating it. The directory mints
// a token for the new account but the session drops it: a fresh registrant is
// handed to the login flow instead.
func (s *Session) Register(ctx context.Context, data models.RegisterData) (*models.User, error) {
	s.setLoading(true)

	resp, err := s.dir.Register(ctx, data)
	if err != nil {
		s.commitKeepingIdentity(err)
		return nil, err
	}

	s.commitKeepingIdentity(nil)
	return resp.User, nil
}

// Logout revokes the active token. The directory call must succeed before
// local state and the persisted token are cleared: on failure the session
// stays authenticated and the error surfaces to the caller. Without an
// active token the local state is simply reset.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	token := s.state.Token
	s.mu.Unlock()

	if token == "" {
		s.commit(AuthState{})
		return nil
	}

	s.setLoading(true)
	if err := s.dir.Logout(ctx, token); err != nil {
		s.log.Error(ctx, "session: logout failed, keeping session", "error", err)
		s.commitKeepingIdentity(err)
		return err
	}

	s.store.Delete(ctx, common.AuthTokenKey)
	s.commit(AuthState{})
	return nil
}

// ClearError clears only the error field.
func (s *Session) ClearError() {
	s.mu.Lock()
	s.state.Err = nil
	s.notifyLocked()
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.state.Loading = v
	s.state.Err = nil
	s.notifyLocked()
}

// commit replaces the whole state, loading cleared.
func (s *Session) commit(next AuthState) {
	s.mu.Lock()
	next.Loading = false
	next.Authenticated = next.User != nil && next.Token != ""
	s.state = next
	s.notifyLocked()
}

// commitKeepingIdentity ends a transition without touching user or token,
// recording err if any.
func (s *Session) commitKeepingIdentity(err error) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Err = err
	s.notifyLocked()
}

func (s *Session) notifyLocked() {
	fn := s.onChange
	snapshot := s.state
	s.mu.Unlock()
	if fn != nil {
		fn(snapshot)
	}
}
