// Package auth implements the local account directory: registration, login,
// token issuance, profile lookup and logout. Accounts and issued tokens are
// kept in memory and mirrored to the key-value store so they survive
// restarts. A short artificial latency on each operation mimics the network
// round-trip of a remote directory.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ekaraman/skyfare/internal/client/config"
	"github.com/ekaraman/skyfare/internal/client/models"
	"github.com/ekaraman/skyfare/internal/client/storage"
	"github.com/ekaraman/skyfare/internal/common"
	"github.com/ekaraman/skyfare/internal/logging"
	"github.com/ekaraman/skyfare/internal/validation"
)

// storedUser is the persisted account shape, password included. It never
// leaves the package; callers only ever see models.User.
type storedUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

type storedToken struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

type Service struct {
	store   storage.Store
	log     logging.Logger
	latency time.Duration

	mu     sync.Mutex
	users  map[string]storedUser // keyed by username
	tokens map[string]string     // token -> user id
}

// Option configures a Service at construction.
type Option func(*Service)

// WithLatency overrides the simulated directory round-trip time. Tests pass
// zero to keep the suite fast.
func WithLatency(d time.Duration) Option {
	return func(s *Service) { s.latency = d }
}

// NewService builds the directory and rehydrates accounts and tokens
// persisted by earlier runs.
func NewService(ctx context.Context, store storage.Store, cfg *config.Config, log logging.Logger, opts ...Option) *Service {
	s := &Service{
		store:   store,
		log:     log,
		latency: cfg.AuthLatency,
		users:   make(map[string]storedUser),
		tokens:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rehydrate(ctx)
	return s
}

func (s *Service) rehydrate(ctx context.Context) {
	if raw, ok := s.store.GetString(ctx, common.AuthUsersKey); ok {
		var users []storedUser
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			s.log.Warn(ctx, "auth: discarding malformed persisted users", "error", err)
		} else {
			for _, u := range users {
				s.users[u.Username] = u
			}
		}
	}

	if raw, ok := s.store.GetString(ctx, common.AuthTokensKey); ok {
		var tokens []storedToken
		if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
			s.log.Warn(ctx, "auth: discarding malformed persisted tokens", "error", err)
		} else {
			for _, t := range tokens {
				s.tokens[t.Token] = t.UserID
			}
		}
	}

	s.log.Debug(ctx, "auth: directory rehydrated",
		"users", len(s.users), "tokens", len(s.tokens))
}

// Login verifies credentials and issues a fresh session token. Wrong username
// or password both map to ErrInvalidCredentials; malformed fields fail fast
// with a *validation.FieldError before the simulated round-trip.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	if err := validation.Username(creds.Username); err != nil {
		return nil, err
	}
	if err := validation.Password(creds.Password); err != nil {
		return nil, err
	}
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[strings.TrimSpace(creds.Username)]
	if !ok || u.Password != creds.Password {
		return nil, common.ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	s.tokens[token] = u.ID
	s.persistTokensLocked(ctx)

	s.log.Info(ctx, "auth: user logged in", "username", u.Username)
	return &models.AuthResponse{User: u.public(), Token: token}, nil
}

// Register creates a new account and mints a token for it. Whether that token
// is adopted is the caller's decision; the session layer deliberately hands a
// fresh registrant to the login flow instead.
func (s *Service) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	if err := validation.Username(data.Username); err != nil {
		return nil, err
	}
	if err := validation.Password(data.Password); err != nil {
		return nil, err
	}
	if data.Password != data.ConfirmPassword {
		return nil, common.ErrPasswordMismatch
	}
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[data.Username]; exists {
		return nil, common.ErrUsernameTaken
	}

	u := storedUser{
		ID:        newUserID(),
		Username:  data.Username,
		Password:  data.Password,
		CreatedAt: time.Now().UTC(),
	}
	s.users[u.Username] = u
	s.persistUsersLocked(ctx)

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	s.tokens[token] = u.ID
	s.persistTokensLocked(ctx)

	s.log.Info(ctx, "auth: user registered", "username", u.Username)
	return &models.AuthResponse{User: u.public(), Token: token}, nil
}

// GetProfile resolves a session token back to its account.
func (s *Service) GetProfile(ctx context.Context, token string) (*models.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.tokens[token]
	if !ok {
		return nil, common.ErrInvalidToken
	}
	for _, u := range s.users {
		if u.ID == userID {
			return u.public(), nil
		}
	}
	return nil, common.ErrUserNotFound
}

// Logout invalidates a session token. Revoking a token the directory no
// longer knows is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[token]; ok {
		delete(s.tokens, token)
		s.persistTokensLocked(ctx)
	}
	s.log.Info(ctx, "auth: user logged out")
	return nil
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) persistUsersLocked(ctx context.Context) {
	users := make([]storedUser, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	b, err := json.Marshal(users)
	if err != nil {
		s.log.Error(ctx, "auth: marshaling users failed", "error", err)
		return
	}
	s.store.Set(ctx, common.AuthUsersKey, string(b))
}

func (s *Service) persistTokensLocked(ctx context.Context) {
	tokens := make([]storedToken, 0, len(s.tokens))
	for t, userID := range s.tokens {
		tokens = append(tokens, storedToken{Token: t, UserID: userID})
	}
	b, err := json.Marshal(tokens)
	if err != nil {
		s.log.Error(ctx, "auth: marshaling tokens failed", "error", err)
		return
	}
	s.store.Set(ctx, common.AuthTokensKey, string(b))
}

func (u storedUser) public() *models.User {
	return &models.User{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

func newUserID() string {
	return fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func newToken() (string, error) {
	suffix, err := common.MakeRandHexString(8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("token_%d_%s", time.Now().UnixMilli(), suffix), nil
}
