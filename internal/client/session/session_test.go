package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ekaraman/skyfare/internal/client/models"
	"github.com/ekaraman/skyfare/internal/client/storage"
	"github.com/ekaraman/skyfare/internal/common"
	"github.com/ekaraman/skyfare/internal/logging"
)

type fakeDirectory struct {
	loginResp   *models.AuthResponse
	loginErr    error
	registerErr error
	profile     *models.User
	profileErr  error
	logoutErr   error

	logoutCalls []string
}

func (f *fakeDirectory) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeDirectory) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	user := &models.User{ID: "user_1_abc", Username: data.Username, CreatedAt: time.Now()}
	return &models.AuthResponse{User: user, Token: "token_1_unused"}, nil
}

func (f *fakeDirectory) GetProfile(ctx context.Context, token string) (*models.User, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeDirectory) Logout(ctx context.Context, token string) error {
	f.logoutCalls = append(f.logoutCalls, token)
	return f.logoutErr
}

func alice() *models.User {
	return &models.User{ID: "user_1_abc", Username: "alice", CreatedAt: time.Now()}
}

func TestLoginPersistsToken(t *testing.T) {
	store := storage.NewMemory()
	dir := &fakeDirectory{loginResp: &models.AuthResponse{User: alice(), Token: "token_1_ff"}}
	s := New(dir, store, logging.NewDiscard())
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"}))

	st := s.State()
	require.True(t, st.Authenticated)
	require.Equal(t, "alice", st.User.Username)
	require.Equal(t, "token_1_ff", st.Token)
	require.False(t, st.Loading)

	persisted, ok := store.GetString(ctx, common.AuthTokenKey)
	require.True(t, ok)
	require.Equal(t, "token_1_ff", persisted)
}

func TestLoginFailureKeepsUnauthenticated(t *testing.T) {
	dir := &fakeDirectory{loginErr: common.ErrInvalidCredentials}
	s := New(dir, storage.NewMemory(), logging.NewDiscard())

	err := s.Login(context.Background(), models.Credentials{Username: "alice", Password: "bad"})
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	st := s.State()
	require.False(t, st.Authenticated)
	require.Nil(t, st.User)
	require.ErrorIs(t, st.Err, common.ErrInvalidCredentials)

	s.ClearError()
	require.NoError(t, s.State().Err)
}

func TestRegisterDoesNotAuthenticate(t *testing.T) {
	s := New(&fakeDirectory{}, storage.NewMemory(), logging.NewDiscard())

	user, err := s.Register(context.Background(), models.RegisterData{
		Username: "alice", Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	st := s.State()
	require.False(t, st.Authenticated)
	require.Nil(t, st.User)
	require.Empty(t, st.Token)
}

func TestCheckAuthStatusRestoresSession(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()
	store.Set(ctx, common.AuthTokenKey, "token_1_ff")

	dir := &fakeDirectory{profile: alice()}
	s := New(dir, store, logging.NewDiscard())

	s.CheckAuthStatus(ctx)

	st := s.State()
	require.True(t, st.Authenticated)
	require.Equal(t, "alice", st.User.Username)
	require.Equal(t, "token_1_ff", st.Token)
}

func TestCheckAuthStatusClearsRejectedToken(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()
	store.Set(ctx, common.AuthTokenKey, "token_1_stale")

	dir := &fakeDirectory{profileErr: common.ErrInvalidToken}
	s := New(dir, store, logging.NewDiscard())

	s.CheckAuthStatus(ctx)

	st := s.State()
	require.False(t, st.Authenticated)
	require.NoError(t, st.Err)

	_, ok := store.GetString(ctx, common.AuthTokenKey)
	require.False(t, ok)
}

func TestCheckAuthStatusNoToken(t *testing.T) {
	s := New(&fakeDirectory{}, storage.NewMemory(), logging.NewDiscard())
	require.True(t, s.State().Loading)

	s.CheckAuthStatus(context.Background())

	st := s.State()
	require.False(t, st.Authenticated)
	require.False(t, st.Loading)
}

func TestLogoutClearsAfterDirectorySuccess(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()
	dir := &fakeDirectory{loginResp: &models.AuthResponse{User: alice(), Token: "token_1_ff"}}
	s := New(dir, store, logging.NewDiscard())

	require.NoError(t, s.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"}))
	require.NoError(t, s.Logout(ctx))

	st := s.State()
	require.False(t, st.Authenticated)
	require.Nil(t, st.User)
	require.Empty(t, st.Token)
	require.Equal(t, []string{"token_1_ff"}, dir.logoutCalls)

	_, ok := store.GetString(ctx, common.AuthTokenKey)
	require.False(t, ok)
}

func TestLogoutFailureKeepsSession(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()
	wantErr := errors.New("directory unavailable")
	dir := &fakeDirectory{
		loginResp: &models.AuthResponse{User: alice(), Token: "token_1_ff"},
		logoutErr: wantErr,
	}
	s := New(dir, store, logging.NewDiscard())

	require.NoError(t, s.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"}))
	require.ErrorIs(t, s.Logout(ctx), wantErr)

	st := s.State()
	require.True(t, st.Authenticated)
	require.Equal(t, "token_1_ff", st.Token)
	require.ErrorIs(t, st.Err, wantErr)

	persisted, ok := store.GetString(ctx, common.AuthTokenKey)
	require.True(t, ok)
	require.Equal(t, "token_1_ff", persisted)
}

func TestLogoutWithoutTokenResetsLocally(t *testing.T) {
	dir := &fakeDirectory{}
	s := New(dir, storage.NewMemory(), logging.NewDiscard())

	require.NoError(t, s.Logout(context.Background()))
	require.False(t, s.State().Authenticated)
	require.Empty(t, dir.logoutCalls)
}

func TestOnChangeObservesTransitions(t *testing.T) {
	dir := &fakeDirectory{loginResp: &models.AuthResponse{User: alice(), Token: "token_1_ff"}}
	s := New(dir, storage.NewMemory(), logging.NewDiscard())

	var states []AuthState
	s.OnChange(func(st AuthState) { states = append(states, st) })

	require.NoError(t, s.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"}))

	require.GreaterOrEqual(t, len(states), 2)
	require.True(t, states[0].Loading)
	last := states[len(states)-1]
	require.True(t, last.Authenticated)
	require.False(t, last.Loading)
}

func TestFromContext(t *testing.T) {
	s := New(&fakeDirectory{}, storage.NewMemory(), logging.NewDiscard())
	ctx := WithSession(context.Background(), s)
	require.Same(t, s, FromContext(ctx))

	require.Panics(t, func() { FromContext(context.Background()) })
}
