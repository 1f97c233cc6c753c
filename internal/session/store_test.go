package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/standupboard/internal/api"
	"github.com/dmitrijs2005/standupboard/internal/logging"
	"github.com/dmitrijs2005/standupboard/internal/models"
)

// fakeClient implements the methods the Store touches; everything else
// panics through the embedded nil interface.
type fakeClient struct {
	api.Client

	loginToken string
	loginErr   error

	registerToken string
	registerUser  *models.User
	registerErr   error

	validateUser  *models.User
	validateErr   error
	validateCalls int
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, reg api.Registration) (string, *models.User, error) {
	return f.registerToken, f.registerUser, f.registerErr
}

func (f *fakeClient) ValidateToken(ctx context.Context) (*models.User, error) {
	f.validateCalls++
	return f.validateUser, f.validateErr
}

func newTestStore(t *testing.T, client api.Client) *Store {
	t.Helper()
	s := NewStore(tempTokenFile(t), logging.NewDefault(io.Discard, true))
	s.Bind(client)
	return s
}

func TestInit_NoStoredToken(t *testing.T) {
	fake := &fakeClient{}
	s := newTestStore(t, fake)
	assert.True(t, s.Loading())

	require.NoError(t, s.Init(context.Background()))

	assert.False(t, s.Loading())
	assert.False(t, s.LoggedIn())
	assert.Zero(t, fake.validateCalls)
}

func TestInit_ValidStoredToken(t *testing.T) {
	fake := &fakeClient{validateUser: &models.User{ID: 7, Name: "Jane Smith"}}
	s := newTestStore(t, fake)
	require.NoError(t, s.tokens.Save("tok-1"))

	require.NoError(t, s.Init(context.Background()))

	assert.True(t, s.LoggedIn())
	assert.Equal(t, "tok-1", s.Token())
	require.NotNil(t, s.User())
	assert.Equal(t, "Jane Smith", s.User().Name)
}

func TestInit_RejectedTokenIsCleared(t *testing.T) {
	fake := &fakeClient{validateUser: nil}
	s := newTestStore(t, fake)
	require.NoError(t, s.tokens.Save("stale"))

	require.NoError(t, s.Init(context.Background()))

	assert.False(t, s.LoggedIn())
	assert.Nil(t, s.User())

	stored, err := s.tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestInit_ValidationErrorClearsToken(t *testing.T) {
	fake := &fakeClient{validateErr: errors.New("boom")}
	s := newTestStore(t, fake)
	require.NoError(t, s.tokens.Save("stale"))

	require.NoError(t, s.Init(context.Background()))

	assert.False(t, s.Loading())
	assert.False(t, s.LoggedIn())
}

func TestLogin(t *testing.T) {
	fake := &fakeClient{
		loginToken:   "tok-1",
		validateUser: &models.User{ID: 7, Name: "Jane Smith"},
	}
	s := newTestStore(t, fake)

	require.NoError(t, s.Login(context.Background(), "jane", "s3cret"))

	assert.True(t, s.LoggedIn())
	assert.Equal(t, "Jane Smith", s.User().Name)

	stored, err := s.tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", stored)
}

func TestLogin_Failure(t *testing.T) {
	fake := &fakeClient{loginErr: api.ErrUnauthorized}
	s := newTestStore(t, fake)

	err := s.Login(context.Background(), "jane", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, s.LoggedIn())
}

func TestLogin_UserFetchFailureDropsSession(t *testing.T) {
	fake := &fakeClient{loginToken: "tok-1", validateUser: nil}
	s := newTestStore(t, fake)

	err := s.Login(context.Background(), "jane", "s3cret")
	require.ErrorIs(t, err, ErrNoIdentity)
	assert.False(t, s.LoggedIn())
	assert.Nil(t, s.User())

	// the persisted token must go with the session
	stored, err := s.tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestLogin_UserFetchErrorClearsStoredToken(t *testing.T) {
	fake := &fakeClient{loginToken: "tok-1", validateErr: errors.New("backend down")}
	s := newTestStore(t, fake)

	err := s.Login(context.Background(), "jane", "s3cret")
	require.Error(t, err)
	assert.False(t, s.LoggedIn())

	stored, err := s.tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored, "disk and memory must agree after a failed login")
}

func TestLogin_TokenSaveFailureStaysLoggedOut(t *testing.T) {
	fake := &fakeClient{loginToken: "tok-1", validateUser: &models.User{ID: 7, Name: "Jane Smith"}}

	// a token file path that is a directory makes Save fail
	s := NewStore(NewTokenFile(t.TempDir()), logging.NewDefault(io.Discard, true))
	s.Bind(fake)

	err := s.Login(context.Background(), "jane", "s3cret")
	require.Error(t, err)
	assert.False(t, s.LoggedIn())
	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
}

func TestRegister_UserInResponseSkipsFetch(t *testing.T) {
	fake := &fakeClient{
		registerToken: "tok-2",
		registerUser:  &models.User{ID: 8, Name: "New User"},
	}
	s := newTestStore(t, fake)

	require.NoError(t, s.Register(context.Background(), api.Registration{Username: "new"}))

	assert.True(t, s.LoggedIn())
	assert.Equal(t, "New User", s.User().Name)
	assert.Zero(t, fake.validateCalls)
}

func TestRefresh(t *testing.T) {
	fake := &fakeClient{
		loginToken:   "tok-1",
		validateUser: &models.User{ID: 7, Name: "Jane Smith"},
	}
	s := newTestStore(t, fake)
	require.NoError(t, s.Login(context.Background(), "jane", "s3cret"))

	fake.validateUser = &models.User{
		ID: 7, Name: "Jane Smith",
		Teams: []models.TeamRole{{ID: 10, ScrumMaster: true}},
	}
	require.NoError(t, s.Refresh(context.Background()))
	assert.True(t, s.User().IsScrumMaster(10))
}

func TestLogout(t *testing.T) {
	fake := &fakeClient{loginToken: "tok-1", validateUser: &models.User{ID: 7}}
	s := newTestStore(t, fake)
	require.NoError(t, s.Login(context.Background(), "jane", "s3cret"))

	require.NoError(t, s.Logout())

	assert.False(t, s.LoggedIn())
	assert.Nil(t, s.User())

	stored, err := s.tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRedirect(t *testing.T) {
	tests := []struct {
		name     string
		loading  bool
		loggedIn bool
		current  Route
		want     Route
	}{
		{name: "loading never redirects", loading: true, current: RouteBoards, want: ""},
		{name: "logged out on boards", current: RouteBoards, want: RouteLogin},
		{name: "logged out on login", current: RouteLogin, want: ""},
		{name: "logged out on register", current: RouteRegister, want: ""},
		{name: "logged in on login", loggedIn: true, current: RouteLogin, want: RouteBoards},
		{name: "logged in on register", loggedIn: true, current: RouteRegister, want: RouteBoards},
		{name: "logged in on boards", loggedIn: true, current: RouteBoards, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Redirect(tt.loading, tt.loggedIn, tt.current))
		})
	}
}

func TestClaims(t *testing.T) {
	t.Run("jwt token", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(exp),
		}).SignedString([]byte("test-key"))
		require.NoError(t, err)

		s := newTestStore(t, &fakeClient{})
		s.token = raw

		info, ok := s.Claims()
		require.True(t, ok)
		assert.Equal(t, "7", info.Subject)
		assert.Equal(t, exp.Unix(), info.ExpiresAt.Unix())
		assert.False(t, info.Expired())
	})

	t.Run("opaque token", func(t *testing.T) {
		s := newTestStore(t, &fakeClient{})
		s.token = "not-a-jwt"

		_, ok := s.Claims()
		assert.False(t, ok)
	})

	t.Run("no token", func(t *testing.T) {
		s := newTestStore(t, &fakeClient{})

		_, ok := s.Claims()
		assert.False(t, ok)
	})
}
