package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/standupboard/internal/api"
	"github.com/dmitrijs2005/standupboard/internal/logging"
	"github.com/dmitrijs2005/standupboard/internal/models"
)

// ErrNoIdentity is returned when authentication succeeded but the
// current user could not be resolved afterwards.
var ErrNoIdentity = errors.New("authenticated but could not resolve current user")

// Store holds the current session: token, user, and the loading flag set
// until Init has resolved either way.
//
// Store implements api.TokenSource, so the API client it is bound to
// reads the live token on every request. Not safe for concurrent use.
type Store struct {
	client api.Client
	tokens *TokenFile
	log    logging.Logger

	user    *models.User
	token   string
	loading bool
}

// NewStore builds a Store in the loading state. Bind must be called with
// the API client before Init; the two-step wiring exists because the
// client in turn needs the Store as its TokenSource.
func NewStore(tokens *TokenFile, log logging.Logger) *Store {
	return &Store{tokens: tokens, log: log, loading: true}
}

// Bind attaches the API client the Store authenticates through.
func (s *Store) Bind(client api.Client) {
	s.client = client
}

// Token implements api.TokenSource.
func (s *Store) Token() string { return s.token }

// User returns the resolved current user, or nil when logged out.
func (s *Store) User() *models.User { return s.user }

// LoggedIn reports whether a token is held.
func (s *Store) LoggedIn() bool { return s.token != "" }

// Loading reports whether Init has not yet resolved.
func (s *Store) Loading() bool { return s.loading }

// Init restores the session on startup: it reads the persisted token
// and, when one is present, validates it against the backend. A token
// the server does not recognize is cleared from disk and the session
// starts logged out. The loading flag is cleared on every path.
func (s *Store) Init(ctx context.Context) error {
	defer func() { s.loading = false }()

	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	s.token = token

	if info, ok := s.Claims(); ok && info.Expired() {
		s.log.Debug(ctx, "stored token is past its expiry, revalidating anyway",
			"subject", info.Subject, "expired_at", info.ExpiresAt)
	}

	user, err := s.client.ValidateToken(ctx)
	if err != nil || user == nil {
		if err != nil {
			s.log.Warn(ctx, "token validation failed", "error", err)
		}
		s.token = ""
		if cerr := s.tokens.Clear(); cerr != nil {
			return cerr
		}
		return nil
	}
	s.user = user
	return nil
}

// Login authenticates, persists the returned token, and resolves the
// current user. On any failure the session is left logged out.
func (s *Store) Login(ctx context.Context, username, password string) error {
	token, err := s.client.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}
	return s.establish(ctx, token, nil)
}

// Register creates an account and logs the new user in. When the
// backend's response omits the user, it is fetched separately.
func (s *Store) Register(ctx context.Context, reg api.Registration) error {
	token, user, err := s.client.Register(ctx, reg)
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return s.establish(ctx, token, user)
}

// establish stores the fresh token and fills in the user, fetching it
// when the auth response did not carry one. Any failure leaves the
// session fully logged out, in memory and on disk; a half-established
// session must never survive.
func (s *Store) establish(ctx context.Context, token string, user *models.User) error {
	s.token = token
	if err := s.tokens.Save(token); err != nil {
		s.drop()
		return err
	}

	if user == nil {
		fetched, err := s.client.ValidateToken(ctx)
		if err != nil || fetched == nil {
			s.drop()
			if cerr := s.tokens.Clear(); cerr != nil {
				s.log.Warn(ctx, "clearing token after failed user fetch", "error", cerr)
			}
			if err != nil {
				return fmt.Errorf("fetching current user: %w", err)
			}
			return ErrNoIdentity
		}
		user = fetched
	}
	s.user = user
	return nil
}

// Refresh re-fetches the current user, picking up membership or role
// changes. The session is untouched when the fetch fails.
func (s *Store) Refresh(ctx context.Context) error {
	if s.token == "" {
		return nil
	}
	user, err := s.client.ValidateToken(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNoIdentity
	}
	s.user = user
	return nil
}

// Logout clears the session synchronously; no network round-trip.
func (s *Store) Logout() error {
	s.drop()
	return s.tokens.Clear()
}

func (s *Store) drop() {
	s.token = ""
	s.user = nil
}
