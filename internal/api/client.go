package api

import (
	"context"
	"time"

	"github.com/dmitrijs2005/standupboard/internal/models"
)

// TokenSource supplies the bearer token for authenticated requests.
// An empty string means "not logged in" and suppresses the header.
type TokenSource interface {
	Token() string
}

// Registration is the payload for creating an account.
type Registration struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateCardRequest creates one card. The server assigns id, author and
// creation date from the authenticated identity.
type CreateCardRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Type        models.CardType `json:"type"`
	Resolved    bool            `json:"resolved"`
}

// UpdateCardRequest is a partial update; nil fields are left unchanged
// server-side.
type UpdateCardRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Resolved    *bool   `json:"resolved,omitempty"`
}

type Client interface {
	// Login exchanges credentials for a bearer token. The caller is
	// responsible for persisting it.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates an account and returns the token plus, when the
	// backend includes it, the created user. A nil user means the
	// caller must fetch the current user separately.
	Register(ctx context.Context, reg Registration) (string, *models.User, error)

	// ValidateToken resolves the current user from the bearer token.
	// An absent or invalid token yields (nil, nil), not an error, so
	// callers can treat it as "not logged in".
	ValidateToken(ctx context.Context) (*models.User, error)

	// GetBoard returns (nil, nil) when the board does not exist.
	GetBoard(ctx context.Context, boardID int64) (*models.Board, error)
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	DeleteBoard(ctx context.Context, boardID int64) error

	// GetCards fetches the flat card list for the window and partitions
	// it into the three columns. A card with an unknown type tag fails
	// the whole call with ErrUnknownCardType.
	GetCards(ctx context.Context, boardID int64, start, end time.Time) (models.BoardData, error)
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, cardID int64, req UpdateCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, cardID int64) error

	GetMembers(ctx context.Context, boardID int64) ([]models.TeamMember, error)
	AddMember(ctx context.Context, boardID, memberID int64) (*models.TeamMember, error)
	RemoveMember(ctx context.Context, boardID, memberID int64) error
}
