package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/standupboard/internal/logging"
	"github.com/dmitrijs2005/standupboard/internal/models"
)

// HTTPClient implements Client over the backend's HTTP/JSON REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds an HTTPClient for the given base URL (no trailing
// slash required). The TokenSource is consulted on every request.
func NewHTTPClient(baseURL string, httpClient *http.Client, tokens TokenSource, log logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		log:     log,
	}
}

// apiError is the error body shape the backend uses for non-2xx responses.
type apiError struct {
	Message string `json:"message"`
}

// do performs one request. A non-nil body is sent as JSON; a non-nil out
// receives the decoded response. 204 and empty bodies are treated as an
// explicit no-value success and never decoded.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	reqID := uuid.NewString()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", reqID)
	if t := c.tokens.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed",
			"method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := c.statusError(resp)
		c.log.Debug(ctx, "request rejected",
			"method", method, "path", path, "request_id", reqID,
			"status", resp.StatusCode, "error", err)
		return err
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || resp.ContentLength == 0 {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Error(ctx, "undecodable response",
			"method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("%w: %v", ErrBadContract, err)
	}
	return nil
}

// statusError maps a non-2xx response to the error taxonomy. The server
// message is used when the body carries one.
func (c *HTTPClient) statusError(resp *http.Response) error {
	var body apiError
	if data, err := io.ReadAll(resp.Body); err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, &body)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if body.Message != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, body.Message)
		}
		return ErrUnauthorized
	case http.StatusNotFound:
		if body.Message != "" {
			return fmt.Errorf("%w: %s", ErrNotFound, body.Message)
		}
		return ErrNotFound
	default:
		return &StatusError{Status: resp.StatusCode, Message: body.Message}
	}
}

// authResponse is the login/register response. Register may include the
// created user; login never does.
type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg Registration) (string, *models.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", reg, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) ValidateToken(ctx context.Context) (*models.User, error) {
	if c.tokens.Token() == "" {
		return nil, nil
	}
	var u models.User
	err := c.do(ctx, http.MethodGet, "/members/me", nil, &u)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) GetBoard(ctx context.Context, boardID int64) (*models.Board, error) {
	var b models.Board
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%d", boardID), nil, &b)
	if err != nil {
		if isAbsence(err) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	req := struct {
		Name string `json:"name"`
	}{Name: name}

	var b models.Board
	if err := c.do(ctx, http.MethodPost, "/teams", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) DeleteBoard(ctx context.Context, boardID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/boards/%d", boardID), nil, nil)
}

// cardWindow scopes a card fetch. Ends are full ISO-8601 timestamps even
// though card creation dates come back at day granularity.
type cardWindow struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (c *HTTPClient) GetCards(ctx context.Context, boardID int64, start, end time.Time) (models.BoardData, error) {
	req := cardWindow{
		StartDate: start.Format(time.RFC3339),
		EndDate:   end.Format(time.RFC3339),
	}

	var cards []models.Card
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/teams/%d/entries", boardID), req, &cards); err != nil {
		return models.BoardData{}, err
	}

	var data models.BoardData
	for _, card := range cards {
		switch card.Type {
		case models.CardTypeCompleted:
			data.Done = append(data.Done, card)
		case models.CardTypePlanned:
			data.Planned = append(data.Planned, card)
		case models.CardTypeBlocker:
			data.Blockers = append(data.Blockers, card)
		default:
			c.log.Error(ctx, "card with unknown type in response",
				"board_id", boardID, "card_id", card.ID, "type", string(card.Type))
			return models.BoardData{}, fmt.Errorf("%w: card %d has type %q",
				models.ErrUnknownCardType, card.ID, card.Type)
		}
	}
	return data, nil
}

func (c *HTTPClient) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	var card models.Card
	if err := c.do(ctx, http.MethodPost, "/entries", req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *HTTPClient) UpdateCard(ctx context.Context, cardID int64, req UpdateCardRequest) (*models.Card, error) {
	var card models.Card
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/entries/%d", cardID), req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *HTTPClient) DeleteCard(ctx context.Context, cardID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/entries/%d", cardID), nil, nil)
}

func (c *HTTPClient) GetMembers(ctx context.Context, boardID int64) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%d/members", boardID), nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *HTTPClient) AddMember(ctx context.Context, boardID, memberID int64) (*models.TeamMember, error) {
	var m models.TeamMember
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/teams/%d/members/%d", boardID, memberID), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) RemoveMember(ctx context.Context, boardID, memberID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/teams/%d/members/%d", boardID, memberID), nil, nil)
}

// isAbsence reports whether err means "the thing is not there" rather
// than a real failure, for the optional lookups.
func isAbsence(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotFound)
}
