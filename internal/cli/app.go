package cli

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/standupboard/internal/api"
	"github.com/dmitrijs2005/standupboard/internal/board"
	"github.com/dmitrijs2005/standupboard/internal/config"
	"github.com/dmitrijs2005/standupboard/internal/logging"
	"github.com/dmitrijs2005/standupboard/internal/models"
	"github.com/dmitrijs2005/standupboard/internal/session"
)

// App wires the session store, the API client and the per-board
// controller behind the interactive command loop.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	client  api.Client

	// controller and boardInfo are set while a board is open.
	controller *board.Controller
	boardInfo  *models.Board
	filters    models.FilterSpec

	route  session.Route
	reader *bufio.Reader
	out    io.Writer
}

// NewApp assembles the client from configuration. The session store is
// created first and bound to the HTTP client afterwards, because each
// needs the other: the client reads the live token from the store.
func NewApp(c *config.Config) (*App, error) {
	log := logging.NewDefault(os.Stderr, c.Verbose)

	tokens := session.NewTokenFile(c.TokenFile)
	store := session.NewStore(tokens, log)

	httpClient := &http.Client{Timeout: c.RequestTimeout}
	client := api.NewHTTPClient(c.APIBaseURL, httpClient, store, log)
	store.Bind(client)

	return &App{
		config:  c,
		log:     log,
		session: store,
		client:  client,
		route:   session.RouteBoards,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

// syncRoute applies the route guard to the current location.
func (a *App) syncRoute() {
	if r := session.Redirect(a.session.Loading(), a.session.LoggedIn(), a.route); r != "" {
		a.route = r
	}
}

// fail is the single user-facing error channel: every command failure is
// reported the same way instead of mixing dialogs and silent logs.
func (a *App) fail(action string, err error) {
	fmt.Fprintf(a.out, "%s failed: %v\n", action, err)
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Name
	}
	if a.boardInfo != nil {
		if s != "" {
			s += "@"
		}
		s += a.boardInfo.Name
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
