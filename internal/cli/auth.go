package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/standupboard/internal/api"
	"github.com/dmitrijs2005/standupboard/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new account. On
// success the user is logged in immediately.
func (a *App) Register(ctx context.Context) {
	a.route = session.RouteRegister

	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		a.fail("register", err)
		return
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.fail("register", err)
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.fail("register", err)
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.fail("register", err)
		return
	}

	reg := api.Registration{Name: name, Username: username, Email: email, Password: password}
	if err := a.session.Register(ctx, reg); err != nil {
		a.fail("register", err)
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.User().Name)
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) {
	a.route = session.RouteLogin

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		a.fail("login", err)
		return
	}
	password, err := getPassword(a.out)
	if err != nil {
		a.fail("login", err)
		return
	}

	if err := a.session.Login(ctx, username, password); err != nil {
		a.fail("login", err)
		return
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.session.User().Name)
}

// Logout clears the session and any open board.
func (a *App) Logout() {
	if err := a.session.Logout(); err != nil {
		a.fail("logout", err)
		return
	}
	a.controller = nil
	a.boardInfo = nil
	fmt.Fprintln(a.out, "Logged out")
}

// Whoami prints the current identity and, when the token is a readable
// JWT, its expiry.
func (a *App) Whoami() {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> (username %s)\n", u.Name, u.Email, u.Username)
	for _, t := range u.Teams {
		role := "member"
		if t.ScrumMaster {
			role = "scrum master"
		}
		fmt.Fprintf(a.out, "  board %d %q - %s\n", t.ID, t.Name, role)
	}
	if info, ok := a.session.Claims(); ok && !info.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "token expires %s\n", info.ExpiresAt.Format("2006-01-02 15:04"))
	}
}
