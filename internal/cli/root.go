package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Run restores the session and starts the command loop.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Init(ctx); err != nil {
		a.fail("session restore", err)
	}
	a.syncRoute()

	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Name)
	}
	fmt.Fprintln(a.out, "standup board CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "sb %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
		a.dispatch(ctx, cmd, args)
		a.syncRoute()
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	if !a.isLoggedIn() {
		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: register, login, exit")
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
		return
	}

	switch cmd {
	case "help":
		a.help()
	case "login":
		a.Login(ctx)
	case "logout":
		a.Logout()
	case "whoami":
		a.Whoami()
	case "boards":
		a.ListBoards()
	case "open":
		a.OpenBoard(ctx, firstID(args))
	case "newboard":
		a.CreateBoard(ctx)
	case "deleteboard":
		a.DeleteBoard(ctx)
	case "show":
		a.ShowBoard()
	case "filter":
		a.SetFilters(ctx)
	case "nofilter":
		a.ClearFilters(ctx)
	case "add":
		a.AddCards(ctx)
	case "edit":
		a.EditCard(ctx, firstID(args))
	case "delete":
		a.DeleteCard(ctx, firstID(args))
	case "resolve":
		a.ToggleResolved(ctx, firstID(args))
	case "blockers":
		a.BlockerReport()
	case "perf":
		a.PerformanceReport()
	case "team":
		a.ShowTeam(ctx)
	case "addmember":
		a.AddMember(ctx, firstID(args))
	case "removemember":
		a.RemoveMember(ctx, firstID(args))
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
}

func (a *App) help() {
	fmt.Fprintln(a.out, "Available commands: boards, open <id>, show, add, edit <id>, delete <id>,")
	fmt.Fprintln(a.out, "  resolve <id>, filter, nofilter, blockers, perf, team, newboard, whoami, logout, exit")
	if a.isScrumMaster() {
		fmt.Fprintln(a.out, "Scrum master: addmember <id>, removemember <id>, deleteboard")
	}
}

// firstID parses the first argument as a numeric id; 0 means absent or
// malformed, which command handlers report as usage errors.
func firstID(args []string) int64 {
	if len(args) == 0 {
		return 0
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
