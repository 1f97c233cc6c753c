package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/standupboard/internal/board"
	"github.com/dmitrijs2005/standupboard/internal/models"
)

// ListBoards prints the boards the current user belongs to.
func (a *App) ListBoards() {
	u := a.session.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	if len(u.Teams) == 0 {
		fmt.Fprintln(a.out, "No boards yet. Use 'newboard' to create one.")
		return
	}
	for _, t := range u.Teams {
		marker := ""
		if t.ScrumMaster {
			marker = " *"
		}
		fmt.Fprintf(a.out, "  %d  %s%s\n", t.ID, t.Name, marker)
	}
}

// OpenBoard fetches board details and loads today's cards. The initial
// window matches the board page default: today through today.
func (a *App) OpenBoard(ctx context.Context, boardID int64) {
	if boardID == 0 {
		fmt.Fprintln(a.out, "Usage: open <board id>")
		return
	}

	b, err := a.client.GetBoard(ctx, boardID)
	if err != nil {
		a.fail("open board", err)
		return
	}
	if b == nil {
		fmt.Fprintf(a.out, "Board %d not found\n", boardID)
		return
	}

	a.boardInfo = b
	a.controller = board.NewController(boardID, a.client, a.log)
	today := time.Now()
	a.filters = models.FilterSpec{Range: &models.DateRange{From: today, To: today}}

	if err := a.controller.Load(ctx, *a.filters.Range); err != nil {
		a.fail("load board", err)
		return
	}
	a.ShowBoard()
}

// CreateBoard creates a board; the backend makes the creator its scrum
// master. The session user is re-fetched so the new role shows up.
func (a *App) CreateBoard(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Board name", a.out)
	if err != nil || name == "" {
		fmt.Fprintln(a.out, "Board name is required")
		return
	}

	b, err := a.client.CreateBoard(ctx, name)
	if err != nil {
		a.fail("create board", err)
		return
	}
	fmt.Fprintf(a.out, "Created board %d %q\n", b.ID, b.Name)
	if err := a.session.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "refreshing user after board creation failed", "error", err)
	}
}

// DeleteBoard deletes the open board. Scrum master only; the server
// enforces this independently.
func (a *App) DeleteBoard(ctx context.Context) {
	if a.boardInfo == nil {
		fmt.Fprintln(a.out, "No board open")
		return
	}
	if !a.isScrumMaster() {
		fmt.Fprintln(a.out, "Only the scrum master can delete the board")
		return
	}

	confirm, err := getSimpleText(a.reader,
		fmt.Sprintf("Delete board %q? Type its name to confirm", a.boardInfo.Name), a.out)
	if err != nil || confirm != a.boardInfo.Name {
		fmt.Fprintln(a.out, "Aborted")
		return
	}

	if err := a.client.DeleteBoard(ctx, a.boardInfo.ID); err != nil {
		a.fail("delete board", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted board %q\n", a.boardInfo.Name)
	a.boardInfo = nil
	a.controller = nil
	if err := a.session.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "refreshing user after board deletion failed", "error", err)
	}
}

// isScrumMaster reports whether the current user runs the open board.
// This only gates UI affordances; authorization lives on the server.
func (a *App) isScrumMaster() bool {
	u := a.session.User()
	if u == nil || a.boardInfo == nil {
		return false
	}
	return u.IsScrumMaster(a.boardInfo.ID) || u.Name == a.boardInfo.ScrumMaster
}
