package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/standupboard/internal/api"
	"github.com/dmitrijs2005/standupboard/internal/board"
	"github.com/dmitrijs2005/standupboard/internal/models"
)

// requireBoard prints a hint and returns false when no board is open.
func (a *App) requireBoard() bool {
	if a.controller == nil {
		fmt.Fprintln(a.out, "No board open. Use 'open <id>' first.")
		return false
	}
	return true
}

// ShowBoard renders the loaded card set narrowed by the active filters.
func (a *App) ShowBoard() {
	if !a.requireBoard() {
		return
	}
	data := board.ApplyFilters(a.controller.Data(), a.filters)
	a.renderBoard(data)
}

// AddCards collects drafts per column and submits them in one bulk
// operation.
func (a *App) AddCards(ctx context.Context) {
	if !a.requireBoard() {
		return
	}

	var drafts board.Drafts
	collect := func(label string) []board.CardDraft {
		var out []board.CardDraft
		for {
			title, err := getSimpleText(a.reader,
				fmt.Sprintf("[%s] card title (empty to finish)", label), a.out)
			if err != nil || title == "" {
				return out
			}
			desc, err := getSimpleText(a.reader, "Description (optional)", a.out)
			if err != nil {
				return out
			}
			out = append(out, board.CardDraft{Title: title, Description: desc})
		}
	}
	drafts.Done = collect("done")
	drafts.Planned = collect("planned")
	drafts.Blockers = collect("blockers")

	if len(drafts.Done)+len(drafts.Planned)+len(drafts.Blockers) == 0 {
		fmt.Fprintln(a.out, "Nothing to add")
		return
	}

	if err := a.controller.AddCards(ctx, drafts, a.session.User()); err != nil {
		a.fail("add cards", err)
		return
	}
	a.ShowBoard()
}

// EditCard updates a card's title and/or description. Only the card's
// author may edit it from here; the server checks again regardless.
func (a *App) EditCard(ctx context.Context, cardID int64) {
	if !a.requireBoard() {
		return
	}
	card, category, ok := a.findCard(cardID)
	if !ok {
		fmt.Fprintf(a.out, "Card %d not found\n", cardID)
		return
	}
	if !a.ownsCard(card) {
		fmt.Fprintln(a.out, "You can only edit your own cards")
		return
	}

	title, err := getSimpleText(a.reader,
		fmt.Sprintf("New title (empty keeps %q)", card.Title), a.out)
	if err != nil {
		a.fail("edit card", err)
		return
	}
	desc, err := getSimpleText(a.reader, "New description (empty keeps current)", a.out)
	if err != nil {
		a.fail("edit card", err)
		return
	}

	var upd api.UpdateCardRequest
	if title != "" {
		upd.Title = &title
	}
	if desc != "" {
		upd.Description = &desc
	}
	if upd.Title == nil && upd.Description == nil {
		fmt.Fprintln(a.out, "Nothing changed")
		return
	}

	if err := a.controller.EditCard(ctx, category, cardID, upd); err != nil {
		a.fail("edit card", err)
		return
	}
	fmt.Fprintf(a.out, "Updated card %d\n", cardID)
}

// DeleteCard removes a card.
func (a *App) DeleteCard(ctx context.Context, cardID int64) {
	if !a.requireBoard() {
		return
	}
	card, category, ok := a.findCard(cardID)
	if !ok {
		fmt.Fprintf(a.out, "Card %d not found\n", cardID)
		return
	}
	if !a.ownsCard(card) {
		fmt.Fprintln(a.out, "You can only delete your own cards")
		return
	}

	if err := a.controller.DeleteCard(ctx, category, cardID); err != nil {
		a.fail("delete card", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted card %d\n", cardID)
}

// ToggleResolved flips a blocker's resolved flag.
func (a *App) ToggleResolved(ctx context.Context, cardID int64) {
	if !a.requireBoard() {
		return
	}
	if err := a.controller.ToggleResolved(ctx, cardID); err != nil {
		a.fail("resolve", err)
		return
	}
	a.ShowBoard()
}

// BlockerReport prints the blocker summary for the loaded window.
func (a *App) BlockerReport() {
	if !a.requireBoard() {
		return
	}
	stats := board.SummarizeBlockers(a.controller.Data().Blockers)
	fmt.Fprintf(a.out, "Blockers: %d total, %d resolved, %d unresolved\n",
		stats.Total, stats.Resolved, stats.Unresolved)
	for _, b := range a.controller.Data().Blockers {
		a.renderCard(b, true)
	}
}

// PerformanceReport prints per-day completion counts for the loaded
// window.
func (a *App) PerformanceReport() {
	if !a.requireBoard() {
		return
	}
	from, to := a.windowBounds()
	m := board.Performance(a.controller.Data(), from, to)
	for _, d := range m.TasksPerDay {
		fmt.Fprintf(a.out, "  %s  %d\n", d.Date.Format("2006-01-02"), d.Completed)
	}
	fmt.Fprintf(a.out, "Total completed: %d (%.1f/day); blockers %d/%d resolved\n",
		m.TotalTasksCompleted, m.AverageTasksPerDay,
		m.BlockerStats.Resolved, m.BlockerStats.Total)
}

// findCard locates a card by id across the three columns of the loaded
// data.
func (a *App) findCard(cardID int64) (models.Card, models.CardType, bool) {
	data := a.controller.Data()
	for _, c := range data.Done {
		if c.ID == cardID {
			return c, models.CardTypeCompleted, true
		}
	}
	for _, c := range data.Planned {
		if c.ID == cardID {
			return c, models.CardTypePlanned, true
		}
	}
	for _, c := range data.Blockers {
		if c.ID == cardID {
			return c, models.CardTypeBlocker, true
		}
	}
	return models.Card{}, "", false
}

// ownsCard compares the card author to the current user by name, the
// same comparison the board header shows. It is a convenience check
// only; the server authorizes every mutation on its own.
func (a *App) ownsCard(card models.Card) bool {
	u := a.session.User()
	return u != nil && u.Name == card.MemberName
}
