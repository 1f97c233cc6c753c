package cli

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/standupboard/internal/models"
)

// renderBoard prints the three columns in order.
func (a *App) renderBoard(data models.BoardData) {
	a.renderColumn("DONE", data.Done, false)
	a.renderColumn("PLANNED", data.Planned, false)
	a.renderColumn("BLOCKERS", data.Blockers, true)
	fmt.Fprintf(a.out, "%d card(s)\n", data.Total())
}

func (a *App) renderColumn(title string, cards []models.Card, withResolved bool) {
	fmt.Fprintf(a.out, "── %s (%d)\n", title, len(cards))
	for _, c := range cards {
		a.renderCard(c, withResolved)
	}
}

func (a *App) renderCard(c models.Card, withResolved bool) {
	mark := ""
	if withResolved {
		if c.Resolved {
			mark = " [resolved]"
		} else {
			mark = " [open]"
		}
	}
	fmt.Fprintf(a.out, "  #%-4d %s%s - %s, %s\n", c.ID, c.Title, mark, c.MemberName, c.CreationDate)
	if c.Description != "" {
		fmt.Fprintf(a.out, "        %s\n", c.Description)
	}
}

// windowBounds resolves the effective bounds of the loaded window for
// reporting, mirroring the controller's defaulting.
func (a *App) windowBounds() (time.Time, time.Time) {
	w := a.controller.Window()
	from, to := w.From, w.To
	now := time.Now()
	if from.IsZero() {
		from = now.AddDate(-1, 0, 0)
	}
	if to.IsZero() {
		to = now
	}
	return from, to
}
