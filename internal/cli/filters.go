package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/standupboard/internal/models"
)

const dateLayout = "2006-01-02"

// SetFilters prompts for a date range, authors and categories. A change
// of date range re-scopes the fetch window; author and category filters
// apply client-side on the loaded data.
func (a *App) SetFilters(ctx context.Context) {
	if !a.requireBoard() {
		return
	}

	fromText, err := getSimpleText(a.reader, "From date, YYYY-MM-DD (empty = one year ago)", a.out)
	if err != nil {
		a.fail("filter", err)
		return
	}
	toText, err := getSimpleText(a.reader, "To date, YYYY-MM-DD (empty = today)", a.out)
	if err != nil {
		a.fail("filter", err)
		return
	}
	authorText, err := getSimpleText(a.reader, "Authors, comma-separated (empty = all)", a.out)
	if err != nil {
		a.fail("filter", err)
		return
	}
	categoryText, err := getSimpleText(a.reader, "Columns: done, planned, blocker (empty = all)", a.out)
	if err != nil {
		a.fail("filter", err)
		return
	}

	var r models.DateRange
	if fromText != "" {
		if r.From, err = time.Parse(dateLayout, fromText); err != nil {
			fmt.Fprintf(a.out, "Bad date %q\n", fromText)
			return
		}
	}
	if toText != "" {
		if r.To, err = time.Parse(dateLayout, toText); err != nil {
			fmt.Fprintf(a.out, "Bad date %q\n", toText)
			return
		}
	}

	spec := models.FilterSpec{
		Authors:    splitList(authorText),
		Categories: parseCategories(splitList(categoryText)),
	}
	if !r.IsZero() {
		spec.Range = &r
	}

	// The range also scopes the fetch, so reload. The new spec is
	// applied only once the reload succeeded; a failed reload keeps
	// the previous filters and data.
	if err := a.controller.Load(ctx, r); err != nil {
		a.fail("filter", err)
		return
	}
	a.filters = spec
	a.ShowBoard()
}

// ClearFilters resets to the unfiltered default window.
func (a *App) ClearFilters(ctx context.Context) {
	if !a.requireBoard() {
		return
	}
	if err := a.controller.Load(ctx, models.DateRange{}); err != nil {
		a.fail("filter", err)
		return
	}
	a.filters = models.FilterSpec{}
	a.ShowBoard()
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseCategories(names []string) []models.CardType {
	var out []models.CardType
	for _, n := range names {
		switch strings.ToLower(n) {
		case "done":
			out = append(out, models.CardTypeCompleted)
		case "planned", "willdo":
			out = append(out, models.CardTypePlanned)
		case "blocker", "blockers":
			out = append(out, models.CardTypeBlocker)
		}
	}
	return out
}
