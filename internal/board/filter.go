package board

import (
	"time"

	"github.com/dmitrijs2005/standupboard/internal/models"
)

// ApplyFilters derives the visible subset of data under f. It never
// mutates its input and preserves the relative order within each column.
//
// The date filter admits cards whose creation date falls within the
// range inclusively, at day granularity. An empty author set admits
// everyone. A non-empty category set hides whole columns: categories
// absent from the set come back empty rather than filtered card by card.
func ApplyFilters(data models.BoardData, f models.FilterSpec) models.BoardData {
	var from, to time.Time
	if f.Range != nil {
		from, to = f.Range.From, f.Range.To
	}

	out := models.BoardData{
		Done:     filterCards(data.Done, from, to, f.Authors),
		Planned:  filterCards(data.Planned, from, to, f.Authors),
		Blockers: filterCards(data.Blockers, from, to, f.Authors),
	}

	if len(f.Categories) > 0 {
		if !hasCategory(f.Categories, models.CardTypeCompleted) {
			out.Done = nil
		}
		if !hasCategory(f.Categories, models.CardTypePlanned) {
			out.Planned = nil
		}
		if !hasCategory(f.Categories, models.CardTypeBlocker) {
			out.Blockers = nil
		}
	}
	return out
}

func filterCards(cards []models.Card, from, to time.Time, authors []string) []models.Card {
	var out []models.Card
	for _, card := range cards {
		if !card.CreationDate.Within(from, to) {
			continue
		}
		if len(authors) > 0 && !hasAuthor(authors, card.MemberName) {
			continue
		}
		out = append(out, card)
	}
	return out
}

func hasAuthor(authors []string, name string) bool {
	for _, a := range authors {
		if a == name {
			return true
		}
	}
	return false
}

func hasCategory(categories []models.CardType, t models.CardType) bool {
	for _, c := range categories {
		if c == t {
			return true
		}
	}
	return false
}
