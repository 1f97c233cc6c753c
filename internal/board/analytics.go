package board

import (
	"time"

	"github.com/dmitrijs2005/standupboard/internal/models"
)

// BlockerStats summarizes the blockers of a loaded window.
type BlockerStats struct {
	Total      int
	Resolved   int
	Unresolved int
}

// SummarizeBlockers counts resolved and unresolved blockers.
func SummarizeBlockers(blockers []models.Card) BlockerStats {
	s := BlockerStats{Total: len(blockers)}
	for _, b := range blockers {
		if b.Resolved {
			s.Resolved++
		} else {
			s.Unresolved++
		}
	}
	return s
}

// DayCompletion is the number of completed cards created on one day.
type DayCompletion struct {
	Date      time.Time
	Completed int
}

// PerformanceMetrics are derived client-side from a loaded window; the
// backend exposes no analytics endpoint.
type PerformanceMetrics struct {
	TasksPerDay         []DayCompletion
	BlockerStats        BlockerStats
	TotalTasksCompleted int
	AverageTasksPerDay  float64
}

// Performance computes per-day completion counts over [from, to] from
// the done column's creation dates, plus the blocker summary.
func Performance(data models.BoardData, from, to time.Time) PerformanceMetrics {
	perDay := make(map[time.Time]int)
	for _, card := range data.Done {
		if card.CreationDate.IsZero() {
			continue
		}
		perDay[models.Day(card.CreationDate.Time).Time]++
	}

	m := PerformanceMetrics{BlockerStats: SummarizeBlockers(data.Blockers)}

	start := models.Day(from).Time
	end := models.Day(to).Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		n := perDay[day]
		m.TasksPerDay = append(m.TasksPerDay, DayCompletion{Date: day, Completed: n})
		m.TotalTasksCompleted += n
	}
	if len(m.TasksPerDay) > 0 {
		m.AverageTasksPerDay = float64(m.TotalTasksCompleted) / float64(len(m.TasksPerDay))
	}
	return m
}
