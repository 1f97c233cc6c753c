package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/standupboard/internal/models"
)

func TestSummarizeBlockers(t *testing.T) {
	blockers := []models.Card{
		{ID: 6, Resolved: false},
		{ID: 7, Resolved: true},
		{ID: 8, Resolved: false},
	}

	s := SummarizeBlockers(blockers)
	assert.Equal(t, BlockerStats{Total: 3, Resolved: 1, Unresolved: 2}, s)

	assert.Equal(t, BlockerStats{}, SummarizeBlockers(nil))
}

func TestPerformance(t *testing.T) {
	stamp := func(d int) models.DayStamp {
		return models.Day(time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC))
	}
	data := models.BoardData{
		Done: []models.Card{
			{ID: 1, CreationDate: stamp(10)},
			{ID: 2, CreationDate: stamp(10)},
			{ID: 3, CreationDate: stamp(12)},
			{ID: 4}, // no creation date, skipped
		},
		Blockers: []models.Card{
			{ID: 6, Resolved: true},
			{ID: 7, Resolved: false},
		},
	}

	from := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)
	m := Performance(data, from, to)

	require.Len(t, m.TasksPerDay, 3)
	assert.Equal(t, 2, m.TasksPerDay[0].Completed)
	assert.Equal(t, 0, m.TasksPerDay[1].Completed)
	assert.Equal(t, 1, m.TasksPerDay[2].Completed)
	assert.Equal(t, 3, m.TotalTasksCompleted)
	assert.InDelta(t, 1.0, m.AverageTasksPerDay, 1e-9)
	assert.Equal(t, BlockerStats{Total: 2, Resolved: 1, Unresolved: 1}, m.BlockerStats)
}

func TestPerformance_EmptyWindow(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	m := Performance(models.BoardData{}, day, day)

	require.Len(t, m.TasksPerDay, 1)
	assert.Zero(t, m.TotalTasksCompleted)
	assert.Zero(t, m.AverageTasksPerDay)
}
