package kpi

import (
	"testing"

	"contributorkpi/models"

	"github.com/stretchr/testify/assert"
)

func TestEfficiencyScore(t *testing.T) {
	t.Run("no completed projects falls back to base", func(t *testing.T) {
		projects := []models.Project{{ID: "p1", Status: "active", AllocatedHours: 10}}
		assert.Equal(t, BaseEfficiency, EfficiencyScore(projects, logsAt("u1", "p1", 2, 5, daysAgo(1))))
		assert.Equal(t, BaseEfficiency, EfficiencyScore(nil, nil))
	})

	t.Run("completed projects without budget or hours fall back to base", func(t *testing.T) {
		projects := []models.Project{
			{ID: "p1", Status: "completed"},
			{ID: "p2", Status: "completed", AllocatedHours: 40},
		}
		logs := logsAt("u1", "p1", 3, 4, daysAgo(1))
		assert.Equal(t, BaseEfficiency, EfficiencyScore(projects, logs))
	})

	t.Run("averages qualifying projects with per-project cap", func(t *testing.T) {
		projects := []models.Project{
			{ID: "p1", Status: "completed", AllocatedHours: 100},
			{ID: "p2", Status: "Completed", AllocatedHours: 100},
			{ID: "p3", Status: "completed", AllocatedHours: 50},
			{ID: "p4", Status: "active", AllocatedHours: 10},
		}
		var logs []models.TimeLog
		logs = append(logs, logsAt("u1", "p1", 4, 20, daysAgo(2))...) // 80h -> 125
		logs = append(logs, logsAt("u1", "p2", 1, 25, daysAgo(2))...) // 25h -> 400, capped 150
		logs = append(logs, logsAt("u1", "p4", 1, 1, daysAgo(2))...)

		assert.InDelta(t, (125.0+150.0)/2, EfficiencyScore(projects, logs), 1e-9)
	})

	t.Run("over budget", func(t *testing.T) {
		projects := []models.Project{{ID: "p1", Status: "completed", AllocatedHours: 50}}
		assert.InDelta(t, 50.0, EfficiencyScore(projects, logsAt("u1", "p1", 10, 10, daysAgo(1))), 1e-9)
	})
}
