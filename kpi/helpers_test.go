package kpi

import (
	"time"

	"contributorkpi/models"
)

var testNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(d float64) string {
	return testNow.Add(-time.Duration(d * float64(24*time.Hour))).Format(time.RFC3339)
}

func daysAhead(d float64) string {
	return daysAgo(-d)
}

func window30() Window {
	return Window{Kind: Window30Days, Now: testNow}
}

func logsAt(userID, projectID string, n int, hours float64, createdAt string) []models.TimeLog {
	logs := make([]models.TimeLog, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, models.TimeLog{UserID: userID, ProjectID: projectID, Hours: hours, CreatedAt: createdAt})
	}
	return logs
}

func score(v float64) *float64 {
	return &v
}
