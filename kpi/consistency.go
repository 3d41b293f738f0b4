package kpi

import (
	"math"

	"contributorkpi/models"
)

const expectedLogsPerWeek = 5

// LogConsistency compares the logs inside the window against five per week.
func LogConsistency(logs []models.TimeLog, w Window) float64 {
	actual := len(FilterTimeLogs(logs, w))
	if actual == 0 {
		return 0
	}
	expected := w.Weeks() * expectedLogsPerWeek
	if expected == 0 {
		return 0
	}
	return math.Min(100, float64(actual)/float64(expected)*100)
}
