package kpi

import (
	"math"
	"strings"

	"contributorkpi/models"
)

// isProactive matching is case-sensitive.
func isProactive(content string) bool {
	return strings.Contains(content, "?") ||
		strings.Contains(content, "suggest") ||
		strings.Contains(content, "recommend")
}

func InitiativeScore(userID string, tasks []models.Task, comments []models.Comment, logs []models.TimeLog, w Window) float64 {
	selfCreated := 0
	for _, t := range tasks {
		if t.CreatedBy == userID {
			selfCreated++
		}
	}
	selfStarted := math.Min(100, float64(selfCreated)*20)

	proactiveCount := 0
	for _, c := range comments {
		if isProactive(c.Content) {
			proactiveCount++
		}
	}
	proactive := math.Min(100, float64(proactiveCount)*10)

	return LogConsistency(logs, w)*0.4 + selfStarted*0.3 + proactive*0.3
}
