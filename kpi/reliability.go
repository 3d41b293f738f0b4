package kpi

import (
	"math"

	"contributorkpi/models"
)

// ReliabilityScore penalizes overdue work and slow completion and rewards steady logging.
func ReliabilityScore(tasks []models.Task, logs []models.TimeLog, w Window) float64 {
	if len(tasks) == 0 {
		return 0
	}

	overdue := 0
	var totalDays float64
	completedSamples := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			created, okCreated := ParseTimestamp(t.CreatedAt)
			completed, okCompleted := ParseTimestamp(t.CompletedAt)
			if okCreated && okCompleted {
				totalDays += completed.Sub(created).Hours() / 24
				completedSamples++
			}
			continue
		}
		if due, ok := ParseTimestamp(t.DueDate); ok && due.Before(w.Now) {
			overdue++
		}
	}

	overduePenalty := 30 * float64(overdue) / float64(len(tasks))

	avgDays := 0.0
	if completedSamples > 0 {
		avgDays = totalDays / float64(completedSamples)
	}
	freshness := clamp(100-2*avgDays, 0, 100)

	consistency := LogConsistency(logs, w)

	return math.Max(0, 100-overduePenalty-0.3*(100-freshness)-0.2*(100-consistency))
}
