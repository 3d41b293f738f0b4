package kpi

import (
	"math"
	"strings"
	"time"

	"contributorkpi/models"
)

var priorityMultipliers = map[models.Priority]float64{
	models.PriorityCritical: 1.2,
	models.PriorityHigh:     1.1,
	models.PriorityMedium:   1.0,
	models.PriorityLow:      0.9,
}

// PriorityMultiplier falls back to the medium weight for unknown priorities.
func PriorityMultiplier(p models.Priority) float64 {
	if m, ok := priorityMultipliers[models.Priority(strings.ToLower(string(p)))]; ok {
		return m
	}
	return 1.0
}

// isOnTime: completed tasks compare completion against due, open tasks compare now against due.
// Tasks without a due date are never on time.
func isOnTime(t models.Task, now time.Time) bool {
	due, ok := ParseTimestamp(t.DueDate)
	if !ok {
		return false
	}
	if t.IsCompleted() {
		completed, ok := ParseTimestamp(t.CompletedAt)
		return ok && !completed.After(due)
	}
	return !now.After(due)
}

// DeliveryScore blends on-time ratio and milestone rate, scaled by the average priority weight.
// The milestone denominator is the user's full project list.
func DeliveryScore(tasks []models.Task, projects, allProjects []models.Project, now time.Time) float64 {
	if len(tasks) == 0 {
		return 0
	}

	onTime := 0
	weightSum := 0.0
	for _, t := range tasks {
		if isOnTime(t, now) {
			onTime++
		}
		weightSum += PriorityMultiplier(t.Priority)
	}
	onTimeRatio := float64(onTime) / float64(len(tasks))
	priorityWeight := weightSum / float64(len(tasks))

	milestoneRate := 0.0
	if len(allProjects) > 0 {
		completed := 0
		for _, p := range projects {
			if p.IsCompleted() {
				completed++
			}
		}
		milestoneRate = float64(completed) / float64(len(allProjects)) * 100
	}

	return math.Min(100, (onTimeRatio*100*0.6+milestoneRate*0.4)*priorityWeight)
}
