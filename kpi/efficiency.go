package kpi

import (
	"math"

	"contributorkpi/models"
)

// BaseEfficiency is reported when no completed project has both a budget and logged hours.
const BaseEfficiency = 85.0

const maxProjectEfficiency = 150.0

// EfficiencyScore compares allocated against logged hours for completed projects.
// Projects come from the full list; logs are the window-filtered ones.
func EfficiencyScore(projects []models.Project, logs []models.TimeLog) float64 {
	var completed []models.Project
	for _, p := range projects {
		if p.IsCompleted() {
			completed = append(completed, p)
		}
	}
	if len(completed) == 0 {
		return BaseEfficiency
	}

	hoursByProject := make(map[string]float64)
	for _, l := range logs {
		hoursByProject[l.ProjectID] += l.Hours
	}

	var total float64
	counted := 0
	for _, p := range completed {
		if p.AllocatedHours <= 0 {
			continue
		}
		logged := hoursByProject[p.ID]
		if logged <= 0 {
			continue
		}
		total += math.Min(maxProjectEfficiency, p.AllocatedHours/logged*100)
		counted++
	}
	if counted == 0 {
		return BaseEfficiency
	}
	return total / float64(counted)
}
