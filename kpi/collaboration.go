package kpi

import (
	"math"

	"contributorkpi/models"
)

// CollaborationScore weighs comment frequency, document volume and the spread of comments
// across projects and tasks.
func CollaborationScore(comments []models.Comment, docs []models.Document, w Window) float64 {
	commentsScore := 0.0
	if weeks := w.Weeks(); weeks > 0 {
		perWeek := float64(len(comments)) / float64(weeks)
		commentsScore = math.Min(100, perWeek*5)
	}

	approved := 0
	for _, d := range docs {
		if d.IsApproved() {
			approved++
		}
	}
	documentScore := math.Min(100, float64(len(docs)*2+approved*3))

	keys := make(map[string]struct{})
	for _, c := range comments {
		switch {
		case c.ProjectID != "":
			keys["project:"+c.ProjectID] = struct{}{}
		case c.TaskID != "":
			keys["task:"+c.TaskID] = struct{}{}
		}
	}
	diversityScore := math.Min(100, float64(len(keys))*15)

	return commentsScore*0.4 + documentScore*0.4 + diversityScore*0.2
}
