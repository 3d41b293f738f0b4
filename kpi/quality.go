package kpi

import (
	"regexp"
	"strconv"

	"contributorkpi/models"
)

var ratingPattern = regexp.MustCompile(`(?i)rating:\s*(\d+(?:\.\d+)?)/5\b`)

// ParseRatingNote extracts X from "Rating: X/5", clamped to [0,5].
func ParseRatingNote(note string) (float64, bool) {
	m := ratingPattern.FindStringSubmatch(note)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return clamp(v, 0, 5), true
}

// ResolveRating prefers the numeric review score over the review note.
func ResolveRating(d models.Document) (float64, bool) {
	if d.ReviewScore != nil {
		return clamp(*d.ReviewScore, 0, 5), true
	}
	return ParseRatingNote(d.ReviewNote)
}

// QualityScore rescales the average resolved rating to 0-100 and reports how many documents
// carried a rating. Unrated documents are left out of the average.
func QualityScore(docs []models.Document) (score float64, rated int) {
	var sum float64
	for _, d := range docs {
		if r, ok := ResolveRating(d); ok {
			sum += r
			rated++
		}
	}
	if rated == 0 {
		return 0, 0
	}
	return clamp(sum/float64(rated)/5*100, 0, 100), rated
}
