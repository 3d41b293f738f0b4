package kpi

import (
	"strings"
	"time"

	"contributorkpi/models"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a raw date string. Values without a zone are read as UTC.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// firstTimestamp returns the first candidate that parses.
func firstTimestamp(candidates ...string) (time.Time, bool) {
	for _, c := range candidates {
		if t, ok := ParseTimestamp(c); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func TaskTimestamp(t models.Task) (time.Time, bool) {
	return firstTimestamp(t.CreatedAt, t.UpdatedAt)
}

func ProjectTimestamp(p models.Project) (time.Time, bool) {
	return firstTimestamp(p.CreatedAt, p.StartDate)
}

func TimeLogTimestamp(l models.TimeLog) (time.Time, bool) {
	return firstTimestamp(l.CreatedAt, l.LoggedAt)
}

func CommentTimestamp(c models.Comment) (time.Time, bool) {
	return firstTimestamp(c.CreatedAt)
}

func DocumentTimestamp(d models.Document) (time.Time, bool) {
	return firstTimestamp(d.CreatedAt, d.UploadedAt)
}
