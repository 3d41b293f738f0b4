package kpi

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"contributorkpi/models"
)

var ErrInvalidTimeWindow = errors.New("invalid time window")

type TimeWindow string

const (
	Window30Days TimeWindow = "30days"
	Window90Days TimeWindow = "90days"
	WindowYTD    TimeWindow = "ytd"
)

// ParseTimeWindow accepts only the three literal selectors.
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch w := TimeWindow(strings.TrimSpace(s)); w {
	case Window30Days, Window90Days, WindowYTD:
		return w, nil
	}
	return "", fmt.Errorf("%w: %q (expected 30days, 90days or ytd)", ErrInvalidTimeWindow, s)
}

// Window is a time window anchored at a fixed "now".
type Window struct {
	Kind TimeWindow
	Now  time.Time
}

func NewWindow(kind TimeWindow, now time.Time) (Window, error) {
	parsed, err := ParseTimeWindow(string(kind))
	if err != nil {
		return Window{}, err
	}
	return Window{Kind: parsed, Now: now}, nil
}

// Cutoff is the earliest instant that still falls inside the window.
func (w Window) Cutoff() time.Time {
	switch w.Kind {
	case Window90Days:
		return w.Now.Add(-90 * 24 * time.Hour)
	case WindowYTD:
		return time.Date(w.Now.Year(), time.January, 1, 0, 0, 0, 0, w.Now.Location())
	default:
		return w.Now.Add(-30 * 24 * time.Hour)
	}
}

// Weeks is the number of days between cutoff and now divided by seven, rounded up.
func (w Window) Weeks() int {
	days := w.Now.Sub(w.Cutoff()).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days / 7))
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Cutoff())
}

func filterSince[T any](items []T, resolve func(T) (time.Time, bool), w Window) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ts, ok := resolve(item)
		if !ok || !w.Contains(ts) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func FilterTasks(tasks []models.Task, w Window) []models.Task {
	return filterSince(tasks, TaskTimestamp, w)
}

func FilterProjects(projects []models.Project, w Window) []models.Project {
	return filterSince(projects, ProjectTimestamp, w)
}

func FilterTimeLogs(logs []models.TimeLog, w Window) []models.TimeLog {
	return filterSince(logs, TimeLogTimestamp, w)
}

func FilterComments(comments []models.Comment, w Window) []models.Comment {
	return filterSince(comments, CommentTimestamp, w)
}

func FilterDocuments(docs []models.Document, w Window) []models.Document {
	return filterSince(docs, DocumentTimestamp, w)
}
