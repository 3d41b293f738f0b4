package kpi

import (
	"time"

	"contributorkpi/models"
)

type Result struct {
	UserID          string      `json:"user_id"`
	Role            models.Role `json:"role"`
	Window          TimeWindow  `json:"window"`
	Delivery        float64     `json:"delivery"`
	Reliability     float64     `json:"reliability"`
	Collaboration   float64     `json:"collaboration"`
	Quality         float64     `json:"quality"`
	Initiative      float64     `json:"initiative"`
	Efficiency      float64     `json:"efficiency"`
	Overall         float64     `json:"overall"`
	Grade           string      `json:"grade"`
	Weights         Weights     `json:"weights"`
	QualityOverride bool        `json:"quality_override"`
	RatedDocuments  int         `json:"rated_documents"`
	CalculatedAt    time.Time   `json:"calculated_at"`
}

type Option func(*Calculator)

// WithNow pins the reference time used for the window and for due-date checks.
func WithNow(now time.Time) Option {
	return func(c *Calculator) {
		c.now = now
	}
}

// Calculator holds one user's activity, already narrowed to records owned by that user.
type Calculator struct {
	user     models.User
	activity models.ActivityBundle
	window   TimeWindow
	now      time.Time
}

// NewCalculator keeps only the records relevant to user: tasks assigned to them, projects they
// are a member of, their own time logs, comments they wrote and documents they uploaded.
func NewCalculator(user models.User, bundle models.ActivityBundle, window TimeWindow, opts ...Option) (*Calculator, error) {
	parsed, err := ParseTimeWindow(string(window))
	if err != nil {
		return nil, err
	}

	c := &Calculator{
		user:     user,
		activity: ownedBy(user.ID, bundle),
		window:   parsed,
		now:      time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func ownedBy(userID string, b models.ActivityBundle) models.ActivityBundle {
	var out models.ActivityBundle
	for _, t := range b.Tasks {
		if t.IsAssignedTo(userID) {
			out.Tasks = append(out.Tasks, t)
		}
	}
	for _, p := range b.Projects {
		if p.HasMember(userID) {
			out.Projects = append(out.Projects, p)
		}
	}
	for _, l := range b.TimeLogs {
		if l.UserID == userID {
			out.TimeLogs = append(out.TimeLogs, l)
		}
	}
	for _, c := range b.Comments {
		if c.AuthorID == userID {
			out.Comments = append(out.Comments, c)
		}
	}
	for _, d := range b.Documents {
		if d.UploadedBy == userID {
			out.Documents = append(out.Documents, d)
		}
	}
	return out
}

// CalculateKPI runs the six scorers, combines them with the role weights and grades the result.
// When any document in the window carries a rating, the overall score is the quality score alone.
func (c *Calculator) CalculateKPI() Result {
	w := Window{Kind: c.window, Now: c.now}
	a := c.activity

	tasks := FilterTasks(a.Tasks, w)
	projects := FilterProjects(a.Projects, w)
	logs := FilterTimeLogs(a.TimeLogs, w)
	comments := FilterComments(a.Comments, w)
	docs := FilterDocuments(a.Documents, w)

	delivery := DeliveryScore(tasks, projects, a.Projects, w.Now)
	reliability := ReliabilityScore(tasks, a.TimeLogs, w)
	collaboration := CollaborationScore(comments, docs, w)
	quality, rated := QualityScore(docs)
	initiative := InitiativeScore(c.user.ID, tasks, comments, a.TimeLogs, w)
	efficiency := EfficiencyScore(a.Projects, logs)

	weights := WeightsForRole(c.user.Role)
	overall := clamp(delivery*weights.Delivery+
		reliability*weights.Reliability+
		collaboration*weights.Collaboration+
		quality*weights.Quality+
		initiative*weights.Initiative+
		efficiency*weights.Efficiency, 0, 100)

	override := rated > 0
	if override {
		overall = quality
	}
	overall = round1(overall)

	return Result{
		UserID:          c.user.ID,
		Role:            c.user.Role,
		Window:          c.window,
		Delivery:        round1(delivery),
		Reliability:     round1(reliability),
		Collaboration:   round1(collaboration),
		Quality:         round1(quality),
		Initiative:      round1(initiative),
		Efficiency:      round1(efficiency),
		Overall:         overall,
		Grade:           GradeFor(overall),
		Weights:         weights,
		QualityOverride: override,
		RatedDocuments:  rated,
		CalculatedAt:    c.now,
	}
}
