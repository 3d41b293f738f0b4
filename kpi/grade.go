package kpi

var gradeThresholds = []struct {
	min   float64
	grade string
}{
	{95, "A+"},
	{90, "A"},
	{85, "B+"},
	{80, "B"},
	{75, "C+"},
	{70, "C"},
	{65, "D+"},
	{60, "D"},
}

// GradeFor maps an overall score to its letter grade.
func GradeFor(overall float64) string {
	for _, t := range gradeThresholds {
		if overall >= t.min {
			return t.grade
		}
	}
	return "F"
}
