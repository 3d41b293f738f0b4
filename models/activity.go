package models

// ActivityBundle is the in-memory snapshot of one user's activity handed to the KPI engine.
type ActivityBundle struct {
	Tasks     []Task     `json:"tasks" yaml:"tasks"`
	Projects  []Project  `json:"projects" yaml:"projects"`
	TimeLogs  []TimeLog  `json:"time_logs" yaml:"time_logs"`
	Comments  []Comment  `json:"comments" yaml:"comments"`
	Documents []Document `json:"documents" yaml:"documents"`
}
