package models

type TimeLog struct {
	ID        string  `json:"id" bson:"_id" yaml:"id"`
	UserID    string  `json:"user_id" bson:"user_id" yaml:"user_id"`
	ProjectID string  `json:"project_id" bson:"project_id" yaml:"project_id"`
	TaskID    string  `json:"task_id,omitempty" bson:"task_id,omitempty" yaml:"task_id,omitempty"`
	Phase     string  `json:"phase,omitempty" bson:"phase,omitempty" yaml:"phase,omitempty"`
	Hours     float64 `json:"hours" bson:"hours" yaml:"hours"`
	CreatedAt string  `json:"created_at,omitempty" bson:"created_at,omitempty" yaml:"created_at,omitempty"`
	LoggedAt  string  `json:"logged_at,omitempty" bson:"logged_at,omitempty" yaml:"logged_at,omitempty"`
}
