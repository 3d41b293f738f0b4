package models

type Comment struct {
	ID        string `json:"id" bson:"_id" yaml:"id"`
	AuthorID  string `json:"author_id" bson:"author_id" yaml:"author_id"`
	ProjectID string `json:"project_id,omitempty" bson:"project_id,omitempty" yaml:"project_id,omitempty"`
	TaskID    string `json:"task_id,omitempty" bson:"task_id,omitempty" yaml:"task_id,omitempty"`
	Content   string `json:"content" bson:"content" yaml:"content"`
	CreatedAt string `json:"created_at,omitempty" bson:"created_at,omitempty" yaml:"created_at,omitempty"`
}
