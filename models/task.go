package models

import "strings"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusDone       TaskStatus = "done"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Task dates are kept as the raw strings delivered upstream; they may be empty or malformed.
type Task struct {
	ID          string     `json:"id" bson:"_id" yaml:"id"`
	ProjectID   string     `json:"project_id" bson:"project_id" yaml:"project_id"`
	Title       string     `json:"title" bson:"title" yaml:"title"`
	Status      TaskStatus `json:"status" bson:"status" yaml:"status"`
	Priority    Priority   `json:"priority" bson:"priority" yaml:"priority"`
	DueDate     string     `json:"due_date,omitempty" bson:"due_date,omitempty" yaml:"due_date,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty" bson:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string     `json:"updated_at,omitempty" bson:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	CompletedAt string     `json:"completed_at,omitempty" bson:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	CreatedBy   string     `json:"created_by" bson:"created_by" yaml:"created_by"`
	AssigneeID  string     `json:"assignee_id,omitempty" bson:"assignee_id,omitempty" yaml:"assignee_id,omitempty"`
	Assignees   []string   `json:"assignees,omitempty" bson:"assignees,omitempty" yaml:"assignees,omitempty"`
}

// IsCompleted reports whether the task reached its terminal state ("completed" or "done").
func (t Task) IsCompleted() bool {
	switch TaskStatus(strings.ToLower(string(t.Status))) {
	case TaskStatusCompleted, TaskStatusDone:
		return true
	}
	return false
}

// IsAssignedTo checks both the single assignee field and the assignee list.
func (t Task) IsAssignedTo(userID string) bool {
	if t.AssigneeID == userID {
		return true
	}
	for _, id := range t.Assignees {
		if id == userID {
			return true
		}
	}
	return false
}
