package models

import "strings"

type DocumentStatus string

const (
	DocumentStatusDraft        DocumentStatus = "draft"
	DocumentStatusInReview     DocumentStatus = "in-review"
	DocumentStatusApproved     DocumentStatus = "approved"
	DocumentStatusNeedsChanges DocumentStatus = "needs-changes"
	DocumentStatusRejected     DocumentStatus = "rejected"
	DocumentStatusPending      DocumentStatus = "pending"
)

type Document struct {
	ID          string         `json:"id" bson:"_id" yaml:"id"`
	ProjectID   string         `json:"project_id" bson:"project_id" yaml:"project_id"`
	Name        string         `json:"name" bson:"name" yaml:"name"`
	UploadedBy  string         `json:"uploaded_by" bson:"uploaded_by" yaml:"uploaded_by"`
	Status      DocumentStatus `json:"status" bson:"status" yaml:"status"`
	ReviewScore *float64       `json:"review_score,omitempty" bson:"review_score,omitempty" yaml:"review_score,omitempty"` // 0-5
	ReviewNote  string         `json:"review_note,omitempty" bson:"review_note,omitempty" yaml:"review_note,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty" bson:"created_at,omitempty" yaml:"created_at,omitempty"`
	UploadedAt  string         `json:"uploaded_at,omitempty" bson:"uploaded_at,omitempty" yaml:"uploaded_at,omitempty"`
}

func (d Document) IsApproved() bool {
	return DocumentStatus(strings.ToLower(string(d.Status))) == DocumentStatusApproved
}
