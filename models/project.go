package models

import "strings"

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID             string        `json:"id" bson:"_id" yaml:"id"`
	Name           string        `json:"name" bson:"name" yaml:"name"`
	Status         ProjectStatus `json:"status" bson:"status" yaml:"status"`
	AllocatedHours float64       `json:"allocated_hours,omitempty" bson:"allocated_hours,omitempty" yaml:"allocated_hours,omitempty"`
	TeamMembers    []string      `json:"team_members" bson:"team_members" yaml:"team_members"`
	CreatedAt      string        `json:"created_at,omitempty" bson:"created_at,omitempty" yaml:"created_at,omitempty"`
	StartDate      string        `json:"start_date,omitempty" bson:"start_date,omitempty" yaml:"start_date,omitempty"`
}

func (p Project) IsCompleted() bool {
	return ProjectStatus(strings.ToLower(string(p.Status))) == ProjectStatusCompleted
}

func (p Project) HasMember(userID string) bool {
	for _, id := range p.TeamMembers {
		if id == userID {
			return true
		}
	}
	return false
}
