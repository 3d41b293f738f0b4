package kpi

import (
	"strings"

	"contributorkpi/models"
)

// Weights combine the six sub-scores; each set sums to 1.0.
type Weights struct {
	Delivery      float64 `json:"delivery"`
	Reliability   float64 `json:"reliability"`
	Collaboration float64 `json:"collaboration"`
	Quality       float64 `json:"quality"`
	Initiative    float64 `json:"initiative"`
	Efficiency    float64 `json:"efficiency"`
}

func (w Weights) Sum() float64 {
	return w.Delivery + w.Reliability + w.Collaboration + w.Quality + w.Initiative + w.Efficiency
}

var (
	managerWeights  = Weights{Delivery: .20, Reliability: .25, Collaboration: .20, Quality: .20, Initiative: .10, Efficiency: .05}
	directorWeights = Weights{Delivery: .15, Reliability: .20, Collaboration: .25, Quality: .20, Initiative: .15, Efficiency: .05}
	memberWeights   = Weights{Delivery: .25, Reliability: .25, Collaboration: .20, Quality: .20, Initiative: .05, Efficiency: .05}
)

// WeightsForRole is case-insensitive; anything other than manager or director gets the member set.
func WeightsForRole(role models.Role) Weights {
	switch models.Role(strings.ToLower(strings.TrimSpace(string(role)))) {
	case models.RoleManager:
		return managerWeights
	case models.RoleDirector:
		return directorWeights
	default:
		return memberWeights
	}
}

// RoleWeights lists the distinct weight buckets keyed by role name.
func RoleWeights() map[models.Role]Weights {
	return map[models.Role]Weights{
		models.RoleManager:  managerWeights,
		models.RoleDirector: directorWeights,
		models.RoleMember:   memberWeights,
	}
}
