// Package plans holds the incident response plan slices: the plan list, the
// selected plan and the activities of that plan.
package plans

import (
	"context"
	"time"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// IncidentType is the hazard a plan responds to.
type IncidentType struct {
	ID     string `json:"_id,omitempty"`
	Name   string `json:"name,omitempty"`
	Nature string `json:"nature,omitempty"`
	Family string `json:"family,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Plan is an incident response plan.
type Plan struct {
	ID            string        `json:"_id,omitempty"`
	Description   string        `json:"description,omitempty"`
	Owner         string        `json:"owner,omitempty"`
	Jurisdiction  string        `json:"jurisdiction,omitempty"`
	IncidentType  *IncidentType `json:"incidentType,omitempty"`
	ActivityCount int           `json:"activityCount,omitempty"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
	UpdatedAt     time.Time     `json:"updatedAt,omitempty"`
}

// Activity is one step of a plan, grouped by phase.
type Activity struct {
	ID          string   `json:"_id"`
	Plan        string   `json:"plan"`
	Name        string   `json:"name"`
	Phase       string   `json:"phase"`
	Description string   `json:"description,omitempty"`
	Procedures  []string `json:"procedures,omitempty"`
}

// Page is one page of plans.
type Page struct {
	Data  []Plan `json:"data"`
	Page  int    `json:"page"`
	Total int    `json:"total"`
}

// ActivityPage is one page of plan activities.
type ActivityPage struct {
	Data  []Activity `json:"data"`
	Page  int        `json:"page"`
	Total int        `json:"total"`
}

// API is the fetch capability the plan operations depend on.
type API interface {
	GetPlans(ctx context.Context) (Page, error)
	GetPlanActivities(ctx context.Context, planID string) (ActivityPage, error)
}

// ListState is the "plans" slice.
type ListState struct {
	Data    []Plan             `json:"data"`
	Page    int                `json:"page"`
	Total   int                `json:"total"`
	Loading bool               `json:"loading"`
	Error   *store.ErrorObject `json:"error"`
}

// DefaultList returns the initial plans slice.
func DefaultList() ListState {
	return ListState{Data: []Plan{}, Page: 1}
}

// ActivitiesState is the "planActivities" slice.
type ActivitiesState struct {
	Data    []Activity         `json:"data"`
	Page    int                `json:"page"`
	Total   int                `json:"total"`
	Loading bool               `json:"loading"`
	Error   *store.ErrorObject `json:"error"`
}

// DefaultActivities returns the initial plan activities slice.
func DefaultActivities() ActivitiesState {
	return ActivitiesState{Data: []Activity{}, Page: 1}
}
