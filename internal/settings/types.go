// Package settings holds the system settings slices. Incident types are the
// only settings the dashboard manages today.
package settings

import (
	"context"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// Code holds the given and CAP codes of an incident type.
type Code struct {
	Given string `json:"given,omitempty"`
	CAP   string `json:"cap"`
}

// IncidentType is a hazard category configured for the system.
type IncidentType struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Nature      string `json:"nature"`
	Family      string `json:"family"`
	Code        Code   `json:"code"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Page is one page of incident types.
type Page struct {
	Data  []IncidentType `json:"data"`
	Page  int            `json:"page"`
	Total int            `json:"total"`
}

// API is the fetch capability the settings operations depend on.
type API interface {
	GetIncidentTypes(ctx context.Context) (Page, error)
}

// ListState is the "incidentTypes" slice.
type ListState struct {
	Data    []IncidentType     `json:"data"`
	Page    int                `json:"page"`
	Total   int                `json:"total"`
	Loading bool               `json:"loading"`
	Error   *store.ErrorObject `json:"error"`
}

// DefaultList returns the initial incident types slice.
func DefaultList() ListState {
	return ListState{Data: []IncidentType{}, Page: 1}
}

// SelectionState is the "incidentsType" slice holding the incident type
// shown in the settings detail pane.
type SelectionState struct {
	Data *IncidentType `json:"data"`
}

// DefaultSelection returns the initial selection slice.
func DefaultSelection() SelectionState {
	return SelectionState{}
}
