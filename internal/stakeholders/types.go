// Package stakeholders holds the contacts slice: the stakeholder list, the
// selected stakeholder and the navigation drawer flag.
package stakeholders

import (
	"context"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// Stakeholder is a contact person or agency involved in a plan.
type Stakeholder struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Type         string `json:"type,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Mobile       string `json:"mobile,omitempty"`
	Email        string `json:"email,omitempty"`
	Area         string `json:"area,omitempty"`
	Physical     string `json:"physicalAddress,omitempty"`
}

// API is the fetch capability the stakeholder operations depend on. An
// empty query lists everyone.
type API interface {
	GetStakeholders(ctx context.Context, query string) ([]Stakeholder, error)
}

// State is the "contacts" slice. Total always equals len(Data) as of the
// last store action.
type State struct {
	Data         []Stakeholder      `json:"data"`
	Total        int                `json:"total"`
	Selected     Stakeholder        `json:"selected"`
	IsDrawerOpen bool               `json:"isDrawerOpen"`
	Error        *store.ErrorObject `json:"error"`
}

// Default returns the initial contacts slice.
func Default() State {
	return State{Data: []Stakeholder{}}
}

// Filter is one entry of the stakeholder filters slice.
type Filter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// DefaultFilters returns the initial filters slice.
func DefaultFilters() []Filter {
	return []Filter{}
}
