// Package dashboard assembles the feature slices into the root state, routes
// actions to every slice reducer and exposes selectors over the result.
package dashboard

import (
	"github.com/kingrea/emis-dashboard/internal/alerts"
	"github.com/kingrea/emis-dashboard/internal/plans"
	"github.com/kingrea/emis-dashboard/internal/settings"
	"github.com/kingrea/emis-dashboard/internal/stakeholders"
	"github.com/kingrea/emis-dashboard/internal/store"
)

// State is the root of the dashboard state tree. Each field is an
// independently reduced slice; reducers never resolve references between
// them.
type State struct {
	Alerts               alerts.ListState        `json:"alerts"`
	AlertsMap            alerts.MapState         `json:"alertsMap"`
	AlertsFilter         alerts.FilterState      `json:"alertsFilter"`
	Plans                plans.ListState         `json:"plans"`
	SelectedPlan         *plans.Plan             `json:"selectedPlan"`
	PlanActivities       plans.ActivitiesState   `json:"planActivities"`
	SelectedPlanActivity *plans.Activity         `json:"selectedPlanActivity"`
	Contacts             stakeholders.State      `json:"contacts"`
	Filters              []stakeholders.Filter   `json:"filters"`
	IncidentTypes        settings.ListState      `json:"incidentTypes"`
	IncidentsType        settings.SelectionState `json:"incidentsType"`
}

// Options tunes slice reducers whose behaviour is configurable.
type Options struct {
	Map alerts.MapOptions
}

// Reducer builds the root reducer. Every action is offered to every slice;
// slices ignore types they do not recognise.
func Reducer(opts Options) store.Reducer[State] {
	reduceMap := alerts.MapReducer(opts.Map)
	return func(state *State, action store.Action) State {
		if state == nil {
			return State{
				Alerts:               alerts.List(nil, action),
				AlertsMap:            reduceMap(nil, action),
				AlertsFilter:         alerts.Filter(nil, action),
				Plans:                plans.List(nil, action),
				SelectedPlan:         plans.Selected(nil, action),
				PlanActivities:       plans.Activities(nil, action),
				SelectedPlanActivity: plans.SelectedActivity(nil, action),
				Contacts:             stakeholders.Contacts(nil, action),
				Filters:              stakeholders.Filters(nil, action),
				IncidentTypes:        settings.IncidentTypes(nil, action),
				IncidentsType:        settings.Selection(nil, action),
			}
		}
		prev := *state
		return State{
			Alerts:               alerts.List(&prev.Alerts, action),
			AlertsMap:            reduceMap(&prev.AlertsMap, action),
			AlertsFilter:         alerts.Filter(&prev.AlertsFilter, action),
			Plans:                plans.List(&prev.Plans, action),
			SelectedPlan:         plans.Selected(&prev.SelectedPlan, action),
			PlanActivities:       plans.Activities(&prev.PlanActivities, action),
			SelectedPlanActivity: plans.SelectedActivity(&prev.SelectedPlanActivity, action),
			Contacts:             stakeholders.Contacts(&prev.Contacts, action),
			Filters:              stakeholders.Filters(&prev.Filters, action),
			IncidentTypes:        settings.IncidentTypes(&prev.IncidentTypes, action),
			IncidentsType:        settings.Selection(&prev.IncidentsType, action),
		}
	}
}

// Reduce is the root reducer with default options.
var Reduce = Reducer(Options{})

// Registry returns a registry that decodes every dashboard action.
func Registry() *store.Registry {
	reg := store.NewRegistry()
	alerts.Register(reg)
	plans.Register(reg)
	stakeholders.Register(reg)
	settings.Register(reg)
	return reg
}
