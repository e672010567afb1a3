package dashboard

import (
	"github.com/paulmach/orb/geojson"

	"github.com/kingrea/emis-dashboard/internal/alerts"
	"github.com/kingrea/emis-dashboard/internal/plans"
	"github.com/kingrea/emis-dashboard/internal/settings"
	"github.com/kingrea/emis-dashboard/internal/stakeholders"
)

// Selectors project the root state into the shapes consumers need. A nil
// root yields ok=false; absent values are surfaced as-is, never defaulted.

// Stakeholders returns the stakeholder list.
func Stakeholders(s *State) ([]stakeholders.Stakeholder, bool) {
	if s == nil {
		return nil, false
	}
	return s.Contacts.Data, true
}

// IsDrawerOpen reports whether the stakeholder drawer is open.
func IsDrawerOpen(s *State) (bool, bool) {
	if s == nil {
		return false, false
	}
	return s.Contacts.IsDrawerOpen, true
}

// SelectedStakeholder returns the stakeholder shown in the drawer.
func SelectedStakeholder(s *State) (stakeholders.Stakeholder, bool) {
	if s == nil {
		return stakeholders.Stakeholder{}, false
	}
	return s.Contacts.Selected, true
}

// Alerts returns the loaded alerts.
func Alerts(s *State) ([]alerts.Alert, bool) {
	if s == nil {
		return nil, false
	}
	return s.Alerts.Data, true
}

// AlertsLoading reports whether an alert list request is in flight.
func AlertsLoading(s *State) (bool, bool) {
	if s == nil {
		return false, false
	}
	return s.Alerts.Loading, true
}

// SelectedAlert returns the selected alert, which may be nil.
func SelectedAlert(s *State) (*alerts.Alert, bool) {
	if s == nil {
		return nil, false
	}
	return s.Alerts.Selected, true
}

// MapView is the map viewport.
type MapView struct {
	Center [2]float64
	Zoom   int
}

// AlertsMapView returns the map centre and zoom.
func AlertsMapView(s *State) (MapView, bool) {
	if s == nil {
		return MapView{}, false
	}
	return MapView{Center: s.AlertsMap.Center, Zoom: s.AlertsMap.Zoom}, true
}

// MapLayers is what the alerts map draws.
type MapLayers struct {
	Points     []*geojson.Feature
	Shapes     []*geojson.Feature
	ShowPoints bool
	ShowShapes bool
}

// AlertsMapLayers returns the drawable layers of the alerts map.
func AlertsMapLayers(s *State) (MapLayers, bool) {
	if s == nil {
		return MapLayers{}, false
	}
	m := s.AlertsMap
	return MapLayers{Points: m.Points, Shapes: m.Shapes, ShowPoints: m.ShowPoints, ShowShapes: m.ShowShapes}, true
}

// Plans returns the loaded plans.
func Plans(s *State) ([]plans.Plan, bool) {
	if s == nil {
		return nil, false
	}
	return s.Plans.Data, true
}

// PlansLoading reports whether a plan list request is in flight.
func PlansLoading(s *State) (bool, bool) {
	if s == nil {
		return false, false
	}
	return s.Plans.Loading, true
}

// SelectedPlan returns the selected plan, which may be nil.
func SelectedPlan(s *State) (*plans.Plan, bool) {
	if s == nil {
		return nil, false
	}
	return s.SelectedPlan, true
}

// PlanActivities returns the activities of the selected plan.
func PlanActivities(s *State) ([]plans.Activity, bool) {
	if s == nil {
		return nil, false
	}
	return s.PlanActivities.Data, true
}

// IncidentTypes returns the configured incident types.
func IncidentTypes(s *State) ([]settings.IncidentType, bool) {
	if s == nil {
		return nil, false
	}
	return s.IncidentTypes.Data, true
}

// SelectedIncidentType returns the incident type in the settings pane.
func SelectedIncidentType(s *State) (*settings.IncidentType, bool) {
	if s == nil {
		return nil, false
	}
	return s.IncidentsType.Data, true
}
