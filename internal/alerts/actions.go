package alerts

import (
	"github.com/paulmach/orb/geojson"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// Alert list action types.
const (
	GetAlertsStart   store.Type = "GET_ALERTS_START"
	GetAlertsSuccess store.Type = "GET_ALERTS_SUCCESS"
	GetAlertsError   store.Type = "GET_ALERTS_ERROR"
	GetAlertStart    store.Type = "GET_ALERT_START"
	GetAlertSuccess  store.Type = "GET_ALERT_SUCCESS"
	GetAlertError    store.Type = "GET_ALERT_ERROR"
	SetSelectedAlert store.Type = "SET_SELECTED_ALERT"
)

// Map action types.
const (
	StoreMapPoints         store.Type = "STORE_ALERTS_AS_MAP_POINTS"
	SetShowPointsValue     store.Type = "SET_SHOWPOINTS_VALUE"
	SetSelectedGeoJSON     store.Type = "SET_SELECTED_GEOJSON"
	SetShowSelectedGeoJSON store.Type = "SET_SHOW_SELECTED_GEOJSON"
	SaveDrawnGeometry      store.Type = "SAVE_DRAWN_GEOMETRY"
)

// Filter action types.
const (
	SetExpectedAtFilter store.Type = "SET_EXPECTED_AT_FILTER"
	SetSeverityFilter   store.Type = "SET_SEVERITY_FILTER"
)

// FetchStart marks the beginning of an alert list request.
func FetchStart() store.Action {
	return store.Plain(GetAlertsStart)
}

// FetchSuccess carries a page of alerts.
func FetchSuccess(alerts []Alert, page, total int) store.Action {
	if alerts == nil {
		alerts = []Alert{}
	}
	return store.WithPage(GetAlertsSuccess, alerts, page, total)
}

// FetchError carries the failure of an alert list request.
func FetchError(err store.ErrorObject) store.Action {
	return store.Failure(GetAlertsError, err)
}

// FetchOneStart marks the beginning of a single alert request.
func FetchOneStart() store.Action {
	return store.Plain(GetAlertStart)
}

// FetchOneSuccess carries a single alert.
func FetchOneSuccess(alert Alert) store.Action {
	return store.WithData(GetAlertSuccess, &alert)
}

// FetchOneError carries the failure of a single alert request.
func FetchOneError(err store.ErrorObject) store.Action {
	return store.Failure(GetAlertError, err)
}

// Select sets the selected alert; nil clears the selection.
func Select(alert *Alert) store.Action {
	return store.WithData(SetSelectedAlert, alert)
}

// StorePoints carries alerts converted to map points.
func StorePoints(points []*geojson.Feature) store.Action {
	if points == nil {
		points = []*geojson.Feature{}
	}
	return store.WithData(StoreMapPoints, points)
}

// SetShowPoints toggles the points layer.
func SetShowPoints(show bool) store.Action {
	return store.WithData(SetShowPointsValue, show)
}

// SetShowShapes toggles the selected-shape layer.
func SetShowShapes(show bool) store.Action {
	return store.WithData(SetShowSelectedGeoJSON, show)
}

// SetShapes replaces the shapes drawn for the selected alert. No arguments
// clears them.
func SetShapes(shapes ...*geojson.Feature) store.Action {
	if shapes == nil {
		shapes = []*geojson.Feature{}
	}
	return store.WithData(SetSelectedGeoJSON, shapes)
}

// SaveDrawn persists a geometry drawn on the map.
func SaveDrawn(geometry *geojson.Geometry) store.Action {
	return store.WithData(SaveDrawnGeometry, geometry)
}

// SetExpectedAt sets the expectedAt filter.
func SetExpectedAt(value any) store.Action {
	return store.WithData(SetExpectedAtFilter, value)
}

// SetSeverity sets the severity filter.
func SetSeverity(value any) store.Action {
	return store.WithData(SetSeverityFilter, value)
}

// Register teaches r how to decode inbound alert actions.
func Register(r *store.Registry) {
	r.Register(GetAlertsStart, nil)
	r.Register(GetAlertsSuccess, store.DecodeList[Alert]())
	r.Register(GetAlertsError, store.Decode[store.ErrorObject]())
	r.Register(GetAlertStart, nil)
	r.Register(GetAlertSuccess, store.Decode[*Alert]())
	r.Register(GetAlertError, store.Decode[store.ErrorObject]())
	r.Register(SetSelectedAlert, store.Decode[*Alert]())
	r.Register(StoreMapPoints, store.DecodeList[*geojson.Feature]())
	r.Register(SetShowPointsValue, store.Decode[bool]())
	r.Register(SetSelectedGeoJSON, store.DecodeList[*geojson.Feature]())
	r.Register(SetShowSelectedGeoJSON, store.Decode[bool]())
	r.Register(SaveDrawnGeometry, store.Decode[*geojson.Geometry]())
	r.Register(SetExpectedAtFilter, store.Decode[any]())
	r.Register(SetSeverityFilter, store.Decode[any]())
}
