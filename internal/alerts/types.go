// Package alerts holds the alert list, alert map and alert filter slices of
// the dashboard, along with the operations that keep them in sync with the
// alerts API.
package alerts

import (
	"context"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// Alert is a single CAP-style alert as returned by the API.
type Alert struct {
	ID          string            `json:"_id"`
	Event       string            `json:"event"`
	Headline    string            `json:"headline,omitempty"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category,omitempty"`
	Urgency     string            `json:"urgency,omitempty"`
	Severity    string            `json:"severity,omitempty"`
	Certainty   string            `json:"certainty,omitempty"`
	Instruction string            `json:"instruction,omitempty"`
	Area        string            `json:"area,omitempty"`
	Source      string            `json:"source,omitempty"`
	ExpectedAt  time.Time         `json:"expectedAt"`
	ExpiresAt   time.Time         `json:"expiresAt"`
	Centroid    *geojson.Geometry `json:"centroid,omitempty"`
	Geometry    *geojson.Geometry `json:"geometry,omitempty"`
}

// Page is one page of alerts.
type Page struct {
	Data  []Alert `json:"data"`
	Page  int     `json:"page"`
	Total int     `json:"total"`
}

// API is the fetch capability the alert operations depend on.
type API interface {
	GetAlerts(ctx context.Context) (Page, error)
	GetAlert(ctx context.Context, id string) (Alert, error)
}

// ListState is the "alerts" slice.
type ListState struct {
	Data            []Alert            `json:"data"`
	Page            int                `json:"page"`
	Total           int                `json:"total"`
	Selected        *Alert             `json:"selected"`
	Loading         bool               `json:"loading"`
	LoadingSelected bool               `json:"loadingSelected"`
	Filters         map[string]any     `json:"filters"`
	Error           *store.ErrorObject `json:"error"`
}

// DefaultList returns the initial alerts slice.
func DefaultList() ListState {
	return ListState{
		Data:    []Alert{},
		Page:    1,
		Filters: map[string]any{},
	}
}

// DefaultCenter is the initial map centre as [lat, lon].
var DefaultCenter = [2]float64{-6.179, 35.754}

// DefaultZoom is the initial map zoom level.
const DefaultZoom = 7

// MapState is the "alertsMap" slice. Center and Zoom describe the map view
// and are independent of the alert data.
type MapState struct {
	Center        [2]float64         `json:"center"`
	Zoom          int                `json:"zoom"`
	Points        []*geojson.Feature `json:"points"`
	Shapes        []*geojson.Feature `json:"shapes"`
	DrawnGeometry *geojson.Geometry  `json:"drawnGeometry"`
	ShowPoints    bool               `json:"showPoints"`
	ShowShapes    bool               `json:"showShapes"`
}

// DefaultMap returns the initial alerts map slice.
func DefaultMap() MapState {
	return MapState{
		Center: DefaultCenter,
		Zoom:   DefaultZoom,
		Points: []*geojson.Feature{},
		Shapes: []*geojson.Feature{},
	}
}

// FilterState is the "alertsFilter" slice. Fields are set independently and
// never cross-validated.
type FilterState struct {
	ExpectedAt any `json:"expectedAt"`
	Severity   any `json:"severity"`
}

// DefaultFilter returns the initial alerts filter slice.
func DefaultFilter() FilterState {
	return FilterState{}
}
