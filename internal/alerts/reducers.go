package alerts

import (
	"github.com/paulmach/orb/geojson"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// List reduces the alerts slice. Start actions only raise a loading flag;
// success and error actions leave the loading flags as they are.
func List(state *ListState, action store.Action) ListState {
	current := store.Current(state, DefaultList)
	switch action.Type {
	case GetAlertsStart:
		return store.Patch(current, func(s *ListState) { s.Loading = true })
	case GetAlertsSuccess:
		data, ok := store.Data[[]Alert](action)
		if !ok {
			return current
		}
		meta := action.Page()
		return store.Patch(current, func(s *ListState) {
			s.Data = data
			s.Page = meta.Page
			s.Total = meta.Total
		})
	case GetAlertStart:
		return store.Patch(current, func(s *ListState) { s.LoadingSelected = true })
	case GetAlertSuccess, SetSelectedAlert:
		selected, ok := store.Data[*Alert](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *ListState) { s.Selected = selected })
	case GetAlertsError, GetAlertError:
		return withError(current, action)
	default:
		return current
	}
}

func withError(current ListState, action store.Action) ListState {
	errObj, ok := store.Data[store.ErrorObject](action)
	if !ok {
		return current
	}
	return store.Patch(current, func(s *ListState) { s.Error = &errObj })
}

// MapOptions selects how the map slice treats stored points.
type MapOptions struct {
	// StorePoints makes STORE_ALERTS_AS_MAP_POINTS replace Points. When false
	// the action leaves the slice unchanged.
	StorePoints bool
}

// Map reduces the alertsMap slice with default options.
func Map(state *MapState, action store.Action) MapState {
	return reduceMap(state, action, MapOptions{})
}

// MapReducer returns a map reducer bound to opts.
func MapReducer(opts MapOptions) store.Reducer[MapState] {
	return func(state *MapState, action store.Action) MapState {
		return reduceMap(state, action, opts)
	}
}

func reduceMap(state *MapState, action store.Action, opts MapOptions) MapState {
	current := store.Current(state, DefaultMap)
	switch action.Type {
	case StoreMapPoints:
		if !opts.StorePoints {
			return current
		}
		points, ok := store.Data[[]*geojson.Feature](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *MapState) { s.Points = points })
	case SetShowPointsValue:
		show, ok := store.Data[bool](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *MapState) { s.ShowPoints = show })
	case SetShowSelectedGeoJSON:
		show, ok := store.Data[bool](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *MapState) { s.ShowShapes = show })
	case SetSelectedGeoJSON:
		shapes, ok := store.Data[[]*geojson.Feature](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *MapState) { s.Shapes = shapes })
	case SaveDrawnGeometry:
		geometry, ok := store.Data[*geojson.Geometry](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *MapState) { s.DrawnGeometry = geometry })
	default:
		return current
	}
}

// Filter reduces the alertsFilter slice.
func Filter(state *FilterState, action store.Action) FilterState {
	current := store.Current(state, DefaultFilter)
	if action.Payload == nil {
		return current
	}
	switch action.Type {
	case SetExpectedAtFilter:
		return store.Patch(current, func(s *FilterState) { s.ExpectedAt = action.Payload.Data })
	case SetSeverityFilter:
		return store.Patch(current, func(s *FilterState) { s.Severity = action.Payload.Data })
	default:
		return current
	}
}
