package settings

import (
	"github.com/kingrea/emis-dashboard/internal/store"
)

// IncidentTypes reduces the incident types slice.
func IncidentTypes(state *ListState, action store.Action) ListState {
	current := store.Current(state, DefaultList)
	switch action.Type {
	case GetIncidentTypesStart:
		return store.Patch(current, func(s *ListState) { s.Loading = true })
	case GetIncidentTypesSuccess:
		data, ok := store.Data[[]IncidentType](action)
		if !ok {
			return current
		}
		meta := action.Page()
		return store.Patch(current, func(s *ListState) {
			s.Data = data
			s.Page = meta.Page
			s.Total = meta.Total
			s.Loading = false
		})
	case GetIncidentTypesError:
		errObj, ok := store.Data[store.ErrorObject](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *ListState) {
			s.Error = &errObj
			s.Loading = false
		})
	default:
		return current
	}
}

// Selection reduces the selected incident type slice.
func Selection(state *SelectionState, action store.Action) SelectionState {
	current := store.Current(state, DefaultSelection)
	if action.Type != SelectedIncidentType {
		return current
	}
	selected, ok := store.Data[*IncidentType](action)
	if !ok {
		return current
	}
	return store.Patch(current, func(s *SelectionState) { s.Data = selected })
}
