package stakeholders

import (
	"github.com/kingrea/emis-dashboard/internal/store"
)

// Contacts reduces the contacts slice.
func Contacts(state *State, action store.Action) State {
	current := store.Current(state, Default)
	switch action.Type {
	case StoreStakeholders:
		data, ok := store.Data[[]Stakeholder](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *State) {
			s.Data = data
			s.Total = len(data)
		})
	case SelectedStakeholder:
		selected, ok := store.Data[Stakeholder](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *State) { s.Selected = selected })
	case ToggleLeftNavigationDrawer:
		open, ok := store.Data[bool](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *State) { s.IsDrawerOpen = open })
	case GetStakeholdersError:
		errObj, ok := store.Data[store.ErrorObject](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *State) { s.Error = &errObj })
	default:
		return current
	}
}

// Filters reduces the stakeholder filters slice. No action changes it yet.
func Filters(state *[]Filter, _ store.Action) []Filter {
	return store.Current(state, DefaultFilters)
}
