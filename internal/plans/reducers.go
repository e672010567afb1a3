package plans

import (
	"github.com/kingrea/emis-dashboard/internal/store"
)

// List reduces the plans slice: loaded plans, total plans known to the API,
// the current page and the loading status. Terminal actions clear loading.
func List(state *ListState, action store.Action) ListState {
	current := store.Current(state, DefaultList)
	switch action.Type {
	case GetPlansStart:
		return store.Patch(current, func(s *ListState) { s.Loading = true })
	case GetPlansSuccess:
		data, ok := store.Data[[]Plan](action)
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
	case GetPlansError:
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

// Selected reduces the selectedPlan slice. Unlike every other selection in
// the dashboard, SELECT_PLAN merges into the previous plan instead of
// replacing it.
func Selected(state **Plan, action store.Action) *Plan {
	var current *Plan
	if state != nil {
		current = *state
	}
	if action.Type != SelectPlan {
		return current
	}
	sel, ok := store.Data[Selection](action)
	if !ok {
		plan, ok := store.Data[Plan](action)
		if !ok {
			return current
		}
		sel = Selection{Plan: plan}
	}
	merged := sel.Apply(current)
	return &merged
}

// Activities reduces the planActivities slice.
func Activities(state *ActivitiesState, action store.Action) ActivitiesState {
	current := store.Current(state, DefaultActivities)
	switch action.Type {
	case GetPlanActivitiesStart:
		return store.Patch(current, func(s *ActivitiesState) { s.Loading = true })
	case GetPlanActivitiesSuccess:
		data, ok := store.Data[[]Activity](action)
		if !ok {
			return current
		}
		meta := action.Page()
		return store.Patch(current, func(s *ActivitiesState) {
			s.Data = data
			s.Page = meta.Page
			s.Total = meta.Total
			s.Loading = false
		})
	case GetPlanActivitiesError:
		errObj, ok := store.Data[store.ErrorObject](action)
		if !ok {
			return current
		}
		return store.Patch(current, func(s *ActivitiesState) {
			s.Error = &errObj
			s.Loading = false
		})
	default:
		return current
	}
}

// SelectedActivity reduces the selectedPlanActivity slice.
func SelectedActivity(state **Activity, action store.Action) *Activity {
	var current *Activity
	if state != nil {
		current = *state
	}
	if action.Type != SelectPlanActivity {
		return current
	}
	activity, ok := store.Data[*Activity](action)
	if !ok {
		return current
	}
	return activity
}
