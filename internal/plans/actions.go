package plans

import (
	"encoding/json"
	"fmt"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// Plan action types.
const (
	GetPlansStart   store.Type = "GET_PLANS_START"
	GetPlansSuccess store.Type = "GET_PLANS_SUCCESS"
	GetPlansError   store.Type = "GET_PLANS_ERROR"
	SelectPlan      store.Type = "SELECT_PLAN"

	GetPlanActivitiesStart   store.Type = "GET_PLAN_ACTIVITIES_START"
	GetPlanActivitiesSuccess store.Type = "GET_PLAN_ACTIVITIES_SUCCESS"
	GetPlanActivitiesError   store.Type = "GET_PLAN_ACTIVITIES_ERROR"
	SelectPlanActivity       store.Type = "SELECT_PLAN_ACTIVITY"
)

// FetchStart marks the beginning of a plan list request.
func FetchStart() store.Action { return store.Plain(GetPlansStart) }

// FetchSuccess carries a page of plans.
func FetchSuccess(plans []Plan, page, total int) store.Action {
	if plans == nil {
		plans = []Plan{}
	}
	return store.WithPage(GetPlansSuccess, plans, page, total)
}

// FetchError carries the failure of a plan list request.
func FetchError(err store.ErrorObject) store.Action {
	return store.Failure(GetPlansError, err)
}

// Select merges the non-zero fields of plan into the selected plan. A nil
// plan is rejected.
func Select(plan *Plan) (store.Action, error) {
	if plan == nil {
		return store.Action{}, fmt.Errorf("plans: cannot select a nil plan")
	}
	return store.WithData(SelectPlan, Selection{Plan: *plan}), nil
}

// SelectFields merges the named fields of plan into the selected plan, zero
// values included. Names are the plan's JSON keys.
func SelectFields(plan Plan, fields ...string) store.Action {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return store.WithData(SelectPlan, Selection{Plan: plan, Fields: set})
}

// FetchActivitiesStart marks the beginning of an activities request.
func FetchActivitiesStart() store.Action { return store.Plain(GetPlanActivitiesStart) }

// FetchActivitiesSuccess carries a page of activities.
func FetchActivitiesSuccess(activities []Activity, page, total int) store.Action {
	if activities == nil {
		activities = []Activity{}
	}
	return store.WithPage(GetPlanActivitiesSuccess, activities, page, total)
}

// FetchActivitiesError carries the failure of an activities request.
func FetchActivitiesError(err store.ErrorObject) store.Action {
	return store.Failure(GetPlanActivitiesError, err)
}

// SelectActivity replaces the selected activity; nil clears it.
func SelectActivity(activity *Activity) store.Action {
	return store.WithData(SelectPlanActivity, activity)
}

// Register teaches r how to decode inbound plan actions.
func Register(r *store.Registry) {
	r.Register(GetPlansStart, nil)
	r.Register(GetPlansSuccess, store.DecodeList[Plan]())
	r.Register(GetPlansError, store.Decode[store.ErrorObject]())
	r.Register(SelectPlan, decodeSelection)
	r.Register(GetPlanActivitiesStart, nil)
	r.Register(GetPlanActivitiesSuccess, store.DecodeList[Activity]())
	r.Register(GetPlanActivitiesError, store.Decode[store.ErrorObject]())
	r.Register(SelectPlanActivity, store.Decode[*Activity]())
}

func decodeSelection(raw json.RawMessage) (any, error) {
	var sel Selection
	if err := sel.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return sel, nil
}
