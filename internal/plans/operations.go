package plans

import (
	"context"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// GetPlans loads the plan list.
func GetPlans(ctx context.Context, d store.Dispatcher, api API) error {
	d.Dispatch(FetchStart())
	page, err := api.GetPlans(ctx)
	if err != nil {
		errObj := store.AsErrorObject(err)
		d.Dispatch(FetchError(errObj))
		return errObj
	}
	d.Dispatch(FetchSuccess(page.Data, page.Page, page.Total))
	return nil
}

// GetPlanActivities loads the activities of a plan.
func GetPlanActivities(ctx context.Context, d store.Dispatcher, api API, planID string) error {
	d.Dispatch(FetchActivitiesStart())
	page, err := api.GetPlanActivities(ctx, planID)
	if err != nil {
		errObj := store.AsErrorObject(err)
		d.Dispatch(FetchActivitiesError(errObj))
		return errObj
	}
	d.Dispatch(FetchActivitiesSuccess(page.Data, page.Page, page.Total))
	return nil
}

// SelectAndLoad selects a plan, clears any selected activity and loads the
// plan's activities.
func SelectAndLoad(ctx context.Context, d store.Dispatcher, api API, plan *Plan) error {
	action, err := Select(plan)
	if err != nil {
		return err
	}
	d.Dispatch(action)
	d.Dispatch(SelectActivity(nil))
	return GetPlanActivities(ctx, d, api, plan.ID)
}
