package plans

import (
	"context"
	"testing"

	"github.com/kingrea/emis-dashboard/internal/store"
)

type recorder struct {
	actions []store.Action
}

func (r *recorder) Dispatch(a store.Action) { r.actions = append(r.actions, a) }

type fakeAPI struct {
	plans      Page
	activities ActivityPage
	err        error
	planID     string
}

func (f *fakeAPI) GetPlans(context.Context) (Page, error) {
	return f.plans, f.err
}

func (f *fakeAPI) GetPlanActivities(_ context.Context, planID string) (ActivityPage, error) {
	f.planID = planID
	return f.activities, f.err
}

func typesOf(actions []store.Action) []store.Type {
	out := make([]store.Type, len(actions))
	for i, a := range actions {
		out[i] = a.Type
	}
	return out
}

func TestGetPlansSequence(t *testing.T) {
	rec := &recorder{}
	api := &fakeAPI{plans: Page{Data: []Plan{floodPlan()}, Page: 1, Total: 1}}
	if err := GetPlans(context.Background(), rec, api); err != nil {
		t.Fatalf("GetPlans: %v", err)
	}
	got := typesOf(rec.actions)
	if len(got) != 2 || got[0] != GetPlansStart || got[1] != GetPlansSuccess {
		t.Fatalf("unexpected sequence %v", got)
	}
}

func TestGetPlansFailure(t *testing.T) {
	rec := &recorder{}
	api := &fakeAPI{err: store.ErrorObject{Status: 401, Message: "Unauthorized"}}
	if err := GetPlans(context.Background(), rec, api); err == nil {
		t.Fatalf("expected error")
	}
	got := typesOf(rec.actions)
	if len(got) != 2 || got[1] != GetPlansError {
		t.Fatalf("unexpected sequence %v", got)
	}
}

func TestSelectAndLoadFetchesActivitiesForPlan(t *testing.T) {
	rec := &recorder{}
	api := &fakeAPI{activities: ActivityPage{Data: []Activity{{ID: "a1", Plan: "p1"}}, Page: 1, Total: 1}}
	plan := floodPlan()
	if err := SelectAndLoad(context.Background(), rec, api, &plan); err != nil {
		t.Fatalf("SelectAndLoad: %v", err)
	}
	want := []store.Type{SelectPlan, SelectPlanActivity, GetPlanActivitiesStart, GetPlanActivitiesSuccess}
	got := typesOf(rec.actions)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if api.planID != "p1" {
		t.Fatalf("expected activities requested for p1, got %q", api.planID)
	}
}

func TestSelectAndLoadRejectsNil(t *testing.T) {
	rec := &recorder{}
	if err := SelectAndLoad(context.Background(), rec, &fakeAPI{}, nil); err == nil {
		t.Fatalf("expected nil plan error")
	}
	if len(rec.actions) != 0 {
		t.Fatalf("nothing should be dispatched for a nil plan")
	}
}
