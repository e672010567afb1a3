package settings

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kingrea/emis-dashboard/internal/store"
)

func flood() IncidentType {
	return IncidentType{ID: "it1", Name: "Flood", Nature: "Natural", Family: "Hydrological", Code: Code{CAP: "Met"}, Color: "#0000ff"}
}

func TestIncidentTypesDefaults(t *testing.T) {
	want := ListState{Data: []IncidentType{}, Page: 1}
	if diff := cmp.Diff(want, IncidentTypes(nil, store.Action{})); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(SelectionState{}, Selection(nil, store.Action{})); diff != "" {
		t.Fatalf("default selection mismatch (-want +got):\n%s", diff)
	}
}

func TestIncidentTypesLifecycle(t *testing.T) {
	state := IncidentTypes(nil, store.Action{})
	state = IncidentTypes(&state, FetchStart())
	if !state.Loading {
		t.Fatalf("expected loading")
	}
	state = IncidentTypes(&state, FetchSuccess([]IncidentType{flood()}, 1, 1))
	if state.Loading || state.Total != 1 || state.Data[0].Name != "Flood" {
		t.Fatalf("unexpected state after success %+v", state)
	}
}

func TestSelectionReplaces(t *testing.T) {
	it := flood()
	sel := Selection(nil, Select(&it))
	if !IsSelected(sel, flood()) {
		t.Fatalf("expected flood selected")
	}
	if IsSelected(sel, IncidentType{ID: "other"}) {
		t.Fatalf("unexpected match")
	}
	sel = Selection(&sel, Select(nil))
	if sel.Data != nil {
		t.Fatalf("expected selection cleared")
	}
}

type recorder struct{ actions []store.Action }

func (r *recorder) Dispatch(a store.Action) { r.actions = append(r.actions, a) }

type fakeAPI struct {
	page Page
	err  error
}

func (f fakeAPI) GetIncidentTypes(context.Context) (Page, error) { return f.page, f.err }

func TestGetIncidentTypesFailure(t *testing.T) {
	rec := &recorder{}
	err := GetIncidentTypes(context.Background(), rec, fakeAPI{err: store.ErrorObject{Status: 503, Message: "Unavailable"}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(rec.actions) != 2 || rec.actions[0].Type != GetIncidentTypesStart || rec.actions[1].Type != GetIncidentTypesError {
		t.Fatalf("unexpected sequence %+v", rec.actions)
	}
}
