package plans

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/kingrea/emis-dashboard/internal/store"
)

func floodPlan() Plan {
	return Plan{
		ID:           "p1",
		Description:  "Flood response for Dar es Salaam",
		Jurisdiction: "Dar es Salaam",
		IncidentType: &IncidentType{Name: "Flood", Nature: "Natural", Family: "Hydrological", Color: "#00f"},
		UpdatedAt:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestListDefaultsAndNullAction(t *testing.T) {
	want := ListState{Data: []Plan{}, Page: 1}
	if diff := cmp.Diff(want, List(nil, store.Action{})); diff != "" {
		t.Fatalf("default plans mismatch (-want +got):\n%s", diff)
	}
	prev := ListState{Data: []Plan{floodPlan()}, Page: 3, Total: 30}
	if diff := cmp.Diff(prev, List(&prev, store.Action{Type: ""})); diff != "" {
		t.Fatalf("null action changed plans (-want +got):\n%s", diff)
	}
}

func TestListLifecycle(t *testing.T) {
	state := List(nil, store.Action{})
	state = List(&state, FetchStart())
	if !state.Loading {
		t.Fatalf("expected loading after start")
	}
	state = List(&state, FetchSuccess([]Plan{floodPlan()}, 2, 11))
	want := ListState{Data: []Plan{floodPlan()}, Page: 2, Total: 11}
	if diff := cmp.Diff(want, state); diff != "" {
		t.Fatalf("success mismatch (-want +got):\n%s", diff)
	}
	state = List(&state, FetchStart())
	errObj := store.ErrorObject{Status: 500, Message: "boom"}
	state = List(&state, FetchError(errObj))
	if state.Loading {
		t.Fatalf("error should clear loading for plans")
	}
	if state.Error == nil || *state.Error != errObj {
		t.Fatalf("expected error recorded, got %+v", state.Error)
	}
	if len(state.Data) != 1 {
		t.Fatalf("error must not clear data")
	}
}

func TestSelectedMergesIntoPrevious(t *testing.T) {
	if got := Selected(nil, store.Action{}); got != nil {
		t.Fatalf("expected nil default selection, got %+v", got)
	}
	first, err := Select(&Plan{ID: "p1", Description: "Flood", Owner: "DMD"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	selected := Selected(nil, first)
	second, _ := Select(&Plan{Description: "Flood (revised)"})
	prev := selected
	selected = Selected(&selected, second)
	want := &Plan{ID: "p1", Description: "Flood (revised)", Owner: "DMD"}
	if diff := cmp.Diff(want, selected); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	if prev.Description != "Flood" {
		t.Fatalf("merge mutated previous plan")
	}
}

func TestSelectRejectsNil(t *testing.T) {
	if _, err := Select(nil); err == nil {
		t.Fatalf("expected nil plan to be rejected")
	}
	reg := store.NewRegistry()
	Register(reg)
	if _, err := reg.DecodeAction([]byte(`{"type":"SELECT_PLAN","payload":{"data":null}}`)); err == nil {
		t.Fatalf("expected registry to reject null selection")
	}
	action, err := reg.DecodeAction([]byte(`{"type":"SELECT_PLAN","payload":{"data":{"_id":"p4"}}}`))
	if err != nil {
		t.Fatalf("decode selection: %v", err)
	}
	if got := Selected(nil, action); got == nil || got.ID != "p4" {
		t.Fatalf("expected p4 selected, got %+v", got)
	}
}

func TestSelectedClearsFieldsSentWithZeroValue(t *testing.T) {
	reg := store.NewRegistry()
	Register(reg)
	first, _ := Select(&Plan{ID: "p1", Description: "Flood", Owner: "DMD", ActivityCount: 3})
	selected := Selected(nil, first)

	action, err := reg.DecodeAction([]byte(`{"type":"SELECT_PLAN","payload":{"data":{"owner":"","activityCount":0}}}`))
	if err != nil {
		t.Fatalf("decode selection: %v", err)
	}
	selected = Selected(&selected, action)
	want := &Plan{ID: "p1", Description: "Flood"}
	if diff := cmp.Diff(want, selected); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}

	selected = Selected(&selected, SelectFields(Plan{}, "description"))
	if selected.ID != "p1" || selected.Description != "" {
		t.Fatalf("expected only description cleared, got %+v", selected)
	}
}

func TestSelectionEncodesCarriedFields(t *testing.T) {
	raw, err := json.Marshal(SelectFields(Plan{ID: "p1"}, "_id", "owner").Payload.Data)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"_id":"p1","owner":""}` {
		t.Fatalf("unexpected encoding %s", raw)
	}
	reg := store.NewRegistry()
	Register(reg)
	for _, body := range []string{
		`{"type":"SELECT_PLAN"}`,
		`{"type":"SELECT_PLAN","payload":{"data":["p1"]}}`,
	} {
		if _, err := reg.DecodeAction([]byte(body)); err == nil {
			t.Fatalf("%s: expected rejection", body)
		}
	}
}

func TestActivitiesAndSelection(t *testing.T) {
	state := Activities(nil, store.Action{})
	state = Activities(&state, FetchActivitiesStart())
	state = Activities(&state, FetchActivitiesSuccess([]Activity{{ID: "a1", Plan: "p1", Name: "Evacuate", Phase: "Response"}}, 1, 1))
	if state.Loading || len(state.Data) != 1 || state.Total != 1 {
		t.Fatalf("unexpected activities state %+v", state)
	}
	activity := state.Data[0]
	selected := SelectedActivity(nil, SelectActivity(&activity))
	if selected == nil || selected.ID != "a1" {
		t.Fatalf("expected a1 selected, got %+v", selected)
	}
	selected = SelectedActivity(&selected, SelectActivity(nil))
	if selected != nil {
		t.Fatalf("expected selection cleared")
	}
}
