package stakeholders

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kingrea/emis-dashboard/internal/store"
)

func sample() []Stakeholder {
	return []Stakeholder{
		{ID: "s1", Name: "Regional Commissioner", Type: "Agency"},
		{ID: "s2", Name: "Red Cross", Abbreviation: "TRCS", Type: "Agency"},
	}
}

func TestContactsDefaults(t *testing.T) {
	want := State{Data: []Stakeholder{}}
	if diff := cmp.Diff(want, Contacts(nil, store.Action{})); diff != "" {
		t.Fatalf("default contacts mismatch (-want +got):\n%s", diff)
	}
	prev := State{Data: sample(), Total: 2, IsDrawerOpen: true}
	if diff := cmp.Diff(prev, Contacts(&prev, store.Action{Type: ""})); diff != "" {
		t.Fatalf("null action changed contacts (-want +got):\n%s", diff)
	}
}

func TestStoreDerivesTotal(t *testing.T) {
	prev := Contacts(nil, store.Action{})
	next := Contacts(&prev, Store(sample()))
	if next.Total != 2 || len(next.Data) != 2 {
		t.Fatalf("expected total derived from data, got %+v", next)
	}
	next = Contacts(&next, Store(nil))
	if next.Total != 0 || next.Data == nil {
		t.Fatalf("expected empty list with total 0, got %+v", next)
	}
}

func TestSelectAndDrawer(t *testing.T) {
	prev := Contacts(nil, store.Action{})
	next := Contacts(&prev, Select(sample()[1]))
	if next.Selected.ID != "s2" {
		t.Fatalf("expected s2 selected, got %+v", next.Selected)
	}
	next = Contacts(&next, ToggleDrawer(true))
	if !next.IsDrawerOpen {
		t.Fatalf("expected drawer open")
	}
	if prev.IsDrawerOpen || prev.Selected.ID != "" {
		t.Fatalf("previous state was mutated")
	}
}

func TestMarkersDoNotChangeState(t *testing.T) {
	prev := State{Data: sample(), Total: 2}
	for _, action := range []store.Action{Get(), Search("red")} {
		if diff := cmp.Diff(prev, Contacts(&prev, action)); diff != "" {
			t.Fatalf("%s changed state (-want +got):\n%s", action.Type, diff)
		}
	}
}

func TestFiltersIdentity(t *testing.T) {
	if got := Filters(nil, store.Action{}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty filters, got %v", got)
	}
	prev := []Filter{{Field: "type", Value: "Agency"}}
	if diff := cmp.Diff(prev, Filters(&prev, Store(sample()))); diff != "" {
		t.Fatalf("filters changed (-want +got):\n%s", diff)
	}
}

type recorder struct{ actions []store.Action }

func (r *recorder) Dispatch(a store.Action) { r.actions = append(r.actions, a) }

type fakeAPI struct {
	data  []Stakeholder
	err   error
	query string
}

func (f *fakeAPI) GetStakeholders(_ context.Context, query string) ([]Stakeholder, error) {
	f.query = query
	return f.data, f.err
}

func TestLoadAndFind(t *testing.T) {
	rec := &recorder{}
	api := &fakeAPI{data: sample()}
	if err := Load(context.Background(), rec, api); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rec.actions) != 2 || rec.actions[0].Type != GetStakeholders || rec.actions[1].Type != StoreStakeholders {
		t.Fatalf("unexpected load sequence %+v", rec.actions)
	}
	rec = &recorder{}
	if err := Find(context.Background(), rec, api, "  red "); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if api.query != "red" {
		t.Fatalf("expected trimmed query, got %q", api.query)
	}
	if text, _ := store.Data[string](rec.actions[0]); rec.actions[0].Type != SearchStakeholders || text != "red" {
		t.Fatalf("unexpected search marker %+v", rec.actions[0])
	}
}

func TestLoadFailure(t *testing.T) {
	rec := &recorder{}
	api := &fakeAPI{err: errors.New("offline")}
	if err := Load(context.Background(), rec, api); err == nil {
		t.Fatalf("expected error")
	}
	if len(rec.actions) != 2 || rec.actions[1].Type != GetStakeholdersError {
		t.Fatalf("unexpected failure sequence %+v", rec.actions)
	}
	state := Contacts(nil, store.Action{})
	for _, a := range rec.actions {
		state = Contacts(&state, a)
	}
	if state.Error == nil || state.Error.Message != "offline" {
		t.Fatalf("expected error stored, got %+v", state.Error)
	}
}

func TestOpenAndCloseDrawer(t *testing.T) {
	rec := &recorder{}
	OpenDrawer(rec, sample()[0])
	CloseDrawer(rec)
	state := Contacts(nil, store.Action{})
	for _, a := range rec.actions {
		state = Contacts(&state, a)
	}
	if state.IsDrawerOpen || state.Selected.ID != "s1" {
		t.Fatalf("expected closed drawer with s1 selected, got %+v", state)
	}
}
