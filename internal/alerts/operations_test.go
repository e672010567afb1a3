package alerts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/kingrea/emis-dashboard/internal/store"
)

type recorder struct {
	actions []store.Action
}

func (r *recorder) Dispatch(a store.Action) { r.actions = append(r.actions, a) }

func (r *recorder) types() []store.Type {
	out := make([]store.Type, len(r.actions))
	for i, a := range r.actions {
		out[i] = a.Type
	}
	return out
}

type fakeAPI struct {
	page  Page
	alert Alert
	err   error
	calls int
}

func (f *fakeAPI) GetAlerts(context.Context) (Page, error) {
	f.calls++
	return f.page, f.err
}

func (f *fakeAPI) GetAlert(_ context.Context, id string) (Alert, error) {
	f.calls++
	if f.err != nil {
		return Alert{}, f.err
	}
	return f.alert, nil
}

func sampleAlert(id string) Alert {
	ring := orb.Ring{{39.2, -6.8}, {39.3, -6.8}, {39.3, -6.7}, {39.2, -6.8}}
	return Alert{
		ID:         id,
		Event:      "Flood",
		Severity:   "Severe",
		ExpectedAt: time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC),
		Centroid:   geojson.NewGeometry(orb.Point{39.25, -6.75}),
		Geometry:   geojson.NewGeometry(orb.Polygon{ring}),
	}
}

func sameTypes(t *testing.T, got, want []store.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d actions %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("action %d: expected %s, got %s (sequence %v)", i, want[i], got[i], got)
		}
	}
}

func TestGetAlertsDispatchesLifecycleInOrder(t *testing.T) {
	data := []Alert{sampleAlert("a1"), sampleAlert("a2")}
	api := &fakeAPI{page: Page{Data: data, Page: 2, Total: 5}}
	rec := &recorder{}
	if err := GetAlerts(context.Background(), rec, api); err != nil {
		t.Fatalf("GetAlerts returned error: %v", err)
	}
	sameTypes(t, rec.types(), []store.Type{GetAlertsStart, GetAlertsSuccess, StoreMapPoints, SetShowPointsValue})

	success := rec.actions[1]
	if success.Meta == nil || success.Meta.Page != 2 || success.Meta.Total != 5 {
		t.Fatalf("expected meta page=2 total=5, got %+v", success.Meta)
	}
	got, _ := store.Data[[]Alert](success)
	if len(got) != 2 || got[0].ID != "a1" {
		t.Fatalf("unexpected success payload: %+v", got)
	}
	points, _ := store.Data[[]*geojson.Feature](rec.actions[2])
	if len(points) != 2 {
		t.Fatalf("expected 2 derived points, got %d", len(points))
	}
	if show, _ := store.Data[bool](rec.actions[3]); !show {
		t.Fatalf("expected points layer shown")
	}
}

func TestGetAlertsFailureDispatchesOnlyError(t *testing.T) {
	api := &fakeAPI{err: notFound}
	rec := &recorder{}
	err := GetAlerts(context.Background(), rec, api)
	if err == nil {
		t.Fatalf("expected error to be reported")
	}
	sameTypes(t, rec.types(), []store.Type{GetAlertsStart, GetAlertsError})
	if !rec.actions[1].Error {
		t.Fatalf("error action must carry error flag")
	}
	errObj, _ := store.Data[store.ErrorObject](rec.actions[1])
	if errObj != notFound {
		t.Fatalf("expected pass-through error object, got %+v", errObj)
	}
}

func TestGetAlertsWrapsTransportErrors(t *testing.T) {
	api := &fakeAPI{err: errors.New("connection refused")}
	rec := &recorder{}
	_ = GetAlerts(context.Background(), rec, api)
	errObj, ok := store.Data[store.ErrorObject](rec.actions[len(rec.actions)-1])
	if !ok || errObj.Message != "connection refused" {
		t.Fatalf("expected wrapped transport error, got %+v", errObj)
	}
}

func TestStartIsDispatchedBeforeFetch(t *testing.T) {
	rec := &recorder{}
	api := &orderedAPI{rec: rec}
	_ = GetAlerts(context.Background(), rec, api)
	if api.seenBeforeFetch != 1 || rec.actions[0].Type != GetAlertsStart {
		t.Fatalf("expected exactly the start action before fetch, saw %d", api.seenBeforeFetch)
	}
}

type orderedAPI struct {
	rec             *recorder
	seenBeforeFetch int
}

func (o *orderedAPI) GetAlerts(context.Context) (Page, error) {
	o.seenBeforeFetch = len(o.rec.actions)
	return Page{Page: 1}, nil
}

func (o *orderedAPI) GetAlert(context.Context, string) (Alert, error) {
	return Alert{}, nil
}

func TestGetAlertSelectsAndDrawsShape(t *testing.T) {
	api := &fakeAPI{alert: sampleAlert("a7")}
	rec := &recorder{}
	if err := GetAlert(context.Background(), rec, api, "a7"); err != nil {
		t.Fatalf("GetAlert returned error: %v", err)
	}
	sameTypes(t, rec.types(), []store.Type{GetAlertStart, GetAlertSuccess, SetSelectedGeoJSON})
	shapes, _ := store.Data[[]*geojson.Feature](rec.actions[2])
	if len(shapes) != 1 {
		t.Fatalf("expected one shape, got %d", len(shapes))
	}
	if _, ok := shapes[0].Geometry.(orb.Polygon); !ok {
		t.Fatalf("expected polygon shape, got %T", shapes[0].Geometry)
	}
}

func TestGetAlertFailure(t *testing.T) {
	api := &fakeAPI{err: notFound}
	rec := &recorder{}
	_ = GetAlert(context.Background(), rec, api, "missing")
	sameTypes(t, rec.types(), []store.Type{GetAlertStart, GetAlertError})
}

func TestSelectAlertWithEmptyIDClears(t *testing.T) {
	rec := &recorder{}
	read := func() ListState {
		s := DefaultList()
		s.Data = []Alert{sampleAlert("a1")}
		return s
	}
	if err := SelectAlert(rec, read, ""); err != nil {
		t.Fatalf("clear selection returned error: %v", err)
	}
	sameTypes(t, rec.types(), []store.Type{SetSelectedAlert, SetSelectedGeoJSON})
	if sel, _ := store.Data[*Alert](rec.actions[0]); sel != nil {
		t.Fatalf("expected nil selection, got %+v", sel)
	}
	if shapes, _ := store.Data[[]*geojson.Feature](rec.actions[1]); len(shapes) != 0 {
		t.Fatalf("expected shapes cleared, got %d", len(shapes))
	}
}

func TestSelectAlertFromList(t *testing.T) {
	rec := &recorder{}
	read := func() ListState {
		s := DefaultList()
		s.Data = []Alert{sampleAlert("a1"), sampleAlert("a2")}
		return s
	}
	if err := SelectAlert(rec, read, "a2"); err != nil {
		t.Fatalf("select returned error: %v", err)
	}
	sameTypes(t, rec.types(), []store.Type{SetSelectedAlert, SetSelectedGeoJSON})
	sel, _ := store.Data[*Alert](rec.actions[0])
	if sel == nil || sel.ID != "a2" {
		t.Fatalf("expected a2 selected, got %+v", sel)
	}
}

func TestSelectAlertMissingReportsNotFound(t *testing.T) {
	rec := &recorder{}
	read := func() ListState { return DefaultList() }
	err := SelectAlert(rec, read, "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	sameTypes(t, rec.types(), []store.Type{SetSelectedAlert, SetSelectedGeoJSON})
	if sel, _ := store.Data[*Alert](rec.actions[0]); sel != nil {
		t.Fatalf("expected nil selection for missing alert")
	}
}

func TestToPointsSkipsAlertsWithoutLocation(t *testing.T) {
	alerts := []Alert{sampleAlert("a1"), {ID: "bare", Event: "Drought"}}
	points := ToPoints(alerts)
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].Properties["id"] != "a1" || points[0].Properties["expectedAt"] != "2026-03-01T06:00:00Z" {
		t.Fatalf("unexpected properties: %v", points[0].Properties)
	}
	if _, ok := points[0].Geometry.(orb.Point); !ok {
		t.Fatalf("expected point geometry, got %T", points[0].Geometry)
	}
}
