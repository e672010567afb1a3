package alerts

import (
	"context"
	"errors"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// ErrNotFound is returned by SelectAlert when the id is not in the list.
var ErrNotFound = errors.New("alerts: alert not found")

// ListReader reads the current alerts slice.
type ListReader func() ListState

// GetAlerts loads the alert list. It dispatches start, then either success
// followed by the derived map points and the points toggle, or a single
// error action. The returned error is the one already dispatched.
func GetAlerts(ctx context.Context, d store.Dispatcher, api API) error {
	d.Dispatch(FetchStart())
	page, err := api.GetAlerts(ctx)
	if err != nil {
		errObj := store.AsErrorObject(err)
		d.Dispatch(FetchError(errObj))
		return errObj
	}
	points := ToPoints(page.Data)
	d.Dispatch(FetchSuccess(page.Data, page.Page, page.Total))
	d.Dispatch(StorePoints(points))
	d.Dispatch(SetShowPoints(true))
	return nil
}

// GetAlert loads a single alert into the selection and draws its shape.
func GetAlert(ctx context.Context, d store.Dispatcher, api API, id string) error {
	d.Dispatch(FetchOneStart())
	alert, err := api.GetAlert(ctx, id)
	if err != nil {
		errObj := store.AsErrorObject(err)
		d.Dispatch(FetchOneError(errObj))
		return errObj
	}
	d.Dispatch(FetchOneSuccess(alert))
	d.Dispatch(SetShapes(shapesOf(&alert)...))
	return nil
}

// SelectAlert selects an alert already held in the list slice. An empty id
// clears the selection and its shapes. An id missing from the list also
// clears both, and reports ErrNotFound.
func SelectAlert(d store.Dispatcher, read ListReader, id string) error {
	if id == "" {
		d.Dispatch(Select(nil))
		d.Dispatch(SetShapes())
		return nil
	}
	var selected *Alert
	if read != nil {
		list := read()
		for i := range list.Data {
			if list.Data[i].ID == id {
				alert := list.Data[i]
				selected = &alert
				break
			}
		}
	}
	d.Dispatch(Select(selected))
	d.Dispatch(SetShapes(shapesOf(selected)...))
	if selected == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func shapesOf(alert *Alert) []*geojson.Feature {
	shape, ok := ToShape(alert)
	if !ok {
		return nil
	}
	return []*geojson.Feature{shape}
}

// ShowPoints toggles the points layer.
func ShowPoints(d store.Dispatcher, show bool) {
	d.Dispatch(SetShowPoints(show))
}

// ShowShapes toggles the selected-alert shape layer.
func ShowShapes(d store.Dispatcher, show bool) {
	d.Dispatch(SetShowShapes(show))
}

// SaveDrawnGeometryOperation stores a geometry drawn on the map.
func SaveDrawnGeometryOperation(d store.Dispatcher, geometry *geojson.Geometry) {
	d.Dispatch(SaveDrawn(geometry))
}
