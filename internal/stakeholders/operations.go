package stakeholders

import (
	"context"
	"strings"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// Load fetches every stakeholder.
func Load(ctx context.Context, d store.Dispatcher, api API) error {
	d.Dispatch(Get())
	return fetch(ctx, d, api, "")
}

// Find searches stakeholders by free text. Blank text behaves like Load
// apart from the marker action.
func Find(ctx context.Context, d store.Dispatcher, api API, text string) error {
	text = strings.TrimSpace(text)
	d.Dispatch(Search(text))
	return fetch(ctx, d, api, text)
}

func fetch(ctx context.Context, d store.Dispatcher, api API, query string) error {
	data, err := api.GetStakeholders(ctx, query)
	if err != nil {
		errObj := store.AsErrorObject(err)
		d.Dispatch(FetchError(errObj))
		return errObj
	}
	d.Dispatch(Store(data))
	return nil
}

// OpenDrawer selects a stakeholder and opens the details drawer.
func OpenDrawer(d store.Dispatcher, stakeholder Stakeholder) {
	d.Dispatch(Select(stakeholder))
	d.Dispatch(ToggleDrawer(true))
}

// CloseDrawer closes the details drawer. The selection is kept.
func CloseDrawer(d store.Dispatcher) {
	d.Dispatch(ToggleDrawer(false))
}
