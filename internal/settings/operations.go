package settings

import (
	"context"

	"github.com/kingrea/emis-dashboard/internal/store"
)

// GetIncidentTypes loads the configured incident types.
func GetIncidentTypes(ctx context.Context, d store.Dispatcher, api API) error {
	d.Dispatch(FetchStart())
	page, err := api.GetIncidentTypes(ctx)
	if err != nil {
		errObj := store.AsErrorObject(err)
		d.Dispatch(FetchError(errObj))
		return errObj
	}
	d.Dispatch(FetchSuccess(page.Data, page.Page, page.Total))
	return nil
}

// IsSelected reports whether candidate is the incident type held in sel.
func IsSelected(sel SelectionState, candidate IncidentType) bool {
	return sel.Data != nil && sel.Data.ID == candidate.ID
}
