package stakeholders

import (
	"github.com/kingrea/emis-dashboard/internal/store"
)

// Stakeholder action types.
const (
	StoreStakeholders          store.Type = "STAKEHOLDERS:STORE_STAKEHOLDERS"
	GetStakeholders            store.Type = "STAKEHOLDERS:GET_STAKEHOLDERS"
	GetStakeholdersError       store.Type = "STAKEHOLDERS:GET_STAKEHOLDERS_ERROR"
	SearchStakeholders         store.Type = "STAKEHOLDERS:SEARCH_STAKEHOLDERS"
	SelectedStakeholder        store.Type = "STAKEHOLDER_LIST:SELECTED_STAKEHOLDER"
	ToggleLeftNavigationDrawer store.Type = "TOGGLE_LEFT_NAVIGATION_DRAWER"
)

// Store replaces the stakeholder list.
func Store(stakeholders []Stakeholder) store.Action {
	if stakeholders == nil {
		stakeholders = []Stakeholder{}
	}
	return store.WithData(StoreStakeholders, stakeholders)
}

// Get marks the beginning of a stakeholder list request.
func Get() store.Action { return store.Plain(GetStakeholders) }

// Search marks the beginning of a stakeholder search.
func Search(text string) store.Action { return store.WithData(SearchStakeholders, text) }

// FetchError carries the failure of a stakeholder request.
func FetchError(err store.ErrorObject) store.Action {
	return store.Failure(GetStakeholdersError, err)
}

// Select sets the selected stakeholder.
func Select(stakeholder Stakeholder) store.Action {
	return store.WithData(SelectedStakeholder, stakeholder)
}

// ToggleDrawer opens or closes the side drawer.
func ToggleDrawer(open bool) store.Action {
	return store.WithData(ToggleLeftNavigationDrawer, open)
}

// Register teaches r how to decode inbound stakeholder actions.
func Register(r *store.Registry) {
	r.Register(StoreStakeholders, store.DecodeList[Stakeholder]())
	r.Register(GetStakeholders, nil)
	r.Register(GetStakeholdersError, store.Decode[store.ErrorObject]())
	r.Register(SearchStakeholders, store.Decode[string]())
	r.Register(SelectedStakeholder, store.Decode[Stakeholder]())
	r.Register(ToggleLeftNavigationDrawer, store.Decode[bool]())
}
