package settings

import (
	"github.com/kingrea/emis-dashboard/internal/store"
)

// Incident type action types.
const (
	GetIncidentTypesStart   store.Type = "GET_INCIDENT_TYPES_START"
	GetIncidentTypesSuccess store.Type = "GET_INCIDENT_TYPES_SUCCESS"
	GetIncidentTypesError   store.Type = "GET_INCIDENT_TYPES_ERROR"
	SelectedIncidentType    store.Type = "SELECTED_INCIDENT_TYPE"
)

// FetchStart marks the beginning of an incident type request.
func FetchStart() store.Action { return store.Plain(GetIncidentTypesStart) }

// FetchSuccess carries a page of incident types.
func FetchSuccess(types []IncidentType, page, total int) store.Action {
	if types == nil {
		types = []IncidentType{}
	}
	return store.WithPage(GetIncidentTypesSuccess, types, page, total)
}

// FetchError carries the failure of an incident type request.
func FetchError(err store.ErrorObject) store.Action {
	return store.Failure(GetIncidentTypesError, err)
}

// Select replaces the selected incident type; nil clears it.
func Select(incidentType *IncidentType) store.Action {
	return store.WithData(SelectedIncidentType, incidentType)
}

// Register teaches r how to decode inbound settings actions.
func Register(r *store.Registry) {
	r.Register(GetIncidentTypesStart, nil)
	r.Register(GetIncidentTypesSuccess, store.DecodeList[IncidentType]())
	r.Register(GetIncidentTypesError, store.Decode[store.ErrorObject]())
	r.Register(SelectedIncidentType, store.Decode[*IncidentType]())
}
