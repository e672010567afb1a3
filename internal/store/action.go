// Package store holds the dashboard state container: the action envelope,
// the reducer contract and the serialised dispatch path every slice shares.
package store

// Type tags an action. The zero value is the "null" type, which no reducer
// recognises.
type Type string

// Payload wraps the data carried by an action.
type Payload struct {
	Data any `json:"data"`
}

// Meta carries pagination for list results.
type Meta struct {
	Page  int `json:"page"`
	Total int `json:"total"`
}

// Action describes one intended state transition.
type Action struct {
	Type    Type     `json:"type"`
	Payload *Payload `json:"payload,omitempty"`
	Meta    *Meta    `json:"meta,omitempty"`
	Error   bool     `json:"error,omitempty"`
}

// Plain builds an action with no payload.
func Plain(t Type) Action {
	return Action{Type: t}
}

// WithData builds an action carrying data in its payload.
func WithData(t Type, data any) Action {
	return Action{Type: t, Payload: &Payload{Data: data}}
}

// WithPage builds a list success action.
func WithPage(t Type, data any, page, total int) Action {
	return Action{
		Type:    t,
		Payload: &Payload{Data: data},
		Meta:    &Meta{Page: page, Total: total},
	}
}

// Failure builds an error action from an ErrorObject.
func Failure(t Type, err ErrorObject) Action {
	return Action{Type: t, Payload: &Payload{Data: err}, Error: true}
}

// Data extracts the payload as T. ok is false when the payload is missing
// or holds another type.
func Data[T any](a Action) (T, bool) {
	var zero T
	if a.Payload == nil {
		return zero, false
	}
	v, ok := a.Payload.Data.(T)
	return v, ok
}

// Page returns the pagination meta, falling back to page 1 of 0 results.
func (a Action) Page() Meta {
	if a.Meta == nil {
		return Meta{Page: 1}
	}
	return *a.Meta
}

// Reducer maps the previous slice value and an action to the next value. A
// nil state stands for a slice that has not been initialised yet.
type Reducer[S any] func(state *S, action Action) S

// Patch copies prev, applies edit to the copy and returns it. prev itself is
// never modified, so reducers only ever produce shallow-merged copies.
func Patch[S any](prev S, edit func(next *S)) S {
	next := prev
	edit(&next)
	return next
}

// Current resolves a possibly-nil slice pointer against its default.
func Current[S any](state *S, def func() S) S {
	if state == nil {
		return def()
	}
	return *state
}

// Dispatcher accepts actions.
type Dispatcher interface {
	Dispatch(Action)
}

// DispatchFunc adapts a function into a Dispatcher.
type DispatchFunc func(Action)

// Dispatch executes f(a).
func (f DispatchFunc) Dispatch(a Action) {
	if f == nil {
		return
	}
	f(a)
}
