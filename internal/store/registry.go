package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// PayloadDecoder turns a raw payload.data value into the typed value the
// reducers expect.
type PayloadDecoder func(raw json.RawMessage) (any, error)

// Registry validates inbound actions once at the system boundary.
type Registry struct {
	mu       sync.RWMutex
	decoders map[Type]PayloadDecoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: map[Type]PayloadDecoder{}}
}

// Register associates a decoder with t. A nil decoder marks t as a
// payload-less action.
func (r *Registry) Register(t Type, dec PayloadDecoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[t] = dec
}

// Decode returns a JSON decoder for values of type T.
func Decode[T any]() PayloadDecoder {
	return func(raw json.RawMessage) (any, error) {
		var v T
		if len(raw) == 0 {
			return v, nil
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// DecodeList returns a decoder for a list payload. An absent or null list
// decodes to an empty slice, matching the action constructors.
func DecodeList[T any]() PayloadDecoder {
	return func(raw json.RawMessage) (any, error) {
		var v []T
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, err
			}
		}
		if v == nil {
			v = []T{}
		}
		return v, nil
	}
}

// Known reports whether t has been registered.
func (r *Registry) Known(t Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.decoders[t]
	return ok
}

// Types lists the registered type tags.
func (r *Registry) Types() []Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Type, 0, len(r.decoders))
	for t := range r.decoders {
		out = append(out, t)
	}
	return out
}

type wireAction struct {
	Type    string `json:"type"`
	Payload *struct {
		Data json.RawMessage `json:"data"`
	} `json:"payload"`
	Meta  *Meta `json:"meta"`
	Error bool  `json:"error"`
}

// DecodeAction parses and validates a JSON action.
func (r *Registry) DecodeAction(body []byte) (Action, error) {
	var wire wireAction
	if err := json.Unmarshal(body, &wire); err != nil {
		return Action{}, fmt.Errorf("store: invalid action: %w", err)
	}
	t := Type(strings.TrimSpace(wire.Type))
	if t == "" {
		return Action{}, fmt.Errorf("store: action type is required")
	}
	r.mu.RLock()
	dec, ok := r.decoders[t]
	r.mu.RUnlock()
	if !ok {
		return Action{}, fmt.Errorf("store: unknown action type %q", t)
	}
	action := Action{Type: t, Meta: wire.Meta, Error: wire.Error}
	if dec == nil {
		return action, nil
	}
	var raw json.RawMessage
	if wire.Payload != nil {
		raw = wire.Payload.Data
	}
	data, err := dec(raw)
	if err != nil {
		return Action{}, fmt.Errorf("store: decode %s payload: %w", t, err)
	}
	action.Payload = &Payload{Data: data}
	return action, nil
}
