package plans

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Selection is the SELECT_PLAN payload: a partial plan and the JSON fields it
// carries. Fields present with a zero value still overwrite the previous
// selection. A nil Fields set means every non-zero field of Plan.
type Selection struct {
	Plan   Plan
	Fields map[string]bool
}

type planField struct {
	name string
	zero func(p Plan) bool
	get  func(p Plan) any
	set  func(dst *Plan, src Plan)
}

var planFields = []planField{
	{"_id", func(p Plan) bool { return p.ID == "" }, func(p Plan) any { return p.ID }, func(d *Plan, s Plan) { d.ID = s.ID }},
	{"description", func(p Plan) bool { return p.Description == "" }, func(p Plan) any { return p.Description }, func(d *Plan, s Plan) { d.Description = s.Description }},
	{"owner", func(p Plan) bool { return p.Owner == "" }, func(p Plan) any { return p.Owner }, func(d *Plan, s Plan) { d.Owner = s.Owner }},
	{"jurisdiction", func(p Plan) bool { return p.Jurisdiction == "" }, func(p Plan) any { return p.Jurisdiction }, func(d *Plan, s Plan) { d.Jurisdiction = s.Jurisdiction }},
	{"incidentType", func(p Plan) bool { return p.IncidentType == nil }, func(p Plan) any { return p.IncidentType }, func(d *Plan, s Plan) { d.IncidentType = s.IncidentType }},
	{"activityCount", func(p Plan) bool { return p.ActivityCount == 0 }, func(p Plan) any { return p.ActivityCount }, func(d *Plan, s Plan) { d.ActivityCount = s.ActivityCount }},
	{"createdAt", func(p Plan) bool { return p.CreatedAt.IsZero() }, func(p Plan) any { return p.CreatedAt }, func(d *Plan, s Plan) { d.CreatedAt = s.CreatedAt }},
	{"updatedAt", func(p Plan) bool { return p.UpdatedAt.IsZero() }, func(p Plan) any { return p.UpdatedAt }, func(d *Plan, s Plan) { d.UpdatedAt = s.UpdatedAt }},
}

func (s Selection) has(f planField) bool {
	if s.Fields == nil {
		return !f.zero(s.Plan)
	}
	return s.Fields[f.name]
}

// Apply overlays the carried fields onto a copy of prev.
func (s Selection) Apply(prev *Plan) Plan {
	var out Plan
	if prev != nil {
		out = *prev
	}
	for _, f := range planFields {
		if s.has(f) {
			f.set(&out, s.Plan)
		}
	}
	return out
}

// MarshalJSON encodes only the carried fields, so journals record the
// payload as it was sent.
func (s Selection) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(planFields))
	for _, f := range planFields {
		if s.has(f) {
			out[f.name] = f.get(s.Plan)
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a partial plan object and records which fields it
// named. Null and non-object values are rejected.
func (s *Selection) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("plans: cannot select a nil plan")
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keys); err != nil {
		return err
	}
	var plan Plan
	if err := json.Unmarshal(trimmed, &plan); err != nil {
		return err
	}
	fields := make(map[string]bool, len(keys))
	for _, f := range planFields {
		if _, ok := keys[f.name]; ok {
			fields[f.name] = true
		}
	}
	s.Plan = plan
	s.Fields = fields
	return nil
}
