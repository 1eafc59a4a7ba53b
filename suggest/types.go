// Package suggest talks to the remote learning-recommendation and planning
// services. Both are best effort: every failure comes back as an error the
// caller turns into panel state.
package suggest

import (
	"encoding/json"
	"strings"
)

// Recommendation is one learning resource returned by the learning service.
type Recommendation struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title"`
	Provider      string   `json:"provider,omitempty"`
	Type          string   `json:"type,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Reason        string   `json:"reason,omitempty"`
	RelatedSkills []string `json:"relatedSkills,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	URL           string   `json:"url,omitempty"`
}

// PlanSuggestion is one item returned by the planner service.
type PlanSuggestion struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Type        string `json:"type,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Description string `json:"description,omitempty"`
	Reasoning   string `json:"reasoning,omitempty"`
	Action      string `json:"action,omitempty"`

	// Key is a display key assigned by NormalizePlan. It is never sent by
	// the service.
	Key string `json:"-"`
}

// UnmarshalJSON accepts numeric ids as well as strings.
func (p *PlanSuggestion) UnmarshalJSON(data []byte) error {
	type plain PlanSuggestion
	aux := struct {
		ID json.RawMessage `json:"id,omitempty"`
		*plain
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = rawID(aux.ID)
	return nil
}

// UnmarshalJSON accepts numeric ids as well as strings.
func (r *Recommendation) UnmarshalJSON(data []byte) error {
	type plain Recommendation
	aux := struct {
		ID json.RawMessage `json:"id,omitempty"`
		*plain
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.ID = rawID(aux.ID)
	return nil
}

func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return strings.TrimSpace(string(raw))
}
