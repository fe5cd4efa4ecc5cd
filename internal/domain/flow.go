package domain

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// FlowRecord holds the persisted answers of one flow
type FlowRecord map[string]any

// GlobalFieldRecord holds reusable field values shared across flows (prefill only)
type GlobalFieldRecord map[string]any

// Raw returns the record encoded as JSON; an unencodable record yields "{}"
func (r FlowRecord) Raw() []byte {
	if r == nil {
		return []byte("{}")
	}
	raw, err := json.Marshal(map[string]any(r))
	if err != nil {
		return []byte("{}")
	}
	return raw
}

// String reads a value by gjson path, returning fallback when absent
func (r FlowRecord) String(path, fallback string) string {
	res := gjson.GetBytes(r.Raw(), path)
	if !res.Exists() || res.Type == gjson.Null {
		return fallback
	}
	return res.String()
}

// Float reads a numeric value by gjson path; strings holding numbers are accepted
func (r FlowRecord) Float(path string, fallback float64) float64 {
	res := gjson.GetBytes(r.Raw(), path)
	switch res.Type {
	case gjson.Number:
		return res.Float()
	case gjson.String:
		if n, err := strconv.ParseFloat(strings.TrimSpace(res.Str), 64); err == nil {
			return n
		}
	}
	return fallback
}

// Merge returns a copy of the record with values applied on top
func (r FlowRecord) Merge(values map[string]any) FlowRecord {
	out := make(FlowRecord, len(r)+len(values))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range values {
		out[k] = v
	}
	return out
}
