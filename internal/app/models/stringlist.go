package models

import (
	"encoding/json"
)

// StringList is an ordered list of strings stored as a JSON array in a text
// column (skills, areas of expertise, required skills).
//
// The dashboards occasionally send these fields as something other than an
// array; per the API contract that input degrades to an empty list instead of
// failing the request, and so does malformed stored data.
type StringList []string

// UnmarshalJSON coerces any non-array JSON value to an empty list.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		*l = StringList{}
		return nil
	}
	*l = items
	return nil
}

// MarshalJSON always emits an array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Stored returns the JSON text persisted in the database column.
func (l StringList) Stored() string {
	data, err := json.Marshal(l)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// ParseStoredList decodes a stored JSON array column value. NULL, malformed
// JSON and non-array JSON all decode to an empty list.
func ParseStoredList(stored *string) StringList {
	if stored == nil || *stored == "" {
		return StringList{}
	}
	var items []string
	if err := json.Unmarshal([]byte(*stored), &items); err != nil {
		return StringList{}
	}
	return items
}
