package data

import (
	"encoding/json"
	"strings"
)

// Row is an ordered sequence of values, one per column
type Row []Value

func (r Row) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// MarshalJSON encodes the row as a JSON array of plain values
func (r Row) MarshalJSON() ([]byte, error) {
	cells := make([]interface{}, len(r))
	for i, v := range r {
		cells[i] = v.Interface()
	}
	return json.Marshal(cells)
}
