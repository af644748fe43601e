package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Labels is the ordered label set of an asset, stored as a JSON column.
// A nil value maps to SQL NULL.
type Labels []string

func (l Labels) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal Labels: %w", err)
	}
	return b, nil
}
func (l *Labels) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Labels.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("unmarshal Labels: %w", err)
	}
	return nil
}
