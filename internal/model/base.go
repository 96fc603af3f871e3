package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList maps a JSON-encoded TEXT column to []string.
// Question options are stored this way; decoding preserves element order.
type StringList []string

// Scan parses the stored JSON text into the slice.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("StringList.Scan: unsupported type %T", src)
	}
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

// Value serializes the slice as JSON text.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
