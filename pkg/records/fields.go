package records

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one key/value entry of a record's free-form mapping. Value is a
// string, json.Number, or bool.
type Field struct {
	Key   string
	Value any
}

// FieldMap is an object of scalar values that preserves the key order of the
// source JSON. Tables built from these mappings emit one row per entry, in
// document order, which a plain map cannot guarantee.
type FieldMap []Field

// Get returns the value stored under key.
func (m FieldMap) Get(key string) (any, bool) {
	for _, field := range m {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Has reports whether the mapping contains key.
func (m FieldMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// UnmarshalJSON decodes a JSON object via the token stream so entry order
// survives the round trip. Numbers keep their source text.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("records: decode field map: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("records: field map must be a JSON object, got %v", tok)
	}

	out := FieldMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("records: decode field map key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("records: field map key %v is not a string", keyTok)
		}

		valueTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("records: decode field map value for %q: %w", key, err)
		}
		switch value := valueTok.(type) {
		case string, json.Number, bool:
			out = append(out, Field{Key: key, Value: value})
		case nil:
			out = append(out, Field{Key: key, Value: ""})
		default:
			return fmt.Errorf("records: field %q must hold a scalar value", key)
		}
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("records: decode field map: %w", err)
	}

	*m = out
	return nil
}

// MarshalJSON emits the entries as a JSON object in stored order.
func (m FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
