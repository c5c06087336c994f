package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"lead-consolidator/core/utils"

	"github.com/goccy/go-yaml"
)

// MarshalJSON writes the record as a JSON object in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[f])
		if err != nil {
			// YAML input can carry maps with non-string keys.
			if val, err = json.Marshal(plainValue(r.values[f])); err != nil {
				return nil, fmt.Errorf("field %s: %w", f, err)
			}
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping its field order and decoding
// numbers as json.Number.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	r.fields = nil
	r.values = make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected field name token %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		r.Set(name, v)
	}
	_, err = dec.Token()
	return err
}

// MarshalYAML writes the record as an ordered YAML mapping.
func (r *Record) MarshalYAML() (any, error) {
	items := make(yaml.MapSlice, 0, len(r.fields))
	for _, f := range r.fields {
		items = append(items, yaml.MapItem{Key: f, Value: plainValue(r.values[f])})
	}
	return items, nil
}

// UnmarshalYAML reads a YAML mapping, keeping its field order.
func (r *Record) UnmarshalYAML(unmarshal func(any) error) error {
	var items yaml.MapSlice
	if err := unmarshal(&items); err != nil {
		return err
	}
	r.fields = nil
	r.values = make(map[string]any)
	for _, item := range items {
		r.Set(utils.ToString(item.Key), item.Value)
	}
	return nil
}
