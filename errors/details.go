package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Details maps a field path to the messages reported for it. Keys keep the order in which
// they were first added and messages keep the order in which they were appended, both in
// memory and when encoded as a JSON object.
type Details struct {
	keys   []string
	fields map[string][]string
}

func NewDetails() *Details {
	return &Details{fields: make(map[string][]string)}
}

// Add appends message to the list for field, creating the list on first use.
func (d *Details) Add(field, message string) {
	d.addKey(field)
	d.fields[field] = append(d.fields[field], message)
}

func (d *Details) addKey(field string) {
	if d.fields == nil {
		d.fields = make(map[string][]string)
	}
	if _, ok := d.fields[field]; !ok {
		d.keys = append(d.keys, field)
		d.fields[field] = []string{}
	}
}

// Keys returns the field paths in first-occurrence order.
func (d *Details) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Get returns the messages recorded for field.
func (d *Details) Get(field string) []string {
	if d == nil {
		return nil
	}
	return d.fields[field]
}

func (d *Details) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Map returns an unordered copy.
func (d *Details) Map() map[string][]string {
	out := make(map[string][]string, d.Len())
	if d == nil {
		return out
	}
	for k, v := range d.fields {
		msgs := make([]string, len(v))
		copy(msgs, v)
		out[k] = msgs
	}
	return out
}

func (d *Details) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(d.fields[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *Details) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("details: expected JSON object, got %v", tok)
	}
	d.keys = nil
	d.fields = make(map[string][]string)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("details: expected string key, got %v", tok)
		}
		var msgs []string
		if err := dec.Decode(&msgs); err != nil {
			return fmt.Errorf("details: field %q: %w", key, err)
		}
		d.addKey(key)
		d.fields[key] = append(d.fields[key], msgs...)
	}
	_, err = dec.Token()
	return err
}
