// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldErrors collects human-readable validation messages keyed by field
// name. Both the field order and the message order within a field follow
// insertion order. The zero value is an empty, ready to use collection.
//
// FieldErrors is not safe for concurrent writes; every validation call is
// expected to fill its own instance.
type FieldErrors struct {
	fields   []string
	messages map[string][]string
}

// Add appends message to the list of messages recorded for field.
func (e *FieldErrors) Add(field, message string) {
	if e.messages == nil {
		e.messages = make(map[string][]string)
	}
	if _, ok := e.messages[field]; !ok {
		e.fields = append(e.fields, field)
	}
	e.messages[field] = append(e.messages[field], message)
}

// On returns a copy of the messages recorded for field, or nil.
func (e FieldErrors) On(field string) []string {
	msgs, ok := e.messages[field]
	if !ok {
		return nil
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// First returns the first message recorded for field or an empty string.
func (e FieldErrors) First(field string) string {
	if msgs := e.messages[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Has reports whether at least one message was recorded for field.
func (e FieldErrors) Has(field string) bool {
	return len(e.messages[field]) > 0
}

// IsEmpty reports whether no message was recorded at all.
func (e FieldErrors) IsEmpty() bool {
	return len(e.fields) == 0
}

// Len returns the number of fields with at least one message.
func (e FieldErrors) Len() int {
	return len(e.fields)
}

// Fields returns the field names in the order they first received a message.
func (e FieldErrors) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Map returns the collection as a plain map. Field order is lost.
func (e FieldErrors) Map() map[string][]string {
	out := make(map[string][]string, len(e.fields))
	for _, f := range e.fields {
		out[f] = e.On(f)
	}
	return out
}

// Equal reports whether both collections hold the same fields and messages
// in the same order.
func (e FieldErrors) Equal(other FieldErrors) bool {
	if len(e.fields) != len(other.fields) {
		return false
	}
	for i, f := range e.fields {
		if other.fields[i] != f {
			return false
		}
		a, b := e.messages[f], other.messages[f]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// MarshalJSON encodes the collection as a JSON object whose keys keep
// insertion order: {"merchant_id":["..."],"merchant_name":["..."]}.
func (e FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range e.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.messages[f])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string arrays, keeping the key
// order of the input.
func (e *FieldErrors) UnmarshalJSON(b []byte) error {
	*e = FieldErrors{}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("field errors: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		field, ok := tok.(string)
		if !ok {
			return fmt.Errorf("field errors: expected field name, got %v", tok)
		}

		var msgs []string
		if err = dec.Decode(&msgs); err != nil {
			return fmt.Errorf("field errors: decoding %q: %w", field, err)
		}
		for _, m := range msgs {
			e.Add(field, m)
		}
	}

	_, err = dec.Token()
	return err
}
