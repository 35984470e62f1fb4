// File: structured.go
// Title: Structured Data Conversion
// Description: Parses the TextBox value as JSON into order preserving
//              structures: OrderedMap for the associative array shape and
//              Record for the field access object shape. Both conversions
//              share one parse step.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textbox

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
	mdwerrors "github.com/msto63/textbox/foundation/core/errors"
)

// ErrBadStructuredData matches every error raised for content that cannot
// be converted to the requested structure, via errors.Is.
var ErrBadStructuredData = mdwerror.Sentinel(mdwerror.CodeBadStructuredData, "bad structured data")

// IsBadStructuredData reports whether err stems from a failed structured
// conversion.
func IsBadStructuredData(err error) bool {
	return errors.Is(err, ErrBadStructuredData)
}

// OrderedMap is a key/value mapping that keeps keys in document order.
// JSON lists are represented as list-shaped maps keyed "0".."n-1".
type OrderedMap struct {
	keys   []string
	values map[string]any
	list   bool
}

func newOrderedMap(list bool) *OrderedMap {
	return &OrderedMap{values: make(map[string]any), list: list}
}

// set stores value under key; a repeated key keeps its first position
func (m *OrderedMap) set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Len returns the number of entries.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in document order.
func (m *OrderedMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Get returns the value stored under key.
func (m *OrderedMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Values returns the values in key order.
func (m *OrderedMap) Values() []any {
	values := make([]any, len(m.keys))
	for i, k := range m.keys {
		values[i] = m.values[k]
	}
	return values
}

// IsList reports whether the map was built from a list.
func (m *OrderedMap) IsList() bool {
	return m.list
}

// Map returns a plain map. Nested list-shaped maps become []any and other
// nested maps become map[string]any.
func (m *OrderedMap) Map() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = plain(m.values[k])
	}
	return out
}

func plain(v any) any {
	switch vv := v.(type) {
	case *OrderedMap:
		if vv.list {
			list := make([]any, len(vv.keys))
			for i, k := range vv.keys {
				list[i] = plain(vv.values[k])
			}
			return list
		}
		return vv.Map()
	case *Record:
		return vv.Map()
	case []any:
		list := make([]any, len(vv))
		for i, item := range vv {
			list[i] = plain(item)
		}
		return list
	default:
		return v
	}
}

// MarshalJSON writes list-shaped maps as arrays and others as objects in
// key order.
func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if m.list {
		buf.WriteByte('[')
		for i, k := range m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			data, err := json.Marshal(m.values[k])
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}

	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Record gives field access to a parsed JSON object. Nested objects are
// Records and lists are []any.
type Record struct {
	fields *OrderedMap
}

// Field returns the value of the named field.
func (r *Record) Field(name string) (any, bool) {
	return r.fields.Get(name)
}

// String returns the named field formatted as text, or "" if absent.
func (r *Record) String(name string) string {
	v, ok := r.fields.Get(name)
	if !ok {
		return ""
	}
	return From(v)
}

// Fields returns the field names in document order.
func (r *Record) Fields() []string {
	return r.fields.Keys()
}

// Has reports whether the named field is present.
func (r *Record) Has(name string) bool {
	return r.fields.Has(name)
}

// Map returns the record as a plain map with nested records converted.
func (r *Record) Map() map[string]any {
	return r.fields.Map()
}

// MarshalJSON writes the record as a JSON object in field order.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.fields.MarshalJSON()
}

// Decode stores the record in the value pointed to by into, following the
// encoding/json rules for struct tags and types.
func (r *Record) Decode(into any) error {
	data, err := r.MarshalJSON()
	if err != nil {
		return mdwerrors.OperationFailed(mdwerrors.ModuleTextbox, "record_decode", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return mdwerrors.InvalidInput(mdwerrors.ModuleTextbox, "record_decode", fmt.Sprintf("%T", into), err.Error())
	}
	return nil
}

// ToStructuredArray parses the value as JSON into an OrderedMap. Objects and
// lists at any depth become OrderedMaps; scalars keep their JSON type with
// integers as int64 and other numbers as float64. Malformed input, null and
// scalar documents fail with an error matching ErrBadStructuredData.
func (tb *TextBox) ToStructuredArray() (*OrderedMap, error) {
	tree, err := parseJSON(tb.value)
	if err != nil {
		return nil, badData("to_structured_array", FormatJSON, "malformed document", err)
	}
	return toArrayShape("to_structured_array", FormatJSON, tree)
}

// ToStructuredObject parses the value as JSON into a Record. The document
// must be an object; lists, null and scalars fail with an error matching
// ErrBadStructuredData.
func (tb *TextBox) ToStructuredObject() (*Record, error) {
	tree, err := parseJSON(tb.value)
	if err != nil {
		return nil, badData("to_structured_object", FormatJSON, "malformed document", err)
	}
	m, ok := tree.(*OrderedMap)
	if !ok {
		return nil, badData("to_structured_object", FormatJSON, "document is not an object: "+describe(tree), nil)
	}
	return recordShape(m).(*Record), nil
}

func badData(operation string, format Format, reason string, cause error) error {
	return mdwerrors.TextboxBadStructuredData(operation, format.String(), reason, cause)
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "list"
	case *OrderedMap:
		return "object"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}

// toArrayShape turns a parse tree into the OrderedMap shape. The tree holds
// objects as *OrderedMap and lists as []any.
func toArrayShape(operation string, format Format, tree any) (*OrderedMap, error) {
	switch tree.(type) {
	case *OrderedMap, []any:
		return arrayShape(tree).(*OrderedMap), nil
	default:
		return nil, badData(operation, format, "document is not an object or list: "+describe(tree), nil)
	}
}

func arrayShape(v any) any {
	switch vv := v.(type) {
	case *OrderedMap:
		m := newOrderedMap(false)
		for _, k := range vv.keys {
			m.set(k, arrayShape(vv.values[k]))
		}
		return m
	case []any:
		m := newOrderedMap(true)
		for i, item := range vv {
			m.set(strconv.Itoa(i), arrayShape(item))
		}
		return m
	default:
		return v
	}
}

func recordShape(v any) any {
	switch vv := v.(type) {
	case *OrderedMap:
		fields := newOrderedMap(false)
		for _, k := range vv.keys {
			fields.set(k, recordShape(vv.values[k]))
		}
		return &Record{fields: fields}
	case []any:
		list := make([]any, len(vv))
		for i, item := range vv {
			list[i] = recordShape(item)
		}
		return list
	default:
		return v
	}
}

// parseJSON decodes a single JSON document into a tree of *OrderedMap,
// []any and scalars, keeping object keys in document order.
func parseJSON(data string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	tree, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("unexpected end of input")
		}
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return tree, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := newOrderedMap(false)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string at offset %d", dec.InputOffset())
				}
				value, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				m.set(key, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			list := []any{}
			for dec.More() {
				value, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q at offset %d", t, dec.InputOffset())
		}
	case json.Number:
		return number(t)
	default:
		// string, bool or nil
		return t, nil
	}
}

func number(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, nil
		}
		return nil, err
	}
	return f, nil
}
