// File: formats.go
// Title: Structured Formats
// Description: Parses the TextBox value as JSON, YAML or TOML into the
//              ordered OrderedMap shape. YAML keeps document order through
//              yaml.Node, TOML through the decoder metadata.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Bounded YAML alias expansion

package textbox

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/textbox/foundation/core/errors"
)

// Format names a structured text format
type Format int

const (
	// FormatJSON is JSON (the default)
	FormatJSON Format = iota

	// FormatYAML is YAML 1.2
	FormatYAML

	// FormatTOML is TOML 1.0
	FormatTOML
)

// String returns the lower case format name
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name; "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatJSON, mdwerrors.InvalidFormat(mdwerrors.ModuleTextbox, name, "json, yaml or toml")
	}
}

// ToStructuredArrayAs parses the value in the given format into the
// OrderedMap shape of ToStructuredArray. YAML documents must have a
// mapping or sequence at the top; a TOML document is always a table.
// Failures match ErrBadStructuredData.
func (tb *TextBox) ToStructuredArrayAs(format Format) (*OrderedMap, error) {
	const operation = "to_structured_array_as"

	var (
		tree any
		err  error
	)
	switch format {
	case FormatJSON:
		tree, err = parseJSON(tb.value)
	case FormatYAML:
		tree, err = parseYAML(tb.value)
	case FormatTOML:
		tree, err = parseTOML(tb.value)
	default:
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleTextbox, format.String(), "json, yaml or toml")
	}
	if err != nil {
		return nil, badData(operation, format, "malformed document", err)
	}
	return toArrayShape(operation, format, tree)
}

// maxYAMLAliasNodes bounds the nodes produced by alias expansion
const maxYAMLAliasNodes = 100000

func parseYAML(data string) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	w := &yamlWalker{expanding: make(map[*yaml.Node]bool)}
	return w.value(doc.Content[0])
}

// yamlWalker converts a node tree, expanding aliases. An alias that refers
// to a node it is nested in is an error, as is an expansion beyond
// maxYAMLAliasNodes.
type yamlWalker struct {
	expanding map[*yaml.Node]bool
	depth     int
	expanded  int
}

func (w *yamlWalker) value(node *yaml.Node) (any, error) {
	if w.depth > 0 {
		w.expanded++
		if w.expanded > maxYAMLAliasNodes {
			return nil, fmt.Errorf("line %d: alias expansion exceeds %d nodes", node.Line, maxYAMLAliasNodes)
		}
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return w.value(node.Content[0])
	case yaml.AliasNode:
		target := node.Alias
		if target == nil {
			return nil, fmt.Errorf("line %d: unknown alias %q", node.Line, node.Value)
		}
		if w.expanding[target] {
			return nil, fmt.Errorf("line %d: alias %q refers to itself", node.Line, node.Value)
		}
		w.expanding[target] = true
		w.depth++
		v, err := w.value(target)
		w.depth--
		delete(w.expanding, target)
		return v, err
	case yaml.MappingNode:
		w.expanding[node] = true
		defer delete(w.expanding, node)

		m := newOrderedMap(false)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
			}
			value, err := w.value(valueNode)
			if err != nil {
				return nil, err
			}
			m.set(keyNode.Value, value)
		}
		return m, nil
	case yaml.SequenceNode:
		w.expanding[node] = true
		defer delete(w.expanding, node)

		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := w.value(item)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		if i, ok := v.(int); ok {
			return int64(i), nil
		}
		return v, nil
	}
}

func parseTOML(data string) (any, error) {
	raw := make(map[string]any)
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, err
	}

	root := newOrderedMap(false)
	for _, key := range meta.Keys() {
		placeTOMLKey(root, raw, key)
	}
	fillTOML(root, raw)
	return root, nil
}

// placeTOMLKey creates the entries along key in declaration order. Keys
// inside arrays of tables are skipped here; the array is converted as a
// whole when its own key is placed.
func placeTOMLKey(root *OrderedMap, raw map[string]any, key toml.Key) {
	current, currentRaw := root, raw
	for _, part := range key {
		value, ok := currentRaw[part]
		if !ok {
			return
		}
		table, isTable := value.(map[string]any)
		if !isTable {
			if !current.Has(part) {
				current.set(part, tomlValue(value))
			}
			return
		}
		child, exists := current.Get(part)
		if !exists {
			child = newOrderedMap(false)
			current.set(part, child)
		}
		next, ok := child.(*OrderedMap)
		if !ok {
			return
		}
		current, currentRaw = next, table
	}
}

// fillTOML adds anything the metadata did not name, in sorted key order
func fillTOML(m *OrderedMap, raw map[string]any) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		existing, ok := m.Get(k)
		if !ok {
			m.set(k, tomlValue(raw[k]))
			continue
		}
		if sub, isMap := existing.(*OrderedMap); isMap && !sub.list {
			if table, isTable := raw[k].(map[string]any); isTable {
				fillTOML(sub, table)
			}
		}
	}
}

// tomlValue converts decoded TOML values; tables inside arrays have no
// declaration order in the metadata and are sorted by key.
func tomlValue(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		m := newOrderedMap(false)
		fillTOML(m, vv)
		return m
	case []map[string]any:
		list := make([]any, len(vv))
		for i, table := range vv {
			list[i] = tomlValue(table)
		}
		return list
	case []any:
		list := make([]any, len(vv))
		for i, item := range vv {
			list[i] = tomlValue(item)
		}
		return list
	default:
		return v
	}
}
