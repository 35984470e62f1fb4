// Package textbox provides TextBox, a fluent, mutable wrapper around a text
// value.
//
// Package: textbox
// Title: Fluent Text Wrapper
// Description: TextBox holds one text value and offers chainable mutators
//              (cut, replace, pattern replace, append, prepend), queries
//              (prefix, suffix, containment, equality, pattern match,
//              numeric check, lengths, splitting) and conversion of the
//              text to ordered structured data.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// # Mutation
//
// Mutators rewrite the value in place and return the receiver, so calls
// chain. Clone takes an independent snapshot:
//
//	tb := textbox.New("will work for eat")
//	tb.Replace("eat", "dream").Prepend("I ")
//	tb.String() // "I will work for dream"
//
// # Bytes and code points
//
// Length and ToArray count bytes while Cut and CutFrom count code points.
// RuneLength and ToRunes are the code point counterparts of Length and
// ToArray.
//
// # Patterns
//
// Pattern operations accept RE2 source, a *regexp.Regexp, or a delimited
// pattern whose closing delimiter is followed by modifier letters. A tail
// with other letters, as in "/usr/bin", is plain RE2 source:
//
//	tb.IsMatchRegex("|wi[a-z]+|miu")
//	tb.ReplaceByPattern(`(\d+)-(\d+)`, func(g []string) string { return g[2] + "/" + g[1] })
//
// ReplaceByPattern cannot return an error without breaking the chain; a
// pattern that fails to compile leaves the value unchanged and is reported
// by Err as the same error IsMatchRegex returns.
//
// # Structured data
//
// ToStructuredArray and ToStructuredObject parse the value as JSON and keep
// object keys in document order. ToStructuredArrayAs also reads YAML and
// TOML. YAML aliases are expanded; a self-referencing alias or an expansion
// past a fixed node limit is a conversion failure. Every conversion failure matches ErrBadStructuredData:
//
//	m, err := textbox.New(`{"field":"first"}`).ToStructuredArray()
//	if textbox.IsBadStructuredData(err) {
//		// malformed or not an object/list
//	}
//
// A TextBox is not safe for concurrent use.
package textbox
