// File: textbox.go
// Title: TextBox Core Type
// Description: Implements TextBox, a mutable wrapper around a text value
//              with chainable mutators. Every mutator rewrites the held
//              value in place and returns the same instance.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Record pattern errors as CompilePattern returns them

package textbox

import (
	"strings"
)

// TextBox holds a single mutable text value. The zero value is an empty
// TextBox ready for use. A TextBox is not safe for concurrent mutation.
type TextBox struct {
	value string
	err   error
}

// New creates a TextBox from a text-like value. Without an argument the
// TextBox starts empty. See From for the accepted types.
func New(v ...any) *TextBox {
	if len(v) == 0 {
		return &TextBox{}
	}
	return &TextBox{value: From(v[0])}
}

// Clone returns an independent TextBox holding a snapshot of the current
// value. A recorded pattern error is not carried over.
func (tb *TextBox) Clone() *TextBox {
	return &TextBox{value: tb.value}
}

// Value returns the current text.
func (tb *TextBox) Value() string {
	return tb.value
}

// String implements fmt.Stringer.
func (tb *TextBox) String() string {
	return tb.value
}

// Err returns the first error recorded by a chained pattern operation, or
// nil. It is the error CompilePattern returns, the same one IsMatchRegex
// reports: a *syntax.Error for RE2 syntax errors. Operations that fail
// leave the value unchanged; later operations still run.
func (tb *TextBox) Err() error {
	return tb.err
}

func (tb *TextBox) record(err error) {
	if tb.err == nil {
		tb.err = err
	}
}

// Cut replaces the value with the substring of length code points starting
// at code point start.
//
// A negative start counts from the end and is clamped to the beginning. A
// start at or past the end yields an empty value. A negative length omits
// that many code points from the end.
func (tb *TextBox) Cut(start, length int) *TextBox {
	tb.value = substr(tb.value, start, &length)
	return tb
}

// CutFrom replaces the value with everything from code point start to the
// end, with the start rules of Cut.
func (tb *TextBox) CutFrom(start int) *TextBox {
	tb.value = substr(tb.value, start, nil)
	return tb
}

func substr(s string, start int, length *int) string {
	runes := []rune(s)
	n := len(runes)

	if start < 0 {
		start = max(n+start, 0)
	}
	if start >= n {
		return ""
	}

	end := n
	if length != nil {
		if *length < 0 {
			end = n + *length
		} else {
			end = min(start+*length, n)
		}
	}
	if end <= start {
		return ""
	}
	return string(runes[start:end])
}

// Replace replaces every literal occurrence of search. An empty search
// leaves the value unchanged.
func (tb *TextBox) Replace(search, replacement string) *TextBox {
	if search == "" {
		return tb
	}
	tb.value = strings.ReplaceAll(tb.value, search, replacement)
	return tb
}

// ReplaceByPattern replaces every non-overlapping match of pattern, left to
// right, with the result of fn. fn receives the full match at index 0 and
// the capture groups after it; groups that did not participate are "".
//
// pattern is a string (RE2 syntax or a delimited pattern such as
// "/wi[a-z]+/i") or a *regexp.Regexp. If the pattern cannot be compiled the
// value is left unchanged and the error is available from Err.
func (tb *TextBox) ReplaceByPattern(pattern any, fn func(groups []string) string) *TextBox {
	re, err := CompilePattern(pattern)
	if err != nil {
		tb.record(err)
		return tb
	}

	matches := re.FindAllStringSubmatchIndex(tb.value, -1)
	if len(matches) == 0 {
		return tb
	}

	var b strings.Builder
	b.Grow(len(tb.value))
	last := 0
	for _, m := range matches {
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = tb.value[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(tb.value[last:m[0]])
		b.WriteString(fn(groups))
		last = m[1]
	}
	b.WriteString(tb.value[last:])

	tb.value = b.String()
	return tb
}

// ReplaceByTemplate replaces every match of pattern with template, in which
// $1, ${1} and ${name} refer to capture groups. Pattern errors are handled
// as in ReplaceByPattern.
func (tb *TextBox) ReplaceByTemplate(pattern any, template string) *TextBox {
	re, err := CompilePattern(pattern)
	if err != nil {
		tb.record(err)
		return tb
	}
	tb.value = re.ReplaceAllString(tb.value, template)
	return tb
}

// Append adds text to the end of the value.
func (tb *TextBox) Append(text string) *TextBox {
	tb.value += text
	return tb
}

// Prepend adds text to the beginning of the value.
func (tb *TextBox) Prepend(text string) *TextBox {
	tb.value = text + tb.value
	return tb
}
