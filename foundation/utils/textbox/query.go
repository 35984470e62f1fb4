// File: query.go
// Title: TextBox Queries
// Description: Read-only checks and conversions on the TextBox value:
//              prefix, suffix and containment checks, equality, pattern
//              matching, numeric detection, lengths and splitting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textbox

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/msto63/textbox/foundation/utils/stringx"
)

// DefaultDelimiter is used by Split when no delimiter is given
const DefaultDelimiter = " "

// IsStartWith reports whether the value begins with search.
func (tb *TextBox) IsStartWith(search string) bool {
	return strings.HasPrefix(tb.value, search)
}

// IsEndsWith reports whether the value ends with search.
func (tb *TextBox) IsEndsWith(search string) bool {
	return strings.HasSuffix(tb.value, search)
}

// Contains reports whether search occurs in the value.
func (tb *TextBox) Contains(search string) bool {
	return strings.Contains(tb.value, search)
}

// IsEqual reports whether the value equals other exactly.
func (tb *TextBox) IsEqual(other string) bool {
	return tb.value == other
}

// IsLooseEqual compares numerically when both the value and other are
// numeric strings ("1e3" equals "1000", "01" equals "1") and falls back to
// exact equality otherwise.
func (tb *TextBox) IsLooseEqual(other string) bool {
	if !stringx.IsNumeric(tb.value) || !stringx.IsNumeric(other) {
		return tb.value == other
	}

	a := strings.Trim(tb.value, stringx.NumericWhitespace)
	b := strings.Trim(other, stringx.NumericWhitespace)

	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	if aerr == nil && berr == nil {
		return ai == bi
	}

	// ParseFloat reports ErrRange with ±Inf or 0, which still compare.
	af, _ := strconv.ParseFloat(a, 64)
	bf, _ := strconv.ParseFloat(b, 64)
	return af == bf
}

// IsMatchRegex reports whether pattern matches anywhere in the value.
// Pattern forms are those of ReplaceByPattern; a syntax error is returned
// as the *syntax.Error of the regexp package.
func (tb *TextBox) IsMatchRegex(pattern any) (bool, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(tb.value), nil
}

// IsEmpty reports whether the value has zero length. "0" and " " are not
// empty.
func (tb *TextBox) IsEmpty() bool {
	return stringx.IsEmpty(tb.value)
}

// IsNumeric reports whether the whole value is a decimal numeral with
// optional sign, decimal point and exponent. Leading and trailing ASCII
// whitespace is allowed.
func (tb *TextBox) IsNumeric() bool {
	return stringx.IsNumeric(tb.value)
}

// Length returns the length of the value in bytes.
func (tb *TextBox) Length() int {
	return len(tb.value)
}

// RuneLength returns the number of code points in the value.
func (tb *TextBox) RuneLength() int {
	return utf8.RuneCountInString(tb.value)
}

// ToArray splits the value into single bytes. Multi-byte characters are
// broken into their bytes; use ToRunes to keep them whole. An empty value
// yields an empty slice.
func (tb *TextBox) ToArray() []string {
	parts := make([]string, len(tb.value))
	for i := range parts {
		parts[i] = tb.value[i : i+1]
	}
	return parts
}

// ToRunes splits the value into code points.
func (tb *TextBox) ToRunes() []string {
	parts := make([]string, 0, len(tb.value))
	for _, r := range tb.value {
		parts = append(parts, string(r))
	}
	return parts
}

// Split splits the value on a literal delimiter, keeping empty segments.
// The delimiter defaults to a single space; an empty delimiter falls back
// to that default. Joining the result with the delimiter restores the value.
func (tb *TextBox) Split(delimiter ...string) []string {
	delim := DefaultDelimiter
	if len(delimiter) > 0 && delimiter[0] != "" {
		delim = delimiter[0]
	}
	return strings.Split(tb.value, delim)
}
