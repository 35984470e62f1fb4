// File: pattern.go
// Title: Pattern Compilation
// Description: Compiles the pattern forms accepted by TextBox: RE2 source,
//              delimited patterns with trailing flags and precompiled
//              regular expressions.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: RE2 fallback for tails that are not modifiers

package textbox

import (
	"fmt"
	"regexp"
	"strings"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
	mdwerrors "github.com/msto63/textbox/foundation/core/errors"
)

// PatternDelimiters lists the characters that open a delimited pattern
const PatternDelimiters = "/#~|!@%+,;=:"

// patternModifiers are the letters recognized as trailing modifiers of a
// delimited pattern. Only those in flagGroups are supported.
const patternModifiers = "imsxuADSUXJne"

var flagGroups = map[byte]string{
	'i': "i",
	'm': "m",
	's': "s",
	'U': "U",
	'u': "",
}

// CompilePattern compiles pattern the way the TextBox pattern operations do.
//
// A string that starts with one of PatternDelimiters and ends with the same
// delimiter followed only by modifier letters is a delimited pattern:
// "|will|miu" matches "will" with the flags m, i and u. Supported flags are
// i, m, s and U; u is accepted and ignored since matching is always UTF-8.
// The remaining modifiers (x, A, D, S, X, J, n, e) are rejected with
// INVALID_PATTERN. A tail holding any other letter, as in "/usr/bin", makes
// the whole string RE2 source. Syntax errors are returned as *syntax.Error.
func CompilePattern(pattern any) (*regexp.Regexp, error) {
	switch p := pattern.(type) {
	case *regexp.Regexp:
		if p == nil {
			return nil, mdwerrors.TextboxInvalidPattern("compile", "<nil>", nil)
		}
		return p, nil
	case string:
		return compileSource(p)
	case fmt.Stringer:
		return compileSource(p.String())
	default:
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleTextbox, "compile", pattern, "string or *regexp.Regexp")
	}
}

func compileSource(source string) (*regexp.Regexp, error) {
	body, flags, delimited := splitDelimited(source)
	if !delimited {
		return regexp.Compile(source)
	}

	var prefix strings.Builder
	for i := 0; i < len(flags); i++ {
		group, ok := flagGroups[flags[i]]
		if !ok {
			return nil, mdwerror.New(fmt.Sprintf("unsupported pattern flag %q", flags[i])).
				WithCode(mdwerror.CodeInvalidPattern).
				WithOperation("textbox.compile").
				WithDetail("pattern", source)
		}
		if !strings.Contains(prefix.String(), group) {
			prefix.WriteString(group)
		}
	}

	if prefix.Len() > 0 {
		body = "(?" + prefix.String() + ")" + body
	}
	return regexp.Compile(body)
}

// splitDelimited separates a delimited pattern into body and flags
func splitDelimited(source string) (body, flags string, ok bool) {
	if len(source) < 2 || !strings.ContainsRune(PatternDelimiters, rune(source[0])) {
		return "", "", false
	}

	delim := source[0]
	end := strings.LastIndexByte(source, delim)
	if end == 0 {
		return "", "", false
	}

	flags = source[end+1:]
	for i := 0; i < len(flags); i++ {
		if strings.IndexByte(patternModifiers, flags[i]) < 0 {
			return "", "", false
		}
	}
	return source[1:end], flags, true
}
