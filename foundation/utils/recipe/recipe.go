// File: recipe.go
// Title: Recipe Definition
// Description: Defines Recipe, a named and ordered list of TextBox
//              operations, and the validation applied before a recipe runs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package recipe

import (
	mdwerrors "github.com/msto63/textbox/foundation/core/errors"
	"github.com/msto63/textbox/foundation/utils/stringx"
	"github.com/msto63/textbox/foundation/utils/textbox"
)

// Supported step operations
const (
	OpCut            = "cut"
	OpCutFrom        = "cut_from"
	OpReplace        = "replace"
	OpReplacePattern = "replace_pattern"
	OpAppend         = "append"
	OpPrepend        = "prepend"
)

// Operations lists the supported operations in documentation order
var Operations = []string{OpCut, OpCutFrom, OpReplace, OpReplacePattern, OpAppend, OpPrepend}

// Recipe is a named sequence of steps applied to a TextBox in order
type Recipe struct {
	Name        string `toml:"name" yaml:"name"`
	Description string `toml:"description" yaml:"description"`
	Steps       []Step `toml:"steps" yaml:"steps"`
}

// Step is a single operation with its arguments. Pointer fields tell an
// absent argument apart from an empty one.
type Step struct {
	Op       string  `toml:"op" yaml:"op"`
	Start    *int    `toml:"start" yaml:"start"`
	Length   *int    `toml:"length" yaml:"length"`
	Search   string  `toml:"search" yaml:"search"`
	Replace  *string `toml:"replace" yaml:"replace"`
	Pattern  string  `toml:"pattern" yaml:"pattern"`
	Template *string `toml:"template" yaml:"template"`
	Text     *string `toml:"text" yaml:"text"`
}

// Validate normalizes operation names ("cutFrom" and "cut-from" become
// "cut_from") and checks that every step names a supported operation with
// its required arguments. Patterns are compiled so that a broken pattern
// fails here rather than halfway through a run. Steps are numbered from 1
// in errors.
func (r *Recipe) Validate() error {
	for i := range r.Steps {
		step := &r.Steps[i]
		number := i + 1
		step.Op = stringx.NormalizeIdentifier(step.Op)

		switch step.Op {
		case OpCut:
			if step.Start == nil {
				return mdwerrors.RecipeMissingArgument(number, step.Op, "start")
			}
			if step.Length == nil {
				return mdwerrors.RecipeMissingArgument(number, step.Op, "length")
			}
		case OpCutFrom:
			if step.Start == nil {
				return mdwerrors.RecipeMissingArgument(number, step.Op, "start")
			}
		case OpReplace:
			if step.Search == "" {
				return mdwerrors.RecipeMissingArgument(number, step.Op, "search")
			}
			if step.Replace == nil {
				return mdwerrors.RecipeMissingArgument(number, step.Op, "replace")
			}
		case OpReplacePattern:
			if step.Pattern == "" {
				return mdwerrors.RecipeMissingArgument(number, step.Op, "pattern")
			}
			if step.Template == nil {
				return mdwerrors.RecipeMissingArgument(number, step.Op, "template")
			}
			if _, err := textbox.CompilePattern(step.Pattern); err != nil {
				return mdwerrors.TextboxInvalidPattern("recipe_validate", step.Pattern, err).
					WithDetail("step", number)
			}
		case OpAppend, OpPrepend:
			if step.Text == nil {
				return mdwerrors.RecipeMissingArgument(number, step.Op, "text")
			}
		default:
			return mdwerrors.RecipeUnknownOperation(number, step.Op)
		}
	}
	return nil
}

// Apply runs the step on tb
func (s Step) Apply(tb *textbox.TextBox) *textbox.TextBox {
	switch s.Op {
	case OpCut:
		return tb.Cut(*s.Start, *s.Length)
	case OpCutFrom:
		return tb.CutFrom(*s.Start)
	case OpReplace:
		return tb.Replace(s.Search, *s.Replace)
	case OpReplacePattern:
		return tb.ReplaceByTemplate(s.Pattern, *s.Template)
	case OpAppend:
		return tb.Append(*s.Text)
	case OpPrepend:
		return tb.Prepend(*s.Text)
	default:
		return tb
	}
}
