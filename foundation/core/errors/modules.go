// File: modules.go
// Title: Module Specific Error Constructors
// Description: Direct constructors for the failures of each foundation
//              module so call sites stay short and consistent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: textbox, recipe and config constructors

package errors

import (
	mdwerror "github.com/msto63/textbox/foundation/core/error"
)

// TextboxBadStructuredData reports content that could not be converted to
// structured data in the given format.
func TextboxBadStructuredData(operation, format, reason string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleTextbox).
		Operation(operation).
		Messagef("bad structured data (%s): %s", format, reason).
		Cause(cause).
		Code(mdwerror.CodeBadStructuredData).
		Detail("format", format).
		Severity(mdwerror.SeverityLow).
		Build()
}

// TextboxInvalidPattern reports a pattern the regular expression engine or
// the delimiter parser rejected. The engine error is kept as cause.
func TextboxInvalidPattern(operation, pattern string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleTextbox).
		Operation(operation).
		Message("invalid pattern").
		Cause(cause).
		Code(mdwerror.CodeInvalidPattern).
		Detail("pattern", pattern).
		Severity(mdwerror.SeverityLow).
		Build()
}

// TextboxSchemaViolation reports structured data that does not satisfy a schema
func TextboxSchemaViolation(location, reason string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleTextbox).
		Operation("validate_structured").
		Messagef("schema violation at %q: %s", location, reason).
		Code(mdwerror.CodeValidationFailed).
		Detail("location", location).
		Cause(cause).
		Severity(mdwerror.SeverityLow).
		Build()
}

// RecipeUnknownOperation reports a recipe step naming an unsupported operation
func RecipeUnknownOperation(step int, op string) *mdwerror.Error {
	return NewErrorBuilder(ModuleRecipe).
		Operation("load").
		Messagef("step %d: unknown operation %q", step, op).
		Code(mdwerror.CodeValidationFailed).
		Detail("step", step).
		Detail("op", op).
		Severity(mdwerror.SeverityLow).
		Build()
}

// RecipeMissingArgument reports a recipe step lacking a required argument
func RecipeMissingArgument(step int, op, argument string) *mdwerror.Error {
	return NewErrorBuilder(ModuleRecipe).
		Operation("load").
		Messagef("step %d: operation %q requires %q", step, op, argument).
		Code(mdwerror.CodeRequiredField).
		Detail("step", step).
		Detail("op", op).
		Detail("argument", argument).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ConfigInvalidValue reports a configuration key holding an unusable value
func ConfigInvalidValue(key string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("get").
		Messagef("invalid value for %s, expected %s", key, expected).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Severity(mdwerror.SeverityHigh).
		Build()
}
