// File: standards.go
// Title: Error Standards for the textbox Foundation
// Description: Standard constructors and analysis helpers shared by all
//              foundation packages. Use these instead of fmt.Errorf or
//              errors.New inside library code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-17 v0.2.0: Modules reduced to textbox, recipe, config and stringx

package errors

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTextbox = "textbox"
	ModuleRecipe  = "recipe"
	ModuleConfig  = "config"
	ModuleStringx = "stringx"
)

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("invalid format in %s", module).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("%s: validation failed for field %s: %s", module, field, reason).
		Code(mdwerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("item not found in %s.%s", module, operation).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ExtractDetails extracts all details from the outermost structured error
func ExtractDetails(err error) map[string]interface{} {
	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// Describe renders an error for terminal output. Structured errors show
// their code, plain errors their message.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	code := mdwerror.GetCode(err)
	if code == mdwerror.CodeUnknown {
		return err.Error()
	}
	return fmt.Sprintf("[%s] %s", code, err.Error())
}
