// File: schema.go
// Title: JSON Schema Validation
// Description: Validates the TextBox value, parsed as JSON, against a JSON
//              Schema (draft 2020-12 unless the schema declares another).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textbox

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
	mdwerrors "github.com/msto63/textbox/foundation/core/errors"
)

const schemaResource = "textbox://schema.json"

// CompileSchema compiles a JSON Schema document. An unparsable or invalid
// schema yields an INVALID_INPUT error.
func CompileSchema(schema string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaResource, strings.NewReader(schema)); err != nil {
		return nil, invalidSchema(err)
	}
	compiled, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, invalidSchema(err)
	}
	return compiled, nil
}

func invalidSchema(cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleTextbox).
		Operation("compile_schema").
		Message("invalid schema").
		Cause(cause).
		Code(mdwerror.CodeInvalidInput).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ValidateStructured parses the value as JSON and validates it against
// schema, which is either JSON Schema source text or a schema returned by
// CompileSchema. A malformed value fails with an error matching
// ErrBadStructuredData, an invalid schema with INVALID_INPUT and a violation
// with VALIDATION_FAILED whose details carry every failing location.
func (tb *TextBox) ValidateStructured(schema any) error {
	var compiled *jsonschema.Schema
	switch s := schema.(type) {
	case *jsonschema.Schema:
		compiled = s
	case string:
		var err error
		if compiled, err = CompileSchema(s); err != nil {
			return err
		}
	default:
		return mdwerrors.InvalidInput(mdwerrors.ModuleTextbox, "validate_structured", schema, "schema source or *jsonschema.Schema")
	}

	if _, err := parseJSON(tb.value); err != nil {
		return badData("validate_structured", FormatJSON, "malformed document", err)
	}

	var instance any
	if err := json.Unmarshal([]byte(tb.value), &instance); err != nil {
		return badData("validate_structured", FormatJSON, "malformed document", err)
	}

	err := compiled.Validate(instance)
	if err == nil {
		return nil
	}

	var valErr *jsonschema.ValidationError
	if !errors.As(err, &valErr) {
		return mdwerrors.OperationFailed(mdwerrors.ModuleTextbox, "validate_structured", err)
	}
	return violation(valErr)
}

// violation converts a validation error, reporting the most specific cause
// and listing all of them in the details.
func violation(valErr *jsonschema.ValidationError) error {
	leaf := valErr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	location := leaf.InstanceLocation
	if location == "" {
		location = "/"
	}

	basic := valErr.BasicOutput()
	causes := make([]map[string]string, 0, len(basic.Errors))
	for _, cause := range basic.Errors {
		causes = append(causes, map[string]string{
			"instanceLocation": cause.InstanceLocation,
			"keywordLocation":  cause.KeywordLocation,
			"error":            cause.Error,
		})
	}

	return mdwerrors.TextboxSchemaViolation(location, leaf.Message, valErr).
		WithDetail("keywordLocation", leaf.KeywordLocation).
		WithDetail("violations", causes)
}
