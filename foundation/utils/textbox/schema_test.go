// File: schema_test.go
// Title: Schema Validation Tests
// Description: Tests for JSON Schema validation of the TextBox value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial test implementation

package textbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/textbox/foundation/core/error"
	mdwerrors "github.com/msto63/textbox/foundation/core/errors"
)

const personSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestValidateStructured(t *testing.T) {
	assert.NoError(t, New(`{"name":"ann","age":31}`).ValidateStructured(personSchema))

	compiled, err := CompileSchema(personSchema)
	require.NoError(t, err)
	assert.NoError(t, New(`{"name":"bob"}`).ValidateStructured(compiled))
}

func TestValidateStructuredViolation(t *testing.T) {
	err := New(`{"name":"ann","age":-1}`).ValidateStructured(personSchema)
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))

	details := mdwerrors.ExtractDetails(err)
	assert.Equal(t, "/age", details["location"])
	assert.NotEmpty(t, details["violations"])

	err = New(`{"age":3}`).ValidateStructured(personSchema)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))

	err = New(`[1]`).ValidateStructured(personSchema)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeValidationFailed))
}

func TestValidateStructuredErrors(t *testing.T) {
	err := New("{not json").ValidateStructured(personSchema)
	assert.True(t, IsBadStructuredData(err))

	err = New(`{}`).ValidateStructured(`{"type": 5}`)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	err = New(`{}`).ValidateStructured(`{`)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))

	err = New(`{}`).ValidateStructured(42)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidInput))
}
