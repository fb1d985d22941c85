package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {"name": {"type": "string"}},
  "additionalProperties": false
}`

func TestValidateBytes_ValidDocument(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"name": "ok"}`))

	assert.NoError(t, err)
}

func TestValidateBytes_MissingRequiredField(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{}`))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "name")
}

func TestValidateBytes_UnknownFieldRejected(t *testing.T) {
	err := ValidateBytes([]byte(testSchema), []byte(`{"name": "ok", "extra": 1}`))

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateBytes_BrokenSchema(t *testing.T) {
	err := ValidateBytes([]byte(`{"type": ["bad"`), []byte(`{}`))

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_Delegates(t *testing.T) {
	assert.NoError(t, ValidateJSONString(testSchema, `{"name": "x"}`))
}

func TestSchemaLoadError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &SchemaLoadError{Message: "load", Cause: cause}

	assert.ErrorIs(t, err, cause)
}
