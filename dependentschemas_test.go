package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependentSchemasAppliesWhenPropertyPresent(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"dependentSchemas": {
			"creditCard": {"required": ["billingAddress"]}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{}).IsValid())
	assert.True(t, schema.Validate(map[string]any{"creditCard": "1234", "billingAddress": "x"}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"creditCard": "1234"}).IsValid())
}

func TestDependentSchemasMultipleMismatchesListed(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"dependentSchemas": {
			"a": {"required": ["x"]},
			"b": {"required": ["y"]}
		}
	}`))
	require.NoError(t, err)

	result := schema.Validate(map[string]any{"a": 1, "b": 2})
	assert.False(t, result.IsValid())
	assert.Equal(t, "dependent_schemas_mismatch", result.Errors["dependentSchemas"].Code)
}
