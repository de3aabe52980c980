package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOfRequiresEveryBranch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"allOf": [{"type": "string"}, {"minLength": 3}]
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate("abcd").IsValid())
	assert.False(t, schema.Validate("ab").IsValid())
	assert.False(t, schema.Validate(42).IsValid())
}

func TestAnyOfRequiresOneBranch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"anyOf": [{"type": "string"}, {"type": "integer"}]
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate("x").IsValid())
	assert.True(t, schema.Validate(float64(1)).IsValid())
	assert.False(t, schema.Validate(true).IsValid())
}

func TestOneOfRejectsMultipleMatches(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"oneOf": [{"type": "number"}, {"multipleOf": 2}]
	}`))
	require.NoError(t, err)

	// matches only the number branch
	assert.True(t, schema.Validate(3.5).IsValid())

	// matches both: a number that is also a multiple of 2
	result := schema.Validate(float64(4))
	assert.False(t, result.IsValid())
	assert.Equal(t, "one_of_multiple_matches", result.Errors["oneOf"].Code)
}

func TestNotSchemaDoubleNegationBehavior(t *testing.T) {
	compiler := NewCompiler()
	notString, err := compiler.Compile([]byte(`{"not": {"type": "string"}}`))
	require.NoError(t, err)
	assert.True(t, notString.Validate(42).IsValid())
	assert.False(t, notString.Validate("x").IsValid())

	notNotString, err := compiler.Compile([]byte(`{"not": {"not": {"type": "string"}}}`))
	require.NoError(t, err)
	assert.True(t, notNotString.Validate("x").IsValid())
	assert.False(t, notNotString.Validate(42).IsValid())
}
