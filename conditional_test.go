package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ifThenElseSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"if": {"properties": {"country": {"const": "US"}}, "required": ["country"]},
	"then": {"required": ["zipCode"]},
	"else": {"required": ["postalCode"]}
}`

func TestConditionalThenBranch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(ifThenElseSchemaJSON))
	require.NoError(t, err)

	valid := schema.Validate(map[string]any{"country": "US", "zipCode": "12345"})
	assert.True(t, valid.IsValid())

	invalid := schema.Validate(map[string]any{"country": "US"})
	assert.False(t, invalid.IsValid())
	assert.Equal(t, "if_then_mismatch", invalid.Errors["then"].Code)
}

func TestConditionalElseBranch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(ifThenElseSchemaJSON))
	require.NoError(t, err)

	valid := schema.Validate(map[string]any{"country": "CA", "postalCode": "K1A 0B1"})
	assert.True(t, valid.IsValid())

	invalid := schema.Validate(map[string]any{"country": "CA"})
	assert.False(t, invalid.IsValid())
	assert.Equal(t, "if_else_mismatch", invalid.Errors["else"].Code)
}

func TestConditionalWithoutThenOrElseIsInert(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"if": {"type": "string"}}`))
	require.NoError(t, err)

	result := schema.Validate(42)
	assert.True(t, result.IsValid())
}
