package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnevaluatedPropertiesHonorsSiblingProperties(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"properties": {"name": {"type": "string"}},
		"unevaluatedProperties": false
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"name": "x"}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"name": "x", "extra": 1}).IsValid())
}

func TestUnevaluatedPropertiesHonorsAllOfBranch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"allOf": [{"properties": {"name": {"type": "string"}}}],
		"unevaluatedProperties": false
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"name": "x"}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"name": "x", "extra": 1}).IsValid())
}

func TestUnevaluatedItemsBooleanFastPath(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"prefixItems": [{"type": "string"}],
		"unevaluatedItems": false
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"x"}).IsValid())
	assert.False(t, schema.Validate([]any{"x", "y"}).IsValid())
}

func TestUnevaluatedItemsTrueMarksEverythingEvaluated(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"unevaluatedItems": true
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{1, 2, 3}).IsValid())
}
