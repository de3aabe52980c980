package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsRequiresAtLeastOneMatch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"contains": {"type": "number"}}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"x", float64(1)}).IsValid())
	assert.False(t, schema.Validate([]any{"x", "y"}).IsValid())
}

func TestContainsMinContainsZeroAllowsNoMatches(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"contains": {"type": "number"},
		"minContains": 0
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"x", "y"}).IsValid())
}

func TestContainsMaxContainsRejectsTooMany(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"contains": {"type": "number"},
		"maxContains": 1
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{float64(1), "x"}).IsValid())
	assert.False(t, schema.Validate([]any{float64(1), float64(2)}).IsValid())
}

func TestContainsAnnotatesMatchingIndexes(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "array",
		"contains": {"type": "integer"},
		"minContains": 2
	}`))
	require.NoError(t, err)

	result := schema.Validate([]any{float64(1), "a", float64(3)})
	assert.True(t, result.IsValid())
	assert.Equal(t, []int{0, 2}, result.Annotations["contains"])

	assert.False(t, schema.Validate([]any{float64(1), "a", "b"}).IsValid())
}

func TestContainsAppliesToObjectPropertiesInDraftNext(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/next/schema",
		"contains": {"type": "integer"},
		"minContains": 2
	}`))
	require.NoError(t, err)

	result := schema.Validate(map[string]any{"a": float64(1), "b": "x", "c": float64(3)})
	assert.True(t, result.IsValid())
	assert.Equal(t, []string{"a", "c"}, result.Annotations["contains"])

	assert.False(t, schema.Validate(map[string]any{"a": float64(1), "b": "x"}).IsValid())
}
