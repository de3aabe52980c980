package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixItemsAppliesPositionally(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"prefixItems": [{"type": "string"}, {"type": "number"}]
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"x", float64(1)}).IsValid())
	assert.False(t, schema.Validate([]any{float64(1), "x"}).IsValid())
}

func TestItemsAppliesToTailAfterPrefixItems(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"prefixItems": [{"type": "string"}],
		"items": {"type": "number"}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"x", float64(1), float64(2)}).IsValid())
	assert.False(t, schema.Validate([]any{"x", "not a number"}).IsValid())
}

func TestItemsAppliesToEveryElementWithoutPrefixItems(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"items": {"type": "string"}}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{"a", "b"}).IsValid())
	assert.False(t, schema.Validate([]any{"a", float64(1)}).IsValid())
}

func TestArrayKeywordsIgnoreNonArrayInstances(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"items": {"type": "string"}}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate("not an array").IsValid())
}

func TestItemsKeywordsAnnotateCoverage(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"prefixItems": [{"type": "integer"}],
		"items": {"type": "string"}
	}`))
	require.NoError(t, err)

	result := schema.Validate([]any{float64(1), "a", "b"})
	require.True(t, result.IsValid())
	assert.Equal(t, 0, result.Annotations["prefixItems"])
	assert.Equal(t, true, result.Annotations["items"])

	// prefixItems covering the whole array annotates true, and items,
	// having nothing left to apply to, annotates nothing
	short := schema.Validate([]any{float64(1)})
	require.True(t, short.IsValid())
	assert.Equal(t, true, short.Annotations["prefixItems"])
	assert.NotContains(t, short.Annotations, "items")
}
