package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayMinMaxItems(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"minItems": 1, "maxItems": 2}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{1}).IsValid())
	assert.False(t, schema.Validate([]any{}).IsValid())
	assert.False(t, schema.Validate([]any{1, 2, 3}).IsValid())
}

func TestUniqueItemsRejectsEquivalentDuplicates(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"uniqueItems": true}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{1, 2, 3}).IsValid())
	// 1 and 1.0 are structurally equivalent numbers
	assert.False(t, schema.Validate([]any{float64(1), float64(1)}).IsValid())
	assert.False(t, schema.Validate([]any{map[string]any{"a": 1}, map[string]any{"a": 1}}).IsValid())
}

func TestUniqueItemsOrderSensitiveArraysAreNotDuplicates(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"uniqueItems": true}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{
		[]any{float64(1), float64(2)},
		[]any{float64(2), float64(1)},
	}).IsValid())
}
