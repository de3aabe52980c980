package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringMinMaxLengthCountsRunesNotBytes(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"minLength": 2, "maxLength": 2}`))
	require.NoError(t, err)

	// "日本" is two runes but six bytes.
	assert.True(t, schema.Validate("日本").IsValid())
	assert.False(t, schema.Validate("日").IsValid())
	assert.False(t, schema.Validate("日本語").IsValid())
}

func TestStringPatternMatches(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"pattern": "^[0-9]+$"}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate("12345").IsValid())
	assert.False(t, schema.Validate("abc").IsValid())
}

func TestStringKeywordsIgnoreNonStringInstances(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"minLength": 5}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(float64(1)).IsValid())
}
