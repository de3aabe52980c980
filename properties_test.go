package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesValidatesDeclaredMembers(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"properties": {"name": {"type": "string"}, "age": {"type": "integer"}}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"name": "x", "age": float64(1)}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"name": 1, "age": float64(1)}).IsValid())
}

func TestPatternPropertiesMatchesByRegex(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"patternProperties": {"^S_": {"type": "string"}, "^I_": {"type": "integer"}}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"S_name": "x", "I_count": float64(3)}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"S_name": float64(1)}).IsValid())
}

func TestAdditionalPropertiesRejectsUncoveredMembers(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"properties": {"name": {"type": "string"}},
		"additionalProperties": false
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"name": "x"}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"name": "x", "extra": 1}).IsValid())
}

func TestAdditionalPropertiesSchemaAppliesToUncovered(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"properties": {"name": {"type": "string"}},
		"additionalProperties": {"type": "number"}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"name": "x", "age": float64(1)}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"name": "x", "age": "not a number"}).IsValid())
}

func TestPropertyNamesConstrainsKeys(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"propertyNames": {"pattern": "^[a-z]+$"}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(map[string]any{"abc": 1}).IsValid())
	assert.False(t, schema.Validate(map[string]any{"ABC": 1}).IsValid())
}

func TestMultiplePropertyMismatchesListedTogether(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"properties": {"a": {"type": "string"}, "b": {"type": "string"}}
	}`))
	require.NoError(t, err)

	result := schema.Validate(map[string]any{"a": 1, "b": 2})
	assert.False(t, result.IsValid())
	assert.Equal(t, "properties_mismatch", result.Errors["properties"].Code)
}

func TestPropertyKeywordsAnnotateEvaluatedNames(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"properties": {"a": {}, "z": {}},
		"patternProperties": {"^b": {}},
		"additionalProperties": {}
	}`))
	require.NoError(t, err)

	result := schema.Validate(map[string]any{"a": float64(1), "bee": float64(2), "c": float64(3)})
	require.True(t, result.IsValid())

	// "z" is declared but absent from the instance, so it is not annotated
	assert.Equal(t, []string{"a"}, result.Annotations["properties"])
	assert.Equal(t, []string{"bee"}, result.Annotations["patternProperties"])
	assert.Equal(t, []string{"c"}, result.Annotations["additionalProperties"])
}
