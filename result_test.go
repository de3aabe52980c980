package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1}
	},
	"required": ["name"]
}`

func TestValidationIsDeterministic(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(personSchemaJSON))
	require.NoError(t, err)

	instance := map[string]any{"name": ""}
	first := schema.Validate(instance)
	second := schema.Validate(instance)

	assert.Equal(t, first.IsValid(), second.IsValid())
	assert.Equal(t, first.ToFlag(), second.ToFlag())
	assert.Equal(t, first.GetDetailedErrors(), second.GetDetailedErrors())
}

func TestOutputFormatsAgreeOnValidity(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(personSchemaJSON))
	require.NoError(t, err)

	result := schema.Validate(map[string]any{})
	require.False(t, result.IsValid())

	assert.False(t, result.ToFlag().Valid)
	assert.False(t, result.ToList().Valid)
	assert.False(t, result.ToList(false).Valid)
}

func TestToListFlattenDropsHierarchy(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(personSchemaJSON))
	require.NoError(t, err)

	result := schema.Validate(map[string]any{"name": ""})
	flat := result.ToList(false)
	require.NotEmpty(t, flat.Details)
	for _, entry := range flat.Details {
		assert.Empty(t, entry.Details)
	}

	nested := result.ToList(true)
	assert.NotEmpty(t, nested.Details)
}

func TestGetDetailedErrorsKeysByInstancePath(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(personSchemaJSON))
	require.NoError(t, err)

	result := schema.Validate(map[string]any{"name": ""})
	errs := result.GetDetailedErrors()
	_, ok := errs["/name/minLength"]
	assert.True(t, ok, "expected a detailed error keyed by /name/minLength, got %v", errs)
}

func TestEvaluationErrorLocalizeFallsBackWithoutLocalizer(t *testing.T) {
	err := NewEvaluationError("minLength", "string_too_short", "Value should be at least [[min_length]] characters", map[string]any{
		"min_length": "1",
	})
	assert.Equal(t, err.Error(), err.Localize(nil))
}

func TestEvaluationErrorLocalizeUsesBundle(t *testing.T) {
	bundle, err := I18n()
	require.NoError(t, err)

	localizer := bundle.NewLocalizer("en")
	evalErr := NewEvaluationError("minLength", "string_too_short", "Value should be at least [[min_length]] characters", map[string]any{
		"min_length": "1",
	})
	localized := evalErr.Localize(localizer)
	assert.Contains(t, localized, "1")
}

func TestMetadataAnnotationsCollected(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"title": "A widget",
		"description": "something widget-shaped",
		"deprecated": true
	}`))
	require.NoError(t, err)

	result := schema.Validate(map[string]any{})
	assert.Equal(t, "A widget", result.Annotations["title"])
	assert.Equal(t, "something widget-shaped", result.Annotations["description"])
	assert.Equal(t, true, result.Annotations["deprecated"])
}

func TestRegisterMessageTemplateOverridesBuiltin(t *testing.T) {
	RegisterMessageTemplate("value_below_minimum", "expected at least [[minimum]], got [[value]]")
	defer delete(messageTemplates, "value_below_minimum")

	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"minimum": 3}`))
	require.NoError(t, err)

	result := schema.Validate(float64(2))
	require.False(t, result.IsValid())
	assert.Equal(t, "expected at least 3, got 2", result.Errors["minimum"].Error())
}
