package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompile(t *testing.T, raw string) *Schema {
	t.Helper()
	schema, err := NewCompiler().Compile([]byte(raw))
	require.NoError(t, err)
	return schema
}

func TestMergeSchemasNilSides(t *testing.T) {
	s := mustCompile(t, `{"type": "string"}`)
	assert.Same(t, s, MergeSchemas(s, nil))
	assert.Same(t, s, MergeSchemas(nil, s))
	assert.Nil(t, MergeSchemas(nil, nil))
}

func TestMergeSchemasBooleanTrueWins(t *testing.T) {
	anything := mustCompile(t, `true`)
	nothing := mustCompile(t, `false`)

	merged := MergeSchemas(anything, nothing)
	require.NotNil(t, merged.Boolean)
	assert.True(t, *merged.Boolean)

	merged = MergeSchemas(nothing, nothing)
	require.NotNil(t, merged.Boolean)
	assert.False(t, *merged.Boolean)
}

func TestMergeSchemasUnionsTypes(t *testing.T) {
	a := mustCompile(t, `{"type": "string"}`)
	b := mustCompile(t, `{"type": ["integer", "string"]}`)

	merged := MergeSchemas(a, b)
	assert.ElementsMatch(t, SchemaType{"string", "integer"}, merged.Type)
}

func TestMergeSchemasKeepsLooserNumericBounds(t *testing.T) {
	a := mustCompile(t, `{"minimum": 3, "maximum": 10}`)
	b := mustCompile(t, `{"minimum": 5, "maximum": 20}`)

	merged := MergeSchemas(a, b)
	require.NotNil(t, merged.Minimum)
	require.NotNil(t, merged.Maximum)
	assert.Equal(t, 0, merged.Minimum.Cmp(NewRat(3).Rat))
	assert.Equal(t, 0, merged.Maximum.Cmp(NewRat(20).Rat))
}

func TestMergeSchemasDropsOneSidedBound(t *testing.T) {
	a := mustCompile(t, `{"minimum": 3}`)
	b := mustCompile(t, `{"maximum": 10}`)

	// an instance valid against b alone can be below a's minimum, so the
	// union cannot carry either bound
	merged := MergeSchemas(a, b)
	assert.Nil(t, merged.Minimum)
	assert.Nil(t, merged.Maximum)
}

func TestMergeSchemasIntersectsRequired(t *testing.T) {
	a := mustCompile(t, `{"required": ["id", "name"]}`)
	b := mustCompile(t, `{"required": ["id", "email"]}`)

	merged := MergeSchemas(a, b)
	assert.Equal(t, []string{"id"}, merged.Required)
}

func TestMergeSchemasMergesOverlappingProperties(t *testing.T) {
	a := mustCompile(t, `{"properties": {"n": {"minimum": 1}, "s": {"type": "string"}}}`)
	b := mustCompile(t, `{"properties": {"n": {"minimum": 5}}}`)

	merged := MergeSchemas(a, b)
	require.NotNil(t, merged.Properties)
	props := *merged.Properties

	require.Contains(t, props, "n")
	require.NotNil(t, props["n"].Minimum)
	assert.Equal(t, 0, props["n"].Minimum.Cmp(NewRat(1).Rat))

	// property only one side declares carries over unchanged
	require.Contains(t, props, "s")
	assert.Equal(t, SchemaType{"string"}, props["s"].Type)
}

func TestMergeSchemasDifferingConstBecomesEnum(t *testing.T) {
	a := mustCompile(t, `{"const": "red"}`)
	b := mustCompile(t, `{"const": "blue"}`)

	merged := MergeSchemas(a, b)
	assert.Nil(t, merged.Const)
	assert.ElementsMatch(t, []any{"red", "blue"}, merged.Enum)
}

func TestMergeSchemasEnumDeduplicatesByEquivalence(t *testing.T) {
	a := mustCompile(t, `{"enum": [1, "x"]}`)
	b := mustCompile(t, `{"enum": [1.0, "y"]}`)

	merged := MergeSchemas(a, b)
	// 1 and 1.0 are the same JSON value
	assert.Len(t, merged.Enum, 3)
}

func TestMergeSchemasConflictingFormatDropped(t *testing.T) {
	a := mustCompile(t, `{"format": "email"}`)
	b := mustCompile(t, `{"format": "uuid"}`)
	assert.Nil(t, MergeSchemas(a, b).Format)

	same := MergeSchemas(a, mustCompile(t, `{"format": "email"}`))
	require.NotNil(t, same.Format)
	assert.Equal(t, "email", *same.Format)
}

func TestMergeSchemasUniqueItemsRelaxes(t *testing.T) {
	strict := mustCompile(t, `{"uniqueItems": true}`)
	lax := mustCompile(t, `{"uniqueItems": false}`)

	merged := MergeSchemas(strict, lax)
	require.NotNil(t, merged.UniqueItems)
	assert.False(t, *merged.UniqueItems)

	assert.Nil(t, MergeSchemas(strict, mustCompile(t, `{}`)).UniqueItems)
}

func TestMergedSchemaAcceptsInstancesOfEitherInput(t *testing.T) {
	a := mustCompile(t, `{"type": "string", "minLength": 2}`)
	b := mustCompile(t, `{"type": "integer", "minimum": 0}`)

	merged := MergeSchemas(a, b)
	for _, instance := range []any{"ab", float64(5)} {
		assert.True(t, merged.Validate(instance).IsValid(), "instance %v", instance)
	}
}
