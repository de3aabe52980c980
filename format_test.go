package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIsAnnotationOnlyByDefault(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"format": "email"}`))
	require.NoError(t, err)

	// not a valid email, but format is an annotation by default so it passes
	result := schema.Validate("not-an-email")
	assert.True(t, result.IsValid())
}

func TestFormatAssertsWhenRequireFormatValidationSet(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"format": "email"}`))
	require.NoError(t, err)

	valid := schema.ValidateWithOptions("user@example.com", &EvaluationOptions{RequireFormatValidation: true})
	assert.True(t, valid.IsValid())

	invalid := schema.ValidateWithOptions("not-an-email", &EvaluationOptions{RequireFormatValidation: true})
	assert.False(t, invalid.IsValid())
	assert.Equal(t, "format_mismatch", invalid.Errors["format"].Code)
}

func TestFormatAssertsWhenCompilerAssertFormatSet(t *testing.T) {
	compiler := NewCompiler().SetAssertFormat(true)
	schema, err := compiler.Compile([]byte(`{"format": "uuid"}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate("3f6b2b2a-9c3a-4e9a-9f1a-1f2f3a4b5c6d").IsValid())
	assert.False(t, schema.Validate("not-a-uuid").IsValid())
}

func TestFormatUnknownNameAcceptedEvenWhenAsserting(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"format": "does-not-exist"}`))
	require.NoError(t, err)

	result := schema.ValidateWithOptions("whatever", &EvaluationOptions{RequireFormatValidation: true})
	assert.True(t, result.IsValid())
}

func TestBuiltinFormats(t *testing.T) {
	cases := []struct {
		format string
		valid  string
		invalid string
	}{
		{"date-time", "2024-01-02T15:04:05Z", "not-a-date-time"},
		{"date", "2024-01-02", "2024-13-40"},
		{"ipv4", "192.168.1.1", "999.1.1.1"},
		{"ipv6", "::1", "not-ipv6"},
		{"uuid", "3f6b2b2a-9c3a-4e9a-9f1a-1f2f3a4b5c6d", "not-a-uuid"},
		{"uri", "https://example.com/path", "not a uri"},
		{"hostname", "example.com", "-bad-.com"},
		{"json-pointer", "/a/b", "a/b"},
		{"regex", "^[a-z]+$", "("},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.format, func(t *testing.T) {
			compiler := NewCompiler()
			schema, err := compiler.Compile([]byte(`{"format": "` + tc.format + `"}`))
			require.NoError(t, err)

			assert.True(t, schema.ValidateWithOptions(tc.valid, &EvaluationOptions{RequireFormatValidation: true}).IsValid(), "expected %q to satisfy %s", tc.valid, tc.format)
			assert.False(t, schema.ValidateWithOptions(tc.invalid, &EvaluationOptions{RequireFormatValidation: true}).IsValid(), "expected %q to violate %s", tc.invalid, tc.format)
		})
	}
}

func TestRegisterFormatRestrictsByType(t *testing.T) {
	compiler := NewCompiler()
	compiler.RegisterFormat("even", func(v any) bool {
		n, ok := v.(float64)
		return !ok || int(n)%2 == 0
	}, "number")

	schema, err := compiler.Compile([]byte(`{"format": "even"}`))
	require.NoError(t, err)

	assert.True(t, schema.ValidateWithOptions(float64(4), &EvaluationOptions{RequireFormatValidation: true}).IsValid())
	assert.False(t, schema.ValidateWithOptions(float64(3), &EvaluationOptions{RequireFormatValidation: true}).IsValid())
	// restricted to "number"; strings are ignored by this format entirely
	assert.True(t, schema.ValidateWithOptions("not a number", &EvaluationOptions{RequireFormatValidation: true}).IsValid())
}
