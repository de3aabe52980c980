package jsonschema

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentEncodingBase64Decodes(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"contentEncoding": "base64"}`))
	require.NoError(t, err)

	encoded := base64.StdEncoding.EncodeToString([]byte("hello"))
	assert.True(t, schema.Validate(encoded).IsValid())
	assert.False(t, schema.Validate("not base64!!").IsValid())
}

func TestContentEncodingUnsupportedFails(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"contentEncoding": "uuencode"}`))
	require.NoError(t, err)

	result := schema.Validate("anything")
	assert.False(t, result.IsValid())
	assert.Equal(t, "unsupported_encoding", result.Errors["contentEncoding"].Code)
}

func TestContentMediaTypeJSONParses(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"contentMediaType": "application/json"}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(`{"a": 1}`).IsValid())
	assert.False(t, schema.Validate(`{not json`).IsValid())
}

func TestContentSchemaValidatesDecodedJSON(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"contentMediaType": "application/json",
		"contentSchema": {
			"type": "object",
			"required": ["name"],
			"properties": {"name": {"type": "string"}}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(`{"name": "ok"}`).IsValid())

	result := schema.Validate(`{"age": 1}`)
	assert.False(t, result.IsValid())
	assert.Equal(t, "content_schema_mismatch", result.Errors["contentSchema"].Code)
}

func TestContentEncodingAndMediaTypeCompose(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"contentEncoding": "base64",
		"contentMediaType": "application/json",
		"contentSchema": {"type": "array"}
	}`))
	require.NoError(t, err)

	encoded := base64.StdEncoding.EncodeToString([]byte(`[1, 2, 3]`))
	assert.True(t, schema.Validate(encoded).IsValid())

	badEncoded := base64.StdEncoding.EncodeToString([]byte(`{"not": "array"}`))
	assert.False(t, schema.Validate(badEncoded).IsValid())
}

func TestContentKeywordsIgnoreNonStringInstances(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"contentEncoding": "base64"}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate(float64(42)).IsValid())
}
