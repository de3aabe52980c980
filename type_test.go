package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTypeIntegerAcceptedAsNumber(t *testing.T) {
	schema := &Schema{Type: SchemaType{"number"}}
	require.Nil(t, evaluateType(schema, float64(3)))
}

func TestEvaluateTypeRejectsWrongType(t *testing.T) {
	schema := &Schema{Type: SchemaType{"string"}}
	err := evaluateType(schema, float64(3))
	require.NotNil(t, err)
	assert.Equal(t, "type_mismatch", err.Code)
	assert.Equal(t, "integer", err.Params["received"])
}

func TestEvaluateTypeMultipleDeclaredTypes(t *testing.T) {
	schema := &Schema{Type: SchemaType{"string", "null"}}
	assert.Nil(t, evaluateType(schema, nil))
	assert.Nil(t, evaluateType(schema, "x"))
	assert.NotNil(t, evaluateType(schema, true))
}

func TestEvaluateTypeNoDeclaredTypeAlwaysPasses(t *testing.T) {
	schema := &Schema{}
	assert.Nil(t, evaluateType(schema, 42))
}
