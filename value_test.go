package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKind(t *testing.T) {
	assert.Equal(t, KindNull, ValueKind(nil))
	assert.Equal(t, KindBoolean, ValueKind(true))
	assert.Equal(t, KindString, ValueKind("x"))
	assert.Equal(t, KindArray, ValueKind([]any{1, 2}))
	assert.Equal(t, KindObject, ValueKind(map[string]any{"a": 1}))
	assert.Equal(t, KindInteger, ValueKind(float64(3)))
	assert.Equal(t, KindNumber, ValueKind(3.5))
}

func TestMatchesType(t *testing.T) {
	assert.True(t, MatchesType(float64(3), "integer"))
	assert.False(t, MatchesType(3.5, "integer"))
	assert.True(t, MatchesType(float64(3), "number"))
	assert.True(t, MatchesType(3.5, "number"))
	assert.True(t, MatchesType("x", "string"))
	assert.False(t, MatchesType("x", "number"))
}

func TestEquivalentNumbers(t *testing.T) {
	assert.True(t, Equivalent(float64(1), 1.0))
	assert.True(t, Equivalent(1, 1.0))
	assert.False(t, Equivalent(1, 1.1))
}

func TestEquivalentObjectsOrderInsensitive(t *testing.T) {
	a := map[string]any{"x": 1, "y": 2}
	b := map[string]any{"y": 2.0, "x": 1.0}
	assert.True(t, Equivalent(a, b))
}

func TestEquivalentArraysOrderSensitive(t *testing.T) {
	a := []any{1, 2, 3}
	b := []any{3, 2, 1}
	assert.False(t, Equivalent(a, b))
	assert.True(t, Equivalent(a, []any{1, 2, 3}))
}

func TestHashEquivalenceAgreesWithEquivalent(t *testing.T) {
	a := map[string]any{"x": 1, "y": 2}
	b := map[string]any{"y": 2, "x": 1}
	assert.Equal(t, HashEquivalence(a), HashEquivalence(b))
	assert.True(t, Equivalent(a, b))

	c := []any{1, 2}
	d := []any{2, 1}
	assert.NotEqual(t, HashEquivalence(c), HashEquivalence(d))
}
