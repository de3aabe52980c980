package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// activeKeywords is the Keyword Catalog's ordering authority: context.go's
// evaluate() hand-dispatches keywords in an order chosen to match it, since
// a per-call sort over the catalog would cost more than it's worth on the
// hot path. This test pins activeKeywords' own contract instead.
func TestActiveKeywordsOrdersByPriorityThenName(t *testing.T) {
	names := activeKeywords(Draft2020_12, nil)
	assert.NotEmpty(t, names)

	indexOf := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		return -1
	}

	// $id/$schema (priority 0) precede $ref (priority 10), which precedes
	// type (priority 20), which precedes allOf (priority 30), which
	// precedes unevaluatedProperties (priority 90).
	assert.Less(t, indexOf("$id"), indexOf("$ref"))
	assert.Less(t, indexOf("$ref"), indexOf("type"))
	assert.Less(t, indexOf("type"), indexOf("allOf"))
	assert.Less(t, indexOf("allOf"), indexOf("unevaluatedProperties"))

	// within the priorityAnnotation tier, ties break lexicographically.
	assert.Less(t, indexOf("const"), indexOf("enum"))
}

func TestActiveKeywordsGatesByDraft(t *testing.T) {
	draft6 := activeKeywords(Draft6, nil)
	for _, name := range draft6 {
		assert.NotEqual(t, "prefixItems", name, "prefixItems is a 2020-12 keyword")
		assert.NotEqual(t, "$dynamicRef", name, "$dynamicRef is a 2020-12 keyword")
	}

	draft2020 := activeKeywords(Draft2020_12, nil)
	found := false
	for _, name := range draft2020 {
		if name == "prefixItems" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestActiveKeywordsGatesByVocabulary(t *testing.T) {
	vocab := map[Vocabulary]bool{VocabCore: true}
	names := activeKeywords(Draft2020_12, vocab)
	for _, name := range names {
		assert.Equal(t, VocabCore, keywordCatalog[name].VocabularyID)
	}
}

func TestIsActiveMatchesCatalog(t *testing.T) {
	assert.True(t, isActive(Draft2020_12, nil, "prefixItems"))
	assert.False(t, isActive(Draft6, nil, "prefixItems"))
	assert.False(t, isActive(Draft2020_12, nil, "nonexistent"))
}
