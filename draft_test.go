package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraftOf(t *testing.T) {
	assert.Equal(t, Draft6, draftOf("http://json-schema.org/draft-06/schema#"))
	assert.Equal(t, Draft7, draftOf("https://json-schema.org/draft-07/schema#"))
	assert.Equal(t, Draft2019_09, draftOf("https://json-schema.org/draft/2019-09/schema"))
	assert.Equal(t, Draft2020_12, draftOf("https://json-schema.org/draft/2020-12/schema"))
	assert.Equal(t, DraftUnspecified, draftOf("https://example.com/unknown"))
	assert.Equal(t, DraftUnspecified, draftOf(""))
}

func TestSupportsSiblingRef(t *testing.T) {
	assert.False(t, supportsSiblingRef(Draft6))
	assert.False(t, supportsSiblingRef(Draft7))
	assert.True(t, supportsSiblingRef(Draft2019_09))
	assert.True(t, supportsSiblingRef(Draft2020_12))
}

func TestUsesPrefixItems(t *testing.T) {
	assert.False(t, usesPrefixItems(Draft2019_09))
	assert.False(t, usesPrefixItems(Draft7))
	assert.True(t, usesPrefixItems(Draft2020_12))
	assert.True(t, usesPrefixItems(DraftNext))
}

func TestDefaultVocabularySet(t *testing.T) {
	v6 := defaultVocabularySet(Draft6)
	assert.False(t, v6[VocabUnevaluated])

	v2019 := defaultVocabularySet(Draft2019_09)
	assert.True(t, v2019[VocabUnevaluated])

	v2020 := defaultVocabularySet(Draft2020_12)
	assert.True(t, v2020[VocabUnevaluated])
	assert.True(t, v2020[VocabCore])
}
