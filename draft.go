package jsonschema

// Draft identifies a versioned edition of the JSON Schema specification.
// It governs which keywords the Keyword Catalog recognizes and, for a
// handful of keywords (exclusiveMinimum/Maximum, items/prefixItems, $ref
// siblings), which semantic variant applies.
type Draft string

const (
	DraftUnspecified Draft = ""
	Draft6           Draft = "draft6"
	Draft7           Draft = "draft7"
	Draft2019_09     Draft = "draft2019-09"
	Draft2020_12     Draft = "draft2020-12"
	DraftNext        Draft = "draft-next"
)

// metaSchemaURIs maps the canonical URI of each supported draft's
// meta-schema to that draft, used to infer
// a schema's draft from its "$schema" keyword.
var metaSchemaURIs = map[string]Draft{
	"http://json-schema.org/draft-06/schema#":        Draft6,
	"https://json-schema.org/draft-06/schema#":       Draft6,
	"http://json-schema.org/draft-07/schema#":        Draft7,
	"https://json-schema.org/draft-07/schema#":       Draft7,
	"https://json-schema.org/draft/2019-09/schema":   Draft2019_09,
	"https://json-schema.org/draft/2020-12/schema":   Draft2020_12,
	"https://json-schema.org/draft/next/schema":      DraftNext,
}

// draftOf infers a Draft from a raw "$schema" URI, ignoring an optional
// trailing fragment. Returns DraftUnspecified if the URI names no known draft.
func draftOf(schemaURI string) Draft {
	if schemaURI == "" {
		return DraftUnspecified
	}
	base, _ := splitRef(schemaURI)
	if d, ok := metaSchemaURIs[base]; ok {
		return d
	}
	if d, ok := metaSchemaURIs[schemaURI]; ok {
		return d
	}
	if d, ok := metaSchemaURIs[base+"#"]; ok {
		return d
	}
	return DraftUnspecified
}

// supportsSiblingRef reports whether $ref may coexist with sibling keywords
// in the given draft. Pre-2019-09, $ref is exclusive: every sibling keyword
// is ignored. From 2019-09 onward $ref behaves as an ordinary applicator.
func supportsSiblingRef(d Draft) bool {
	switch d {
	case Draft6, Draft7:
		return false
	default:
		return true
	}
}

// usesPrefixItems reports whether the draft uses the 2020-12 "prefixItems" +
// "items" tail convention rather than the pre-2020-12 "items" (array-or-schema)
// + "additionalItems" convention.
func usesPrefixItems(d Draft) bool {
	switch d {
	case Draft2020_12, DraftNext:
		return true
	default:
		return false
	}
}

// Vocabulary is a named, independently toggleable group of keywords, as
// introduced by the 2019-09 meta-schema "$vocabulary" keyword. Drafts before
// 2019-09 have no vocabulary concept; every keyword they define is always on.
type Vocabulary string

const (
	VocabCore              Vocabulary = "core"
	VocabApplicator        Vocabulary = "applicator"
	VocabValidation        Vocabulary = "validation"
	VocabMetaData          Vocabulary = "meta-data"
	VocabFormatAnnotation  Vocabulary = "format-annotation"
	VocabFormatAssertion   Vocabulary = "format-assertion"
	VocabContent           Vocabulary = "content"
	VocabUnevaluated       Vocabulary = "unevaluated"
)

// defaultVocabularySet returns the vocabulary set implied by a draft when its
// meta-schema declares no explicit "$vocabulary" object (the common case for
// schemas that just set "$schema" to a standard draft URI).
func defaultVocabularySet(d Draft) map[Vocabulary]bool {
	all := map[Vocabulary]bool{
		VocabCore: true, VocabApplicator: true, VocabValidation: true,
		VocabMetaData: true, VocabFormatAnnotation: true, VocabContent: true,
	}
	switch d {
	case Draft2019_09:
		all[VocabUnevaluated] = true
	case Draft2020_12, DraftNext:
		all[VocabUnevaluated] = true
	case Draft6, Draft7:
		// no vocabulary concept; all keywords of the draft are always active,
		// which this map already expresses since every keyword descriptor is
		// gated by applicable_drafts first.
	}
	return all
}
