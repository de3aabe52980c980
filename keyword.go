package jsonschema

// Priority values fix intra-schema keyword evaluation order. Lower runs
// first. $schema/$id resolve the draft and base URI before anything else
// can be interpreted; annotation producers that another keyword consumes
// (minContains/maxContains before contains) run before their consumer;
// unevaluated-* keywords run last so every sibling and descendant has had a
// chance to mark properties/items as evaluated.
const (
	priorityIdentity     = 0  // $schema, $id
	priorityRef          = 10 // $ref, $dynamicRef, $recursiveRef (pre-2019-09: exclusive)
	priorityAnnotation   = 20 // type, enum, const, format, metadata keywords
	priorityContainsSize = 25 // minContains, maxContains (consumed by contains)
	priorityApplicator   = 30 // allOf, anyOf, oneOf, not, if/then/else, properties, items, contains, ...
	priorityUnevaluated  = 90 // unevaluatedProperties, unevaluatedItems
)

// KeywordDescriptor is the static, immutable entry the Keyword Catalog holds
// for a single keyword name. It never holds per-schema state; the parsed
// argument lives on the Schema itself.
type KeywordDescriptor struct {
	Name              string
	ApplicableDrafts  map[Draft]bool
	VocabularyID      Vocabulary
	Priority          int
	IsApplicator      bool
	RequiresPriorPass []string // keywords this one's result depends on, for documentation/ordering checks
}

func drafts(ds ...Draft) map[Draft]bool {
	m := make(map[Draft]bool, len(ds))
	for _, d := range ds {
		m[d] = true
	}
	return m
}

var allDrafts = drafts(Draft6, Draft7, Draft2019_09, Draft2020_12, DraftNext)
var from2019 = drafts(Draft2019_09, Draft2020_12, DraftNext)
var from2020 = drafts(Draft2020_12, DraftNext)
var pre2019 = drafts(Draft6, Draft7)

// keywordCatalog is the static registry of every keyword this engine knows,
// keyed by name. It is built once at package init and never mutated at
// runtime; draft/vocabulary gating and priority live here so the Evaluation
// loop can filter+sort without any keyword file needing to
// know about its neighbors.
var keywordCatalog = map[string]*KeywordDescriptor{
	"$schema":       {Name: "$schema", ApplicableDrafts: allDrafts, VocabularyID: VocabCore, Priority: priorityIdentity},
	"$id":           {Name: "$id", ApplicableDrafts: allDrafts, VocabularyID: VocabCore, Priority: priorityIdentity},
	"$anchor":       {Name: "$anchor", ApplicableDrafts: from2019, VocabularyID: VocabCore, Priority: priorityIdentity},
	"$dynamicAnchor": {Name: "$dynamicAnchor", ApplicableDrafts: from2020, VocabularyID: VocabCore, Priority: priorityIdentity},
	"$recursiveAnchor": {Name: "$recursiveAnchor", ApplicableDrafts: drafts(Draft2019_09), VocabularyID: VocabCore, Priority: priorityIdentity},

	"$ref":          {Name: "$ref", ApplicableDrafts: allDrafts, VocabularyID: VocabCore, Priority: priorityRef, IsApplicator: true},
	"$dynamicRef":   {Name: "$dynamicRef", ApplicableDrafts: from2020, VocabularyID: VocabCore, Priority: priorityRef, IsApplicator: true},
	"$recursiveRef": {Name: "$recursiveRef", ApplicableDrafts: drafts(Draft2019_09), VocabularyID: VocabCore, Priority: priorityRef, IsApplicator: true},

	"type":  {Name: "type", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"enum":  {Name: "enum", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"const": {Name: "const", ApplicableDrafts: drafts(Draft6, Draft7, Draft2019_09, Draft2020_12, DraftNext), VocabularyID: VocabValidation, Priority: priorityAnnotation},

	"multipleOf":       {Name: "multipleOf", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"minimum":          {Name: "minimum", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"maximum":          {Name: "maximum", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"exclusiveMinimum": {Name: "exclusiveMinimum", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"exclusiveMaximum": {Name: "exclusiveMaximum", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},

	"minLength": {Name: "minLength", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"maxLength": {Name: "maxLength", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"pattern":   {Name: "pattern", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"format":    {Name: "format", ApplicableDrafts: allDrafts, VocabularyID: VocabFormatAnnotation, Priority: priorityAnnotation},

	"minItems":    {Name: "minItems", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"maxItems":    {Name: "maxItems", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"uniqueItems": {Name: "uniqueItems", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"minContains": {Name: "minContains", ApplicableDrafts: from2019, VocabularyID: VocabValidation, Priority: priorityContainsSize},
	"maxContains": {Name: "maxContains", ApplicableDrafts: from2019, VocabularyID: VocabValidation, Priority: priorityContainsSize},

	"minProperties": {Name: "minProperties", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"maxProperties": {Name: "maxProperties", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"required":      {Name: "required", ApplicableDrafts: allDrafts, VocabularyID: VocabValidation, Priority: priorityAnnotation},

	"dependentRequired": {Name: "dependentRequired", ApplicableDrafts: from2019, VocabularyID: VocabValidation, Priority: priorityAnnotation},
	"dependencies":      {Name: "dependencies", ApplicableDrafts: pre2019, VocabularyID: VocabValidation, Priority: priorityAnnotation, IsApplicator: true},

	"allOf": {Name: "allOf", ApplicableDrafts: allDrafts, VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},
	"anyOf": {Name: "anyOf", ApplicableDrafts: allDrafts, VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},
	"oneOf": {Name: "oneOf", ApplicableDrafts: allDrafts, VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},
	"not":   {Name: "not", ApplicableDrafts: allDrafts, VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},

	"if":   {Name: "if", ApplicableDrafts: drafts(Draft7, Draft2019_09, Draft2020_12, DraftNext), VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},
	"then": {Name: "then", ApplicableDrafts: drafts(Draft7, Draft2019_09, Draft2020_12, DraftNext), VocabularyID: VocabApplicator, Priority: priorityApplicator + 1, IsApplicator: true},
	"else": {Name: "else", ApplicableDrafts: drafts(Draft7, Draft2019_09, Draft2020_12, DraftNext), VocabularyID: VocabApplicator, Priority: priorityApplicator + 1, IsApplicator: true},

	"dependentSchemas": {Name: "dependentSchemas", ApplicableDrafts: from2019, VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},

	"properties":           {Name: "properties", ApplicableDrafts: allDrafts, VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},
	"patternProperties":    {Name: "patternProperties", ApplicableDrafts: allDrafts, VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},
	"additionalProperties": {Name: "additionalProperties", ApplicableDrafts: allDrafts, VocabularyID: VocabApplicator, Priority: priorityApplicator + 1, IsApplicator: true},
	"propertyNames":        {Name: "propertyNames", ApplicableDrafts: from2019, VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},

	"prefixItems":     {Name: "prefixItems", ApplicableDrafts: from2020, VocabularyID: VocabApplicator, Priority: priorityApplicator, IsApplicator: true},
	"items":           {Name: "items", ApplicableDrafts: allDrafts, VocabularyID: VocabApplicator, Priority: priorityApplicator + 1, IsApplicator: true},
	"additionalItems": {Name: "additionalItems", ApplicableDrafts: pre2019, VocabularyID: VocabApplicator, Priority: priorityApplicator + 1, IsApplicator: true},
	"contains":        {Name: "contains", ApplicableDrafts: from2019, VocabularyID: VocabApplicator, Priority: priorityApplicator + 2, IsApplicator: true},

	"unevaluatedProperties": {Name: "unevaluatedProperties", ApplicableDrafts: from2019, VocabularyID: VocabUnevaluated, Priority: priorityUnevaluated, IsApplicator: true},
	"unevaluatedItems":      {Name: "unevaluatedItems", ApplicableDrafts: from2019, VocabularyID: VocabUnevaluated, Priority: priorityUnevaluated, IsApplicator: true},

	"contentEncoding":  {Name: "contentEncoding", ApplicableDrafts: drafts(Draft7, Draft2019_09, Draft2020_12, DraftNext), VocabularyID: VocabContent, Priority: priorityAnnotation},
	"contentMediaType": {Name: "contentMediaType", ApplicableDrafts: drafts(Draft7, Draft2019_09, Draft2020_12, DraftNext), VocabularyID: VocabContent, Priority: priorityAnnotation},
	"contentSchema":    {Name: "contentSchema", ApplicableDrafts: drafts(Draft2019_09, Draft2020_12, DraftNext), VocabularyID: VocabContent, Priority: priorityAnnotation + 1, IsApplicator: true},

	"title":       {Name: "title", ApplicableDrafts: allDrafts, VocabularyID: VocabMetaData, Priority: priorityAnnotation},
	"description": {Name: "description", ApplicableDrafts: allDrafts, VocabularyID: VocabMetaData, Priority: priorityAnnotation},
	"default":     {Name: "default", ApplicableDrafts: allDrafts, VocabularyID: VocabMetaData, Priority: priorityAnnotation},
	"deprecated":  {Name: "deprecated", ApplicableDrafts: from2019, VocabularyID: VocabMetaData, Priority: priorityAnnotation},
	"readOnly":    {Name: "readOnly", ApplicableDrafts: allDrafts, VocabularyID: VocabMetaData, Priority: priorityAnnotation},
	"writeOnly":   {Name: "writeOnly", ApplicableDrafts: from2019, VocabularyID: VocabMetaData, Priority: priorityAnnotation},
	"examples":    {Name: "examples", ApplicableDrafts: allDrafts, VocabularyID: VocabMetaData, Priority: priorityAnnotation},
}

// activeKeywords returns every keyword name the catalog considers
// applicable for the given draft, sorted ascending by priority and, within a
// priority tier, lexicographically, so the order is fully deterministic. vocab, when non-nil, additionally filters by vocabulary
// membership (the 2019-09+ "$vocabulary" mechanism); a nil vocab means
// "gate by draft alone", matching pre-2019-09 schemas and the
// process_custom_keywords=false fallback.
func activeKeywords(d Draft, vocab map[Vocabulary]bool) []string {
	type entry struct {
		name     string
		priority int
	}
	var entries []entry
	for name, desc := range keywordCatalog {
		if !desc.ApplicableDrafts[d] {
			continue
		}
		if vocab != nil && !vocab[desc.VocabularyID] {
			continue
		}
		entries = append(entries, entry{name, desc.Priority})
	}
	// insertion sort by (priority, name) — small N, deterministic, no need for sort.Slice instability concerns
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			a, b := entries[j-1], entries[j]
			if a.priority < b.priority || (a.priority == b.priority && a.name <= b.name) {
				break
			}
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
