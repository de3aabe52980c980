package jsonschema

import (
	"bytes"
	"fmt"
	"maps"
	"regexp"

	"github.com/goccy/go-json"
)

// knownSchemaFields lists every keyword this engine recognizes across every
// supported draft. Anything else found on a schema object becomes an
// "Extra" annotation and takes no part in validation unless a custom
// keyword is registered for it.
var knownSchemaFields = map[string]struct{}{
	"$id": {}, "$schema": {}, "$ref": {}, "$dynamicRef": {}, "$recursiveRef": {},
	"$anchor": {}, "$dynamicAnchor": {}, "$recursiveAnchor": {}, "$defs": {},
	"definitions": {}, "$comment": {},

	"allOf": {}, "anyOf": {}, "oneOf": {}, "not": {},
	"if": {}, "then": {}, "else": {},
	"dependentSchemas": {}, "dependencies": {},
	"prefixItems": {}, "items": {}, "additionalItems": {}, "contains": {},
	"properties": {}, "patternProperties": {}, "additionalProperties": {}, "propertyNames": {},
	"unevaluatedItems": {}, "unevaluatedProperties": {},

	"type": {}, "enum": {}, "const": {},
	"multipleOf": {}, "maximum": {}, "exclusiveMaximum": {}, "minimum": {}, "exclusiveMinimum": {},
	"maxLength": {}, "minLength": {}, "pattern": {},
	"maxItems": {}, "minItems": {}, "uniqueItems": {}, "maxContains": {}, "minContains": {},
	"maxProperties": {}, "minProperties": {}, "required": {}, "dependentRequired": {},

	"format": {},
	"contentEncoding": {}, "contentMediaType": {}, "contentSchema": {},

	"title": {}, "description": {}, "default": {}, "deprecated": {},
	"readOnly": {}, "writeOnly": {}, "examples": {},
}

// SchemaMap is a map of property/pattern name to subschema, used for
// "properties", "patternProperties" and "$defs".
type SchemaMap map[string]*Schema

// SchemaType holds the "type" keyword's value, which may be a single name
// or an array of names.
type SchemaType []string

// ConstValue distinguishes "const" being absent from "const" being present
// with the JSON value null.
type ConstValue struct {
	Value any
	IsSet bool
}

// Schema is a compiled JSON Schema node. It is either a
// boolean schema (Boolean non-nil) or a keyed schema whose keyword fields
// are populated from the parsed JSON document. Once built by a Compiler it
// is read-only and safe to evaluate concurrently against many instances.
type Schema struct {
	compiler         *Compiler
	parent           *Schema
	uri              string
	baseURI          string
	declaredDraft    Draft
	vocabularySet    map[Vocabulary]bool
	anchors          map[string]*Schema
	dynamicAnchors   map[string]*Schema
	schemas          map[string]*Schema // URI cache, populated at the root
	compiledPattern  *regexp.Regexp
	compiledPatProps map[string]*regexp.Regexp

	ID               string             `json:"$id,omitempty"`
	Schema           string             `json:"$schema,omitempty"`
	Comment          *string            `json:"$comment,omitempty"`
	Ref              string             `json:"$ref,omitempty"`
	DynamicRef       string             `json:"$dynamicRef,omitempty"`
	RecursiveRef     string             `json:"$recursiveRef,omitempty"`
	RecursiveAnchor  *bool              `json:"$recursiveAnchor,omitempty"`
	Anchor           string             `json:"$anchor,omitempty"`
	DynamicAnchor    string             `json:"$dynamicAnchor,omitempty"`
	Defs             map[string]*Schema `json:"$defs,omitempty"`

	ResolvedRef          *Schema `json:"-"`
	ResolvedDynamicRef   *Schema `json:"-"`
	ResolvedRecursiveRef *Schema `json:"-"`

	Boolean *bool `json:"-"`

	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	If               *Schema            `json:"if,omitempty"`
	Then             *Schema            `json:"then,omitempty"`
	Else             *Schema            `json:"else,omitempty"`
	DependentSchemas map[string]*Schema `json:"dependentSchemas,omitempty"`

	PrefixItems     []*Schema `json:"prefixItems,omitempty"`
	Items           *Schema   `json:"items,omitempty"`
	AdditionalItems *Schema   `json:"-"` // Draft6/7 tail schema, folded into Items at parse time
	Contains        *Schema   `json:"contains,omitempty"`

	Properties           *SchemaMap `json:"properties,omitempty"`
	PatternProperties    *SchemaMap `json:"patternProperties,omitempty"`
	AdditionalProperties *Schema    `json:"additionalProperties,omitempty"`
	PropertyNames        *Schema    `json:"propertyNames,omitempty"`

	Type  SchemaType  `json:"type,omitempty"`
	Enum  []any       `json:"enum,omitempty"`
	Const *ConstValue `json:"const,omitempty"`

	MultipleOf       *Rat `json:"multipleOf,omitempty"`
	Maximum          *Rat `json:"maximum,omitempty"`
	ExclusiveMaximum *Rat `json:"exclusiveMaximum,omitempty"`
	Minimum          *Rat `json:"minimum,omitempty"`
	ExclusiveMinimum *Rat `json:"exclusiveMinimum,omitempty"`
	// Draft4-style boolean exclusive bounds, folded into the numeric Rat
	// fields above at parse time when true.
	ExclusiveMaximumBool *bool `json:"-"`
	ExclusiveMinimumBool *bool `json:"-"`

	MaxLength *float64 `json:"maxLength,omitempty"`
	MinLength *float64 `json:"minLength,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`

	MaxItems    *float64 `json:"maxItems,omitempty"`
	MinItems    *float64 `json:"minItems,omitempty"`
	UniqueItems *bool    `json:"uniqueItems,omitempty"`
	MaxContains *float64 `json:"maxContains,omitempty"`
	MinContains *float64 `json:"minContains,omitempty"`

	UnevaluatedItems *Schema `json:"unevaluatedItems,omitempty"`

	MaxProperties     *float64            `json:"maxProperties,omitempty"`
	MinProperties     *float64            `json:"minProperties,omitempty"`
	Required          []string            `json:"required,omitempty"`
	DependentRequired map[string][]string `json:"dependentRequired,omitempty"`

	UnevaluatedProperties *Schema `json:"unevaluatedProperties,omitempty"`

	ContentEncoding  *string `json:"contentEncoding,omitempty"`
	ContentMediaType *string `json:"contentMediaType,omitempty"`
	ContentSchema    *Schema `json:"contentSchema,omitempty"`

	Format *string `json:"format,omitempty"`

	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Default     any     `json:"default,omitempty"`
	Deprecated  *bool   `json:"deprecated,omitempty"`
	ReadOnly    *bool   `json:"readOnly,omitempty"`
	WriteOnly   *bool   `json:"writeOnly,omitempty"`
	Examples    []any   `json:"examples,omitempty"`

	Extra map[string]any `json:"-"`
}

func newSchema(jsonSchema []byte) (*Schema, error) {
	schema := &Schema{}
	if err := json.Unmarshal(jsonSchema, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// initializeSchema wires a freshly unmarshaled schema tree into a compiler
// and parent, resolving $id/base-URI/anchors/draft/vocabulary top-down and
// then resolving $ref/$dynamicRef bottom-up (children must exist first so a
// $ref pointing at a sibling/descendant can be found).
func (s *Schema) initializeSchema(compiler *Compiler, parent *Schema) {
	s.initializeSchemaCore(compiler, parent, true)
}

func (s *Schema) initializeSchemaWithoutReferences(compiler *Compiler, parent *Schema) {
	s.initializeSchemaCore(compiler, parent, false)
}

func (s *Schema) initializeSchemaCore(compiler *Compiler, parent *Schema, resolveRefs bool) {
	if compiler != nil {
		s.compiler = compiler
	}
	s.parent = parent

	effective := s.GetCompiler()

	parentBaseURI := s.getParentBaseURI()
	if parentBaseURI == "" && effective != nil {
		parentBaseURI = effective.DefaultBaseURI
	}
	if s.ID != "" {
		if isValidURI(s.ID) {
			s.uri = s.ID
			s.baseURI = getBaseURI(s.ID)
		} else {
			resolved := resolveRelativeURI(parentBaseURI, s.ID)
			s.uri = resolved
			s.baseURI = getBaseURI(resolved)
		}
	} else {
		s.baseURI = parentBaseURI
	}
	if s.baseURI == "" && s.uri != "" && isValidURI(s.uri) {
		s.baseURI = getBaseURI(s.uri)
	}

	s.declaredDraft = s.resolveDeclaredDraft(effective)
	s.vocabularySet = defaultVocabularySet(s.declaredDraft)
	s.foldDraftVariants()

	if s.Anchor != "" {
		s.setAnchor(s.Anchor)
	}
	if s.DynamicAnchor != "" {
		s.setDynamicAnchor(s.DynamicAnchor)
	}
	if s.uri != "" && isValidURI(s.uri) {
		s.getRootSchema().setSchema(s.uri, s)
	}

	s.initializeNestedSchemas(compiler, resolveRefs)
	if resolveRefs {
		s.resolveReferences()
	}

	if effective != nil && !effective.PreserveExtra {
		s.Extra = nil
	}
}

// resolveDeclaredDraft determines the effective draft for this schema node:
// its own "$schema", else the nearest ancestor's declared draft, else the
// compiler's configured override, else Draft2020_12.
func (s *Schema) resolveDeclaredDraft(c *Compiler) Draft {
	if s.Schema != "" {
		if d := draftOf(s.Schema); d != DraftUnspecified {
			return d
		}
	}
	for p := s.parent; p != nil; p = p.parent {
		if p.declaredDraft != DraftUnspecified {
			return p.declaredDraft
		}
	}
	if c != nil && c.EvaluateAs != DraftUnspecified {
		return c.EvaluateAs
	}
	return Draft2020_12
}

// foldDraftVariants normalizes draft-specific keyword encodings onto the
// canonical fields every keyword file reads, so evaluation never has to
// branch on draft itself (per the design note: "the compiler selects
// per-draft keyword variants at parse time").
func (s *Schema) foldDraftVariants() {
	if s.AdditionalItems != nil && !usesPrefixItems(s.declaredDraft) {
		// Draft6/7 tuple validation: UnmarshalJSON has already placed the
		// positional array in PrefixItems and the additionalItems tail
		// schema in Items, the 2020-12 shape the keyword files read, so
		// nothing is left to fold here.
		_ = s.AdditionalItems
	}
	if s.ExclusiveMinimumBool != nil && s.Minimum != nil && *s.ExclusiveMinimumBool {
		s.ExclusiveMinimum = s.Minimum
		s.Minimum = nil
	}
	if s.ExclusiveMaximumBool != nil && s.Maximum != nil && *s.ExclusiveMaximumBool {
		s.ExclusiveMaximum = s.Maximum
		s.Maximum = nil
	}
}

func (s *Schema) initializeNestedSchemas(compiler *Compiler, resolveRefs bool) {
	initChild := func(child *Schema) {
		if child != nil {
			child.initializeSchemaCore(compiler, s, resolveRefs)
		}
	}
	if s.Defs != nil {
		for _, def := range s.Defs {
			initChild(def)
		}
	}
	for _, sc := range s.AllOf {
		initChild(sc)
	}
	for _, sc := range s.AnyOf {
		initChild(sc)
	}
	for _, sc := range s.OneOf {
		initChild(sc)
	}
	initChild(s.Not)
	initChild(s.If)
	initChild(s.Then)
	initChild(s.Else)
	for _, sc := range s.DependentSchemas {
		initChild(sc)
	}
	for _, sc := range s.PrefixItems {
		initChild(sc)
	}
	initChild(s.Items)
	initChild(s.AdditionalItems)
	initChild(s.Contains)
	initChild(s.AdditionalProperties)
	if s.Properties != nil {
		for _, prop := range *s.Properties {
			initChild(prop)
		}
	}
	if s.PatternProperties != nil {
		for _, prop := range *s.PatternProperties {
			initChild(prop)
		}
	}
	initChild(s.UnevaluatedProperties)
	initChild(s.UnevaluatedItems)
	initChild(s.ContentSchema)
	initChild(s.PropertyNames)
}

// validateRegexSyntax checks every pattern/patternProperties key across the
// whole schema tree compiles as a regex, surfaced as a fatal compilation
// error rather than deferred to evaluation time.
func (s *Schema) validateRegexSyntax() error {
	if s == nil {
		return nil
	}
	visited := make(map[*Schema]bool)
	var errs []error
	s.collectRegexErrors(visited, &errs)
	if len(errs) == 0 {
		return nil
	}
	return &SchemaCompilationError{Errs: errs}
}

func (s *Schema) collectRegexErrors(visited map[*Schema]bool, errs *[]error) {
	if s == nil || visited[s] {
		return
	}
	visited[s] = true

	if s.Pattern != nil {
		if _, err := regexp.Compile(*s.Pattern); err != nil {
			*errs = append(*errs, err)
		}
	}
	if s.PatternProperties != nil {
		for pattern := range *s.PatternProperties {
			if _, err := regexp.Compile(pattern); err != nil {
				*errs = append(*errs, err)
			}
		}
	}
	s.walkSubschemas(func(sub *Schema) { sub.collectRegexErrors(visited, errs) })
}

// validateKnownKeywords rejects any schema in the tree carrying a property
// no supported draft defines as a keyword. Only consulted in strict mode;
// outside it unknown properties survive as Extra annotations.
func (s *Schema) validateKnownKeywords() error {
	if s == nil {
		return nil
	}
	visited := make(map[*Schema]bool)
	var errs []error
	s.collectUnknownKeywords(visited, &errs)
	if len(errs) == 0 {
		return nil
	}
	return &SchemaCompilationError{Errs: errs}
}

func (s *Schema) collectUnknownKeywords(visited map[*Schema]bool, errs *[]error) {
	if s == nil || visited[s] {
		return
	}
	visited[s] = true

	for name := range s.Extra {
		*errs = append(*errs, fmt.Errorf("%w: %q", ErrUnknownKeyword, name))
	}
	s.walkSubschemas(func(sub *Schema) { sub.collectUnknownKeywords(visited, errs) })
}

func (s *Schema) compilePatterns() {
	if s.Pattern != nil && s.compiledPattern == nil {
		if re, err := regexp.Compile(*s.Pattern); err == nil {
			s.compiledPattern = re
		}
	}
	if s.PatternProperties != nil && s.compiledPatProps == nil {
		s.compiledPatProps = make(map[string]*regexp.Regexp, len(*s.PatternProperties))
		for pattern := range *s.PatternProperties {
			if re, err := regexp.Compile(pattern); err == nil {
				s.compiledPatProps[pattern] = re
			}
		}
	}
}

func (s *Schema) setAnchor(anchor string) {
	if s.anchors == nil {
		s.anchors = make(map[string]*Schema)
	}
	s.anchors[anchor] = s

	root := s.getRootSchema()
	if root.anchors == nil {
		root.anchors = make(map[string]*Schema)
	}
	if s.ID == "" || s.ID == root.ID {
		if _, ok := root.anchors[anchor]; !ok {
			root.anchors[anchor] = s
		}
	}
}

func (s *Schema) setDynamicAnchor(anchor string) {
	if s.dynamicAnchors == nil {
		s.dynamicAnchors = make(map[string]*Schema)
	}
	if _, ok := s.dynamicAnchors[anchor]; !ok {
		s.dynamicAnchors[anchor] = s
	}
	scope := s.getScopeSchema()
	if scope.dynamicAnchors == nil {
		scope.dynamicAnchors = make(map[string]*Schema)
	}
	if _, ok := scope.dynamicAnchors[anchor]; !ok {
		scope.dynamicAnchors[anchor] = s
	}
}

func (s *Schema) setSchema(uri string, schema *Schema) {
	if s.schemas == nil {
		s.schemas = make(map[string]*Schema)
	}
	s.schemas[uri] = schema
}

func (s *Schema) getSchema(ref string) (*Schema, error) {
	baseURI, fragment := splitRef(ref)
	if schema, exists := s.schemas[baseURI]; exists {
		if baseURI == ref {
			return schema, nil
		}
		return schema.resolveAnchor(fragment)
	}
	return nil, ErrReferenceResolution
}

// GetSchemaURI returns the resolved URI for the schema (or the root's, if
// this node itself has none).
func (s *Schema) GetSchemaURI() string {
	if s.uri != "" {
		return s.uri
	}
	return s.getRootSchema().uri
}

// GetSchemaLocation returns the "absolute_keyword_location" for a given
// path suffix relative to this schema's resource.
func (s *Schema) GetSchemaLocation(suffix string) string {
	return s.GetSchemaURI() + "#" + suffix
}

func (s *Schema) getRootSchema() *Schema {
	if s.parent != nil {
		return s.parent.getRootSchema()
	}
	return s
}

func (s *Schema) getScopeSchema() *Schema {
	if s.ID != "" {
		return s
	}
	if s.parent != nil {
		return s.parent.getScopeSchema()
	}
	return s
}

func (s *Schema) getParentBaseURI() string {
	for p := s.parent; p != nil; p = p.parent {
		if p.baseURI != "" {
			return p.baseURI
		}
	}
	return ""
}

// SetCompiler attaches a Compiler to a programmatically constructed schema.
func (s *Schema) SetCompiler(compiler *Compiler) *Schema {
	s.compiler = compiler
	return s
}

// GetCompiler returns the effective compiler: this schema's own, else the
// nearest ancestor's, else the package default.
func (s *Schema) GetCompiler() *Compiler {
	if s.compiler != nil {
		return s.compiler
	}
	if s.parent != nil {
		return s.parent.GetCompiler()
	}
	return defaultCompiler
}

// MarshalJSON renders the schema back to JSON, preserving boolean schemas
// and any collected Extra fields.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Boolean != nil {
		return json.Marshal(*s.Boolean)
	}
	type Alias Schema
	data, err := json.Marshal((*Alias)(s))
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	if s.Const != nil && s.Const.IsSet {
		result["const"] = s.Const.Value
	}
	maps.Copy(result, s.Extra)
	return json.Marshal(result)
}

// UnmarshalJSON parses a schema document, handling the boolean-schema case,
// the items/prefixItems draft polymorphism, the "definitions" (Draft-7)
// alias for "$defs", and collecting unrecognized properties into Extra.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Boolean = &b
		return nil
	}

	type Alias Schema
	aux := &struct {
		Items            json.RawMessage `json:"items,omitempty"`
		AdditionalItems  *Schema         `json:"additionalItems,omitempty"`
		Dependencies     json.RawMessage `json:"dependencies,omitempty"`
		ExclusiveMinimum json.RawMessage `json:"exclusiveMinimum,omitempty"`
		ExclusiveMaximum json.RawMessage `json:"exclusiveMaximum,omitempty"`
		*Alias
	}{Alias: (*Alias)(s)}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if len(aux.Items) > 0 {
		trimmed := bytes.TrimSpace(aux.Items)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(aux.Items, &s.PrefixItems); err != nil {
				return err
			}
			if aux.AdditionalItems != nil {
				s.AdditionalItems = aux.AdditionalItems
				s.Items = aux.AdditionalItems
			}
		} else {
			if err := json.Unmarshal(aux.Items, &s.Items); err != nil {
				return err
			}
		}
	}

	if len(aux.ExclusiveMinimum) > 0 {
		if err := parseExclusiveBound(aux.ExclusiveMinimum, &s.ExclusiveMinimum, &s.ExclusiveMinimumBool); err != nil {
			return err
		}
	}
	if len(aux.ExclusiveMaximum) > 0 {
		if err := parseExclusiveBound(aux.ExclusiveMaximum, &s.ExclusiveMaximum, &s.ExclusiveMaximumBool); err != nil {
			return err
		}
	}

	if len(aux.Dependencies) > 0 {
		if err := s.parseDependencies(aux.Dependencies); err != nil {
			return err
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if defsData, ok := raw["definitions"]; ok && s.Defs == nil {
		var defs map[string]*Schema
		if err := json.Unmarshal(defsData, &defs); err != nil {
			return err
		}
		s.Defs = defs
	}

	if constData, ok := raw["const"]; ok {
		s.Const = &ConstValue{}
		if err := s.Const.UnmarshalJSON(constData); err != nil {
			return err
		}
	}

	return s.collectExtraFields(raw)
}

// parseExclusiveBound accepts either the Draft6+ numeric form or the
// Draft4-style boolean modifier form of exclusiveMinimum/exclusiveMaximum.
func parseExclusiveBound(data json.RawMessage, numeric **Rat, boolean **bool) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == 't' || trimmed[0] == 'f') {
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*boolean = &b
		return nil
	}
	var r Rat
	if err := r.UnmarshalJSON(data); err != nil {
		return err
	}
	*numeric = &r
	return nil
}

// parseDependencies splits the Draft6/7 "dependencies" keyword into the
// modern dependentRequired/dependentSchemas split, since each entry may
// independently be either an array of property names or a schema.
func (s *Schema) parseDependencies(data json.RawMessage) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name, value := range raw {
		trimmed := bytes.TrimSpace(value)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var names []string
			if err := json.Unmarshal(value, &names); err != nil {
				return err
			}
			if s.DependentRequired == nil {
				s.DependentRequired = make(map[string][]string)
			}
			s.DependentRequired[name] = names
			continue
		}
		var sub Schema
		if err := json.Unmarshal(value, &sub); err != nil {
			return err
		}
		if s.DependentSchemas == nil {
			s.DependentSchemas = make(map[string]*Schema)
		}
		s.DependentSchemas[name] = &sub
	}
	return nil
}

func (s *Schema) collectExtraFields(raw map[string]json.RawMessage) error {
	extra := make(map[string]any)
	for key, value := range raw {
		if _, known := knownSchemaFields[key]; known {
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return err
		}
		extra[key] = v
	}
	if len(extra) > 0 {
		s.Extra = extra
	}
	return nil
}

// UnmarshalJSON handles "const", distinguishing an explicit JSON null from
// the keyword's absence.
func (cv *ConstValue) UnmarshalJSON(data []byte) error {
	if cv == nil {
		return ErrNilConstValue
	}
	cv.IsSet = true
	if string(data) == "null" {
		cv.Value = nil
		return nil
	}
	return json.Unmarshal(data, &cv.Value)
}

// MarshalJSON renders the const value back out, "null" if explicitly unset-null.
func (cv ConstValue) MarshalJSON() ([]byte, error) {
	if cv.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(cv.Value)
}

// UnmarshalJSON accepts either a bare type name or an array of names.
func (st *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*st = SchemaType{single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err == nil {
		*st = SchemaType(multi)
		return nil
	}
	return ErrInvalidSchemaType
}

// MarshalJSON renders a single-element SchemaType as a bare string, to
// round-trip the common case the same way it was likely authored.
func (st SchemaType) MarshalJSON() ([]byte, error) {
	if len(st) == 1 {
		return json.Marshal(st[0])
	}
	return json.Marshal([]string(st))
}

// UnmarshalJSON parses a map of property name to subschema.
func (sm *SchemaMap) UnmarshalJSON(data []byte) error {
	m := make(map[string]*Schema)
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*sm = SchemaMap(m)
	return nil
}

// MarshalJSON renders a SchemaMap as a plain JSON object.
func (sm SchemaMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]*Schema(sm))
}

// SchemaCompilationError wraps one or more fatal compilation failures,
// e.g. invalid regex syntax found anywhere in the schema tree.
type SchemaCompilationError struct {
	Errs []error
}

func (e *SchemaCompilationError) Error() string {
	msg := "schema compilation failed"
	for _, err := range e.Errs {
		msg += ": " + err.Error()
	}
	return msg
}

func (e *SchemaCompilationError) Unwrap() []error {
	return e.Errs
}
