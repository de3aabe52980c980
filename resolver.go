package jsonschema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// resolveRef resolves a reference string to another schema node, covering
// the bare-fragment, anchor, JSON Pointer, and full-URL forms that $ref,
// $dynamicRef and $recursiveRef all share.
func (s *Schema) resolveRef(ref string) (*Schema, error) {
	if ref == "#" {
		return s.getRootSchema(), nil
	}

	if strings.HasPrefix(ref, "#") {
		return s.resolveAnchor(ref[1:])
	}

	if !isAbsoluteURI(ref) && s.baseURI != "" {
		ref = resolveRelativeURI(s.baseURI, ref)
	}

	return s.resolveRefWithFullURL(ref)
}

// resolveAnchor resolves a "#"-stripped fragment: a JSON Pointer if it
// starts with "/", otherwise a plain or dynamic anchor name, walking up to
// enclosing scopes when the current schema doesn't declare it.
func (s *Schema) resolveAnchor(anchorName string) (*Schema, error) {
	var schema *Schema
	var err error

	if strings.HasPrefix(anchorName, "/") {
		schema, err = s.resolveJSONPointer(anchorName)
	} else {
		if found, ok := s.anchors[anchorName]; ok {
			return found, nil
		}
		if found, ok := s.dynamicAnchors[anchorName]; ok {
			return found, nil
		}
	}

	if schema == nil && s.parent != nil {
		return s.parent.resolveAnchor(anchorName)
	}

	return schema, err
}

// resolveRefWithFullURL resolves a reference that has been normalized to an
// absolute URL, checking this schema tree's own cache before falling back
// to the owning compiler's registry (which may fetch remotely).
func (s *Schema) resolveRefWithFullURL(ref string) (*Schema, error) {
	root := s.getRootSchema()
	if resolved, err := root.getSchema(ref); err == nil {
		return resolved, nil
	}

	resolved, err := s.GetCompiler().GetSchema(ref)
	if err != nil {
		return nil, ErrGlobalReferenceResolution
	}
	return resolved, nil
}

// resolveJSONPointer walks a JSON Pointer against the schema tree's logical
// structure (not its marshaled JSON), so it can step through map- and
// slice-valued keywords directly.
func (s *Schema) resolveJSONPointer(pointer string) (*Schema, error) {
	if pointer == "/" {
		return s, nil
	}

	segments := jsonpointer.ParseJsonPointer(pointer)
	current := s
	previous := ""

	for i, rawSegment := range segments {
		segment, _ := rawSegment.(string)
		decoded, err := url.PathUnescape(segment)
		if err != nil {
			return nil, ErrJSONPointerSegmentDecode
		}

		next, found := findSchemaInSegment(current, decoded, previous)
		if found {
			current = next
			previous = decoded
			continue
		}

		if i == len(segments)-1 {
			return nil, ErrJSONPointerSegmentNotFound
		}
		previous = decoded
	}

	return current, nil
}

func findSchemaInSegment(current *Schema, segment string, previous string) (*Schema, bool) {
	switch previous {
	case "properties":
		if current.Properties != nil {
			if sub, exists := (*current.Properties)[segment]; exists {
				return sub, true
			}
		}
	case "patternProperties":
		if current.PatternProperties != nil {
			if sub, exists := (*current.PatternProperties)[segment]; exists {
				return sub, true
			}
		}
	case "prefixItems":
		index, err := strconv.Atoi(segment)
		if err == nil && current.PrefixItems != nil && index < len(current.PrefixItems) {
			return current.PrefixItems[index], true
		}
	case "$defs", "definitions":
		if sub, exists := current.Defs[segment]; exists {
			return sub, true
		}
	case "dependentSchemas":
		if sub, exists := current.DependentSchemas[segment]; exists {
			return sub, true
		}
	case "items":
		if current.Items != nil {
			return current.Items, true
		}
	case "additionalItems":
		if current.AdditionalItems != nil {
			return current.AdditionalItems, true
		}
	case "contains":
		if current.Contains != nil {
			return current.Contains, true
		}
	case "additionalProperties":
		if current.AdditionalProperties != nil {
			return current.AdditionalProperties, true
		}
	case "propertyNames":
		if current.PropertyNames != nil {
			return current.PropertyNames, true
		}
	case "unevaluatedProperties":
		if current.UnevaluatedProperties != nil {
			return current.UnevaluatedProperties, true
		}
	case "unevaluatedItems":
		if current.UnevaluatedItems != nil {
			return current.UnevaluatedItems, true
		}
	case "contentSchema":
		if current.ContentSchema != nil {
			return current.ContentSchema, true
		}
	case "not":
		if current.Not != nil {
			return current.Not, true
		}
	case "if":
		if current.If != nil {
			return current.If, true
		}
	case "then":
		if current.Then != nil {
			return current.Then, true
		}
	case "else":
		if current.Else != nil {
			return current.Else, true
		}
	case "allOf":
		index, err := strconv.Atoi(segment)
		if err == nil && index < len(current.AllOf) {
			return current.AllOf[index], true
		}
	case "anyOf":
		index, err := strconv.Atoi(segment)
		if err == nil && index < len(current.AnyOf) {
			return current.AnyOf[index], true
		}
	case "oneOf":
		index, err := strconv.Atoi(segment)
		if err == nil && index < len(current.OneOf) {
			return current.OneOf[index], true
		}
	}
	return nil, false
}

// resolveReferences resolves $ref/$dynamicRef/$recursiveRef across the
// whole schema tree rooted at s, recursing into every keyword that can
// hold a subschema.
func (s *Schema) resolveReferences() {
	if s.Ref != "" {
		if resolved, err := s.resolveRef(s.Ref); err == nil {
			s.ResolvedRef = resolved
		}
	}
	if s.DynamicRef != "" {
		if resolved, err := s.resolveRef(s.DynamicRef); err == nil {
			s.ResolvedDynamicRef = resolved
		}
	}
	if s.RecursiveRef != "" {
		if resolved, err := s.resolveRef(s.RecursiveRef); err == nil {
			s.ResolvedRecursiveRef = resolved
		}
	}

	s.walkSubschemas(func(child *Schema) { child.resolveReferences() })
}

// ResolveUnresolvedReferences retries resolution for references that
// failed the first time, called by the Compiler after new schemas with
// matching URIs become available.
func (s *Schema) ResolveUnresolvedReferences() {
	if s.Ref != "" && s.ResolvedRef == nil {
		if resolved, err := s.resolveRef(s.Ref); err == nil {
			s.ResolvedRef = resolved
		}
	}
	if s.DynamicRef != "" && s.ResolvedDynamicRef == nil {
		if resolved, err := s.resolveRef(s.DynamicRef); err == nil {
			s.ResolvedDynamicRef = resolved
		}
	}
	if s.RecursiveRef != "" && s.ResolvedRecursiveRef == nil {
		if resolved, err := s.resolveRef(s.RecursiveRef); err == nil {
			s.ResolvedRecursiveRef = resolved
		}
	}

	s.walkSubschemas(func(child *Schema) { child.ResolveUnresolvedReferences() })
}

// GetUnresolvedReferenceURIs returns every $ref/$dynamicRef/$recursiveRef
// URI in the tree that failed to resolve, so the Compiler can track this
// schema as waiting on them.
func (s *Schema) GetUnresolvedReferenceURIs() []string {
	var uris []string
	if s.Ref != "" && s.ResolvedRef == nil {
		uris = append(uris, s.Ref)
	}
	if s.DynamicRef != "" && s.ResolvedDynamicRef == nil {
		uris = append(uris, s.DynamicRef)
	}
	if s.RecursiveRef != "" && s.ResolvedRecursiveRef == nil {
		uris = append(uris, s.RecursiveRef)
	}

	s.walkSubschemas(func(child *Schema) {
		uris = append(uris, child.GetUnresolvedReferenceURIs()...)
	})
	return uris
}

// walkSubschemas invokes fn on every direct child schema that can carry
// its own $ref/$dynamicRef/$recursiveRef, mirroring initializeNestedSchemas.
func (s *Schema) walkSubschemas(fn func(*Schema)) {
	for _, def := range s.Defs {
		if def != nil {
			fn(def)
		}
	}
	for _, sub := range s.AllOf {
		if sub != nil {
			fn(sub)
		}
	}
	for _, sub := range s.AnyOf {
		if sub != nil {
			fn(sub)
		}
	}
	for _, sub := range s.OneOf {
		if sub != nil {
			fn(sub)
		}
	}
	if s.Not != nil {
		fn(s.Not)
	}
	if s.If != nil {
		fn(s.If)
	}
	if s.Then != nil {
		fn(s.Then)
	}
	if s.Else != nil {
		fn(s.Else)
	}
	for _, sub := range s.DependentSchemas {
		if sub != nil {
			fn(sub)
		}
	}
	for _, sub := range s.PrefixItems {
		if sub != nil {
			fn(sub)
		}
	}
	if s.Items != nil {
		fn(s.Items)
	}
	if s.AdditionalItems != nil {
		fn(s.AdditionalItems)
	}
	if s.Contains != nil {
		fn(s.Contains)
	}
	if s.AdditionalProperties != nil {
		fn(s.AdditionalProperties)
	}
	if s.Properties != nil {
		for _, sub := range *s.Properties {
			if sub != nil {
				fn(sub)
			}
		}
	}
	if s.PatternProperties != nil {
		for _, sub := range *s.PatternProperties {
			if sub != nil {
				fn(sub)
			}
		}
	}
	if s.PropertyNames != nil {
		fn(s.PropertyNames)
	}
	if s.UnevaluatedProperties != nil {
		fn(s.UnevaluatedProperties)
	}
	if s.UnevaluatedItems != nil {
		fn(s.UnevaluatedItems)
	}
	if s.ContentSchema != nil {
		fn(s.ContentSchema)
	}
}
