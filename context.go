package jsonschema

import "reflect"

// DynamicScope is the stack of schema resources currently being evaluated,
// used to resolve "$dynamicRef"/"$recursiveRef" against the outermost
// matching "$dynamicAnchor"/"$recursiveAnchor" rather than the statically
// nearest one.
type DynamicScope struct {
	schemas []*Schema
}

// NewDynamicScope returns an empty scope stack.
func NewDynamicScope() *DynamicScope {
	return &DynamicScope{}
}

func (ds *DynamicScope) Push(schema *Schema) {
	ds.schemas = append(ds.schemas, schema)
}

func (ds *DynamicScope) Pop() *Schema {
	if len(ds.schemas) == 0 {
		return nil
	}
	last := len(ds.schemas) - 1
	schema := ds.schemas[last]
	ds.schemas = ds.schemas[:last]
	return schema
}

func (ds *DynamicScope) Peek() *Schema {
	if len(ds.schemas) == 0 {
		return nil
	}
	return ds.schemas[len(ds.schemas)-1]
}

func (ds *DynamicScope) IsEmpty() bool {
	return len(ds.schemas) == 0
}

func (ds *DynamicScope) Size() int {
	return len(ds.schemas)
}

// LookupDynamicAnchor returns the outermost scope entry that declares
// anchor as a "$dynamicAnchor", per the 2020-12 dynamic-scope resolution
// algorithm: the first (oldest) match on the stack wins, not the last.
func (ds *DynamicScope) LookupDynamicAnchor(anchor string) *Schema {
	for i := 0; i < len(ds.schemas); i++ {
		schema := ds.schemas[i]
		if schema.dynamicAnchors != nil && schema.dynamicAnchors[anchor] != nil {
			return schema.dynamicAnchors[anchor]
		}
	}
	return nil
}

// outermostRecursiveAnchor returns the oldest scope entry that declares
// "$recursiveAnchor": true, per Draft2019-09's $recursiveRef algorithm
// (the predecessor to $dynamicRef's anchor-name matching).
func (ds *DynamicScope) outermostRecursiveAnchor() *Schema {
	for i := 0; i < len(ds.schemas); i++ {
		schema := ds.schemas[i]
		if schema.RecursiveAnchor != nil && *schema.RecursiveAnchor {
			return schema
		}
	}
	return nil
}

// refFrame records one (schema, instance) pair entered through a
// $ref/$dynamicRef/$recursiveRef chain, used to detect the cycles
// that recurse forever: a $ref chain that revisits the same schema location
// against the same, unconsumed instance.
type refFrame struct {
	schema   *Schema
	instance any
}

// evalContext carries everything evaluation needs to thread through a
// recursive descent beyond the dynamic scope stack: the effective
// Options (output format, format assertion toggle, custom keyword hook)
// and a trace hook for debugging.
type evalContext struct {
	opts     *EvaluationOptions
	scope    *DynamicScope
	refChain []refFrame
	trace    func(step string, schema *Schema, instance any)
}

func newEvalContext(opts *EvaluationOptions) *evalContext {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &evalContext{opts: opts, scope: NewDynamicScope(), trace: opts.Trace}
}

// enterRef pushes a (schema, instance) frame onto the reference chain,
// returning false without pushing if the same pair is already on the
// chain (a cycle that would otherwise recurse forever since no instance
// is consumed across a $ref hop).
func (ctx *evalContext) enterRef(schema *Schema, instance any) bool {
	for _, frame := range ctx.refChain {
		if frame.schema == schema && sameInstance(frame.instance, instance) {
			return false
		}
	}
	ctx.refChain = append(ctx.refChain, refFrame{schema: schema, instance: instance})
	return true
}

func (ctx *evalContext) exitRef() {
	ctx.refChain = ctx.refChain[:len(ctx.refChain)-1]
}

// sameInstance reports whether a and b are the very same instance value,
// not merely structurally equivalent: identical pointer for maps/slices,
// identical value for comparable scalar kinds.
func sameInstance(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() != bv.Kind() {
		return false
	}
	switch av.Kind() {
	case reflect.Map, reflect.Slice:
		return av.Pointer() == bv.Pointer()
	default:
		return a == b
	}
}

// Validate evaluates instance against the schema using the package default
// options and returns the full hierarchical result.
func (s *Schema) Validate(instance any) *EvaluationResult {
	return s.ValidateWithOptions(instance, nil)
}

// ValidateWithOptions evaluates instance against the schema with explicit
// EvaluationOptions (output format, format assertion, custom keywords).
func (s *Schema) ValidateWithOptions(instance any, opts *EvaluationOptions) *EvaluationResult {
	ctx := newEvalContext(opts)
	result, _, _ := s.evaluate(instance, ctx)
	return result
}

func (s *Schema) evaluate(instance any, ctx *evalContext) (*EvaluationResult, map[string]bool, map[int]bool) {
	ctx.scope.Push(s)
	defer ctx.scope.Pop()

	result := NewEvaluationResult(s)
	evaluatedProps := make(map[string]bool)
	evaluatedItems := make(map[int]bool)

	if ctx.trace != nil {
		ctx.trace("enter", s, instance)
		defer ctx.trace("exit", s, instance)
	}

	if s.Boolean != nil {
		if err := s.evaluateBoolean(instance, evaluatedProps, evaluatedItems); err != nil {
			result.AddError(err)
		}
		return result, evaluatedProps, evaluatedItems
	}

	if s.PatternProperties != nil {
		s.compilePatterns()
	}
	if s.Pattern != nil {
		s.compilePatterns()
	}

	draft := s.declaredDraft
	vocab := s.vocabularySet
	if ctx.opts.EvaluateAs != DraftUnspecified {
		draft = ctx.opts.EvaluateAs
		vocab = defaultVocabularySet(draft)
	}

	if s.ResolvedRef != nil && (isActive(draft, vocab, "$ref") || !supportsSiblingRef(draft)) {
		if !ctx.enterRef(s.ResolvedRef, instance) {
			result.AddError(NewEvaluationError("$ref", "reference_cycle", "Reference cycle detected evaluating [[uri]]", map[string]any{
				"uri": s.Ref,
			}))
			return result, evaluatedProps, evaluatedItems
		}
		refResult, props, items := s.ResolvedRef.evaluate(instance, ctx)
		ctx.exitRef()
		if refResult != nil {
			result.AddDetail(refResult)
			if !refResult.IsValid() {
				result.AddError(NewEvaluationError("$ref", "ref_mismatch", "Value does not match the referenced schema"))
			}
		}
		mergeStringMaps(evaluatedProps, props)
		mergeIntMaps(evaluatedItems, items)
		if !supportsSiblingRef(draft) {
			// Pre-2019-09: a sibling $ref makes every other keyword on this
			// schema object inert.
			return result, evaluatedProps, evaluatedItems
		}
	}

	if s.ResolvedDynamicRef != nil {
		anchorSchema := s.ResolvedDynamicRef
		_, anchor := splitRef(s.DynamicRef)
		if !isJSONPointerFragment(anchor) {
			if dynAnchor := s.ResolvedDynamicRef.DynamicAnchor; dynAnchor != "" {
				if found := ctx.scope.LookupDynamicAnchor(dynAnchor); found != nil {
					anchorSchema = found
				}
			}
		}
		if !ctx.enterRef(anchorSchema, instance) {
			result.AddError(NewEvaluationError("$dynamicRef", "reference_cycle", "Reference cycle detected evaluating [[uri]]", map[string]any{
				"uri": s.DynamicRef,
			}))
			return result, evaluatedProps, evaluatedItems
		}
		dynResult, props, items := anchorSchema.evaluate(instance, ctx)
		ctx.exitRef()
		if dynResult != nil {
			result.AddDetail(dynResult)
			if !dynResult.IsValid() {
				result.AddError(NewEvaluationError("$dynamicRef", "dynamic_ref_mismatch", "Value does not match the dynamic reference schema"))
			}
		}
		mergeStringMaps(evaluatedProps, props)
		mergeIntMaps(evaluatedItems, items)
	}

	if s.ResolvedRecursiveRef != nil {
		anchorSchema := s.ResolvedRecursiveRef
		if s.ResolvedRecursiveRef.RecursiveAnchor != nil && *s.ResolvedRecursiveRef.RecursiveAnchor {
			if outermost := ctx.scope.outermostRecursiveAnchor(); outermost != nil {
				anchorSchema = outermost
			}
		}
		if !ctx.enterRef(anchorSchema, instance) {
			result.AddError(NewEvaluationError("$recursiveRef", "reference_cycle", "Reference cycle detected evaluating [[uri]]", map[string]any{
				"uri": s.RecursiveRef,
			}))
			return result, evaluatedProps, evaluatedItems
		}
		recResult, props, items := anchorSchema.evaluate(instance, ctx)
		ctx.exitRef()
		if recResult != nil {
			result.AddDetail(recResult)
			if !recResult.IsValid() {
				result.AddError(NewEvaluationError("$recursiveRef", "recursive_ref_mismatch", "Value does not match the recursive reference schema"))
			}
		}
		mergeStringMaps(evaluatedProps, props)
		mergeIntMaps(evaluatedItems, items)
	}

	if s.Type != nil {
		if err := evaluateType(s, instance); err != nil {
			result.AddError(err)
		}
	}
	if s.Enum != nil {
		if err := evaluateEnum(s, instance); err != nil {
			result.AddError(err)
		}
	}
	if s.Const != nil {
		if err := evaluateConst(s, instance); err != nil {
			result.AddError(err)
		}
	}

	if s.AllOf != nil {
		details, err := evaluateAllOf(s, instance, evaluatedProps, evaluatedItems, ctx)
		for _, d := range details {
			result.AddDetail(d)
		}
		if err != nil {
			result.AddError(err)
		}
	}
	if s.AnyOf != nil {
		details, err := evaluateAnyOf(s, instance, evaluatedProps, evaluatedItems, ctx)
		for _, d := range details {
			result.AddDetail(d)
		}
		if err != nil {
			result.AddError(err)
		}
	}
	if s.OneOf != nil {
		details, err := evaluateOneOf(s, instance, evaluatedProps, evaluatedItems, ctx)
		for _, d := range details {
			result.AddDetail(d)
		}
		if err != nil {
			result.AddError(err)
		}
	}
	if s.Not != nil {
		detail, err := evaluateNot(s, instance, ctx)
		if detail != nil {
			result.AddDetail(detail)
		}
		if err != nil {
			result.AddError(err)
		}
	}

	if s.If != nil || s.Then != nil || s.Else != nil {
		details, err := evaluateConditional(s, instance, evaluatedProps, evaluatedItems, ctx)
		for _, d := range details {
			result.AddDetail(d)
		}
		if err != nil {
			result.AddError(err)
		}
	}

	if len(s.PrefixItems) > 0 || s.Items != nil || s.Contains != nil || s.MaxContains != nil ||
		s.MinContains != nil || s.MaxItems != nil || s.MinItems != nil || s.UniqueItems != nil {
		details, errs, annotations := evaluateArray(s, instance, evaluatedProps, evaluatedItems, ctx)
		for _, d := range details {
			result.AddDetail(d)
		}
		for _, e := range errs {
			result.AddError(e)
		}
		for keyword, annotation := range annotations {
			result.AddAnnotation(keyword, annotation)
		}
	}

	if s.Contains != nil && draft == DraftNext {
		if object, ok := instance.(map[string]any); ok {
			annotation, err := evaluateContainsForObject(s, object, evaluatedProps, ctx)
			if annotation != nil {
				result.AddAnnotation("contains", annotation)
			}
			if err != nil {
				result.AddError(err)
			}
		}
	}

	if s.MultipleOf != nil || s.Maximum != nil || s.ExclusiveMaximum != nil || s.Minimum != nil || s.ExclusiveMinimum != nil {
		for _, e := range evaluateNumeric(s, instance) {
			result.AddError(e)
		}
	}

	if s.MaxLength != nil || s.MinLength != nil || s.Pattern != nil {
		for _, e := range evaluateString(s, instance) {
			result.AddError(e)
		}
	}

	if s.Format != nil && isActive(draft, vocab, "format") {
		if err := evaluateFormat(s, instance, ctx.opts.RequireFormatValidation); err != nil {
			result.AddError(err)
		}
	}

	if s.Properties != nil || s.PatternProperties != nil || s.AdditionalProperties != nil ||
		s.PropertyNames != nil || s.MaxProperties != nil || s.MinProperties != nil ||
		len(s.Required) > 0 || len(s.DependentRequired) > 0 {
		details, errs, annotations := evaluateObject(s, instance, evaluatedProps, evaluatedItems, ctx)
		for _, d := range details {
			result.AddDetail(d)
		}
		for _, e := range errs {
			result.AddError(e)
		}
		for keyword, annotation := range annotations {
			result.AddAnnotation(keyword, annotation)
		}
	}

	if s.DependentSchemas != nil {
		details, err := evaluateDependentSchemas(s, instance, evaluatedProps, evaluatedItems, ctx)
		for _, d := range details {
			result.AddDetail(d)
		}
		if err != nil {
			result.AddError(err)
		}
	}

	if s.UnevaluatedItems != nil {
		details, err := evaluateUnevaluatedItems(s, instance, evaluatedProps, evaluatedItems, ctx)
		for _, d := range details {
			result.AddDetail(d)
		}
		if err != nil {
			result.AddError(err)
		}
	}

	if s.UnevaluatedProperties != nil {
		details, err := evaluateUnevaluatedProperties(s, instance, evaluatedProps, evaluatedItems, ctx)
		for _, d := range details {
			result.AddDetail(d)
		}
		if err != nil {
			result.AddError(err)
		}
	}

	if s.ContentEncoding != nil || s.ContentMediaType != nil || s.ContentSchema != nil {
		detail, err := evaluateContent(s, instance, ctx)
		if detail != nil {
			result.AddDetail(detail)
		}
		if err != nil {
			result.AddError(err)
		}
	}

	if ctx.opts.ProcessCustomKeywords && s.Extra != nil {
		for _, e := range evaluateCustomKeywords(s, instance, ctx) {
			result.AddError(e)
		}
	}

	return result, evaluatedProps, evaluatedItems
}

func (s *Schema) evaluateBoolean(instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool) *EvaluationError {
	if s.Boolean == nil {
		return nil
	}
	if *s.Boolean {
		switch v := instance.(type) {
		case map[string]any:
			for key := range v {
				evaluatedProps[key] = true
			}
		case []any:
			for index := range v {
				evaluatedItems[index] = true
			}
		}
		return nil
	}
	return NewEvaluationError("schema", "false_schema_mismatch", "No value satisfies a schema of 'false'")
}

// isActive reports whether the named keyword applies under draft/vocab.
// It is a thin adapter over the Keyword Catalog (keyword.go) so dispatch
// stays centrally gated instead of hardcoding per-draft checks at each
// call site.
func isActive(draft Draft, vocab map[Vocabulary]bool, name string) bool {
	desc, ok := keywordCatalog[name]
	if !ok {
		return false
	}
	if !desc.ApplicableDrafts[draft] {
		return false
	}
	if desc.VocabularyID == "" || vocab == nil {
		return true
	}
	return vocab[desc.VocabularyID]
}
