package jsonschema

import (
	"fmt"
	"slices"
)

// matchingIndexes runs the "contains" subschema against every array
// element, marking each index that validates as evaluated (so
// "unevaluatedItems" can see it) and returning the matching indexes in
// order. The schema-location is resolved against the parent schema (the
// one carrying the "contains" keyword), not the Contains subschema itself,
// since that's the resource whose scope "/contains" is relative to.
func matchingIndexes(schema *Schema, array []any, evaluatedItems map[int]bool, ctx *evalContext) []int {
	matches := []int{}
	for i, item := range array {
		result, _, _ := schema.Contains.evaluate(item, ctx)
		if result == nil {
			continue
		}
		result.SetEvaluationPath("/contains").
			SetSchemaLocation(schema.GetSchemaLocation("/contains")).
			SetInstanceLocation(fmt.Sprintf("/%d", i))
		if !result.IsValid() {
			continue
		}
		matches = append(matches, i)
		evaluatedItems[i] = true
	}
	return matches
}

// boundsError checks a match count against the declared minContains
// (default 1) and maxContains limits, returning the first violated bound.
func boundsError(schema *Schema, matches int) *EvaluationError {
	lowerBound := 1
	if schema.MinContains != nil {
		lowerBound = int(*schema.MinContains)
	}
	belowBound := matches < lowerBound && !(lowerBound == 0 && matches == 0)
	if belowBound {
		return NewEvaluationError("minContains", "contains_too_few_items",
			"Value should contain at least [[min_contains]] matching items",
			map[string]any{"min_contains": lowerBound, "count": matches})
	}

	if schema.MaxContains != nil && matches > int(*schema.MaxContains) {
		return NewEvaluationError("maxContains", "contains_too_many_items",
			"Value should contain no more than [[max_contains]] matching items",
			map[string]any{"max_contains": *schema.MaxContains, "count": matches})
	}
	return nil
}

// evaluateContains implements "contains"/"minContains"/"maxContains": the
// number of array elements validating against "contains" (or, with no
// "contains" present, the full array length) must fall within
// [minContains, maxContains]. The second return value is the "contains"
// annotation: the list of matching indexes.
func evaluateContains(schema *Schema, array []any, evaluatedItems map[int]bool, ctx *evalContext) (any, *EvaluationError) {
	if schema.Contains == nil {
		return nil, boundsError(schema, len(array))
	}
	matched := matchingIndexes(schema, array, evaluatedItems, ctx)
	return matched, boundsError(schema, len(matched))
}

// evaluateContainsForObject applies "contains" to an object's property
// values, the draft-next extension of the keyword beyond arrays. Matching
// properties are marked evaluated, and the annotation is their sorted
// names.
func evaluateContainsForObject(schema *Schema, object map[string]any, evaluatedProps map[string]bool, ctx *evalContext) (any, *EvaluationError) {
	names := make([]string, 0, len(object))
	for name := range object {
		names = append(names, name)
	}
	slices.Sort(names)

	matched := []string{}
	for _, name := range names {
		result, _, _ := schema.Contains.evaluate(object[name], ctx)
		if result == nil {
			continue
		}
		result.SetEvaluationPath("/contains").
			SetSchemaLocation(schema.GetSchemaLocation("/contains")).
			SetInstanceLocation("/" + name)
		if !result.IsValid() {
			continue
		}
		matched = append(matched, name)
		evaluatedProps[name] = true
	}
	return matched, boundsError(schema, len(matched))
}
