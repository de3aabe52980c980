package jsonschema

import (
	"fmt"
	"slices"
	"strings"
)

// propertyMismatchError picks the singular or plural wording for a list of
// failing property names, single-quoting each name, the convention every
// property-keyed keyword below shares.
func propertyMismatchError(keyword, singularCode, singularTemplate, pluralCode, pluralTemplate string, names []string) *EvaluationError {
	switch len(names) {
	case 0:
		return nil
	case 1:
		return NewEvaluationError(keyword, singularCode, singularTemplate, map[string]any{"property": "'" + names[0] + "'"})
	default:
		sorted := append([]string(nil), names...)
		slices.Sort(sorted)
		return NewEvaluationError(keyword, pluralCode, pluralTemplate, map[string]any{"properties": quoteJoin(sorted)})
	}
}

// candidate is one (name, value, subschema) triplet a property keyword
// checks the instance value against.
type candidate struct {
	name   string
	value  any
	schema *Schema
}

// checkCandidates evaluates each candidate against its paired subschema,
// tagging the result under pathPrefix/name, marking the name evaluated
// (regardless of pass/fail, since "evaluated" means "inspected", not
// "accepted"), and collecting the names that failed. Candidates are
// visited in name order so two evaluations of the same schema/instance
// pair produce identical result trees.
func checkCandidates(candidates []candidate, pathPrefix string, schema *Schema, evaluatedProps map[string]bool, ctx *evalContext) ([]*EvaluationResult, []string) {
	var results []*EvaluationResult
	var failed []string
	seen := make(map[string]bool, len(candidates))

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return strings.Compare(a.name, b.name)
	})
	for _, c := range candidates {
		evaluatedProps[c.name] = true
		result, _, _ := c.schema.evaluate(c.value, ctx)
		if result == nil {
			continue
		}
		path := fmt.Sprintf("%s/%s", pathPrefix, c.name)
		result.SetEvaluationPath(path).
			SetSchemaLocation(schema.GetSchemaLocation(path)).
			SetInstanceLocation("/" + c.name)
		results = append(results, result)
		if !result.IsValid() && !seen[c.name] {
			seen[c.name] = true
			failed = append(failed, c.name)
		}
	}
	return results, failed
}

// candidateNames returns each distinct candidate name once, sorted — the
// annotation value every property keyword records (the set of names it
// evaluated).
func candidateNames(candidates []candidate) []string {
	seen := make(map[string]bool, len(candidates))
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !seen[c.name] {
			seen[c.name] = true
			names = append(names, c.name)
		}
	}
	slices.Sort(names)
	return names
}

func evaluateProperties(schema *Schema, object map[string]any, evaluatedProps map[string]bool, ctx *evalContext) ([]*EvaluationResult, []string, *EvaluationError) {
	var candidates []candidate
	for propName, propSchema := range *schema.Properties {
		evaluatedProps[propName] = true
		value, exists := object[propName]
		if !exists {
			continue
		}
		candidates = append(candidates, candidate{propName, value, propSchema})
	}

	results, failed := checkCandidates(candidates, "/properties", schema, evaluatedProps, ctx)
	return results, candidateNames(candidates), propertyMismatchError("properties",
		"property_mismatch", "Property [[property]] does not match the schema",
		"properties_mismatch", "Properties [[properties]] do not match their schemas",
		failed)
}

func evaluatePatternProperties(schema *Schema, object map[string]any, evaluatedProps map[string]bool, ctx *evalContext) ([]*EvaluationResult, []string, *EvaluationError) {
	var candidates []candidate
	for patternKey, patternSchema := range *schema.PatternProperties {
		regex, ok := schema.compiledPatProps[patternKey]
		if !ok {
			continue
		}
		for propName, value := range object {
			if regex.MatchString(propName) {
				candidates = append(candidates, candidate{propName, value, patternSchema})
			}
		}
	}

	results, failed := checkCandidates(candidates, "/patternProperties", schema, evaluatedProps, ctx)
	return results, candidateNames(candidates), propertyMismatchError("patternProperties",
		"pattern_property_mismatch", "Property [[property]] does not match the pattern schema",
		"pattern_properties_mismatch", "Properties [[properties]] do not match their pattern schemas",
		failed)
}

// uncoveredNames returns the object's property names not already matched by
// "properties" or "patternProperties" (additionalProperties only ever looks
// at the leftovers).
func uncoveredNames(schema *Schema, object map[string]any) []string {
	covered := make(map[string]bool, len(object))
	if schema.Properties != nil {
		for propName := range *schema.Properties {
			covered[propName] = true
		}
	}
	for _, regex := range schema.compiledPatProps {
		for propName := range object {
			if regex.MatchString(propName) {
				covered[propName] = true
			}
		}
	}

	var names []string
	for propName := range object {
		if !covered[propName] {
			names = append(names, propName)
		}
	}
	return names
}

func evaluateAdditionalProperties(schema *Schema, object map[string]any, evaluatedProps map[string]bool, ctx *evalContext) ([]*EvaluationResult, []string, *EvaluationError) {
	var candidates []candidate
	for _, propName := range uncoveredNames(schema, object) {
		candidates = append(candidates, candidate{propName, object[propName], schema.AdditionalProperties})
	}

	results, failed := checkCandidates(candidates, "/additionalProperties", schema, evaluatedProps, ctx)
	return results, candidateNames(candidates), propertyMismatchError("additionalProperties",
		"additional_property_mismatch", "Additional property [[property]] does not match the schema",
		"additional_properties_mismatch", "Additional properties [[properties]] do not match the schema",
		failed)
}

func evaluatePropertyNames(schema *Schema, object map[string]any, ctx *evalContext) ([]*EvaluationResult, *EvaluationError) {
	discard := make(map[string]bool, len(object))
	var candidates []candidate
	for propName := range object {
		candidates = append(candidates, candidate{propName, propName, schema.PropertyNames})
	}

	results, failed := checkCandidates(candidates, "/propertyNames", schema, discard, ctx)
	return results, propertyMismatchError("propertyNames",
		"property_name_mismatch", "Property name [[property]] does not match the schema",
		"property_names_mismatch", "Property names [[properties]] do not match the schema",
		failed)
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}

// evaluateObject groups every object-applicator and object-sizing keyword.
// The returned annotations map carries, per property keyword, the set of
// names it evaluated, which is how additionalProperties' and
// unevaluatedProperties' coverage becomes observable on the result tree.
func evaluateObject(schema *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, []*EvaluationError, map[string]any) {
	object, ok := instance.(map[string]any)
	if !ok {
		return nil, nil, nil
	}

	var results []*EvaluationResult
	var errs []*EvaluationError
	var annotations map[string]any
	annotate := func(keyword string, names []string) {
		if annotations == nil {
			annotations = make(map[string]any)
		}
		annotations[keyword] = names
	}

	if schema.Properties != nil {
		propResults, names, err := evaluateProperties(schema, object, evaluatedProps, ctx)
		results = append(results, propResults...)
		annotate("properties", names)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if schema.PatternProperties != nil {
		patResults, names, err := evaluatePatternProperties(schema, object, evaluatedProps, ctx)
		results = append(results, patResults...)
		annotate("patternProperties", names)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if schema.AdditionalProperties != nil {
		addResults, names, err := evaluateAdditionalProperties(schema, object, evaluatedProps, ctx)
		results = append(results, addResults...)
		annotate("additionalProperties", names)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if schema.PropertyNames != nil {
		nameResults, err := evaluatePropertyNames(schema, object, ctx)
		results = append(results, nameResults...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if schema.MaxProperties != nil {
		if err := evaluateMaxProperties(schema, object); err != nil {
			errs = append(errs, err)
		}
	}
	if schema.MinProperties != nil {
		if err := evaluateMinProperties(schema, object); err != nil {
			errs = append(errs, err)
		}
	}
	if len(schema.Required) > 0 {
		if err := evaluateRequired(schema, object); err != nil {
			errs = append(errs, err)
		}
	}
	if len(schema.DependentRequired) > 0 {
		if err := evaluateDependentRequired(schema, object); err != nil {
			errs = append(errs, err)
		}
	}
	_ = evaluatedItems

	return results, errs, annotations
}
