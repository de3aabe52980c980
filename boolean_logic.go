package jsonschema

import (
	"fmt"
	"strconv"
	"strings"
)

// branchOutcome is one subschema's evaluation against the shared instance,
// used by every applicator in this file (allOf/anyOf/oneOf) so the fan-out
// and result-path tagging lives in one place instead of being repeated per
// keyword.
type branchOutcome struct {
	index int
	result *EvaluationResult
	props  map[string]bool
	items  map[int]bool
}

func (b branchOutcome) valid() bool {
	return b.result == nil || b.result.IsValid()
}

// evaluateBranches runs schema.evaluate(instance, ctx) for every non-nil
// member of branches, tagging each returned result's evaluation path,
// schema location, and instance location under keywordName/index.
func evaluateBranches(branches []*Schema, keywordName string, schema *Schema, instance any, ctx *evalContext) []branchOutcome {
	outcomes := make([]branchOutcome, 0, len(branches))
	for i, branch := range branches {
		if branch == nil {
			continue
		}
		result, props, items := branch.evaluate(instance, ctx)
		if result != nil {
			path := fmt.Sprintf("/%s/%d", keywordName, i)
			result.SetEvaluationPath(path).
				SetSchemaLocation(schema.GetSchemaLocation(path)).
				SetInstanceLocation("")
		}
		outcomes = append(outcomes, branchOutcome{index: i, result: result, props: props, items: items})
	}
	return outcomes
}

// branchSkipsAnnotations reports whether a literal `true` subschema should
// be excluded from annotation merging (it trivially evaluates every
// property/item without actually inspecting any of them).
func branchSkipsAnnotations(branch *Schema) bool {
	return branch != nil && branch.Boolean != nil && *branch.Boolean
}

func evaluateAllOf(schema *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, *EvaluationError) {
	outcomes := evaluateBranches(schema.AllOf, "allOf", schema, instance, ctx)

	results := make([]*EvaluationResult, 0, len(outcomes))
	var failedAt []string
	for _, o := range outcomes {
		if !branchSkipsAnnotations(schema.AllOf[o.index]) {
			mergeStringMaps(evaluatedProps, o.props)
			mergeIntMaps(evaluatedItems, o.items)
		}
		if o.result == nil {
			continue
		}
		results = append(results, o.result)
		if !o.valid() {
			failedAt = append(failedAt, strconv.Itoa(o.index))
		}
	}

	if len(failedAt) == 0 {
		return results, nil
	}
	return results, NewEvaluationError("allOf", "all_of_item_mismatch",
		"Value does not match the allOf schema at index [[indexes]]",
		map[string]any{"indexes": strings.Join(failedAt, ", ")})
}

func evaluateAnyOf(schema *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, *EvaluationError) {
	outcomes := evaluateBranches(schema.AnyOf, "anyOf", schema, instance, ctx)

	results := make([]*EvaluationResult, 0, len(outcomes))
	matched := 0
	for _, o := range outcomes {
		if o.result == nil {
			continue
		}
		results = append(results, o.result)
		if !o.valid() {
			continue
		}
		matched++
		if !branchSkipsAnnotations(schema.AnyOf[o.index]) {
			mergeStringMaps(evaluatedProps, o.props)
			mergeIntMaps(evaluatedItems, o.items)
		}
	}

	if matched > 0 {
		return results, nil
	}
	return results, NewEvaluationError("anyOf", "any_of_item_mismatch", "Value does not match any of the anyOf schemas")
}

func evaluateOneOf(schema *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, *EvaluationError) {
	outcomes := evaluateBranches(schema.OneOf, "oneOf", schema, instance, ctx)

	results := make([]*EvaluationResult, 0, len(outcomes))
	var winners []branchOutcome
	for _, o := range outcomes {
		if o.result == nil {
			continue
		}
		results = append(results, o.result)
		if o.valid() {
			winners = append(winners, o)
		}
	}

	switch len(winners) {
	case 0:
		return results, NewEvaluationError("oneOf", "one_of_item_mismatch", "Value does not match any of the oneOf schemas")
	case 1:
		mergeStringMaps(evaluatedProps, winners[0].props)
		mergeIntMaps(evaluatedItems, winners[0].items)
		return results, nil
	default:
		indexes := make([]string, len(winners))
		for i, w := range winners {
			indexes[i] = strconv.Itoa(w.index)
		}
		return results, NewEvaluationError("oneOf", "one_of_multiple_matches",
			"Value should match exactly one schema but matches indexes [[matches]]",
			map[string]any{"matches": strings.Join(indexes, ", ")})
	}
}

func evaluateNot(schema *Schema, instance any, ctx *evalContext) (*EvaluationResult, *EvaluationError) {
	if schema.Not == nil {
		return nil, nil
	}

	result, _, _ := schema.Not.evaluate(instance, ctx)
	if result == nil {
		return nil, nil
	}
	result.SetEvaluationPath("/not").
		SetSchemaLocation(schema.GetSchemaLocation("/not")).
		SetInstanceLocation("")

	if !result.IsValid() {
		return result, nil
	}
	return result, NewEvaluationError("not", "not_schema_mismatch", "Value should not match the not schema")
}
