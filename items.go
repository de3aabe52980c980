package jsonschema

import (
	"fmt"
	"strconv"
	"strings"
)

// indexMismatchError reports which array indexes failed a by-index
// subschema, choosing the singular or plural message/code the way every
// index-keyed array keyword in this package does.
func indexMismatchError(keyword, singularCode, singularTemplate, pluralCode, pluralTemplate string, badIndexes []string) *EvaluationError {
	switch len(badIndexes) {
	case 0:
		return nil
	case 1:
		return NewEvaluationError(keyword, singularCode, singularTemplate, map[string]any{"index": badIndexes[0]})
	default:
		return NewEvaluationError(keyword, pluralCode, pluralTemplate, map[string]any{"indexes": strings.Join(badIndexes, ", ")})
	}
}

// evaluatePrefixItems returns its per-index results, its annotation (true
// when the tuple covered the whole array, else the highest index it
// applied to), and any mismatch error.
func evaluatePrefixItems(schema *Schema, array []any, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, any, *EvaluationError) {
	limit := len(array)
	if len(schema.PrefixItems) < limit {
		limit = len(schema.PrefixItems)
	}

	var results []*EvaluationResult
	var badIndexes []string
	for i := 0; i < limit; i++ {
		path := fmt.Sprintf("/prefixItems/%d", i)
		result, _, _ := schema.PrefixItems[i].evaluate(array[i], ctx)
		if result == nil {
			continue
		}
		result.SetEvaluationPath(path).
			SetSchemaLocation(schema.GetSchemaLocation(path)).
			SetInstanceLocation(fmt.Sprintf("/%d", i))
		results = append(results, result)
		if result.IsValid() {
			evaluatedItems[i] = true
			continue
		}
		badIndexes = append(badIndexes, strconv.Itoa(i))
	}

	var annotation any
	if limit == len(array) {
		annotation = true
	} else if limit > 0 {
		annotation = limit - 1
	}

	return results, annotation, indexMismatchError("prefixItems",
		"prefix_item_mismatch", "Item at index [[index]] does not match the prefixItems schema",
		"prefix_items_mismatch", "Items at index [[indexes]] do not match the prefixItems schemas",
		badIndexes)
}

// evaluateItems returns its failing per-index results, its annotation
// (true when it applied to any tail element), and any mismatch error.
func evaluateItems(schema *Schema, array []any, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, any, *EvaluationError) {
	var results []*EvaluationResult
	var badIndexes []string
	applied := false
	for i := len(schema.PrefixItems); i < len(array); i++ {
		applied = true
		path := fmt.Sprintf("/items/%d", i)
		result, _, _ := schema.Items.evaluate(array[i], ctx)
		if result == nil {
			continue
		}
		result.SetEvaluationPath(path).
			SetSchemaLocation(schema.GetSchemaLocation(path)).
			SetInstanceLocation(fmt.Sprintf("/%d", i))
		if result.IsValid() {
			evaluatedItems[i] = true
			continue
		}
		results = append(results, result)
		badIndexes = append(badIndexes, strconv.Itoa(i))
	}

	var annotation any
	if applied {
		annotation = true
	}

	return results, annotation, indexMismatchError("items",
		"item_mismatch", "Item at index [[index]] does not match the schema",
		"items_mismatch", "Items at index [[indexes]] do not match the schema",
		badIndexes)
}

// arrayStep is one optional stage of array evaluation, run only when its
// trigger condition holds; collecting the stages as data lets
// evaluateArray read as a pipeline instead of a wall of parallel if-blocks.
// Each stage names the keyword its annotation is recorded under.
type arrayStep struct {
	keyword string
	applies bool
	run     func() ([]*EvaluationResult, any, *EvaluationError)
}

// evaluateArray groups every array-applicator and array-sizing keyword.
// PrefixItems + Items always uses the 2020-12 tuple-then-tail shape: the
// pre-2020-12 array-form "items" + "additionalItems" pair is folded into
// the same two fields at parse time (schema.go's foldDraftVariants), so
// this dispatch never has to branch on draft itself.
func evaluateArray(schema *Schema, instance any, _ map[string]bool, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, []*EvaluationError, map[string]any) {
	array, ok := instance.([]any)
	if !ok {
		return nil, nil, nil
	}

	steps := []arrayStep{
		{"prefixItems", len(schema.PrefixItems) > 0, func() ([]*EvaluationResult, any, *EvaluationError) {
			return evaluatePrefixItems(schema, array, evaluatedItems, ctx)
		}},
		{"items", schema.Items != nil, func() ([]*EvaluationResult, any, *EvaluationError) {
			return evaluateItems(schema, array, evaluatedItems, ctx)
		}},
		{"contains", schema.Contains != nil || schema.MinContains != nil || schema.MaxContains != nil, func() ([]*EvaluationResult, any, *EvaluationError) {
			annotation, err := evaluateContains(schema, array, evaluatedItems, ctx)
			return nil, annotation, err
		}},
	}

	var results []*EvaluationResult
	var errs []*EvaluationError
	var annotations map[string]any
	for _, step := range steps {
		if !step.applies {
			continue
		}
		stepResults, annotation, stepErr := step.run()
		results = append(results, stepResults...)
		if annotation != nil {
			if annotations == nil {
				annotations = make(map[string]any)
			}
			annotations[step.keyword] = annotation
		}
		if stepErr != nil {
			errs = append(errs, stepErr)
		}
	}

	if schema.MaxItems != nil {
		if err := evaluateMaxItems(schema, array); err != nil {
			errs = append(errs, err)
		}
	}
	if schema.MinItems != nil {
		if err := evaluateMinItems(schema, array); err != nil {
			errs = append(errs, err)
		}
	}
	if schema.UniqueItems != nil && *schema.UniqueItems {
		if err := evaluateUniqueItems(schema, array); err != nil {
			errs = append(errs, err)
		}
	}

	return results, errs, annotations
}
