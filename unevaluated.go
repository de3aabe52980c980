package jsonschema

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// evaluateUnevaluatedProperties implements "unevaluatedProperties": it
// applies only to object members no sibling/descendant applicator
// (properties, patternProperties, additionalProperties, allOf branches,
// ...) already marked evaluated, which is why this keyword runs last
// (keyword.go's priorityUnevaluated).
func evaluateUnevaluatedProperties(schema *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, *EvaluationError) {
	object, ok := instance.(map[string]any)
	if !ok {
		return nil, nil
	}

	var results []*EvaluationResult
	var invalid []string

	// visited in name order so repeat evaluations produce identical trees
	names := make([]string, 0, len(object))
	for propName := range object {
		names = append(names, propName)
	}
	slices.Sort(names)

	for _, propName := range names {
		if evaluatedProps[propName] {
			continue
		}
		result, _, _ := schema.UnevaluatedProperties.evaluate(object[propName], ctx)
		evaluatedProps[propName] = true
		if result == nil {
			continue
		}
		result.SetEvaluationPath("/unevaluatedProperties").
			SetSchemaLocation(schema.GetSchemaLocation("/unevaluatedProperties")).
			SetInstanceLocation(fmt.Sprintf("/%s", propName))
		results = append(results, result)
		if !result.IsValid() {
			invalid = append(invalid, propName)
		}
	}

	switch len(invalid) {
	case 0:
		return results, nil
	case 1:
		return results, NewEvaluationError("unevaluatedProperties", "unevaluated_property_mismatch", "Property [[property]] does not match the unevaluatedProperties schema", map[string]any{
			"property": "'" + invalid[0] + "'",
		})
	default:
		return results, NewEvaluationError("unevaluatedProperties", "unevaluated_properties_mismatch", "Properties [[properties]] do not match the unevaluatedProperties schema", map[string]any{
			"properties": quoteJoin(invalid),
		})
	}
}

// evaluateUnevaluatedItems implements "unevaluatedItems": applies to array
// indexes no prior prefixItems/items/contains pass marked evaluated.
func evaluateUnevaluatedItems(schema *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, *EvaluationError) {
	items, ok := instance.([]any)
	if !ok {
		return nil, nil
	}

	if schema.UnevaluatedItems.Boolean != nil {
		if *schema.UnevaluatedItems.Boolean {
			for i := range items {
				evaluatedItems[i] = true
			}
			return nil, nil
		}
		var unevaluated []string
		for i := range items {
			if !evaluatedItems[i] {
				unevaluated = append(unevaluated, strconv.Itoa(i))
			}
		}
		if len(unevaluated) > 0 {
			return nil, NewEvaluationError("unevaluatedItems", "unevaluated_items_not_allowed", "Unevaluated items are not allowed at indexes: [[indexes]]", map[string]any{
				"indexes": strings.Join(unevaluated, ", "),
			})
		}
		return nil, nil
	}

	var results []*EvaluationResult
	var invalid []string

	for i, item := range items {
		if evaluatedItems[i] {
			continue
		}
		result, _, childItems := schema.UnevaluatedItems.evaluate(item, ctx)
		if result != nil {
			result.SetEvaluationPath(fmt.Sprintf("/unevaluatedItems/%d", i)).
				SetSchemaLocation(schema.GetSchemaLocation(fmt.Sprintf("/unevaluatedItems/%d", i))).
				SetInstanceLocation(fmt.Sprintf("/%d", i))
			results = append(results, result)
			if result.IsValid() {
				evaluatedItems[i] = true
			} else {
				invalid = append(invalid, strconv.Itoa(i))
			}
		}
		for k, v := range childItems {
			evaluatedItems[k] = v
		}
	}

	switch len(invalid) {
	case 0:
		return results, nil
	case 1:
		return results, NewEvaluationError("unevaluatedItems", "unevaluated_item_mismatch", "Item at index [[index]] does not match the unevaluatedItems schema", map[string]any{
			"index": invalid[0],
		})
	default:
		return results, NewEvaluationError("unevaluatedItems", "unevaluated_items_mismatch", "Items at indexes [[indexes]] do not match the unevaluatedItems schema", map[string]any{
			"indexes": strings.Join(invalid, ", "),
		})
	}
}
