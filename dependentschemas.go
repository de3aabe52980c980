package jsonschema

import (
	"fmt"
	"slices"
)

// evaluateDependentSchemas implements "dependentSchemas": when a named
// property is present, the whole instance must additionally validate
// against the schema registered for it.
func evaluateDependentSchemas(schema *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, *EvaluationError) {
	object, ok := instance.(map[string]any)
	if !ok {
		return nil, nil
	}

	var results []*EvaluationResult
	var invalid []string

	// visited in name order so repeat evaluations produce identical trees
	names := make([]string, 0, len(schema.DependentSchemas))
	for propName := range schema.DependentSchemas {
		names = append(names, propName)
	}
	slices.Sort(names)

	for _, propName := range names {
		depSchema := schema.DependentSchemas[propName]
		if _, exists := object[propName]; !exists || depSchema == nil {
			continue
		}
		result, props, items := depSchema.evaluate(object, ctx)
		if result != nil {
			result.SetEvaluationPath(fmt.Sprintf("/dependentSchemas/%s", propName)).
				SetSchemaLocation(schema.GetSchemaLocation(fmt.Sprintf("/dependentSchemas/%s", propName))).
				SetInstanceLocation("")
			results = append(results, result)
		}
		if result != nil && result.IsValid() {
			mergeStringMaps(evaluatedProps, props)
			mergeIntMaps(evaluatedItems, items)
		} else {
			invalid = append(invalid, propName)
		}
	}

	switch len(invalid) {
	case 0:
		return results, nil
	case 1:
		return results, NewEvaluationError("dependentSchemas", "dependent_schema_mismatch", "Property [[property]] does not meet the schema requirements dependent on it", map[string]any{
			"property": "'" + invalid[0] + "'",
		})
	default:
		return results, NewEvaluationError("dependentSchemas", "dependent_schemas_mismatch", "Properties [[properties]] do not meet the schema requirements dependent on them", map[string]any{
			"properties": quoteJoin(invalid),
		})
	}
}
