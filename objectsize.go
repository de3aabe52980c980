package jsonschema

import "github.com/goccy/go-json"

func evaluateRequired(schema *Schema, object map[string]any) *EvaluationError {
	var missing []string
	for _, propName := range schema.Required {
		if _, exists := object[propName]; !exists {
			missing = append(missing, propName)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if len(missing) == 1 {
		return NewEvaluationError("required", "missing_required_property", "Required property [[property]] is missing", map[string]any{
			"property": "'" + missing[0] + "'",
		})
	}
	return NewEvaluationError("required", "missing_required_properties", "Required properties [[properties]] are missing", map[string]any{
		"properties": quoteJoin(missing),
	})
}

func evaluateMaxProperties(schema *Schema, object map[string]any) *EvaluationError {
	if float64(len(object)) > *schema.MaxProperties {
		return NewEvaluationError("maxProperties", "too_many_properties", "Value should have at most [[max_properties]] properties", map[string]any{
			"max_properties": *schema.MaxProperties,
		})
	}
	return nil
}

func evaluateMinProperties(schema *Schema, object map[string]any) *EvaluationError {
	if float64(len(object)) < *schema.MinProperties {
		return NewEvaluationError("minProperties", "too_few_properties", "Value should have at least [[min_properties]] properties", map[string]any{
			"min_properties": *schema.MinProperties,
		})
	}
	return nil
}

// evaluateDependentRequired implements "dependentRequired": when a key
// property is present, every property listed for it must also be present.
func evaluateDependentRequired(schema *Schema, object map[string]any) *EvaluationError {
	missingByKey := make(map[string][]string)

	for key, requiredProps := range schema.DependentRequired {
		if _, exists := object[key]; !exists {
			continue
		}
		var missing []string
		for _, reqProp := range requiredProps {
			if _, exists := object[reqProp]; !exists {
				missing = append(missing, reqProp)
			}
		}
		if len(missing) > 0 {
			missingByKey[key] = missing
		}
	}

	if len(missingByKey) == 0 {
		return nil
	}
	detail, _ := json.Marshal(missingByKey)
	return NewEvaluationError("dependentRequired", "dependent_property_required", "Some required property dependencies are missing: [[missing_properties]]", map[string]any{
		"missing_properties": string(detail),
	})
}
