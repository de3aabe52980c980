package jsonschema

import "strings"

// typeMatches reports whether instanceType satisfies a single declared
// "type" entry: an exact match, or "number" also accepting integer-kind
// instances, since every integer is a number.
func typeMatches(declared, instanceType string) bool {
	if declared == instanceType {
		return true
	}
	return declared == "number" && instanceType == "integer"
}

// evaluateType implements the "type" keyword: instance must satisfy at
// least one of the declared primitive type names.
func evaluateType(schema *Schema, instance any) *EvaluationError {
	if len(schema.Type) == 0 {
		return nil
	}

	instanceType := getDataType(instance)
	matched := false
	for _, declared := range schema.Type {
		if typeMatches(declared, instanceType) {
			matched = true
			break
		}
	}
	if matched {
		return nil
	}

	return NewEvaluationError("type", "type_mismatch", "Value is [[received]] but should be [[expected]]", map[string]any{
		"expected": strings.Join(schema.Type, ", "),
		"received": instanceType,
	})
}
