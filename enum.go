package jsonschema

// evaluateEnum implements the "enum" keyword using structural equivalence
// (value.go's Equivalent) rather than Go's reflect.DeepEqual, so e.g. the
// enum value 1 matches an instance of 1.0 and object member order never
// matters.
func evaluateEnum(schema *Schema, instance any) *EvaluationError {
	if len(schema.Enum) == 0 {
		return nil
	}
	for _, candidate := range schema.Enum {
		if Equivalent(instance, candidate) {
			return nil
		}
	}
	return NewEvaluationError("enum", "value_not_in_enum", "Value should match one of the values specified by the enum")
}
