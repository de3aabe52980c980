package jsonschema

// evaluateConst implements the "const" keyword: instance must be
// structurally equivalent to the declared value, including an explicit
// JSON null.
func evaluateConst(schema *Schema, instance any) *EvaluationError {
	if schema.Const == nil || !schema.Const.IsSet {
		return nil
	}
	if Equivalent(instance, schema.Const.Value) {
		return nil
	}
	return NewEvaluationError("const", "const_mismatch", "Value does not match the constant value")
}
