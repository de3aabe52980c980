package jsonschema

// evaluateAndTag runs a single applicator branch and, if it produced a
// result at all, stamps it with its evaluation path/schema location/
// instance location the way every applicator keyword in this package does.
func evaluateAndTag(branch *Schema, path string, schema *Schema, instance any, ctx *evalContext) (*EvaluationResult, map[string]bool, map[int]bool) {
	if branch == nil {
		return nil, nil, nil
	}
	result, props, items := branch.evaluate(instance, ctx)
	if result == nil {
		return nil, props, items
	}
	result.SetEvaluationPath(path).
		SetSchemaLocation(schema.GetSchemaLocation(path)).
		SetInstanceLocation("")
	return result, props, items
}

// evaluateConditional implements "if"/"then"/"else": "if" never fails the
// schema on its own, it only selects which of "then"/"else" (if either is
// present) gets applied and whose failure actually counts. No "if" means
// both siblings are inert, since nothing chose a branch to enforce.
func evaluateConditional(schema *Schema, instance any, evaluatedProps map[string]bool, evaluatedItems map[int]bool, ctx *evalContext) ([]*EvaluationResult, *EvaluationError) {
	if schema.If == nil {
		return nil, nil
	}

	ifResult, ifProps, ifItems := evaluateAndTag(schema.If, "/if", schema, instance, ctx)
	if ifResult == nil {
		return nil, nil
	}
	results := []*EvaluationResult{ifResult}

	branch, path, code, message := schema.Then, "/then", "if_then_mismatch",
		"Value meets the 'if' condition but does not match the 'then' schema"
	if !ifResult.IsValid() {
		branch, path, code, message = schema.Else, "/else", "if_else_mismatch",
			"Value fails the 'if' condition and does not match the 'else' schema"
	} else {
		mergeStringMaps(evaluatedProps, ifProps)
		mergeIntMaps(evaluatedItems, ifItems)
	}

	branchResult, branchProps, branchItems := evaluateAndTag(branch, path, schema, instance, ctx)
	if branchResult == nil {
		return results, nil
	}
	results = append(results, branchResult)

	if !branchResult.IsValid() {
		return results, NewEvaluationError(path[1:], code, message)
	}
	mergeStringMaps(evaluatedProps, branchProps)
	mergeIntMaps(evaluatedItems, branchItems)
	return results, nil
}
