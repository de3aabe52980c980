package jsonschema

// evaluateFormat implements the "format" keyword. Format is an annotation by
// default; it only becomes an assertion when the compiler's AssertFormat is
// set or the evaluation options request it for this call, matching the
// format-assertion vocabulary's opt-in behavior across drafts.
func evaluateFormat(schema *Schema, value any, assertFormat bool) *EvaluationError {
	if schema.Format == nil {
		return nil
	}

	formatName := *schema.Format
	var formatDef *FormatDef
	var validator func(any) bool

	if schema.compiler != nil {
		schema.compiler.customFormatsRW.RLock()
		formatDef = schema.compiler.customFormats[formatName]
		schema.compiler.customFormatsRW.RUnlock()
		assertFormat = assertFormat || schema.compiler.AssertFormat
	}

	if formatDef != nil {
		if formatDef.Type != "" {
			if !matchesFormatType(getDataType(value), formatDef.Type) {
				return nil
			}
		}
		validator = formatDef.Validate
	} else if global, ok := formatRegistry[formatName]; ok {
		validator = global
	}

	// unknown formats are accepted as valid, even under assertion
	if validator == nil {
		return nil
	}
	if !validator(value) && assertFormat {
		return NewEvaluationError("format", "format_mismatch", "Value does not match format [[format]]", map[string]any{
			"format": formatName,
		})
	}
	return nil
}

func matchesFormatType(valueType, requiredType string) bool {
	if requiredType == "" {
		return true
	}
	if requiredType == "number" && valueType == "integer" {
		return true
	}
	return valueType == requiredType
}
