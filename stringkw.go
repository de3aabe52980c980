package jsonschema

import (
	"fmt"
	"unicode/utf8"
)

// evaluateString groups every string-instance keyword, short-circuiting
// when the instance isn't a string.
func evaluateString(schema *Schema, instance any) []*EvaluationError {
	value, ok := instance.(string)
	if !ok {
		return nil
	}

	var errs []*EvaluationError
	if schema.MaxLength != nil {
		if err := evaluateMaxLength(schema, value); err != nil {
			errs = append(errs, err)
		}
	}
	if schema.MinLength != nil {
		if err := evaluateMinLength(schema, value); err != nil {
			errs = append(errs, err)
		}
	}
	if schema.Pattern != nil {
		if err := evaluatePattern(schema, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func evaluateMaxLength(schema *Schema, value string) *EvaluationError {
	length := utf8.RuneCountInString(value)
	if length > int(*schema.MaxLength) {
		return NewEvaluationError("maxLength", "string_too_long", "Value should be at most [[max_length]] characters", map[string]any{
			"max_length": fmt.Sprintf("%.0f", *schema.MaxLength),
			"length":     length,
		})
	}
	return nil
}

func evaluateMinLength(schema *Schema, value string) *EvaluationError {
	length := utf8.RuneCountInString(value)
	if length < int(*schema.MinLength) {
		return NewEvaluationError("minLength", "string_too_short", "Value should be at least [[min_length]] characters", map[string]any{
			"min_length": fmt.Sprintf("%.0f", *schema.MinLength),
			"length":     length,
		})
	}
	return nil
}

func evaluatePattern(schema *Schema, instance string) *EvaluationError {
	if schema.compiledPattern == nil {
		return NewEvaluationError("pattern", "invalid_pattern", "Invalid regular expression pattern [[pattern]]", map[string]any{
			"pattern": *schema.Pattern,
		})
	}
	if !schema.compiledPattern.MatchString(instance) {
		return NewEvaluationError("pattern", "pattern_mismatch", "Value does not match the required pattern [[pattern]]", map[string]any{
			"pattern": *schema.Pattern,
			"value":   instance,
		})
	}
	return nil
}
