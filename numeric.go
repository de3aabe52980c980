package jsonschema

// numericBound describes one of the four comparison keywords
// (minimum/maximum/exclusiveMinimum/exclusiveMaximum) as data: a limit
// value, the comparison that violates it, and the error it produces on
// violation. Driving all four off one table means adding a fifth bound
// keyword would mean adding a row, not a fifth near-identical function.
type numericBound struct {
	limit     *Rat
	violation func(cmp int) bool
	keyword   string
	code      string
	template  string
	paramName string
}

func numericBounds(schema *Schema) []numericBound {
	return []numericBound{
		{schema.Maximum, func(cmp int) bool { return cmp > 0 }, "maximum", "value_above_maximum",
			"[[value]] should be at most [[maximum]]", "maximum"},
		{schema.ExclusiveMaximum, func(cmp int) bool { return cmp >= 0 }, "exclusiveMaximum", "exclusive_maximum_mismatch",
			"[[value]] should be less than [[exclusive_maximum]]", "exclusive_maximum"},
		{schema.Minimum, func(cmp int) bool { return cmp < 0 }, "minimum", "value_below_minimum",
			"[[value]] should be at least [[minimum]]", "minimum"},
		{schema.ExclusiveMinimum, func(cmp int) bool { return cmp <= 0 }, "exclusiveMinimum", "exclusive_minimum_mismatch",
			"[[value]] should be greater than [[exclusive_minimum]]", "exclusive_minimum"},
	}
}

func (b numericBound) evaluate(value *Rat) *EvaluationError {
	if b.limit == nil || !b.violation(value.Cmp(b.limit.Rat)) {
		return nil
	}
	return NewEvaluationError(b.keyword, b.code, b.template, map[string]any{
		"value":     FormatRat(value),
		b.paramName: FormatRat(b.limit),
	})
}

func evaluateMultipleOf(schema *Schema, value *Rat) *EvaluationError {
	divisor := schema.MultipleOf
	if divisor.Sign() <= 0 {
		return NewEvaluationError("multipleOf", "invalid_multiple_of", "multipleOf [[divisor]] should be greater than 0", map[string]any{
			"divisor": FormatRat(divisor),
		})
	}
	if IsMultipleOf(value, divisor) {
		return nil
	}
	return NewEvaluationError("multipleOf", "not_multiple_of", "[[value]] should be a multiple of [[divisor]]", map[string]any{
		"divisor": FormatRat(divisor),
		"value":   FormatRat(value),
	})
}

// evaluateNumeric groups every numeric-instance keyword (minimum, maximum,
// exclusiveMinimum, exclusiveMaximum, multipleOf), short-circuiting entirely
// when the instance isn't a number.
func evaluateNumeric(schema *Schema, instance any) []*EvaluationError {
	dataType := getDataType(instance)
	if dataType != "number" && dataType != "integer" {
		return nil
	}

	value := NewRat(instance)
	if value == nil {
		return []*EvaluationError{
			NewEvaluationError("type", "invalid_numeric", "Value is [[received]] but should be numeric", map[string]any{
				"received": dataType,
			}),
		}
	}

	var errs []*EvaluationError
	if schema.MultipleOf != nil {
		if err := evaluateMultipleOf(schema, value); err != nil {
			errs = append(errs, err)
		}
	}
	for _, bound := range numericBounds(schema) {
		if err := bound.evaluate(value); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
