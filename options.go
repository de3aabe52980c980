package jsonschema

// OutputFormat selects which shape Validate's result is eventually
// rendered into. The EvaluationResult itself is always the hierarchical
// tree; OutputFormat hints which ToXxx conversion a caller is expected to
// reach for. Evaluation work is identical across formats, since the
// unevaluated-* bookkeeping needs the full walk either way.
type OutputFormat string

const (
	OutputFlag         OutputFormat = "flag"
	OutputList         OutputFormat = "list"
	OutputHierarchical OutputFormat = "hierarchical"
)

// EvaluationOptions configures a single Validate call.
type EvaluationOptions struct {
	// OutputFormat hints which result shape the caller wants; Validate
	// always returns the full EvaluationResult; callers convert with
	// ToFlag/ToList as needed.
	OutputFormat OutputFormat

	// EvaluateAs overrides the draft inferred from "$schema" for the
	// draft-sensitive evaluation gates ($ref sibling exclusivity, keyword
	// vocabulary activation). Draft-variant keyword parsing (boolean vs.
	// numeric exclusive bounds, items/additionalItems folding) is fixed at
	// compile time; use Compiler.SetEvaluateAs to control that side.
	EvaluateAs Draft

	// ProcessCustomKeywords runs registered custom-keyword evaluators
	// (see RegisterCustomKeyword) against unrecognized schema properties
	// collected into Schema.Extra.
	ProcessCustomKeywords bool

	// RequireFormatValidation promotes "format" from an annotation-only
	// keyword to an asserting one, matching the format-assertion
	// vocabulary rather than format-annotation.
	RequireFormatValidation bool

	// Trace, when non-nil, is invoked as evaluation enters and exits each
	// schema node, with step "enter" or "exit". It observes only; returning
	// is the sole way to continue, and it must not mutate schema or
	// instance.
	Trace func(step string, schema *Schema, instance any)
}

// DefaultOptions returns the engine's default evaluation behavior:
// hierarchical output, draft inferred per-schema, format is
// annotation-only, no custom keyword processing.
func DefaultOptions() *EvaluationOptions {
	return &EvaluationOptions{
		OutputFormat: OutputHierarchical,
	}
}

// CustomKeywordFunc validates instance against a single custom keyword's
// raw JSON argument, returning a non-nil *EvaluationError on failure.
type CustomKeywordFunc func(schema *Schema, keyword string, arg any, instance any) *EvaluationError

var customKeywords = map[string]CustomKeywordFunc{}

// RegisterCustomKeyword installs a validator for an unrecognized schema
// property name, invoked only when EvaluationOptions.ProcessCustomKeywords
// is true and the property appears in a schema's Extra map.
func RegisterCustomKeyword(name string, fn CustomKeywordFunc) {
	customKeywords[name] = fn
}

func evaluateCustomKeywords(s *Schema, instance any, ctx *evalContext) []*EvaluationError {
	if len(s.Extra) == 0 {
		return nil
	}
	var errs []*EvaluationError
	for name, arg := range s.Extra {
		fn, ok := customKeywords[name]
		if !ok {
			continue
		}
		if err := fn(s, name, arg, instance); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
