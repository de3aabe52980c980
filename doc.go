// Package jsonschema implements a recursive JSON Schema evaluation engine
// spanning Draft 6, Draft 7, Draft 2019-09, Draft 2020-12, and the
// in-development next draft.
//
// A Compiler parses and caches schema documents into a tree of *Schema
// values, resolving $ref/$dynamicRef/$recursiveRef either eagerly (Compile)
// or across a mutually-referencing set (CompileBatch). Schema.Validate and
// Schema.ValidateWithOptions evaluate an instance against a compiled schema
// and return an *EvaluationResult, renderable as the Flag, List, or
// hierarchical output formats.
//
//	compiler := jsonschema.NewCompiler()
//	schema, err := compiler.Compile([]byte(`{"type": "object", "required": ["name"]}`))
//	if err != nil {
//		// handle compilation error
//	}
//	result := schema.Validate(map[string]any{"name": "ok"})
//	if !result.IsValid() {
//		for path, msg := range result.GetDetailedErrors() {
//			_ = path
//			_ = msg
//		}
//	}
package jsonschema
