// Package tests runs JSON-Schema-Test-Suite-shaped case sets against the
// jsonschema package from outside its own package boundary, exercising
// only the public API.
package tests

import (
	"encoding/json"
	"testing"

	"github.com/draftkit/jsonschema"
)

type testCase struct {
	Description string `json:"description"`
	Data        any    `json:"data"`
	Valid       bool   `json:"valid"`
}

type testGroup struct {
	Description string    `json:"description"`
	Schema      any       `json:"schema"`
	Tests       []testCase `json:"tests"`
}

// runSuite runs a JSON-Schema-Test-Suite-shaped document (a JSON array of
// {description, schema, tests: [{description, data, valid}]} groups)
// against the compiler, following the official suite's group/test
// nesting, but sourced from an inline literal instead of a testdata file
// fetched from disk.
func runSuite(t *testing.T, suiteJSON string, exclusions ...string) {
	t.Helper()

	var groups []testGroup
	if err := json.Unmarshal([]byte(suiteJSON), &groups); err != nil {
		t.Fatalf("failed to unmarshal test suite: %v", err)
	}

	excluded := make(map[string]bool, len(exclusions))
	for _, e := range exclusions {
		excluded[e] = true
	}

	for _, group := range groups {
		group := group
		t.Run(group.Description, func(t *testing.T) {
			if excluded[group.Description] {
				t.Skip("excluded")
			}

			schemaJSON, err := json.Marshal(group.Schema)
			if err != nil {
				t.Fatalf("failed to marshal schema: %v", err)
			}

			compiler := jsonschema.NewCompiler()
			schema, err := compiler.Compile(schemaJSON)
			if err != nil {
				t.Fatalf("failed to compile schema: %v", err)
			}

			for _, tc := range group.Tests {
				tc := tc
				t.Run(tc.Description, func(t *testing.T) {
					if excluded[group.Description+"/"+tc.Description] {
						t.Skip("excluded")
					}

					result := schema.Validate(tc.Data)
					if tc.Valid && !result.IsValid() {
						t.Errorf("expected valid, got errors: %v", result.ToList())
					}
					if !tc.Valid && result.IsValid() {
						t.Error("expected invalid, got valid")
					}
				})
			}
		})
	}
}
