package jsonschema

import (
	"fmt"
	"strings"
)

func evaluateMaxItems(schema *Schema, array []any) *EvaluationError {
	if float64(len(array)) > *schema.MaxItems {
		return NewEvaluationError("maxItems", "items_too_long", "Value should have at most [[max_items]] items", map[string]any{
			"max_items": fmt.Sprintf("%.0f", *schema.MaxItems),
			"count":     len(array),
		})
	}
	return nil
}

func evaluateMinItems(schema *Schema, array []any) *EvaluationError {
	if float64(len(array)) < *schema.MinItems {
		return NewEvaluationError("minItems", "items_too_short", "Value should have at least [[min_items]] items", map[string]any{
			"min_items": fmt.Sprintf("%.0f", *schema.MinItems),
			"count":     len(array),
		})
	}
	return nil
}

// evaluateUniqueItems implements "uniqueItems" using the same structural
// equivalence as const/enum (value.go's Equivalent), bucketed by
// HashEquivalence so the common case of distinct hashes never pays for a
// full pairwise comparison.
func evaluateUniqueItems(schema *Schema, array []any) *EvaluationError {
	if schema.UniqueItems == nil || !*schema.UniqueItems {
		return nil
	}

	buckets := make(map[string][]int)
	for index, item := range array {
		hash := HashEquivalence(item)
		buckets[hash] = append(buckets[hash], index)
	}

	var duplicateGroups []string
	for _, indices := range buckets {
		if len(indices) < 2 {
			continue
		}
		group := dedupeEquivalentGroups(array, indices)
		for _, g := range group {
			if len(g) > 1 {
				oneBased := make([]string, len(g))
				for i, idx := range g {
					oneBased[i] = fmt.Sprint(idx + 1)
				}
				duplicateGroups = append(duplicateGroups, "("+strings.Join(oneBased, ", ")+")")
			}
		}
	}

	if len(duplicateGroups) > 0 {
		return NewEvaluationError("uniqueItems", "unique_items_mismatch", "Found duplicates at the following index groups: [[duplicates]]", map[string]any{
			"duplicates": strings.Join(duplicateGroups, ", "),
		})
	}
	return nil
}

// dedupeEquivalentGroups splits a hash-collision bucket into the actual
// Equivalent() groups, since distinct values can share a HashEquivalence
// bucket only in pathological cases but never the reverse.
func dedupeEquivalentGroups(array []any, indices []int) [][]int {
	var groups [][]int
	assigned := make(map[int]bool)
	for _, i := range indices {
		if assigned[i] {
			continue
		}
		group := []int{i}
		assigned[i] = true
		for _, j := range indices {
			if assigned[j] || j == i {
				continue
			}
			if Equivalent(array[i], array[j]) {
				group = append(group, j)
				assigned[j] = true
			}
		}
		groups = append(groups, group)
	}
	return groups
}
