package jsonschema

// MergeSchemas builds a superset (union) of two compiled schemas: any
// instance valid against either input is valid against the merged schema.
// Constraints present on both sides keep the less restrictive bound;
// collections (types, enums, properties) union; "required" intersects,
// since a property required by only one side cannot be required by the
// union. Logical applicators (allOf/anyOf/oneOf/not) and references are
// not carried over, as their union has no single-keyword representation.
func MergeSchemas(a, b *Schema) *Schema {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	merged := &Schema{}

	if a.Boolean != nil || b.Boolean != nil {
		merged.Boolean = unionBooleanSchemas(a.Boolean, b.Boolean)
		if merged.Boolean != nil {
			return merged
		}
	}

	merged.Schema = pickNonEmpty(b.Schema, a.Schema)
	merged.Title = pickStringPtr(a.Title, b.Title)
	merged.Description = pickStringPtr(a.Description, b.Description)

	if a.Format != nil && b.Format != nil {
		// Conflicting formats have no union; drop the keyword entirely.
		if *a.Format == *b.Format {
			merged.Format = a.Format
		}
	} else if a.Format != nil {
		merged.Format = a.Format
	} else {
		merged.Format = b.Format
	}

	merged.Type = unionTypes(a.Type, b.Type)
	merged.Enum = unionValues(a.Enum, b.Enum)
	merged.Const = unionConst(a.Const, b.Const, &merged.Enum)

	merged.Minimum = looserRatMin(a.Minimum, b.Minimum)
	merged.Maximum = looserRatMax(a.Maximum, b.Maximum)
	merged.ExclusiveMinimum = looserRatMin(a.ExclusiveMinimum, b.ExclusiveMinimum)
	merged.ExclusiveMaximum = looserRatMax(a.ExclusiveMaximum, b.ExclusiveMaximum)
	if a.MultipleOf != nil && b.MultipleOf != nil && a.MultipleOf.Cmp(b.MultipleOf.Rat) == 0 {
		merged.MultipleOf = a.MultipleOf
	}

	merged.MinLength = looserMin(a.MinLength, b.MinLength)
	merged.MaxLength = looserMax(a.MaxLength, b.MaxLength)

	merged.MinItems = looserMin(a.MinItems, b.MinItems)
	merged.MaxItems = looserMax(a.MaxItems, b.MaxItems)
	merged.MinContains = looserMin(a.MinContains, b.MinContains)
	merged.MaxContains = looserMax(a.MaxContains, b.MaxContains)
	merged.UniqueItems = bothTrue(a.UniqueItems, b.UniqueItems)

	merged.MinProperties = looserMin(a.MinProperties, b.MinProperties)
	merged.MaxProperties = looserMax(a.MaxProperties, b.MaxProperties)
	merged.Required = intersectStrings(a.Required, b.Required)
	merged.DependentRequired = intersectDependentRequired(a.DependentRequired, b.DependentRequired)

	merged.Default = pickAny(a.Default, b.Default)
	merged.Examples = unionValues(a.Examples, b.Examples)
	merged.Deprecated = bothTrue(a.Deprecated, b.Deprecated)
	merged.ReadOnly = bothTrue(a.ReadOnly, b.ReadOnly)
	merged.WriteOnly = bothTrue(a.WriteOnly, b.WriteOnly)

	merged.Properties = unionProperties(a.Properties, b.Properties)
	merged.PatternProperties = unionProperties(a.PatternProperties, b.PatternProperties)
	merged.AdditionalProperties = unionSubschemas(a.AdditionalProperties, b.AdditionalProperties)
	merged.PropertyNames = unionSubschemas(a.PropertyNames, b.PropertyNames)

	merged.Items = unionSubschemas(a.Items, b.Items)
	merged.Contains = unionSubschemas(a.Contains, b.Contains)
	merged.PrefixItems = unionPrefixItems(a.PrefixItems, b.PrefixItems)

	return merged
}

// unionBooleanSchemas: true on either side means everything validates.
// Returns nil when neither side is a boolean schema so the keyed-schema
// merge can proceed.
func unionBooleanSchemas(a, b *bool) *bool {
	if a == nil && b == nil {
		return nil
	}
	t, f := true, false
	if (a != nil && *a) || (b != nil && *b) {
		return &t
	}
	return &f
}

func pickNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func pickStringPtr(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}

func pickAny(a, b any) any {
	if a != nil {
		return a
	}
	return b
}

// bothTrue keeps a true flag only when both sides assert it; a side that
// omits or relaxes the flag relaxes the union.
func bothTrue(a, b *bool) *bool {
	if a == nil || b == nil {
		return nil
	}
	v := *a && *b
	return &v
}

// looserMin keeps the smaller lower bound, or drops the bound entirely if
// either side has none.
func looserMin(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	if *a <= *b {
		return a
	}
	return b
}

func looserMax(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	if *a >= *b {
		return a
	}
	return b
}

func looserRatMin(a, b *Rat) *Rat {
	if a == nil || b == nil {
		return nil
	}
	if a.Cmp(b.Rat) <= 0 {
		return a
	}
	return b
}

func looserRatMax(a, b *Rat) *Rat {
	if a == nil || b == nil {
		return nil
	}
	if a.Cmp(b.Rat) >= 0 {
		return a
	}
	return b
}

func unionTypes(a, b SchemaType) SchemaType {
	// a side without "type" accepts every type, so the union does too
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make(SchemaType, 0, len(a)+len(b))
	for _, t := range append(append(SchemaType{}, a...), b...) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// unionValues concatenates two value lists, deduplicating by structural
// equivalence rather than Go equality so 1 and 1.0 collapse.
func unionValues(a, b []any) []any {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]any, 0, len(a)+len(b))
	for _, v := range append(append([]any{}, a...), b...) {
		key := HashEquivalence(v)
		if !seen[key] {
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

// unionConst keeps a shared const, or demotes two differing consts into the
// merged schema's enum (their two-element union).
func unionConst(a, b *ConstValue, enum *[]any) *ConstValue {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if Equivalent(a.Value, b.Value) {
		return a
	}
	*enum = unionValues(*enum, []any{a.Value, b.Value})
	return nil
}

func intersectStrings(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if inB[s] {
			out = append(out, s)
		}
	}
	return out
}

func intersectDependentRequired(a, b map[string][]string) map[string][]string {
	if a == nil || b == nil {
		return nil
	}
	out := make(map[string][]string)
	for trigger, deps := range a {
		if other, ok := b[trigger]; ok {
			if common := intersectStrings(deps, other); len(common) > 0 {
				out[trigger] = common
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func unionProperties(a, b *SchemaMap) *SchemaMap {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := make(SchemaMap, len(*a)+len(*b))
	for name, sub := range *a {
		out[name] = sub
	}
	for name, sub := range *b {
		if existing, ok := out[name]; ok {
			out[name] = MergeSchemas(existing, sub)
		} else {
			out[name] = sub
		}
	}
	return &out
}

// unionSubschemas merges two optional subschemas; a side that omits the
// subschema imposes no constraint, so the union imposes none either.
func unionSubschemas(a, b *Schema) *Schema {
	if a == nil || b == nil {
		return nil
	}
	return MergeSchemas(a, b)
}

// unionPrefixItems merges positionally over the shorter prefix; positions
// only one side constrains are unconstrained in the union.
func unionPrefixItems(a, b []*Schema) []*Schema {
	if a == nil || b == nil {
		return nil
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}
	out := make([]*Schema, n)
	for i := 0; i < n; i++ {
		out[i] = MergeSchemas(a[i], b[i])
	}
	return out
}
