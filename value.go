package jsonschema

import (
	"sort"
	"strconv"
)

// Kind classifies a decoded JSON value into the JSON Schema type
// vocabulary. "integer" is derived: a number kind whose fractional part
// is zero is also an integer, per the JSON Schema "integer" type rule.
type Kind string

const (
	KindNull    Kind = "null"
	KindBoolean Kind = "boolean"
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
)

// ValueKind reports the classifier for v, the values Go's encoding/json
// produces when decoding into interface{}: nil, bool, string, float64,
// json.Number, map[string]any, []any. Other numeric Go types are accepted
// too, since schemas can be constructed programmatically.
func ValueKind(v any) Kind {
	switch val := v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case string:
		return KindString
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		if r := NewRat(val); r != nil {
			if r.IsInt() {
				return KindInteger
			}
			return KindNumber
		}
		return ""
	}
}

// MatchesType reports whether a value's kind satisfies a declared type name,
// honoring the rule that "integer" is a number with no fractional part and
// that "number" accepts integer-kinded values.
func MatchesType(v any, declared string) bool {
	k := ValueKind(v)
	switch declared {
	case "integer":
		return k == KindInteger
	case "number":
		return k == KindNumber || k == KindInteger
	default:
		return string(k) == declared
	}
}

// AsNumber returns v as a decimal if v is any of the numeric kinds, or nil
// if v cannot be interpreted as a number.
func AsNumber(v any) *Rat {
	return NewRat(v)
}

// Equivalent performs the structural equality JSON Schema requires for
// const/enum/uniqueItems: object comparison is order-insensitive (keys are
// compared as sets, values recursively), array comparison is order-sensitive,
// and numbers compare by mathematical value regardless of integer/float
// representation (1 and 1.0 are equivalent).
func Equivalent(a, b any) bool {
	ak, bk := ValueKind(a), ValueKind(b)

	// integer/number distinction never affects equivalence: 1 == 1.0.
	if (ak == KindInteger || ak == KindNumber) && (bk == KindInteger || bk == KindNumber) {
		an, bn := AsNumber(a), AsNumber(b)
		if an == nil || bn == nil {
			return false
		}
		return an.Cmp(bn.Rat) == 0
	}

	if ak != bk {
		return false
	}

	switch ak {
	case KindNull:
		return true
	case KindBoolean:
		return a.(bool) == b.(bool)
	case KindString:
		return a.(string) == b.(string)
	case KindArray:
		aa, ba := a.([]any), b.([]any)
		if len(aa) != len(ba) {
			return false
		}
		for i := range aa {
			if !Equivalent(aa[i], ba[i]) {
				return false
			}
		}
		return true
	case KindObject:
		ao, bo := a.(map[string]any), b.(map[string]any)
		if len(ao) != len(bo) {
			return false
		}
		for key, av := range ao {
			bv, ok := bo[key]
			if !ok || !Equivalent(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Adapter is the capability surface a collaborating engine (a rule
// evaluator or path query engine operating on the same decoded-JSON value
// model) needs from the value layer, exposed so such a collaborator can
// share these semantics without depending on the schema types.
type Adapter interface {
	Kind(v any) Kind
	AsNumber(v any) *Rat
	Equivalent(a, b any) bool
}

type stdValues struct{}

func (stdValues) Kind(v any) Kind          { return ValueKind(v) }
func (stdValues) AsNumber(v any) *Rat      { return AsNumber(v) }
func (stdValues) Equivalent(a, b any) bool { return Equivalent(a, b) }

// Values is the Adapter backed by this package's own value semantics.
var Values Adapter = stdValues{}

// HashEquivalence returns a stable, order-independent string for v such that
// Equivalent(a, b) implies HashEquivalence(a) == HashEquivalence(b). It is
// used by uniqueItems to bucket candidate duplicates before falling back to
// a full Equivalent comparison within a bucket.
func HashEquivalence(v any) string {
	switch val := v.(type) {
	case nil:
		return "n"
	case bool:
		if val {
			return "b:1"
		}
		return "b:0"
	case string:
		return "s:" + val
	case []any:
		out := "a:["
		for i, item := range val {
			if i > 0 {
				out += ","
			}
			out += HashEquivalence(item)
		}
		return out + "]"
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := "o:{"
		for i, k := range keys {
			if i > 0 {
				out += ","
			}
			out += strconv.Quote(k) + ":" + HashEquivalence(val[k])
		}
		return out + "}"
	default:
		if r := NewRat(val); r != nil {
			return "num:" + r.RatString()
		}
		return "?"
	}
}
