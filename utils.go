package jsonschema

import (
	"fmt"
	"math/big"
	"net/url"
	"path"
	"reflect"
	"strings"

	"github.com/goccy/go-json"
)

// replace substitutes "[[token]]" placeholders in an error-message
// template. Double brackets rather than the single-brace "{token}" style
// keep templates from colliding with the curly braces JSON examples
// routinely embed in description/default annotations passed through params.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		placeholder := "[[" + key + "]]"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}

// mergeIntMaps merges map2 into map1, returning map1.
func mergeIntMaps(map1, map2 map[int]bool) map[int]bool {
	for key, value := range map2 {
		map1[key] = value
	}
	return map1
}

// mergeStringMaps merges map2 into map1, returning map1.
func mergeStringMaps(map1, map2 map[string]bool) map[string]bool {
	for key, value := range map2 {
		map1[key] = value
	}
	return map1
}

// getDataType identifies the JSON Schema type name for a decoded Go value.
func getDataType(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		if _, ok := new(big.Int).SetString(string(v), 10); ok {
			return "integer"
		}
		if bigFloat, ok := new(big.Float).SetString(string(v)); ok {
			if _, acc := bigFloat.Int(nil); acc == big.Exact {
				return "integer"
			}
			return "number"
		}
		return "number"
	case float32, float64:
		bigFloat := new(big.Float).SetFloat64(reflect.ValueOf(v).Float())
		if _, acc := bigFloat.Int(nil); acc == big.Exact {
			return "integer"
		}
		return "number"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// splitRef separates a reference URI into its base URI and fragment (anchor
// or JSON Pointer), mirroring the '#' split used throughout $ref/$dynamicRef
// resolution.
func splitRef(ref string) (baseURI string, fragment string) {
	parts := strings.SplitN(ref, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return ref, ""
}

// isJSONPointerFragment reports whether a fragment is a JSON Pointer (starts
// with "/" or is empty) as opposed to a plain-name anchor.
func isJSONPointerFragment(fragment string) bool {
	return fragment == "" || strings.HasPrefix(fragment, "/")
}

// isAbsoluteURI reports whether urlStr parses with a non-empty scheme.
func isAbsoluteURI(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != ""
}

// isValidURI reports whether s parses as a request URI.
func isValidURI(s string) bool {
	_, err := url.ParseRequestURI(s)
	return err == nil
}

// resolveRelativeURI resolves relativeURL against baseURI, returning
// relativeURL unchanged if either fails to parse as a URI.
func resolveRelativeURI(baseURI, relativeURL string) string {
	if isAbsoluteURI(relativeURL) {
		return relativeURL
	}
	base, err := url.Parse(baseURI)
	if err != nil || base.Scheme == "" {
		return relativeURL
	}
	rel, err := url.Parse(relativeURL)
	if err != nil {
		return relativeURL
	}
	return base.ResolveReference(rel).String()
}

// getBaseURI derives the base URI used for resolving further relative
// references from an $id value: the directory containing it.
func getBaseURI(id string) string {
	if id == "" {
		return ""
	}
	u, err := url.Parse(id)
	if err != nil || u.Scheme == "" {
		return ""
	}
	if strings.HasSuffix(u.Path, "/") {
		return u.String()
	}
	u.Path = path.Dir(u.Path)
	if u.Path == "." || u.Path == "" {
		u.Path = "/"
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// getURLScheme extracts the scheme of a URL, or "" if it doesn't parse.
func getURLScheme(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Scheme
}
