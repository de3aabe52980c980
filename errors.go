package jsonschema

import "errors"

// === Schema compilation errors ===
// Fatal: malformed JSON, bad keyword argument, unresolvable $id base.
var (
	// ErrSchemaCompilation is returned when a schema document cannot be compiled.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrInvalidSchemaType is returned when the "type" keyword's value is not a string or array of strings.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrRegexValidation is returned when one or more pattern/patternProperties keys fail to compile as regex.
	ErrRegexValidation = errors.New("schema regex validation failed")

	// ErrNilConstValue is returned when UnmarshalJSON is called on a nil *ConstValue receiver.
	ErrNilConstValue = errors.New("const value receiver is nil")

	// ErrUnsupportedRatType is returned when a value cannot be converted to a decimal for numeric keywords.
	ErrUnsupportedRatType = errors.New("unsupported type for decimal conversion")

	// ErrInvalidRatValue is returned when a value cannot be parsed as a decimal.
	ErrInvalidRatValue = errors.New("value is not a valid decimal")

	// ErrUnknownKeyword is returned in strict mode when a schema uses a property
	// no supported draft defines as a keyword.
	ErrUnknownKeyword = errors.New("unknown keyword")
)

// === Reference resolution errors ===
// Fatal for the branch being resolved; the affected result is marked invalid with a diagnostic error.
var (
	// ErrReferenceResolution is returned when $ref/$dynamicRef/$recursiveRef cannot be resolved.
	ErrReferenceResolution = errors.New("reference resolution failed")

	// ErrNoLoaderRegistered is returned when no fetcher is registered for a URI scheme that needs resolving.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrSchemaNotFound is returned by the registry when a URI has no compiled schema and no fetcher resolves it.
	ErrSchemaNotFound = errors.New("schema not found in registry")

	// ErrFetcherFailed is returned when a caller-supplied fetcher returns an error.
	ErrFetcherFailed = errors.New("fetcher failed to retrieve schema document")

	// ErrDataRead is returned when a loaded schema document's body cannot be read.
	ErrDataRead = errors.New("schema data read failed")

	// ErrNetworkFetch is returned when an HTTP(S) schema fetch fails at the transport level.
	ErrNetworkFetch = errors.New("network fetch failed")

	// ErrInvalidStatusCode is returned when an HTTP(S) schema fetch returns a non-200 status.
	ErrInvalidStatusCode = errors.New("invalid http status code")

	// ErrJSONPointerSegmentNotFound is returned when a JSON Pointer fragment does not resolve within a schema.
	ErrJSONPointerSegmentNotFound = errors.New("json pointer segment not found")

	// ErrJSONPointerSegmentDecode is returned when a JSON Pointer segment fails percent-decoding.
	ErrJSONPointerSegmentDecode = errors.New("json pointer segment percent-decoding failed")

	// ErrGlobalReferenceResolution is returned when a $ref/$dynamicRef/$recursiveRef cannot be
	// resolved locally or by the compiler's schema cache/loaders.
	ErrGlobalReferenceResolution = errors.New("global reference resolution failed")

	// ErrReferenceCycle is returned when evaluation detects a $ref chain that revisits the same
	// (schema location, instance location) pair without consuming any instance.
	ErrReferenceCycle = errors.New("reference cycle detected")
)

// === Serialization errors ===
var (
	ErrJSONUnmarshal = errors.New("json unmarshal failed")
	ErrJSONMarshal   = errors.New("json marshal failed")
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")
	ErrXMLUnmarshal  = errors.New("xml unmarshal failed")
)

// === Content keyword errors ===
var (
	ErrUnknownContentEncoding  = errors.New("unknown contentEncoding")
	ErrUnknownContentMediaType = errors.New("unknown contentMediaType")
)

// === Format validation errors ===
var (
	// ErrIPv6AddressNotEnclosed is returned when a URI host is an IPv6 literal not wrapped in brackets.
	ErrIPv6AddressNotEnclosed = errors.New("ipv6 address is not enclosed in brackets")

	// ErrInvalidIPv6Address is returned when a bracketed URI host is not a valid IPv6 address.
	ErrInvalidIPv6Address = errors.New("invalid ipv6 address")
)
