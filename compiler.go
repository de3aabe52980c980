package jsonschema

import (
	"context"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// FormatDef is a custom "format" validator registered on a Compiler.
type FormatDef struct {
	// Type restricts the validator to instances of this JSON Schema type
	// ("string", "number", ...); empty applies to every type.
	Type     string
	Validate func(any) bool
}

// Compiler compiles JSON Schema documents into Schema trees and caches
// them by URI. A Compiler is safe for concurrent Compile/GetSchema calls.
type Compiler struct {
	mu             sync.RWMutex
	schemas        map[string]*Schema
	unresolvedRefs map[string][]*Schema
	failedFetches  map[string]error

	Decoders   map[string]func(string) ([]byte, error)
	MediaTypes map[string]func([]byte) (any, error)
	Loaders    map[string]func(url string) (io.ReadCloser, error)

	// DefaultBaseURI resolves relative $id/$ref values on schemas that
	// declare none of their own.
	DefaultBaseURI string
	// AssertFormat turns "format" from an annotation into an assertion
	// for every schema compiled by this Compiler.
	AssertFormat bool
	// EvaluateAs overrides the draft a schema resolves to when it
	// declares no "$schema" of its own and has no ancestor that does.
	EvaluateAs Draft
	// PreserveExtra keeps unrecognized schema properties on Schema.Extra
	// instead of discarding them after compilation.
	PreserveExtra bool
	// Strict makes compilation fail with ErrUnknownKeyword when a schema
	// uses a property no supported draft defines; off, unknown properties
	// become Extra annotations.
	Strict bool
	// CacheResolutionFailures remembers loader failures per URI so the
	// loader is consulted at most once per unresolved URI; off, every
	// lookup retries the loader.
	CacheResolutionFailures bool

	jsonEncoder func(v any) ([]byte, error)
	jsonDecoder func(data []byte, v any) error

	customFormats   map[string]*FormatDef
	customFormatsRW sync.RWMutex
}

// NewCompiler returns a Compiler with the default decoders, media types,
// and HTTP(S) loaders registered.
func NewCompiler() *Compiler {
	c := &Compiler{
		schemas:        make(map[string]*Schema),
		unresolvedRefs: make(map[string][]*Schema),
		Decoders:       make(map[string]func(string) ([]byte, error)),
		MediaTypes:     make(map[string]func([]byte) (any, error)),
		Loaders:        make(map[string]func(url string) (io.ReadCloser, error)),
		EvaluateAs:     DraftUnspecified,
		PreserveExtra:  true,
		customFormats:  make(map[string]*FormatDef),

		jsonEncoder: func(v any) ([]byte, error) { return json.Marshal(v) },
		jsonDecoder: func(data []byte, v any) error { return json.Unmarshal(data, v) },
	}
	c.initDefaults()
	return c
}

var defaultCompiler = NewCompiler()

// WithEncoderJSON overrides the JSON encoder used by schema/result
// marshaling helpers.
func (c *Compiler) WithEncoderJSON(encoder func(v any) ([]byte, error)) *Compiler {
	c.jsonEncoder = encoder
	return c
}

// WithDecoderJSON overrides the JSON decoder used when parsing schema
// documents.
func (c *Compiler) WithDecoderJSON(decoder func(data []byte, v any) error) *Compiler {
	c.jsonDecoder = decoder
	return c
}

// Compile parses, initializes, and caches a schema document. uris, if
// given, supplies the schema's URI when it declares no "$id" of its own.
func (c *Compiler) Compile(jsonSchema []byte, uris ...string) (*Schema, error) {
	schema, err := newSchema(jsonSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaCompilation, err)
	}

	if schema.ID == "" && len(uris) > 0 {
		schema.ID = uris[0]
	}
	uri := schema.ID

	if uri != "" && isValidURI(uri) {
		schema.uri = uri
		c.mu.RLock()
		existing, exists := c.schemas[uri]
		c.mu.RUnlock()
		if exists {
			return existing, nil
		}
	}

	if c.Strict {
		// Checked before initialization since a non-preserving compiler
		// drops Extra there.
		if err := schema.validateKnownKeywords(); err != nil {
			return nil, err
		}
	}

	schema.initializeSchema(c, nil)

	if err := schema.validateRegexSyntax(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if schema.uri != "" && isValidURI(schema.uri) {
		c.schemas[schema.uri] = schema
	}
	c.trackUnresolvedReferences(schema)

	var waiting []*Schema
	if schema.uri != "" {
		if list, exists := c.unresolvedRefs[schema.uri]; exists {
			waiting = make([]*Schema, len(list))
			copy(waiting, list)
			delete(c.unresolvedRefs, schema.uri)
		}
	}
	c.mu.Unlock()

	for _, w := range waiting {
		w.ResolveUnresolvedReferences()
		c.mu.Lock()
		c.trackUnresolvedReferences(w)
		c.mu.Unlock()
	}

	return schema, nil
}

// CompileBatch compiles a set of mutually-referencing schemas in two
// passes: every schema is parsed and registered by URI first, then
// references are resolved once the whole set is visible. This avoids the
// single-Compile ordering dependency when schemas reference each other.
func (c *Compiler) CompileBatch(schemas map[string][]byte) (map[string]*Schema, error) {
	compiled := make(map[string]*Schema, len(schemas))

	for id, raw := range schemas {
		schema, err := newSchema(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSchemaCompilation, id, err)
		}
		if schema.ID == "" {
			schema.ID = id
		}
		schema.uri = schema.ID
		if c.Strict {
			if err := schema.validateKnownKeywords(); err != nil {
				return nil, err
			}
		}
		schema.initializeSchemaWithoutReferences(c, nil)
		compiled[id] = schema

		c.mu.Lock()
		if schema.uri != "" && isValidURI(schema.uri) {
			c.schemas[schema.uri] = schema
		}
		c.mu.Unlock()
	}

	for _, schema := range compiled {
		if err := schema.validateRegexSyntax(); err != nil {
			return nil, err
		}
	}
	for _, schema := range compiled {
		schema.resolveReferences()
	}

	return compiled, nil
}

func (c *Compiler) trackUnresolvedReferences(schema *Schema) {
	for _, uri := range schema.GetUnresolvedReferenceURIs() {
		found := false
		for _, existing := range c.unresolvedRefs[uri] {
			if existing == schema {
				found = true
				break
			}
		}
		if !found {
			c.unresolvedRefs[uri] = append(c.unresolvedRefs[uri], schema)
		}
	}
}

// resolveSchemaURL fetches and compiles a schema from a remote/local URL
// via the scheme-matched Loader, caching the result. With
// CacheResolutionFailures on, a failed fetch is also cached so the loader
// runs at most once per URI.
func (c *Compiler) resolveSchemaURL(rawURL string) (*Schema, error) {
	id, anchor := splitRef(rawURL)

	c.mu.RLock()
	schema, exists := c.schemas[id]
	failure, failed := c.failedFetches[id]
	c.mu.RUnlock()
	if exists {
		return schema, nil
	}
	if failed && c.CacheResolutionFailures {
		return nil, failure
	}

	loader, ok := c.Loaders[getURLScheme(rawURL)]
	if !ok {
		return nil, ErrNoLoaderRegistered
	}

	body, err := loader(rawURL)
	if err != nil {
		if c.CacheResolutionFailures {
			c.mu.Lock()
			if c.failedFetches == nil {
				c.failedFetches = make(map[string]error)
			}
			c.failedFetches[id] = err
			c.mu.Unlock()
		}
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, ErrDataRead
	}

	compiled, err := c.Compile(data, id)
	if err != nil {
		return nil, err
	}

	if anchor != "" {
		return compiled.resolveAnchor(anchor)
	}
	return compiled, nil
}

// SetSchema associates an already-compiled schema with a URI in this
// Compiler's cache.
func (c *Compiler) SetSchema(uri string, schema *Schema) *Compiler {
	c.mu.Lock()
	c.schemas[uri] = schema
	c.mu.Unlock()
	return c
}

// GetSchema retrieves a compiled schema by reference, resolving a remote
// URL through the registered Loaders if it isn't cached yet.
func (c *Compiler) GetSchema(ref string) (*Schema, error) {
	baseURI, anchor := splitRef(ref)

	c.mu.RLock()
	schema, exists := c.schemas[baseURI]
	c.mu.RUnlock()

	if exists {
		if baseURI == ref {
			return schema, nil
		}
		return schema.resolveAnchor(anchor)
	}
	return c.resolveSchemaURL(ref)
}

// SetDefaultBaseURI sets the base URI for resolving relative $id/$ref
// values on schemas with no URI context of their own.
func (c *Compiler) SetDefaultBaseURI(baseURI string) *Compiler {
	c.DefaultBaseURI = baseURI
	return c
}

// SetAssertFormat toggles whether "format" is validated as an assertion
// rather than left as an annotation.
func (c *Compiler) SetAssertFormat(assert bool) *Compiler {
	c.AssertFormat = assert
	return c
}

// SetEvaluateAs pins the draft used for schemas that declare no
// "$schema" of their own.
func (c *Compiler) SetEvaluateAs(draft Draft) *Compiler {
	c.EvaluateAs = draft
	return c
}

// SetPreserveExtra toggles whether unrecognized schema keywords survive
// compilation as annotations on Schema.Extra.
func (c *Compiler) SetPreserveExtra(preserve bool) *Compiler {
	c.PreserveExtra = preserve
	return c
}

// SetStrict toggles whether compilation rejects schemas that use properties
// no supported draft defines as keywords.
func (c *Compiler) SetStrict(strict bool) *Compiler {
	c.Strict = strict
	return c
}

// SetCacheResolutionFailures toggles negative caching of loader failures.
func (c *Compiler) SetCacheResolutionFailures(cache bool) *Compiler {
	c.CacheResolutionFailures = cache
	return c
}

// RegisterDecoder adds a contentEncoding decoder (e.g. "base64").
func (c *Compiler) RegisterDecoder(name string, decoder func(string) ([]byte, error)) *Compiler {
	c.Decoders[name] = decoder
	return c
}

// RegisterMediaType adds a contentMediaType unmarshaler.
func (c *Compiler) RegisterMediaType(name string, unmarshal func([]byte) (any, error)) *Compiler {
	c.MediaTypes[name] = unmarshal
	return c
}

// RegisterLoader adds a schema loader for a URI scheme.
func (c *Compiler) RegisterLoader(scheme string, loader func(url string) (io.ReadCloser, error)) *Compiler {
	c.Loaders[scheme] = loader
	return c
}

// RegisterFormat registers a custom "format" validator, optionally
// restricted to a single JSON Schema type.
func (c *Compiler) RegisterFormat(name string, validator func(any) bool, typeName ...string) *Compiler {
	c.customFormatsRW.Lock()
	defer c.customFormatsRW.Unlock()

	var t string
	if len(typeName) > 0 {
		t = typeName[0]
	}
	c.customFormats[name] = &FormatDef{Type: t, Validate: validator}
	return c
}

// UnregisterFormat removes a previously registered custom format.
func (c *Compiler) UnregisterFormat(name string) *Compiler {
	c.customFormatsRW.Lock()
	defer c.customFormatsRW.Unlock()
	delete(c.customFormats, name)
	return c
}

func (c *Compiler) initDefaults() {
	c.Decoders["base64"] = base64.StdEncoding.DecodeString
	c.setupMediaTypes()
	c.setupLoaders()
}

func (c *Compiler) setupMediaTypes() {
	c.MediaTypes["application/json"] = func(data []byte) (any, error) {
		var v any
		if err := c.jsonDecoder(data, &v); err != nil {
			return nil, ErrJSONUnmarshal
		}
		return v, nil
	}
	c.MediaTypes["application/xml"] = func(data []byte) (any, error) {
		var v any
		if err := xml.Unmarshal(data, &v); err != nil {
			return nil, ErrXMLUnmarshal
		}
		return v, nil
	}
	c.MediaTypes["application/yaml"] = func(data []byte) (any, error) {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, ErrYAMLUnmarshal
		}
		return v, nil
	}
}

func (c *Compiler) setupLoaders() {
	client := &http.Client{Timeout: 10 * time.Second}

	httpLoader := func(url string) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, ErrNetworkFetch
		}
		if resp.StatusCode != http.StatusOK {
			if err := resp.Body.Close(); err != nil {
				return nil, err
			}
			return nil, ErrInvalidStatusCode
		}
		return resp.Body, nil
	}

	c.RegisterLoader("http", httpLoader)
	c.RegisterLoader("https", httpLoader)
}
