package jsonschema

import "github.com/kaptinlin/go-i18n"

// EvaluationError describes one keyword failing against one instance
// location. Message carries a "[[token]]" style template (see utils.go's
// replace) so the same error can be rendered untranslated via Error() or
// through a Localizer via Localize().
type EvaluationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

// messageTemplates holds caller overrides of the built-in error message
// templates, keyed by error code. The table is read-mostly: install
// overrides before any concurrent evaluation begins.
var messageTemplates = map[string]string{}

// RegisterMessageTemplate replaces the built-in message template for an
// error code with a caller-supplied one, using the same "[[token]]"
// placeholder syntax. Not safe to call concurrently with evaluation.
func RegisterMessageTemplate(code, template string) {
	messageTemplates[code] = template
}

// NewEvaluationError builds an EvaluationError, optionally attaching the
// params substituted into its message template.
func NewEvaluationError(keyword, code, message string, params ...map[string]any) *EvaluationError {
	if override, ok := messageTemplates[code]; ok {
		message = override
	}
	e := &EvaluationError{Keyword: keyword, Code: code, Message: message}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

func (e *EvaluationError) Error() string {
	return replace(e.Message, e.Params)
}

// Localize renders the error through a message catalog keyed by Code,
// falling back to the untranslated template when localizer is nil or the
// code has no translation.
func (e *EvaluationError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Error()
	}
	return localizer.Get(e.Code, i18n.Vars(e.Params))
}

// Flag is the minimal output format: validity only, no detail.
type Flag struct {
	Valid bool `json:"valid"`
}

// List is the flat or nested output format, selectable via
// EvaluationResult.ToList's includeHierarchy argument.
type List struct {
	Valid            bool              `json:"valid"`
	EvaluationPath   string            `json:"evaluationPath"`
	SchemaLocation   string            `json:"schemaLocation"`
	InstanceLocation string            `json:"instanceLocation"`
	Annotations      map[string]any    `json:"annotations,omitempty"`
	Errors           map[string]string `json:"errors,omitempty"`
	Details          []List            `json:"details,omitempty"`
}

// EvaluationResult is the hierarchical output format: one node per
// schema/instance location pair visited, with nested Details for every
// subschema applied and Annotations collected from metadata keywords.
type EvaluationResult struct {
	schema *Schema `json:"-"`

	Valid            bool                        `json:"valid"`
	EvaluationPath   string                      `json:"evaluationPath"`
	SchemaLocation   string                      `json:"schemaLocation"`
	InstanceLocation string                      `json:"instanceLocation"`
	Annotations      map[string]any              `json:"annotations,omitempty"`
	Errors           map[string]*EvaluationError `json:"errors,omitempty"`
	Details          []*EvaluationResult         `json:"details,omitempty"`
}

// NewEvaluationResult starts a valid result node for schema, pre-populated
// with its metadata annotations (title, description, default, ...).
func NewEvaluationResult(schema *Schema) *EvaluationResult {
	e := &EvaluationResult{schema: schema, Valid: true}
	e.collectMetadataAnnotations()
	return e
}

func (e *EvaluationResult) collectMetadataAnnotations() *EvaluationResult {
	if e.schema == nil || e.schema.Boolean != nil {
		return e
	}
	if e.schema.Title != nil {
		e.AddAnnotation("title", *e.schema.Title)
	}
	if e.schema.Description != nil {
		e.AddAnnotation("description", *e.schema.Description)
	}
	if e.schema.Default != nil {
		e.AddAnnotation("default", e.schema.Default)
	}
	if e.schema.Deprecated != nil {
		e.AddAnnotation("deprecated", *e.schema.Deprecated)
	}
	if e.schema.ReadOnly != nil {
		e.AddAnnotation("readOnly", *e.schema.ReadOnly)
	}
	if e.schema.WriteOnly != nil {
		e.AddAnnotation("writeOnly", *e.schema.WriteOnly)
	}
	if e.schema.Examples != nil {
		e.AddAnnotation("examples", e.schema.Examples)
	}
	return e
}

func (e *EvaluationResult) SetEvaluationPath(path string) *EvaluationResult {
	e.EvaluationPath = path
	return e
}

func (e *EvaluationResult) SetSchemaLocation(location string) *EvaluationResult {
	e.SchemaLocation = location
	return e
}

func (e *EvaluationResult) SetInstanceLocation(location string) *EvaluationResult {
	e.InstanceLocation = location
	return e
}

func (e *EvaluationResult) SetInvalid() *EvaluationResult {
	e.Valid = false
	return e
}

func (e *EvaluationResult) IsValid() bool {
	return e.Valid
}

func (e *EvaluationResult) Error() string {
	return "evaluation failed"
}

// AddError attaches a keyword failure and marks the node invalid.
func (e *EvaluationResult) AddError(err *EvaluationError) *EvaluationResult {
	if err == nil {
		return e
	}
	if e.Errors == nil {
		e.Errors = make(map[string]*EvaluationError)
	}
	e.Valid = false
	e.Errors[err.Keyword] = err
	return e
}

// AddDetail appends a child result node, e.g. the result of applying one
// branch of an allOf/anyOf/properties/items evaluation.
func (e *EvaluationResult) AddDetail(detail *EvaluationResult) *EvaluationResult {
	if detail == nil {
		return e
	}
	e.Details = append(e.Details, detail)
	return e
}

// AddAnnotation records a successful keyword's output annotation (e.g.
// "properties" records which property names it evaluated).
func (e *EvaluationResult) AddAnnotation(keyword string, annotation any) *EvaluationResult {
	if e.Annotations == nil {
		e.Annotations = make(map[string]any)
	}
	e.Annotations[keyword] = annotation
	return e
}

// ToFlag renders the minimal Flag output format.
func (e *EvaluationResult) ToFlag() *Flag {
	return &Flag{Valid: e.Valid}
}

// ToList renders the List output format. includeHierarchy defaults to
// true (nested Details); pass false to flatten every node into one slice.
func (e *EvaluationResult) ToList(includeHierarchy ...bool) *List {
	return e.ToLocalizedList(nil, includeHierarchy...)
}

// ToLocalizedList is ToList with error messages rendered through localizer.
func (e *EvaluationResult) ToLocalizedList(localizer *i18n.Localizer, includeHierarchy ...bool) *List {
	hierarchy := true
	if len(includeHierarchy) > 0 {
		hierarchy = includeHierarchy[0]
	}

	list := &List{
		Valid:            e.Valid,
		EvaluationPath:   e.EvaluationPath,
		SchemaLocation:   e.SchemaLocation,
		InstanceLocation: e.InstanceLocation,
		Annotations:      e.Annotations,
		Errors:           e.convertErrors(localizer),
	}

	if hierarchy {
		for _, detail := range e.Details {
			child := detail.ToLocalizedList(localizer, true)
			list.Details = append(list.Details, *child)
		}
	} else {
		e.flattenInto(localizer, list, e.Details)
	}
	return list
}

func (e *EvaluationResult) flattenInto(localizer *i18n.Localizer, list *List, details []*EvaluationResult) {
	for _, detail := range details {
		list.Details = append(list.Details, List{
			Valid:            detail.Valid,
			EvaluationPath:   detail.EvaluationPath,
			SchemaLocation:   detail.SchemaLocation,
			InstanceLocation: detail.InstanceLocation,
			Annotations:      detail.Annotations,
			Errors:           detail.convertErrors(localizer),
		})
		if len(detail.Details) > 0 {
			e.flattenInto(localizer, list, detail.Details)
		}
	}
}

func (e *EvaluationResult) convertErrors(localizer *i18n.Localizer) map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	errs := make(map[string]string, len(e.Errors))
	for key, err := range e.Errors {
		errs[key] = err.Localize(localizer)
	}
	return errs
}

// GetDetailedErrors flattens the Details hierarchy into instance-path ->
// message, the form most callers actually want ("/items/0/name":
// "is required").
func (e *EvaluationResult) GetDetailedErrors(localizer ...*i18n.Localizer) map[string]string {
	var loc *i18n.Localizer
	if len(localizer) > 0 {
		loc = localizer[0]
	}
	collected := make(map[string]string)
	e.collectDetailedErrors(collected, loc, "")
	return collected
}

func (e *EvaluationResult) collectDetailedErrors(collector map[string]string, localizer *i18n.Localizer, basePath string) {
	if len(e.Errors) > 0 {
		currentPath := basePath + e.InstanceLocation
		for key, err := range e.Errors {
			fieldPath := currentPath
			switch {
			case fieldPath != "" && key != "":
				fieldPath += "/" + key
			case key != "":
				fieldPath = key
			}
			collector[fieldPath] = err.Localize(localizer)
		}
	}
	for _, detail := range e.Details {
		detail.collectDetailedErrors(collector, localizer, basePath+e.InstanceLocation)
	}
}
