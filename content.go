package jsonschema

// evaluateContent implements "contentEncoding"/"contentMediaType"/"contentSchema":
// a string instance is decoded, parsed, and optionally validated against a
// nested schema. None of these keywords produce annotations-only results
// unless contentSchema is present (per the validation vocabulary they are
// assertions only when the implementation opts in, which this one does).
func evaluateContent(schema *Schema, instance any, ctx *evalContext) (*EvaluationResult, *EvaluationError) {
	str, ok := instance.(string)
	if !ok {
		return nil, nil
	}

	var content []byte
	var err error
	compiler := schema.GetCompiler()

	if schema.ContentEncoding != nil {
		decoder, exists := compiler.Decoders[*schema.ContentEncoding]
		if !exists {
			return nil, NewEvaluationError("contentEncoding", "unsupported_encoding", "Unsupported content encoding [[encoding]]", map[string]any{
				"encoding": *schema.ContentEncoding,
			})
		}
		content, err = decoder(str)
		if err != nil {
			return nil, NewEvaluationError("contentEncoding", "invalid_encoding", "Value is not valid [[encoding]] encoded data", map[string]any{
				"encoding": *schema.ContentEncoding,
			})
		}
	} else {
		content = []byte(str)
	}

	var parsed any = content

	if schema.ContentMediaType != nil {
		unmarshal, exists := compiler.MediaTypes[*schema.ContentMediaType]
		if !exists {
			return nil, NewEvaluationError("contentMediaType", "unsupported_media_type", "Unsupported content media type [[media_type]]", map[string]any{
				"media_type": *schema.ContentMediaType,
			})
		}
		parsed, err = unmarshal(content)
		if err != nil {
			return nil, NewEvaluationError("contentMediaType", "invalid_media_type", "Value does not conform to media type [[media_type]]", map[string]any{
				"media_type": *schema.ContentMediaType,
			})
		}
	}

	if schema.ContentSchema == nil {
		return nil, nil
	}

	result, _, _ := schema.ContentSchema.evaluate(parsed, ctx)
	if result == nil {
		return nil, nil
	}
	result.SetEvaluationPath("/contentSchema").
		SetSchemaLocation(schema.GetSchemaLocation("/contentSchema")).
		SetInstanceLocation("")
	if !result.IsValid() {
		return result, NewEvaluationError("contentSchema", "content_schema_mismatch", "Decoded content does not match the contentSchema")
	}
	return result, nil
}
