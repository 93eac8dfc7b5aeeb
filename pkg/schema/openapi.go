package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// FromOpenAPI derives a definition from the request body of operationID.
// Only top-level scalar properties become fields; nested objects and arrays
// are skipped. Properties are ordered by name since OpenAPI objects carry no
// ordering.
func FromOpenAPI(ctx context.Context, raw []byte, operationID string) (Definition, error) {
	if err := ctx.Err(); err != nil {
		return Definition{}, err
	}
	if len(raw) == 0 {
		return Definition{}, errors.New("schema: openapi document is empty")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return Definition{}, fmt.Errorf("schema: load openapi document: %w", err)
	}

	op := findOperation(doc, operationID)
	if op == nil {
		return Definition{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	body := requestSchema(op.RequestBody)
	if body == nil {
		return Definition{}, fmt.Errorf("%w: operation %q has no request body schema", ErrInvalidDefinition, operationID)
	}

	def := Definition{
		ID:    operationID,
		Title: strings.TrimSpace(op.Summary),
	}
	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := fieldFromSchema(name, ref.Value)
		if !ok {
			continue
		}
		field.Required = required[name]
		def.Fields = append(def.Fields, field)
	}

	if err := def.Check(); err != nil {
		return Definition{}, fmt.Errorf("schema: operation %q: %w", operationID, err)
	}
	return def, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc == nil || doc.Paths == nil {
		return nil
	}
	paths := doc.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromSchema(name string, src *openapi3.Schema) (Field, bool) {
	if src.Type != nil && (src.Type.Is(openapi3.TypeObject) || src.Type.Is(openapi3.TypeArray)) {
		return Field{}, false
	}

	field := Field{
		Name:    name,
		Label:   strings.TrimSpace(src.Title),
		Help:    strings.TrimSpace(src.Description),
		Pattern: src.Pattern,
		Secret:  src.Format == "password",
	}
	if src.Default != nil {
		field.Default = fmt.Sprint(src.Default)
	}
	if src.MinLength > 0 {
		n := int(src.MinLength)
		field.MinLength = &n
	}
	if src.MaxLength != nil {
		n := int(*src.MaxLength)
		field.MaxLength = &n
	}
	if ext, ok := src.Extensions["x-formstate-multiline"].(bool); ok {
		field.Multiline = ext
	}
	return field, true
}
