package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var errSchemaMismatch = errors.New("request body does not match schema")

func descriptorSchemaDefinition() map[string]any {
	text := map[string]any{"type": "string"}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"merchant_id":         text,
			"merchant_name":       text,
			"product_description": text,
			"merchant_city":       text,
			"merchant_phone":      text,
			"merchant_url":        text,
			"merchant_email":      text,
		},
		"additionalProperties": false,
	}
}

func gatewaySchemaDefinition() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"amount":    map[string]any{"type": "integer", "minimum": 0},
			"reference": map[string]any{"type": "string"},
			"source": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type":         map[string]any{"type": "string", "enum": []any{"credit_card", "bank_account", "token"}},
					"credit_card":  map[string]any{"type": "object"},
					"bank_account": map[string]any{"type": "object"},
					"token":        map[string]any{"type": "string"},
				},
				"required": []any{"type"},
			},
			"soft_descriptor": descriptorSchemaDefinition(),
		},
		"additionalProperties": false,
	}
}

var (
	descriptorSchema = mustCompileSchema(descriptorSchemaDefinition())
	gatewaySchema    = mustCompileSchema(gatewaySchemaDefinition())
)

func mustCompileSchema(definition map[string]any) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(definition))
	if err != nil {
		panic(fmt.Sprintf("compile request schema: %v", err))
	}
	return schema
}

// checkSchema reports every schema violation of body in one error.
func checkSchema(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", errSchemaMismatch, err)
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		details = append(details, e.String())
	}
	return fmt.Errorf("%w: %s", errSchemaMismatch, strings.Join(details, "; "))
}
