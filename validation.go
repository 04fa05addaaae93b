package declines

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// gatewayErrorSchema is the JSON Schema for inbound gateway error documents.
// Every field the package reads is optional and must be a string when
// present; additional fields are allowed so the schema stays open to
// whatever else a gateway SDK serializes.
const gatewayErrorSchema = `{
	"type": "object",
	"properties": {
		"type": {"type": "string"},
		"decline_code": {"type": "string"},
		"message": {"type": "string"}
	},
	"additionalProperties": true
}`

// ValidationResult represents the result of validating a gateway error
// document against the expected shape.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateGatewayError validates a raw gateway error document against the
// expected error shape. It is used by the transport adapters before
// extraction so malformed request bodies are rejected with a reason instead
// of silently resolving to no value.
func ValidateGatewayError(raw []byte) ValidationResult {
	schemaLoader := gojsonschema.NewStringLoader(gatewayErrorSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf("schema validation failed: %v", err)},
		}
	}

	if result.Valid() {
		return ValidationResult{Valid: true}
	}

	var errors []string
	for _, desc := range result.Errors() {
		errors = append(errors, fmt.Sprintf("%s: %s", desc.Context().String(), desc.Description()))
	}

	return ValidationResult{
		Valid:  false,
		Errors: errors,
	}
}
