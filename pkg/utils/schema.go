package utils

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// ValidateSchema checks that a response schema is internally consistent:
// every required field must reference a declared property. The generation
// provider enforces the shape of the output; this catches descriptors that
// could never be satisfied before a call is spent on them.
func ValidateSchema(schema *genai.Schema) error {
	if schema == nil {
		return fmt.Errorf("%w: response schema is nil", ErrInvalidInput)
	}
	return validateSchemaNode(schema, "$")
}

func validateSchemaNode(schema *genai.Schema, path string) error {
	switch schema.Type {
	case genai.TypeObject:
		for _, name := range schema.Required {
			if _, ok := schema.Properties[name]; !ok {
				return fmt.Errorf("%w: schema at %s requires undeclared property %q", ErrInvalidInput, path, name)
			}
		}
		for name, prop := range schema.Properties {
			if prop == nil {
				return fmt.Errorf("%w: schema at %s.%s is nil", ErrInvalidInput, path, name)
			}
			if err := validateSchemaNode(prop, path+"."+name); err != nil {
				return err
			}
		}
	case genai.TypeArray:
		if schema.Items == nil {
			return fmt.Errorf("%w: array schema at %s has no item type", ErrInvalidInput, path)
		}
		return validateSchemaNode(schema.Items, path+"[]")
	}
	return nil
}
