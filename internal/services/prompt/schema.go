package prompt

import (
	"fmt"
	"strings"
)

// Schema describes the expected response shape. Types use JSON Schema names
// (object, string, array); providers translate them to their own dialect.
type Schema struct {
	Type        string             `yaml:"type" json:"type"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Properties  map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Order       []string           `yaml:"order,omitempty" json:"-"`
	Required    []string           `yaml:"required,omitempty" json:"required,omitempty"`
	Items       *Schema            `yaml:"items,omitempty" json:"items,omitempty"`
}

var schemaTypes = map[string]bool{
	"object":  true,
	"string":  true,
	"array":   true,
	"number":  true,
	"integer": true,
	"boolean": true,
}

// Validate checks that the schema is self-consistent
func (s *Schema) Validate(path string) error {
	if s == nil {
		return fmt.Errorf("%s: schema is missing", path)
	}
	if !schemaTypes[s.Type] {
		return fmt.Errorf("%s: unsupported type %q", path, s.Type)
	}
	switch s.Type {
	case "object":
		if len(s.Properties) == 0 {
			return fmt.Errorf("%s: object has no properties", path)
		}
		for _, name := range s.Required {
			if _, ok := s.Properties[name]; !ok {
				return fmt.Errorf("%s: required property %q is not declared", path, name)
			}
		}
		for name, prop := range s.Properties {
			if err := prop.Validate(path + "." + name); err != nil {
				return err
			}
		}
	case "array":
		if err := s.Items.Validate(path + "[]"); err != nil {
			return err
		}
	}
	return nil
}

// PropertyNames returns property names in declaration order, falling back to required order
func (s *Schema) PropertyNames() []string {
	if len(s.Order) > 0 {
		return s.Order
	}
	names := make([]string, 0, len(s.Properties))
	seen := make(map[string]bool, len(s.Properties))
	for _, name := range s.Required {
		names = append(names, name)
		seen[name] = true
	}
	for name := range s.Properties {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

// JSONSchema renders the schema as a standard JSON Schema document
func (s *Schema) JSONSchema() map[string]interface{} {
	return s.render(strings.ToLower, false)
}

// GeminiSchema renders the schema in the generateContent responseSchema dialect
func (s *Schema) GeminiSchema() map[string]interface{} {
	return s.render(strings.ToUpper, true)
}

func (s *Schema) render(typeCase func(string) string, ordering bool) map[string]interface{} {
	out := map[string]interface{}{
		"type": typeCase(s.Type),
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]interface{}, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.render(typeCase, ordering)
		}
		out["properties"] = props
		if ordering {
			out["propertyOrdering"] = s.PropertyNames()
		}
	}
	if len(s.Required) > 0 {
		out["required"] = append([]string(nil), s.Required...)
	}
	if s.Items != nil {
		out["items"] = s.Items.render(typeCase, ordering)
	}
	return out
}
