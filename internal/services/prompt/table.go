package prompt

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_platforms.yaml
var defaultTable []byte

// fieldKeys lists the form fields in the order they appear in the data block
var fieldKeys = []string{"location", "dateTime", "target", "topic", "feedback"}

// Platform is one generated post: its writing guidelines and its slot in the response schema
type Platform struct {
	Key        string   `yaml:"key"`
	Label      string   `yaml:"label"`
	Guidelines []string `yaml:"guidelines"`
	Schema     *Schema  `yaml:"schema"`
}

// Table holds the persona and per-platform settings that drive prompt construction
type Table struct {
	Brand         string            `yaml:"brand"`
	Persona       string            `yaml:"persona"`
	CommonRules   []string          `yaml:"common_rules"`
	RequestHeader string            `yaml:"request_header"`
	FieldLabels   map[string]string `yaml:"field_labels"`
	RequestNotes  []string          `yaml:"request_notes"`
	Platforms     []Platform        `yaml:"platforms"`
}

// DefaultTable returns the built-in table
func DefaultTable() (*Table, error) {
	return ParseTable(defaultTable)
}

// LoadTable reads a table from path, or returns the built-in table when path is empty
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return DefaultTable()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt config: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes and validates a YAML table
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse prompt config: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that the table can produce a complete request
func (t *Table) Validate() error {
	if t.Persona == "" {
		return errors.New("prompt config: persona is required")
	}
	for _, key := range fieldKeys {
		if t.FieldLabels[key] == "" {
			return fmt.Errorf("prompt config: field label %q is required", key)
		}
	}
	if len(t.Platforms) == 0 {
		return errors.New("prompt config: at least one platform is required")
	}
	seen := make(map[string]bool, len(t.Platforms))
	for _, p := range t.Platforms {
		if p.Key == "" {
			return errors.New("prompt config: platform key is required")
		}
		if seen[p.Key] {
			return fmt.Errorf("prompt config: duplicate platform %q", p.Key)
		}
		seen[p.Key] = true
		if err := p.Schema.Validate(p.Key); err != nil {
			return fmt.Errorf("prompt config: %w", err)
		}
	}
	return nil
}

// Platform looks up a platform by key
func (t *Table) Platform(key string) (Platform, bool) {
	for _, p := range t.Platforms {
		if p.Key == key {
			return p, true
		}
	}
	return Platform{}, false
}

// ResponseSchema assembles the top-level response schema: one required property per platform
func (t *Table) ResponseSchema() *Schema {
	root := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema, len(t.Platforms)),
	}
	for _, p := range t.Platforms {
		root.Properties[p.Key] = p.Schema
		root.Order = append(root.Order, p.Key)
		root.Required = append(root.Required, p.Key)
	}
	return root
}
