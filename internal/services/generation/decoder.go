package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kaptinlin/jsonschema"

	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/onegreenvn/lecture-post-backend/internal/services/prompt"
)

// Decoder validates raw payloads against the declared schema before decoding them
type Decoder struct {
	schema *jsonschema.Schema
}

// NewDecoder compiles the declared response schema
func NewDecoder(schema *prompt.Schema) (*Decoder, error) {
	if err := checkContract(schema); err != nil {
		return nil, err
	}
	schemaBytes, err := json.Marshal(schema.JSONSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiled, err := compiler.Compile(schemaBytes)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON Schema: %w", err)
	}
	return &Decoder{schema: compiled}, nil
}

// Decode parses raw into GeneratedPosts. Malformed JSON, missing required
// fields and wrong types are all reported as KindResponseShape; nothing is repaired.
func (d *Decoder) Decode(raw string) (models.GeneratedPosts, error) {
	var posts models.GeneratedPosts

	text := strings.TrimSpace(raw)
	if text == "" {
		return posts, newError(KindNoResponse, ErrNoResponse)
	}

	var value interface{}
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return posts, newError(KindResponseShape, fmt.Errorf("payload is not valid JSON: %w", err))
	}

	result := d.schema.Validate(value)
	if !result.IsValid() {
		messages := make([]string, 0, len(result.Errors))
		for field, evalErr := range result.Errors {
			messages = append(messages, fmt.Sprintf("%s: %s", field, evalErr.Message))
		}
		sort.Strings(messages)
		return posts, newError(KindResponseShape, fmt.Errorf("validation failed: %s", strings.Join(messages, "; ")))
	}

	if err := json.Unmarshal([]byte(text), &posts); err != nil {
		return posts, newError(KindResponseShape, fmt.Errorf("payload does not match posts: %w", err))
	}
	return posts, nil
}

// contract lists the fields GeneratedPosts needs. A prompt table may add
// properties but must declare these as required with these types.
var contract = map[string]map[string]string{
	models.BlockInstagram: {"content": "string", "hashtags": "array"},
	models.BlockNaverBlog: {"title": "string", "content": "string"},
}

// checkContract verifies that schema constrains every field GeneratedPosts relies on
func checkContract(schema *prompt.Schema) error {
	for block, fields := range contract {
		blockSchema, ok := schema.Properties[block]
		if !ok || !contains(schema.Required, block) {
			return fmt.Errorf("response schema must require %q", block)
		}
		for field, typ := range fields {
			prop, ok := blockSchema.Properties[field]
			if !ok || prop.Type != typ || !contains(blockSchema.Required, field) {
				return fmt.Errorf("response schema must require %s.%s of type %s", block, field, typ)
			}
		}
	}
	hashtags := schema.Properties[models.BlockInstagram].Properties["hashtags"]
	if hashtags.Items == nil || hashtags.Items.Type != "string" {
		return errors.New("response schema must declare instagram.hashtags as an array of strings")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
