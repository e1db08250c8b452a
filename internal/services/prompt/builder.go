package prompt

import (
	"fmt"
	"strings"

	"github.com/onegreenvn/lecture-post-backend/internal/models"
)

// Request is everything sent to the generative backend for one generation
type Request struct {
	SystemInstruction string
	Prompt            string
	Schema            *Schema
}

// Builder turns form records into requests using a fixed table
type Builder struct {
	table  *Table
	system string
	schema *Schema
}

// NewBuilder precomputes the parts of the request that do not depend on the form
func NewBuilder(table *Table) *Builder {
	return &Builder{
		table:  table,
		system: systemInstruction(table),
		schema: table.ResponseSchema(),
	}
}

// Schema returns the declared response schema
func (b *Builder) Schema() *Schema {
	return b.schema
}

// Build constructs the request for info. Field values are inserted verbatim.
func (b *Builder) Build(info models.LectureInfo) Request {
	return Request{
		SystemInstruction: b.system,
		Prompt:            dataBlock(b.table, info),
		Schema:            b.schema,
	}
}

func systemInstruction(t *Table) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(t.Persona))
	sb.WriteString("\n\n[작성 가이드라인]\n")
	for i, p := range t.Platforms {
		sb.WriteString(fmt.Sprintf("%d. %s:\n", i+1, p.Label))
		for _, g := range p.Guidelines {
			sb.WriteString("   - ")
			sb.WriteString(g)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	if len(t.CommonRules) > 0 {
		sb.WriteString(fmt.Sprintf("%d. 공통:\n", len(t.Platforms)+1))
		for _, r := range t.CommonRules {
			sb.WriteString("   - ")
			sb.WriteString(r)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func dataBlock(t *Table, info models.LectureInfo) string {
	values := map[string]string{
		"location": info.Location,
		"dateTime": info.DateTime,
		"target":   info.Target,
		"topic":    info.Topic,
		"feedback": info.Feedback,
	}

	var sb strings.Builder
	if t.RequestHeader != "" {
		sb.WriteString(t.RequestHeader)
		sb.WriteString("\n\n")
	}
	for _, key := range fieldKeys {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", t.FieldLabels[key], values[key]))
	}
	if len(t.RequestNotes) > 0 {
		sb.WriteString("\n[특별 지침]\n")
		for _, n := range t.RequestNotes {
			sb.WriteString("- ")
			sb.WriteString(n)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
