package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalTable = `
persona: brand voice
field_labels:
  location: L
  dateTime: D
  target: T
  topic: P
  feedback: F
platforms:
  - key: instagram
    label: IG
    schema:
      type: object
      properties:
        content: {type: string}
        hashtags: {type: array, items: {type: string}}
      required: [content, hashtags]
`

func TestDefaultTableLoads(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	assert.Equal(t, "가치있는 미래교육연구소", table.Brand)
	require.Len(t, table.Platforms, 2)
	_, ok := table.Platform("instagram")
	assert.True(t, ok)
	_, ok = table.Platform("naverBlog")
	assert.True(t, ok)
}

func TestLoadTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalTable), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "brand voice", table.Persona)
	assert.Len(t, table.Platforms, 1)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseTableRejectsUndeclaredRequired(t *testing.T) {
	bad := `
persona: p
field_labels: {location: L, dateTime: D, target: T, topic: P, feedback: F}
platforms:
  - key: instagram
    schema:
      type: object
      properties:
        content: {type: string}
      required: [content, hashtags]
`
	_, err := ParseTable([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hashtags")
}

func TestParseTableRejectsArrayWithoutItems(t *testing.T) {
	bad := `
persona: p
field_labels: {location: L, dateTime: D, target: T, topic: P, feedback: F}
platforms:
  - key: instagram
    schema:
      type: object
      properties:
        hashtags: {type: array}
`
	_, err := ParseTable([]byte(bad))
	assert.Error(t, err)
}

func TestParseTableRequiresFieldLabels(t *testing.T) {
	bad := `
persona: p
field_labels: {location: L}
platforms:
  - key: instagram
    schema: {type: object, properties: {content: {type: string}}}
`
	_, err := ParseTable([]byte(bad))
	assert.Error(t, err)
}

func TestParseTableRejectsDuplicatePlatform(t *testing.T) {
	bad := `
persona: p
field_labels: {location: L, dateTime: D, target: T, topic: P, feedback: F}
platforms:
  - key: instagram
    schema: {type: object, properties: {content: {type: string}}}
  - key: instagram
    schema: {type: object, properties: {content: {type: string}}}
`
	_, err := ParseTable([]byte(bad))
	assert.Error(t, err)
}
