package generation

import (
	"errors"
	"testing"

	"github.com/onegreenvn/lecture-post-backend/internal/services/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
  "instagram": {"content": "SNU 강의 현장!", "hashtags": ["#AI", "#에듀테크", "#교사연수", "#생성형AI", "#미래교육"]},
  "naverBlog": {"title": "AI 수업 설계 강의 후기", "content": "안녕하세요 :)"}
}`

func newTestDecoder(t *testing.T) *Decoder {
	t.Helper()
	table, err := prompt.DefaultTable()
	require.NoError(t, err)
	d, err := NewDecoder(table.ResponseSchema())
	require.NoError(t, err)
	return d
}

func TestDecodeValidPayload(t *testing.T) {
	posts, err := newTestDecoder(t).Decode(validPayload)
	require.NoError(t, err)

	assert.Equal(t, "SNU 강의 현장!", posts.Instagram.Content)
	assert.Len(t, posts.Instagram.Hashtags, 5)
	assert.Equal(t, "AI 수업 설계 강의 후기", posts.NaverBlog.Title)
	assert.Equal(t, "안녕하세요 :)", posts.NaverBlog.Content)
}

func TestDecodeAcceptsOtherHashtagCounts(t *testing.T) {
	d := newTestDecoder(t)
	for _, tags := range []string{`["#a","#b","#c","#d"]`, `["#a","#b","#c","#d","#e","#f"]`} {
		payload := `{"instagram":{"content":"c","hashtags":` + tags + `},"naverBlog":{"title":"t","content":"b"}}`
		_, err := d.Decode(payload)
		assert.NoError(t, err, tags)
	}
}

func TestDecodeRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"malformed json", `{"instagram": {"content": "c"`},
		{"not an object", `["instagram"]`},
		{"missing naverBlog", `{"instagram":{"content":"c","hashtags":[]}}`},
		{"missing hashtags", `{"instagram":{"content":"c"},"naverBlog":{"title":"t","content":"b"}}`},
		{"missing title", `{"instagram":{"content":"c","hashtags":[]},"naverBlog":{"content":"b"}}`},
		{"hashtags not array", `{"instagram":{"content":"c","hashtags":"#a #b"},"naverBlog":{"title":"t","content":"b"}}`},
		{"hashtag not string", `{"instagram":{"content":"c","hashtags":[1,2]},"naverBlog":{"title":"t","content":"b"}}`},
		{"null content", `{"instagram":{"content":null,"hashtags":[]},"naverBlog":{"title":"t","content":"b"}}`},
		{"flat variant", `{"instagram":"post","naverBlog":"post"}`},
	}
	d := newTestDecoder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Decode(tt.payload)
			require.Error(t, err)
			assert.Equal(t, KindResponseShape, KindOf(err))
		})
	}
}

func TestDecodeEmptyPayloadIsNoResponse(t *testing.T) {
	_, err := newTestDecoder(t).Decode("   ")
	require.Error(t, err)
	assert.Equal(t, KindNoResponse, KindOf(err))
	assert.True(t, errors.Is(err, ErrNoResponse))
}

func TestNewDecoderRejectsSchemaWithoutContract(t *testing.T) {
	table, err := prompt.ParseTable([]byte(`
persona: p
field_labels: {location: L, dateTime: D, target: T, topic: P, feedback: F}
platforms:
  - key: instagram
    schema:
      type: object
      properties:
        content: {type: string}
        hashtags: {type: array, items: {type: string}}
      required: [content, hashtags]
`))
	require.NoError(t, err)

	_, err = NewDecoder(table.ResponseSchema())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "naverBlog")
}
