package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/onegreenvn/lecture-post-backend/internal/config"
	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/onegreenvn/lecture-post-backend/internal/services/llm"
	"github.com/onegreenvn/lecture-post-backend/internal/services/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	calls int
	reply string
	err   error
	last  prompt.Request
}

func (f *fakeClient) Complete(_ context.Context, req prompt.Request) (string, error) {
	f.calls++
	f.last = req
	return f.reply, f.err
}

func (f *fakeClient) Provider() string { return "fake" }

func (f *fakeClient) Model() string { return "fake-model" }

var sampleInfo = models.LectureInfo{
	Location: "Seoul National University",
	DateTime: "2024-05-20 14:00",
	Target:   "30 elementary teachers",
	Topic:    "AI lesson design",
	Feedback: "engaged audience, many questions",
}

var validConfig = config.GenerationConfig{Provider: config.ProviderGemini, Model: "gemini-3-flash-preview", APIKey: "k"}

func newTestService(t *testing.T, cfg config.GenerationConfig, client llm.Client) *Service {
	t.Helper()
	table, err := prompt.DefaultTable()
	require.NoError(t, err)
	svc, err := NewService(cfg, client, table)
	require.NoError(t, err)
	return svc
}

func TestGenerateSuccess(t *testing.T) {
	client := &fakeClient{reply: validPayload}
	svc := newTestService(t, validConfig, client)

	posts, err := svc.Generate(context.Background(), sampleInfo)
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.NotEmpty(t, posts.Instagram.Content)
	assert.Len(t, posts.Instagram.Hashtags, 5)
	assert.NotEmpty(t, posts.NaverBlog.Title)
	assert.NotEmpty(t, posts.NaverBlog.Content)
	assert.Contains(t, client.last.Prompt, sampleInfo.Location)
	assert.NotNil(t, client.last.Schema)
}

func TestGenerateMissingCredentialDoesNotDispatch(t *testing.T) {
	client := &fakeClient{reply: validPayload}
	cfg := validConfig
	cfg.APIKey = ""
	svc := newTestService(t, cfg, client)

	_, err := svc.Generate(context.Background(), sampleInfo)
	require.Error(t, err)
	assert.Equal(t, KindConfiguration, KindOf(err))
	assert.True(t, errors.Is(err, config.ErrMissingCredential))
	assert.Equal(t, 0, client.calls)
}

func TestGenerateMissingCredentialNoNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	cfg := validConfig
	cfg.APIKey = ""
	cfg.BaseURL = srv.URL
	svc := newTestService(t, cfg, llm.NewGeminiClient(cfg, srv.Client()))

	_, err := svc.Generate(context.Background(), sampleInfo)
	assert.Equal(t, KindConfiguration, KindOf(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestGenerateBackendFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("gemini API error 500: internal")}
	svc := newTestService(t, validConfig, client)

	_, err := svc.Generate(context.Background(), sampleInfo)
	require.Error(t, err)
	assert.Equal(t, KindBackend, KindOf(err))
	assert.Equal(t, 1, client.calls)
}

func TestGenerateEmptyPayload(t *testing.T) {
	client := &fakeClient{reply: ""}
	svc := newTestService(t, validConfig, client)

	_, err := svc.Generate(context.Background(), sampleInfo)
	require.Error(t, err)
	assert.Equal(t, KindNoResponse, KindOf(err))
	assert.True(t, errors.Is(err, ErrNoResponse))
}

func TestGenerateMalformedPayloadIsDistinctFromNoResponse(t *testing.T) {
	client := &fakeClient{reply: `{"instagram":`}
	svc := newTestService(t, validConfig, client)

	_, err := svc.Generate(context.Background(), sampleInfo)
	require.Error(t, err)
	assert.Equal(t, KindResponseShape, KindOf(err))
	assert.False(t, errors.Is(err, ErrNoResponse))
}

func TestGenerateAgainstGeminiServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":` + quote(validPayload) + `}]}}]}`))
	}))
	defer srv.Close()

	cfg := validConfig
	cfg.BaseURL = srv.URL
	svc := newTestService(t, cfg, llm.NewGeminiClient(cfg, srv.Client()))

	posts, err := svc.Generate(context.Background(), sampleInfo)
	require.NoError(t, err)
	assert.Equal(t, "SNU 강의 현장!\n\n#AI #에듀테크 #교사연수 #생성형AI #미래교육", posts.Instagram.ClipboardText())
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestNewServiceRequiresClient(t *testing.T) {
	table, err := prompt.DefaultTable()
	require.NoError(t, err)
	_, err = NewService(validConfig, nil, table)
	assert.Error(t, err)
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindBackend, KindOf(errors.New("boom")))
}
