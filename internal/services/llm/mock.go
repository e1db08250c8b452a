package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/onegreenvn/lecture-post-backend/internal/config"
	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/onegreenvn/lecture-post-backend/internal/services/prompt"
)

// MockClient is an offline client for local runs. It never calls a backend
// and echoes the data block into well-formed posts.
type MockClient struct {
	ModelName string
}

func (m *MockClient) Provider() string { return config.ProviderMock }

func (m *MockClient) Model() string { return m.ModelName }

func (m *MockClient) Complete(_ context.Context, req prompt.Request) (string, error) {
	lines := strings.Split(strings.TrimSpace(req.Prompt), "\n")
	summary := strings.Join(lines, " ")

	posts := models.GeneratedPosts{
		Instagram: models.InstagramPost{
			Content:  fmt.Sprintf("[mock] %s", summary),
			Hashtags: []string{"#강의후기", "#에듀테크", "#생성형AI", "#교사연수", "#미래교육"},
		},
		NaverBlog: models.NaverBlogPost{
			Title:   "[mock] 강의 현장 스케치",
			Content: strings.Join(lines, "\n\n"),
		},
	}
	out, err := json.Marshal(posts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
