package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/onegreenvn/lecture-post-backend/internal/config"
	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/onegreenvn/lecture-post-backend/internal/services/llm"
	"github.com/onegreenvn/lecture-post-backend/internal/services/prompt"
	"github.com/sirupsen/logrus"
)

// InstagramHashtagCount is the number of hashtags the instruction asks for
const InstagramHashtagCount = 5

// Service performs one request/response exchange per Generate call.
// There are no retries: callers re-invoke Generate to try again.
type Service struct {
	cfg     config.GenerationConfig
	client  llm.Client
	builder *prompt.Builder
	decoder *Decoder
}

// NewService wires a client to a prompt table
func NewService(cfg config.GenerationConfig, client llm.Client, table *prompt.Table) (*Service, error) {
	if client == nil {
		return nil, errors.New("llm client is required")
	}
	if table == nil {
		return nil, errors.New("prompt table is required")
	}
	builder := prompt.NewBuilder(table)
	decoder, err := NewDecoder(builder.Schema())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare response decoder: %w", err)
	}
	return &Service{
		cfg:     cfg,
		client:  client,
		builder: builder,
		decoder: decoder,
	}, nil
}

// Provider returns the backend provider name
func (s *Service) Provider() string {
	return s.client.Provider()
}

// Model returns the backend model name
func (s *Service) Model() string {
	return s.client.Model()
}

// Generate builds the request for info, sends it and decodes the reply.
// It returns either fully populated posts or an *Error.
func (s *Service) Generate(ctx context.Context, info models.LectureInfo) (models.GeneratedPosts, error) {
	if err := s.cfg.Validate(); err != nil {
		logrus.Errorf("Generation is not configured: %v", err)
		return models.GeneratedPosts{}, newError(KindConfiguration, err)
	}

	req := s.builder.Build(info)
	logrus.Infof("Generating posts with %s/%s (prompt length=%d)", s.client.Provider(), s.client.Model(), len(req.Prompt))

	raw, err := s.client.Complete(ctx, req)
	if err != nil {
		logrus.Errorf("Generation backend %s failed: %v", s.client.Provider(), err)
		return models.GeneratedPosts{}, newError(KindBackend, err)
	}
	if strings.TrimSpace(raw) == "" {
		logrus.Warnf("Generation backend %s returned no text", s.client.Provider())
		return models.GeneratedPosts{}, newError(KindNoResponse, ErrNoResponse)
	}

	posts, err := s.decoder.Decode(raw)
	if err != nil {
		logrus.Warnf("Generation backend %s returned an unusable payload: %v", s.client.Provider(), err)
		logrus.Debugf("Raw payload: %s", raw)
		return models.GeneratedPosts{}, err
	}

	if n := len(posts.Instagram.Hashtags); n != InstagramHashtagCount {
		logrus.Warnf("Instagram post has %d hashtags, expected %d", n, InstagramHashtagCount)
	}
	return posts, nil
}
