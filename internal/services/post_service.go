package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/onegreenvn/lecture-post-backend/internal/services/auth"
	"github.com/onegreenvn/lecture-post-backend/internal/services/generation"
	"github.com/onegreenvn/lecture-post-backend/internal/services/render"
	"github.com/onegreenvn/lecture-post-backend/internal/services/session"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// CopiedMessage confirms a copy to the user
const CopiedMessage = "클립보드에 복사되었습니다!"

// PostGenerator turns lecture info into posts
type PostGenerator interface {
	Generate(ctx context.Context, info models.LectureInfo) (models.GeneratedPosts, error)
	Provider() string
	Model() string
}

// GenerationRecorder stores generation attempts
type GenerationRecorder interface {
	Record(log *models.GenerationLog) error
}

// PostPublisher announces successful generations
type PostPublisher interface {
	PublishGenerated(ctx context.Context, msg *PostPublishedMessage) error
}

// MissingFieldsError is returned when a generation is requested with empty form fields
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// PostService coordinates sessions, generation and the result view
type PostService struct {
	generator PostGenerator
	store     *session.Store
	tokens    *auth.SessionTokenService
	hub       *SSEHub
	recorder  GenerationRecorder
	publisher PostPublisher
	now       func() time.Time
}

// NewPostService creates a post service. hub may be nil.
func NewPostService(generator PostGenerator, store *session.Store, tokens *auth.SessionTokenService, hub *SSEHub) *PostService {
	return &PostService{
		generator: generator,
		store:     store,
		tokens:    tokens,
		hub:       hub,
		now:       time.Now,
	}
}

// SetRecorder enables generation history
func (s *PostService) SetRecorder(recorder GenerationRecorder) {
	s.recorder = recorder
}

// SetPublisher enables generated-post events
func (s *PostService) SetPublisher(publisher PostPublisher) {
	s.publisher = publisher
}

// CreateSession opens an empty form session and issues its token
func (s *PostService) CreateSession() (*models.CreateSessionResponse, error) {
	sess := s.store.Create()
	token, expiresAt, err := s.tokens.Issue(sess.ID)
	if err != nil {
		s.store.Delete(sess.ID)
		return nil, err
	}
	logrus.Infof("Created session %s", sess.ID)

	return &models.CreateSessionResponse{
		Success:   true,
		SessionID: sess.ID,
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	}, nil
}

// GetSession returns a live session
func (s *PostService) GetSession(sessionID string) (*session.Session, error) {
	return s.store.Get(sessionID)
}

// GetState returns what the form and result view show for a session
func (s *PostService) GetState(sessionID string) (*models.SessionStateResponse, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	snap := sess.Snapshot()

	resp := &models.SessionStateResponse{
		Success:    true,
		SessionID:  snap.ID,
		Info:       snap.Info,
		Posts:      snap.Posts,
		Generating: snap.Generating,
		CopyStatus: snap.CopyStatus,
		UpdatedAt:  snap.UpdatedAt,
	}
	if snap.Posts != nil {
		preview := BuildPreview(*snap.Posts)
		resp.Preview = &preview
	}
	return resp, nil
}

// UpdateInfo replaces the stored form record
func (s *PostService) UpdateInfo(sessionID string, info models.LectureInfo) (models.LectureInfo, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return models.LectureInfo{}, err
	}
	sess.SetInfo(info)
	return info, nil
}

// PatchInfo updates individual form fields
func (s *PostService) PatchInfo(sessionID string, patch models.LectureInfoPatch) (models.LectureInfo, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return models.LectureInfo{}, err
	}
	return sess.PatchInfo(patch), nil
}

// GenerateForSession stores info when given and generates posts from the session's form
func (s *PostService) GenerateForSession(ctx context.Context, sessionID string, info *models.LectureInfo) (*models.GeneratePostsResponse, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if info != nil {
		sess.SetInfo(*info)
	}
	return s.generateForSession(ctx, sess)
}

// Regenerate repeats the generation with the session's stored form record
func (s *PostService) Regenerate(ctx context.Context, sessionID string) (*models.GeneratePostsResponse, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.generateForSession(ctx, sess)
}

func (s *PostService) generateForSession(ctx context.Context, sess *session.Session) (*models.GeneratePostsResponse, error) {
	info := sess.Info()
	if missing := info.MissingFields(); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if err := sess.BeginGeneration(); err != nil {
		return nil, err
	}
	s.broadcast(sess.ID, models.StageStarted, "", nil)

	posts, err := s.generate(ctx, sess.ID, info)
	if err != nil {
		sess.EndGeneration(nil)
		s.broadcast(sess.ID, models.StageFailed, string(generation.KindOf(err)), nil)
		return nil, err
	}

	sess.EndGeneration(&posts)
	s.broadcast(sess.ID, models.StageCompleted, "", &posts)
	return newGenerateResponse(posts), nil
}

// GenerateOnce generates posts without a session
func (s *PostService) GenerateOnce(ctx context.Context, info models.LectureInfo) (*models.GeneratePostsResponse, error) {
	if missing := info.MissingFields(); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}
	posts, err := s.generate(ctx, "", info)
	if err != nil {
		return nil, err
	}
	return newGenerateResponse(posts), nil
}

// Copy returns the clipboard text for a block of the session's posts
func (s *PostService) Copy(sessionID, block string) (*models.CopyResponse, error) {
	sess, err := s.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	text, status, err := sess.Copy(block)
	if err != nil {
		return nil, err
	}
	return &models.CopyResponse{
		Success:   true,
		Block:     status.Block,
		Text:      text,
		Message:   CopiedMessage,
		ExpiresAt: status.ExpiresAt,
	}, nil
}

// generate runs one attempt and records it. Recording and publishing never fail the attempt.
func (s *PostService) generate(ctx context.Context, sessionID string, info models.LectureInfo) (models.GeneratedPosts, error) {
	entry := models.NewGenerationLog(sessionID, info)
	entry.Provider = s.generator.Provider()
	entry.Model = s.generator.Model()

	start := s.now()
	posts, err := s.generator.Generate(ctx, info)
	entry.LatencyMs = s.now().Sub(start).Milliseconds()

	if err != nil {
		entry.SetFailure(string(generation.KindOf(err)))
	} else {
		entry.SetPosts(posts)
	}
	s.record(entry)

	if err != nil {
		return models.GeneratedPosts{}, err
	}
	s.publish(sessionID, info, posts)
	return posts, nil
}

func (s *PostService) record(entry *models.GenerationLog) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(entry); err != nil {
		logrus.Warnf("Failed to record generation attempt: %v", err)
	}
}

func (s *PostService) publish(sessionID string, info models.LectureInfo, posts models.GeneratedPosts) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	msg := &PostPublishedMessage{
		SessionID:   sessionID,
		Info:        info,
		Posts:       posts,
		Provider:    s.generator.Provider(),
		Model:       s.generator.Model(),
		GeneratedAt: s.now(),
	}
	if err := s.publisher.PublishGenerated(ctx, msg); err != nil {
		logrus.Warnf("Failed to publish generated posts: %v", err)
	}
}

func (s *PostService) broadcast(sessionID, stage, message string, posts *models.GeneratedPosts) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(&models.GenerationEvent{
		SessionID: sessionID,
		Stage:     stage,
		Message:   message,
		Posts:     posts,
		CreatedAt: s.now(),
	})
}

func newGenerateResponse(posts models.GeneratedPosts) *models.GeneratePostsResponse {
	return &models.GeneratePostsResponse{
		Success: true,
		Posts:   posts,
		Preview: BuildPreview(posts),
	}
}

// BuildPreview derives the display and clipboard forms of posts
func BuildPreview(posts models.GeneratedPosts) models.PostsPreview {
	preview := models.PostsPreview{
		InstagramHashtags: posts.Instagram.DisplayHashtags(),
		InstagramCopyText: posts.Instagram.ClipboardText(),
		NaverBlogCopyText: posts.NaverBlog.ClipboardText(),
	}
	blogHTML, err := render.BlogHTML(posts.NaverBlog.Content)
	if err != nil {
		logrus.Warnf("Failed to render blog preview: %v", err)
	} else {
		preview.NaverBlogHTML = blogHTML
	}
	return preview
}
