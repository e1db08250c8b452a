package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/lecture-post-backend/internal/middleware"
	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/onegreenvn/lecture-post-backend/internal/services"
	"github.com/onegreenvn/lecture-post-backend/internal/services/generation"
	"github.com/onegreenvn/lecture-post-backend/internal/services/session"
	"github.com/sirupsen/logrus"
)

// User-facing messages. Diagnostics stay in the logs.
const (
	MessageGenerationFailed   = "포스팅 생성 중 오류가 발생했습니다. 다시 시도해주세요."
	MessageNotConfigured      = "API_KEY가 설정되지 않았습니다. 관리자에게 문의해주세요."
	MessageMissingFields      = "모든 항목을 입력해주세요."
	MessageGenerationInFlight = "이미 포스팅을 생성하고 있습니다. 잠시만 기다려주세요."
)

const heartbeatInterval = 15 * time.Second

type PostHandler struct {
	postService *services.PostService
	sseHub      *services.SSEHub
}

func NewPostHandler(postService *services.PostService, sseHub *services.SSEHub) *PostHandler {
	return &PostHandler{
		postService: postService,
		sseHub:      sseHub,
	}
}

// CreateSession godoc
// @Summary Start a form session
// @Description Create an empty lecture form session and return the bearer token that identifies it
// @Tags sessions
// @Produce json
// @Success 201 {object} models.CreateSessionResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/sessions [post]
func (h *PostHandler) CreateSession(c *gin.Context) {
	resp, err := h.postService.CreateSession()
	if err != nil {
		logrus.Errorf("Failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSession godoc
// @Summary Get the current session
// @Description Get the form record, the last generated posts, the in-flight flag and the active copy indicator
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SessionStateResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/sessions/me [get]
func (h *PostHandler) GetSession(c *gin.Context) {
	resp, err := h.postService.GetState(c.GetString(middleware.ContextSessionID))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReplaceInfo godoc
// @Summary Replace the form record
// @Description Replace every field of the lecture form. Omitted fields become empty.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LectureInfoPatch true "Lecture form"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/sessions/me/info [put]
func (h *PostHandler) ReplaceInfo(c *gin.Context) {
	var req models.LectureInfoPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data", "details": err.Error()})
		return
	}

	info, err := h.postService.UpdateInfo(c.GetString(middleware.ContextSessionID), req.Apply(models.LectureInfo{}))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "info": info})
}

// PatchInfo godoc
// @Summary Update form fields
// @Description Update individual fields of the lecture form; omitted fields are left untouched
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LectureInfoPatch true "Changed fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/sessions/me/info [patch]
func (h *PostHandler) PatchInfo(c *gin.Context) {
	var req models.LectureInfoPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request data", "details": err.Error()})
		return
	}

	info, err := h.postService.PatchInfo(c.GetString(middleware.ContextSessionID), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "info": info})
}

// Generate godoc
// @Summary Generate posts for the session
// @Description Store the submitted form (if a body is sent) and generate an Instagram post and a Naver Blog post from it
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LectureInfo false "Lecture form"
// @Success 200 {object} models.GeneratePostsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/v1/sessions/me/generate [post]
func (h *PostHandler) Generate(c *gin.Context) {
	var info *models.LectureInfo
	var req models.LectureInfo
	switch err := c.ShouldBindJSON(&req); {
	case errors.Is(err, io.EOF):
		// no body: generate from the stored form
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": MessageMissingFields, "details": err.Error()})
		return
	default:
		info = &req
	}

	resp, err := h.postService.GenerateForSession(c.Request.Context(), c.GetString(middleware.ContextSessionID), info)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Regenerate godoc
// @Summary Regenerate posts
// @Description Generate new posts from the session's stored form. The previous posts stay visible if this fails.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.GeneratePostsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/v1/sessions/me/regenerate [post]
func (h *PostHandler) Regenerate(c *gin.Context) {
	resp, err := h.postService.Regenerate(c.Request.Context(), c.GetString(middleware.ContextSessionID))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Copy godoc
// @Summary Copy a post
// @Description Return the full clipboard text of a post block and mark it as copied for two seconds
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param block path string true "Post block" Enums(instagram, naverBlog)
// @Success 200 {object} models.CopyResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/sessions/me/copy/{block} [post]
func (h *PostHandler) Copy(c *gin.Context) {
	resp, err := h.postService.Copy(c.GetString(middleware.ContextSessionID), c.Param("block"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StreamEvents godoc
// @Summary Stream generation events via Server-Sent Events (SSE)
// @Description Stream started, completed and failed events for the session's generations
// @Tags sessions
// @Produce text/event-stream
// @Security BearerAuth
// @Param token query string false "Session token, for clients that cannot set headers"
// @Success 200 "SSE stream"
// @Router /api/v1/sessions/me/events [get]
func (h *PostHandler) StreamEvents(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionID)

	// Set headers for SSE
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering for nginx

	clientChan := h.sseHub.RegisterClient(sessionID)
	defer h.sseHub.UnregisterClient(sessionID, clientChan)

	c.SSEvent("connected", gin.H{
		"session_id": sessionID,
		"message":    "Connected to generation stream",
	})
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Infof("SSE client disconnected: %s", sessionID)
			return
		case <-heartbeat.C:
			h.sseHub.SendHeartbeat(sessionID)
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

// GenerateOnce godoc
// @Summary Generate posts without a session
// @Description One-shot generation of an Instagram post and a Naver Blog post from a lecture form
// @Tags generate
// @Accept json
// @Produce json
// @Param request body models.LectureInfo true "Lecture form"
// @Success 200 {object} models.GeneratePostsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/v1/generate [post]
func (h *PostHandler) GenerateOnce(c *gin.Context) {
	var req models.LectureInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": MessageMissingFields, "details": err.Error()})
		return
	}

	resp, err := h.postService.GenerateOnce(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// writeError converts service errors into one user-facing message and status
func (h *PostHandler) writeError(c *gin.Context, err error) {
	var missing *services.MissingFieldsError
	var genErr *generation.Error

	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": MessageMissingFields, "missing_fields": missing.Fields})
	case errors.Is(err, session.ErrGenerationInFlight):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": MessageGenerationInFlight})
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Session not found or expired"})
	case errors.Is(err, session.ErrNoPosts):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "No generated posts to copy yet"})
	case errors.Is(err, session.ErrUnknownBlock):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Unknown post block"})
	case errors.As(err, &genErr) && genErr.Kind == generation.KindConfiguration:
		logrus.Errorf("Generation is not configured: %v", err)
		sentry.CaptureException(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": MessageNotConfigured})
	case genErr != nil:
		logrus.Errorf("Generation failed (%s): %v", genErr.Kind, err)
		sentry.CaptureException(err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": MessageGenerationFailed})
	default:
		logrus.Errorf("Request failed: %v", err)
		sentry.CaptureException(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": MessageGenerationFailed})
	}
}
