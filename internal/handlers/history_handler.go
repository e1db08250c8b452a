package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/lecture-post-backend/internal/services"
	"github.com/onegreenvn/lecture-post-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// ListHistory godoc
// @Summary List generation history
// @Description Get paginated generation attempts, newest first
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status query string false "Filter by status" Enums(success, failed)
// @Success 200 {object} models.GenerationLogListResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/history [get]
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))

	resp, err := h.historyService.List(c.Query("status"), page, pageSize)
	if err != nil {
		logrus.Errorf("Failed to list history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to get history"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportHistory godoc
// @Summary Export generation history to Excel
// @Description Download every generation attempt since the given time as an xlsx file
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param since query string false "RFC3339 start time (default: 30 days ago)"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/history/export [get]
func (h *HistoryHandler) ExportHistory(c *gin.Context) {
	since := time.Now().AddDate(0, 0, -30)
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "since must be an RFC3339 time"})
			return
		}
		since = parsed
	}

	data, filename, err := h.historyService.Export(since)
	if err != nil {
		logrus.Errorf("Failed to export history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to export history"})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Header("Cache-Control", "must-revalidate")
	c.Header("Pragma", "public")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
