package services

import (
	"fmt"
	"time"

	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/onegreenvn/lecture-post-backend/internal/services/excel"
	"github.com/onegreenvn/lecture-post-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

// GenerationLogStore persists generation logs
type GenerationLogStore interface {
	Create(log *models.GenerationLog) error
	List(status string, limit, offset int) ([]*models.GenerationLog, error)
	Count(status string) (int64, error)
	ListSince(since time.Time) ([]*models.GenerationLog, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// HistoryService records generation attempts and serves them to admins
type HistoryService struct {
	logs  GenerationLogStore
	excel *excel.Service
	now   func() time.Time
}

func NewHistoryService(logs GenerationLogStore, excelService *excel.Service) *HistoryService {
	return &HistoryService{
		logs:  logs,
		excel: excelService,
		now:   time.Now,
	}
}

// Record stores one generation attempt
func (s *HistoryService) Record(log *models.GenerationLog) error {
	if err := s.logs.Create(log); err != nil {
		return fmt.Errorf("failed to save generation log: %w", err)
	}
	return nil
}

// List returns a page of history, newest first
func (s *HistoryService) List(status string, page, pageSize int) (*models.GenerationLogListResponse, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)

	total, err := s.logs.Count(status)
	if err != nil {
		return nil, fmt.Errorf("failed to count generation logs: %w", err)
	}
	logs, err := s.logs.List(status, pageSize, utils.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list generation logs: %w", err)
	}
	if logs == nil {
		logs = []*models.GenerationLog{}
	}

	return &models.GenerationLogListResponse{
		Success:    true,
		Data:       logs,
		Pagination: utils.CalculatePaginationInfo(int(total), page, pageSize),
	}, nil
}

// Export writes every attempt since the given time to an xlsx workbook
func (s *HistoryService) Export(since time.Time) ([]byte, string, error) {
	logs, err := s.logs.ListSince(since)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load generation logs: %w", err)
	}
	data, err := s.excel.ExportGenerationLogs(logs)
	if err != nil {
		return nil, "", err
	}
	logrus.Infof("Exported %d generation logs", len(logs))
	return data, excel.ExportFilename(s.now()), nil
}

// HistoryCleanupService deletes generation logs older than the retention period
type HistoryCleanupService struct {
	logs      GenerationLogStore
	retention time.Duration
	interval  time.Duration
	stopChan  chan bool
	now       func() time.Time
}

func NewHistoryCleanupService(logs GenerationLogStore, retention time.Duration) *HistoryCleanupService {
	return &HistoryCleanupService{
		logs:      logs,
		retention: retention,
		interval:  24 * time.Hour, // Cleanup every 24 hours
		stopChan:  make(chan bool),
		now:       time.Now,
	}
}

// Start starts the cleanup loop
func (s *HistoryCleanupService) Start() {
	go s.run()
	logrus.Infof("History cleanup service started (retention: %v)", s.retention)
}

// Stop stops the cleanup loop
func (s *HistoryCleanupService) Stop() {
	s.stopChan <- true
	logrus.Info("History cleanup service stopped")
}

func (s *HistoryCleanupService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Run initial cleanup
	s.Cleanup()

	for {
		select {
		case <-ticker.C:
			s.Cleanup()
		case <-s.stopChan:
			return
		}
	}
}

// Cleanup deletes expired logs once and returns how many were removed
func (s *HistoryCleanupService) Cleanup() int64 {
	deleted, err := s.logs.DeleteOlderThan(s.now().Add(-s.retention))
	if err != nil {
		logrus.Errorf("Failed to cleanup generation logs: %v", err)
		return 0
	}
	if deleted > 0 {
		logrus.Infof("Deleted %d expired generation logs", deleted)
	}
	return deleted
}
