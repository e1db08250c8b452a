package repository

import (
	"time"

	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"gorm.io/gorm"
)

type GenerationLogRepository struct {
	db *gorm.DB
}

func NewGenerationLogRepository(db *gorm.DB) *GenerationLogRepository {
	return &GenerationLogRepository{db: db}
}

// Create creates a new generation log
func (r *GenerationLogRepository) Create(log *models.GenerationLog) error {
	return r.db.Create(log).Error
}

// List retrieves logs newest first, optionally filtered by status
func (r *GenerationLogRepository) List(status string, limit, offset int) ([]*models.GenerationLog, error) {
	var logs []*models.GenerationLog
	query := r.db.Model(&models.GenerationLog{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, err
}

// Count counts logs, optionally filtered by status
func (r *GenerationLogRepository) Count(status string) (int64, error) {
	var count int64
	query := r.db.Model(&models.GenerationLog{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

// ListSince retrieves every log created at or after since, oldest first
func (r *GenerationLogRepository) ListSince(since time.Time) ([]*models.GenerationLog, error) {
	var logs []*models.GenerationLog
	err := r.db.Where("created_at >= ?", since).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

// DeleteOlderThan deletes logs created before cutoff
func (r *GenerationLogRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.GenerationLog{})
	return result.RowsAffected, result.Error
}
