package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/onegreenvn/lecture-post-backend/internal/utils"
	"gorm.io/gorm"
)

// Generation log statuses
const (
	GenerationStatusSuccess = "success"
	GenerationStatusFailed  = "failed"
)

// GenerationLog records one generation attempt
type GenerationLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	SessionID string    `json:"session_id,omitempty" gorm:"type:varchar(36);index"`

	// Form fields as submitted
	Location string `json:"location" gorm:"type:text"`
	DateTime string `json:"date_time" gorm:"type:varchar(255)"`
	Target   string `json:"target" gorm:"type:text"`
	Topic    string `json:"topic" gorm:"type:text"`
	Feedback string `json:"feedback" gorm:"type:text"`

	Provider  string `json:"provider" gorm:"type:varchar(50)"`
	Model     string `json:"model" gorm:"type:varchar(100)"`
	Status    string `json:"status" gorm:"type:varchar(20);not null;index" example:"success"`
	ErrorKind string `json:"error_kind,omitempty" gorm:"type:varchar(50)"`
	LatencyMs int64  `json:"latency_ms"`

	// Result, empty when Status is failed
	InstagramContent  string `json:"instagram_content,omitempty" gorm:"type:text"`
	InstagramHashtags string `json:"instagram_hashtags,omitempty" gorm:"type:text"`
	BlogTitle         string `json:"blog_title,omitempty" gorm:"type:text"`
	BlogContent       string `json:"blog_content,omitempty" gorm:"type:text"`
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (l *GenerationLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for the GenerationLog model
func (GenerationLog) TableName() string {
	return "generation_logs"
}

// NewGenerationLog builds a log entry for an attempt with the given info
func NewGenerationLog(sessionID string, info LectureInfo) *GenerationLog {
	return &GenerationLog{
		SessionID: sessionID,
		Location:  info.Location,
		DateTime:  info.DateTime,
		Target:    info.Target,
		Topic:     info.Topic,
		Feedback:  info.Feedback,
	}
}

// SetPosts marks the attempt successful and stores the result
func (l *GenerationLog) SetPosts(posts GeneratedPosts) {
	l.Status = GenerationStatusSuccess
	l.ErrorKind = ""
	l.InstagramContent = posts.Instagram.Content
	l.InstagramHashtags = strings.Join(posts.Instagram.Hashtags, " ")
	l.BlogTitle = posts.NaverBlog.Title
	l.BlogContent = posts.NaverBlog.Content
}

// SetFailure marks the attempt failed
func (l *GenerationLog) SetFailure(kind string) {
	l.Status = GenerationStatusFailed
	l.ErrorKind = kind
}

// GenerationLogListResponse is a page of generation history
type GenerationLogListResponse struct {
	Success    bool                     `json:"success" example:"true"`
	Data       []*GenerationLog         `json:"data"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// GenerationEvent is pushed to session subscribers while a generation runs
type GenerationEvent struct {
	SessionID string          `json:"session_id"`
	Stage     string          `json:"stage" example:"completed"`
	Message   string          `json:"message,omitempty"`
	Posts     *GeneratedPosts `json:"posts,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Generation event stages
const (
	StageStarted   = "started"
	StageCompleted = "completed"
	StageFailed    = "failed"
)
