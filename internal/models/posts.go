package models

import (
	"strings"
	"time"
)

// Result blocks that can be copied
const (
	BlockInstagram = "instagram"
	BlockNaverBlog = "naverBlog"
)

// CopyStatusLifetime is how long a copy confirmation stays visible
const CopyStatusLifetime = 2 * time.Second

// GeneratedPosts is the structured result of one generation
type GeneratedPosts struct {
	Instagram InstagramPost `json:"instagram"`
	NaverBlog NaverBlogPost `json:"naverBlog"`
}

// InstagramPost is the short-form social post
type InstagramPost struct {
	Content  string   `json:"content" example:"Great energy at SNU today!"`
	Hashtags []string `json:"hashtags" example:"#AI,#edutech,#lecture,#teachers,#futureedu"`
}

// NaverBlogPost is the long-form blog post
type NaverBlogPost struct {
	Title   string `json:"title" example:"AI lesson design with 30 teachers"`
	Content string `json:"content" example:"Hello everyone..."`
}

// ClipboardText is the full text placed on the clipboard for the post
func (p InstagramPost) ClipboardText() string {
	return p.Content + "\n\n" + strings.Join(p.Hashtags, " ")
}

// DisplayHashtags prefixes every tag with '#' when the model left it out
func (p InstagramPost) DisplayHashtags() []string {
	tags := make([]string, 0, len(p.Hashtags))
	for _, tag := range p.Hashtags {
		tag = strings.TrimSpace(tag)
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		tags = append(tags, tag)
	}
	return tags
}

// ClipboardText is the full text placed on the clipboard for the post
func (p NaverBlogPost) ClipboardText() string {
	return p.Title + "\n\n" + p.Content
}

// ClipboardText returns the copy text for the given block
func (g GeneratedPosts) ClipboardText(block string) (string, bool) {
	switch block {
	case BlockInstagram:
		return g.Instagram.ClipboardText(), true
	case BlockNaverBlog:
		return g.NaverBlog.ClipboardText(), true
	default:
		return "", false
	}
}

// CopyStatus names the block that was copied last. It is active until ExpiresAt.
type CopyStatus struct {
	Block     string    `json:"block"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ActiveAt reports whether the status should still be shown at now
func (s CopyStatus) ActiveAt(now time.Time) bool {
	return s.Block != "" && now.Before(s.ExpiresAt)
}

// PostsPreview carries display helpers derived from GeneratedPosts
type PostsPreview struct {
	InstagramHashtags []string `json:"instagram_hashtags"`
	InstagramCopyText string   `json:"instagram_copy_text"`
	NaverBlogCopyText string   `json:"naver_blog_copy_text"`
	NaverBlogHTML     string   `json:"naver_blog_html,omitempty"`
}

// GeneratePostsResponse is returned by every generation endpoint
type GeneratePostsResponse struct {
	Success bool           `json:"success" example:"true"`
	Posts   GeneratedPosts `json:"posts"`
	Preview PostsPreview   `json:"preview"`
}

// CopyResponse is returned by the copy endpoint
type CopyResponse struct {
	Success   bool      `json:"success" example:"true"`
	Block     string    `json:"block" example:"instagram"`
	Text      string    `json:"text"`
	Message   string    `json:"message" example:"클립보드에 복사되었습니다!"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateSessionResponse is returned when a new form session is opened
type CreateSessionResponse struct {
	Success   bool      `json:"success" example:"true"`
	SessionID string    `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Token     string    `json:"token"`
	TokenType string    `json:"token_type" example:"Bearer"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStateResponse is the current state of a form session
type SessionStateResponse struct {
	Success    bool            `json:"success" example:"true"`
	SessionID  string          `json:"session_id"`
	Info       LectureInfo     `json:"info"`
	Posts      *GeneratedPosts `json:"posts,omitempty"`
	Preview    *PostsPreview   `json:"preview,omitempty"`
	Generating bool            `json:"generating"`
	CopyStatus *CopyStatus     `json:"copy_status,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
