package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLectureInfoAcceptsReactionAlias(t *testing.T) {
	var info LectureInfo
	err := json.Unmarshal([]byte(`{"location":"SNU","dateTime":"2024-05-20 14:00","target":"teachers","topic":"AI","reaction":"lively"}`), &info)
	require.NoError(t, err)
	assert.Equal(t, "lively", info.Feedback)
	assert.Equal(t, "SNU", info.Location)
}

func TestLectureInfoFeedbackWinsOverReaction(t *testing.T) {
	var info LectureInfo
	err := json.Unmarshal([]byte(`{"feedback":"quiet","reaction":"lively"}`), &info)
	require.NoError(t, err)
	assert.Equal(t, "quiet", info.Feedback)
}

func TestLectureInfoMissingFields(t *testing.T) {
	info := LectureInfo{Location: "SNU", Topic: "  "}
	assert.Equal(t, []string{"dateTime", "target", "topic", "feedback"}, info.MissingFields())

	full := LectureInfo{Location: "a", DateTime: "b", Target: "c", Topic: "d", Feedback: "e"}
	assert.Empty(t, full.MissingFields())
}

func TestLectureInfoPatchApply(t *testing.T) {
	topic := "new topic"
	reaction := "many questions"
	base := LectureInfo{Location: "SNU", Topic: "old topic", Feedback: "quiet"}

	got := LectureInfoPatch{Topic: &topic, Reaction: &reaction}.Apply(base)

	assert.Equal(t, "SNU", got.Location)
	assert.Equal(t, "new topic", got.Topic)
	assert.Equal(t, "many questions", got.Feedback)
	assert.Equal(t, "old topic", base.Topic)
}

func TestInstagramClipboardText(t *testing.T) {
	post := InstagramPost{
		Content:  "Great day at SNU",
		Hashtags: []string{"#AI", "#edu", "#teachers", "#lecture", "#future"},
	}
	assert.Equal(t, "Great day at SNU\n\n#AI #edu #teachers #lecture #future", post.ClipboardText())
}

func TestNaverBlogClipboardText(t *testing.T) {
	post := NaverBlogPost{Title: "Title", Content: "Body"}
	assert.Equal(t, "Title\n\nBody", post.ClipboardText())
}

func TestGeneratedPostsClipboardTextUnknownBlock(t *testing.T) {
	_, ok := GeneratedPosts{}.ClipboardText("twitter")
	assert.False(t, ok)
}

func TestDisplayHashtags(t *testing.T) {
	post := InstagramPost{Hashtags: []string{"AI", "#edu", " teachers "}}
	assert.Equal(t, []string{"#AI", "#edu", "#teachers"}, post.DisplayHashtags())
}

func TestCopyStatusActiveAt(t *testing.T) {
	now := time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC)
	status := CopyStatus{Block: BlockInstagram, ExpiresAt: now.Add(CopyStatusLifetime)}

	assert.True(t, status.ActiveAt(now))
	assert.True(t, status.ActiveAt(now.Add(1999*time.Millisecond)))
	assert.False(t, status.ActiveAt(now.Add(2*time.Second)))
	assert.False(t, CopyStatus{}.ActiveAt(now))
}

func TestGenerationLogSetPosts(t *testing.T) {
	entry := NewGenerationLog("s1", LectureInfo{Location: "SNU"})
	entry.SetFailure("backend")
	entry.SetPosts(GeneratedPosts{
		Instagram: InstagramPost{Content: "c", Hashtags: []string{"#a", "#b"}},
		NaverBlog: NaverBlogPost{Title: "t", Content: "body"},
	})

	assert.Equal(t, GenerationStatusSuccess, entry.Status)
	assert.Empty(t, entry.ErrorKind)
	assert.Equal(t, "#a #b", entry.InstagramHashtags)
	assert.Equal(t, "SNU", entry.Location)
	assert.Equal(t, "s1", entry.SessionID)
}
