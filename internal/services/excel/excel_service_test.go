package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestColumnToLetter(t *testing.T) {
	assert.Equal(t, "A", columnToLetter(1))
	assert.Equal(t, "Q", columnToLetter(17))
	assert.Equal(t, "Z", columnToLetter(26))
	assert.Equal(t, "AA", columnToLetter(27))
}

func TestExportGenerationLogs(t *testing.T) {
	info := models.LectureInfo{
		Location: "서울대학교",
		DateTime: "2024-05-20 14:00",
		Target:   "초등 교사 30명",
		Topic:    "AI 수업 설계",
		Feedback: "질문이 많았음",
	}
	ok := models.NewGenerationLog("s1", info)
	ok.ID = "log-1"
	ok.CreatedAt = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)
	ok.LatencyMs = 1200
	ok.SetPosts(models.GeneratedPosts{
		Instagram: models.InstagramPost{Content: "강의 현장!", Hashtags: []string{"#AI", "#에듀테크"}},
		NaverBlog: models.NaverBlogPost{Title: "강의 후기", Content: "본문"},
	})

	failed := models.NewGenerationLog("s1", info)
	failed.ID = "log-2"
	failed.CreatedAt = ok.CreatedAt.Add(time.Minute)
	failed.SetFailure("response_shape")

	data, err := NewExcelService().ExportGenerationLogs([]*models.GenerationLog{ok, failed})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(HistorySheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, HistoryColumns, rows[0])

	assert.Equal(t, "log-1", rows[1][0])
	assert.Equal(t, "2024-05-20T15:00:00Z", rows[1][1])
	assert.Equal(t, models.GenerationStatusSuccess, rows[1][3])
	assert.Equal(t, "1200", rows[1][7])
	assert.Equal(t, "서울대학교", rows[1][8])
	assert.Equal(t, "#AI #에듀테크", rows[1][14])
	assert.Equal(t, "강의 후기", rows[1][15])

	assert.Equal(t, "log-2", rows[2][0])
	assert.Equal(t, models.GenerationStatusFailed, rows[2][3])
	assert.Equal(t, "response_shape", rows[2][4])
}

func TestExportEmptyHistory(t *testing.T) {
	data, err := NewExcelService().ExportGenerationLogs(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(HistorySheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "lecture_posts_history_1716217200.xlsx", ExportFilename(time.Unix(1716217200, 0)))
}
