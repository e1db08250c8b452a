package excel

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/onegreenvn/lecture-post-backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// HistorySheetName is the sheet holding generation history rows
const HistorySheetName = "Generations"

// HistoryColumns are the header cells of the history sheet, in order
var HistoryColumns = []string{
	"id", "created_at", "session_id", "status", "error_kind",
	"provider", "model", "latency_ms",
	"location", "date_time", "target", "topic", "feedback",
	"instagram_content", "instagram_hashtags", "blog_title", "blog_content",
}

// Service handles Excel exports of generation history
type Service struct{}

// NewExcelService creates a new Excel service instance
func NewExcelService() *Service {
	return &Service{}
}

// ExportGenerationLogs writes logs to an xlsx workbook and returns its bytes
func (s *Service) ExportGenerationLogs(logs []*models.GenerationLog) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	failedStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9D9D9"}, // Gray
			Pattern: 1,
		},
	})

	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, HistorySheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	// Write headers
	for i, col := range HistoryColumns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(HistorySheetName, cell, col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(HistorySheetName, "A1", columnToLetter(len(HistoryColumns))+strconv.Itoa(1), headerStyle)
	}

	for i, col := range HistoryColumns {
		colLetter := columnToLetter(i + 1)
		width := 20.0

		switch col {
		case "id", "session_id":
			width = 38.0
		case "status", "error_kind", "latency_ms":
			width = 15.0
		case "instagram_content", "blog_content", "feedback":
			width = 60.0
		case "instagram_hashtags", "blog_title", "topic":
			width = 40.0
		}

		f.SetColWidth(HistorySheetName, colLetter, colLetter, width)
	}

	wrapStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})

	for j, log := range logs {
		rowNum := j + 2 // Start from row 2 (after headers)
		values := []interface{}{
			log.ID,
			log.CreatedAt.Format(time.RFC3339),
			log.SessionID,
			log.Status,
			log.ErrorKind,
			log.Provider,
			log.Model,
			log.LatencyMs,
			log.Location,
			log.DateTime,
			log.Target,
			log.Topic,
			log.Feedback,
			log.InstagramContent,
			log.InstagramHashtags,
			log.BlogTitle,
			log.BlogContent,
		}
		for i, v := range values {
			f.SetCellValue(HistorySheetName, fmt.Sprintf("%s%d", columnToLetter(i+1), rowNum), v)
		}

		rowStart := fmt.Sprintf("A%d", rowNum)
		rowEnd := fmt.Sprintf("%s%d", columnToLetter(len(HistoryColumns)), rowNum)
		if log.Status == models.GenerationStatusFailed {
			f.SetCellStyle(HistorySheetName, rowStart, rowEnd, failedStyle)
		} else {
			f.SetCellStyle(HistorySheetName, rowStart, rowEnd, wrapStyle)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

// ExportFilename names an export created at t
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("lecture_posts_history_%d.xlsx", t.Unix())
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
