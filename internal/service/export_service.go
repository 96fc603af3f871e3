package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/repository"
)

var (
	ErrExportNoResults    = errors.New("contest has no registered participants")
	ErrExportGenerateFail = errors.New("failed to generate excel file")
)

// ExportService renders contest results as an .xlsx workbook. The
// handler sets the HTTP headers and writes the returned buffer.
type ExportService interface {
	ExportContestResults(ctx context.Context, contestID int64) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportContestResults builds a single-sheet workbook listing every
// registration for the contest ordered by score. Rows without a score
// show "-" in the result columns.
func (s *exportService) ExportContestResults(ctx context.Context, contestID int64) (*bytes.Buffer, string, error) {
	contest, err := s.repo.Contest.GetByID(ctx, contestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrContestNotFound
		}
		s.logger.Error("lookup contest failed", zap.Error(err))
		return nil, "", err
	}

	results, err := s.repo.Contest.ListResults(ctx, contestID)
	if err != nil {
		s.logger.Error("list contest results failed", zap.Error(err))
		return nil, "", err
	}
	if len(results) == 0 {
		return nil, "", ErrExportNoResults
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Results"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s (%s)", contest.Title, contest.Date))
	f.MergeCell(sheetName, "A1", "F1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	headers := []string{"#", "Name", "Email", "Score", "Percent", "Completed"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, fmt.Sprintf("%s2", col), h)
	}

	row := 3
	for rank, r := range results {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), rank+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.Email)
		if r.Score != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), *r.Score)
		} else {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), "-")
		}
		if r.Percentage != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), fmt.Sprintf("%d%%", *r.Percentage))
		} else {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), "-")
		}
		if r.CompletedAt != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.CompletedAt.Format("2006-01-02 15:04"))
		} else {
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), "-")
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("contest_%d_results.xlsx", contestID)
	return buf, filename, nil
}
