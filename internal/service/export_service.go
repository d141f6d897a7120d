package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tlodholz/OpsReadyAPI/internal/model"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
)

// ── export errors ──

var (
	ErrExportEventNotFound = errors.New("training event not found")
	ErrExportNoRecords     = errors.New("training event has no assigned records")
	ErrExportGenerateFail  = errors.New("failed to generate spreadsheet")
)

// ExportService spreadsheet exports.
//
// The workbook is returned as a buffer; the handler sets the response headers
// and writes it out.
type ExportService interface {
	// ExportEventRecords one row per assigned user with their outcome record
	ExportEventRecords(ctx context.Context, eventID int64) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const recordSheet = "Records"

var recordColumns = []struct {
	title string
	width float64
}{
	{"Assignment", 12},
	{"Record", 10},
	{"User", 8},
	{"Badge", 12},
	{"Rank", 14},
	{"Name", 26},
	{"Assigned", 18},
	{"Attendance", 14},
	{"Status", 14},
	{"Outcome", 18},
	{"Score", 10},
	{"Hours", 8},
	{"Completed", 11},
	{"Completion Date", 18},
	{"Certification", 18},
	{"Expires", 12},
}

// ────────────────────── ExportEventRecords ──────────────────────
//
// Layout:
//   - row 1: event title and date range, merged across all columns
//   - row 2: header
//   - row 3..: one row per record detail, in assignment order

func (s *exportService) ExportEventRecords(ctx context.Context, eventID int64) (*bytes.Buffer, string, error) {
	// 1. event
	event, err := s.repo.TrainingEvent.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrExportEventNotFound
		}
		s.logger.Error("failed to load training event", zap.Int64("id", eventID), zap.Error(err))
		return nil, "", err
	}

	// 2. records
	details, err := s.repo.TrainingAssignment.ListRecordDetailsByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("failed to list record details", zap.Int64("training_event_id", eventID), zap.Error(err))
		return nil, "", err
	}
	if len(details) == 0 {
		return nil, "", ErrExportNoRecords
	}

	// 3. workbook
	f := excelize.NewFile()
	defer f.Close()

	idx, _ := f.NewSheet(recordSheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	for i, col := range recordColumns {
		name := colName(i)
		f.SetColWidth(recordSheet, name, name, col.width)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1F3864"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
	})

	title := fmt.Sprintf("%s (%s to %s)", event.Title,
		event.StartDate.Format("2006-01-02"), event.EndDate.Format("2006-01-02"))
	f.SetCellValue(recordSheet, "A1", title)
	f.MergeCell(recordSheet, "A1", cell(colName(len(recordColumns)-1), 1))
	f.SetCellStyle(recordSheet, "A1", "A1", titleStyle)

	for i, col := range recordColumns {
		f.SetCellValue(recordSheet, cell(colName(i), 2), col.title)
	}
	f.SetCellStyle(recordSheet, "A2", cell(colName(len(recordColumns)-1), 2), headerStyle)

	for i, d := range details {
		row := i + 3
		values := []interface{}{
			d.TrainingAssignmentID,
			d.TrainingRecordID,
			d.UserID,
			deref(d.BadgeNumber),
			deref(d.Rank),
			displayName(&d),
			d.AssignedDate.Format("2006-01-02 15:04"),
			d.Attendance,
			d.Status,
			d.TrainingOutcome,
			d.Score,
			d.HoursCompleted,
			yesNo(d.Completed),
			d.CompletionDate.Format("2006-01-02 15:04"),
			d.CertificationNumber,
			d.ExpirationDate.Format("2006-01-02"),
		}
		for c, v := range values {
			f.SetCellValue(recordSheet, cell(colName(c), row), v)
		}
	}

	// 4. buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write workbook", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, exportFilename(event), nil
}

// ── helpers ──

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func exportFilename(e *model.TrainingEvent) string {
	slug := strings.Trim(unsafeFilename.ReplaceAllString(e.Title, "_"), "_")
	if slug == "" {
		slug = "event"
	}
	return fmt.Sprintf("training_records_%d_%s.xlsx", e.TrainingEventID, slug)
}

func displayName(d *model.TrainingRecordDetail) string {
	first := deref(d.PreferredName)
	if first == "" {
		first = deref(d.FirstName)
	}
	return strings.TrimSpace(first + " " + deref(d.LastName))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
