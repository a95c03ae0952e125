package report

import (
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/techcreator/ems-backend-go/internal/domain/attendance"
)

// Format selects the output document type for a report.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ReportService renders attendance reports into downloadable documents.
type ReportService interface {
	RenderDaily(ctx context.Context, req attendance.DailyReportRequest, format Format, w io.Writer) error
	RenderSummary(ctx context.Context, req attendance.SummaryReportRequest, format Format, w io.Writer) error
}

type reportServiceImpl struct{}

func NewReportService() ReportService {
	return &reportServiceImpl{}
}

// RenderDaily implements ReportService.
func (s *reportServiceImpl) RenderDaily(ctx context.Context, req attendance.DailyReportRequest, format Format, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	title := "Daily Attendance Report"
	if req.Date != "" {
		title = fmt.Sprintf("Daily Attendance Report - %s", req.Date)
	}

	headers := []string{"Employee", "Check In", "Check Out", "Work Mode", "Status"}
	rows := make([][]string, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, []string{r.FullName, r.CheckIn, r.CheckOut, r.WorkMode, r.Status})
	}

	switch format {
	case FormatXLSX:
		return renderXLSX(title, headers, rows, w)
	default:
		widths := []float64{60, 32, 32, 30, 26}
		return renderPDF(title, headers, widths, rows, w)
	}
}

// RenderSummary implements ReportService.
func (s *reportServiceImpl) RenderSummary(ctx context.Context, req attendance.SummaryReportRequest, format Format, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	title := req.Title
	if title == "" {
		title = "Attendance Summary Report"
	}

	headers := []string{"Employee", "Present Days", "Absent Days", "Hours Worked", "Hours %"}
	rows := make([][]string, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, []string{
			r.FullName,
			fmt.Sprintf("%d", r.PresentDays),
			fmt.Sprintf("%d", r.AbsentDays),
			fmt.Sprintf("%.1f", r.HoursWorked),
			fmt.Sprintf("%.1f%%", r.HoursPercent),
		})
	}

	switch format {
	case FormatXLSX:
		return renderXLSX(title, headers, rows, w)
	default:
		widths := []float64{60, 30, 30, 30, 30}
		return renderPDF(title, headers, widths, rows, w)
	}
}

func renderPDF(title string, headers []string, widths []float64, rows [][]string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Header row
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		for i, cell := range row {
			align := "L"
			if i > 0 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF report: %w", err)
	}
	return nil
}

func renderXLSX(title string, headers []string, rows [][]string, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return fmt.Errorf("failed to write report title: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+4)
			if err != nil {
				return fmt.Errorf("failed to resolve data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to render XLSX report: %w", err)
	}
	return nil
}
